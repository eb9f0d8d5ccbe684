package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"marmitaria/internal/pricing"
	"marmitaria/internal/services"
	"marmitaria/pkg/resp"
)

// OrderHandler serves the customer ordering surface: delivery points,
// the menu view, price quotes and order submission. None of it requires
// authentication.
type OrderHandler struct {
	orderService  services.OrderService
	menuService   services.MenuService
	pointService  services.DeliveryPointService
	configService services.ConfigService
}

func NewOrderHandler(
	orderService services.OrderService,
	menuService services.MenuService,
	pointService services.DeliveryPointService,
	configService services.ConfigService,
) *OrderHandler {
	return &OrderHandler{
		orderService:  orderService,
		menuService:   menuService,
		pointService:  pointService,
		configService: configService,
	}
}

func (h *OrderHandler) ListPoints(c *gin.Context) {
	points, err := h.pointService.ListActive()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, points)
}

// GetMenu returns everything the ordering page needs in one call: the
// resolved delivery point, the customer menu view, whether ordering is
// open, and the default pre-selection (all available accompaniments).
func (h *OrderHandler) GetMenu(c *gin.Context) {
	pointID := c.Query("point")
	if pointID == "" {
		resp.BadRequest(c, "point query parameter is required")
		return
	}

	points, err := h.pointService.ListActive()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	var point any
	for _, p := range points {
		if p.ID == pointID {
			point = p
			break
		}
	}
	if point == nil {
		resp.NotFound(c, "delivery point not found or inactive")
		return
	}

	open, err := h.configService.IsOrderingOpen()
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	menu, err := h.menuService.GetActiveMenu()
	if err != nil {
		if errors.Is(err, services.ErrNoActiveMenu) {
			resp.OK(c, gin.H{"point": point, "menu": nil, "open": open})
			return
		}
		resp.ServerError(c, err)
		return
	}

	resp.OK(c, gin.H{
		"point":       point,
		"menu":        menu,
		"open":        open,
		"preselected": pricing.InitialSelection(menu.Items),
	})
}

type quoteRequest struct {
	SizeID   *string  `json:"size_id"`
	ItemIDs  []string `json:"item_ids"`
	Quantity int      `json:"quantity" binding:"required"`
}

// Quote prices a selection without creating an order, so the live total
// on the form always matches what submission will enforce.
func (h *OrderHandler) Quote(c *gin.Context) {
	var req quoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "invalid request format")
		return
	}

	breakdown, err := h.orderService.Quote(req.SizeID, req.ItemIDs, req.Quantity)
	if err != nil {
		if errors.Is(err, services.ErrNoActiveMenu) {
			resp.NotFound(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, breakdown)
}

type submitOrderRequest struct {
	CustomerName    string          `json:"customer_name" binding:"required"`
	CustomerPhone   string          `json:"customer_phone"`
	Quantity        int             `json:"quantity" binding:"required"`
	SizeID          *string         `json:"size_id"`
	ItemIDs         []string        `json:"item_ids" binding:"required"`
	RemovedSides    []string        `json:"removed_sides"`
	Notes           string          `json:"notes"`
	Total           decimal.Decimal `json:"total"`
	DeliveryPointID string          `json:"delivery_point_id" binding:"required"`
}

func (h *OrderHandler) SubmitOrder(c *gin.Context) {
	var req submitOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "invalid request format")
		return
	}

	order, err := h.orderService.SubmitOrder(services.SubmitOrderInput{
		CustomerName:    req.CustomerName,
		CustomerPhone:   req.CustomerPhone,
		Quantity:        req.Quantity,
		SizeID:          req.SizeID,
		ItemIDs:         req.ItemIDs,
		RemovedSides:    req.RemovedSides,
		Notes:           req.Notes,
		Total:           req.Total,
		DeliveryPointID: req.DeliveryPointID,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidDeliveryPoint),
			errors.Is(err, services.ErrOutsideOperatingHours),
			errors.Is(err, services.ErrNoActiveMenu),
			errors.Is(err, services.ErrNoItemsSelected):
			resp.BadRequest(c, err.Error())
		case errors.Is(err, services.ErrTotalMismatch):
			resp.Conflict(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}

	resp.Created(c, order)
}
