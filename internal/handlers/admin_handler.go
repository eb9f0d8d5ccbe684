package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"marmitaria/internal/models"
	"marmitaria/internal/services"
	"marmitaria/pkg/resp"
)

// AdminHandler serves the configuration surface: delivery points, menu
// items and sizes, the legacy flat price, operating hours and the
// shared password.
type AdminHandler struct {
	menuService   services.MenuService
	pointService  services.DeliveryPointService
	configService services.ConfigService
}

func NewAdminHandler(
	menuService services.MenuService,
	pointService services.DeliveryPointService,
	configService services.ConfigService,
) *AdminHandler {
	return &AdminHandler{
		menuService:   menuService,
		pointService:  pointService,
		configService: configService,
	}
}

// --- delivery points ---

func (h *AdminHandler) ListPoints(c *gin.Context) {
	points, err := h.pointService.ListAll()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, points)
}

type pointRequest struct {
	Name      string `json:"name" binding:"required"`
	TimeLabel string `json:"time_label" binding:"required"`
	Active    bool   `json:"active"`
}

func (h *AdminHandler) CreatePoint(c *gin.Context) {
	var req pointRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "invalid request format")
		return
	}

	point, err := h.pointService.Create(req.Name, req.TimeLabel, req.Active)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, point)
}

func (h *AdminHandler) UpdatePoint(c *gin.Context) {
	var req pointRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "invalid request format")
		return
	}

	point, err := h.pointService.Update(c.Param("id"), req.Name, req.TimeLabel, req.Active)
	if err != nil {
		if errors.Is(err, services.ErrPointNotFound) {
			resp.NotFound(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, point)
}

func (h *AdminHandler) TogglePoint(c *gin.Context) {
	point, err := h.pointService.ToggleActive(c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrPointNotFound) {
			resp.NotFound(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, point)
}

func (h *AdminHandler) DeletePoint(c *gin.Context) {
	err := h.pointService.Delete(c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrPointNotFound):
			resp.NotFound(c, err.Error())
		case errors.Is(err, services.ErrPointHasOrders):
			resp.Conflict(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}

// --- menu ---

func (h *AdminHandler) GetMenu(c *gin.Context) {
	menu, err := h.menuService.GetActiveMenuAdmin()
	if err != nil {
		if errors.Is(err, services.ErrNoActiveMenu) {
			resp.NotFound(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, menu)
}

type createItemRequest struct {
	Name          string          `json:"name" binding:"required"`
	Category      models.Category `json:"category" binding:"required"`
	MaxSelections int             `json:"max_selections"`
}

func (h *AdminHandler) CreateItem(c *gin.Context) {
	var req createItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "invalid request format")
		return
	}

	item, err := h.menuService.CreateItem(req.Name, req.Category, req.MaxSelections)
	if err != nil {
		if errors.Is(err, services.ErrNoActiveMenu) {
			resp.NotFound(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, item)
}

type updateItemRequest struct {
	Name          string `json:"name" binding:"required"`
	Available     bool   `json:"available"`
	MaxSelections int    `json:"max_selections"`
}

func (h *AdminHandler) UpdateItem(c *gin.Context) {
	var req updateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "invalid request format")
		return
	}

	item, err := h.menuService.UpdateItem(c.Param("id"), req.Name, req.Available, req.MaxSelections)
	if err != nil {
		if errors.Is(err, services.ErrItemNotFound) {
			resp.NotFound(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, item)
}

func (h *AdminHandler) ToggleItem(c *gin.Context) {
	item, err := h.menuService.ToggleItemAvailable(c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrItemNotFound) {
			resp.NotFound(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, item)
}

func (h *AdminHandler) DeleteItem(c *gin.Context) {
	if err := h.menuService.DeleteItem(c.Param("id")); err != nil {
		if errors.Is(err, services.ErrItemNotFound) {
			resp.NotFound(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}

type sizeRequest struct {
	Name   string          `json:"name" binding:"required"`
	Price  decimal.Decimal `json:"price" binding:"required"`
	Active bool            `json:"active"`
}

func (h *AdminHandler) CreateSize(c *gin.Context) {
	var req sizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "invalid request format")
		return
	}

	size, err := h.menuService.CreateSize(req.Name, req.Price)
	if err != nil {
		if errors.Is(err, services.ErrNoActiveMenu) {
			resp.NotFound(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, size)
}

func (h *AdminHandler) UpdateSize(c *gin.Context) {
	var req sizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "invalid request format")
		return
	}

	size, err := h.menuService.UpdateSize(c.Param("id"), req.Name, req.Price, req.Active)
	if err != nil {
		if errors.Is(err, services.ErrSizeNotFound) {
			resp.NotFound(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, size)
}

func (h *AdminHandler) DeleteSize(c *gin.Context) {
	if err := h.menuService.DeleteSize(c.Param("id")); err != nil {
		if errors.Is(err, services.ErrSizeNotFound) {
			resp.NotFound(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}

type priceRequest struct {
	Price decimal.Decimal `json:"price" binding:"required"`
}

func (h *AdminHandler) UpdateMenuPrice(c *gin.Context) {
	var req priceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "invalid request format")
		return
	}

	if err := h.menuService.UpdateLegacyPrice(req.Price); err != nil {
		if errors.Is(err, services.ErrNoActiveMenu) {
			resp.NotFound(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"updated": true})
}

// --- operating config ---

func (h *AdminHandler) GetConfig(c *gin.Context) {
	cfg, err := h.configService.Get()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, cfg)
}

type configRequest struct {
	OpeningTime       string `json:"opening_time" binding:"required"`
	ClosingTime       string `json:"closing_time" binding:"required"`
	WhatsAppMessage   string `json:"whatsapp_message"`
	NotificationPhone string `json:"notification_phone"`
}

func (h *AdminHandler) UpdateConfig(c *gin.Context) {
	var req configRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "invalid request format")
		return
	}

	cfg, err := h.configService.Update(req.OpeningTime, req.ClosingTime, req.WhatsAppMessage, req.NotificationPhone)
	if err != nil {
		if errors.Is(err, services.ErrInvalidHours) {
			resp.BadRequest(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, cfg)
}

type passwordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required"`
}

func (h *AdminHandler) ChangePassword(c *gin.Context) {
	var req passwordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "invalid request format")
		return
	}

	if err := h.configService.ChangePassword(req.CurrentPassword, req.NewPassword); err != nil {
		switch {
		case errors.Is(err, services.ErrWrongPassword):
			resp.Unauthorized(c, err.Error())
		case errors.Is(err, services.ErrEmptyPassword):
			resp.BadRequest(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.OK(c, gin.H{"changed": true})
}
