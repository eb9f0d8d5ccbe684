package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"marmitaria/internal/models"
	"marmitaria/internal/services"
	"marmitaria/pkg/resp"
)

// KitchenHandler serves the staff board: the order queue and status
// moves. All routes sit behind the staff token.
type KitchenHandler struct {
	orderService services.OrderService
}

func NewKitchenHandler(orderService services.OrderService) *KitchenHandler {
	return &KitchenHandler{orderService: orderService}
}

// ListOrders returns today's queue by default; ?all=1 returns the full
// history and ?status= filters by lifecycle state.
func (h *KitchenHandler) ListOrders(c *gin.Context) {
	if status := c.Query("status"); status != "" {
		orders, err := h.orderService.GetOrdersByStatus(models.OrderStatus(status))
		if err != nil {
			if errors.Is(err, services.ErrInvalidStatus) {
				resp.BadRequest(c, err.Error())
				return
			}
			resp.ServerError(c, err)
			return
		}
		resp.OK(c, orders)
		return
	}

	if c.Query("all") == "1" {
		orders, err := h.orderService.GetAllOrders()
		if err != nil {
			resp.ServerError(c, err)
			return
		}
		resp.OK(c, orders)
		return
	}

	orders, err := h.orderService.GetTodaysOrders()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, orders)
}

func (h *KitchenHandler) GetOrder(c *gin.Context) {
	number, err := strconv.ParseUint(c.Param("number"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid order number")
		return
	}

	order, err := h.orderService.GetOrderByNumber(uint(number))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "order not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, order)
}

type updateStatusRequest struct {
	Status models.OrderStatus `json:"status" binding:"required"`
}

func (h *KitchenHandler) UpdateStatus(c *gin.Context) {
	number, err := strconv.ParseUint(c.Param("number"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid order number")
		return
	}

	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "invalid request format")
		return
	}

	order, err := h.orderService.UpdateStatus(uint(number), req.Status)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidStatus):
			resp.BadRequest(c, err.Error())
		case errors.Is(err, gorm.ErrRecordNotFound):
			resp.NotFound(c, "order not found")
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.OK(c, order)
}
