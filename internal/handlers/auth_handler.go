package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"marmitaria/internal/services"
	"marmitaria/pkg/resp"
)

type AuthHandler struct {
	authService services.AuthService
}

func NewAuthHandler(authService services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type loginRequest struct {
	Password string `json:"password" binding:"required"`
}

// Login exchanges the shared staff password for a session token.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "invalid request format")
		return
	}

	token, err := h.authService.Login(req.Password)
	if err != nil {
		if errors.Is(err, services.ErrWrongPassword) {
			resp.Unauthorized(c, "wrong password")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"token": token})
}
