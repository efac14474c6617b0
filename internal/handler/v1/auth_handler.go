package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/openclinic/hms/internal/domain"
	"github.com/openclinic/hms/internal/service"
)

type AuthHandler struct {
	authSvc *service.AuthService
}

func NewAuthHandler(authSvc *service.AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required"`
}

type loginResponse struct {
	Token *domain.TokenPair `json:"token"`
	User  domain.User       `json:"user"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var cmd domain.CreateUserCommand
	if !bindJSON(c, &cmd) {
		return
	}

	u, err := h.authSvc.Register(&cmd)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, u)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if !bindJSON(c, &req) {
		return
	}

	pair, user, err := h.authSvc.Login(req.Username, req.Password)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, loginResponse{Token: pair, User: user})
}

func (h *AuthHandler) Refresh(c *gin.Context) {
	var req refreshRequest
	if !bindJSON(c, &req) {
		return
	}

	pair, err := h.authSvc.Refresh(req.RefreshToken)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, pair)
}

func (h *AuthHandler) Me(c *gin.Context) {
	u, err := h.authSvc.CurrentUser(callerID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var req changePasswordRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.authSvc.ChangePassword(callerID(c), req.CurrentPassword, req.NewPassword); err != nil {
		respondServiceError(c, err)
		return
	}
	respondMessage(c, http.StatusOK, "password updated")
}

// Logout is a no-op server side: tokens are stateless and simply discarded
// by the client.
func (h *AuthHandler) Logout(c *gin.Context) {
	respondMessage(c, http.StatusOK, "logged out")
}
