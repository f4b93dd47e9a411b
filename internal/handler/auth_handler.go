package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vinaypatil-tal/scoot-assist-chat/internal/services"
)

type AuthHandler struct {
	auth *services.AuthService
}

func NewAuthHandler(auth *services.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

type requestCodeRequest struct {
	PhoneNumber string `json:"phone_number" binding:"required"`
}

func (h *AuthHandler) RequestCode(c *gin.Context) {
	var req requestCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}
	if err := h.auth.RequestCode(c.Request.Context(), req.PhoneNumber); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not send code"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "code sent"})
}

type verifyCodeRequest struct {
	PhoneNumber string `json:"phone_number" binding:"required"`
	Code        string `json:"code" binding:"required"`
}

func (h *AuthHandler) VerifyCode(c *gin.Context) {
	var req verifyCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}
	token, profile, err := h.auth.VerifyCode(c.Request.Context(), req.PhoneNumber, req.Code)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token, "profile": profile})
}

type adminLoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) AdminLogin(c *gin.Context) {
	var req adminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}
	token, err := h.auth.AdminLogin(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	token := c.GetString("token")
	if err := h.auth.Logout(c.Request.Context(), token); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not log out"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "logged out"})
}

func (h *AuthHandler) Me(c *gin.Context) {
	profile, err := h.auth.GetProfile(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
		return
	}
	c.JSON(http.StatusOK, profile)
}
