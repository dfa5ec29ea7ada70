package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/vendorhub/rfp-backend/internal/dto"
	"github.com/vendorhub/rfp-backend/internal/service"
	"github.com/vendorhub/rfp-backend/pkg/apperror"
	"github.com/vendorhub/rfp-backend/pkg/response"
)

type AuthHandler struct {
	authService service.AuthService
	userService service.UserService
}

func NewAuthHandler(authService service.AuthService, userService service.UserService) *AuthHandler {
	return &AuthHandler{authService: authService, userService: userService}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, apperror.New(apperror.ErrBadRequest, err.Error()))
		return
	}

	res, err := h.authService.Login(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, gin.H{"data": res})
}

func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req dto.ForgotPasswordRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, apperror.New(apperror.ErrBadRequest, err.Error()))
		return
	}

	if err := h.userService.ForgotPassword(c.Request.Context(), req); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, gin.H{"message": "OTP sent to email"})
}

func (h *AuthHandler) ResetPasswordWithOTP(c *gin.Context) {
	var req dto.ResetPasswordOTPRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, apperror.New(apperror.ErrBadRequest, err.Error()))
		return
	}

	if err := h.userService.ResetPasswordWithOTP(c.Request.Context(), req); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, gin.H{"message": "Password reset successfully"})
}

func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var req dto.ChangePasswordRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, apperror.New(apperror.ErrBadRequest, err.Error()))
		return
	}

	if err := h.userService.ChangePassword(c.Request.Context(), req); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, gin.H{"message": "Password changed successfully"})
}
