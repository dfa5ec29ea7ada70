package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/vendorhub/rfp-backend/internal/dto"
	"github.com/vendorhub/rfp-backend/internal/service"
	"github.com/vendorhub/rfp-backend/pkg/apperror"
	"github.com/vendorhub/rfp-backend/pkg/response"
)

type AdminHandler struct {
	userService service.UserService
}

func NewAdminHandler(userService service.UserService) *AdminHandler {
	return &AdminHandler{userService: userService}
}

func (h *AdminHandler) RegisterAdmin(c *gin.Context) {
	var req dto.RegisterAdminRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, apperror.New(apperror.ErrBadRequest, err.Error()))
		return
	}

	if err := h.userService.RegisterAdmin(c.Request.Context(), req); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, gin.H{"message": "Admin registered successfully"})
}

func (h *AdminHandler) ApproveVendor(c *gin.Context) {
	vendorUserID, err := parseIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.ApproveVendorRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, apperror.New(apperror.ErrBadRequest, err.Error()))
		return
	}

	if err := h.userService.ApproveOrRejectVendor(c.Request.Context(), vendorUserID, req.Decision); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, gin.H{"message": "Vendor status updated successfully"})
}
