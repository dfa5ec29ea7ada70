package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/vendorhub/rfp-backend/internal/dto"
	"github.com/vendorhub/rfp-backend/internal/service"
	"github.com/vendorhub/rfp-backend/pkg/apperror"
	"github.com/vendorhub/rfp-backend/pkg/response"
)

type VendorHandler struct {
	vendorService service.VendorService
}

func NewVendorHandler(vendorService service.VendorService) *VendorHandler {
	return &VendorHandler{vendorService: vendorService}
}

func (h *VendorHandler) RegisterVendor(c *gin.Context) {
	var req dto.RegisterVendorRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, apperror.New(apperror.ErrBadRequest, err.Error()))
		return
	}

	if err := h.vendorService.RegisterVendor(c.Request.Context(), req); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, gin.H{"message": "Vendor registered successfully"})
}

func (h *VendorHandler) GetVendorList(c *gin.Context) {
	vendors, err := h.vendorService.VendorList(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, gin.H{"vendors": vendors})
}

func (h *VendorHandler) GetVendorListByCategory(c *gin.Context) {
	categoryID, err := parseIDParam(c, "category_id")
	if err != nil {
		response.Error(c, err)
		return
	}

	vendors, err := h.vendorService.VendorListByCategory(c.Request.Context(), categoryID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, gin.H{"vendors": vendors})
}
