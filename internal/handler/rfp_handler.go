package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/vendorhub/rfp-backend/internal/dto"
	"github.com/vendorhub/rfp-backend/internal/middleware"
	"github.com/vendorhub/rfp-backend/internal/service"
	"github.com/vendorhub/rfp-backend/pkg/apperror"
	"github.com/vendorhub/rfp-backend/pkg/response"
)

type RFPHandler struct {
	rfpService service.RFPService
}

func NewRFPHandler(rfpService service.RFPService) *RFPHandler {
	return &RFPHandler{rfpService: rfpService}
}

func (h *RFPHandler) Create(c *gin.Context) {
	caller, ok := middleware.CallerFrom(c)
	if !ok {
		response.Error(c, apperror.ErrUnauthorized)
		return
	}

	var req dto.SaveRFPRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, apperror.New(apperror.ErrBadRequest, err.Error()))
		return
	}

	if _, err := h.rfpService.Create(c.Request.Context(), req, caller.ID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, gin.H{"message": "RFP created successfully"})
}

func (h *RFPHandler) Update(c *gin.Context) {
	caller, ok := middleware.CallerFrom(c)
	if !ok {
		response.Error(c, apperror.ErrUnauthorized)
		return
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.SaveRFPRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, apperror.New(apperror.ErrBadRequest, err.Error()))
		return
	}

	if err := h.rfpService.Update(c.Request.Context(), id, req, caller.ID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, gin.H{"message": "RFP updated successfully"})
}

func (h *RFPHandler) Close(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.rfpService.Close(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, gin.H{"message": "RFP closed successfully"})
}

func (h *RFPHandler) GetByID(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	rfp, err := h.rfpService.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, gin.H{"rfp": rfp})
}

func (h *RFPHandler) GetAll(c *gin.Context) {
	rfps, err := h.rfpService.GetAll(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, gin.H{"rfps": rfps})
}

func (h *RFPHandler) ApplyQuote(c *gin.Context) {
	caller, ok := middleware.CallerFrom(c)
	if !ok {
		response.Error(c, apperror.ErrUnauthorized)
		return
	}

	rfpID, err := parseIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.ApplyQuoteRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, apperror.New(apperror.ErrBadRequest, err.Error()))
		return
	}

	if err := h.rfpService.ApplyQuote(c.Request.Context(), rfpID, caller, req); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, gin.H{"message": "Quote submitted successfully"})
}

func (h *RFPHandler) GetQuotes(c *gin.Context) {
	caller, ok := middleware.CallerFrom(c)
	if !ok {
		response.Error(c, apperror.ErrUnauthorized)
		return
	}

	rfpID, err := parseIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.rfpService.GetQuotes(c.Request.Context(), rfpID, caller)
	if err != nil {
		response.Error(c, err)
		return
	}

	// A vendor with no submitted quote gets a success with a message, not an
	// error.
	if result.Message != "" {
		response.Success(c, gin.H{"message": result.Message})
		return
	}

	response.Success(c, gin.H{"quotes": result.Quotes})
}

func (h *RFPHandler) ListByVendor(c *gin.Context) {
	caller, ok := middleware.CallerFrom(c)
	if !ok {
		response.Error(c, apperror.ErrUnauthorized)
		return
	}

	vendorID, err := parseIDParam(c, "vendor_id")
	if err != nil {
		response.Error(c, err)
		return
	}

	rfps, err := h.rfpService.ListByVendor(c.Request.Context(), vendorID, caller)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, gin.H{"rfps": rfps})
}
