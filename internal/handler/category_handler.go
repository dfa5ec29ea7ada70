package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/vendorhub/rfp-backend/internal/dto"
	"github.com/vendorhub/rfp-backend/internal/service"
	"github.com/vendorhub/rfp-backend/pkg/apperror"
	"github.com/vendorhub/rfp-backend/pkg/response"
)

type CategoryHandler struct {
	categoryService service.CategoryService
}

func NewCategoryHandler(categoryService service.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

func (h *CategoryHandler) Create(c *gin.Context) {
	var req dto.SaveCategoryRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, apperror.New(apperror.ErrBadRequest, err.Error()))
		return
	}

	category, err := h.categoryService.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, gin.H{"category": category})
}

func (h *CategoryHandler) Rename(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.SaveCategoryRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, apperror.New(apperror.ErrBadRequest, err.Error()))
		return
	}

	if err := h.categoryService.Rename(c.Request.Context(), id, req); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, gin.H{"message": "Category updated successfully"})
}

func (h *CategoryHandler) ToggleStatus(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.categoryService.ToggleStatus(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, gin.H{"message": "Category status updated successfully"})
}

func (h *CategoryHandler) GetByID(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	category, err := h.categoryService.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, gin.H{"category": category})
}

func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.categoryService.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, gin.H{"categories": categories})
}

func (h *CategoryHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.categoryService.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, gin.H{"message": "Category deleted successfully"})
}
