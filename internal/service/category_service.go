package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/vendorhub/rfp-backend/internal/dto"
	"github.com/vendorhub/rfp-backend/internal/model"
	"github.com/vendorhub/rfp-backend/internal/repository"
	"github.com/vendorhub/rfp-backend/pkg/apperror"
	"github.com/vendorhub/rfp-backend/pkg/validator"
)

type CategoryService interface {
	Create(ctx context.Context, req dto.SaveCategoryRequest) (*model.Category, error)
	Rename(ctx context.Context, id uint, req dto.SaveCategoryRequest) error
	ToggleStatus(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*model.Category, error)
	List(ctx context.Context) (map[uint]*model.Category, error)
	Delete(ctx context.Context, id uint) error
}

type categoryService struct {
	repo repository.CategoryRepository
}

func NewCategoryService(repo repository.CategoryRepository) CategoryService {
	return &categoryService{repo: repo}
}

func (s *categoryService) Create(ctx context.Context, req dto.SaveCategoryRequest) (*model.Category, error) {
	if err := validator.Struct(req); err != nil {
		return nil, err
	}

	if _, err := s.repo.FindByName(ctx, req.Name); err == nil {
		return nil, apperror.New(apperror.ErrConflict, "Category name already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	category := &model.Category{Name: req.Name, Status: model.CategoryStatusActive}
	if err := s.repo.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *categoryService) Rename(ctx context.Context, id uint, req dto.SaveCategoryRequest) error {
	if err := validator.Struct(req); err != nil {
		return err
	}

	category, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if existing, err := s.repo.FindByName(ctx, req.Name); err == nil && existing.ID != id {
		return apperror.New(apperror.ErrConflict, "Category name already exists")
	} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	category.Name = req.Name
	return s.repo.Update(ctx, category)
}

func (s *categoryService) ToggleStatus(ctx context.Context, id uint) error {
	category, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if category.Status == model.CategoryStatusActive {
		category.Status = model.CategoryStatusInactive
	} else {
		category.Status = model.CategoryStatusActive
	}
	return s.repo.Update(ctx, category)
}

func (s *categoryService) GetByID(ctx context.Context, id uint) (*model.Category, error) {
	category, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.New(apperror.ErrNotFound, "Category not found")
		}
		return nil, err
	}
	return category, nil
}

// List returns categories keyed by id, the shape the admin UI consumes.
func (s *categoryService) List(ctx context.Context) (map[uint]*model.Category, error) {
	categories, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	byID := make(map[uint]*model.Category, len(categories))
	for _, c := range categories {
		byID[c.ID] = c
	}
	return byID, nil
}

func (s *categoryService) Delete(ctx context.Context, id uint) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
