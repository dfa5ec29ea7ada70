package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/vendorhub/rfp-backend/internal/dto"
	"github.com/vendorhub/rfp-backend/internal/model"
	"github.com/vendorhub/rfp-backend/internal/repository"
	"github.com/vendorhub/rfp-backend/pkg/apperror"
	"github.com/vendorhub/rfp-backend/pkg/validator"
)

type VendorService interface {
	RegisterVendor(ctx context.Context, req dto.RegisterVendorRequest) error
	VendorList(ctx context.Context) ([]dto.VendorListItem, error)
	VendorListByCategory(ctx context.Context, categoryID uint) ([]dto.VendorListItem, error)
}

type vendorService struct {
	users      repository.UserRepository
	categories repository.CategoryRepository
}

func NewVendorService(users repository.UserRepository, categories repository.CategoryRepository) VendorService {
	return &vendorService{users: users, categories: categories}
}

// RegisterVendor validates every user and vendor field up front, runs the
// friendly uniqueness and category checks, then creates user, profile and
// category links in one transaction.
func (s *vendorService) RegisterVendor(ctx context.Context, req dto.RegisterVendorRequest) error {
	if err := validator.Struct(req); err != nil {
		return err
	}

	categoryIDs, err := parseIDList(req.Categories)
	if err != nil {
		return apperror.New(apperror.ErrNotFound, "Category not found")
	}

	if _, err := s.users.FindByEmail(ctx, req.Email); err == nil {
		return apperror.New(apperror.ErrConflict, "Email already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	if _, err := s.users.FindProfileByPancard(ctx, req.PancardNo); err == nil {
		return apperror.New(apperror.ErrConflict, "Pancard number already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	if _, err := s.users.FindProfileByGst(ctx, req.GstNo); err == nil {
		return apperror.New(apperror.ErrConflict, "GST number already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	for _, categoryID := range categoryIDs {
		if _, err := s.categories.FindByID(ctx, categoryID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperror.New(apperror.ErrNotFound, fmt.Sprintf("Category %d not found", categoryID))
			}
			return err
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := &model.User{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		PasswordHash: string(hash),
		Mobile:       req.Mobile,
		Type:         model.UserTypeVendor,
		Status:       model.UserStatusPending,
	}
	profile := &model.VendorProfile{
		NoOfEmployees: req.NoOfEmployees,
		Revenue:       req.Revenue,
		PancardNo:     req.PancardNo,
		GstNo:         req.GstNo,
	}

	return s.users.CreateVendor(ctx, user, profile, categoryIDs)
}

func (s *vendorService) VendorList(ctx context.Context) ([]dto.VendorListItem, error) {
	vendors, err := s.users.FindVendors(ctx)
	if err != nil {
		return nil, err
	}
	return projectVendors(vendors), nil
}

func (s *vendorService) VendorListByCategory(ctx context.Context, categoryID uint) ([]dto.VendorListItem, error) {
	if _, err := s.categories.FindByID(ctx, categoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.New(apperror.ErrNotFound, "Category not found")
		}
		return nil, err
	}

	vendors, err := s.users.FindVendorsByCategory(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	return projectVendors(vendors), nil
}

func projectVendors(vendors []*model.User) []dto.VendorListItem {
	items := make([]dto.VendorListItem, 0, len(vendors))
	for _, v := range vendors {
		item := dto.VendorListItem{
			UserID: v.ID,
			Name:   v.FullName(),
			Email:  v.Email,
			Mobile: v.Mobile,
			Status: string(v.Status),
		}
		if v.Profile != nil {
			item.NoOfEmployees = v.Profile.NoOfEmployees
		}
		names := make([]string, 0, len(v.Categories))
		for _, vc := range v.Categories {
			names = append(names, vc.Category.Name)
		}
		item.Categories = strings.Join(names, ",")
		items = append(items, item)
	}
	return items
}
