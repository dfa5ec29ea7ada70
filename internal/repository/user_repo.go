package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/vendorhub/rfp-backend/internal/model"
)

type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	// CreateVendor creates the user, its vendor profile and one category link
	// per id inside one transaction; any failure rolls back all three.
	CreateVendor(ctx context.Context, user *model.User, profile *model.VendorProfile, categoryIDs []uint) error
	FindByID(ctx context.Context, id uint) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	Update(ctx context.Context, user *model.User) error
	FindProfileByUserID(ctx context.Context, userID uint) (*model.VendorProfile, error)
	FindProfileByPancard(ctx context.Context, pancardNo string) (*model.VendorProfile, error)
	FindProfileByGst(ctx context.Context, gstNo string) (*model.VendorProfile, error)
	FindVendors(ctx context.Context) ([]*model.User, error)
	FindVendorsByCategory(ctx context.Context, categoryID uint) ([]*model.User, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) CreateVendor(ctx context.Context, user *model.User, profile *model.VendorProfile, categoryIDs []uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}

		profile.UserID = user.ID
		if err := tx.Create(profile).Error; err != nil {
			return err
		}

		for _, categoryID := range categoryIDs {
			link := model.VendorCategory{UserID: user.ID, CategoryID: categoryID}
			if err := tx.Create(&link).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

func (r *userRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).
		Preload("Profile").
		First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).
		Preload("Profile").
		Where("email = ?", email).
		First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) Update(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

func (r *userRepository) FindProfileByUserID(ctx context.Context, userID uint) (*model.VendorProfile, error) {
	var profile model.VendorProfile
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *userRepository) FindProfileByPancard(ctx context.Context, pancardNo string) (*model.VendorProfile, error) {
	var profile model.VendorProfile
	if err := r.db.WithContext(ctx).Where("pancard_no = ?", pancardNo).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *userRepository) FindProfileByGst(ctx context.Context, gstNo string) (*model.VendorProfile, error) {
	var profile model.VendorProfile
	if err := r.db.WithContext(ctx).Where("gst_no = ?", gstNo).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *userRepository) FindVendors(ctx context.Context) ([]*model.User, error) {
	var users []*model.User
	if err := r.db.WithContext(ctx).
		Preload("Profile").
		Preload("Categories.Category").
		Where("type = ?", model.UserTypeVendor).
		Order("id ASC").
		Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) FindVendorsByCategory(ctx context.Context, categoryID uint) ([]*model.User, error) {
	var users []*model.User
	if err := r.db.WithContext(ctx).
		Preload("Profile").
		Preload("Categories.Category").
		Joins("JOIN vendor_categories vc ON vc.user_id = users.id").
		Where("vc.category_id = ? AND users.type = ?", categoryID, model.UserTypeVendor).
		Order("users.id ASC").
		Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}
