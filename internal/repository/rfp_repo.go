package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/vendorhub/rfp-backend/internal/model"
)

type RFPRepository interface {
	Create(ctx context.Context, rfp *model.RFP, categoryIDs, vendorIDs []uint) error
	Update(ctx context.Context, rfp *model.RFP, categoryIDs, vendorIDs []uint) error
	FindByID(ctx context.Context, id uint) (*model.RFP, error)
	FindByRFPNo(ctx context.Context, rfpNo string) (*model.RFP, error)
	FindAll(ctx context.Context) ([]*model.RFP, error)
	SetStatus(ctx context.Context, id uint, status model.RFPStatus) error
	FindInvitation(ctx context.Context, rfpID, vendorID uint) (*model.RFPVendor, error)
	// ApplyQuote flips an invitation from open to applied with one conditional
	// update. It reports false when no open invitation row matched, which is
	// the at-most-one-quote guarantee under concurrent submissions.
	ApplyQuote(ctx context.Context, rfpID, vendorID uint, itemPrice, totalCost float64, appliedAt time.Time) (bool, error)
	QuotesForRFP(ctx context.Context, rfpID uint) ([]*model.RFPVendor, error)
	AppliedQuotesForVendor(ctx context.Context, rfpID, vendorID uint) ([]*model.RFPVendor, error)
	InvitationsByVendor(ctx context.Context, vendorID uint) ([]*model.RFPVendor, error)
}

type rfpRepository struct {
	db *gorm.DB
}

func NewRFPRepository(db *gorm.DB) RFPRepository {
	return &rfpRepository{db: db}
}

func (r *rfpRepository) Create(ctx context.Context, rfp *model.RFP, categoryIDs, vendorIDs []uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(rfp).Error; err != nil {
			return err
		}

		for _, categoryID := range categoryIDs {
			link := model.RFPCategory{RFPID: rfp.ID, CategoryID: categoryID}
			if err := tx.Create(&link).Error; err != nil {
				return err
			}
		}

		for _, vendorID := range vendorIDs {
			invite := model.RFPVendor{RFPID: rfp.ID, VendorID: vendorID, AppliedStatus: model.AppliedStatusOpen}
			if err := tx.Create(&invite).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

// Update replaces the category tags wholesale but reconciles vendor
// invitations with a diff: an invitation whose quote was already submitted is
// never removed, even when its vendor is absent from the new list.
func (r *rfpRepository) Update(ctx context.Context, rfp *model.RFP, categoryIDs, vendorIDs []uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(rfp).Error; err != nil {
			return err
		}

		if err := tx.Where("rfp_id = ?", rfp.ID).Delete(&model.RFPCategory{}).Error; err != nil {
			return err
		}
		for _, categoryID := range categoryIDs {
			link := model.RFPCategory{RFPID: rfp.ID, CategoryID: categoryID}
			if err := tx.Create(&link).Error; err != nil {
				return err
			}
		}

		var existing []model.RFPVendor
		if err := tx.Where("rfp_id = ?", rfp.ID).Find(&existing).Error; err != nil {
			return err
		}
		invited := make(map[uint]bool, len(existing))
		for _, inv := range existing {
			invited[inv.VendorID] = true
		}

		if err := tx.Where("rfp_id = ? AND vendor_id NOT IN ? AND applied_status = ?",
			rfp.ID, vendorIDs, model.AppliedStatusOpen).
			Delete(&model.RFPVendor{}).Error; err != nil {
			return err
		}

		for _, vendorID := range vendorIDs {
			if invited[vendorID] {
				continue
			}
			invite := model.RFPVendor{RFPID: rfp.ID, VendorID: vendorID, AppliedStatus: model.AppliedStatusOpen}
			if err := tx.Create(&invite).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

func (r *rfpRepository) FindByID(ctx context.Context, id uint) (*model.RFP, error) {
	var rfp model.RFP
	if err := r.db.WithContext(ctx).
		Preload("Categories").
		Preload("Vendors").
		First(&rfp, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &rfp, nil
}

func (r *rfpRepository) FindByRFPNo(ctx context.Context, rfpNo string) (*model.RFP, error) {
	var rfp model.RFP
	if err := r.db.WithContext(ctx).Where("rfp_no = ?", rfpNo).First(&rfp).Error; err != nil {
		return nil, err
	}
	return &rfp, nil
}

func (r *rfpRepository) FindAll(ctx context.Context) ([]*model.RFP, error) {
	var rfps []*model.RFP
	if err := r.db.WithContext(ctx).
		Preload("Categories").
		Preload("Vendors").
		Order("id ASC").
		Find(&rfps).Error; err != nil {
		return nil, err
	}
	return rfps, nil
}

func (r *rfpRepository) SetStatus(ctx context.Context, id uint, status model.RFPStatus) error {
	return r.db.WithContext(ctx).
		Model(&model.RFP{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *rfpRepository) FindInvitation(ctx context.Context, rfpID, vendorID uint) (*model.RFPVendor, error) {
	var invite model.RFPVendor
	if err := r.db.WithContext(ctx).
		Where("rfp_id = ? AND vendor_id = ?", rfpID, vendorID).
		First(&invite).Error; err != nil {
		return nil, err
	}
	return &invite, nil
}

func (r *rfpRepository) ApplyQuote(ctx context.Context, rfpID, vendorID uint, itemPrice, totalCost float64, appliedAt time.Time) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&model.RFPVendor{}).
		Where("rfp_id = ? AND vendor_id = ? AND applied_status = ?", rfpID, vendorID, model.AppliedStatusOpen).
		Updates(map[string]any{
			"applied_status": model.AppliedStatusApplied,
			"item_price":     itemPrice,
			"total_cost":     totalCost,
			"applied_at":     appliedAt,
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

func (r *rfpRepository) QuotesForRFP(ctx context.Context, rfpID uint) ([]*model.RFPVendor, error) {
	var quotes []*model.RFPVendor
	if err := r.db.WithContext(ctx).
		Preload("Vendor").
		Where("rfp_id = ?", rfpID).
		Order("id ASC").
		Find(&quotes).Error; err != nil {
		return nil, err
	}
	return quotes, nil
}

func (r *rfpRepository) AppliedQuotesForVendor(ctx context.Context, rfpID, vendorID uint) ([]*model.RFPVendor, error) {
	var quotes []*model.RFPVendor
	if err := r.db.WithContext(ctx).
		Preload("Vendor").
		Where("rfp_id = ? AND vendor_id = ? AND applied_status = ?", rfpID, vendorID, model.AppliedStatusApplied).
		Find(&quotes).Error; err != nil {
		return nil, err
	}
	return quotes, nil
}

func (r *rfpRepository) InvitationsByVendor(ctx context.Context, vendorID uint) ([]*model.RFPVendor, error) {
	var invites []*model.RFPVendor
	if err := r.db.WithContext(ctx).
		Preload("RFP.Categories").
		Where("vendor_id = ?", vendorID).
		Order("id ASC").
		Find(&invites).Error; err != nil {
		return nil, err
	}
	return invites, nil
}
