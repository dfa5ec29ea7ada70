package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/vendorhub/rfp-backend/internal/dto"
	"github.com/vendorhub/rfp-backend/internal/model"
	"github.com/vendorhub/rfp-backend/internal/repository"
	"github.com/vendorhub/rfp-backend/pkg/apperror"
	"github.com/vendorhub/rfp-backend/pkg/mailer"
	"github.com/vendorhub/rfp-backend/pkg/validator"
)

// QuotesResult carries either the quote rows or, for a vendor who has not
// applied yet, an informational message. Both are success outcomes.
type QuotesResult struct {
	Quotes  []dto.QuoteResponse
	Message string
}

type RFPService interface {
	Create(ctx context.Context, req dto.SaveRFPRequest, adminID uint) (*model.RFP, error)
	Update(ctx context.Context, id uint, req dto.SaveRFPRequest, adminID uint) error
	Close(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*dto.RFPResponse, error)
	GetAll(ctx context.Context) ([]dto.RFPResponse, error)
	ApplyQuote(ctx context.Context, rfpID uint, caller Caller, req dto.ApplyQuoteRequest) error
	GetQuotes(ctx context.Context, rfpID uint, caller Caller) (*QuotesResult, error)
	ListByVendor(ctx context.Context, vendorID uint, caller Caller) ([]dto.VendorRFPResponse, error)
}

type rfpService struct {
	rfps     repository.RFPRepository
	users    repository.UserRepository
	catRepo  repository.CategoryRepository
	notifier mailer.Notifier
}

func NewRFPService(rfps repository.RFPRepository, users repository.UserRepository, categories repository.CategoryRepository, notifier mailer.Notifier) RFPService {
	return &rfpService{rfps: rfps, users: users, catRepo: categories, notifier: notifier}
}

func (s *rfpService) Create(ctx context.Context, req dto.SaveRFPRequest, adminID uint) (*model.RFP, error) {
	categoryIDs, vendorIDs, err := s.validateAndResolve(ctx, req)
	if err != nil {
		return nil, err
	}

	if _, err := s.rfps.FindByRFPNo(ctx, req.RFPNo); err == nil {
		return nil, apperror.New(apperror.ErrConflict, "RFP number already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	rfp := &model.RFP{
		AdminID:         adminID,
		RFPNo:           req.RFPNo,
		ItemName:        req.ItemName,
		ItemDescription: req.ItemDescription,
		Quantity:        req.Quantity,
		LastDate:        req.LastDate,
		MinimumPrice:    req.MinimumPrice,
		MaximumPrice:    req.MaximumPrice,
		Status:          model.RFPStatusOpen,
	}

	if err := s.rfps.Create(ctx, rfp, categoryIDs, vendorIDs); err != nil {
		return nil, err
	}
	return rfp, nil
}

func (s *rfpService) Update(ctx context.Context, id uint, req dto.SaveRFPRequest, adminID uint) error {
	categoryIDs, vendorIDs, err := s.validateAndResolve(ctx, req)
	if err != nil {
		return err
	}

	rfp, err := s.findRFP(ctx, id)
	if err != nil {
		return err
	}

	// A changed rfp_no must stay globally unique; colliding with this
	// record's own number is not a conflict.
	if existing, err := s.rfps.FindByRFPNo(ctx, req.RFPNo); err == nil && existing.ID != id {
		return apperror.New(apperror.ErrConflict, "RFP number already exists")
	} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	rfp.AdminID = adminID
	rfp.RFPNo = req.RFPNo
	rfp.ItemName = req.ItemName
	rfp.ItemDescription = req.ItemDescription
	rfp.Quantity = req.Quantity
	rfp.LastDate = req.LastDate
	rfp.MinimumPrice = req.MinimumPrice
	rfp.MaximumPrice = req.MaximumPrice
	rfp.Categories = nil
	rfp.Vendors = nil

	return s.rfps.Update(ctx, rfp, categoryIDs, vendorIDs)
}

// Close marks the RFP closed. Closing an already-closed RFP is a no-op
// success: the transition is one-way and the end state is identical.
func (s *rfpService) Close(ctx context.Context, id uint) error {
	if _, err := s.findRFP(ctx, id); err != nil {
		return err
	}
	return s.rfps.SetStatus(ctx, id, model.RFPStatusClosed)
}

func (s *rfpService) GetByID(ctx context.Context, id uint) (*dto.RFPResponse, error) {
	rfp, err := s.findRFP(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := projectRFP(rfp)
	return &resp, nil
}

func (s *rfpService) GetAll(ctx context.Context) ([]dto.RFPResponse, error) {
	rfps, err := s.rfps.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.RFPResponse, 0, len(rfps))
	for _, rfp := range rfps {
		out = append(out, projectRFP(rfp))
	}
	return out, nil
}

func (s *rfpService) ApplyQuote(ctx context.Context, rfpID uint, caller Caller, req dto.ApplyQuoteRequest) error {
	if err := validator.Struct(req); err != nil {
		return err
	}

	rfp, err := s.findRFP(ctx, rfpID)
	if err != nil {
		return err
	}
	if rfp.Status == model.RFPStatusClosed {
		return apperror.New(apperror.ErrForbidden, "RFP is closed")
	}

	if _, err := s.rfps.FindInvitation(ctx, rfpID, caller.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.New(apperror.ErrForbidden, "You are not assigned to this RFP or already applied")
		}
		return err
	}

	itemPrice := *req.ItemPrice
	totalCost := itemPrice * float64(rfp.Quantity)
	if req.TotalCost != nil {
		totalCost = *req.TotalCost
	}

	applied, err := s.rfps.ApplyQuote(ctx, rfpID, caller.ID, itemPrice, totalCost, time.Now())
	if err != nil {
		return err
	}
	if !applied {
		return apperror.New(apperror.ErrForbidden, "You are not assigned to this RFP or already applied")
	}

	s.notifyQuoteSubmitted(ctx, rfp, caller.ID)
	return nil
}

// notifyQuoteSubmitted is best-effort: a delivery failure is logged and never
// surfaces to the vendor whose quote already committed.
func (s *rfpService) notifyQuoteSubmitted(ctx context.Context, rfp *model.RFP, vendorID uint) {
	if s.notifier == nil {
		return
	}
	vendor, err := s.users.FindByID(ctx, vendorID)
	if err != nil {
		log.Printf("apply quote: could not load vendor %d for notification: %v", vendorID, err)
		return
	}
	body := fmt.Sprintf("Your quote for RFP %q (%s) has been submitted successfully.", rfp.ItemName, rfp.RFPNo)
	if err := s.notifier.Send(vendor.Email, "Quote Submitted", body); err != nil {
		log.Printf("apply quote: confirmation email to %s failed: %v", vendor.Email, err)
	}
}

func (s *rfpService) GetQuotes(ctx context.Context, rfpID uint, caller Caller) (*QuotesResult, error) {
	if _, err := s.findRFP(ctx, rfpID); err != nil {
		return nil, err
	}

	var (
		rows []*model.RFPVendor
		err  error
	)
	if caller.IsAdmin() {
		rows, err = s.rfps.QuotesForRFP(ctx, rfpID)
	} else {
		rows, err = s.rfps.AppliedQuotesForVendor(ctx, rfpID, caller.ID)
	}
	if err != nil {
		return nil, err
	}

	if !caller.IsAdmin() && len(rows) == 0 {
		return &QuotesResult{Message: "You have not applied for the RFP"}, nil
	}

	quotes := make([]dto.QuoteResponse, 0, len(rows))
	for _, row := range rows {
		quotes = append(quotes, dto.QuoteResponse{
			VendorID:  row.VendorID,
			Name:      row.Vendor.FullName(),
			Email:     row.Vendor.Email,
			Mobile:    row.Vendor.Mobile,
			ItemPrice: row.ItemPrice,
			TotalCost: row.TotalCost,
		})
	}
	return &QuotesResult{Quotes: quotes}, nil
}

func (s *rfpService) ListByVendor(ctx context.Context, vendorID uint, caller Caller) ([]dto.VendorRFPResponse, error) {
	// Vendors may only look at their own invitations.
	if caller.IsVendor() && caller.ID != vendorID {
		return nil, apperror.New(apperror.ErrForbidden, "Forbidden")
	}

	invites, err := s.rfps.InvitationsByVendor(ctx, vendorID)
	if err != nil {
		return nil, err
	}

	out := make([]dto.VendorRFPResponse, 0, len(invites))
	for _, invite := range invites {
		resp := dto.VendorRFPResponse{
			RFPResponse:   projectRFP(&invite.RFP),
			VendorID:      invite.VendorID,
			ItemPrice:     invite.ItemPrice,
			TotalCost:     invite.TotalCost,
			AppliedStatus: string(invite.AppliedStatus),
			RFPStatus:     string(invite.RFP.Status),
		}
		resp.Vendors = ""
		out = append(out, resp)
	}
	return out, nil
}

// validateAndResolve runs the shared create/update pipeline: field validation
// with every violation collected, then id-list parsing, then existence checks
// that name the exact category or vendor that failed.
func (s *rfpService) validateAndResolve(ctx context.Context, req dto.SaveRFPRequest) ([]uint, []uint, error) {
	if err := validator.Struct(req); err != nil {
		return nil, nil, err
	}

	categoryIDs, err := parseIDList(req.Categories)
	if err != nil {
		return nil, nil, apperror.New(apperror.ErrNotFound, "Category not found")
	}
	vendorIDs, err := parseIDList(req.Vendors)
	if err != nil {
		return nil, nil, apperror.New(apperror.ErrNotFound, "Vendor not found")
	}

	for _, categoryID := range categoryIDs {
		if _, err := s.catRepo.FindByID(ctx, categoryID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, nil, apperror.New(apperror.ErrNotFound, fmt.Sprintf("Category %d not found", categoryID))
			}
			return nil, nil, err
		}
	}

	// Invited vendors must have a registered vendor profile, not just a user row.
	for _, vendorID := range vendorIDs {
		if _, err := s.users.FindProfileByUserID(ctx, vendorID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, nil, apperror.New(apperror.ErrNotFound, fmt.Sprintf("Vendor %d not found", vendorID))
			}
			return nil, nil, err
		}
	}

	return categoryIDs, vendorIDs, nil
}

func (s *rfpService) findRFP(ctx context.Context, id uint) (*model.RFP, error) {
	rfp, err := s.rfps.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.New(apperror.ErrNotFound, "RFP not found")
		}
		return nil, err
	}
	return rfp, nil
}

func projectRFP(rfp *model.RFP) dto.RFPResponse {
	categoryIDs := make([]string, 0, len(rfp.Categories))
	for _, rc := range rfp.Categories {
		categoryIDs = append(categoryIDs, strconv.FormatUint(uint64(rc.CategoryID), 10))
	}
	vendorIDs := make([]string, 0, len(rfp.Vendors))
	for _, rv := range rfp.Vendors {
		vendorIDs = append(vendorIDs, strconv.FormatUint(uint64(rv.VendorID), 10))
	}

	return dto.RFPResponse{
		RFPID:           rfp.ID,
		AdminID:         rfp.AdminID,
		ItemName:        rfp.ItemName,
		ItemDescription: rfp.ItemDescription,
		RFPNo:           rfp.RFPNo,
		Quantity:        rfp.Quantity,
		LastDate:        rfp.LastDate,
		MinimumPrice:    rfp.MinimumPrice,
		MaximumPrice:    rfp.MaximumPrice,
		Categories:      strings.Join(categoryIDs, ","),
		Vendors:         strings.Join(vendorIDs, ","),
		Status:          string(rfp.Status),
	}
}

// parseIDList parses a comma-separated id list, ignoring blank segments.
func parseIDList(s string) ([]uint, error) {
	parts := strings.Split(s, ",")
	ids := make([]uint, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseUint(part, 10, 64)
		if err != nil {
			return nil, err
		}
		ids = append(ids, uint(id))
	}
	if len(ids) == 0 {
		return nil, errors.New("empty id list")
	}
	return ids, nil
}
