package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vendorhub/rfp-backend/internal/dto"
	"github.com/vendorhub/rfp-backend/internal/model"
	"github.com/vendorhub/rfp-backend/pkg/apperror"
)

func validRFPRequest(categoryID, vendorID uint) dto.SaveRFPRequest {
	return dto.SaveRFPRequest{
		ItemName:        "Laptop Batch",
		RFPNo:           "RFP-001",
		ItemDescription: "Bulk laptop purchase",
		Quantity:        10,
		LastDate:        "2099-01-01",
		MinimumPrice:    500,
		MaximumPrice:    1000,
		Categories:      fmt.Sprintf("%d", categoryID),
		Vendors:         fmt.Sprintf("%d", vendorID),
	}
}

func floatPtr(f float64) *float64 { return &f }

func TestCreateRFPCollectsAllValidationErrors(t *testing.T) {
	db := setupTestDB(t)
	svc := newRFPServiceForTest(t, db, &fakeNotifier{})
	admin := seedAdmin(t, db, "admin@corp.test")

	req := dto.SaveRFPRequest{
		ItemName:     "ab",
		RFPNo:        "",
		Quantity:     0,
		LastDate:     "2020-01-01",
		MinimumPrice: 100,
		MaximumPrice: 50,
		Categories:   "",
		Vendors:      "",
	}

	_, err := svc.Create(context.Background(), req, admin.ID)
	require.Error(t, err)

	var ve *apperror.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Contains(t, ve.Messages, "Item name must be between 3 and 255 characters")
	assert.Contains(t, ve.Messages, "RFP number is required")
	assert.Contains(t, ve.Messages, "Quantity must be greater than 0")
	assert.Contains(t, ve.Messages, "Last date must not be in the past")
	assert.Contains(t, ve.Messages, "Maximum price must be greater than minimum price")
	assert.Contains(t, ve.Messages, "Categories are required")
	assert.Contains(t, ve.Messages, "Vendors are required")
}

func TestCreateRFPPriceAndDateRules(t *testing.T) {
	db := setupTestDB(t)
	svc := newRFPServiceForTest(t, db, &fakeNotifier{})
	admin := seedAdmin(t, db, "admin@corp.test")
	category := seedCategory(t, db, "Electronics")
	vendor := seedVendor(t, db, "vendor@corp.test", "ABCDE1234F", "22ABCDE1234F1Z5")

	cases := []struct {
		name    string
		mutate  func(*dto.SaveRFPRequest)
		message string
	}{
		{"negative minimum", func(r *dto.SaveRFPRequest) { r.MinimumPrice = -1 }, "Minimum price must be greater than or equal to 0"},
		{"max below min", func(r *dto.SaveRFPRequest) { r.MaximumPrice = r.MinimumPrice - 1 }, "Maximum price must be greater than minimum price"},
		{"zero quantity", func(r *dto.SaveRFPRequest) { r.Quantity = 0 }, "Quantity must be greater than 0"},
		{"past date", func(r *dto.SaveRFPRequest) { r.LastDate = "2001-06-01" }, "Last date must not be in the past"},
		{"bad date format", func(r *dto.SaveRFPRequest) { r.LastDate = "01-06-2099" }, "Last date must be in YYYY-MM-DD format"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validRFPRequest(category.ID, vendor.ID)
			tc.mutate(&req)

			_, err := svc.Create(context.Background(), req, admin.ID)
			require.Error(t, err)

			var ve *apperror.ValidationError
			require.True(t, errors.As(err, &ve), "expected validation error, got %v", err)
			assert.Contains(t, ve.Messages, tc.message)
		})
	}
}

func TestCreateRFPDuplicateRFPNo(t *testing.T) {
	db := setupTestDB(t)
	svc := newRFPServiceForTest(t, db, &fakeNotifier{})
	admin := seedAdmin(t, db, "admin@corp.test")
	category := seedCategory(t, db, "Electronics")
	vendor := seedVendor(t, db, "vendor@corp.test", "ABCDE1234F", "22ABCDE1234F1Z5")

	req := validRFPRequest(category.ID, vendor.ID)
	_, err := svc.Create(context.Background(), req, admin.ID)
	require.NoError(t, err)

	dup := validRFPRequest(category.ID, vendor.ID)
	dup.ItemName = "Completely Different Item"
	dup.Quantity = 3
	_, err = svc.Create(context.Background(), dup, admin.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrConflict))
	assert.Equal(t, "RFP number already exists", err.Error())
}

func TestCreateRFPUnknownCategoryOrVendor(t *testing.T) {
	db := setupTestDB(t)
	svc := newRFPServiceForTest(t, db, &fakeNotifier{})
	admin := seedAdmin(t, db, "admin@corp.test")
	category := seedCategory(t, db, "Electronics")
	vendor := seedVendor(t, db, "vendor@corp.test", "ABCDE1234F", "22ABCDE1234F1Z5")

	req := validRFPRequest(category.ID, vendor.ID)
	req.Categories = fmt.Sprintf("%d,999", category.ID)
	_, err := svc.Create(context.Background(), req, admin.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrNotFound))
	assert.Equal(t, "Category 999 not found", err.Error())

	req = validRFPRequest(category.ID, vendor.ID)
	req.Vendors = "888"
	_, err = svc.Create(context.Background(), req, admin.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrNotFound))
	assert.Equal(t, "Vendor 888 not found", err.Error())
}

func TestCreateRFPInsertsAssociations(t *testing.T) {
	db := setupTestDB(t)
	svc := newRFPServiceForTest(t, db, &fakeNotifier{})
	admin := seedAdmin(t, db, "admin@corp.test")
	catA := seedCategory(t, db, "Electronics")
	catB := seedCategory(t, db, "Hardware")
	vendorA := seedVendor(t, db, "a@corp.test", "ABCDE1234F", "22ABCDE1234F1Z5")
	vendorB := seedVendor(t, db, "b@corp.test", "FGHIJ5678K", "33FGHIJ5678K2Z6")

	req := validRFPRequest(catA.ID, vendorA.ID)
	req.Categories = fmt.Sprintf("%d,%d", catA.ID, catB.ID)
	req.Vendors = fmt.Sprintf("%d,%d", vendorA.ID, vendorB.ID)

	rfp, err := svc.Create(context.Background(), req, admin.ID)
	require.NoError(t, err)
	require.NotZero(t, rfp.ID)

	var catCount, vendorCount int64
	require.NoError(t, db.Model(&model.RFPCategory{}).Where("rfp_id = ?", rfp.ID).Count(&catCount).Error)
	require.NoError(t, db.Model(&model.RFPVendor{}).Where("rfp_id = ?", rfp.ID).Count(&vendorCount).Error)
	assert.EqualValues(t, 2, catCount)
	assert.EqualValues(t, 2, vendorCount)

	var invites []model.RFPVendor
	require.NoError(t, db.Where("rfp_id = ?", rfp.ID).Find(&invites).Error)
	for _, invite := range invites {
		assert.Equal(t, model.AppliedStatusOpen, invite.AppliedStatus)
		assert.Nil(t, invite.ItemPrice)
		assert.Nil(t, invite.TotalCost)
		assert.Nil(t, invite.AppliedAt)
	}
}

func TestUpdateRFPKeepsOwnRFPNo(t *testing.T) {
	db := setupTestDB(t)
	svc := newRFPServiceForTest(t, db, &fakeNotifier{})
	admin := seedAdmin(t, db, "admin@corp.test")
	category := seedCategory(t, db, "Electronics")
	vendor := seedVendor(t, db, "vendor@corp.test", "ABCDE1234F", "22ABCDE1234F1Z5")

	req := validRFPRequest(category.ID, vendor.ID)
	rfp, err := svc.Create(context.Background(), req, admin.ID)
	require.NoError(t, err)

	req.ItemName = "Laptop Batch v2"
	require.NoError(t, svc.Update(context.Background(), rfp.ID, req, admin.ID))

	got, err := svc.GetByID(context.Background(), rfp.ID)
	require.NoError(t, err)
	assert.Equal(t, "Laptop Batch v2", got.ItemName)
	assert.Equal(t, "RFP-001", got.RFPNo)
}

func TestUpdateRFPConflictsWithOtherRFPNo(t *testing.T) {
	db := setupTestDB(t)
	svc := newRFPServiceForTest(t, db, &fakeNotifier{})
	admin := seedAdmin(t, db, "admin@corp.test")
	category := seedCategory(t, db, "Electronics")
	vendor := seedVendor(t, db, "vendor@corp.test", "ABCDE1234F", "22ABCDE1234F1Z5")

	first := validRFPRequest(category.ID, vendor.ID)
	_, err := svc.Create(context.Background(), first, admin.ID)
	require.NoError(t, err)

	second := validRFPRequest(category.ID, vendor.ID)
	second.RFPNo = "RFP-002"
	rfp2, err := svc.Create(context.Background(), second, admin.ID)
	require.NoError(t, err)

	second.RFPNo = "RFP-001"
	err = svc.Update(context.Background(), rfp2.ID, second, admin.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrConflict))
}

func TestUpdateRFPNotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := newRFPServiceForTest(t, db, &fakeNotifier{})
	admin := seedAdmin(t, db, "admin@corp.test")
	category := seedCategory(t, db, "Electronics")
	vendor := seedVendor(t, db, "vendor@corp.test", "ABCDE1234F", "22ABCDE1234F1Z5")

	err := svc.Update(context.Background(), 12345, validRFPRequest(category.ID, vendor.ID), admin.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrNotFound))
}

func TestUpdateRFPPreservesAppliedVendor(t *testing.T) {
	db := setupTestDB(t)
	svc := newRFPServiceForTest(t, db, &fakeNotifier{})
	admin := seedAdmin(t, db, "admin@corp.test")
	category := seedCategory(t, db, "Electronics")
	applied := seedVendor(t, db, "applied@corp.test", "ABCDE1234F", "22ABCDE1234F1Z5")
	open := seedVendor(t, db, "open@corp.test", "FGHIJ5678K", "33FGHIJ5678K2Z6")
	fresh := seedVendor(t, db, "fresh@corp.test", "KLMNO9012P", "44KLMNO9012P3Z7")

	req := validRFPRequest(category.ID, applied.ID)
	req.Vendors = fmt.Sprintf("%d,%d", applied.ID, open.ID)
	rfp, err := svc.Create(context.Background(), req, admin.ID)
	require.NoError(t, err)

	caller := Caller{ID: applied.ID, Type: model.UserTypeVendor}
	require.NoError(t, svc.ApplyQuote(context.Background(), rfp.ID, caller, dto.ApplyQuoteRequest{ItemPrice: floatPtr(800)}))

	// New vendor list drops both previous vendors and adds a fresh one.
	req.Vendors = fmt.Sprintf("%d", fresh.ID)
	require.NoError(t, svc.Update(context.Background(), rfp.ID, req, admin.ID))

	var invites []model.RFPVendor
	require.NoError(t, db.Where("rfp_id = ?", rfp.ID).Order("vendor_id").Find(&invites).Error)
	require.Len(t, invites, 2)

	byVendor := map[uint]model.RFPVendor{}
	for _, invite := range invites {
		byVendor[invite.VendorID] = invite
	}

	// The applied vendor's committed quote survives removal from the list.
	kept, ok := byVendor[applied.ID]
	require.True(t, ok, "applied vendor row must be preserved")
	assert.Equal(t, model.AppliedStatusApplied, kept.AppliedStatus)
	require.NotNil(t, kept.ItemPrice)
	assert.EqualValues(t, 800, *kept.ItemPrice)
	require.NotNil(t, kept.TotalCost)
	assert.EqualValues(t, 8000, *kept.TotalCost)

	// The open vendor is gone; the fresh vendor joined as open.
	_, stillThere := byVendor[open.ID]
	assert.False(t, stillThere)
	added, ok := byVendor[fresh.ID]
	require.True(t, ok)
	assert.Equal(t, model.AppliedStatusOpen, added.AppliedStatus)
}

func TestUpdateRFPReplacesCategories(t *testing.T) {
	db := setupTestDB(t)
	svc := newRFPServiceForTest(t, db, &fakeNotifier{})
	admin := seedAdmin(t, db, "admin@corp.test")
	catA := seedCategory(t, db, "Electronics")
	catB := seedCategory(t, db, "Hardware")
	vendor := seedVendor(t, db, "vendor@corp.test", "ABCDE1234F", "22ABCDE1234F1Z5")

	req := validRFPRequest(catA.ID, vendor.ID)
	rfp, err := svc.Create(context.Background(), req, admin.ID)
	require.NoError(t, err)

	req.Categories = fmt.Sprintf("%d", catB.ID)
	require.NoError(t, svc.Update(context.Background(), rfp.ID, req, admin.ID))

	var links []model.RFPCategory
	require.NoError(t, db.Where("rfp_id = ?", rfp.ID).Find(&links).Error)
	require.Len(t, links, 1)
	assert.Equal(t, catB.ID, links[0].CategoryID)
}

func TestApplyQuoteTwiceSecondForbidden(t *testing.T) {
	db := setupTestDB(t)
	notifier := &fakeNotifier{}
	svc := newRFPServiceForTest(t, db, notifier)
	admin := seedAdmin(t, db, "admin@corp.test")
	category := seedCategory(t, db, "Electronics")
	vendor := seedVendor(t, db, "vendor@corp.test", "ABCDE1234F", "22ABCDE1234F1Z5")

	rfp, err := svc.Create(context.Background(), validRFPRequest(category.ID, vendor.ID), admin.ID)
	require.NoError(t, err)

	caller := Caller{ID: vendor.ID, Type: model.UserTypeVendor}
	require.NoError(t, svc.ApplyQuote(context.Background(), rfp.ID, caller, dto.ApplyQuoteRequest{ItemPrice: floatPtr(800)}))

	err = svc.ApplyQuote(context.Background(), rfp.ID, caller, dto.ApplyQuoteRequest{ItemPrice: floatPtr(700)})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrForbidden))
	assert.Equal(t, "You are not assigned to this RFP or already applied", err.Error())
}

func TestApplyQuoteOnClosedRFPForbidden(t *testing.T) {
	db := setupTestDB(t)
	svc := newRFPServiceForTest(t, db, &fakeNotifier{})
	admin := seedAdmin(t, db, "admin@corp.test")
	category := seedCategory(t, db, "Electronics")
	vendor := seedVendor(t, db, "vendor@corp.test", "ABCDE1234F", "22ABCDE1234F1Z5")

	rfp, err := svc.Create(context.Background(), validRFPRequest(category.ID, vendor.ID), admin.ID)
	require.NoError(t, err)
	require.NoError(t, svc.Close(context.Background(), rfp.ID))

	// The invitation row is still open, but a closed RFP accepts no quotes.
	caller := Caller{ID: vendor.ID, Type: model.UserTypeVendor}
	err = svc.ApplyQuote(context.Background(), rfp.ID, caller, dto.ApplyQuoteRequest{ItemPrice: floatPtr(800)})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrForbidden))
	assert.Equal(t, "RFP is closed", err.Error())
}

func TestApplyQuoteUninvitedVendorForbidden(t *testing.T) {
	db := setupTestDB(t)
	svc := newRFPServiceForTest(t, db, &fakeNotifier{})
	admin := seedAdmin(t, db, "admin@corp.test")
	category := seedCategory(t, db, "Electronics")
	vendor := seedVendor(t, db, "vendor@corp.test", "ABCDE1234F", "22ABCDE1234F1Z5")
	outsider := seedVendor(t, db, "outsider@corp.test", "FGHIJ5678K", "33FGHIJ5678K2Z6")

	rfp, err := svc.Create(context.Background(), validRFPRequest(category.ID, vendor.ID), admin.ID)
	require.NoError(t, err)

	caller := Caller{ID: outsider.ID, Type: model.UserTypeVendor}
	err = svc.ApplyQuote(context.Background(), rfp.ID, caller, dto.ApplyQuoteRequest{ItemPrice: floatPtr(800)})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrForbidden))
}

func TestApplyQuoteTotalCostDefaultingAndOverride(t *testing.T) {
	db := setupTestDB(t)
	svc := newRFPServiceForTest(t, db, &fakeNotifier{})
	admin := seedAdmin(t, db, "admin@corp.test")
	category := seedCategory(t, db, "Electronics")
	vendorA := seedVendor(t, db, "a@corp.test", "ABCDE1234F", "22ABCDE1234F1Z5")
	vendorB := seedVendor(t, db, "b@corp.test", "FGHIJ5678K", "33FGHIJ5678K2Z6")

	req := validRFPRequest(category.ID, vendorA.ID)
	req.Quantity = 5
	req.Vendors = fmt.Sprintf("%d,%d", vendorA.ID, vendorB.ID)
	rfp, err := svc.Create(context.Background(), req, admin.ID)
	require.NoError(t, err)

	// No total supplied: derived as itemPrice x quantity.
	callerA := Caller{ID: vendorA.ID, Type: model.UserTypeVendor}
	require.NoError(t, svc.ApplyQuote(context.Background(), rfp.ID, callerA, dto.ApplyQuoteRequest{ItemPrice: floatPtr(10)}))

	var quoteA model.RFPVendor
	require.NoError(t, db.Where("rfp_id = ? AND vendor_id = ?", rfp.ID, vendorA.ID).First(&quoteA).Error)
	require.NotNil(t, quoteA.TotalCost)
	assert.EqualValues(t, 50, *quoteA.TotalCost)
	require.NotNil(t, quoteA.AppliedAt)

	// Supplied total wins over the derived value.
	callerB := Caller{ID: vendorB.ID, Type: model.UserTypeVendor}
	require.NoError(t, svc.ApplyQuote(context.Background(), rfp.ID, callerB, dto.ApplyQuoteRequest{ItemPrice: floatPtr(10), TotalCost: floatPtr(999)}))

	var quoteB model.RFPVendor
	require.NoError(t, db.Where("rfp_id = ? AND vendor_id = ?", rfp.ID, vendorB.ID).First(&quoteB).Error)
	require.NotNil(t, quoteB.TotalCost)
	assert.EqualValues(t, 999, *quoteB.TotalCost)
}

func TestApplyQuoteSendsBestEffortNotification(t *testing.T) {
	db := setupTestDB(t)
	notifier := &fakeNotifier{}
	svc := newRFPServiceForTest(t, db, notifier)
	admin := seedAdmin(t, db, "admin@corp.test")
	category := seedCategory(t, db, "Electronics")
	vendor := seedVendor(t, db, "vendor@corp.test", "ABCDE1234F", "22ABCDE1234F1Z5")

	rfp, err := svc.Create(context.Background(), validRFPRequest(category.ID, vendor.ID), admin.ID)
	require.NoError(t, err)

	caller := Caller{ID: vendor.ID, Type: model.UserTypeVendor}
	require.NoError(t, svc.ApplyQuote(context.Background(), rfp.ID, caller, dto.ApplyQuoteRequest{ItemPrice: floatPtr(800)}))

	require.Len(t, notifier.sent, 1)
	assert.Equal(t, "vendor@corp.test", notifier.sent[0].To)
	assert.Equal(t, "Quote Submitted", notifier.sent[0].Subject)
	assert.Contains(t, notifier.sent[0].Body, "RFP-001")
}

func TestApplyQuoteNotificationFailureDoesNotFailQuote(t *testing.T) {
	db := setupTestDB(t)
	notifier := &fakeNotifier{err: errors.New("smtp down")}
	svc := newRFPServiceForTest(t, db, notifier)
	admin := seedAdmin(t, db, "admin@corp.test")
	category := seedCategory(t, db, "Electronics")
	vendor := seedVendor(t, db, "vendor@corp.test", "ABCDE1234F", "22ABCDE1234F1Z5")

	rfp, err := svc.Create(context.Background(), validRFPRequest(category.ID, vendor.ID), admin.ID)
	require.NoError(t, err)

	caller := Caller{ID: vendor.ID, Type: model.UserTypeVendor}
	require.NoError(t, svc.ApplyQuote(context.Background(), rfp.ID, caller, dto.ApplyQuoteRequest{ItemPrice: floatPtr(800)}))

	var quote model.RFPVendor
	require.NoError(t, db.Where("rfp_id = ? AND vendor_id = ?", rfp.ID, vendor.ID).First(&quote).Error)
	assert.Equal(t, model.AppliedStatusApplied, quote.AppliedStatus)
}

func TestCloseRFPIsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	svc := newRFPServiceForTest(t, db, &fakeNotifier{})
	admin := seedAdmin(t, db, "admin@corp.test")
	category := seedCategory(t, db, "Electronics")
	vendor := seedVendor(t, db, "vendor@corp.test", "ABCDE1234F", "22ABCDE1234F1Z5")

	rfp, err := svc.Create(context.Background(), validRFPRequest(category.ID, vendor.ID), admin.ID)
	require.NoError(t, err)

	require.NoError(t, svc.Close(context.Background(), rfp.ID))
	require.NoError(t, svc.Close(context.Background(), rfp.ID))

	got, err := svc.GetByID(context.Background(), rfp.ID)
	require.NoError(t, err)
	assert.Equal(t, string(model.RFPStatusClosed), got.Status)

	err = svc.Close(context.Background(), 9999)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrNotFound))
}

func TestGetQuotesVendorWithoutQuoteGetsMessage(t *testing.T) {
	db := setupTestDB(t)
	svc := newRFPServiceForTest(t, db, &fakeNotifier{})
	admin := seedAdmin(t, db, "admin@corp.test")
	category := seedCategory(t, db, "Electronics")
	vendor := seedVendor(t, db, "vendor@corp.test", "ABCDE1234F", "22ABCDE1234F1Z5")

	rfp, err := svc.Create(context.Background(), validRFPRequest(category.ID, vendor.ID), admin.ID)
	require.NoError(t, err)

	caller := Caller{ID: vendor.ID, Type: model.UserTypeVendor}
	result, err := svc.GetQuotes(context.Background(), rfp.ID, caller)
	require.NoError(t, err)
	assert.Equal(t, "You have not applied for the RFP", result.Message)
	assert.Empty(t, result.Quotes)
}

func TestGetQuotesAdminSeesAllWithContactInfo(t *testing.T) {
	db := setupTestDB(t)
	svc := newRFPServiceForTest(t, db, &fakeNotifier{})
	admin := seedAdmin(t, db, "admin@corp.test")
	category := seedCategory(t, db, "Electronics")
	vendorA := seedVendor(t, db, "a@corp.test", "ABCDE1234F", "22ABCDE1234F1Z5")
	vendorB := seedVendor(t, db, "b@corp.test", "FGHIJ5678K", "33FGHIJ5678K2Z6")

	req := validRFPRequest(category.ID, vendorA.ID)
	req.Vendors = fmt.Sprintf("%d,%d", vendorA.ID, vendorB.ID)
	rfp, err := svc.Create(context.Background(), req, admin.ID)
	require.NoError(t, err)

	callerA := Caller{ID: vendorA.ID, Type: model.UserTypeVendor}
	require.NoError(t, svc.ApplyQuote(context.Background(), rfp.ID, callerA, dto.ApplyQuoteRequest{ItemPrice: floatPtr(800)}))

	adminCaller := Caller{ID: admin.ID, Type: model.UserTypeAdmin}
	result, err := svc.GetQuotes(context.Background(), rfp.ID, adminCaller)
	require.NoError(t, err)
	require.Len(t, result.Quotes, 2)

	byVendor := map[uint]dto.QuoteResponse{}
	for _, q := range result.Quotes {
		byVendor[q.VendorID] = q
	}
	assert.Equal(t, "a@corp.test", byVendor[vendorA.ID].Email)
	require.NotNil(t, byVendor[vendorA.ID].ItemPrice)
	assert.Nil(t, byVendor[vendorB.ID].ItemPrice)
}

func TestListByVendorRestrictedToOwnID(t *testing.T) {
	db := setupTestDB(t)
	svc := newRFPServiceForTest(t, db, &fakeNotifier{})
	admin := seedAdmin(t, db, "admin@corp.test")
	category := seedCategory(t, db, "Electronics")
	vendor := seedVendor(t, db, "vendor@corp.test", "ABCDE1234F", "22ABCDE1234F1Z5")
	other := seedVendor(t, db, "other@corp.test", "FGHIJ5678K", "33FGHIJ5678K2Z6")

	rfp, err := svc.Create(context.Background(), validRFPRequest(category.ID, vendor.ID), admin.ID)
	require.NoError(t, err)

	_, err = svc.ListByVendor(context.Background(), vendor.ID, Caller{ID: other.ID, Type: model.UserTypeVendor})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrForbidden))

	// Admins may inspect any vendor's invitations.
	rfps, err := svc.ListByVendor(context.Background(), vendor.ID, Caller{ID: admin.ID, Type: model.UserTypeAdmin})
	require.NoError(t, err)
	require.Len(t, rfps, 1)
	assert.Equal(t, rfp.ID, rfps[0].RFPID)
	assert.Equal(t, string(model.AppliedStatusOpen), rfps[0].AppliedStatus)
	assert.Equal(t, string(model.RFPStatusOpen), rfps[0].RFPStatus)
}

func TestRFPLifecycleScenario(t *testing.T) {
	db := setupTestDB(t)
	svc := newRFPServiceForTest(t, db, &fakeNotifier{})
	admin := seedAdmin(t, db, "admin@corp.test")
	catA := seedCategory(t, db, "Electronics")
	catB := seedCategory(t, db, "Hardware")
	vendor5 := seedVendor(t, db, "v5@corp.test", "ABCDE1234F", "22ABCDE1234F1Z5")
	vendor6 := seedVendor(t, db, "v6@corp.test", "FGHIJ5678K", "33FGHIJ5678K2Z6")
	vendor7 := seedVendor(t, db, "v7@corp.test", "KLMNO9012P", "44KLMNO9012P3Z7")

	req := dto.SaveRFPRequest{
		ItemName:     "Laptop Batch",
		RFPNo:        "RFP-001",
		Quantity:     10,
		LastDate:     "2099-01-01",
		MinimumPrice: 500,
		MaximumPrice: 1000,
		Categories:   fmt.Sprintf("%d,%d", catA.ID, catB.ID),
		Vendors:      fmt.Sprintf("%d,%d", vendor5.ID, vendor6.ID),
	}
	rfp, err := svc.Create(context.Background(), req, admin.ID)
	require.NoError(t, err)

	// Vendor 5 quotes 800 with no total: derived as 800 x 10.
	require.NoError(t, svc.ApplyQuote(context.Background(), rfp.ID,
		Caller{ID: vendor5.ID, Type: model.UserTypeVendor}, dto.ApplyQuoteRequest{ItemPrice: floatPtr(800)}))

	var quote5 model.RFPVendor
	require.NoError(t, db.Where("rfp_id = ? AND vendor_id = ?", rfp.ID, vendor5.ID).First(&quote5).Error)
	require.NotNil(t, quote5.TotalCost)
	assert.EqualValues(t, 8000, *quote5.TotalCost)

	// Vendor 6 quotes twice: the second attempt is rejected.
	caller6 := Caller{ID: vendor6.ID, Type: model.UserTypeVendor}
	require.NoError(t, svc.ApplyQuote(context.Background(), rfp.ID, caller6, dto.ApplyQuoteRequest{ItemPrice: floatPtr(900)}))
	err = svc.ApplyQuote(context.Background(), rfp.ID, caller6, dto.ApplyQuoteRequest{ItemPrice: floatPtr(850)})
	assert.True(t, errors.Is(err, apperror.ErrForbidden))

	// Admin closes; the uninvited vendor 7 is turned away.
	require.NoError(t, svc.Close(context.Background(), rfp.ID))
	err = svc.ApplyQuote(context.Background(), rfp.ID,
		Caller{ID: vendor7.ID, Type: model.UserTypeVendor}, dto.ApplyQuoteRequest{ItemPrice: floatPtr(700)})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrForbidden))
}

func TestGetAllProjectsCommaJoinedIDs(t *testing.T) {
	db := setupTestDB(t)
	svc := newRFPServiceForTest(t, db, &fakeNotifier{})
	admin := seedAdmin(t, db, "admin@corp.test")
	catA := seedCategory(t, db, "Electronics")
	catB := seedCategory(t, db, "Hardware")
	vendor := seedVendor(t, db, "vendor@corp.test", "ABCDE1234F", "22ABCDE1234F1Z5")

	req := validRFPRequest(catA.ID, vendor.ID)
	req.Categories = fmt.Sprintf("%d,%d", catA.ID, catB.ID)
	_, err := svc.Create(context.Background(), req, admin.ID)
	require.NoError(t, err)

	rfps, err := svc.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, rfps, 1)
	assert.Equal(t, fmt.Sprintf("%d,%d", catA.ID, catB.ID), rfps[0].Categories)
	assert.Equal(t, fmt.Sprintf("%d", vendor.ID), rfps[0].Vendors)
}
