package service

import (
	"fmt"
	"testing"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/vendorhub/rfp-backend/internal/model"
	"github.com/vendorhub/rfp-backend/internal/repository"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(
		&model.User{},
		&model.VendorProfile{},
		&model.Category{},
		&model.VendorCategory{},
		&model.RFP{},
		&model.RFPCategory{},
		&model.RFPVendor{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	return string(hash)
}

func seedAdmin(t *testing.T, db *gorm.DB, email string) *model.User {
	t.Helper()
	user := &model.User{
		FirstName:    "Asha",
		LastName:     "Mehta",
		Email:        email,
		PasswordHash: hashPassword(t, "secret123"),
		Mobile:       "9876543210",
		Type:         model.UserTypeAdmin,
		Status:       model.UserStatusApproved,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("seed admin: %v", err)
	}
	return user
}

func seedVendor(t *testing.T, db *gorm.DB, email, pancard, gst string) *model.User {
	t.Helper()
	user := &model.User{
		FirstName:    "Ravi",
		LastName:     "Kumar",
		Email:        email,
		PasswordHash: hashPassword(t, "secret123"),
		Mobile:       "9123456780",
		Type:         model.UserTypeVendor,
		Status:       model.UserStatusApproved,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("seed vendor user: %v", err)
	}
	profile := &model.VendorProfile{
		UserID:        user.ID,
		NoOfEmployees: "25",
		Revenue:       "100,200,300",
		PancardNo:     pancard,
		GstNo:         gst,
	}
	if err := db.Create(profile).Error; err != nil {
		t.Fatalf("seed vendor profile: %v", err)
	}
	return user
}

func seedCategory(t *testing.T, db *gorm.DB, name string) *model.Category {
	t.Helper()
	category := &model.Category{Name: name, Status: model.CategoryStatusActive}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("seed category: %v", err)
	}
	return category
}

type sentMail struct {
	To      string
	Subject string
	Body    string
}

type fakeNotifier struct {
	sent []sentMail
	err  error
}

func (f *fakeNotifier) Send(to, subject, body string) error {
	f.sent = append(f.sent, sentMail{To: to, Subject: subject, Body: body})
	return f.err
}

func newRFPServiceForTest(t *testing.T, db *gorm.DB, notifier *fakeNotifier) RFPService {
	t.Helper()
	return NewRFPService(
		repository.NewRFPRepository(db),
		repository.NewUserRepository(db),
		repository.NewCategoryRepository(db),
		notifier,
	)
}
