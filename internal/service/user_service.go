package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/vendorhub/rfp-backend/internal/dto"
	"github.com/vendorhub/rfp-backend/internal/model"
	"github.com/vendorhub/rfp-backend/internal/repository"
	"github.com/vendorhub/rfp-backend/pkg/apperror"
	"github.com/vendorhub/rfp-backend/pkg/mailer"
	"github.com/vendorhub/rfp-backend/pkg/validator"
)

const otpTTL = 5 * time.Minute

type UserService interface {
	RegisterAdmin(ctx context.Context, req dto.RegisterAdminRequest) error
	// ApproveOrRejectVendor resolves a pending vendor account one way or the
	// other. decision is "approve" or "reject".
	ApproveOrRejectVendor(ctx context.Context, vendorUserID uint, decision string) error
	ForgotPassword(ctx context.Context, req dto.ForgotPasswordRequest) error
	ResetPasswordWithOTP(ctx context.Context, req dto.ResetPasswordOTPRequest) error
	ChangePassword(ctx context.Context, req dto.ChangePasswordRequest) error
}

type userService struct {
	users    repository.UserRepository
	notifier mailer.Notifier
}

func NewUserService(users repository.UserRepository, notifier mailer.Notifier) UserService {
	return &userService{users: users, notifier: notifier}
}

func (s *userService) RegisterAdmin(ctx context.Context, req dto.RegisterAdminRequest) error {
	if err := validator.Struct(req); err != nil {
		return err
	}

	if _, err := s.users.FindByEmail(ctx, req.Email); err == nil {
		return apperror.New(apperror.ErrConflict, "Email already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	// Admins are created Pending like every other account even though no
	// admin approval flow exists; see the note in DESIGN.md.
	user := &model.User{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		PasswordHash: string(hash),
		Mobile:       req.Mobile,
		Type:         model.UserTypeAdmin,
		Status:       model.UserStatusPending,
	}

	return s.users.Create(ctx, user)
}

func (s *userService) ApproveOrRejectVendor(ctx context.Context, vendorUserID uint, decision string) error {
	if decision != "approve" && decision != "reject" {
		return apperror.NewValidation("Decision must be approve or reject")
	}

	user, err := s.users.FindByID(ctx, vendorUserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.New(apperror.ErrNotFound, "User not found")
		}
		return err
	}

	if decision == "approve" {
		user.Status = model.UserStatusApproved
	} else {
		user.Status = model.UserStatusRejected
	}

	return s.users.Update(ctx, user)
}

func (s *userService) ForgotPassword(ctx context.Context, req dto.ForgotPasswordRequest) error {
	if err := validator.Struct(req); err != nil {
		return err
	}

	user, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.New(apperror.ErrNotFound, "User not found")
		}
		return err
	}

	// One live OTP at a time; resend only after the previous one expired.
	if user.OTP != nil && user.OTPExpiresAt != nil && user.OTPExpiresAt.After(time.Now()) {
		return apperror.New(apperror.ErrConflict, "OTP already sent in the last 5 minutes")
	}

	otp := fmt.Sprintf("%06d", rand.Intn(900000)+100000)
	expiresAt := time.Now().Add(otpTTL)
	user.OTP = &otp
	user.OTPExpiresAt = &expiresAt
	if err := s.users.Update(ctx, user); err != nil {
		return err
	}

	if s.notifier == nil {
		return apperror.New(apperror.ErrInternal, "mail delivery is not configured")
	}
	body := fmt.Sprintf("Your password reset OTP is %s. It will expire in 5 minutes.", otp)
	if err := s.notifier.Send(user.Email, "Password Reset OTP", body); err != nil {
		log.Printf("forgot password: OTP email to %s failed: %v", user.Email, err)
		return apperror.New(apperror.ErrInternal, "could not send OTP email")
	}

	return nil
}

func (s *userService) ResetPasswordWithOTP(ctx context.Context, req dto.ResetPasswordOTPRequest) error {
	if err := validator.Struct(req); err != nil {
		return err
	}

	user, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.New(apperror.ErrNotFound, "User not found")
		}
		return err
	}

	if user.OTP == nil || *user.OTP != req.OTP {
		return apperror.New(apperror.ErrForbidden, "Invalid OTP")
	}
	if user.OTPExpiresAt == nil || user.OTPExpiresAt.Before(time.Now()) {
		return apperror.New(apperror.ErrForbidden, "OTP has expired")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user.PasswordHash = string(hash)
	user.OTP = nil
	user.OTPExpiresAt = nil
	return s.users.Update(ctx, user)
}

func (s *userService) ChangePassword(ctx context.Context, req dto.ChangePasswordRequest) error {
	if err := validator.Struct(req); err != nil {
		return err
	}

	user, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.New(apperror.ErrNotFound, "User not found")
		}
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.OldPassword)); err != nil {
		return apperror.New(apperror.ErrForbidden, "Invalid old password")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user.PasswordHash = string(hash)
	return s.users.Update(ctx, user)
}
