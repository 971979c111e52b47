// Package auth covers accounts, passwords and phone/OTP login.
package auth

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/bookhive/bookhive-service/internal/errs"
	"github.com/bookhive/bookhive-service/internal/model"
	"github.com/bookhive/bookhive-service/internal/repository"
	pkgauth "github.com/bookhive/bookhive-service/pkg/auth"
	"github.com/bookhive/bookhive-service/pkg/cache"
)

const (
	otpKeyPrefix = "otp_"
	otpTTL       = 5 * time.Minute
)

type Service struct {
	repo   repository.Repository
	cache  cache.Cache
	sms    SMSSender
	jwtCfg pkgauth.Config
	log    *zap.Logger
}

// SMSSender mirrors sms.Sender; redeclared here so the service depends on
// the capability, not the Twilio package.
type SMSSender interface {
	Send(ctx context.Context, to, body string) error
}

func NewService(repo repository.Repository, c cache.Cache, sender SMSSender, jwtCfg pkgauth.Config, log *zap.Logger) *Service {
	return &Service{
		repo:   repo,
		cache:  c,
		sms:    sender,
		jwtCfg: jwtCfg,
		log:    log.Named("auth"),
	}
}

// Register creates an account. Username falls back to the phone number when
// absent; the password confirmation must match and meet the strength policy.
func (s *Service) Register(ctx context.Context, req model.RegisterRequest) (model.User, error) {
	if req.Password != req.Password2 {
		return model.User{}, errs.ErrPasswordMatch
	}
	if !validatePasswordStrength(req.Password) {
		return model.User{}, errs.ErrWeakPassword
	}

	username := req.Username
	if username == "" {
		username = req.Phone
	}
	if username == "" {
		return model.User{}, errors.New("username or phone is required")
	}

	hash, err := hashPassword(req.Password)
	if err != nil {
		return model.User{}, err
	}

	user := model.User{
		Username:     username,
		Email:        req.Email,
		PasswordHash: hash,
	}
	if req.Phone != "" {
		phone := req.Phone
		user.Phone = &phone
	}
	return s.repo.CreateUser(ctx, user)
}

// Login exchanges username/password credentials for a token pair.
func (s *Service) Login(ctx context.Context, req model.LoginRequest) (model.AuthResponse, error) {
	user, err := s.repo.GetUserByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return model.AuthResponse{}, errs.ErrBadPassword
		}
		return model.AuthResponse{}, err
	}
	if !verifyPassword(user.PasswordHash, req.Password) {
		return model.AuthResponse{}, errs.ErrBadPassword
	}
	return s.tokenResponse(user)
}

func (s *Service) GetProfile(ctx context.Context, userID int) (model.User, error) {
	return s.repo.GetUserByID(ctx, userID)
}

func (s *Service) UpdateProfile(ctx context.Context, userID int, req model.UpdateProfileRequest) (model.User, error) {
	return s.repo.UpdateUserProfile(ctx, userID, req)
}

// ChangePassword requires the correct current password.
func (s *Service) ChangePassword(ctx context.Context, userID int, req model.ChangePasswordRequest) error {
	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		return err
	}
	if !verifyPassword(user.PasswordHash, req.OldPassword) {
		return errs.ErrBadPassword
	}
	if !validatePasswordStrength(req.NewPassword) {
		return errs.ErrWeakPassword
	}

	hash, err := hashPassword(req.NewPassword)
	if err != nil {
		return err
	}
	return s.repo.UpdateUserPassword(ctx, userID, hash)
}

// SendOTP issues a 6-digit code valid for 5 minutes and texts it out.
// A delivery failure is surfaced: an undelivered OTP has no fallback.
func (s *Service) SendOTP(ctx context.Context, phone string) error {
	code, err := generateOTP()
	if err != nil {
		return err
	}
	if err := s.cache.Set(ctx, otpKeyPrefix+phone, code, otpTTL); err != nil {
		return errors.Wrap(err, "store otp")
	}

	if err := s.sms.Send(ctx, normalizePhone(phone), "Your OTP is "+code); err != nil {
		s.log.Error("sms send", zap.String("phone", phone), zap.Error(err))
		return errs.ErrSMSDelivery
	}
	return nil
}

// VerifyOTP consumes the cached code atomically (any attempt burns it),
// gets or creates the phone-keyed account and issues a token pair.
func (s *Service) VerifyOTP(ctx context.Context, req model.VerifyOTPRequest) (model.AuthResponse, error) {
	cached, err := s.cache.GetDel(ctx, otpKeyPrefix+req.Phone)
	if err != nil {
		if errors.Is(err, cache.ErrMiss) {
			return model.AuthResponse{}, errs.ErrInvalidOTP
		}
		return model.AuthResponse{}, err
	}
	if cached != req.OTP {
		return model.AuthResponse{}, errs.ErrInvalidOTP
	}

	user, err := s.repo.GetOrCreateUserByPhone(ctx, req.Phone)
	if err != nil {
		return model.AuthResponse{}, err
	}
	return s.tokenResponse(user)
}

func (s *Service) tokenResponse(user model.User) (model.AuthResponse, error) {
	pair, err := pkgauth.NewTokenPair(s.jwtCfg, user.ID, user.Username)
	if err != nil {
		return model.AuthResponse{}, err
	}
	return model.AuthResponse{
		Access:  pair.Access,
		Refresh: pair.Refresh,
		User:    user,
	}, nil
}

func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", errors.Wrap(err, "generate otp")
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

// normalizePhone defaults bare numbers to the +91 country prefix.
func normalizePhone(phone string) string {
	if strings.HasPrefix(phone, "+") {
		return phone
	}
	return "+91" + phone
}
