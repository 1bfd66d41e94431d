package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	"regexp"

	"chatdeck.app/backend/common/id"
	"chatdeck.app/backend/common/token"
	"chatdeck.app/backend/core/config"
	"chatdeck.app/backend/internal/model"
	"chatdeck.app/backend/internal/store"
	"golang.org/x/crypto/bcrypt"
)

var mobileNumberPattern = regexp.MustCompile(`^[0-9]{10,15}$`)

type SignupParams struct {
	MobileNumber string
	Password     string
	Email        *string
	FullName     *string
}

type AuthService interface {
	Signup(ctx context.Context, params SignupParams) (*model.User, error)

	// SendOTP generates a one-time code for the user and returns it.
	// Delivery is left to the caller; there is no SMS integration, the
	// code comes back in the API response.
	SendOTP(ctx context.Context, mobileNumber string) (string, error)

	// VerifyOTP consumes the code, marks the user confirmed, and issues
	// a bearer token. Codes are single use.
	VerifyOTP(ctx context.Context, mobileNumber, otp string) (string, *model.User, error)

	ResetPassword(ctx context.Context, mobileNumber, otp, newPassword string) error
	ChangePassword(ctx context.Context, userID int64, oldPassword, newPassword string) error
}

type authService struct {
	users     store.UserStore
	passwords store.PasswordStore
	otps      store.OTPStore
	txRunner  TxRunner
	cfg       config.AuthConfig
	logger    *slog.Logger
}

func NewAuthService(users store.UserStore, passwords store.PasswordStore, otps store.OTPStore, txRunner TxRunner, cfg config.AuthConfig, logger *slog.Logger) AuthService {
	if logger == nil {
		logger = slog.Default()
	}
	return &authService{
		users:     users,
		passwords: passwords,
		otps:      otps,
		txRunner:  txRunner,
		cfg:       cfg,
		logger:    logger,
	}
}

func (s *authService) Signup(ctx context.Context, params SignupParams) (*model.User, error) {
	if !mobileNumberPattern.MatchString(params.MobileNumber) {
		return nil, fmt.Errorf("mobile number must be 10 to 15 digits")
	}
	if len(params.Password) < 8 {
		return nil, fmt.Errorf("password must be at least 8 characters")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(params.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user := &model.User{
		ID:           id.New(),
		MobileNumber: params.MobileNumber,
		Email:        params.Email,
		FullName:     params.FullName,
	}

	// User, credential and default plan are created atomically so a failed
	// signup never leaves a user without a password row.
	if err := s.txRunner.WithTx(ctx, func(sp StoreProvider) error {
		if err := sp.Users().Create(ctx, user); err != nil {
			return fmt.Errorf("creating user: %w", err)
		}
		if err := sp.Passwords().Set(ctx, user.ID, string(hash)); err != nil {
			return fmt.Errorf("storing password: %w", err)
		}
		plan := &model.UserPlan{
			ID:     id.New(),
			UserID: user.ID,
			Active: true,
			Plan:   model.PlanTierBasic,
		}
		if err := sp.Plans().Create(ctx, plan); err != nil {
			return fmt.Errorf("creating default plan: %w", err)
		}
		return nil
	}); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "user signed up", "user_id", user.ID)
	return user, nil
}

func (s *authService) SendOTP(ctx context.Context, mobileNumber string) (string, error) {
	user, err := s.users.GetByMobileNumber(ctx, mobileNumber)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", ErrUserNotFound
		}
		return "", fmt.Errorf("fetching user: %w", err)
	}

	otp, err := generateOTP()
	if err != nil {
		return "", fmt.Errorf("generating otp: %w", err)
	}

	if err := s.otps.Set(ctx, mobileNumber, otp, s.cfg.OTPTTL); err != nil {
		return "", err
	}

	s.logger.InfoContext(ctx, "otp issued", "user_id", user.ID)
	return otp, nil
}

func (s *authService) VerifyOTP(ctx context.Context, mobileNumber, otp string) (string, *model.User, error) {
	if err := s.consumeOTP(ctx, mobileNumber, otp); err != nil {
		return "", nil, err
	}

	user, err := s.users.GetByMobileNumber(ctx, mobileNumber)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", nil, ErrUserNotFound
		}
		return "", nil, fmt.Errorf("fetching user: %w", err)
	}

	if !user.Confirmed {
		user, err = s.users.Confirm(ctx, user.ID)
		if err != nil {
			return "", nil, fmt.Errorf("confirming user: %w", err)
		}
	}

	tok, err := token.Mint(s.cfg.JWTSecret, user.ID, s.cfg.TokenTTL)
	if err != nil {
		return "", nil, fmt.Errorf("minting token: %w", err)
	}

	s.logger.InfoContext(ctx, "otp verified", "user_id", user.ID)
	return tok, user, nil
}

func (s *authService) ResetPassword(ctx context.Context, mobileNumber, otp, newPassword string) error {
	if len(newPassword) < 8 {
		return fmt.Errorf("password must be at least 8 characters")
	}

	if err := s.consumeOTP(ctx, mobileNumber, otp); err != nil {
		return err
	}

	user, err := s.users.GetByMobileNumber(ctx, mobileNumber)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("fetching user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}
	if err := s.passwords.Set(ctx, user.ID, string(hash)); err != nil {
		return fmt.Errorf("storing password: %w", err)
	}

	s.logger.InfoContext(ctx, "password reset", "user_id", user.ID)
	return nil
}

func (s *authService) ChangePassword(ctx context.Context, userID int64, oldPassword, newPassword string) error {
	if len(newPassword) < 8 {
		return fmt.Errorf("password must be at least 8 characters")
	}

	hash, err := s.passwords.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrInvalidCredentials
		}
		return fmt.Errorf("fetching password: %w", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(oldPassword)) != nil {
		return ErrInvalidCredentials
	}

	newHash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}
	if err := s.passwords.Set(ctx, userID, string(newHash)); err != nil {
		return fmt.Errorf("storing password: %w", err)
	}

	s.logger.InfoContext(ctx, "password changed", "user_id", userID)
	return nil
}

func (s *authService) consumeOTP(ctx context.Context, mobileNumber, otp string) error {
	stored, err := s.otps.GetDel(ctx, mobileNumber)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrInvalidOTP
		}
		return err
	}
	if stored != otp {
		return ErrInvalidOTP
	}
	return nil
}

func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
