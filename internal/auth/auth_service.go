package auth

import (
	"context"
	"os"
	"time"

	autherrors "go-payroll/internal/auth/errors"
	"go-payroll/internal/shared/contextutil"

	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 10

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Signup(ctx context.Context, req SignupRequest) (UserResponse, error)
	Login(ctx context.Context, email, password string) (accessToken string, resp UserResponse, err error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Signup(ctx context.Context, req SignupRequest) (UserResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("signup requested",
		zap.String("request_id", rid),
		zap.String("email", req.Email),
	)

	if _, err := s.repo.GetByEmail(ctx, req.Email); err == nil {
		s.logger.Warn("signup email already registered",
			zap.String("request_id", rid),
			zap.String("email", req.Email),
		)
		return UserResponse{}, autherrors.ErrEmailAlreadyRegistered
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		s.logger.Error("signup hash password failed", zap.String("request_id", rid), zap.Error(err))
		return UserResponse{}, err
	}

	account := &Account{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hashed),
	}

	if err := s.repo.Create(ctx, account); err != nil {
		// The unique index catches the race the pre-check above cannot:
		// two signups for the same email in flight at once.
		if mongo.IsDuplicateKeyError(err) {
			return UserResponse{}, autherrors.ErrEmailAlreadyRegistered
		}
		s.logger.Error("signup persist failed", zap.String("request_id", rid), zap.Error(err))
		return UserResponse{}, err
	}

	s.logger.Info("signup success",
		zap.String("request_id", rid),
		zap.String("account_id", account.ID.Hex()),
	)

	return UserResponse{Name: account.Name, Email: account.Email}, nil
}

func (s *service) Login(ctx context.Context, email, password string) (string, UserResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	account, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		// Same error for unknown email and wrong password.
		s.logger.Warn("login unknown email", zap.String("request_id", rid))
		return "", UserResponse{}, autherrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		s.logger.Warn("login password mismatch", zap.String("request_id", rid))
		return "", UserResponse{}, autherrors.ErrInvalidCredentials
	}

	token, err := s.generateToken(account.ID.Hex(), account.Email, 24*time.Hour)
	if err != nil {
		s.logger.Error("login token generation failed", zap.String("request_id", rid), zap.Error(err))
		return "", UserResponse{}, autherrors.ErrTokenGenerationFailed
	}

	s.logger.Info("login success",
		zap.String("request_id", rid),
		zap.String("account_id", account.ID.Hex()),
	)

	return token, UserResponse{Name: account.Name, Email: account.Email}, nil
}

func (s *service) generateToken(userID, email string, expiry time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"email":   email,
		"exp":     time.Now().Add(expiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
