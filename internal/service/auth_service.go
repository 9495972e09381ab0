package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/yash113gadia/AttendEase-Web/config"
	"github.com/yash113gadia/AttendEase-Web/internal/dto"
	"github.com/yash113gadia/AttendEase-Web/internal/model"
	"github.com/yash113gadia/AttendEase-Web/internal/repository"
	"github.com/yash113gadia/AttendEase-Web/pkg/jwt"
	"github.com/yash113gadia/AttendEase-Web/pkg/redis"
)

var (
	// ErrInvalidCredentials covers both unknown username and wrong
	// password; callers must not be able to tell them apart.
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUserExists         = errors.New("username already exists")
)

// AuthService handles login, registration, and logout.
type AuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	Register(ctx context.Context, req *dto.RegisterRequest) (*model.User, error)
	// Logout blacklists the token's JWT ID until the token would have
	// expired anyway. Without Redis it is a no-op.
	Logout(ctx context.Context, jti string, expiresAt time.Time) error
}

type authService struct {
	cfg    *config.Config
	repo   *repository.Repository
	jwtMgr *jwt.Manager
	rdb    *redis.Client
	logger *zap.Logger
}

// NewAuthService creates the AuthService implementation.
func NewAuthService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	logger *zap.Logger,
) AuthService {
	return &authService{
		cfg:    cfg,
		repo:   repo,
		jwtMgr: jwtMgr,
		rdb:    rdb,
		logger: logger,
	}
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.repo.User.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("lookup user failed", zap.Error(err))
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := s.repo.User.TouchLastLogin(ctx, user.ID, time.Now().UTC()); err != nil {
		s.logger.Error("update last login failed", zap.Error(err))
		return nil, err
	}

	token, err := s.jwtMgr.GenerateToken(user.Username, string(user.Role))
	if err != nil {
		s.logger.Error("generate token failed", zap.Error(err))
		return nil, err
	}

	return &dto.LoginResponse{
		Token:     token,
		ExpiresIn: int(s.jwtMgr.TokenTTL().Seconds()),
		Username:  user.Username,
		Role:      string(user.Role),
		FullName:  user.FullName,
	}, nil
}

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*model.User, error) {
	exists, err := s.repo.User.ExistsByUsername(ctx, req.Username)
	if err != nil {
		s.logger.Error("check username failed", zap.Error(err))
		return nil, err
	}
	if exists {
		return nil, ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Username:      req.Username,
		PasswordHash:  string(hash),
		Role:          model.Role(req.Role),
		FullName:      req.FullName,
		Email:         req.Email,
		InstitutionID: req.InstitutionID,
	}
	if err := s.repo.User.Create(ctx, user); err != nil {
		s.logger.Error("create user failed", zap.Error(err))
		return nil, err
	}

	return user, nil
}

func (s *authService) Logout(ctx context.Context, jti string, expiresAt time.Time) error {
	if s.rdb == nil || jti == "" {
		return nil
	}
	return s.rdb.BlacklistToken(ctx, jti, time.Until(expiresAt))
}
