package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/burakuz/campushare/internal/app/models"
	"github.com/burakuz/campushare/internal/app/models/dto"
	"github.com/burakuz/campushare/internal/app/repositories"
	"github.com/burakuz/campushare/internal/pkg/apperrors"
	"github.com/burakuz/campushare/internal/pkg/auth"
	"github.com/burakuz/campushare/internal/pkg/validation"
)

// AuthService defines the interface for organization authentication
type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
	RefreshToken(ctx context.Context, refreshToken string) (*dto.TokenResponse, error)
	Logout(ctx context.Context, refreshToken string) error
	LogoutAll(ctx context.Context, organizationID int64) error
	GetProfile(ctx context.Context, organizationID int64) (*dto.OrganizationProfile, error)
}

// authServiceImpl implements AuthService
type authServiceImpl struct {
	orgRepo    repositories.OrganizationRepository
	tokenRepo  repositories.RefreshTokenRepository
	jwtService *auth.JWTService
	logger     zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	orgRepo repositories.OrganizationRepository,
	tokenRepo repositories.RefreshTokenRepository,
	jwtService *auth.JWTService,
	logger zerolog.Logger,
) AuthService {
	return &authServiceImpl{
		orgRepo:    orgRepo,
		tokenRepo:  tokenRepo,
		jwtService: jwtService,
		logger:     logger,
	}
}

// Register creates a new organization account and issues a token pair
func (s *authServiceImpl) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	if !validation.ValidUsername(req.Username) {
		return nil, apperrors.NewValidationError("username must be 3-30 characters of lowercase letters, digits or underscores")
	}
	if !validation.ValidPassword(req.Password) {
		return nil, apperrors.NewValidationError("password must be at least 8 characters")
	}
	if req.Email != "" && !validation.ValidEmail(req.Email) {
		return nil, apperrors.NewValidationError("invalid email address")
	}

	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	org := &models.Organization{
		Name:         req.Name,
		Username:     req.Username,
		PasswordHash: passwordHash,
		Description:  req.Description,
		Email:        req.Email,
		Avatar:       req.Avatar,
	}

	if err := s.orgRepo.Create(ctx, org); err != nil {
		if errors.Is(err, apperrors.ErrUsernameAlreadyExists) {
			return nil, apperrors.ErrUsernameAlreadyExists
		}
		return nil, fmt.Errorf("error registering organization: %w", err)
	}

	s.logger.Info().
		Int64("organizationId", org.ID).
		Str("username", org.Username).
		Msg("Organization registered")

	tokens, err := s.issueTokens(ctx, org)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		Organization: organizationProfile(org),
		Tokens:       *tokens,
	}, nil
}

// Login verifies credentials and issues a token pair
func (s *authServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	org, err := s.orgRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, apperrors.ErrOrganizationNotFound) {
			// Same error as a wrong password, so usernames cannot be probed
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("error retrieving organization for login: %w", err)
	}

	if !auth.CheckPassword(org.PasswordHash, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	s.logger.Info().
		Int64("organizationId", org.ID).
		Str("username", org.Username).
		Msg("Organization logged in")

	tokens, err := s.issueTokens(ctx, org)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		Organization: organizationProfile(org),
		Tokens:       *tokens,
	}, nil
}

// RefreshToken exchanges a valid refresh token for a fresh token pair.
// The used refresh token is rotated out.
func (s *authServiceImpl) RefreshToken(ctx context.Context, refreshToken string) (*dto.TokenResponse, error) {
	stored, err := s.tokenRepo.Get(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, apperrors.ErrTokenNotFound) {
			return nil, apperrors.ErrTokenInvalid
		}
		return nil, fmt.Errorf("error retrieving refresh token: %w", err)
	}

	if time.Now().After(stored.ExpiresAt) {
		_ = s.tokenRepo.Delete(ctx, refreshToken)
		return nil, apperrors.ErrTokenExpired
	}

	org, err := s.orgRepo.GetByID(ctx, stored.OrganizationID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving organization for refresh: %w", err)
	}

	if err := s.tokenRepo.Delete(ctx, refreshToken); err != nil {
		return nil, fmt.Errorf("error rotating refresh token: %w", err)
	}

	return s.issueTokens(ctx, org)
}

// Logout revokes the given refresh token
func (s *authServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	err := s.tokenRepo.Delete(ctx, refreshToken)
	if err != nil && !errors.Is(err, apperrors.ErrTokenNotFound) {
		return fmt.Errorf("error revoking refresh token: %w", err)
	}
	return nil
}

// LogoutAll revokes every refresh token issued to the organization, ending
// its sessions on all devices
func (s *authServiceImpl) LogoutAll(ctx context.Context, organizationID int64) error {
	if err := s.tokenRepo.DeleteByOrganization(ctx, organizationID); err != nil {
		return fmt.Errorf("error revoking refresh tokens: %w", err)
	}

	s.logger.Info().
		Int64("organizationId", organizationID).
		Msg("All sessions revoked")

	return nil
}

// GetProfile returns the authenticated organization's own profile
func (s *authServiceImpl) GetProfile(ctx context.Context, organizationID int64) (*dto.OrganizationProfile, error) {
	org, err := s.orgRepo.GetByID(ctx, organizationID)
	if err != nil {
		return nil, err
	}

	profile := organizationProfile(org)
	return &profile, nil
}

func (s *authServiceImpl) issueTokens(ctx context.Context, org *models.Organization) (*dto.TokenResponse, error) {
	accessToken, refreshToken, expiresIn, refreshExpiresIn, err := s.jwtService.GenerateTokenPair(org.ID, org.Username)
	if err != nil {
		return nil, fmt.Errorf("error generating token pair: %w", err)
	}

	err = s.tokenRepo.Store(ctx, &models.RefreshToken{
		OrganizationID: org.ID,
		Token:          refreshToken,
		ExpiresAt:      s.jwtService.GetRefreshTokenExpiry(),
	})
	if err != nil {
		return nil, fmt.Errorf("error storing refresh token: %w", err)
	}

	return &dto.TokenResponse{
		AccessToken:      accessToken,
		RefreshToken:     refreshToken,
		TokenType:        "Bearer",
		ExpiresIn:        expiresIn,
		RefreshExpiresIn: refreshExpiresIn,
	}, nil
}

// organizationProfile maps an organization to its public view
func organizationProfile(org *models.Organization) dto.OrganizationProfile {
	return dto.OrganizationProfile{
		ID:          org.ID,
		Name:        org.Name,
		Username:    org.Username,
		Description: org.Description,
		Email:       org.Email,
		Avatar:      org.Avatar,
		CreatedAt:   org.CreatedAt,
	}
}
