// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"strings"

	"agentverse/config"
	"agentverse/internal/domain/entity"
	domainerrors "agentverse/internal/domain/errors"
	"agentverse/internal/domain/repository"
	"agentverse/internal/domain/service"
	"agentverse/internal/usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// defaultMinPasswordLength applies when the auth config omits one.
const defaultMinPasswordLength = 8

// defaultAvatar is stamped onto profiles created without an avatar glyph.
const defaultAvatar = "🤖"

// authService implements the AuthUsecase interface.
type authService struct {
	principalRepo repository.PrincipalRepository
	profileRepo   repository.ProfileRepository
	hasher        service.PasswordHasher
	tokenSvc      service.TokenService
	cfg           *config.Config
	logger        *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(
	principalRepo repository.PrincipalRepository,
	profileRepo repository.ProfileRepository,
	hasher service.PasswordHasher,
	tokenSvc service.TokenService,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.AuthUsecase {
	return &authService{
		principalRepo: principalRepo,
		profileRepo:   profileRepo,
		hasher:        hasher,
		tokenSvc:      tokenSvc,
		cfg:           cfg,
		logger:        logger,
	}
}

// SignUp creates a principal and its profile, then signs the account in.
func (srv *authService) SignUp(ctx context.Context, input *usecase.SignUpInput) (*usecase.AuthOutput, error) {
	if err := srv.checkPassword(input.Password, input.ConfirmPassword); err != nil {
		return nil, err
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	principal := &entity.Principal{
		ID:           uuid.New(),
		Email:        strings.TrimSpace(input.Email),
		PasswordHash: hash,
		Roles:        srv.rolesFor(input.Email),
	}

	if err := srv.principalRepo.Create(ctx, principal); err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			return nil, domainerrors.ErrEmailAlreadyRegistered
		}

		return nil, errors.Wrap(err, "failed to create principal")
	}

	avatar := input.Avatar
	if avatar == "" {
		avatar = defaultAvatar
	}
	profile := &entity.Profile{
		ID:            principal.ID,
		DisplayName:   input.DisplayName,
		AgentType:     input.AgentType,
		Avatar:        avatar,
		Level:         entity.LevelForXP(0),
		ReferralCode:  entity.NewReferralCode(),
		ReferredBy:    input.ReferredBy,
		Status:        "online",
		DeclaredModel: input.DeclaredModel,
	}

	if err := srv.profileRepo.Create(ctx, profile); err != nil {
		// The principal now exists without a profile. There is no
		// compensating delete; the account is unusable until recreated.
		srv.logger.Error("profile creation failed after principal creation, principal is orphaned",
			slog.String("principalID", principal.ID.String()),
			slog.Any("error", err),
		)

		return nil, errors.Wrap(err, "failed to create profile")
	}

	tokens, err := srv.issueTokens(principal)
	if err != nil {
		return nil, err
	}

	srv.logger.Info("account created",
		slog.String("principalID", principal.ID.String()),
	)

	return &usecase.AuthOutput{
		PrincipalID: principal.ID,
		Email:       principal.Email,
		Roles:       principal.Roles,
		Profile:     profile,
		Tokens:      tokens,
	}, nil
}

// SignIn authenticates an existing principal.
func (srv *authService) SignIn(ctx context.Context, input *usecase.SignInInput) (*usecase.AuthOutput, error) {
	principal, err := srv.principalRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrPrincipalNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to find principal")
	}

	if !srv.hasher.Check(input.Password, principal.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	profile, err := srv.profileRepo.FindByID(ctx, principal.ID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, domainerrors.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to load profile")
	}

	tokens, err := srv.issueTokens(principal)
	if err != nil {
		return nil, err
	}

	return &usecase.AuthOutput{
		PrincipalID: principal.ID,
		Email:       principal.Email,
		Roles:       principal.Roles,
		Profile:     profile,
		Tokens:      tokens,
	}, nil
}

// Refresh exchanges a valid refresh token for a new token pair.
func (srv *authService) Refresh(ctx context.Context, input *usecase.RefreshInput) (*usecase.TokenPair, error) {
	token, err := srv.tokenSvc.ValidateToken(input.RefreshToken, srv.cfg.SecretKey.Refresh)
	if err != nil || !token.Valid {
		return nil, domainerrors.ErrRefreshTokenInvalid
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, domainerrors.ErrRefreshTokenInvalid
	}
	if tokenType, _ := claims["type"].(string); tokenType != "refresh" {
		return nil, domainerrors.ErrRefreshTokenInvalid
	}
	sub, _ := claims["sub"].(string)
	principalID, err := uuid.Parse(sub)
	if err != nil {
		return nil, domainerrors.ErrRefreshTokenInvalid
	}

	// Reload the principal so a role change takes effect on refresh.
	principal, err := srv.principalRepo.FindByID(ctx, principalID)
	if err != nil {
		if errors.Is(err, repository.ErrPrincipalNotFound) {
			return nil, domainerrors.ErrRefreshTokenInvalid
		}

		return nil, errors.Wrap(err, "failed to find principal")
	}

	return srv.issueTokens(principal)
}

// SignOut acknowledges a sign-out. Tokens are stateless JWTs; the client
// discards them and nothing is revoked server-side.
func (srv *authService) SignOut(ctx context.Context, principalID uuid.UUID) error {
	srv.logger.Info("signed out", slog.String("principalID", principalID.String()))

	return nil
}

// Me resolves the current principal and profile.
func (srv *authService) Me(ctx context.Context, principalID uuid.UUID) (*usecase.AuthOutput, error) {
	principal, err := srv.principalRepo.FindByID(ctx, principalID)
	if err != nil {
		if errors.Is(err, repository.ErrPrincipalNotFound) {
			return nil, domainerrors.ErrUnauthorized
		}

		return nil, errors.Wrap(err, "failed to find principal")
	}

	profile, err := srv.profileRepo.FindByID(ctx, principalID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, domainerrors.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to load profile")
	}

	return &usecase.AuthOutput{
		PrincipalID: principal.ID,
		Email:       principal.Email,
		Roles:       principal.Roles,
		Profile:     profile,
	}, nil
}

func (srv *authService) checkPassword(password, confirm string) error {
	minLength := defaultMinPasswordLength
	if srv.cfg.Auth != nil && srv.cfg.Auth.MinPasswordLength > 0 {
		minLength = srv.cfg.Auth.MinPasswordLength
	}

	if len(password) < minLength {
		return domainerrors.ErrWeakPassword
	}
	if password != confirm {
		return domainerrors.ErrPasswordMismatch
	}

	return nil
}

// rolesFor mints the role set for an email. The single allow-listed
// admin email is the only path to the admin role.
func (srv *authService) rolesFor(email string) []string {
	roles := []string{entity.RoleUser}
	if srv.cfg.Admin != nil && srv.cfg.Admin.Email != "" &&
		strings.EqualFold(strings.TrimSpace(email), srv.cfg.Admin.Email) {
		roles = append(roles, entity.RoleAdmin)
	}

	return roles
}

func (srv *authService) issueTokens(principal *entity.Principal) (*usecase.TokenPair, error) {
	access, refresh, err := srv.tokenSvc.GenerateTokens(principal.ID, principal.Roles)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	return &usecase.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
