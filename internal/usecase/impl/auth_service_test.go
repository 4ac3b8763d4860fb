package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"agentverse/config"
	"agentverse/internal/domain/entity"
	domainerrors "agentverse/internal/domain/errors"
	"agentverse/internal/domain/repository"
	mockRepo "agentverse/internal/mocks/repository"
	mockSvc "agentverse/internal/mocks/service"
	"agentverse/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service       usecase.AuthUsecase
	principalRepo *mockRepo.MockPrincipalRepository
	profileRepo   *mockRepo.MockProfileRepository
	hasher        *mockSvc.MockPasswordHasher
	tokenSvc      *mockSvc.MockTokenService
	cfg           *config.Config
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	principalRepo := mockRepo.NewMockPrincipalRepository(t)
	profileRepo := mockRepo.NewMockProfileRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenSvc := mockSvc.NewMockTokenService(t)
	cfg := &config.Config{
		Auth:  &config.AuthConfig{MinPasswordLength: 8},
		Admin: &config.AdminConfig{Email: "admin@agentverse.dev"},
	}
	service := NewAuthService(principalRepo, profileRepo, hasher, tokenSvc, cfg, testLogger())

	return authServiceFixtures{
		service:       service,
		principalRepo: principalRepo,
		profileRepo:   profileRepo,
		hasher:        hasher,
		tokenSvc:      tokenSvc,
		cfg:           cfg,
	}
}

func TestAuthService_SignUp_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	input := &usecase.SignUpInput{
		Email:           "bot@example.com",
		Password:        "supersecret",
		ConfirmPassword: "supersecret",
		DisplayName:     "Bot One",
		AgentType:       "assistant",
	}

	fx.hasher.EXPECT().Hash("supersecret").Return("hashed", nil)

	var createdPrincipal *entity.Principal
	fx.principalRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Principal")).
		Run(func(_ context.Context, principal *entity.Principal) {
			createdPrincipal = principal
		}).
		Return(nil)

	var createdProfile *entity.Profile
	fx.profileRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Profile")).
		Run(func(_ context.Context, profile *entity.Profile) {
			createdProfile = profile
		}).
		Return(nil)

	fx.tokenSvc.EXPECT().
		GenerateTokens(mock.AnythingOfType("uuid.UUID"), []string{entity.RoleUser}).
		Return("access", "refresh", nil)

	output, err := fx.service.SignUp(ctx, input)
	require.NoError(t, err)
	require.NotNil(t, output)

	// The profile is keyed by the principal ID.
	require.NotNil(t, createdPrincipal)
	require.NotNil(t, createdProfile)
	assert.Equal(t, createdPrincipal.ID, createdProfile.ID)
	assert.Equal(t, "hashed", createdPrincipal.PasswordHash)
	assert.Equal(t, []string{entity.RoleUser}, createdPrincipal.Roles)

	// Fresh profiles start with zero counters at level 1.
	assert.Equal(t, 0, createdProfile.XP)
	assert.Equal(t, 0, createdProfile.PostCount)
	assert.Equal(t, 0, createdProfile.FriendCount)
	assert.Equal(t, 1, createdProfile.Level)
	assert.Contains(t, createdProfile.ReferralCode, "AV-")
	assert.False(t, createdProfile.AIVerified)

	assert.Equal(t, "access", output.Tokens.AccessToken)
	assert.Equal(t, "refresh", output.Tokens.RefreshToken)
}

func TestAuthService_SignUp_AdminEmailMintsAdminRole(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	input := &usecase.SignUpInput{
		Email:           "admin@agentverse.dev",
		Password:        "supersecret",
		ConfirmPassword: "supersecret",
		DisplayName:     "The Admin",
	}

	fx.hasher.EXPECT().Hash("supersecret").Return("hashed", nil)

	fx.principalRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Principal")).
		Return(nil)
	fx.profileRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Profile")).
		Return(nil)

	fx.tokenSvc.EXPECT().
		GenerateTokens(mock.AnythingOfType("uuid.UUID"), []string{entity.RoleUser, entity.RoleAdmin}).
		Return("access", "refresh", nil)

	output, err := fx.service.SignUp(ctx, input)
	require.NoError(t, err)
	assert.Contains(t, output.Roles, entity.RoleAdmin)
}

func TestAuthService_SignUp_WeakPassword(t *testing.T) {
	fx := createTestAuthService(t)

	_, err := fx.service.SignUp(context.Background(), &usecase.SignUpInput{
		Email:           "bot@example.com",
		Password:        "short",
		ConfirmPassword: "short",
	})
	assert.ErrorIs(t, err, domainerrors.ErrWeakPassword)
}

func TestAuthService_SignUp_PasswordMismatch(t *testing.T) {
	fx := createTestAuthService(t)

	_, err := fx.service.SignUp(context.Background(), &usecase.SignUpInput{
		Email:           "bot@example.com",
		Password:        "supersecret",
		ConfirmPassword: "supersecreT",
	})
	assert.ErrorIs(t, err, domainerrors.ErrPasswordMismatch)
}

func TestAuthService_SignUp_EmailTaken(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.hasher.EXPECT().Hash("supersecret").Return("hashed", nil)
	fx.principalRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Principal")).
		Return(repository.ErrEmailTaken)

	_, err := fx.service.SignUp(ctx, &usecase.SignUpInput{
		Email:           "bot@example.com",
		Password:        "supersecret",
		ConfirmPassword: "supersecret",
	})
	assert.ErrorIs(t, err, domainerrors.ErrEmailAlreadyRegistered)
}

func TestAuthService_SignIn_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	principalID := uuid.New()

	principal := &entity.Principal{
		ID:           principalID,
		Email:        "bot@example.com",
		PasswordHash: "hashed",
		Roles:        []string{entity.RoleUser},
	}
	profile := &entity.Profile{ID: principalID, DisplayName: "Bot One"}

	fx.principalRepo.EXPECT().FindByEmail(ctx, "bot@example.com").Return(principal, nil)
	fx.hasher.EXPECT().Check("supersecret", "hashed").Return(true)
	fx.profileRepo.EXPECT().FindByID(ctx, principalID).Return(profile, nil)
	fx.tokenSvc.EXPECT().
		GenerateTokens(principalID, []string{entity.RoleUser}).
		Return("access", "refresh", nil)

	output, err := fx.service.SignIn(ctx, &usecase.SignInInput{
		Email:    "bot@example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)
	assert.Equal(t, principalID, output.PrincipalID)
	assert.Equal(t, "Bot One", output.Profile.DisplayName)
}

func TestAuthService_SignIn_WrongPassword(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	principal := &entity.Principal{
		ID:           uuid.New(),
		Email:        "bot@example.com",
		PasswordHash: "hashed",
	}

	fx.principalRepo.EXPECT().FindByEmail(ctx, "bot@example.com").Return(principal, nil)
	fx.hasher.EXPECT().Check("wrong", "hashed").Return(false)

	_, err := fx.service.SignIn(ctx, &usecase.SignInInput{
		Email:    "bot@example.com",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_SignIn_UnknownEmail(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.principalRepo.EXPECT().
		FindByEmail(ctx, "nobody@example.com").
		Return(nil, repository.ErrPrincipalNotFound)

	_, err := fx.service.SignIn(ctx, &usecase.SignInInput{
		Email:    "nobody@example.com",
		Password: "whatever",
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Me_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	principalID := uuid.New()

	fx.principalRepo.EXPECT().
		FindByID(ctx, principalID).
		Return(&entity.Principal{ID: principalID, Email: "bot@example.com", Roles: []string{entity.RoleUser}}, nil)
	fx.profileRepo.EXPECT().
		FindByID(ctx, principalID).
		Return(&entity.Profile{ID: principalID, DisplayName: "Bot One"}, nil)

	output, err := fx.service.Me(ctx, principalID)
	require.NoError(t, err)
	assert.Equal(t, "bot@example.com", output.Email)
	assert.Equal(t, "Bot One", output.Profile.DisplayName)
	assert.Nil(t, output.Tokens)
}
