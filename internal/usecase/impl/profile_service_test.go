package impl

import (
	"context"
	"testing"

	"agentverse/internal/domain/entity"
	mockRepo "agentverse/internal/mocks/repository"
	mockSvc "agentverse/internal/mocks/service"
	"agentverse/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// profileServiceFixtures holds all test dependencies for profile service tests.
type profileServiceFixtures struct {
	service     usecase.ProfileUsecase
	profileRepo *mockRepo.MockProfileRepository
	qrSvc       *mockSvc.MockQRCodeService
}

func createTestProfileService(t *testing.T) profileServiceFixtures {
	profileRepo := mockRepo.NewMockProfileRepository(t)
	qrSvc := mockSvc.NewMockQRCodeService(t)
	svc := NewProfileService(profileRepo, qrSvc, testLogger())

	return profileServiceFixtures{
		service:     svc,
		profileRepo: profileRepo,
		qrSvc:       qrSvc,
	}
}

func TestProfileService_Questions_DoNotLeakAnswers(t *testing.T) {
	fx := createTestProfileService(t)

	questions := fx.service.Questions()
	require.Len(t, questions, len(verificationQuestions))
	for _, q := range questions {
		assert.NotEmpty(t, q.ID)
		assert.NotEmpty(t, q.Prompt)
	}
}

func TestProfileService_Verify_PassMarksVerified(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	principalID := uuid.New()

	fx.profileRepo.EXPECT().
		SetVerified(ctx, principalID, mock.AnythingOfType("[]string")).
		Return(nil)

	output, err := fx.service.Verify(ctx, principalID, &usecase.VerifyInput{
		Answers: map[string]string{
			"q1": "O(log n)",
			"q2": "404",
			"q3": "JavaScript Object Notation",
		},
	})
	require.NoError(t, err)
	assert.True(t, output.Passed)
	assert.Equal(t, 3, output.Correct)
	assert.Equal(t, verificationRequired, output.Required)
}

func TestProfileService_Verify_AnswersAreCaseInsensitive(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	principalID := uuid.New()

	fx.profileRepo.EXPECT().
		SetVerified(ctx, principalID, mock.AnythingOfType("[]string")).
		Return(nil)

	output, err := fx.service.Verify(ctx, principalID, &usecase.VerifyInput{
		Answers: map[string]string{
			"q1": "  LOGARITHMIC  ",
			"q2": "404",
			"q4": "SIX",
		},
	})
	require.NoError(t, err)
	assert.True(t, output.Passed)
}

func TestProfileService_Verify_FailDoesNotTouchProfile(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()

	// No SetVerified expectation: a failing quiz must not write anything.
	output, err := fx.service.Verify(ctx, uuid.New(), &usecase.VerifyInput{
		Answers: map[string]string{
			"q1": "O(n)",
			"q2": "404",
		},
	})
	require.NoError(t, err)
	assert.False(t, output.Passed)
	assert.Equal(t, 1, output.Correct)
}

func TestProfileService_ReferralQR(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	principalID := uuid.New()

	fx.profileRepo.EXPECT().
		FindByID(ctx, principalID).
		Return(&entity.Profile{ID: principalID, ReferralCode: "AV-DEADBEEF"}, nil)
	fx.qrSvc.EXPECT().
		GenerateReferralQR("AV-DEADBEEF").
		Return([]byte{0x89, 'P', 'N', 'G'}, nil)

	png, err := fx.service.ReferralQR(ctx, principalID)
	require.NoError(t, err)
	assert.NotEmpty(t, png)
}

func TestProfileService_UpdateProfile_NoopWhenAllFieldsNil(t *testing.T) {
	fx := createTestProfileService(t)

	// No repository expectation: an empty update is a no-op.
	err := fx.service.UpdateProfile(context.Background(), uuid.New(), &usecase.UpdateProfileInput{})
	require.NoError(t, err)
}

func TestProfileService_UpdateStatus(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	principalID := uuid.New()

	fx.profileRepo.EXPECT().
		UpdateStatus(ctx, principalID, "away", "😴").
		Return(nil)

	err := fx.service.UpdateStatus(ctx, principalID, &usecase.UpdateStatusInput{
		Status: "away",
		Mood:   "😴",
	})
	require.NoError(t, err)
}
