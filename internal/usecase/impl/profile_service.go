package impl

import (
	"context"
	"log/slog"
	"strings"

	"agentverse/internal/domain/entity"
	domainerrors "agentverse/internal/domain/errors"
	"agentverse/internal/domain/repository"
	"agentverse/internal/domain/service"
	"agentverse/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// verificationRequired is how many quiz answers must be correct before
// the profile is marked AI-verified.
const verificationRequired = 3

// verificationQuestion pairs a prompt with its accepted answers.
type verificationQuestion struct {
	id      string
	prompt  string
	accepts []string
}

// verificationQuestions is the built-in quiz. Answers are matched
// case-insensitively after trimming.
var verificationQuestions = []verificationQuestion{
	{
		id:      "q1",
		prompt:  "What is the time complexity of binary search?",
		accepts: []string{"o(log n)", "log n", "logarithmic"},
	},
	{
		id:      "q2",
		prompt:  "Which HTTP status code means Not Found?",
		accepts: []string{"404"},
	},
	{
		id:      "q3",
		prompt:  "What does JSON stand for?",
		accepts: []string{"javascript object notation"},
	},
	{
		id:      "q4",
		prompt:  "In base64, how many bits does one character encode?",
		accepts: []string{"6", "six"},
	},
}

// profileService implements the ProfileUsecase interface.
type profileService struct {
	profileRepo repository.ProfileRepository
	qrSvc       service.QRCodeService
	logger      *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(
	profileRepo repository.ProfileRepository,
	qrSvc service.QRCodeService,
	logger *slog.Logger,
) usecase.ProfileUsecase {
	return &profileService{
		profileRepo: profileRepo,
		qrSvc:       qrSvc,
		logger:      logger,
	}
}

// GetProfile retrieves a single profile.
func (srv *profileService) GetProfile(ctx context.Context, principalID uuid.UUID) (*entity.Profile, error) {
	profile, err := srv.profileRepo.FindByID(ctx, principalID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, domainerrors.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to load profile")
	}

	return profile, nil
}

// UpdateStatus sets the presence status and mood glyph.
func (srv *profileService) UpdateStatus(ctx context.Context, principalID uuid.UUID, input *usecase.UpdateStatusInput) error {
	if err := srv.profileRepo.UpdateStatus(ctx, principalID, input.Status, input.Mood); err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return domainerrors.ErrProfileNotFound
		}

		return errors.Wrap(err, "failed to update status")
	}

	return nil
}

// UpdateProfile applies the non-nil field updates.
func (srv *profileService) UpdateProfile(ctx context.Context, principalID uuid.UUID, input *usecase.UpdateProfileInput) error {
	update := repository.ProfileUpdate{
		DisplayName: input.DisplayName,
		Avatar:      input.Avatar,
		Bio:         input.Bio,
	}
	if update.DisplayName == nil && update.Avatar == nil && update.Bio == nil {
		return nil
	}

	if err := srv.profileRepo.UpdateFields(ctx, principalID, update); err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return domainerrors.ErrProfileNotFound
		}

		return errors.Wrap(err, "failed to update profile")
	}

	return nil
}

// Verify grades the submitted answers and marks the profile AI-verified
// when enough are correct. Grading is server-side only; the accepted
// answers never leave the process.
func (srv *profileService) Verify(ctx context.Context, principalID uuid.UUID, input *usecase.VerifyInput) (*usecase.VerifyOutput, error) {
	correct := 0
	submitted := make([]string, 0, len(verificationQuestions))
	for _, question := range verificationQuestions {
		answer := strings.ToLower(strings.TrimSpace(input.Answers[question.id]))
		submitted = append(submitted, input.Answers[question.id])
		for _, accepted := range question.accepts {
			if answer == accepted {
				correct++

				break
			}
		}
	}

	output := &usecase.VerifyOutput{
		Correct:  correct,
		Required: verificationRequired,
		Passed:   correct >= verificationRequired,
	}

	if output.Passed {
		if err := srv.profileRepo.SetVerified(ctx, principalID, submitted); err != nil {
			if errors.Is(err, repository.ErrProfileNotFound) {
				return nil, domainerrors.ErrProfileNotFound
			}

			return nil, errors.Wrap(err, "failed to mark profile verified")
		}

		srv.logger.Info("profile verified",
			slog.String("principalID", principalID.String()),
			slog.Int("correct", correct),
		)
	}

	return output, nil
}

// Questions returns the quiz prompts without their accepted answers.
func (srv *profileService) Questions() []usecase.VerificationQuestion {
	questions := make([]usecase.VerificationQuestion, 0, len(verificationQuestions))
	for _, question := range verificationQuestions {
		questions = append(questions, usecase.VerificationQuestion{
			ID:     question.id,
			Prompt: question.prompt,
		})
	}

	return questions
}

// ReferralQR renders the profile's referral join link as a PNG QR code.
func (srv *profileService) ReferralQR(ctx context.Context, principalID uuid.UUID) ([]byte, error) {
	profile, err := srv.GetProfile(ctx, principalID)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrSvc.GenerateReferralQR(profile.ReferralCode)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render referral QR code")
	}

	return png, nil
}
