package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/elementa/backend/internal/app/content"
	"github.com/elementa/backend/internal/app/models"
	"github.com/elementa/backend/internal/app/models/dto"
	"github.com/elementa/backend/internal/app/repositories"
	"github.com/elementa/backend/internal/pkg/apperrors"
)

// AssessmentService scores quiz submissions and serves stored results
type AssessmentService struct {
	assessmentRepo *repositories.AssessmentRepository
	logger         zerolog.Logger
}

// NewAssessmentService creates a new assessment service
func NewAssessmentService(assessmentRepo *repositories.AssessmentRepository, logger zerolog.Logger) *AssessmentService {
	return &AssessmentService{
		assessmentRepo: assessmentRepo,
		logger:         logger,
	}
}

// Questions returns the full question bank in presentation order
func (s *AssessmentService) Questions() []dto.QuestionResponse {
	out := make([]dto.QuestionResponse, 0, len(content.Questions))
	for _, q := range content.Questions {
		out = append(out, dto.QuestionResponse{
			ID:      q.ID,
			Text:    q.Text,
			Element: q.Element,
		})
	}
	return out
}

// Submit validates a full set of answers, scores it and persists the result
func (s *AssessmentService) Submit(ctx context.Context, req *dto.SubmitAssessmentRequest) (*dto.AssessmentResultResponse, error) {
	scores, dominant, err := ScoreAnswers(req.Answers)
	if err != nil {
		return nil, err
	}

	result := &models.AssessmentResult{
		PublicID:        uuid.New().String(),
		Scores:          scores,
		DominantElement: dominant,
	}
	if req.Email != nil && *req.Email != "" {
		email := strings.ToLower(strings.TrimSpace(*req.Email))
		result.Email = &email
	}

	if err := s.assessmentRepo.Create(ctx, result); err != nil {
		return nil, err
	}

	s.logger.Info().Str("publicID", result.PublicID).Str("dominant", dominant).Msg("Assessment scored")

	return s.toResponse(result), nil
}

// GetResult looks up a stored result by its shareable public ID
func (s *AssessmentService) GetResult(ctx context.Context, publicID string) (*dto.AssessmentResultResponse, error) {
	if _, err := uuid.Parse(publicID); err != nil {
		return nil, apperrors.ErrResultNotFound
	}

	result, err := s.assessmentRepo.GetByPublicID(ctx, publicID)
	if err != nil {
		return nil, err
	}

	return s.toResponse(result), nil
}

func (s *AssessmentService) toResponse(result *models.AssessmentResult) *dto.AssessmentResultResponse {
	scores := make([]dto.ElementScore, 0, len(content.ElementSlugs))
	for _, slug := range content.ElementSlugs {
		element, _ := content.ElementBySlug(slug)
		scores = append(scores, dto.ElementScore{
			Element:    slug,
			Name:       element.Name,
			Percentage: result.Scores[slug],
		})
	}

	return &dto.AssessmentResultResponse{
		PublicID:        result.PublicID,
		Scores:          scores,
		DominantElement: result.DominantElement,
		CreatedAt:       result.CreatedAt,
	}
}

// ScoreAnswers reduces a complete answer set to per-element percentages.
// Every question must be answered exactly once. Each element's score is
// the answered sum as a percentage of the maximum possible for that
// element, rounded half up. The dominant element is the highest score;
// ties break toward the canonical element order.
func ScoreAnswers(answers []dto.AnswerInput) (map[string]int, string, error) {
	if len(answers) != len(content.Questions) {
		return nil, "", apperrors.NewValidationError(
			fmt.Sprintf("expected %d answers, got %d", len(content.Questions), len(answers)))
	}

	sums := make(map[string]int, len(content.ElementSlugs))
	seen := make(map[int]bool, len(answers))

	for _, a := range answers {
		q, ok := content.QuestionByID(a.QuestionID)
		if !ok {
			return nil, "", apperrors.NewValidationError(fmt.Sprintf("unknown question ID %d", a.QuestionID))
		}
		if seen[a.QuestionID] {
			return nil, "", apperrors.NewValidationError(fmt.Sprintf("duplicate answer for question %d", a.QuestionID))
		}
		if a.Rating < content.RatingMin || a.Rating > content.RatingMax {
			return nil, "", apperrors.NewValidationError(fmt.Sprintf("rating for question %d out of range", a.QuestionID))
		}
		seen[a.QuestionID] = true
		sums[q.Element] += a.Rating
	}

	maxPerElement := content.RatingMax * content.QuestionsPerElement

	scores := make(map[string]int, len(content.ElementSlugs))
	dominant := ""
	best := -1
	for _, slug := range content.ElementSlugs {
		score := (sums[slug]*100 + maxPerElement/2) / maxPerElement
		scores[slug] = score
		if score > best {
			best = score
			dominant = slug
		}
	}

	return scores, dominant, nil
}
