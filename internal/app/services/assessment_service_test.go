package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elementa/backend/internal/app/content"
	"github.com/elementa/backend/internal/app/models/dto"
)

// fullAnswers builds a complete answer set with the given rating for every
// question, then applies overrides keyed by question id.
func fullAnswers(rating int, overrides map[int]int) []dto.AnswerInput {
	answers := make([]dto.AnswerInput, 0, len(content.Questions))
	for _, q := range content.Questions {
		r := rating
		if o, ok := overrides[q.ID]; ok {
			r = o
		}
		answers = append(answers, dto.AnswerInput{QuestionID: q.ID, Rating: r})
	}
	return answers
}

func TestScoreAnswers(t *testing.T) {
	t.Run("uniform ratings give uniform scores", func(t *testing.T) {
		scores, dominant, err := ScoreAnswers(fullAnswers(5, nil))
		require.NoError(t, err)

		for _, slug := range content.ElementSlugs {
			assert.Equal(t, 100, scores[slug], slug)
		}
		// All tied at 100; the first canonical element wins.
		assert.Equal(t, "electric", dominant)
	})

	t.Run("mixed ratings scale to percentages", func(t *testing.T) {
		scores, _, err := ScoreAnswers(fullAnswers(1, map[int]int{5: 5, 6: 2}))
		require.NoError(t, err)

		// fiery: 5+2+1+1 = 9 of 20.
		assert.Equal(t, 45, scores["fiery"])
		// everything else: 4 of 20.
		assert.Equal(t, 20, scores["electric"])
	})

	t.Run("dominant element has highest score", func(t *testing.T) {
		// Boost all four metallic questions (ids 21-24).
		boost := map[int]int{21: 5, 22: 5, 23: 5, 24: 5}
		scores, dominant, err := ScoreAnswers(fullAnswers(2, boost))
		require.NoError(t, err)

		assert.Equal(t, "metallic", dominant)
		assert.Equal(t, 100, scores["metallic"])
		assert.Equal(t, 40, scores["airy"])
	})

	t.Run("tie resolves in canonical order", func(t *testing.T) {
		// Boost airy (17-20) and metallic (21-24) equally; airy precedes
		// metallic in canonical order.
		boost := map[int]int{17: 5, 18: 5, 19: 5, 20: 5, 21: 5, 22: 5, 23: 5, 24: 5}
		scores, dominant, err := ScoreAnswers(fullAnswers(1, boost))
		require.NoError(t, err)

		assert.Equal(t, scores["airy"], scores["metallic"])
		assert.Equal(t, "airy", dominant)
	})

	t.Run("incomplete submission rejected", func(t *testing.T) {
		answers := fullAnswers(3, nil)
		_, _, err := ScoreAnswers(answers[:len(answers)-1])
		assert.Error(t, err)
	})

	t.Run("unknown question id rejected", func(t *testing.T) {
		answers := fullAnswers(3, nil)
		answers[0].QuestionID = 999
		_, _, err := ScoreAnswers(answers)
		assert.Error(t, err)
	})

	t.Run("duplicate question id rejected", func(t *testing.T) {
		answers := fullAnswers(3, nil)
		answers[1].QuestionID = answers[0].QuestionID
		_, _, err := ScoreAnswers(answers)
		assert.Error(t, err)
	})

	t.Run("rating out of range rejected", func(t *testing.T) {
		for _, bad := range []int{0, 6, -1} {
			answers := fullAnswers(3, nil)
			answers[0].Rating = bad
			_, _, err := ScoreAnswers(answers)
			assert.Error(t, err, "rating %d", bad)
		}
	})
}
