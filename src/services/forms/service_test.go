package forms

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"feedback-backend/src/models"
)

func validRequest() *models.CreateFormRequest {
	return &models.CreateFormRequest{
		Title: "Service feedback",
		Questions: []models.CreateQuestionRequest{
			{Text: "How was the service?", Type: models.QuestionTypeText},
		},
	}
}

func TestNormalizeAndValidateTitle(t *testing.T) {
	t.Run("PaddedShortTitleIsRejected", func(t *testing.T) {
		// "  a " is one character after trimming; the minimum applies
		// to the trimmed length.
		req := validRequest()
		req.Title = "  a "
		assert.Error(t, normalizeAndValidate(req))
	})

	t.Run("PaddedValidTitleIsTrimmed", func(t *testing.T) {
		req := validRequest()
		req.Title = "  Service feedback  "
		assert.NoError(t, normalizeAndValidate(req))
		assert.Equal(t, "Service feedback", req.Title)
	})

	t.Run("WhitespaceOnlyTitleIsRejected", func(t *testing.T) {
		req := validRequest()
		req.Title = "   "
		assert.Error(t, normalizeAndValidate(req))
	})
}

func TestNormalizeAndValidateQuestions(t *testing.T) {
	t.Run("QuestionTextIsTrimmed", func(t *testing.T) {
		req := validRequest()
		req.Questions[0].Text = "  How was the service?  "
		assert.NoError(t, normalizeAndValidate(req))
		assert.Equal(t, "How was the service?", req.Questions[0].Text)
	})

	t.Run("WhitespaceOnlyQuestionTextIsRejected", func(t *testing.T) {
		req := validRequest()
		req.Questions[0].Text = "   "
		assert.Error(t, normalizeAndValidate(req))
	})

	t.Run("UnknownQuestionTypeIsRejected", func(t *testing.T) {
		req := validRequest()
		req.Questions[0].Type = "emoji"
		assert.Error(t, normalizeAndValidate(req))
	})

	t.Run("EmptyQuestionListIsRejected", func(t *testing.T) {
		req := validRequest()
		req.Questions = nil
		assert.Error(t, normalizeAndValidate(req))
	})
}
