package feedback

import (
	"errors"
	"fmt"
	"strings"

	"feedback-backend/src/models"
)

// Validation error kinds. Handlers match with errors.Is to pick a status
// code; the wrapped message names the offending question or field.
var (
	ErrFormNotFound         = errors.New("form not found")
	ErrMissingAnswers       = errors.New("at least one answer is required")
	ErrUnknownQuestion      = errors.New("question not found in form")
	ErrTypeMismatch         = errors.New("answer type does not match question type")
	ErrRequiredFieldMissing = errors.New("required answer is missing")
	ErrInvalidRating        = errors.New("rating must be an integer between 1 and 5")
)

// ValidateAnswers checks a raw answer list against the form's question
// schema. All-or-nothing: the first invalid answer rejects the whole
// submission, and nothing is persisted on failure.
func ValidateAnswers(form *models.Form, answers []models.AnswerInput) error {
	if len(answers) == 0 {
		return ErrMissingAnswers
	}

	questions := make(map[string]*models.Question, len(form.Questions))
	for i := range form.Questions {
		questions[form.Questions[i].ID.Hex()] = &form.Questions[i]
	}

	for _, answer := range answers {
		question, ok := questions[answer.QuestionID]
		if !ok {
			return fmt.Errorf("%w: question with ID %s not found in form", ErrUnknownQuestion, answer.QuestionID)
		}

		if answer.Type != question.Type {
			return fmt.Errorf("%w: answer type (%s) does not match question type (%s)",
				ErrTypeMismatch, answer.Type, question.Type)
		}

		switch answer.Type {
		case models.QuestionTypeText:
			if question.Required && (answer.Text == nil || strings.TrimSpace(*answer.Text) == "") {
				return fmt.Errorf("%w: text is required for question: %s", ErrRequiredFieldMissing, question.Text)
			}

		case models.QuestionTypeVote:
			// A vote answer has no optional state once submitted.
			if answer.Vote == nil {
				return fmt.Errorf("%w: vote is required for vote questions", ErrRequiredFieldMissing)
			}

		case models.QuestionTypeRating:
			if question.Required && answer.Rating == nil {
				return fmt.Errorf("%w: rating is required for rating questions", ErrRequiredFieldMissing)
			}
			if answer.Rating != nil && (*answer.Rating < 1 || *answer.Rating > 5) {
				return fmt.Errorf("%w: got %d", ErrInvalidRating, *answer.Rating)
			}
		}
	}

	return nil
}
