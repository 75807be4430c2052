package feedback

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"feedback-backend/src/models"
)

func boolPtr(v bool) *bool    { return &v }
func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }

// testForm builds a form with one question of each type. The text and
// rating questions are required.
func testForm() *models.Form {
	return &models.Form{
		ID:    primitive.NewObjectID(),
		Title: "Service feedback",
		Questions: []models.Question{
			{ID: primitive.NewObjectID(), Text: "How was the service?", Type: models.QuestionTypeText, Required: true},
			{ID: primitive.NewObjectID(), Text: "Would you recommend us?", Type: models.QuestionTypeVote},
			{ID: primitive.NewObjectID(), Text: "Rate your experience", Type: models.QuestionTypeRating, Required: true},
		},
	}
}

func TestValidateAnswersMissingAnswers(t *testing.T) {
	form := testForm()

	assert.ErrorIs(t, ValidateAnswers(form, nil), ErrMissingAnswers)
	assert.ErrorIs(t, ValidateAnswers(form, []models.AnswerInput{}), ErrMissingAnswers)
}

func TestValidateAnswersUnknownQuestion(t *testing.T) {
	form := testForm()
	unknownID := primitive.NewObjectID().Hex()

	err := ValidateAnswers(form, []models.AnswerInput{
		{QuestionID: unknownID, Type: models.QuestionTypeText, Text: strPtr("fine")},
	})
	assert.ErrorIs(t, err, ErrUnknownQuestion)
	assert.Contains(t, err.Error(), unknownID)
}

func TestValidateAnswersMalformedQuestionID(t *testing.T) {
	form := testForm()

	err := ValidateAnswers(form, []models.AnswerInput{
		{QuestionID: "not-a-hex-id", Type: models.QuestionTypeText, Text: strPtr("fine")},
	})
	assert.ErrorIs(t, err, ErrUnknownQuestion)
}

func TestValidateAnswersTypeMismatch(t *testing.T) {
	form := testForm()

	// Vote value submitted against the text question; the value itself
	// being well-formed does not matter.
	err := ValidateAnswers(form, []models.AnswerInput{
		{QuestionID: form.Questions[0].ID.Hex(), Type: models.QuestionTypeVote, Vote: boolPtr(true)},
	})
	assert.ErrorIs(t, err, ErrTypeMismatch)
	assert.Contains(t, err.Error(), "vote")
	assert.Contains(t, err.Error(), "text")
}

func TestValidateAnswersRequiredText(t *testing.T) {
	form := testForm()
	q := form.Questions[0]

	t.Run("MissingText", func(t *testing.T) {
		err := ValidateAnswers(form, []models.AnswerInput{
			{QuestionID: q.ID.Hex(), Type: models.QuestionTypeText},
		})
		assert.ErrorIs(t, err, ErrRequiredFieldMissing)
	})

	t.Run("WhitespaceOnlyText", func(t *testing.T) {
		err := ValidateAnswers(form, []models.AnswerInput{
			{QuestionID: q.ID.Hex(), Type: models.QuestionTypeText, Text: strPtr("   ")},
		})
		assert.ErrorIs(t, err, ErrRequiredFieldMissing)
	})

	t.Run("OptionalTextMayBeEmpty", func(t *testing.T) {
		optional := testForm()
		optional.Questions[0].Required = false
		err := ValidateAnswers(optional, []models.AnswerInput{
			{QuestionID: optional.Questions[0].ID.Hex(), Type: models.QuestionTypeText},
		})
		assert.NoError(t, err)
	})
}

func TestValidateAnswersVoteAlwaysRequired(t *testing.T) {
	form := testForm()
	q := form.Questions[1] // vote question, not flagged required

	err := ValidateAnswers(form, []models.AnswerInput{
		{QuestionID: q.ID.Hex(), Type: models.QuestionTypeVote},
	})
	assert.ErrorIs(t, err, ErrRequiredFieldMissing)
}

func TestValidateAnswersRating(t *testing.T) {
	form := testForm()
	q := form.Questions[2]

	t.Run("AcceptsOneThroughFive", func(t *testing.T) {
		for r := 1; r <= 5; r++ {
			err := ValidateAnswers(form, []models.AnswerInput{
				{QuestionID: q.ID.Hex(), Type: models.QuestionTypeRating, Rating: intPtr(r)},
			})
			assert.NoError(t, err, "rating %d", r)
		}
	})

	t.Run("RejectsOutOfRange", func(t *testing.T) {
		for _, r := range []int{0, 6, -1, 100} {
			err := ValidateAnswers(form, []models.AnswerInput{
				{QuestionID: q.ID.Hex(), Type: models.QuestionTypeRating, Rating: intPtr(r)},
			})
			assert.ErrorIs(t, err, ErrInvalidRating, "rating %d", r)
		}
	})

	t.Run("RequiredRatingMustBePresent", func(t *testing.T) {
		err := ValidateAnswers(form, []models.AnswerInput{
			{QuestionID: q.ID.Hex(), Type: models.QuestionTypeRating},
		})
		assert.ErrorIs(t, err, ErrRequiredFieldMissing)
	})

	t.Run("OptionalRatingMayBeAbsent", func(t *testing.T) {
		optional := testForm()
		optional.Questions[2].Required = false
		err := ValidateAnswers(optional, []models.AnswerInput{
			{QuestionID: optional.Questions[2].ID.Hex(), Type: models.QuestionTypeRating},
		})
		assert.NoError(t, err)
	})
}

func TestValidateAnswersNoPartialAcceptance(t *testing.T) {
	form := testForm()

	// One good answer and one bad answer must reject the whole set.
	err := ValidateAnswers(form, []models.AnswerInput{
		{QuestionID: form.Questions[1].ID.Hex(), Type: models.QuestionTypeVote, Vote: boolPtr(true)},
		{QuestionID: form.Questions[2].ID.Hex(), Type: models.QuestionTypeRating, Rating: intPtr(9)},
	})
	assert.ErrorIs(t, err, ErrInvalidRating)
}
