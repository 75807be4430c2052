package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubmitFeedbackRequestDecodeRating(t *testing.T) {
	t.Run("RejectsFractionalRating", func(t *testing.T) {
		// Rating is an integer on the wire; 3.5 must fail decoding so a
		// fractional rating never reaches validation.
		raw := `{"formId":"64a000000000000000000001","answers":[{"questionId":"64a000000000000000000002","type":"rating","rating":3.5}]}`

		var req SubmitFeedbackRequest
		err := json.Unmarshal([]byte(raw), &req)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "rating")
	})

	t.Run("AcceptsIntegerRating", func(t *testing.T) {
		raw := `{"formId":"64a000000000000000000001","answers":[{"questionId":"64a000000000000000000002","type":"rating","rating":4}]}`

		var req SubmitFeedbackRequest
		err := json.Unmarshal([]byte(raw), &req)
		assert.NoError(t, err)
		if assert.Len(t, req.Answers, 1) && assert.NotNil(t, req.Answers[0].Rating) {
			assert.Equal(t, 4, *req.Answers[0].Rating)
		}
	})
}
