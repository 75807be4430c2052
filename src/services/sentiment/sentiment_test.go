package sentiment

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"feedback-backend/src/models"
)

func boolPtr(v bool) *bool    { return &v }
func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }

func TestClassifyVote(t *testing.T) {
	t.Run("TrueIsPositive", func(t *testing.T) {
		answer := models.Answer{Type: models.QuestionTypeVote, Vote: boolPtr(true)}
		assert.Equal(t, models.SentimentPositive, Classify(answer))
	})

	t.Run("FalseIsNegative", func(t *testing.T) {
		answer := models.Answer{Type: models.QuestionTypeVote, Vote: boolPtr(false)}
		assert.Equal(t, models.SentimentNegative, Classify(answer))
	})

	t.Run("MissingVoteIsNeutral", func(t *testing.T) {
		answer := models.Answer{Type: models.QuestionTypeVote}
		assert.Equal(t, models.SentimentNeutral, Classify(answer))
	})
}

func TestClassifyRating(t *testing.T) {
	expected := map[int]string{
		1: models.SentimentNegative,
		2: models.SentimentNegative,
		3: models.SentimentNeutral,
		4: models.SentimentPositive,
		5: models.SentimentPositive,
	}

	for rating, want := range expected {
		answer := models.Answer{Type: models.QuestionTypeRating, Rating: intPtr(rating)}
		assert.Equal(t, want, Classify(answer), "rating %d", rating)
	}

	t.Run("MissingRatingIsNeutral", func(t *testing.T) {
		answer := models.Answer{Type: models.QuestionTypeRating}
		assert.Equal(t, models.SentimentNeutral, Classify(answer))
	})
}

func TestClassifyText(t *testing.T) {
	t.Run("PositiveKeywordsWin", func(t *testing.T) {
		answer := models.Answer{Type: models.QuestionTypeText, Text: strPtr("Great service! Everything worked smoothly.")}
		assert.Equal(t, models.SentimentPositive, Classify(answer))
	})

	t.Run("NegativeKeywordsWin", func(t *testing.T) {
		answer := models.Answer{Type: models.QuestionTypeText, Text: strPtr("terrible and awful, but good")}
		assert.Equal(t, models.SentimentNegative, Classify(answer))
	})

	t.Run("BalancedScoreIsNeutral", func(t *testing.T) {
		answer := models.Answer{Type: models.QuestionTypeText, Text: strPtr("good but bad")}
		assert.Equal(t, models.SentimentNeutral, Classify(answer))
	})

	t.Run("NoKeywordsIsNeutral", func(t *testing.T) {
		answer := models.Answer{Type: models.QuestionTypeText, Text: strPtr("the delivery arrived on tuesday")}
		assert.Equal(t, models.SentimentNeutral, Classify(answer))
	})

	t.Run("MatchingIsCaseInsensitive", func(t *testing.T) {
		answer := models.Answer{Type: models.QuestionTypeText, Text: strPtr("LOVE it")}
		assert.Equal(t, models.SentimentPositive, Classify(answer))
	})

	t.Run("KeywordsMatchWholeTokensOnly", func(t *testing.T) {
		// "goodness" and "badge" must not count as "good" / "bad"
		answer := models.Answer{Type: models.QuestionTypeText, Text: strPtr("goodness me, what a badge")}
		assert.Equal(t, models.SentimentNeutral, Classify(answer))
	})

	t.Run("PunctuationSeparatesTokens", func(t *testing.T) {
		answer := models.Answer{Type: models.QuestionTypeText, Text: strPtr("good,good.bad")}
		assert.Equal(t, models.SentimentPositive, Classify(answer))
	})

	t.Run("EmptyTextIsNeutral", func(t *testing.T) {
		answer := models.Answer{Type: models.QuestionTypeText, Text: strPtr("")}
		assert.Equal(t, models.SentimentNeutral, Classify(answer))
	})

	t.Run("MissingTextIsNeutral", func(t *testing.T) {
		answer := models.Answer{Type: models.QuestionTypeText}
		assert.Equal(t, models.SentimentNeutral, Classify(answer))
	})
}

func TestClassifyUnknownType(t *testing.T) {
	answer := models.Answer{Type: "emoji"}
	assert.Equal(t, models.SentimentNeutral, Classify(answer))
}

func TestAggregate(t *testing.T) {
	mk := func(labels ...string) []models.Answer {
		answers := make([]models.Answer, 0, len(labels))
		for _, l := range labels {
			answers = append(answers, models.Answer{Sentiment: l})
		}
		return answers
	}

	t.Run("EmptyIsNeutral", func(t *testing.T) {
		assert.Equal(t, models.SentimentNeutral, Aggregate(nil))
		assert.Equal(t, models.SentimentNeutral, Aggregate([]models.Answer{}))
	})

	t.Run("PlainMajority", func(t *testing.T) {
		got := Aggregate(mk(models.SentimentPositive, models.SentimentPositive, models.SentimentNegative))
		assert.Equal(t, models.SentimentPositive, got)

		got = Aggregate(mk(models.SentimentNegative, models.SentimentNegative, models.SentimentPositive))
		assert.Equal(t, models.SentimentNegative, got)
	})

	t.Run("TieBreakPositiveOverNegative", func(t *testing.T) {
		got := Aggregate(mk(models.SentimentPositive, models.SentimentNegative))
		assert.Equal(t, models.SentimentPositive, got)
	})

	t.Run("TieBreakNeutralOverNegative", func(t *testing.T) {
		got := Aggregate(mk(models.SentimentNegative, models.SentimentNeutral))
		assert.Equal(t, models.SentimentNeutral, got)
	})

	t.Run("TieBreakPositiveOverNeutral", func(t *testing.T) {
		got := Aggregate(mk(models.SentimentPositive, models.SentimentNeutral))
		assert.Equal(t, models.SentimentPositive, got)
	})

	t.Run("ThreeWayTieIsPositive", func(t *testing.T) {
		got := Aggregate(mk(models.SentimentPositive, models.SentimentNeutral, models.SentimentNegative))
		assert.Equal(t, models.SentimentPositive, got)
	})

	t.Run("UnlabeledAnswersAreIgnored", func(t *testing.T) {
		got := Aggregate(mk("", models.SentimentNegative))
		assert.Equal(t, models.SentimentNegative, got)
	})

	t.Run("OnlyUnlabeledIsNeutral", func(t *testing.T) {
		assert.Equal(t, models.SentimentNeutral, Aggregate(mk("", "")))
	})
}

func TestAnalyzeTextScoring(t *testing.T) {
	assert.Equal(t, models.SentimentPositive, AnalyzeText("happy happy bad"))
	assert.Equal(t, models.SentimentNegative, AnalyzeText("unhappy"))
	assert.Equal(t, models.SentimentNeutral, AnalyzeText(""))
}
