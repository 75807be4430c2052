package sentiment

import (
	"regexp"
	"strings"

	"feedback-backend/src/models"
)

// Keyword sets for text scoring. Matching is exact-token and
// case-insensitive; no stemming, no phrases.
var (
	positiveKeywords = keywordSet("good", "great", "awesome", "excellent", "satisfied", "happy", "love")
	negativeKeywords = keywordSet("bad", "poor", "terrible", "awful", "dissatisfied", "unhappy", "hate")
)

var tokenSplitter = regexp.MustCompile(`\W+`)

func keywordSet(words ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

// AnalyzeText scores free text by keyword counts: score > 0 is Positive,
// score < 0 is Negative, 0 (including no matches at all) is Neutral.
func AnalyzeText(text string) string {
	if text == "" {
		return models.SentimentNeutral
	}

	score := 0
	for _, word := range tokenSplitter.Split(strings.ToLower(text), -1) {
		if _, ok := positiveKeywords[word]; ok {
			score++
		} else if _, ok := negativeKeywords[word]; ok {
			score--
		}
	}

	if score > 0 {
		return models.SentimentPositive
	}
	if score < 0 {
		return models.SentimentNegative
	}
	return models.SentimentNeutral
}

// Classify maps one answer to a sentiment label based on its declared type.
// A missing value or unrecognized type falls back to Neutral rather than
// failing the submission.
func Classify(answer models.Answer) string {
	switch answer.Type {
	case models.QuestionTypeVote:
		if answer.Vote == nil {
			return models.SentimentNeutral
		}
		if *answer.Vote {
			return models.SentimentPositive
		}
		return models.SentimentNegative

	case models.QuestionTypeRating:
		if answer.Rating == nil {
			return models.SentimentNeutral
		}
		switch r := *answer.Rating; {
		case r <= 2:
			return models.SentimentNegative
		case r >= 4:
			return models.SentimentPositive
		default:
			return models.SentimentNeutral
		}

	case models.QuestionTypeText:
		if answer.Text == nil {
			return models.SentimentNeutral
		}
		return AnalyzeText(*answer.Text)
	}

	return models.SentimentNeutral
}

// Aggregate folds per-answer sentiments into one label: majority count,
// ties broken Positive > Neutral > Negative. An empty answer list is
// Neutral. One Positive plus one Negative therefore resolves to Positive.
func Aggregate(answers []models.Answer) string {
	if len(answers) == 0 {
		return models.SentimentNeutral
	}

	counts := map[string]int{
		models.SentimentPositive: 0,
		models.SentimentNegative: 0,
		models.SentimentNeutral:  0,
	}
	total := 0
	for _, a := range answers {
		if _, ok := counts[a.Sentiment]; ok {
			counts[a.Sentiment]++
			total++
		}
	}
	if total == 0 {
		return models.SentimentNeutral
	}

	max := 0
	for _, n := range counts {
		if n > max {
			max = n
		}
	}

	if counts[models.SentimentPositive] == max {
		return models.SentimentPositive
	}
	if counts[models.SentimentNeutral] == max {
		return models.SentimentNeutral
	}
	return models.SentimentNegative
}
