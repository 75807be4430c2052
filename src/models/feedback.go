package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Sentiment labels carried by answers and whole feedbacks.
const (
	SentimentPositive = "Positive"
	SentimentNegative = "Negative"
	SentimentNeutral  = "Neutral"
)

// --- Answer ---
// Embedded in Feedback, one per answered question. Exactly one of Text,
// Vote, Rating is populated, matching Type. Sentiment is computed at
// submission time, never accepted from the client.
type Answer struct {
	QuestionID   primitive.ObjectID `bson:"questionId" json:"questionId"`
	QuestionText string             `bson:"questionText" json:"questionText"`
	Type         string             `bson:"type" json:"type"`
	Text         *string            `bson:"text,omitempty" json:"text,omitempty"`
	Vote         *bool              `bson:"vote,omitempty" json:"vote,omitempty"`
	Rating       *int               `bson:"rating,omitempty" json:"rating,omitempty"`
	Sentiment    string             `bson:"sentiment" json:"sentiment"`
}

// --- Feedback ---
// Write-once: created by an anonymous submission, read-only after.
// OverallSentiment is cached at write time and must always equal the
// aggregate over Answers.
type Feedback struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FormID           primitive.ObjectID `bson:"formId" json:"formId"`
	Answers          []Answer           `bson:"answers" json:"answers"`
	CreatedAt        time.Time          `bson:"createdAt" json:"createdAt"`
	OverallSentiment string             `bson:"overallSentiment" json:"overallSentiment"`
}

// --- Input DTOs ---

// AnswerInput is the wire shape of one submitted answer.
type AnswerInput struct {
	QuestionID string  `json:"questionId"`
	Type       string  `json:"type"`
	Text       *string `json:"text,omitempty"`
	Vote       *bool   `json:"vote,omitempty"`
	Rating     *int    `json:"rating,omitempty"`
}

type SubmitFeedbackRequest struct {
	FormID  string        `json:"formId"`
	Answers []AnswerInput `json:"answers"`
}

// --- Stats ---

// FeedbackStats is the one-pass reduction over a feedback set.
type FeedbackStats struct {
	TotalSubmissions   int            `json:"totalSubmissions"`
	Sentiment          map[string]int `json:"sentiment"`
	ByQuestionType     map[string]int `json:"byQuestionType"`
	RatingDistribution map[int]int    `json:"ratingDistribution"`
	VoteDistribution   map[string]int `json:"voteDistribution"`
	SubmissionsByDate  map[string]int `json:"submissionsByDate"`
	AverageRating      float64        `json:"averageRating"`
}
