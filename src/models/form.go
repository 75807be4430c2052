package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Question types a form may contain.
const (
	QuestionTypeText   = "text"
	QuestionTypeVote   = "vote"
	QuestionTypeRating = "rating"
)

// --- Question ---
// Embedded in Form. Immutable once feedback references it: answers key off
// questionId + type.
type Question struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Text     string             `bson:"text" json:"text"`
	Type     string             `bson:"type" json:"type"`
	Required bool               `bson:"required,omitempty" json:"required,omitempty"`
}

// --- Form ---
type Form struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Title     string             `bson:"title" json:"title"`
	Questions []Question         `bson:"questions" json:"questions"`
	CreatedBy primitive.ObjectID `bson:"createdBy,omitempty" json:"createdBy,omitempty"`
	CreatedAt time.Time          `bson:"createdAt,omitempty" json:"createdAt"`
}

// QuestionByID returns the embedded question with the given id, or nil.
func (f *Form) QuestionByID(id primitive.ObjectID) *Question {
	for i := range f.Questions {
		if f.Questions[i].ID == id {
			return &f.Questions[i]
		}
	}
	return nil
}

// --- Requests / DTOs ---

type CreateQuestionRequest struct {
	Text     string `json:"text" validate:"required,min=1"`
	Type     string `json:"type" validate:"required,oneof=text vote rating"`
	Required bool   `json:"required"`
}

type CreateFormRequest struct {
	Title     string                  `json:"title" validate:"required,min=3"`
	Questions []CreateQuestionRequest `json:"questions" validate:"required,min=1,dive"`
}

// FormSummary is the list-view shape: questions replaced by their count.
type FormSummary struct {
	ID            primitive.ObjectID `bson:"_id" json:"id"`
	Title         string             `bson:"title" json:"title"`
	QuestionCount int                `bson:"-" json:"questionCount"`
	Questions     []Question         `bson:"questions" json:"-"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
}

// ShareLink is the public-link handle minted for a form.
type ShareLink struct {
	Token     string    `json:"token"`
	FormID    string    `json:"formId"`
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expiresAt"`
}
