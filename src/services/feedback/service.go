package feedback

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	DB "feedback-backend/src/database"
	"feedback-backend/src/models"
	"feedback-backend/src/services/sentiment"
)

// GetFormByID loads the form a submission targets. ErrFormNotFound also
// covers a malformed id, so the public endpoint leaks nothing about ids.
func GetFormByID(ctx context.Context, formID string) (*models.Form, error) {
	oid, err := primitive.ObjectIDFromHex(formID)
	if err != nil {
		return nil, ErrFormNotFound
	}

	var form models.Form
	if err := DB.FormCollection.FindOne(ctx, bson.M{"_id": oid}).Decode(&form); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrFormNotFound
		}
		return nil, err
	}
	return &form, nil
}

// BuildAnswers assembles the stored answer records from validated input:
// question text denormalized at submission time, exactly one value field
// set per type (text defaults to "" so the stored shape is uniform), and
// sentiment filled in by the classifier. Input order is preserved.
func BuildAnswers(form *models.Form, inputs []models.AnswerInput) []models.Answer {
	answers := make([]models.Answer, 0, len(inputs))
	for _, in := range inputs {
		oid, _ := primitive.ObjectIDFromHex(in.QuestionID)

		// Guaranteed present post-validation; the fallback only guards
		// direct callers that skipped ValidateAnswers.
		questionText := "Unknown Question"
		if question := form.QuestionByID(oid); question != nil {
			questionText = question.Text
		}

		answer := models.Answer{
			QuestionID:   oid,
			QuestionText: questionText,
			Type:         in.Type,
		}

		switch in.Type {
		case models.QuestionTypeText:
			text := ""
			if in.Text != nil {
				text = *in.Text
			}
			answer.Text = &text
		case models.QuestionTypeVote:
			answer.Vote = in.Vote
		case models.QuestionTypeRating:
			answer.Rating = in.Rating
		}

		answer.Sentiment = sentiment.Classify(answer)
		answers = append(answers, answer)
	}
	return answers
}

// CreateFeedback validates a public submission against its form, assembles
// the sentiment-annotated answers and persists the record. Validation
// failures surface before any write.
func CreateFeedback(ctx context.Context, req *models.SubmitFeedbackRequest) (*models.Feedback, error) {
	form, err := GetFormByID(ctx, req.FormID)
	if err != nil {
		return nil, err
	}

	if err := ValidateAnswers(form, req.Answers); err != nil {
		return nil, err
	}

	answers := BuildAnswers(form, req.Answers)

	feedback := &models.Feedback{
		ID:               primitive.NewObjectID(),
		FormID:           form.ID,
		Answers:          answers,
		CreatedAt:        time.Now(),
		OverallSentiment: sentiment.Aggregate(answers),
	}

	res, err := DB.FeedbackCollection.InsertOne(ctx, feedback)
	if err != nil {
		return nil, fmt.Errorf("failed to persist feedback: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		feedback.ID = oid
	}

	log.Printf("[feedback] inserted id=%s form=%s answers=%d overall=%s",
		feedback.ID.Hex(), feedback.FormID.Hex(), len(feedback.Answers), feedback.OverallSentiment)

	enqueueStatsRefresh(feedback.FormID.Hex())

	return feedback, nil
}

// QueryFilter narrows admin feedback listings and statistics. EndDate is
// extended to 23:59:59.999 so the range is inclusive of the whole day.
type QueryFilter struct {
	FormID    string
	StartDate *time.Time
	EndDate   *time.Time
	Sentiment string
}

func (f QueryFilter) toBson() (bson.M, error) {
	query := bson.M{}

	if f.FormID != "" {
		oid, err := primitive.ObjectIDFromHex(f.FormID)
		if err != nil {
			return nil, ErrFormNotFound
		}
		query["formId"] = oid
	}

	if f.StartDate != nil || f.EndDate != nil {
		created := bson.M{}
		if f.StartDate != nil {
			created["$gte"] = *f.StartDate
		}
		if f.EndDate != nil {
			created["$lte"] = EndOfDay(*f.EndDate)
		}
		query["createdAt"] = created
	}

	if f.Sentiment != "" {
		query["answers.sentiment"] = f.Sentiment
	}

	return query, nil
}

// EndOfDay pushes a date filter boundary to the last millisecond of its day.
func EndOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, int(999*time.Millisecond), t.Location())
}

// GetFeedbacks returns a newest-first page of feedback records matching
// the filter.
func GetFeedbacks(ctx context.Context, filter QueryFilter, params models.PaginationParams) (*models.PaginatedResponse, error) {
	query, err := filter.toBson()
	if err != nil {
		return nil, err
	}

	total, err := DB.FeedbackCollection.CountDocuments(ctx, query)
	if err != nil {
		return nil, err
	}

	opts := options.Find().
		SetSkip(params.GetSkip()).
		SetLimit(int64(params.Limit)).
		SetSort(bson.D{{Key: params.SortBy, Value: params.GetSortOrder()}})

	cursor, err := DB.FeedbackCollection.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	feedbacks := []models.Feedback{}
	if err := cursor.All(ctx, &feedbacks); err != nil {
		return nil, err
	}

	return models.NewPaginatedResponse(feedbacks, total, params), nil
}

// GetFeedbackByID retrieves one feedback record.
func GetFeedbackByID(ctx context.Context, id primitive.ObjectID) (*models.Feedback, error) {
	var feedback models.Feedback
	if err := DB.FeedbackCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&feedback); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("feedback not found")
		}
		return nil, err
	}
	return &feedback, nil
}

// DeleteFeedback removes a feedback record (admin operation) and queues a
// stats snapshot rebuild for its form.
func DeleteFeedback(ctx context.Context, id primitive.ObjectID) error {
	existing, err := GetFeedbackByID(ctx, id)
	if err != nil {
		return err
	}

	res, err := DB.FeedbackCollection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("feedback not found")
	}

	log.Printf("[feedback] deleted id=%s form=%s", id.Hex(), existing.FormID.Hex())
	enqueueStatsRefresh(existing.FormID.Hex())
	return nil
}
