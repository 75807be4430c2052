package forms

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	DB "feedback-backend/src/database"
	"feedback-backend/src/models"
)

var validate = validator.New()

var ErrNotFound = errors.New("form not found")

// normalizeAndValidate trims the title and question texts, then checks
// the request. Length rules apply to the trimmed values, and the trimmed
// values are what gets stored.
func normalizeAndValidate(req *models.CreateFormRequest) error {
	req.Title = strings.TrimSpace(req.Title)
	for i := range req.Questions {
		req.Questions[i].Text = strings.TrimSpace(req.Questions[i].Text)
	}
	return validate.Struct(req)
}

// CreateForm validates the request and stores a new form with
// server-generated question ids. Forms are immutable once stored.
func CreateForm(ctx context.Context, req *models.CreateFormRequest, createdBy primitive.ObjectID) (*models.Form, error) {
	if err := normalizeAndValidate(req); err != nil {
		return nil, err
	}

	questions := make([]models.Question, 0, len(req.Questions))
	for _, q := range req.Questions {
		questions = append(questions, models.Question{
			ID:       primitive.NewObjectID(),
			Text:     q.Text,
			Type:     q.Type,
			Required: q.Required,
		})
	}

	form := &models.Form{
		ID:        primitive.NewObjectID(),
		Title:     req.Title,
		Questions: questions,
		CreatedBy: createdBy,
		CreatedAt: time.Now(),
	}

	if _, err := DB.FormCollection.InsertOne(ctx, form); err != nil {
		return nil, err
	}
	return form, nil
}

// GetFormByID returns a form by id. Public: anyone holding the id (or a
// share link resolving to it) may read the form to fill it in.
func GetFormByID(ctx context.Context, id primitive.ObjectID) (*models.Form, error) {
	var form models.Form
	if err := DB.FormCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&form); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &form, nil
}

// GetForms lists the forms created by one admin, paginated and sorted,
// with per-form question counts for the list view.
func GetForms(ctx context.Context, createdBy primitive.ObjectID, params models.PaginationParams) (*models.PaginatedResponse, error) {
	query := bson.M{"createdBy": createdBy}

	total, err := DB.FormCollection.CountDocuments(ctx, query)
	if err != nil {
		return nil, err
	}

	opts := options.Find().
		SetSkip(params.GetSkip()).
		SetLimit(int64(params.Limit)).
		SetSort(bson.D{{Key: params.SortBy, Value: params.GetSortOrder()}})

	cursor, err := DB.FormCollection.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	summaries := []models.FormSummary{}
	if err := cursor.All(ctx, &summaries); err != nil {
		return nil, err
	}
	for i := range summaries {
		summaries[i].QuestionCount = len(summaries[i].Questions)
	}

	return models.NewPaginatedResponse(summaries, total, params), nil
}
