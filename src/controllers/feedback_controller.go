package controllers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"feedback-backend/src/models"
	feedbackSvc "feedback-backend/src/services/feedback"
	"feedback-backend/src/utils"
)

// SubmitFeedback godoc
// @Summary      Submit feedback for a form
// @Description  Anonymous submission; answers are validated against the form's question schema and annotated with sentiment
// @Tags         feedback
// @Accept       json
// @Produce      json
// @Param        body body models.SubmitFeedbackRequest true "Submission"
// @Success      201  {object}  models.Feedback
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /feedback [post]
func SubmitFeedback(c *fiber.Ctx) error {
	var req models.SubmitFeedbackRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}

	created, err := feedbackSvc.CreateFeedback(c.Context(), &req)
	if err != nil {
		return handleFeedbackError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":  "Feedback submitted successfully",
		"feedback": created,
	})
}

// handleFeedbackError maps the validation error kinds onto status codes.
// Validation failures never reach the database, so anything unrecognized
// is a server-side persistence problem.
func handleFeedbackError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, feedbackSvc.ErrFormNotFound):
		return utils.HandleError(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, feedbackSvc.ErrMissingAnswers),
		errors.Is(err, feedbackSvc.ErrUnknownQuestion),
		errors.Is(err, feedbackSvc.ErrTypeMismatch),
		errors.Is(err, feedbackSvc.ErrRequiredFieldMissing),
		errors.Is(err, feedbackSvc.ErrInvalidRating):
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	default:
		return utils.HandleError(c, fiber.StatusInternalServerError, "Error submitting feedback")
	}
}

// GetFeedbacks godoc
// @Summary      List feedback submissions
// @Description  Filter by form, inclusive date range and sentiment; newest first
// @Tags         feedback
// @Produce      json
// @Security     BearerAuth
// @Param        formId     query  string  false  "Form ID"
// @Param        startDate  query  string  false  "YYYY-MM-DD"
// @Param        endDate    query  string  false  "YYYY-MM-DD (inclusive)"
// @Param        sentiment  query  string  false  "Positive, Negative or Neutral"
// @Param        page       query  int     false  "Page number"
// @Param        limit      query  int     false  "Items per page"
// @Success      200  {object}  models.PaginatedResponse
// @Failure      400  {object}  models.ErrorResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /feedback [get]
func GetFeedbacks(c *fiber.Ctx) error {
	filter, err := parseQueryFilter(c)
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}
	filter.Sentiment = c.Query("sentiment")

	params := models.DefaultPagination()
	if err := c.QueryParser(&params); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid pagination parameters")
	}
	if params.Page < 1 {
		params.Page = 1
	}
	if params.Limit < 1 {
		params.Limit = 10
	}

	result, err := feedbackSvc.GetFeedbacks(c.Context(), filter, params)
	if err != nil {
		if errors.Is(err, feedbackSvc.ErrFormNotFound) {
			return utils.HandleError(c, fiber.StatusBadRequest, "invalid formId")
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Error fetching feedbacks")
	}
	return c.JSON(result)
}

// GetFeedbackStats godoc
// @Summary      Feedback statistics
// @Description  Aggregate counts over the matching feedback set
// @Tags         feedback
// @Produce      json
// @Security     BearerAuth
// @Param        formId     query  string  false  "Form ID"
// @Param        startDate  query  string  false  "YYYY-MM-DD"
// @Param        endDate    query  string  false  "YYYY-MM-DD (inclusive)"
// @Success      200  {object}  models.FeedbackStats
// @Failure      400  {object}  models.ErrorResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /feedback/stats [get]
func GetFeedbackStats(c *fiber.Ctx) error {
	filter, err := parseQueryFilter(c)
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}

	stats, err := feedbackSvc.GetFeedbackStats(c.Context(), filter)
	if err != nil {
		if errors.Is(err, feedbackSvc.ErrFormNotFound) {
			return utils.HandleError(c, fiber.StatusBadRequest, "invalid formId")
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Error fetching feedback statistics")
	}
	return c.JSON(stats)
}

// GetFeedbacksByForm godoc
// @Summary      List feedback for one form
// @Tags         feedback
// @Produce      json
// @Security     BearerAuth
// @Param        formId  path   string  true   "Form ID"
// @Param        page    query  int     false  "Page number"
// @Param        limit   query  int     false  "Items per page"
// @Success      200  {object}  models.PaginatedResponse
// @Failure      400  {object}  models.ErrorResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /feedback/form/{formId} [get]
func GetFeedbacksByForm(c *fiber.Ctx) error {
	if _, err := primitive.ObjectIDFromHex(c.Params("formId")); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid form ID")
	}

	params := models.DefaultPagination()
	if err := c.QueryParser(&params); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid pagination parameters")
	}
	if params.Page < 1 {
		params.Page = 1
	}
	if params.Limit < 1 {
		params.Limit = 10
	}

	result, err := feedbackSvc.GetFeedbacks(c.Context(), feedbackSvc.QueryFilter{FormID: c.Params("formId")}, params)
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Error fetching form feedback")
	}
	return c.JSON(result)
}

// GetFeedbackByID godoc
// @Summary      Get one feedback submission
// @Tags         feedback
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "Feedback ID"
// @Success      200  {object}  models.Feedback
// @Failure      404  {object}  models.ErrorResponse
// @Router       /feedback/{id} [get]
func GetFeedbackByID(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid ID format")
	}

	feedback, err := feedbackSvc.GetFeedbackByID(c.Context(), id)
	if err != nil {
		return utils.HandleError(c, fiber.StatusNotFound, "Feedback not found")
	}
	return c.JSON(feedback)
}

// DeleteFeedback godoc
// @Summary      Delete a feedback submission
// @Tags         feedback
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "Feedback ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  models.ErrorResponse
// @Router       /feedback/{id} [delete]
func DeleteFeedback(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid ID format")
	}

	if err := feedbackSvc.DeleteFeedback(c.Context(), id); err != nil {
		return utils.HandleError(c, fiber.StatusNotFound, "Feedback not found")
	}
	return c.JSON(fiber.Map{"message": "Feedback deleted successfully"})
}

// parseQueryFilter reads the shared formId/startDate/endDate query params.
func parseQueryFilter(c *fiber.Ctx) (feedbackSvc.QueryFilter, error) {
	filter := feedbackSvc.QueryFilter{FormID: c.Query("formId")}

	if raw := c.Query("startDate"); raw != "" {
		t, err := time.ParseInLocation("2006-01-02", raw, time.Local)
		if err != nil {
			return filter, errors.New("invalid startDate, expected YYYY-MM-DD")
		}
		filter.StartDate = &t
	}

	if raw := c.Query("endDate"); raw != "" {
		t, err := time.ParseInLocation("2006-01-02", raw, time.Local)
		if err != nil {
			return filter, errors.New("invalid endDate, expected YYYY-MM-DD")
		}
		filter.EndDate = &t
	}

	return filter, nil
}
