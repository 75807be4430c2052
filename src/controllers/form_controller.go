package controllers

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"feedback-backend/src/models"
	"feedback-backend/src/services/forms"
	"feedback-backend/src/services/sharelinks"
	"feedback-backend/src/utils"
)

// CreateForm godoc
// @Summary      Create a new feedback form
// @Description  Create a form with typed questions (text, vote, rating)
// @Tags         forms
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body models.CreateFormRequest true "Form definition"
// @Success      201  {object}  models.Form
// @Failure      400  {object}  models.ErrorResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /forms [post]
func CreateForm(c *fiber.Ctx) error {
	var req models.CreateFormRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}

	userID, _ := c.Locals("userId").(string)
	createdBy, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return utils.HandleError(c, fiber.StatusUnauthorized, "Invalid user identity")
	}

	form, err := forms.CreateForm(c.Context(), &req, createdBy)
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}
	return c.Status(fiber.StatusCreated).JSON(form)
}

// GetFormByID godoc
// @Summary      Get a form by ID
// @Description  Public read used by the submission page
// @Tags         forms
// @Produce      json
// @Param        id   path  string  true  "Form ID"
// @Success      200  {object}  models.Form
// @Failure      404  {object}  models.ErrorResponse
// @Router       /forms/{id} [get]
func GetFormByID(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusNotFound, "Form not found")
	}

	form, err := forms.GetFormByID(c.Context(), id)
	if err != nil {
		if err == forms.ErrNotFound {
			return utils.HandleError(c, fiber.StatusNotFound, "Form not found")
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Error fetching form")
	}
	return c.JSON(form)
}

// GetForms godoc
// @Summary      List own forms
// @Description  Paginated list of the forms created by the caller
// @Tags         forms
// @Produce      json
// @Security     BearerAuth
// @Param        page   query  int     false  "Page number"
// @Param        limit  query  int     false  "Items per page"
// @Param        sortBy query  string  false  "Sort field"
// @Param        order  query  string  false  "asc or desc"
// @Success      200  {object}  models.PaginatedResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /forms [get]
func GetForms(c *fiber.Ctx) error {
	userID, _ := c.Locals("userId").(string)
	createdBy, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return utils.HandleError(c, fiber.StatusUnauthorized, "Invalid user identity")
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

	result, err := forms.GetForms(c.Context(), createdBy, params)
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Error fetching forms")
	}
	return c.JSON(result)
}

// CreateShareLink godoc
// @Summary      Mint a public share link for a form
// @Tags         forms
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "Form ID"
// @Success      201  {object}  models.ShareLink
// @Failure      404  {object}  models.ErrorResponse
// @Failure      503  {object}  models.ErrorResponse
// @Router       /forms/{id}/share [post]
func CreateShareLink(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusNotFound, "Form not found")
	}

	link, err := sharelinks.CreateShareLink(c.Context(), id, sharelinks.DefaultTTL)
	if err != nil {
		switch err {
		case sharelinks.ErrUnavailable:
			return utils.HandleError(c, fiber.StatusServiceUnavailable, err.Error())
		case forms.ErrNotFound:
			return utils.HandleError(c, fiber.StatusNotFound, "Form not found")
		default:
			return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
		}
	}
	return c.Status(fiber.StatusCreated).JSON(link)
}

// ResolveShareLink godoc
// @Summary      Resolve a share link to its form
// @Tags         forms
// @Produce      json
// @Param        token  path  string  true  "Share token"
// @Success      200  {object}  models.Form
// @Failure      404  {object}  models.ErrorResponse
// @Router       /f/{token} [get]
func ResolveShareLink(c *fiber.Ctx) error {
	form, err := sharelinks.ResolveShareLink(c.Context(), c.Params("token"))
	if err != nil {
		switch err {
		case sharelinks.ErrUnavailable:
			return utils.HandleError(c, fiber.StatusServiceUnavailable, err.Error())
		case sharelinks.ErrTokenInvalid, forms.ErrNotFound:
			return utils.HandleError(c, fiber.StatusNotFound, "Share link not found or expired")
		default:
			return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
		}
	}
	return c.JSON(form)
}
