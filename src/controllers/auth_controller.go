package controllers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"feedback-backend/src/services"
	"feedback-backend/src/utils"
)

// LoginUser godoc
// @Summary      Log in as an administrator
// @Description  Exchange email and password for a JWT
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body body object true "Credentials"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  models.ErrorResponse
// @Failure      401  {object}  models.ErrorResponse
// @Router       /auth/login [post]
func LoginUser(c *fiber.Ctx) error {
	type LoginRequest struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid request format")
	}

	if req.Email == "" || req.Password == "" {
		return utils.HandleError(c, fiber.StatusBadRequest, "Email and password are required")
	}

	if services.IsRateLimited(req.Email) {
		remaining := services.GetRemainingCooldownTime(req.Email)
		return utils.HandleError(c, fiber.StatusTooManyRequests,
			fmt.Sprintf("Too many login attempts. Please try again in %d minutes and %d seconds.",
				int(remaining.Minutes()), int(remaining.Seconds())%60))
	}

	user, err := services.AuthenticateUser(req.Email, req.Password)
	if err != nil {
		services.LogLoginAttempt(req.Email, c.IP(), false)
		return utils.HandleError(c, fiber.StatusUnauthorized, "Invalid credentials")
	}

	token, err := utils.GenerateJWT(user.ID.Hex(), user.Email, user.Role)
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Token generation failed")
	}

	services.LogLoginAttempt(req.Email, c.IP(), true)

	return c.JSON(fiber.Map{
		"token": token,
		"user": fiber.Map{
			"id":    user.ID.Hex(),
			"email": user.Email,
			"role":  user.Role,
		},
	})
}

// GetMe godoc
// @Summary      Current authenticated identity
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  models.ErrorResponse
// @Router       /auth/me [get]
func GetMe(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"id":    c.Locals("userId"),
		"email": c.Locals("email"),
		"role":  c.Locals("role"),
	})
}
