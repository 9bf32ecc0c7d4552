package controllers

import (
	"errors"
	"fmt"

	"Backend-ClassPulse/src/services/users"
	"Backend-ClassPulse/src/utils"

	"github.com/gofiber/fiber/v2"
)

type registerRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type resetPasswordRequest struct {
	Password string `json:"password" validate:"required,min=6"`
}

// RegisterUser godoc
// @Summary      Register an account
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body body registerRequest true "Account fields"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  models.ErrorResponse
// @Router       /users/register [post]
func RegisterUser(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}
	if err := validate.Struct(req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "name, email and a password of at least 6 characters are required")
	}

	user, err := users.Register(req.Name, req.Email, req.Password, req.Role)
	if err != nil {
		if errors.Is(err, users.ErrEmailTaken) {
			return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to register user")
	}

	token, err := utils.GenerateJWT(user.ID.Hex(), user.Email, user.Role)
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Token generation failed")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id":    user.ID.Hex(),
		"name":  user.Name,
		"email": user.Email,
		"role":  user.Role,
		"token": token,
	})
}

// LoginUser godoc
// @Summary      Log in
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body body loginRequest true "Credentials"
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  models.ErrorResponse
// @Failure      429  {object}  models.ErrorResponse
// @Router       /users/login [post]
func LoginUser(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}
	if err := validate.Struct(req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "email and password are required")
	}

	if utils.IsRateLimited(req.Email) {
		remaining := utils.GetRemainingCooldownTime(req.Email)
		return utils.HandleError(c, fiber.StatusTooManyRequests,
			fmt.Sprintf("Too many login attempts. Try again in %d minutes and %d seconds.",
				int(remaining.Minutes()), int(remaining.Seconds())%60))
	}

	user, err := users.Authenticate(req.Email, req.Password)
	if err != nil {
		utils.RecordLoginFailure(req.Email)
		return utils.HandleError(c, fiber.StatusUnauthorized, "Invalid credentials")
	}
	utils.ClearLoginFailures(req.Email)

	token, err := utils.GenerateJWT(user.ID.Hex(), user.Email, user.Role)
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Token generation failed")
	}

	return c.JSON(fiber.Map{
		"id":    user.ID.Hex(),
		"name":  user.Name,
		"email": user.Email,
		"role":  user.Role,
		"token": token,
	})
}

// ForgotPassword godoc
// @Summary      Request a password-reset email
// @Description  Always answers 200 so the endpoint cannot be used to probe which emails exist.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body body map[string]string true "Email"
// @Success      200  {object}  map[string]string
// @Router       /users/forgot-password [post]
func ForgotPassword(c *fiber.Ctx) error {
	var req struct {
		Email string `json:"email"`
	}
	if err := c.BodyParser(&req); err != nil || req.Email == "" {
		return utils.HandleError(c, fiber.StatusBadRequest, "email is required")
	}

	if err := users.RequestPasswordReset(req.Email); err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to send reset email")
	}

	return c.JSON(fiber.Map{"message": "If an account exists for this email, a reset link has been sent."})
}

// ValidateResetToken godoc
// @Summary      Check whether a reset token is still valid
// @Tags         users
// @Produce      json
// @Param        token path string true "Reset token"
// @Success      200  {object}  map[string]bool
// @Failure      400  {object}  models.ErrorResponse
// @Router       /users/reset-password/{token} [get]
func ValidateResetToken(c *fiber.Ctx) error {
	if err := users.ValidateResetToken(c.Params("token")); err != nil {
		if errors.Is(err, users.ErrInvalidResetToken) {
			return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to validate reset token")
	}
	return c.JSON(fiber.Map{"valid": true})
}

// ResetPassword godoc
// @Summary      Set a new password using a reset token
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        token path string true "Reset token"
// @Param        body body resetPasswordRequest true "New password"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  models.ErrorResponse
// @Router       /users/reset-password/{token} [post]
func ResetPassword(c *fiber.Ctx) error {
	var req resetPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}
	if err := validate.Struct(req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "a password of at least 6 characters is required")
	}

	if err := users.ResetPassword(c.Params("token"), req.Password); err != nil {
		if errors.Is(err, users.ErrInvalidResetToken) || errors.Is(err, users.ErrUserNotFound) {
			return utils.HandleError(c, fiber.StatusBadRequest, "invalid or expired reset token")
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to reset password")
	}

	return c.JSON(fiber.Map{"message": "Password updated successfully"})
}
