package controllers

import (
	"errors"

	"Backend-ClassPulse/src/services/activities"
	"Backend-ClassPulse/src/services/feedback"
	"Backend-ClassPulse/src/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var validate = validator.New()

type createActivityRequest struct {
	Name            string `json:"name" validate:"required"`
	Description     string `json:"description" validate:"required"`
	DurationMinutes int    `json:"durationMinutes" validate:"required,gt=0"`
}

// CreateActivity godoc
// @Summary      Start a new feedback activity
// @Description  Creates a timed activity with a fresh join code. Fails while the professor still has a live one.
// @Tags         activities
// @Accept       json
// @Produce      json
// @Param        body body createActivityRequest true "Activity fields"
// @Success      201  {object}  models.ActivitySummary
// @Failure      400  {object}  models.ErrorResponse
// @Failure      409  {object}  models.ErrorResponse
// @Security     BearerAuth
// @Router       /activities [post]
func CreateActivity(c *fiber.Ctx) error {
	var req createActivityRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}
	if err := validate.Struct(req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Missing required fields: name, description, durationMinutes")
	}

	ownerID, err := primitive.ObjectIDFromHex(c.Locals("userId").(string))
	if err != nil {
		return utils.HandleError(c, fiber.StatusUnauthorized, "Invalid user id in token")
	}

	activity, err := activities.Create(ownerID, req.Name, req.Description, req.DurationMinutes)
	if err != nil {
		switch {
		case errors.Is(err, activities.ErrInvalidInput),
			errors.Is(err, activities.ErrActiveActivityExists):
			return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
		case errors.Is(err, activities.ErrCodeCollision):
			return utils.HandleError(c, fiber.StatusConflict, err.Error())
		default:
			return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to create activity")
		}
	}

	return c.Status(fiber.StatusCreated).JSON(activity.Summary())
}

// GetActiveActivity godoc
// @Summary      Get the professor's currently running activity
// @Description  Returns the live activity, or 404 when none is running (an expected outcome, not an error).
// @Tags         activities
// @Produce      json
// @Success      200  {object}  models.ActivitySummary
// @Failure      404  {object}  models.ErrorResponse
// @Security     BearerAuth
// @Router       /activities/active [get]
func GetActiveActivity(c *fiber.Ctx) error {
	ownerID, err := primitive.ObjectIDFromHex(c.Locals("userId").(string))
	if err != nil {
		return utils.HandleError(c, fiber.StatusUnauthorized, "Invalid user id in token")
	}

	activity, err := activities.GetActive(ownerID)
	if err != nil {
		if errors.Is(err, activities.ErrNoActiveActivity) {
			return utils.HandleError(c, fiber.StatusNotFound, err.Error())
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to look up active activity")
	}

	return c.Status(fiber.StatusOK).JSON(activity.Summary())
}

// GetActivityFeedback godoc
// @Summary      Aggregated feedback for one activity
// @Description  Per-category counts plus the raw detail rows. Owner only. Polled by the chart (5s interval).
// @Tags         activities
// @Produce      json
// @Param        id   path  string  true  "Activity ID"
// @Success      200  {object}  models.FeedbackSummary
// @Failure      403  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Security     BearerAuth
// @Router       /activities/{id}/feedback [get]
func GetActivityFeedback(c *fiber.Ctx) error {
	requesterID := c.Locals("userId").(string)

	summary, err := feedback.Summary(c.Params("id"), requesterID)
	if err != nil {
		switch {
		case errors.Is(err, activities.ErrActivityNotFound):
			return utils.HandleError(c, fiber.StatusNotFound, err.Error())
		case errors.Is(err, feedback.ErrNotOwner):
			return utils.HandleError(c, fiber.StatusForbidden, err.Error())
		default:
			return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to fetch feedback")
		}
	}

	return c.Status(fiber.StatusOK).JSON(summary)
}
