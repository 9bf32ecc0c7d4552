package controllers

import (
	"errors"

	"Backend-ClassPulse/src/models"
	"Backend-ClassPulse/src/services/activities"
	"Backend-ClassPulse/src/services/feedback"
	"Backend-ClassPulse/src/utils"

	"github.com/gofiber/fiber/v2"
)

type joinRequest struct {
	UniqueCode string `json:"uniqueCode" validate:"required"`
}

type submitFeedbackRequest struct {
	ActivityID   string `json:"activityId" validate:"required"`
	ReactionType string `json:"reactionType" validate:"required"`
}

// JoinActivity godoc
// @Summary      Resolve a join code
// @Description  Maps a student-entered code to the activity it belongs to. Codes are trimmed and case-folded. An expired activity answers 403, an unknown code 404 — the UI shows different messages for the two.
// @Tags         feedback
// @Accept       json
// @Produce      json
// @Param        body body joinRequest true "Join code"
// @Success      200  {object}  models.JoinResult
// @Failure      400  {object}  models.ErrorResponse
// @Failure      403  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /feedback/join [post]
func JoinActivity(c *fiber.Ctx) error {
	var req joinRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}
	if err := validate.Struct(req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "uniqueCode is required")
	}

	activity, err := activities.ResolveByCode(req.UniqueCode)
	if err != nil {
		switch {
		case errors.Is(err, activities.ErrActivityNotFound):
			return utils.HandleError(c, fiber.StatusNotFound, "Invalid code or activity does not exist")
		case errors.Is(err, activities.ErrActivityExpired):
			return utils.HandleError(c, fiber.StatusForbidden, "Activity has expired")
		default:
			return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to resolve join code")
		}
	}

	return c.Status(fiber.StatusOK).JSON(models.JoinResult{
		ActivityID: activity.ID,
		Name:       activity.Name,
	})
}

// SubmitFeedback godoc
// @Summary      Submit one anonymous reaction
// @Description  Accepts a reaction while the activity window is open. Expiry is re-checked on every submission, not cached from join time.
// @Tags         feedback
// @Accept       json
// @Produce      json
// @Param        body body submitFeedbackRequest true "Reaction"
// @Success      201  {object}  map[string]string
// @Failure      400  {object}  models.ErrorResponse
// @Failure      403  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /feedback [post]
func SubmitFeedback(c *fiber.Ctx) error {
	var req submitFeedbackRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}
	if err := validate.Struct(req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "activityId and reactionType are required")
	}

	if err := feedback.Submit(req.ActivityID, req.ReactionType); err != nil {
		switch {
		case errors.Is(err, activities.ErrActivityNotFound):
			return utils.HandleError(c, fiber.StatusNotFound, err.Error())
		case errors.Is(err, activities.ErrActivityExpired):
			return utils.HandleError(c, fiber.StatusForbidden, "Feedback window closed, activity has expired")
		case errors.Is(err, feedback.ErrInvalidReaction):
			return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
		default:
			return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to save feedback")
		}
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Feedback recorded anonymously"})
}
