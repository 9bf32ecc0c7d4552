package feedback

import (
	"context"
	"errors"
	"time"

	"Backend-ClassPulse/src/database"
	"Backend-ClassPulse/src/models"
	"Backend-ClassPulse/src/services/activities"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	ErrInvalidReaction = errors.New("reactionType must be one of SMILEY, FROWNY, SURPRISED, CONFUSED")
	ErrNotOwner        = errors.New("only the owning professor may view this feedback")
)

const queryTimeout = 5 * time.Second

// Submit accepts one anonymous reaction for an activity. The live window is
// re-checked on every call — a reference obtained at join time says nothing
// once the window closed. There is deliberately no dedup or rate limit here:
// with no participant identity there is nothing to key either on.
func Submit(activityID string, reaction string) error {
	activity, err := activities.GetByID(activityID)
	if err != nil {
		return err
	}

	now := time.Now()
	if !activity.IsActive(now) {
		return activities.ErrActivityExpired
	}

	reactionType := models.NormalizeReaction(reaction)
	if !reactionType.IsValid() {
		return ErrInvalidReaction
	}

	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	_, err = database.FeedbackCollection.InsertOne(ctx, models.Feedback{
		ID:           primitive.NewObjectID(),
		ActivityID:   activity.ID,
		ReactionType: reactionType,
		Timestamp:    now,
		IsAnonymous:  true,
	})
	return err
}

// Summary returns the aggregate view for the owning professor. Everything
// ever accepted for the activity is included, expired or not — history
// stays readable after the window closes. Recomputed in full on every call;
// the frontend polls this.
func Summary(activityID string, requesterID string) (*models.FeedbackSummary, error) {
	activity, err := activities.GetByID(activityID)
	if err != nil {
		return nil, err
	}

	if activity.OwnerID.Hex() != requesterID {
		return nil, ErrNotOwner
	}

	rows, err := listForActivity(activity.ID)
	if err != nil {
		return nil, err
	}

	summary := Summarize(rows)
	return &summary, nil
}

func listForActivity(activityID primitive.ObjectID) ([]models.Feedback, error) {
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: 1}})
	cursor, err := database.FeedbackCollection.Find(ctx, bson.M{"activityId": activityID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rows []models.Feedback
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// Summarize reduces raw reactions into per-category counts plus the detail
// list the owner's view renders. Counts are zero-filled for all four
// categories; order of rows does not matter, counting is commutative.
func Summarize(rows []models.Feedback) models.FeedbackSummary {
	counts := make(map[models.ReactionType]int, len(models.ReactionTypes))
	for _, rt := range models.ReactionTypes {
		counts[rt] = 0
	}

	details := make([]models.FeedbackDetail, 0, len(rows))
	for _, row := range rows {
		counts[row.ReactionType]++
		details = append(details, models.FeedbackDetail{
			ReactionType: row.ReactionType,
			Timestamp:    row.Timestamp,
		})
	}

	return models.FeedbackSummary{Counts: counts, Details: details}
}
