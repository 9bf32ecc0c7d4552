package feedback

import (
	"testing"
	"time"

	"Backend-ClassPulse/src/models"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func reactionRows(activityID primitive.ObjectID, base time.Time, types ...models.ReactionType) []models.Feedback {
	rows := make([]models.Feedback, 0, len(types))
	for i, rt := range types {
		rows = append(rows, models.Feedback{
			ID:           primitive.NewObjectID(),
			ActivityID:   activityID,
			ReactionType: rt,
			Timestamp:    base.Add(time.Duration(i) * time.Second),
			IsAnonymous:  true,
		})
	}
	return rows
}

func TestSummarize(t *testing.T) {
	activityID := primitive.NewObjectID()
	base := time.Date(2026, 3, 10, 9, 5, 0, 0, time.UTC)

	t.Run("CountsPerCategory", func(t *testing.T) {
		rows := reactionRows(activityID, base,
			models.ReactionSmiley, models.ReactionSmiley, models.ReactionFrowny)

		s := Summarize(rows)

		assert.Equal(t, 2, s.Counts[models.ReactionSmiley])
		assert.Equal(t, 1, s.Counts[models.ReactionFrowny])
		assert.Equal(t, 0, s.Counts[models.ReactionSurprised])
		assert.Equal(t, 0, s.Counts[models.ReactionConfused])
		assert.Len(t, s.Details, 3)
	})

	t.Run("NoPhantomCategories", func(t *testing.T) {
		s := Summarize(reactionRows(activityID, base, models.ReactionConfused))

		for rt, n := range s.Counts {
			if rt != models.ReactionConfused {
				assert.Zero(t, n, "category %s was never submitted", rt)
			}
		}
	})

	t.Run("EmptyInputIsZeroFilled", func(t *testing.T) {
		s := Summarize(nil)

		assert.Len(t, s.Counts, len(models.ReactionTypes))
		for _, rt := range models.ReactionTypes {
			assert.Zero(t, s.Counts[rt])
		}
		assert.Empty(t, s.Details)
	})

	t.Run("OrderDoesNotMatter", func(t *testing.T) {
		forward := reactionRows(activityID, base,
			models.ReactionSmiley, models.ReactionFrowny, models.ReactionSurprised)
		backward := reactionRows(activityID, base,
			models.ReactionSurprised, models.ReactionFrowny, models.ReactionSmiley)

		assert.Equal(t, Summarize(forward).Counts, Summarize(backward).Counts)
	})

	t.Run("DuplicatesAreCountedTwice", func(t *testing.T) {
		// Anonymous submissions have no dedup key: a retried request simply
		// counts again.
		rows := reactionRows(activityID, base, models.ReactionSmiley)
		rows = append(rows, rows[0])

		s := Summarize(rows)
		assert.Equal(t, 2, s.Counts[models.ReactionSmiley])
	})

	t.Run("DetailsKeepReactionAndTimestamp", func(t *testing.T) {
		rows := reactionRows(activityID, base, models.ReactionFrowny)

		s := Summarize(rows)
		assert.Equal(t, models.ReactionFrowny, s.Details[0].ReactionType)
		assert.Equal(t, base, s.Details[0].Timestamp)
	})
}
