package activities

import (
	"context"
	"errors"
	"strings"
	"time"

	"Backend-ClassPulse/src/database"
	"Backend-ClassPulse/src/models"
	"Backend-ClassPulse/src/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Caller-distinguishable outcomes of the activity lifecycle. Not-found and
// expired are expected results of normal operation, not server errors.
var (
	ErrInvalidInput         = errors.New("name, description and a positive duration are required")
	ErrActiveActivityExists = errors.New("an active activity already exists for this professor")
	ErrCodeCollision        = errors.New("could not generate a unique join code, please retry")
	ErrNoActiveActivity     = errors.New("no active activity found")
	ErrActivityNotFound     = errors.New("activity not found")
	ErrActivityExpired      = errors.New("activity has expired")
)

// maxCodeAttempts bounds the collision retry loop. The code space is 36^6,
// so a second collision in a row already means something is wrong.
const maxCodeAttempts = 5

const queryTimeout = 5 * time.Second

// activeFilter matches activities whose computed end time is still ahead of
// now: startTime + durationMinutes * 60000ms > now. Liveness is derived per
// query, never stored.
func activeFilter(ownerID primitive.ObjectID, now time.Time) bson.M {
	return bson.M{
		"ownerId": ownerID,
		"$expr": bson.M{
			"$gt": bson.A{
				bson.M{"$add": bson.A{"$startTime", bson.M{"$multiply": bson.A{"$durationMinutes", 60000}}}},
				now,
			},
		},
	}
}

// Create starts a new activity for ownerID. It refuses while the owner still
// has a live activity (there is no stop-early operation; the old one must
// run out), then inserts with a fresh join code, retrying on duplicate-key
// until maxCodeAttempts.
//
// The active check and the insert are not atomic: two concurrent creates
// from the same owner can both pass the check. Accepted weakness, the
// unique code index is the only hard constraint here.
func Create(ownerID primitive.ObjectID, name, description string, durationMinutes int) (*models.Activity, error) {
	name = strings.TrimSpace(name)
	description = strings.TrimSpace(description)
	if name == "" || description == "" || durationMinutes <= 0 {
		return nil, ErrInvalidInput
	}

	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	now := time.Now()

	// Step 1: reject if an activity is still live for this owner.
	err := database.ActivityCollection.FindOne(ctx, activeFilter(ownerID, now)).Err()
	if err == nil {
		return nil, ErrActiveActivityExists
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, err
	}

	// Step 2: insert with a candidate code; the unique index arbitrates
	// collisions.
	activity := &models.Activity{
		Name:            name,
		Description:     description,
		OwnerID:         ownerID,
		StartTime:       now,
		DurationMinutes: durationMinutes,
	}

	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		activity.ID = primitive.NewObjectID()
		activity.UniqueCode = utils.GenerateJoinCode()

		_, err = database.ActivityCollection.InsertOne(ctx, activity)
		if err == nil {
			return activity, nil
		}
		if !mongo.IsDuplicateKeyError(err) {
			return nil, err
		}
	}

	return nil, ErrCodeCollision
}

// GetActive returns the owner's live activity. When the check-then-act race
// left more than one, the most recently started wins.
func GetActive(ownerID primitive.ObjectID) (*models.Activity, error) {
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	opts := options.FindOne().SetSort(bson.D{{Key: "startTime", Value: -1}})

	var activity models.Activity
	err := database.ActivityCollection.FindOne(ctx, activeFilter(ownerID, time.Now()), opts).Decode(&activity)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNoActiveActivity
		}
		return nil, err
	}
	return &activity, nil
}

// ResolveByCode maps a student-entered join code to its activity. The code
// is normalized here regardless of what the transport already did. An
// existing but expired activity is reported distinctly from an unknown code.
func ResolveByCode(code string) (*models.Activity, error) {
	code = utils.NormalizeJoinCode(code)
	if code == "" {
		return nil, ErrActivityNotFound
	}

	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	var activity models.Activity
	err := database.ActivityCollection.FindOne(ctx, bson.M{"uniqueCode": code}).Decode(&activity)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrActivityNotFound
		}
		return nil, err
	}

	if !activity.IsActive(time.Now()) {
		return nil, ErrActivityExpired
	}
	return &activity, nil
}

// GetByID fetches an activity by its hex id. A malformed id behaves like a
// missing one.
func GetByID(id string) (*models.Activity, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrActivityNotFound
	}

	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	var activity models.Activity
	err = database.ActivityCollection.FindOne(ctx, bson.M{"_id": objID}).Decode(&activity)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrActivityNotFound
		}
		return nil, err
	}
	return &activity, nil
}
