package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Activity is one timed feedback session owned by a professor. It carries no
// stored status: whether it is live is always derived from startTime and
// durationMinutes against the current clock, so state can never drift.
type Activity struct {
	ID              primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name            string             `json:"name" bson:"name" example:"Lecture 1"`
	Description     string             `json:"description" bson:"description" example:"Intro to distributed systems"`
	OwnerID         primitive.ObjectID `json:"ownerId" bson:"ownerId"`
	UniqueCode      string             `json:"uniqueCode" bson:"uniqueCode" example:"X7K2P9"`
	StartTime       time.Time          `json:"startTime" bson:"startTime"`
	DurationMinutes int                `json:"durationMinutes" bson:"durationMinutes" example:"30"`
}

// EndTime is startTime + durationMinutes. Never stored.
func (a *Activity) EndTime() time.Time {
	return a.StartTime.Add(time.Duration(a.DurationMinutes) * time.Minute)
}

// IsActive reports whether now falls inside the half-open window
// [startTime, endTime). Expiry is lazy: there is no background transition,
// every reader evaluates this on its own clock read.
func (a *Activity) IsActive(now time.Time) bool {
	return now.Before(a.EndTime())
}

// ActivitySummary is what professor-facing endpoints return about an activity.
type ActivitySummary struct {
	ID              primitive.ObjectID `json:"id"`
	UniqueCode      string             `json:"uniqueCode"`
	StartTime       time.Time          `json:"startTime"`
	DurationMinutes int                `json:"durationMinutes"`
	Name            string             `json:"name"`
}

// Summary projects the fields exposed over HTTP.
func (a *Activity) Summary() ActivitySummary {
	return ActivitySummary{
		ID:              a.ID,
		UniqueCode:      a.UniqueCode,
		StartTime:       a.StartTime,
		DurationMinutes: a.DurationMinutes,
		Name:            a.Name,
	}
}

// JoinResult is returned to a student who resolved a join code.
type JoinResult struct {
	ActivityID primitive.ObjectID `json:"activityId"`
	Name       string             `json:"name"`
}
