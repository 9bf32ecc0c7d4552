package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ReactionType is the fixed emoji-category vocabulary. Stored and
// transmitted as uppercase strings.
type ReactionType string

const (
	ReactionSmiley    ReactionType = "SMILEY"
	ReactionFrowny    ReactionType = "FROWNY"
	ReactionSurprised ReactionType = "SURPRISED"
	ReactionConfused  ReactionType = "CONFUSED"
)

// ReactionTypes lists every valid category, in the order charts display them.
var ReactionTypes = []ReactionType{ReactionSmiley, ReactionFrowny, ReactionSurprised, ReactionConfused}

// NormalizeReaction folds caller input (any case, stray whitespace) into the
// canonical uppercase form. Validation happens separately via IsValid.
func NormalizeReaction(s string) ReactionType {
	return ReactionType(strings.ToUpper(strings.TrimSpace(s)))
}

// IsValid reports whether r is one of the four known categories.
func (r ReactionType) IsValid() bool {
	switch r {
	case ReactionSmiley, ReactionFrowny, ReactionSurprised, ReactionConfused:
		return true
	}
	return false
}

// Feedback is one anonymous reaction tied to an activity. There is no
// participant identity on purpose, which also means no dedup key: a retrying
// client may insert the same reaction twice and that is accepted.
type Feedback struct {
	ID           primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	ActivityID   primitive.ObjectID `json:"activityId" bson:"activityId"`
	ReactionType ReactionType       `json:"reactionType" bson:"reactionType" example:"SMILEY"`
	Timestamp    time.Time          `json:"timestamp" bson:"timestamp"`
	IsAnonymous  bool               `json:"isAnonymous" bson:"isAnonymous"`
}

// FeedbackDetail is the per-row projection the owner's feedback view returns.
type FeedbackDetail struct {
	ReactionType ReactionType `json:"reactionType" bson:"reactionType"`
	Timestamp    time.Time    `json:"timestamp" bson:"timestamp"`
}

// FeedbackSummary is the aggregate the presentation layer polls. Counts are
// zero-filled for all four categories so chart keys never appear mid-session.
type FeedbackSummary struct {
	Counts  map[ReactionType]int `json:"counts"`
	Details []FeedbackDetail     `json:"details"`
}
