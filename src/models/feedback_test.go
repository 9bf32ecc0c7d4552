package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeReaction(t *testing.T) {
	assert.Equal(t, ReactionSmiley, NormalizeReaction("smiley"))
	assert.Equal(t, ReactionSmiley, NormalizeReaction("  SMILEY  "))
	assert.Equal(t, ReactionConfused, NormalizeReaction("Confused"))
	assert.Equal(t, ReactionType("THUMBSUP"), NormalizeReaction("thumbsup"))
}

func TestReactionTypeIsValid(t *testing.T) {
	for _, rt := range ReactionTypes {
		assert.True(t, rt.IsValid(), "%s should be valid", rt)
	}

	assert.False(t, ReactionType("").IsValid())
	assert.False(t, ReactionType("THUMBSUP").IsValid())
	assert.False(t, ReactionType("smiley").IsValid(), "lowercase is not canonical")
}
