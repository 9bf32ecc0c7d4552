package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestActivityWindow(t *testing.T) {
	t0 := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	t.Run("ActiveInsideWindow", func(t *testing.T) {
		a := Activity{StartTime: t0, DurationMinutes: 30}

		assert.True(t, a.IsActive(t0))
		assert.True(t, a.IsActive(t0.Add(5*time.Minute)))
		assert.True(t, a.IsActive(t0.Add(29*time.Minute+59*time.Second)))
	})

	t.Run("WindowIsHalfOpen", func(t *testing.T) {
		a := Activity{StartTime: t0, DurationMinutes: 30}

		// now == endTime is already expired
		assert.False(t, a.IsActive(t0.Add(30*time.Minute)))
		assert.False(t, a.IsActive(t0.Add(31*time.Minute)))
	})

	t.Run("BoundaryDurations", func(t *testing.T) {
		short := Activity{StartTime: t0, DurationMinutes: 1}
		assert.True(t, short.IsActive(t0.Add(59*time.Second)))
		assert.False(t, short.IsActive(t0.Add(60*time.Second)))

		long := Activity{StartTime: t0, DurationMinutes: 180}
		assert.True(t, long.IsActive(t0.Add(179*time.Minute)))
		assert.False(t, long.IsActive(t0.Add(180*time.Minute)))
	})

	t.Run("EndTimeDerived", func(t *testing.T) {
		a := Activity{StartTime: t0, DurationMinutes: 45}
		assert.Equal(t, t0.Add(45*time.Minute), a.EndTime())
	})

	t.Run("ExpiryIsMonotonic", func(t *testing.T) {
		a := Activity{StartTime: t0, DurationMinutes: 30}

		expired := false
		for now := t0; now.Before(t0.Add(60 * time.Minute)); now = now.Add(time.Minute) {
			if !a.IsActive(now) {
				expired = true
			} else {
				assert.False(t, expired, "activity reactivated at %v", now)
			}
		}
		assert.True(t, expired)
	})
}

func TestActivitySummary(t *testing.T) {
	id := primitive.NewObjectID()
	owner := primitive.NewObjectID()
	t0 := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	a := Activity{
		ID:              id,
		Name:            "Lecture 1",
		Description:     "Intro",
		OwnerID:         owner,
		UniqueCode:      "X7K2P9",
		StartTime:       t0,
		DurationMinutes: 30,
	}

	s := a.Summary()
	assert.Equal(t, id, s.ID)
	assert.Equal(t, "X7K2P9", s.UniqueCode)
	assert.Equal(t, t0, s.StartTime)
	assert.Equal(t, 30, s.DurationMinutes)
	assert.Equal(t, "Lecture 1", s.Name)
}
