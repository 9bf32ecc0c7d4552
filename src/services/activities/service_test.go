package activities

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// The active-activity filter computes liveness inside the query:
// startTime + durationMinutes*60000 > now. The shape matters because no
// status field exists to index on.
func TestActiveFilter(t *testing.T) {
	owner := primitive.NewObjectID()
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	filter := activeFilter(owner, now)

	assert.Equal(t, owner, filter["ownerId"])

	expr, ok := filter["$expr"].(bson.M)
	require.True(t, ok)

	gt, ok := expr["$gt"].(bson.A)
	require.True(t, ok)
	require.Len(t, gt, 2)

	add, ok := gt[0].(bson.M)["$add"].(bson.A)
	require.True(t, ok)
	assert.Equal(t, "$startTime", add[0])

	mul, ok := add[1].(bson.M)["$multiply"].(bson.A)
	require.True(t, ok)
	assert.Equal(t, "$durationMinutes", mul[0])
	assert.Equal(t, 60000, mul[1])

	assert.Equal(t, now, gt[1])
}
