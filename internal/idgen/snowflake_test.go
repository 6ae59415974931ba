package idgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnowflake(t *testing.T) {
	g, err := NewSnowflake(DefaultEpoch, 1)
	require.NoError(t, err)

	seen := make(map[int64]bool)
	prev := int64(0)
	for i := 0; i < 1000; i++ {
		id := g.NextID()
		assert.Greater(t, id, prev)
		assert.False(t, seen[id])
		seen[id] = true
		prev = id
	}

	_, err = NewSnowflake("not-a-date", 1)
	assert.Error(t, err)

	_, err = NewSnowflake(DefaultEpoch, 5000)
	assert.Error(t, err)
}
