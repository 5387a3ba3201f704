package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckpointObserveOnlyCountsPreCheckpointUsers(t *testing.T) {
	t.Parallel()

	c := NewCheckpoint()
	c.Observe(1)
	assert.Empty(t, c.Unsafe(NewUserSet()))

	c.Issue([]UserID{1, 2})
	c.Observe(3)
	c.Observe(1)

	assert.Equal(t, NewUserSet(2), c.Unsafe(NewUserSet()))
	assert.Equal(t, NewUserSet(), c.Unsafe(NewUserSet(2)))
}

func TestCheckpointResetReturnsToNoCheckpoint(t *testing.T) {
	t.Parallel()

	c := NewCheckpoint()
	c.Issue([]UserID{1})
	c.Reset()

	assert.Equal(t, NoCheckpoint, c.State())
	assert.False(t, c.IsUnsafe(1, NewUserSet()))
}
