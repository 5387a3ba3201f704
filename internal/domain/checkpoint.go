package domain

type CheckpointState int

const (
	NoCheckpoint CheckpointState = iota
	Checkpointed
)

// Checkpoint tracks who submitted before the marker and who showed activity
// after it.
type Checkpoint struct {
	state CheckpointState
	pre   UserSet
	post  UserSet
}

func NewCheckpoint() *Checkpoint {
	c := &Checkpoint{}
	c.Reset()
	return c
}

func (c *Checkpoint) Reset() {
	c.state = NoCheckpoint
	c.pre = NewUserSet()
	c.post = NewUserSet()
}

func (c *Checkpoint) State() CheckpointState {
	return c.state
}

// Issue re-bases the checkpoint: prior post-checkpoint progress is discarded.
func (c *Checkpoint) Issue(users []UserID) {
	c.state = Checkpointed
	c.pre = NewUserSet(users...)
	c.post = NewUserSet()
}

func (c *Checkpoint) Observe(userID UserID) {
	if c.state != Checkpointed {
		return
	}
	if c.pre.Has(userID) {
		c.post.Add(userID)
	}
}

func (c *Checkpoint) IsUnsafe(userID UserID, excluded UserSet) bool {
	if c.state != Checkpointed {
		return false
	}
	return c.pre.Has(userID) && !c.post.Has(userID) && !excluded.Has(userID)
}

func (c *Checkpoint) Unsafe(excluded UserSet) UserSet {
	unsafe := NewUserSet()
	if c.state != Checkpointed {
		return unsafe
	}
	for userID := range c.pre {
		if c.IsUnsafe(userID, excluded) {
			unsafe.Add(userID)
		}
	}
	return unsafe
}
