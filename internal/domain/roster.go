package domain

import "time"

type Roster struct {
	Excluded  []UserID
	UpdatedAt time.Time
}

// Normalize sorts and de-duplicates the excluded ids.
func (r *Roster) Normalize() {
	if r == nil {
		return
	}
	r.Excluded = NewUserSet(r.Excluded...).Sorted()
}
