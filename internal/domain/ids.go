package domain

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

type UserID int64
type ChatID int64

// Identity is the account handle embedded in a post-status link.
type Identity string

// LinkToken is a raw link as it appeared in a message.
type LinkToken string

// ParseUserID accepts an unsigned decimal id, mirroring what admins type after
// a moderation command.
func ParseUserID(raw string) (UserID, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || !isDigits(trimmed) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidUserID, raw)
	}

	value, err := strconv.ParseInt(trimmed, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidUserID, raw)
	}

	return UserID(value), nil
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}

type UserSet map[UserID]struct{}

func NewUserSet(ids ...UserID) UserSet {
	set := make(UserSet, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

func (s UserSet) Has(id UserID) bool {
	_, ok := s[id]
	return ok
}

func (s UserSet) Add(id UserID) {
	s[id] = struct{}{}
}

func (s UserSet) Remove(id UserID) {
	delete(s, id)
}

// Sorted returns the members in ascending order.
func (s UserSet) Sorted() []UserID {
	ids := make([]UserID, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func (s UserSet) Clone() UserSet {
	clone := make(UserSet, len(s))
	for id := range s {
		clone[id] = struct{}{}
	}
	return clone
}
