package domain

import "time"

// Permissions is the set of member capabilities a chat grants.
type Permissions struct {
	SendMessages    bool
	SendMedia       bool
	SendPolls       bool
	SendOther       bool
	WebPagePreviews bool
}

func NoPermissions() Permissions {
	return Permissions{}
}

func TextOnlyPermissions() Permissions {
	return Permissions{SendMessages: true}
}

func FullPermissions() Permissions {
	return Permissions{
		SendMessages:    true,
		SendMedia:       true,
		SendPolls:       true,
		SendOther:       true,
		WebPagePreviews: true,
	}
}

// Restriction is an active mute tracked by the scheduler. A zero ExpiresAt
// marks a permanent restriction with no scheduled release.
type Restriction struct {
	ID        string
	UserID    UserID
	ChatID    ChatID
	AppliedAt time.Time
	ExpiresAt time.Time
}

func (r Restriction) Permanent() bool {
	return r.ExpiresAt.IsZero()
}
