package application

const (
	UnknownDisplayName = "Unknown"

	msgSessionStarted       = "🚨 SESSION STARTED 🚨\n📢 Drop your links ❤️"
	msgSessionAlreadyActive = "A session is already active. Use /end to end the current session before starting a new one."
	msgSessionEnded         = "Session is ended. Use /start to begin a new session."
	msgNoSession            = "No active session. Use /start to begin one."
	msgNoLinks              = "No links recorded."
	msgNoDoubleLinks        = "No users shared more than one unique link."
	msgCheckStarted         = "Tracking started. Use /unsafelist to see the unsafe list."
	msgEveryoneDone         = "Everyone is done!"
	msgNoUnsafeToMute       = "No unsafe users found to mute."

	msgUsageMuteAll     = "Usage: /muteall <duration> (e.g., /muteall 7h or /muteall 7d)"
	msgUsageMute        = "Usage: /mute <user_id> <duration> (e.g., /mute 123456789 10h)"
	msgInvalidDuration  = "Invalid duration format. Use (e.g., 30m, 2h, 1d)."
	msgInvalidUserID    = "Invalid user ID format."
	msgBanNeedsID       = "Please provide a valid user ID to ban."
	msgUnbanNeedsID     = "Please provide a valid user ID to unban."
	msgUnmuteNeedsID    = "Please provide a valid user ID to unmute."
	msgExcludeNeedsID   = "Please provide a valid user ID to exclude."
	msgIncludeNeedsID   = "Please provide a valid user ID to include."
	msgReplyToMute      = "Please reply to a user's message to mute them."
	msgReplyToUnmute    = "Please reply to a user's message to unmute them."
	msgReplyToBan       = "Please reply to a user's message to ban them."
	msgReplyToUnban     = "Please reply to a user's message to unban them."
	msgLocked           = "The group is now locked. No one can send messages."
	msgOpenText         = "The group is now open for text messages only."
	msgOpenAll          = "The group is now fully open for messages and media."

	msgNoRulesConfigured = "No rules configured."
	msgNoSlotsConfigured = "No slot timings configured."
)
