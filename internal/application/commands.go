package application

const (
	CommandStart       = "start"
	CommandEnd         = "end"
	CommandList        = "list"
	CommandTotal       = "total"
	CommandDoubleLinks = "doublelinks"
	CommandCheck       = "check"
	CommandUnsafeList  = "unsafelist"
	CommandMuteAll     = "muteall"
	CommandBan         = "ban"
	CommandUnban       = "unban"
	CommandMute        = "mute"
	CommandUnmute      = "unmute"
	CommandReplyMute   = "replymute"
	CommandReplyUnmute = "replyunmute"
	CommandReplyBan    = "replyban"
	CommandReplyUnban  = "replyunban"
	CommandLock        = "lock"
	CommandOpen        = "open"
	CommandOpenAll     = "openall"
	CommandRules       = "rules"
	CommandSlot        = "slot"
	CommandExclude     = "exclude"
	CommandInclude     = "include"
	CommandHelp        = "help"
)

// commandDescriptions feeds /help, in display order.
var commandDescriptions = []struct {
	Name string
	Help string
}{
	{CommandStart, "start a link-drop session"},
	{CommandEnd, "end the current session"},
	{CommandList, "list submitted links"},
	{CommandTotal, "count unique links"},
	{CommandDoubleLinks, "users with more than one link"},
	{CommandCheck, "start compliance tracking"},
	{CommandUnsafeList, "users who did not follow up"},
	{CommandMuteAll, "<duration> mute every unsafe user"},
	{CommandMute, "<user_id> <duration> mute a user"},
	{CommandUnmute, "<user_id> unmute a user"},
	{CommandBan, "<user_id> ban a user"},
	{CommandUnban, "<user_id> unban a user"},
	{CommandReplyMute, "mute the replied-to user"},
	{CommandReplyUnmute, "unmute the replied-to user"},
	{CommandReplyBan, "ban the replied-to user"},
	{CommandReplyUnban, "unban the replied-to user"},
	{CommandLock, "nobody can send messages"},
	{CommandOpen, "text messages only"},
	{CommandOpenAll, "all messages and media"},
	{CommandExclude, "<user_id> omit a user from reports and enforcement"},
	{CommandInclude, "<user_id> undo exclude"},
	{CommandRules, "show the group rules"},
	{CommandSlot, "show slot timings"},
}
