package domain

// Event is anything the inbound event source delivers.
type Event interface {
	event()
}

type MediaKind string

const (
	MediaPhoto    MediaKind = "photo"
	MediaVideo    MediaKind = "video"
	MediaDocument MediaKind = "document"
)

// UserRef identifies the author of a replied-to message. Mention is an HTML
// fragment the gateway can send as-is.
type UserRef struct {
	ID      UserID
	Mention string
}

type TextMessage struct {
	UserID UserID
	ChatID ChatID
	Text   string
}

type MediaMessage struct {
	UserID UserID
	ChatID ChatID
	Kind   MediaKind
}

type Command struct {
	Name     string
	Args     []string
	IssuerID UserID
	ChatID   ChatID
	ReplyTo  *UserRef
}

func (TextMessage) event()  {}
func (MediaMessage) event() {}
func (Command) event()      {}
