package types

import (
	"encoding/json"
	"time"
)

// KindMessage is the object kind name for Message.
const KindMessage = "Message"

var messagePlan = Plan{
	Object: KindMessage,
	Fields: []Field{
		{Key: "message_id"},
		{Key: "date", Kind: FieldTime},
		{Key: "chat", Kind: FieldObject, Nested: hydrateChatValue},
		{Key: "from", Kind: FieldObject, Nested: hydrateUserValue},
		{Key: "text"},
	},
}

var messageDeclared = messagePlan.declaredKeys()

// Message represents a Telegram message, reduced to the fields the
// giveaway flow consumes. Two messages are equal iff their message ids and
// chats are equal.
type Message struct {
	Object
	messageID int64
	date      *time.Time
	chat      *Chat
	from      *User
	text      *string
}

// MessageID returns the message identifier, unique within its chat.
func (m *Message) MessageID() int64 { return m.messageID }

// Date returns the send date, normalized against the hydration timezone.
func (m *Message) Date() *time.Time { return optCopy(m.date) }

// Chat returns the chat the message belongs to, if present.
func (m *Message) Chat() *Chat { return m.chat }

// From returns the sender, if present.
func (m *Message) From() *User { return m.from }

// Text returns the message text, if present.
func (m *Message) Text() *string { return optCopy(m.text) }

type messageWire struct {
	MessageID int64   `json:"message_id"`
	Date      *int64  `json:"date,omitempty"`
	Chat      *Chat   `json:"chat,omitempty"`
	From      *User   `json:"from,omitempty"`
	Text      *string `json:"text,omitempty"`
}

// MarshalJSON re-encodes the message including retained unknown fields.
// Timestamps go back out as epoch seconds.
func (m *Message) MarshalJSON() ([]byte, error) {
	var date *int64
	if m.date != nil {
		d := m.date.Unix()
		date = &d
	}
	return marshalWithUnknown(messageWire{
		MessageID: m.messageID,
		Date:      date,
		Chat:      m.chat,
		From:      m.from,
		Text:      m.text,
	}, m.unknown)
}

// MessageBuilder assembles a Message; Build freezes it.
type MessageBuilder struct {
	msg   *Message
	err   error
	built bool
}

// NewMessage starts building a Message from its mandatory fields.
func NewMessage(messageID int64) *MessageBuilder {
	return &MessageBuilder{msg: &Message{Object: newObject(KindMessage), messageID: messageID}}
}

func (b *MessageBuilder) set(fn func(*Message)) *MessageBuilder {
	if b.built {
		b.err = ErrFrozen
		return b
	}
	if b.err == nil {
		fn(b.msg)
	}
	return b
}

// Date sets the send date.
func (b *MessageBuilder) Date(date time.Time) *MessageBuilder {
	return b.set(func(m *Message) { m.date = &date })
}

// Chat sets the chat the message belongs to.
func (b *MessageBuilder) Chat(chat *Chat) *MessageBuilder {
	return b.set(func(m *Message) { m.chat = chat })
}

// From sets the sender.
func (b *MessageBuilder) From(from *User) *MessageBuilder {
	return b.set(func(m *Message) { m.from = from })
}

// Text sets the message text.
func (b *MessageBuilder) Text(text string) *MessageBuilder {
	return b.set(func(m *Message) { m.text = &text })
}

// Unknown retains raw payload keys the schema does not declare.
func (b *MessageBuilder) Unknown(raw map[string]json.RawMessage) *MessageBuilder {
	return b.set(func(m *Message) { m.captureUnknown(raw, messageDeclared) })
}

// Build validates mandatory fields, declares the identity tuple and
// freezes the message.
func (b *MessageBuilder) Build() (*Message, error) {
	if b.err != nil {
		return nil, b.err
	}
	if b.built {
		return b.msg, nil
	}
	if b.msg.messageID == 0 {
		return nil, schemaErr(KindMessage, "message_id", "mandatory field is missing")
	}
	var chatAttr any
	if b.msg.chat != nil {
		chatAttr = b.msg.chat
	}
	b.msg.setIdentity(b.msg.messageID, chatAttr)
	b.built = true
	return b.msg, nil
}

// HydrateMessage builds a Message from its raw JSON form. A nil or null
// payload yields (nil, nil).
func HydrateMessage(data json.RawMessage, ctx *Context) (*Message, error) {
	f, err := Hydrate(data, ctx, messagePlan)
	if err != nil || f == nil {
		return nil, err
	}

	id, err := f.OptInt64("message_id")
	if err != nil {
		return nil, err
	}

	b := NewMessage(orZero(id))
	if ts := f.Time("date"); ts != nil {
		b.Date(*ts)
	}
	if c, ok := f.Object("chat").(*Chat); ok {
		b.Chat(c)
	}
	if u, ok := f.Object("from").(*User); ok {
		b.From(u)
	}
	if v, err := f.OptString("text"); err != nil {
		return nil, err
	} else if v != nil {
		b.Text(*v)
	}
	b.Unknown(f.Unknown())
	return b.Build()
}

// hydrateMessageValue adapts HydrateMessage to the nested-field contract.
func hydrateMessageValue(data json.RawMessage, ctx *Context) (Value, error) {
	m, err := HydrateMessage(data, ctx)
	if err != nil || m == nil {
		return nil, err
	}
	return m, nil
}
