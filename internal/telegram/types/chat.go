package types

import "encoding/json"

// KindChat is the object kind name for Chat.
const KindChat = "Chat"

var chatPlan = Plan{
	Object: KindChat,
	Fields: []Field{
		{Key: "id"},
		{Key: "type"},
		{Key: "title"},
		{Key: "username"},
	},
}

var chatDeclared = chatPlan.declaredKeys()

// Chat represents a Telegram chat. Two chats are equal iff their ids are
// equal.
type Chat struct {
	Object
	id       int64
	chatType string
	title    *string
	username *string
}

// ID returns the unique chat identifier.
func (c *Chat) ID() int64 { return c.id }

// Type returns the chat type, e.g. "private", "group" or "channel".
func (c *Chat) Type() string { return c.chatType }

// Title returns the chat title, or nil for private chats.
func (c *Chat) Title() *string { return optCopy(c.title) }

// Username returns the public username, if the chat has one.
func (c *Chat) Username() *string { return optCopy(c.username) }

type chatWire struct {
	ID       int64   `json:"id"`
	Type     string  `json:"type"`
	Title    *string `json:"title,omitempty"`
	Username *string `json:"username,omitempty"`
}

// MarshalJSON re-encodes the chat including retained unknown fields.
func (c *Chat) MarshalJSON() ([]byte, error) {
	return marshalWithUnknown(chatWire{
		ID:       c.id,
		Type:     c.chatType,
		Title:    c.title,
		Username: c.username,
	}, c.unknown)
}

// ChatBuilder assembles a Chat; Build freezes it.
type ChatBuilder struct {
	chat  *Chat
	err   error
	built bool
}

// NewChat starts building a Chat from its mandatory fields.
func NewChat(id int64, chatType string) *ChatBuilder {
	return &ChatBuilder{chat: &Chat{Object: newObject(KindChat), id: id, chatType: chatType}}
}

func (b *ChatBuilder) set(fn func(*Chat)) *ChatBuilder {
	if b.built {
		b.err = ErrFrozen
		return b
	}
	if b.err == nil {
		fn(b.chat)
	}
	return b
}

// Title sets the chat title.
func (b *ChatBuilder) Title(title string) *ChatBuilder {
	return b.set(func(c *Chat) { c.title = &title })
}

// Username sets the public username.
func (b *ChatBuilder) Username(username string) *ChatBuilder {
	return b.set(func(c *Chat) { c.username = &username })
}

// Unknown retains raw payload keys the schema does not declare.
func (b *ChatBuilder) Unknown(raw map[string]json.RawMessage) *ChatBuilder {
	return b.set(func(c *Chat) { c.captureUnknown(raw, chatDeclared) })
}

// Build validates mandatory fields, declares the identity tuple and
// freezes the chat. Build is idempotent; setters called afterwards fail
// with ErrFrozen.
func (b *ChatBuilder) Build() (*Chat, error) {
	if b.err != nil {
		return nil, b.err
	}
	if b.built {
		return b.chat, nil
	}
	if b.chat.id == 0 {
		return nil, schemaErr(KindChat, "id", "mandatory field is missing")
	}
	if b.chat.chatType == "" {
		return nil, schemaErr(KindChat, "type", "mandatory field is missing")
	}
	b.chat.setIdentity(b.chat.id)
	b.built = true
	return b.chat, nil
}

// HydrateChat builds a Chat from its raw JSON form. A nil or null payload
// yields (nil, nil).
func HydrateChat(data json.RawMessage, ctx *Context) (*Chat, error) {
	f, err := Hydrate(data, ctx, chatPlan)
	if err != nil || f == nil {
		return nil, err
	}

	id, err := f.OptInt64("id")
	if err != nil {
		return nil, err
	}
	chatType, err := f.OptString("type")
	if err != nil {
		return nil, err
	}

	b := NewChat(orZero(id), orZero(chatType))
	if v, err := f.OptString("title"); err != nil {
		return nil, err
	} else if v != nil {
		b.Title(*v)
	}
	if v, err := f.OptString("username"); err != nil {
		return nil, err
	} else if v != nil {
		b.Username(*v)
	}
	b.Unknown(f.Unknown())
	return b.Build()
}

// hydrateChatValue adapts HydrateChat to the nested-field contract.
func hydrateChatValue(data json.RawMessage, ctx *Context) (Value, error) {
	c, err := HydrateChat(data, ctx)
	if err != nil || c == nil {
		return nil, err
	}
	return c, nil
}

// chatsFromValues narrows a hydrated collection back to its chat type.
func chatsFromValues(vs []Value) []*Chat {
	out := make([]*Chat, 0, len(vs))
	for _, v := range vs {
		if c, ok := v.(*Chat); ok {
			out = append(out, c)
		}
	}
	return out
}
