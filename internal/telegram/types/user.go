package types

import "encoding/json"

// KindUser is the object kind name for User.
const KindUser = "User"

var userPlan = Plan{
	Object: KindUser,
	Fields: []Field{
		{Key: "id"},
		{Key: "is_bot"},
		{Key: "first_name"},
		{Key: "last_name"},
		{Key: "username"},
		{Key: "language_code"},
	},
}

var userDeclared = userPlan.declaredKeys()

// User represents a Telegram user or bot. Two users are equal iff their
// ids are equal.
type User struct {
	Object
	id           int64
	isBot        *bool
	firstName    *string
	lastName     *string
	username     *string
	languageCode *string
}

// ID returns the unique user identifier.
func (u *User) ID() int64 { return u.id }

// IsBot reports whether the user is a bot, when known.
func (u *User) IsBot() *bool { return optCopy(u.isBot) }

// FirstName returns the user's first name, if present.
func (u *User) FirstName() *string { return optCopy(u.firstName) }

// LastName returns the user's last name, if present.
func (u *User) LastName() *string { return optCopy(u.lastName) }

// Username returns the user's username, if present.
func (u *User) Username() *string { return optCopy(u.username) }

// LanguageCode returns the user's IETF language tag, if present.
func (u *User) LanguageCode() *string { return optCopy(u.languageCode) }

type userWire struct {
	ID           int64   `json:"id"`
	IsBot        *bool   `json:"is_bot,omitempty"`
	FirstName    *string `json:"first_name,omitempty"`
	LastName     *string `json:"last_name,omitempty"`
	Username     *string `json:"username,omitempty"`
	LanguageCode *string `json:"language_code,omitempty"`
}

// MarshalJSON re-encodes the user including retained unknown fields.
func (u *User) MarshalJSON() ([]byte, error) {
	return marshalWithUnknown(userWire{
		ID:           u.id,
		IsBot:        u.isBot,
		FirstName:    u.firstName,
		LastName:     u.lastName,
		Username:     u.username,
		LanguageCode: u.languageCode,
	}, u.unknown)
}

// UserBuilder assembles a User; Build freezes it.
type UserBuilder struct {
	user  *User
	err   error
	built bool
}

// NewUser starts building a User from its mandatory fields.
func NewUser(id int64) *UserBuilder {
	return &UserBuilder{user: &User{Object: newObject(KindUser), id: id}}
}

func (b *UserBuilder) set(fn func(*User)) *UserBuilder {
	if b.built {
		b.err = ErrFrozen
		return b
	}
	if b.err == nil {
		fn(b.user)
	}
	return b
}

// IsBot sets whether the user is a bot.
func (b *UserBuilder) IsBot(isBot bool) *UserBuilder {
	return b.set(func(u *User) { u.isBot = &isBot })
}

// FirstName sets the user's first name.
func (b *UserBuilder) FirstName(name string) *UserBuilder {
	return b.set(func(u *User) { u.firstName = &name })
}

// LastName sets the user's last name.
func (b *UserBuilder) LastName(name string) *UserBuilder {
	return b.set(func(u *User) { u.lastName = &name })
}

// Username sets the user's username.
func (b *UserBuilder) Username(username string) *UserBuilder {
	return b.set(func(u *User) { u.username = &username })
}

// LanguageCode sets the user's IETF language tag.
func (b *UserBuilder) LanguageCode(code string) *UserBuilder {
	return b.set(func(u *User) { u.languageCode = &code })
}

// Unknown retains raw payload keys the schema does not declare.
func (b *UserBuilder) Unknown(raw map[string]json.RawMessage) *UserBuilder {
	return b.set(func(u *User) { u.captureUnknown(raw, userDeclared) })
}

// Build validates mandatory fields, declares the identity tuple and
// freezes the user.
func (b *UserBuilder) Build() (*User, error) {
	if b.err != nil {
		return nil, b.err
	}
	if b.built {
		return b.user, nil
	}
	if b.user.id == 0 {
		return nil, schemaErr(KindUser, "id", "mandatory field is missing")
	}
	b.user.setIdentity(b.user.id)
	b.built = true
	return b.user, nil
}

// HydrateUser builds a User from its raw JSON form. A nil or null payload
// yields (nil, nil).
func HydrateUser(data json.RawMessage, ctx *Context) (*User, error) {
	f, err := Hydrate(data, ctx, userPlan)
	if err != nil || f == nil {
		return nil, err
	}

	id, err := f.OptInt64("id")
	if err != nil {
		return nil, err
	}

	b := NewUser(orZero(id))
	if v, err := f.OptBool("is_bot"); err != nil {
		return nil, err
	} else if v != nil {
		b.IsBot(*v)
	}
	if v, err := f.OptString("first_name"); err != nil {
		return nil, err
	} else if v != nil {
		b.FirstName(*v)
	}
	if v, err := f.OptString("last_name"); err != nil {
		return nil, err
	} else if v != nil {
		b.LastName(*v)
	}
	if v, err := f.OptString("username"); err != nil {
		return nil, err
	} else if v != nil {
		b.Username(*v)
	}
	if v, err := f.OptString("language_code"); err != nil {
		return nil, err
	} else if v != nil {
		b.LanguageCode(*v)
	}
	b.Unknown(f.Unknown())
	return b.Build()
}

// hydrateUserValue adapts HydrateUser to the nested-field contract.
func hydrateUserValue(data json.RawMessage, ctx *Context) (Value, error) {
	u, err := HydrateUser(data, ctx)
	if err != nil || u == nil {
		return nil, err
	}
	return u, nil
}

// usersFromValues narrows a hydrated collection back to its user type.
func usersFromValues(vs []Value) []*User {
	out := make([]*User, 0, len(vs))
	for _, v := range vs {
		if u, ok := v.(*User); ok {
			out = append(out, u)
		}
	}
	return out
}
