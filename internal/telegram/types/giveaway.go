package types

import (
	"encoding/json"
	"time"
)

// Object kind names for the giveaway family.
const (
	KindGiveaway          = "Giveaway"
	KindGiveawayCreated   = "GiveawayCreated"
	KindGiveawayWinners   = "GiveawayWinners"
	KindGiveawayCompleted = "GiveawayCompleted"
)

var giveawayPlan = Plan{
	Object: KindGiveaway,
	Fields: []Field{
		{Key: "chats", Kind: FieldObjectList, Nested: hydrateChatValue},
		{Key: "winners_selection_date", Kind: FieldTime},
		{Key: "winner_count"},
		{Key: "only_new_members"},
		{Key: "has_public_winners"},
		{Key: "prize_description"},
		{Key: "country_codes"},
		{Key: "premium_subscription_month_count"},
	},
}

var giveawayDeclared = giveawayPlan.declaredKeys()

// Giveaway represents a message about a scheduled giveaway. Two giveaways
// are equal iff their chats, winners selection dates and winner counts are
// equal.
type Giveaway struct {
	Object
	chats                         []*Chat
	winnersSelectionDate          time.Time
	winnerCount                   int
	onlyNewMembers                *bool
	hasPublicWinners              *bool
	prizeDescription              *string
	countryCodes                  []string
	premiumSubscriptionMonthCount *int
}

// Chats returns the chats the user must join to participate.
func (g *Giveaway) Chats() []*Chat { return CoerceList(g.chats) }

// WinnersSelectionDate returns when the winners will be selected.
func (g *Giveaway) WinnersSelectionDate() time.Time { return g.winnersSelectionDate }

// WinnerCount returns how many users will be selected as winners.
func (g *Giveaway) WinnerCount() int { return g.winnerCount }

// OnlyNewMembers reports whether only users joining after the start are
// eligible, when known.
func (g *Giveaway) OnlyNewMembers() *bool { return optCopy(g.onlyNewMembers) }

// HasPublicWinners reports whether the winners list will be public, when
// known.
func (g *Giveaway) HasPublicWinners() *bool { return optCopy(g.hasPublicWinners) }

// PrizeDescription returns the description of an additional prize, if any.
func (g *Giveaway) PrizeDescription() *string { return optCopy(g.prizeDescription) }

// CountryCodes returns the ISO 3166-1 alpha-2 codes restricting
// eligibility; empty means no restriction.
func (g *Giveaway) CountryCodes() []string { return CoerceList(g.countryCodes) }

// PremiumSubscriptionMonthCount returns how long a won Premium
// subscription stays active, if the prize is one.
func (g *Giveaway) PremiumSubscriptionMonthCount() *int {
	return optCopy(g.premiumSubscriptionMonthCount)
}

type giveawayWire struct {
	Chats                         []*Chat  `json:"chats"`
	WinnersSelectionDate          int64    `json:"winners_selection_date"`
	WinnerCount                   int      `json:"winner_count"`
	OnlyNewMembers                *bool    `json:"only_new_members,omitempty"`
	HasPublicWinners              *bool    `json:"has_public_winners,omitempty"`
	PrizeDescription              *string  `json:"prize_description,omitempty"`
	CountryCodes                  []string `json:"country_codes,omitempty"`
	PremiumSubscriptionMonthCount *int     `json:"premium_subscription_month_count,omitempty"`
}

// MarshalJSON re-encodes the giveaway including retained unknown fields.
func (g *Giveaway) MarshalJSON() ([]byte, error) {
	return marshalWithUnknown(giveawayWire{
		Chats:                         g.chats,
		WinnersSelectionDate:          g.winnersSelectionDate.Unix(),
		WinnerCount:                   g.winnerCount,
		OnlyNewMembers:                g.onlyNewMembers,
		HasPublicWinners:              g.hasPublicWinners,
		PrizeDescription:              g.prizeDescription,
		CountryCodes:                  g.countryCodes,
		PremiumSubscriptionMonthCount: g.premiumSubscriptionMonthCount,
	}, g.unknown)
}

// GiveawayBuilder assembles a Giveaway; Build freezes it.
type GiveawayBuilder struct {
	g     *Giveaway
	err   error
	built bool
}

// NewGiveaway starts building a Giveaway.
func NewGiveaway() *GiveawayBuilder {
	return &GiveawayBuilder{g: &Giveaway{Object: newObject(KindGiveaway)}}
}

func (b *GiveawayBuilder) set(fn func(*Giveaway)) *GiveawayBuilder {
	if b.built {
		b.err = ErrFrozen
		return b
	}
	if b.err == nil {
		fn(b.g)
	}
	return b
}

// Chats sets the chats the user must join to participate.
func (b *GiveawayBuilder) Chats(chats []*Chat) *GiveawayBuilder {
	return b.set(func(g *Giveaway) { g.chats = CoerceList(chats) })
}

// WinnersSelectionDate sets when the winners will be selected.
func (b *GiveawayBuilder) WinnersSelectionDate(t time.Time) *GiveawayBuilder {
	return b.set(func(g *Giveaway) { g.winnersSelectionDate = t })
}

// WinnerCount sets how many users will be selected as winners.
func (b *GiveawayBuilder) WinnerCount(n int) *GiveawayBuilder {
	return b.set(func(g *Giveaway) { g.winnerCount = n })
}

// OnlyNewMembers sets whether only users joining after the start are
// eligible.
func (b *GiveawayBuilder) OnlyNewMembers(v bool) *GiveawayBuilder {
	return b.set(func(g *Giveaway) { g.onlyNewMembers = &v })
}

// HasPublicWinners sets whether the winners list will be public.
func (b *GiveawayBuilder) HasPublicWinners(v bool) *GiveawayBuilder {
	return b.set(func(g *Giveaway) { g.hasPublicWinners = &v })
}

// PrizeDescription sets the description of an additional prize.
func (b *GiveawayBuilder) PrizeDescription(s string) *GiveawayBuilder {
	return b.set(func(g *Giveaway) { g.prizeDescription = &s })
}

// CountryCodes sets the eligibility country restriction.
func (b *GiveawayBuilder) CountryCodes(codes []string) *GiveawayBuilder {
	return b.set(func(g *Giveaway) { g.countryCodes = CoerceList(codes) })
}

// PremiumSubscriptionMonthCount sets the Premium prize duration.
func (b *GiveawayBuilder) PremiumSubscriptionMonthCount(n int) *GiveawayBuilder {
	return b.set(func(g *Giveaway) { g.premiumSubscriptionMonthCount = &n })
}

// Unknown retains raw payload keys the schema does not declare.
func (b *GiveawayBuilder) Unknown(raw map[string]json.RawMessage) *GiveawayBuilder {
	return b.set(func(g *Giveaway) { g.captureUnknown(raw, giveawayDeclared) })
}

// Build validates mandatory fields, declares the identity tuple and
// freezes the giveaway.
func (b *GiveawayBuilder) Build() (*Giveaway, error) {
	if b.err != nil {
		return nil, b.err
	}
	if b.built {
		return b.g, nil
	}
	g := b.g
	if g.winnersSelectionDate.IsZero() {
		return nil, schemaErr(KindGiveaway, "winners_selection_date", "mandatory field is missing")
	}
	if g.winnerCount < 1 {
		return nil, schemaErr(KindGiveaway, "winner_count", "must be a positive integer")
	}
	g.chats = CoerceList(g.chats)
	g.countryCodes = CoerceList(g.countryCodes)
	g.setIdentity(identityList(g.chats), g.winnersSelectionDate, g.winnerCount)
	b.built = true
	return g, nil
}

// HydrateGiveaway builds a Giveaway from its raw JSON form. A nil or null
// payload yields (nil, nil).
func HydrateGiveaway(data json.RawMessage, ctx *Context) (*Giveaway, error) {
	f, err := Hydrate(data, ctx, giveawayPlan)
	if err != nil || f == nil {
		return nil, err
	}

	b := NewGiveaway()
	b.Chats(chatsFromValues(f.List("chats")))
	if ts := f.Time("winners_selection_date"); ts != nil {
		b.WinnersSelectionDate(*ts)
	}
	if v, err := f.OptInt("winner_count"); err != nil {
		return nil, err
	} else if v != nil {
		b.WinnerCount(*v)
	}
	if v, err := f.OptBool("only_new_members"); err != nil {
		return nil, err
	} else if v != nil {
		b.OnlyNewMembers(*v)
	}
	if v, err := f.OptBool("has_public_winners"); err != nil {
		return nil, err
	} else if v != nil {
		b.HasPublicWinners(*v)
	}
	if v, err := f.OptString("prize_description"); err != nil {
		return nil, err
	} else if v != nil {
		b.PrizeDescription(*v)
	}
	codes, err := f.StringList("country_codes")
	if err != nil {
		return nil, err
	}
	b.CountryCodes(codes)
	if v, err := f.OptInt("premium_subscription_month_count"); err != nil {
		return nil, err
	} else if v != nil {
		b.PremiumSubscriptionMonthCount(*v)
	}
	b.Unknown(f.Unknown())
	return b.Build()
}

var giveawayCreatedPlan = Plan{Object: KindGiveawayCreated}

var giveawayCreatedDeclared = giveawayCreatedPlan.declaredKeys()

// GiveawayCreated represents a service message about the creation of a
// scheduled giveaway. It currently holds no information, so instances
// compare by reference.
type GiveawayCreated struct {
	Object
}

// MarshalJSON re-encodes the service message including retained unknown
// fields.
func (g *GiveawayCreated) MarshalJSON() ([]byte, error) {
	return marshalWithUnknown(struct{}{}, g.unknown)
}

// GiveawayCreatedBuilder assembles a GiveawayCreated; Build freezes it.
type GiveawayCreatedBuilder struct {
	g     *GiveawayCreated
	err   error
	built bool
}

// NewGiveawayCreated starts building a GiveawayCreated.
func NewGiveawayCreated() *GiveawayCreatedBuilder {
	return &GiveawayCreatedBuilder{g: &GiveawayCreated{Object: newObject(KindGiveawayCreated)}}
}

// Unknown retains raw payload keys the schema does not declare.
func (b *GiveawayCreatedBuilder) Unknown(raw map[string]json.RawMessage) *GiveawayCreatedBuilder {
	if b.built {
		b.err = ErrFrozen
		return b
	}
	if b.err == nil {
		b.g.captureUnknown(raw, giveawayCreatedDeclared)
	}
	return b
}

// Build freezes the service message. No identity tuple is declared, so
// equality falls back to reference identity.
func (b *GiveawayCreatedBuilder) Build() (*GiveawayCreated, error) {
	if b.err != nil {
		return nil, b.err
	}
	b.built = true
	return b.g, nil
}

// HydrateGiveawayCreated builds a GiveawayCreated from its raw JSON form.
// A nil or null payload yields (nil, nil).
func HydrateGiveawayCreated(data json.RawMessage, ctx *Context) (*GiveawayCreated, error) {
	f, err := Hydrate(data, ctx, giveawayCreatedPlan)
	if err != nil || f == nil {
		return nil, err
	}
	b := NewGiveawayCreated()
	b.Unknown(f.Unknown())
	return b.Build()
}

var giveawayWinnersPlan = Plan{
	Object: KindGiveawayWinners,
	Fields: []Field{
		{Key: "chat", Kind: FieldObject, Nested: hydrateChatValue},
		{Key: "giveaway_message_id"},
		{Key: "winners_selection_date", Kind: FieldTime},
		{Key: "winner_count"},
		{Key: "winners", Kind: FieldObjectList, Nested: hydrateUserValue},
		{Key: "additional_chat_count"},
		{Key: "premium_subscription_month_count"},
		{Key: "unclaimed_prize_count"},
		{Key: "only_new_members"},
		{Key: "was_refunded"},
		{Key: "prize_description"},
	},
}

var giveawayWinnersDeclared = giveawayWinnersPlan.declaredKeys()

// GiveawayWinners represents a message about the completion of a giveaway
// with public winners. Two instances are equal iff their chats, giveaway
// message ids, winners selection dates, winner counts and winners are
// equal.
type GiveawayWinners struct {
	Object
	chat                          *Chat
	giveawayMessageID             int64
	winnersSelectionDate          time.Time
	winnerCount                   int
	winners                       []*User
	additionalChatCount           *int
	premiumSubscriptionMonthCount *int
	unclaimedPrizeCount           *int
	onlyNewMembers                *bool
	wasRefunded                   *bool
	prizeDescription              *string
}

// Chat returns the chat that created the giveaway.
func (w *GiveawayWinners) Chat() *Chat { return w.chat }

// GiveawayMessageID returns the identifier of the giveaway message.
func (w *GiveawayWinners) GiveawayMessageID() int64 { return w.giveawayMessageID }

// WinnersSelectionDate returns when the winners were selected.
func (w *GiveawayWinners) WinnersSelectionDate() time.Time { return w.winnersSelectionDate }

// WinnerCount returns the total number of winners.
func (w *GiveawayWinners) WinnerCount() int { return w.winnerCount }

// Winners returns the public winners, in announcement order.
func (w *GiveawayWinners) Winners() []*User { return CoerceList(w.winners) }

// AdditionalChatCount returns how many other chats had to be joined, when
// known.
func (w *GiveawayWinners) AdditionalChatCount() *int { return optCopy(w.additionalChatCount) }

// PremiumSubscriptionMonthCount returns the Premium prize duration, when
// known.
func (w *GiveawayWinners) PremiumSubscriptionMonthCount() *int {
	return optCopy(w.premiumSubscriptionMonthCount)
}

// UnclaimedPrizeCount returns the number of undistributed prizes, when
// known.
func (w *GiveawayWinners) UnclaimedPrizeCount() *int { return optCopy(w.unclaimedPrizeCount) }

// OnlyNewMembers reports whether only users joining after the start were
// eligible, when known.
func (w *GiveawayWinners) OnlyNewMembers() *bool { return optCopy(w.onlyNewMembers) }

// WasRefunded reports whether the giveaway was canceled and refunded, when
// known.
func (w *GiveawayWinners) WasRefunded() *bool { return optCopy(w.wasRefunded) }

// PrizeDescription returns the description of an additional prize, if any.
func (w *GiveawayWinners) PrizeDescription() *string { return optCopy(w.prizeDescription) }

type giveawayWinnersWire struct {
	Chat                          *Chat   `json:"chat"`
	GiveawayMessageID             int64   `json:"giveaway_message_id"`
	WinnersSelectionDate          int64   `json:"winners_selection_date"`
	WinnerCount                   int     `json:"winner_count"`
	Winners                       []*User `json:"winners"`
	AdditionalChatCount           *int    `json:"additional_chat_count,omitempty"`
	PremiumSubscriptionMonthCount *int    `json:"premium_subscription_month_count,omitempty"`
	UnclaimedPrizeCount           *int    `json:"unclaimed_prize_count,omitempty"`
	OnlyNewMembers                *bool   `json:"only_new_members,omitempty"`
	WasRefunded                   *bool   `json:"was_refunded,omitempty"`
	PrizeDescription              *string `json:"prize_description,omitempty"`
}

// MarshalJSON re-encodes the winners message including retained unknown
// fields.
func (w *GiveawayWinners) MarshalJSON() ([]byte, error) {
	return marshalWithUnknown(giveawayWinnersWire{
		Chat:                          w.chat,
		GiveawayMessageID:             w.giveawayMessageID,
		WinnersSelectionDate:          w.winnersSelectionDate.Unix(),
		WinnerCount:                   w.winnerCount,
		Winners:                       w.winners,
		AdditionalChatCount:           w.additionalChatCount,
		PremiumSubscriptionMonthCount: w.premiumSubscriptionMonthCount,
		UnclaimedPrizeCount:           w.unclaimedPrizeCount,
		OnlyNewMembers:                w.onlyNewMembers,
		WasRefunded:                   w.wasRefunded,
		PrizeDescription:              w.prizeDescription,
	}, w.unknown)
}

// GiveawayWinnersBuilder assembles a GiveawayWinners; Build freezes it.
type GiveawayWinnersBuilder struct {
	w     *GiveawayWinners
	err   error
	built bool
}

// NewGiveawayWinners starts building a GiveawayWinners.
func NewGiveawayWinners() *GiveawayWinnersBuilder {
	return &GiveawayWinnersBuilder{w: &GiveawayWinners{Object: newObject(KindGiveawayWinners)}}
}

func (b *GiveawayWinnersBuilder) set(fn func(*GiveawayWinners)) *GiveawayWinnersBuilder {
	if b.built {
		b.err = ErrFrozen
		return b
	}
	if b.err == nil {
		fn(b.w)
	}
	return b
}

// Chat sets the chat that created the giveaway.
func (b *GiveawayWinnersBuilder) Chat(chat *Chat) *GiveawayWinnersBuilder {
	return b.set(func(w *GiveawayWinners) { w.chat = chat })
}

// GiveawayMessageID sets the identifier of the giveaway message.
func (b *GiveawayWinnersBuilder) GiveawayMessageID(id int64) *GiveawayWinnersBuilder {
	return b.set(func(w *GiveawayWinners) { w.giveawayMessageID = id })
}

// WinnersSelectionDate sets when the winners were selected.
func (b *GiveawayWinnersBuilder) WinnersSelectionDate(t time.Time) *GiveawayWinnersBuilder {
	return b.set(func(w *GiveawayWinners) { w.winnersSelectionDate = t })
}

// WinnerCount sets the total number of winners.
func (b *GiveawayWinnersBuilder) WinnerCount(n int) *GiveawayWinnersBuilder {
	return b.set(func(w *GiveawayWinners) { w.winnerCount = n })
}

// Winners sets the public winners.
func (b *GiveawayWinnersBuilder) Winners(winners []*User) *GiveawayWinnersBuilder {
	return b.set(func(w *GiveawayWinners) { w.winners = CoerceList(winners) })
}

// AdditionalChatCount sets how many other chats had to be joined.
func (b *GiveawayWinnersBuilder) AdditionalChatCount(n int) *GiveawayWinnersBuilder {
	return b.set(func(w *GiveawayWinners) { w.additionalChatCount = &n })
}

// PremiumSubscriptionMonthCount sets the Premium prize duration.
func (b *GiveawayWinnersBuilder) PremiumSubscriptionMonthCount(n int) *GiveawayWinnersBuilder {
	return b.set(func(w *GiveawayWinners) { w.premiumSubscriptionMonthCount = &n })
}

// UnclaimedPrizeCount sets the number of undistributed prizes.
func (b *GiveawayWinnersBuilder) UnclaimedPrizeCount(n int) *GiveawayWinnersBuilder {
	return b.set(func(w *GiveawayWinners) { w.unclaimedPrizeCount = &n })
}

// OnlyNewMembers sets whether only users joining after the start were
// eligible.
func (b *GiveawayWinnersBuilder) OnlyNewMembers(v bool) *GiveawayWinnersBuilder {
	return b.set(func(w *GiveawayWinners) { w.onlyNewMembers = &v })
}

// WasRefunded sets whether the giveaway was canceled and refunded.
func (b *GiveawayWinnersBuilder) WasRefunded(v bool) *GiveawayWinnersBuilder {
	return b.set(func(w *GiveawayWinners) { w.wasRefunded = &v })
}

// PrizeDescription sets the description of an additional prize.
func (b *GiveawayWinnersBuilder) PrizeDescription(s string) *GiveawayWinnersBuilder {
	return b.set(func(w *GiveawayWinners) { w.prizeDescription = &s })
}

// Unknown retains raw payload keys the schema does not declare.
func (b *GiveawayWinnersBuilder) Unknown(raw map[string]json.RawMessage) *GiveawayWinnersBuilder {
	return b.set(func(w *GiveawayWinners) { w.captureUnknown(raw, giveawayWinnersDeclared) })
}

// Build validates mandatory fields, declares the identity tuple and
// freezes the winners message.
func (b *GiveawayWinnersBuilder) Build() (*GiveawayWinners, error) {
	if b.err != nil {
		return nil, b.err
	}
	if b.built {
		return b.w, nil
	}
	w := b.w
	if w.chat == nil {
		return nil, schemaErr(KindGiveawayWinners, "chat", "mandatory field is missing")
	}
	if w.giveawayMessageID == 0 {
		return nil, schemaErr(KindGiveawayWinners, "giveaway_message_id", "mandatory field is missing")
	}
	if w.winnersSelectionDate.IsZero() {
		return nil, schemaErr(KindGiveawayWinners, "winners_selection_date", "mandatory field is missing")
	}
	if w.winnerCount < 1 {
		return nil, schemaErr(KindGiveawayWinners, "winner_count", "must be a positive integer")
	}
	w.winners = CoerceList(w.winners)
	w.setIdentity(w.chat, w.giveawayMessageID, w.winnersSelectionDate, w.winnerCount, identityList(w.winners))
	b.built = true
	return w, nil
}

// HydrateGiveawayWinners builds a GiveawayWinners from its raw JSON form.
// A nil or null payload yields (nil, nil).
func HydrateGiveawayWinners(data json.RawMessage, ctx *Context) (*GiveawayWinners, error) {
	f, err := Hydrate(data, ctx, giveawayWinnersPlan)
	if err != nil || f == nil {
		return nil, err
	}

	b := NewGiveawayWinners()
	if c, ok := f.Object("chat").(*Chat); ok {
		b.Chat(c)
	}
	if v, err := f.OptInt64("giveaway_message_id"); err != nil {
		return nil, err
	} else if v != nil {
		b.GiveawayMessageID(*v)
	}
	if ts := f.Time("winners_selection_date"); ts != nil {
		b.WinnersSelectionDate(*ts)
	}
	if v, err := f.OptInt("winner_count"); err != nil {
		return nil, err
	} else if v != nil {
		b.WinnerCount(*v)
	}
	b.Winners(usersFromValues(f.List("winners")))
	if v, err := f.OptInt("additional_chat_count"); err != nil {
		return nil, err
	} else if v != nil {
		b.AdditionalChatCount(*v)
	}
	if v, err := f.OptInt("premium_subscription_month_count"); err != nil {
		return nil, err
	} else if v != nil {
		b.PremiumSubscriptionMonthCount(*v)
	}
	if v, err := f.OptInt("unclaimed_prize_count"); err != nil {
		return nil, err
	} else if v != nil {
		b.UnclaimedPrizeCount(*v)
	}
	if v, err := f.OptBool("only_new_members"); err != nil {
		return nil, err
	} else if v != nil {
		b.OnlyNewMembers(*v)
	}
	if v, err := f.OptBool("was_refunded"); err != nil {
		return nil, err
	} else if v != nil {
		b.WasRefunded(*v)
	}
	if v, err := f.OptString("prize_description"); err != nil {
		return nil, err
	} else if v != nil {
		b.PrizeDescription(*v)
	}
	b.Unknown(f.Unknown())
	return b.Build()
}

var giveawayCompletedPlan = Plan{
	Object: KindGiveawayCompleted,
	Fields: []Field{
		{Key: "winner_count"},
		{Key: "unclaimed_prize_count"},
		{Key: "giveaway_message", Kind: FieldObject, Nested: hydrateMessageValue},
	},
}

var giveawayCompletedDeclared = giveawayCompletedPlan.declaredKeys()

// GiveawayCompleted represents a service message about the completion of a
// giveaway without public winners. Two instances are equal iff their
// winner counts and unclaimed prize counts are equal.
type GiveawayCompleted struct {
	Object
	winnerCount         int
	unclaimedPrizeCount *int
	giveawayMessage     *Message
}

// WinnerCount returns the number of winners.
func (g *GiveawayCompleted) WinnerCount() int { return g.winnerCount }

// UnclaimedPrizeCount returns the number of undistributed prizes, when
// known.
func (g *GiveawayCompleted) UnclaimedPrizeCount() *int { return optCopy(g.unclaimedPrizeCount) }

// GiveawayMessage returns the completed giveaway message, if it was not
// deleted.
func (g *GiveawayCompleted) GiveawayMessage() *Message { return g.giveawayMessage }

type giveawayCompletedWire struct {
	WinnerCount         int      `json:"winner_count"`
	UnclaimedPrizeCount *int     `json:"unclaimed_prize_count,omitempty"`
	GiveawayMessage     *Message `json:"giveaway_message,omitempty"`
}

// MarshalJSON re-encodes the service message including retained unknown
// fields.
func (g *GiveawayCompleted) MarshalJSON() ([]byte, error) {
	return marshalWithUnknown(giveawayCompletedWire{
		WinnerCount:         g.winnerCount,
		UnclaimedPrizeCount: g.unclaimedPrizeCount,
		GiveawayMessage:     g.giveawayMessage,
	}, g.unknown)
}

// GiveawayCompletedBuilder assembles a GiveawayCompleted; Build freezes
// it.
type GiveawayCompletedBuilder struct {
	g     *GiveawayCompleted
	err   error
	built bool
}

// NewGiveawayCompleted starts building a GiveawayCompleted.
func NewGiveawayCompleted() *GiveawayCompletedBuilder {
	return &GiveawayCompletedBuilder{g: &GiveawayCompleted{Object: newObject(KindGiveawayCompleted)}}
}

func (b *GiveawayCompletedBuilder) set(fn func(*GiveawayCompleted)) *GiveawayCompletedBuilder {
	if b.built {
		b.err = ErrFrozen
		return b
	}
	if b.err == nil {
		fn(b.g)
	}
	return b
}

// WinnerCount sets the number of winners.
func (b *GiveawayCompletedBuilder) WinnerCount(n int) *GiveawayCompletedBuilder {
	return b.set(func(g *GiveawayCompleted) { g.winnerCount = n })
}

// UnclaimedPrizeCount sets the number of undistributed prizes.
func (b *GiveawayCompletedBuilder) UnclaimedPrizeCount(n int) *GiveawayCompletedBuilder {
	return b.set(func(g *GiveawayCompleted) { g.unclaimedPrizeCount = &n })
}

// GiveawayMessage sets the completed giveaway message.
func (b *GiveawayCompletedBuilder) GiveawayMessage(m *Message) *GiveawayCompletedBuilder {
	return b.set(func(g *GiveawayCompleted) { g.giveawayMessage = m })
}

// Unknown retains raw payload keys the schema does not declare.
func (b *GiveawayCompletedBuilder) Unknown(raw map[string]json.RawMessage) *GiveawayCompletedBuilder {
	return b.set(func(g *GiveawayCompleted) { g.captureUnknown(raw, giveawayCompletedDeclared) })
}

// Build validates mandatory fields, declares the identity tuple and
// freezes the service message.
func (b *GiveawayCompletedBuilder) Build() (*GiveawayCompleted, error) {
	if b.err != nil {
		return nil, b.err
	}
	if b.built {
		return b.g, nil
	}
	g := b.g
	if g.winnerCount < 1 {
		return nil, schemaErr(KindGiveawayCompleted, "winner_count", "must be a positive integer")
	}
	var unclaimed any
	if g.unclaimedPrizeCount != nil {
		unclaimed = *g.unclaimedPrizeCount
	}
	g.setIdentity(g.winnerCount, unclaimed)
	b.built = true
	return g, nil
}

// HydrateGiveawayCompleted builds a GiveawayCompleted from its raw JSON
// form. A nil or null payload yields (nil, nil).
func HydrateGiveawayCompleted(data json.RawMessage, ctx *Context) (*GiveawayCompleted, error) {
	f, err := Hydrate(data, ctx, giveawayCompletedPlan)
	if err != nil || f == nil {
		return nil, err
	}

	b := NewGiveawayCompleted()
	if v, err := f.OptInt("winner_count"); err != nil {
		return nil, err
	} else if v != nil {
		b.WinnerCount(*v)
	}
	if v, err := f.OptInt("unclaimed_prize_count"); err != nil {
		return nil, err
	} else if v != nil {
		b.UnclaimedPrizeCount(*v)
	}
	if m, ok := f.Object("giveaway_message").(*Message); ok {
		b.GiveawayMessage(m)
	}
	b.Unknown(f.Unknown())
	return b.Build()
}
