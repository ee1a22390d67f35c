// Package types contains immutable bindings for the Telegram Bot API
// objects the giveaway flow consumes, plus the hydration framework they
// are built on: raw JSON payloads are transformed field by field into
// frozen value objects that keep unrecognized keys, normalize timestamps
// against a caller-supplied timezone default and compare by a declared
// subset of identity attributes.
package types
