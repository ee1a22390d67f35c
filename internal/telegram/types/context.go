package types

import "time"

// Context carries cross-cutting defaults consumed during hydration. It is
// passed explicitly through every hydration call, including recursive calls
// for nested objects, so the same defaults apply to a whole object graph.
//
// A nil *Context is valid and behaves like a context without defaults.
type Context struct {
	tz *time.Location
}

// NewContext returns a context with no defaults set.
func NewContext() *Context {
	return &Context{}
}

// WithTimezone returns a copy of the context using loc as the default
// timezone for timestamp fields.
func (c *Context) WithTimezone(loc *time.Location) *Context {
	out := &Context{}
	if c != nil {
		*out = *c
	}
	out.tz = loc
	return out
}

// Timezone returns the default timezone, or nil when none is configured.
func (c *Context) Timezone() *time.Location {
	if c == nil {
		return nil
	}
	return c.tz
}
