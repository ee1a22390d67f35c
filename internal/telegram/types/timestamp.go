package types

import "time"

// FromUnix converts optional epoch seconds into a point in time. A nil
// input yields nil, never an error. The result is built in UTC and then
// moved into loc when one is given; without a timezone the value stays
// explicitly UTC rather than local.
func FromUnix(sec *int64, loc *time.Location) *time.Time {
	if sec == nil {
		return nil
	}
	t := time.Unix(*sec, 0).UTC()
	if loc != nil {
		t = t.In(loc)
	}
	return &t
}
