package timezone

import (
	"sync"
	"time"
)

const DefaultTimezone = "UTC"

var locations sync.Map // name -> *time.Location

func load(tz string) (*time.Location, bool) {
	if tz == "" {
		return nil, false
	}
	if loc, ok := locations.Load(tz); ok {
		return loc.(*time.Location), true
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, false
	}
	locations.Store(tz, loc)
	return loc, true
}

func IsValid(tz string) bool {
	_, ok := load(tz)
	return ok
}

// Location falls back to DefaultTimezone for empty or unknown names.
func Location(tz string) *time.Location {
	if loc, ok := load(tz); ok {
		return loc
	}
	return time.UTC
}

func Now() time.Time {
	return time.Now().In(Location(DefaultTimezone))
}

// Clock returns a now-func pinned to tz, for stamping records.
func Clock(tz string) func() time.Time {
	loc := Location(tz)
	return func() time.Time {
		return time.Now().In(loc)
	}
}
