package timezone

import (
	"hotelier/config"
	"time"

	"github.com/rs/zerolog/log"
)

var (
	appLocation = time.UTC
)

func init() {
	Load(config.Get().App.Timezone)
}

// Load switches the application location. An empty or unknown name falls back to UTC.
func Load(name string) *time.Location {
	if name == "" {
		appLocation = time.UTC

		return appLocation
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Error().
			Err(err).
			Str("timezone", name).
			Msg("Failed to load timezone, falling back to UTC")

		appLocation = time.UTC

		return appLocation
	}

	appLocation = loc

	return appLocation
}

// Now returns the current time in the application timezone
func Now() time.Time {
	return time.Now().In(appLocation)
}

// ToAppTime converts a time to the application timezone
func ToAppTime(t time.Time) time.Time {
	return t.In(appLocation)
}

// GetLocation returns the current application timezone location
func GetLocation() *time.Location {
	return appLocation
}

// Parse parses a time string in the application timezone
func Parse(layout, value string) (time.Time, error) {
	return time.ParseInLocation(layout, value, appLocation) //nolint:wrapcheck
}

// Format formats a time in the application timezone
func Format(t time.Time, layout string) string {
	return ToAppTime(t).Format(layout)
}

// ParseDate accepts an RFC3339 timestamp or a plain YYYY-MM-DD date, the latter read as
// midnight in the application timezone.
func ParseDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}

	return Parse(time.DateOnly, value)
}
