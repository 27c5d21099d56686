package organize

import (
	"time"

	"github.com/arthur-debert/organizer/pkg/relocator"
)

// Summary accumulates outcome counts for one run.
type Summary struct {
	Moved   int `json:"moved"`
	Renamed int `json:"renamed"`
	Ignored int `json:"ignored"`
	Failed  int `json:"failed"`
	// Skipped counts entries that never reached the relocator: directories
	// and configured skip names.
	Skipped  int           `json:"skipped"`
	Duration time.Duration `json:"duration"`
}

// Add counts one outcome.
func (s *Summary) Add(out relocator.Outcome) {
	switch out.Kind {
	case relocator.Moved:
		s.Moved++
	case relocator.Renamed:
		s.Renamed++
	case relocator.Ignored:
		s.Ignored++
	case relocator.Failed:
		s.Failed++
	}
}

// Relocated is the number of files that ended up in a category folder.
func (s Summary) Relocated() int {
	return s.Moved + s.Renamed
}

// Collisions is the number of name collisions resolved by renaming.
func (s Summary) Collisions() int {
	return s.Renamed
}

// Total is the number of files handed to the relocator.
func (s Summary) Total() int {
	return s.Moved + s.Renamed + s.Ignored + s.Failed
}
