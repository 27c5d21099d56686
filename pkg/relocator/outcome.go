package relocator

import "fmt"

// Kind tags a relocation outcome.
type Kind int

const (
	// Moved means the file now lives in its category folder under its own name.
	Moved Kind = iota
	// Renamed means the file was moved under a disambiguated name.
	Renamed
	// Ignored means the file was deliberately left where it was.
	Ignored
	// Failed means an error prevented the move. The source is untouched.
	Failed
)

func (k Kind) String() string {
	switch k {
	case Moved:
		return "moved"
	case Renamed:
		return "renamed"
	case Ignored:
		return "ignored"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// MarshalText lets outcomes serialize their kind by name.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Stable reasons carried by Ignored and Failed outcomes.
const (
	ReasonHidden           = "hidden file"
	ReasonAlreadyOrganized = "already organized"
	ReasonInvalidSource    = "invalid source"
	ReasonInvalidName      = "invalid name"
	ReasonDirCreate        = "failed to create category folder"
	ReasonCollisionCheck   = "failed to check destination"
	ReasonMove             = "failed to move file"
)

// Outcome is the result of relocating one file.
type Outcome struct {
	Kind     Kind   `json:"kind"`
	Source   string `json:"source"`
	Category string `json:"category"`
	// Path is the final location for Moved and Renamed outcomes.
	Path string `json:"path,omitempty"`
	// Reason is set for Ignored and Failed outcomes.
	Reason string `json:"reason,omitempty"`
	// Err is the coded error behind a Failed outcome.
	Err error `json:"-"`
}

// Message returns the reason with the underlying error, if any.
func (o Outcome) Message() string {
	if o.Err != nil {
		return fmt.Sprintf("%s: %v", o.Reason, o.Err)
	}
	return o.Reason
}
