package metrics

// Status is the health state of one upstream data integration.
type Status string

const (
	StatusOK      Status = "ok"
	StatusError   Status = "error"
	StatusUnknown Status = "unknown"
)

// ParseStatus maps a wire status string to a Status. Anything outside the
// known set becomes StatusUnknown, so an upstream that starts reporting a
// new state degrades to the yellow fallback instead of faulting.
func ParseStatus(s string) Status {
	switch Status(s) {
	case StatusOK, StatusError:
		return Status(s)
	default:
		return StatusUnknown
	}
}

// String returns the wire form of the status.
func (s Status) String() string {
	return string(s)
}

// SourceStatus pairs a data source name with its health state.
// Sources form a fixed ordered sequence and are not persisted.
type SourceStatus struct {
	Name   string
	Status Status
}
