package summary

// Status is the overall verdict of a log.
type Status int

const (
	StatusUnknown Status = iota
	StatusPassed
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusPassed:
		return "PASSED"
	case StatusFailed:
		return "FAILED"
	default:
		return "UNKNOWN"
	}
}

// Data is everything a report needs from one log.
type Data struct {
	Classification
	Containers Containers
}

// Analyze classifies text and extracts container states.
func Analyze(text string) Data {
	return Data{
		Classification: Classify(text),
		Containers:     DetectContainers(text),
	}
}

// Overall returns FAILED when any check failed, PASSED when at least one
// passed, and UNKNOWN otherwise.
func (d Data) Overall() Status {
	switch {
	case len(d.Failed) > 0:
		return StatusFailed
	case len(d.Passed) > 0:
		return StatusPassed
	default:
		return StatusUnknown
	}
}
