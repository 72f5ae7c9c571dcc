package entity

// Severity classifies how serious a disease report is.
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// Valid reports whether the severity is one of the enumerated values.
func (s Severity) Valid() bool {
	switch s {
	case SeverityLow, SeverityMedium, SeverityHigh:
		return true
	default:
		return false
	}
}

// TriggersAlert reports whether a report of this severity warrants creating
// an alert and notifying the surrounding community. Low-severity reports are
// acknowledged but kept out of the alert and heatmap pipelines.
func (s Severity) TriggersAlert() bool {
	return s == SeverityMedium || s == SeverityHigh
}
