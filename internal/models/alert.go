package models

// Severity classifies a user-facing alert message.
type Severity string

const (
	SeverityInfo    Severity = "info"    // informational message
	SeverityWarning Severity = "warning" // recoverable problem, action re-armed
	SeverityError   Severity = "error"   // input violates a hard constraint
)

// Alert is a single transient user-facing message tied to the form field
// that triggered it. At most one Alert is live at a time; a newer Alert
// always replaces the previous one.
type Alert struct {
	Severity    Severity `json:"severity"`
	Message     string   `json:"message"`
	SourceField string   `json:"source_field"` // SourceField поле формы, вызвавшее alert (пустое если не привязан)
}
