package cli

import (
	"github.com/iudanet/notekeeper/internal/models"
)

// alert prefixes shown to the user, keyed by severity
var severityLabels = map[models.Severity]string{
	models.SeverityInfo:    "Info!",
	models.SeverityWarning: "Warning!",
	models.SeverityError:   "Error!",
}

// showAlert renders the alert, acknowledges the shared alert state and
// returns the field that should regain focus. Rendering is suppressed
// entirely when there is no alert.
func (c *Cli) showAlert(a *models.Alert) string {
	if a == nil {
		return ""
	}

	label, ok := severityLabels[a.Severity]
	if !ok {
		label = "Info!"
	}
	c.io.Printf("%s %s\n", label, a.Message)

	// Закрытие alert переводит состояние в Idle и возвращает фокус
	c.alerts.Clear()
	return a.SourceField
}
