package validation

import (
	"fmt"

	"github.com/iudanet/notekeeper/internal/models"
)

// Form field identifiers. Alerts reference these so the form can restore
// focus to the offending field after the alert is acknowledged.
const (
	FieldName        = "name"
	FieldDescription = "description"
	FieldImage       = "image"
	FieldUsername    = "username"
)

// Constraints describes the accepted shape of a single form field.
type Constraints struct {
	MinLength int
	MaxLength int
	Required  bool
}

// Constraint presets for the note form.
var (
	// NameConstraints название заметки: обязательное, 4-50 символов
	NameConstraints = Constraints{Required: true, MinLength: 4, MaxLength: 50}
	// DescriptionConstraints описание: опциональное, 4-50 символов если задано
	DescriptionConstraints = Constraints{Required: false, MinLength: 4, MaxLength: 50}
	// UsernameConstraints имя пользователя локального аккаунта: 3-32 символа
	UsernameConstraints = Constraints{Required: true, MinLength: 3, MaxLength: 32}
)

// Field validates a raw field value against its constraints and returns
// the alert to raise, or nil when the value is acceptable.
//
// A missing required value is a hard error; length violations are warnings.
// The function is pure: no side effects, no I/O. The form invokes it after
// a field loses focus, not on every keystroke.
func Field(fieldID, value string, c Constraints) *models.Alert {
	if c.Required && len(value) == 0 {
		return &models.Alert{
			Severity:    models.SeverityError,
			Message:     "this field is required",
			SourceField: fieldID,
		}
	}

	if len(value) > 0 && len(value) < c.MinLength {
		return &models.Alert{
			Severity:    models.SeverityWarning,
			Message:     fmt.Sprintf("input must be at least %d characters long", c.MinLength),
			SourceField: fieldID,
		}
	}

	if c.MaxLength > 0 && len(value) > c.MaxLength {
		return &models.Alert{
			Severity:    models.SeverityWarning,
			Message:     fmt.Sprintf("input must be at most %d characters long", c.MaxLength),
			SourceField: fieldID,
		}
	}

	return nil
}
