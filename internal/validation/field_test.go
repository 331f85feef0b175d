package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/notekeeper/internal/models"
)

func TestField(t *testing.T) {
	tests := []struct {
		name         string
		fieldID      string
		value        string
		constraints  Constraints
		wantSeverity models.Severity
		wantMsg      string
		wantAlert    bool
	}{
		{
			name:        "valid name",
			fieldID:     FieldName,
			value:       "Groceries",
			constraints: NameConstraints,
			wantAlert:   false,
		},
		{
			name:        "valid name - exactly min length",
			fieldID:     FieldName,
			value:       "abcd", // 4 символа
			constraints: NameConstraints,
			wantAlert:   false,
		},
		{
			name:        "valid name - exactly max length",
			fieldID:     FieldName,
			value:       strings.Repeat("a", 50),
			constraints: NameConstraints,
			wantAlert:   false,
		},
		{
			name:         "required field empty",
			fieldID:      FieldName,
			value:        "",
			constraints:  NameConstraints,
			wantAlert:    true,
			wantSeverity: models.SeverityError,
			wantMsg:      "this field is required",
		},
		{
			name:         "too short",
			fieldID:      FieldName,
			value:        "abc", // 3 символа
			constraints:  NameConstraints,
			wantAlert:    true,
			wantSeverity: models.SeverityWarning,
			wantMsg:      "at least 4 characters",
		},
		{
			name:         "too long",
			fieldID:      FieldName,
			value:        strings.Repeat("a", 51),
			constraints:  NameConstraints,
			wantAlert:    true,
			wantSeverity: models.SeverityWarning,
			wantMsg:      "at most 50 characters",
		},
		{
			name:        "optional field empty",
			fieldID:     FieldDescription,
			value:       "",
			constraints: DescriptionConstraints,
			wantAlert:   false,
		},
		{
			name:         "optional field too short when present",
			fieldID:      FieldDescription,
			value:        "ab",
			constraints:  DescriptionConstraints,
			wantAlert:    true,
			wantSeverity: models.SeverityWarning,
			wantMsg:      "at least 4 characters",
		},
		{
			name:        "optional field valid",
			fieldID:     FieldDescription,
			value:       "Milk, eggs",
			constraints: DescriptionConstraints,
			wantAlert:   false,
		},
		{
			name:         "username too short",
			fieldID:      FieldUsername,
			value:        "ab",
			constraints:  UsernameConstraints,
			wantAlert:    true,
			wantSeverity: models.SeverityWarning,
			wantMsg:      "at least 3 characters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Field(tt.fieldID, tt.value, tt.constraints)

			if !tt.wantAlert {
				assert.Nil(t, got)
				return
			}

			require.NotNil(t, got)
			assert.Equal(t, tt.wantSeverity, got.Severity)
			assert.Contains(t, got.Message, tt.wantMsg)
			assert.Equal(t, tt.fieldID, got.SourceField)
		})
	}
}

// TestField_Pure проверяет что валидация не зависит от порядка вызовов
func TestField_Pure(t *testing.T) {
	first := Field(FieldName, "", NameConstraints)
	second := Field(FieldName, "", NameConstraints)

	require.NotNil(t, first)
	require.NotNil(t, second)
	assert.Equal(t, *first, *second)
}
