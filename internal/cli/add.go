package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/iudanet/notekeeper/internal/models"
	"github.com/iudanet/notekeeper/internal/validation"
)

// runAdd drives the interactive note form. Each field is validated when
// it loses focus (after input); an error alert re-prompts the field, a
// warning is shown but the value stands. Submission is re-armed when the
// controller rejects the picked image.
func (c *Cli) runAdd(ctx context.Context) error {
	if _, err := c.requireSession(ctx); err != nil {
		return err
	}

	c.io.Println("=== Create Note ===")
	c.io.Println()

	draft := models.Draft{}

	name, err := c.promptField("Note name: ", validation.FieldName, validation.NameConstraints)
	if err != nil {
		return err
	}
	draft.Name = name

	description, err := c.promptField("Description (optional): ", validation.FieldDescription, validation.DescriptionConstraints)
	if err != nil {
		return err
	}
	draft.Description = description

	if err := c.promptImage(&draft); err != nil {
		return err
	}

	// Submit loop: отклоненное изображение возвращает форму пользователю,
	// создание заметки требует повторной отправки
	for {
		updated, err := c.notes.Create(ctx, draft)
		if err != nil {
			return err
		}

		if updated.Alert == nil {
			c.io.Println()
			c.io.Println("✓ Note created successfully!")
			return nil
		}

		focus := c.showAlert(updated.Alert)
		draft = updated
		draft.Alert = nil

		switch focus {
		case validation.FieldImage:
			if err := c.promptImage(&draft); err != nil {
				return err
			}
			if !draft.HasImage() {
				// Отмена выбора файла сбрасывает форму целиком
				c.io.Println("Note creation cancelled.")
				return nil
			}
		case validation.FieldName:
			name, err := c.promptField("Note name: ", validation.FieldName, validation.NameConstraints)
			if err != nil {
				return err
			}
			draft.Name = name
		default:
			return nil
		}
	}
}

// promptField reads a field value and validates it on focus loss.
// A required-field error re-prompts; a length warning is rendered but
// the value is accepted, matching the form's non-blocking warnings.
func (c *Cli) promptField(prompt, fieldID string, cons validation.Constraints) (string, error) {
	for {
		value, err := c.io.ReadInput(prompt)
		if err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}

		a := validation.Field(fieldID, value, cons)
		if a == nil {
			return value, nil
		}

		c.alerts.Raise(*a)
		c.showAlert(a)
		if a.Severity != models.SeverityError {
			return value, nil
		}
		// Фокус возвращается на поле, вызвавшее alert
	}
}

// promptImage lets the user pick an image by file path. An empty path
// skips the image; the blob name is the base file name.
func (c *Cli) promptImage(draft *models.Draft) error {
	path, err := c.io.ReadInput("Image file path (optional, empty to skip): ")
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	if path == "" {
		draft.ClearImage()
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read image file: %w", err)
	}

	draft.ImageName = filepath.Base(path)
	draft.ImageData = data
	return nil
}
