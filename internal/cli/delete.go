package cli

import (
	"context"
	"fmt"
)

// runDelete removes a note after confirmation. The image blob cleanup
// is handled by the controller.
func (c *Cli) runDelete(ctx context.Context, args []string) error {
	if _, err := c.requireSession(ctx); err != nil {
		return err
	}

	if len(args) == 0 {
		return fmt.Errorf("missing note ID. Usage: notekeeper delete <id>")
	}
	noteID := args[0]

	c.io.Println("=== Delete Note ===")
	c.io.Println()

	// Показываем что именно будет удалено
	views, err := c.notes.Refresh(ctx)
	if err != nil {
		return fmt.Errorf("failed to refresh notes: %w", err)
	}

	for _, view := range views {
		if view.ID == noteID {
			c.io.Println("About to delete:")
			c.io.Printf("  Name: %s\n", view.Name)
			if view.Description != "" {
				c.io.Printf("  Description: %s\n", view.Description)
			}
			if view.ImageRef != "" {
				c.io.Printf("  Image: %s\n", view.ImageRef)
			}
			c.io.Println()
			break
		}
	}

	confirmed, err := c.io.Confirm("Are you sure you want to delete this note? (yes/no): ")
	if err != nil {
		return fmt.Errorf("failed to read confirmation: %w", err)
	}
	if !confirmed {
		c.io.Println()
		c.io.Println("Deletion cancelled.")
		return nil
	}

	if err := c.notes.Delete(ctx, noteID); err != nil {
		return err
	}

	c.io.Println()
	c.io.Println("✓ Note deleted successfully!")
	return nil
}
