package cli

import (
	"context"
	"fmt"
)

// runList refreshes the note list and renders it
func (c *Cli) runList(ctx context.Context) error {
	if _, err := c.requireSession(ctx); err != nil {
		return err
	}

	views, err := c.notes.Refresh(ctx)
	if err != nil {
		return fmt.Errorf("failed to refresh notes: %w", err)
	}

	if len(views) == 0 {
		c.io.Println("No notes yet. Run 'notekeeper add' to create one.")
		return nil
	}

	c.io.Printf("Notes (%d):\n", len(views))
	c.io.Println()

	for _, view := range views {
		c.io.Printf("  %s  %s\n", view.ID, view.Name)
		if view.Description != "" {
			c.io.Printf("      %s\n", view.Description)
		}
		if view.ImagePath != "" {
			c.io.Printf("      image: %s\n", view.ImagePath)
		}
		c.io.Printf("      created: %s\n", view.CreatedAt.Format("2006-01-02 15:04"))
		c.io.Println()
	}

	return nil
}
