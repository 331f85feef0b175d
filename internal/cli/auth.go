package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/iudanet/notekeeper/internal/storage"
)

// passphraseEnvVar lets scripts supply the passphrase non-interactively
const passphraseEnvVar = "NOTEKEEPER_PASSPHRASE"

// runRegister creates the local account and opens a session
func (c *Cli) runRegister(ctx context.Context) error {
	c.io.Println("=== Register ===")
	c.io.Println()

	username, err := c.io.ReadInput("Username: ")
	if err != nil {
		return fmt.Errorf("failed to read username: %w", err)
	}

	passphrase, err := c.readPassphrase("Passphrase (min 12 characters): ")
	if err != nil {
		return err
	}

	if err := c.auth.Register(ctx, username, passphrase); err != nil {
		return err
	}

	c.io.Println()
	c.io.Println("✓ Account registered, session opened!")
	c.io.Printf("Username: %s\n", username)
	return nil
}

// runLogin verifies the passphrase and opens a session
func (c *Cli) runLogin(ctx context.Context) error {
	c.io.Println("=== Login ===")
	c.io.Println()

	username, err := c.io.ReadInput("Username: ")
	if err != nil {
		return fmt.Errorf("failed to read username: %w", err)
	}

	passphrase, err := c.readPassphrase("Passphrase: ")
	if err != nil {
		return err
	}

	if err := c.auth.Login(ctx, username, passphrase); err != nil {
		return err
	}

	c.io.Println()
	c.io.Println("✓ Login successful!")
	return nil
}

// runLogout closes the current session
func (c *Cli) runLogout(ctx context.Context) error {
	if err := c.auth.Logout(ctx); err != nil {
		if errors.Is(err, storage.ErrNotAuthenticated) {
			c.io.Println("No active session.")
			return nil
		}
		return err
	}

	c.io.Println("✓ Logged out.")
	return nil
}

// runStatus shows the session state
func (c *Cli) runStatus(ctx context.Context) error {
	session, err := c.auth.Session(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrNotAuthenticated) {
			c.io.Println("Not authenticated. Run 'notekeeper login' first.")
			return nil
		}
		return err
	}

	c.io.Println("Authenticated.")
	c.io.Printf("Username:        %s\n", session.Username)
	c.io.Printf("Session expires: %s\n", session.ExpiresAt.Format("2006-01-02 15:04"))
	return nil
}

// readPassphrase reads the passphrase from the environment or the terminal.
// The environment takes priority so scripted runs never prompt.
func (c *Cli) readPassphrase(prompt string) (string, error) {
	if passphrase := os.Getenv(passphraseEnvVar); passphrase != "" {
		return passphrase, nil
	}

	passphrase, err := c.io.ReadPassword(prompt)
	if err != nil {
		return "", fmt.Errorf("failed to read passphrase: %w", err)
	}
	return passphrase, nil
}
