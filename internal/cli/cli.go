// Package cli implements the interactive command surface of notekeeper.
// The add command is the note form: fields are read one by one, validated
// as each loses focus, and alerts steer the user back to the offending
// field before anything reaches the stores.
package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/notekeeper/internal/alert"
	"github.com/iudanet/notekeeper/internal/auth"
	"github.com/iudanet/notekeeper/internal/iocli"
	"github.com/iudanet/notekeeper/internal/notes"
)

// Cli binds the services to the interactive terminal
type Cli struct {
	io     iocli.IO
	notes  notes.Service
	auth   auth.Service
	alerts *alert.State
}

// NewCli creates the command surface
func NewCli(io iocli.IO, notesService notes.Service, authService auth.Service, alerts *alert.State) *Cli {
	return &Cli{
		io:     io,
		notes:  notesService,
		auth:   authService,
		alerts: alerts,
	}
}

// Run dispatches a single command
func (c *Cli) Run(ctx context.Context, command string, args []string) error {
	switch command {
	case "register":
		return c.runRegister(ctx)
	case "login":
		return c.runLogin(ctx)
	case "logout":
		return c.runLogout(ctx)
	case "status":
		return c.runStatus(ctx)
	case "add":
		return c.runAdd(ctx)
	case "list":
		return c.runList(ctx)
	case "delete":
		return c.runDelete(ctx, args)
	case "help":
		c.PrintUsage()
		return nil
	default:
		c.PrintUsage()
		return fmt.Errorf("unknown command: %s", command)
	}
}

// PrintUsage prints the command reference
func (c *Cli) PrintUsage() {
	c.io.Println("Usage: notekeeper <command>")
	c.io.Println()
	c.io.Println("Commands:")
	c.io.Println("  register   Create the local account")
	c.io.Println("  login      Open a session")
	c.io.Println("  logout     Close the current session")
	c.io.Println("  status     Show session status")
	c.io.Println("  add        Create a note (interactive form)")
	c.io.Println("  list       List notes")
	c.io.Println("  delete     Delete a note by id")
	c.io.Println("  help       Show this help")
}

// requireSession stops commands that need an authenticated user
func (c *Cli) requireSession(ctx context.Context) (*auth.SessionInfo, error) {
	session, err := c.auth.Session(ctx)
	if err != nil {
		return nil, fmt.Errorf("not authenticated, run 'notekeeper login' first")
	}
	return session, nil
}
