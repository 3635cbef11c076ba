package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/gophtext/internal/client/auth"
)

func (c *Cli) runStatus(ctx context.Context) error {
	c.io.Println("=== Status ===")
	c.io.Println()

	authData, err := c.authService.GetAuth(ctx)
	switch {
	case errors.Is(err, auth.ErrNotAuthenticated):
		c.io.Println("Status: Not authenticated")
		c.io.Println("Run 'gophtext register' or 'gophtext login' to authenticate.")
	case err != nil:
		return fmt.Errorf("failed to check authentication: %w", err)
	default:
		expiresAt := time.Unix(authData.ExpiresAt, 0)
		remaining := time.Until(expiresAt)

		c.io.Println("Status: Authenticated")
		c.io.Printf("Site ID: %s\n", authData.SiteID)
		c.io.Printf("Server: %s\n", authData.ServerURL)
		c.io.Printf("Token expires: %s\n", expiresAt.Format(time.RFC3339))
		if remaining > 0 {
			c.io.Printf("Time remaining: %s\n", remaining.Round(time.Second))
		} else {
			c.io.Println("⚠️  Token has expired. Please login again.")
		}
	}

	names, err := c.editor.List(ctx)
	if err != nil {
		return err
	}

	c.io.Println()
	if len(names) == 0 {
		c.io.Println("No local documents.")
		return nil
	}

	total := 0
	for _, name := range names {
		pending, err := c.syncService.GetPendingCount(ctx, name)
		if err != nil {
			// Не прерываем вывод из-за одного документа
			c.io.Printf("  %-24s error: %v\n", name, err)
			continue
		}
		total += pending
		c.io.Printf("  %-24s %d pending operation(s)\n", name, pending)
	}

	c.io.Println()
	if total > 0 {
		c.io.Printf("⚠️  Pending sync: %d operation(s) waiting to be sent\n", total)
		c.io.Println("Run 'gophtext sync' to synchronize with server.")
	} else {
		c.io.Println("✓ All documents synchronized with server")
	}

	return nil
}
