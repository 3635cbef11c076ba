package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runSync(ctx context.Context, args []string) error {
	c.io.Println("=== Synchronization ===")
	c.io.Println()

	token, err := c.authService.AccessToken(ctx)
	if err != nil {
		return err
	}

	names := args
	if len(names) == 0 {
		names, err = c.editor.List(ctx)
		if err != nil {
			return err
		}
	}
	if len(names) == 0 {
		c.io.Println("No local documents to synchronize.")
		return nil
	}

	failed := 0
	for _, name := range names {
		result, err := c.syncService.Sync(ctx, name, token)
		if err != nil {
			failed++
			c.io.Printf("✗ %s: %v\n", name, err)
			continue
		}

		c.io.Printf("✓ %s: pushed %d (accepted %d), pulled %d", name, result.Pushed, result.Accepted, result.Pulled)
		if result.Inserted > 0 || result.Deleted > 0 {
			c.io.Printf(", +%d/-%d characters", result.Inserted, result.Deleted)
		}
		if result.Attempts > 1 {
			c.io.Printf(", %d attempts", result.Attempts)
		}
		c.io.Println()
	}

	if failed > 0 {
		return fmt.Errorf("synchronization failed for %d of %d document(s)", failed, len(names))
	}
	return nil
}
