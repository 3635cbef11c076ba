package cli

import (
	"context"
)

func (c *Cli) runLogout(ctx context.Context) error {
	if err := c.authService.Logout(ctx); err != nil {
		return err
	}

	c.io.Println("✓ Logged out. Local documents are kept.")
	return nil
}
