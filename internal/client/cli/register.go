package cli

import (
	"context"
	"fmt"
	"time"
)

func (c *Cli) runRegister(ctx context.Context) error {
	c.io.Println("=== Registration ===")
	c.io.Println()

	accessKey, err := c.getAccessKey()
	if err != nil {
		return err
	}

	c.io.Println("Registering new site...")

	result, err := c.authService.Register(ctx, accessKey)
	if err != nil {
		return err
	}

	c.io.Println()
	c.io.Println("✓ Registration successful!")
	c.io.Printf("Site ID: %s\n", result.SiteID)
	c.io.Println()
	c.io.Println("Keep the site id and the access key: both are required to login.")

	login, err := c.authService.Login(ctx, result.SiteID, accessKey)
	if err != nil {
		return fmt.Errorf("site registered, but login failed: %w", err)
	}

	c.io.Printf("Logged in, token expires at %s\n", login.ExpiresAt.Format(time.RFC3339))
	return nil
}
