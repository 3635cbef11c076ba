package cli

import (
	"context"
	"fmt"
	"time"
)

func (c *Cli) runLogin(ctx context.Context, args []string) error {
	c.io.Println("=== Login ===")
	c.io.Println()

	var siteID string
	if len(args) > 0 {
		siteID = args[0]
	} else {
		input, err := c.io.ReadInput("Site ID: ")
		if err != nil {
			return fmt.Errorf("failed to read site id: %w", err)
		}
		siteID = input
	}

	accessKey, err := c.getAccessKey()
	if err != nil {
		return err
	}

	c.io.Println("Authenticating...")

	result, err := c.authService.Login(ctx, siteID, accessKey)
	if err != nil {
		return err
	}

	c.io.Println()
	c.io.Println("✓ Login successful!")
	c.io.Printf("Site ID: %s\n", result.SiteID)
	c.io.Printf("Access token expires: %s\n", result.ExpiresAt.Format(time.RFC3339))

	return nil
}
