package cli

import (
	"context"
)

func (c *Cli) runList(ctx context.Context, args []string) error {
	remote := false
	for _, arg := range args {
		if arg != "--remote" {
			return usageError("list [--remote]")
		}
		remote = true
	}

	var names []string
	if remote {
		token, err := c.authService.AccessToken(ctx)
		if err != nil {
			return err
		}
		resp, err := c.apiClient.ListDocuments(ctx, token)
		if err != nil {
			return err
		}
		names = resp.Documents
		c.io.Println("=== Server Documents ===")
	} else {
		local, err := c.editor.List(ctx)
		if err != nil {
			return err
		}
		names = local
		c.io.Println("=== Local Documents ===")
	}
	c.io.Println()

	if len(names) == 0 {
		c.io.Println("No documents found.")
		return nil
	}

	for _, name := range names {
		c.io.Println("  " + name)
	}
	c.io.Println()
	c.io.Printf("Total: %d document(s)\n", len(names))

	return nil
}
