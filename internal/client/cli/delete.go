package cli

import (
	"context"
)

func (c *Cli) runDelete(ctx context.Context, args []string) error {
	if len(args) < 2 || len(args) > 3 {
		return usageError("delete <doc> <index> [length]")
	}
	name := args[0]

	index, err := parseIndex(args[1], "index")
	if err != nil {
		return err
	}

	length := 1
	if len(args) == 3 {
		length, err = parseIndex(args[2], "length")
		if err != nil {
			return err
		}
	}

	ops, err := c.editor.Delete(ctx, name, index, length)
	if err != nil {
		return err
	}

	if len(ops) == 0 {
		c.io.Println("Nothing to delete.")
		return nil
	}

	c.io.Printf("✓ Deleted %d character(s)\n", len(ops))
	return nil
}
