package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/iudanet/gophtext/internal/crdt"
	"github.com/iudanet/gophtext/internal/validation"
)

func (c *Cli) runNew(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usageError("new <doc>")
	}
	name := args[0]

	if err := validation.ValidateDocumentName(name); err != nil {
		return fmt.Errorf("invalid document name: %w", err)
	}

	// Документ пишется от имени сайта текущей сессии, иначе сервер отклонит его операции
	authData, err := c.authService.GetAuth(ctx)
	if err != nil {
		return err
	}

	if err := c.editor.Create(ctx, name, crdt.SiteID(authData.SiteID)); err != nil {
		return err
	}

	c.io.Printf("✓ Document %q created\n", name)
	c.io.Println("Run 'gophtext sync " + name + "' to fetch edits already made by other sites.")
	return nil
}

func (c *Cli) runInsert(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return usageError("insert <doc> <index> [text]")
	}
	name := args[0]

	index, err := parseIndex(args[1], "index")
	if err != nil {
		return err
	}

	var text string
	if len(args) > 2 {
		text = strings.Join(args[2:], " ")
	} else {
		text, err = c.io.ReadInput("Text: ")
		if err != nil {
			return fmt.Errorf("failed to read text: %w", err)
		}
	}
	if text == "" {
		return fmt.Errorf("text cannot be empty")
	}

	ops, err := c.editor.Insert(ctx, name, index, text)
	if err != nil {
		return err
	}

	c.io.Printf("✓ Inserted %d character(s)\n", len(ops))
	return nil
}
