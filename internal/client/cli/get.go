package cli

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/iudanet/gophtext/internal/codec"
)

func (c *Cli) runShow(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usageError("show <doc>")
	}
	name := args[0]

	text, err := c.editor.Text(ctx, name)
	if err != nil {
		return err
	}

	vector, err := c.editor.Vector(ctx, name)
	if err != nil {
		return err
	}

	pending, err := c.syncService.GetPendingCount(ctx, name)
	if err != nil {
		return err
	}

	return c.render(documentTemplate, documentView{
		Name:    name,
		Vector:  vector.String(),
		Text:    text,
		Length:  utf8.RuneCountInString(text),
		Pending: pending,
	})
}

func (c *Cli) runVector(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usageError("vector <doc>")
	}

	vector, err := c.editor.Vector(ctx, args[0])
	if err != nil {
		return err
	}

	c.io.Println(vector.String())
	return nil
}

func (c *Cli) runRemote(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usageError("remote <doc>")
	}

	token, err := c.authService.AccessToken(ctx)
	if err != nil {
		return err
	}

	resp, err := c.apiClient.GetDocument(ctx, token, args[0])
	if err != nil {
		return err
	}

	vector, err := codec.VectorFromAPI(resp.Vector)
	if err != nil {
		return fmt.Errorf("invalid server response: %w", err)
	}

	return c.render(remoteDocumentTemplate, remoteDocumentView{
		ID:         resp.ID,
		Vector:     vector.String(),
		Text:       resp.Text,
		Operations: resp.Operations,
	})
}
