package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/gophtext/internal/codec"
	"github.com/iudanet/gophtext/internal/crdt"
	"github.com/iudanet/gophtext/pkg/api"
)

// runWatch синхронизирует документ и затем ждет уведомлений сервера по WebSocket.
// Уведомление, не покрытое локальным вектором, запускает обычную синхронизацию:
// применять операции в обход вектора нельзя, пропущенное уведомление оставило бы дыру.
func (c *Cli) runWatch(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usageError("watch <doc>")
	}
	name := args[0]

	token, err := c.authService.AccessToken(ctx)
	if err != nil {
		return err
	}

	if _, err := c.syncService.Sync(ctx, name, token); err != nil {
		return fmt.Errorf("initial synchronization failed: %w", err)
	}

	c.io.Printf("Watching %q, press Ctrl+C to stop\n", name)
	if err := c.printText(ctx, name); err != nil {
		return err
	}

	return c.apiClient.Watch(ctx, token, name, func(msg api.WatchMessage) error {
		remote, err := codec.VectorFromAPI(msg.Vector)
		if err != nil {
			return fmt.Errorf("invalid watch message: %w", err)
		}

		local, err := c.editor.Vector(ctx, name)
		if err != nil {
			return err
		}
		if covers(local, remote) {
			return nil
		}

		result, err := c.syncService.Sync(ctx, name, token)
		if err != nil {
			return fmt.Errorf("synchronization failed: %w", err)
		}
		if result.Inserted == 0 && result.Deleted == 0 {
			return nil
		}
		return c.printText(ctx, name)
	})
}

func (c *Cli) printText(ctx context.Context, name string) error {
	text, err := c.editor.Text(ctx, name)
	if err != nil {
		return err
	}
	c.io.Println("---")
	c.io.Println(text)
	return nil
}

// covers сообщает, что local видел все операции, учтенные в remote
func covers(local, remote crdt.VersionVector) bool {
	for site, counter := range remote {
		if local.Get(site) < counter {
			return false
		}
	}
	return true
}
