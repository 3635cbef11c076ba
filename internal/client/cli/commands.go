package cli

import (
	"context"
	"fmt"
)

// Run выполняет команду. Ошибка возвращается вызывающему, который печатает ее и
// завершает процесс с ненулевым кодом.
func (c *Cli) Run(ctx context.Context, command string, args []string) error {
	switch command {
	case "register":
		return c.runRegister(ctx)
	case "login":
		return c.runLogin(ctx, args)
	case "logout":
		return c.runLogout(ctx)
	case "status":
		return c.runStatus(ctx)
	case "new":
		return c.runNew(ctx, args)
	case "list":
		return c.runList(ctx, args)
	case "insert":
		return c.runInsert(ctx, args)
	case "delete":
		return c.runDelete(ctx, args)
	case "show":
		return c.runShow(ctx, args)
	case "vector":
		return c.runVector(ctx, args)
	case "remote":
		return c.runRemote(ctx, args)
	case "sync":
		return c.runSync(ctx, args)
	case "watch":
		return c.runWatch(ctx, args)
	default:
		PrintUsage(c.io)
		return fmt.Errorf("unknown command: %s", command)
	}
}
