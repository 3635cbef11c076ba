package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/iudanet/gophtext/internal/client/api"
	"github.com/iudanet/gophtext/internal/client/auth"
	"github.com/iudanet/gophtext/internal/client/editor"
	"github.com/iudanet/gophtext/internal/client/iocli"
	"github.com/iudanet/gophtext/internal/client/sync"
)

// AccessKeyEnv переменная окружения с ключом доступа сайта
const AccessKeyEnv = "GOPHTEXT_ACCESS_KEY"

// ErrUsage возвращается при неверных аргументах команды
var ErrUsage = errors.New("invalid arguments")

// AccessKeySources источники ключа доступа, переданные через флаги
type AccessKeySources struct {
	FromFile string
	FromArgs string
}

type Cli struct {
	io          iocli.IO
	apiClient   api.ClientAPI
	authService auth.Service
	editor      editor.Service
	syncService sync.Service
	getenv      func(string) string
	keys        AccessKeySources
}

func New(
	io iocli.IO,
	apiClient api.ClientAPI,
	authService auth.Service,
	editorService editor.Service,
	syncService sync.Service,
	keys AccessKeySources,
) *Cli {
	return &Cli{
		io:          io,
		apiClient:   apiClient,
		authService: authService,
		editor:      editorService,
		syncService: syncService,
		keys:        keys,
		getenv:      os.Getenv,
	}
}

// getAccessKey retrieves access key from various sources with priority:
// 1. Environment variable GOPHTEXT_ACCESS_KEY
// 2. File specified by --access-key-file
// 3. Command-line parameter --access-key
// 4. Interactive prompt (fallback)
func (c *Cli) getAccessKey() (string, error) {
	// Priority 1: Environment variable
	if envKey := c.getenv(AccessKeyEnv); envKey != "" {
		return envKey, nil
	}

	// Priority 2: File
	if c.keys.FromFile != "" {
		content, err := os.ReadFile(c.keys.FromFile)
		if err != nil {
			return "", fmt.Errorf("failed to read access key file: %w", err)
		}
		key := strings.TrimSpace(string(content))
		if key == "" {
			return "", fmt.Errorf("access key file is empty")
		}
		return key, nil
	}

	// Priority 3: CLI parameter
	if c.keys.FromArgs != "" {
		return c.keys.FromArgs, nil
	}

	// Priority 4: Interactive prompt
	key, err := c.io.ReadPassword("Access key: ")
	if err != nil {
		return "", fmt.Errorf("failed to read access key: %w", err)
	}
	if key == "" {
		return "", fmt.Errorf("access key cannot be empty")
	}

	return key, nil
}

func usageError(usage string) error {
	return fmt.Errorf("%w, usage: gophtext %s", ErrUsage, usage)
}

func PrintUsage(out iocli.IO) {
	out.Println("GophText Client")
	out.Println()
	out.Println("Usage:")
	out.Println("  gophtext [OPTIONS] COMMAND [ARGS]")
	out.Println()
	out.Println("Options:")
	out.Println("  --version               Show version information")
	out.Println("  --server URL            Server URL (default: http://localhost:8080)")
	out.Println("  --db PATH               Path to local database (default: gophtext-client.db)")
	out.Println("  --log-level LEVEL       Log level: debug, info, warn, error (default: warn)")
	out.Println("  --access-key KEY        Site access key (not recommended, use env var or file)")
	out.Println("  --access-key-file PATH  Path to file containing site access key")
	out.Println()
	out.Println("Access Key Priority (highest to lowest):")
	out.Println("  1. GOPHTEXT_ACCESS_KEY environment variable")
	out.Println("  2. --access-key-file (file path)")
	out.Println("  3. --access-key (command line)")
	out.Println("  4. Interactive prompt (fallback)")
	out.Println()
	out.Println("Commands:")
	out.Println("  register                         Register a new site and login")
	out.Println("  login [site-id]                  Get access token for existing site")
	out.Println("  logout                           Remove local session")
	out.Println("  status                           Show session and pending operations")
	out.Println("  new <doc>                        Create empty local document")
	out.Println("  list [--remote]                  List local (or server) documents")
	out.Println("  insert <doc> <index> [text]      Insert text before visible index")
	out.Println("  delete <doc> <index> [length]    Delete characters starting at index")
	out.Println("  show <doc>                       Show local text of document")
	out.Println("  vector <doc>                     Show version vector of document")
	out.Println("  remote <doc>                     Show document as the server sees it")
	out.Println("  sync [doc...]                    Synchronize documents with server")
	out.Println("  watch <doc>                      Follow remote edits in real time")
	out.Println()
	out.Println("Examples:")
	out.Println("  export GOPHTEXT_ACCESS_KEY='correct horse battery'")
	out.Println("  gophtext register")
	out.Println("  gophtext new notes")
	out.Println("  gophtext insert notes 0 'hello world'")
	out.Println("  gophtext delete notes 0 1")
	out.Println("  gophtext sync notes")
	out.Println("  gophtext --server https://example.com watch notes")
}
