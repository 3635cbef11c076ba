package cli

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	clientapi "github.com/iudanet/gophtext/internal/client/api"
	"github.com/iudanet/gophtext/internal/client/auth"
	"github.com/iudanet/gophtext/internal/client/editor"
	"github.com/iudanet/gophtext/internal/client/storage"
	"github.com/iudanet/gophtext/internal/client/sync"
	"github.com/iudanet/gophtext/internal/crdt"
	"github.com/iudanet/gophtext/pkg/api"
)

const (
	testSite  = "0a0b0c0d"
	testKey   = "correct horse battery"
	testToken = "jwt-token"
)

func validToken(ctx context.Context) (string, error) {
	return testToken, nil
}

func TestCli_runRegister(t *testing.T) {
	expires := time.Unix(1_700_000_900, 0)
	authMock := &auth.ServiceMock{
		RegisterFunc: func(ctx context.Context, accessKey string) (*auth.RegisterResult, error) {
			return &auth.RegisterResult{SiteID: testSite}, nil
		},
		LoginFunc: func(ctx context.Context, siteID, accessKey string) (*auth.LoginResult, error) {
			return &auth.LoginResult{SiteID: siteID, ExpiresAt: expires}, nil
		},
	}
	mockIO, out := newTestIO("", testKey)
	c := &Cli{io: mockIO, authService: authMock, getenv: noEnv}

	require.NoError(t, c.Run(context.Background(), "register", nil))

	require.Len(t, authMock.RegisterCalls(), 1)
	assert.Equal(t, testKey, authMock.RegisterCalls()[0].AccessKey)
	require.Len(t, authMock.LoginCalls(), 1)
	assert.Equal(t, testSite, authMock.LoginCalls()[0].SiteID)
	assert.Contains(t, out.String(), "Site ID: "+testSite)
	assert.Contains(t, out.String(), expires.Format(time.RFC3339))
}

func TestCli_runRegister_LoginFails(t *testing.T) {
	authMock := &auth.ServiceMock{
		RegisterFunc: func(ctx context.Context, accessKey string) (*auth.RegisterResult, error) {
			return &auth.RegisterResult{SiteID: testSite}, nil
		},
		LoginFunc: func(ctx context.Context, siteID, accessKey string) (*auth.LoginResult, error) {
			return nil, errors.New("connection refused")
		},
	}
	mockIO, out := newTestIO("", testKey)
	c := &Cli{io: mockIO, authService: authMock, getenv: noEnv}

	err := c.Run(context.Background(), "register", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "site registered, but login failed")
	// Site id все равно показан, чтобы можно было выполнить login позже
	assert.Contains(t, out.String(), testSite)
}

func TestCli_runLogin(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		input  string
		prompt bool
	}{
		{name: "site from args", args: []string{testSite}},
		{name: "site from prompt", input: testSite, prompt: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authMock := &auth.ServiceMock{
				LoginFunc: func(ctx context.Context, siteID, accessKey string) (*auth.LoginResult, error) {
					return &auth.LoginResult{SiteID: siteID, ExpiresAt: time.Now().Add(time.Hour)}, nil
				},
			}
			mockIO, out := newTestIO(tt.input, testKey)
			c := &Cli{io: mockIO, authService: authMock, getenv: noEnv}

			require.NoError(t, c.Run(context.Background(), "login", tt.args))

			require.Len(t, authMock.LoginCalls(), 1)
			assert.Equal(t, testSite, authMock.LoginCalls()[0].SiteID)
			assert.Equal(t, testKey, authMock.LoginCalls()[0].AccessKey)
			assert.Equal(t, tt.prompt, len(mockIO.ReadInputCalls()) == 1)
			assert.Contains(t, out.String(), "Login successful")
		})
	}
}

func TestCli_runStatus(t *testing.T) {
	authMock := &auth.ServiceMock{
		GetAuthFunc: func(ctx context.Context) (*storage.AuthData, error) {
			return &storage.AuthData{
				SiteID:    testSite,
				ServerURL: "http://localhost:8080",
				ExpiresAt: time.Now().Add(time.Hour).Unix(),
			}, nil
		},
	}
	editorMock := &editor.ServiceMock{
		ListFunc: func(ctx context.Context) ([]string, error) {
			return []string{"notes", "todo"}, nil
		},
	}
	syncMock := &sync.ServiceMock{
		GetPendingCountFunc: func(ctx context.Context, name string) (int, error) {
			if name == "notes" {
				return 3, nil
			}
			return 0, nil
		},
	}
	mockIO, out := newTestIO("", "")
	c := &Cli{io: mockIO, authService: authMock, editor: editorMock, syncService: syncMock}

	require.NoError(t, c.Run(context.Background(), "status", nil))

	assert.Contains(t, out.String(), "Status: Authenticated")
	assert.Contains(t, out.String(), "Site ID: "+testSite)
	assert.Contains(t, out.String(), "Pending sync: 3 operation(s)")
}

func TestCli_runStatus_NotAuthenticated(t *testing.T) {
	authMock := &auth.ServiceMock{
		GetAuthFunc: func(ctx context.Context) (*storage.AuthData, error) {
			return nil, auth.ErrNotAuthenticated
		},
	}
	editorMock := &editor.ServiceMock{
		ListFunc: func(ctx context.Context) ([]string, error) { return nil, nil },
	}
	mockIO, out := newTestIO("", "")
	c := &Cli{io: mockIO, authService: authMock, editor: editorMock}

	require.NoError(t, c.Run(context.Background(), "status", nil))
	assert.Contains(t, out.String(), "Not authenticated")
	assert.Contains(t, out.String(), "No local documents.")
}

func TestCli_runNew(t *testing.T) {
	authMock := &auth.ServiceMock{
		GetAuthFunc: func(ctx context.Context) (*storage.AuthData, error) {
			return &storage.AuthData{SiteID: testSite}, nil
		},
	}
	editorMock := &editor.ServiceMock{
		CreateFunc: func(ctx context.Context, name string, site crdt.SiteID) error { return nil },
	}
	mockIO, _ := newTestIO("", "")
	c := &Cli{io: mockIO, authService: authMock, editor: editorMock}

	require.NoError(t, c.Run(context.Background(), "new", []string{"notes"}))

	require.Len(t, editorMock.CreateCalls(), 1)
	assert.Equal(t, "notes", editorMock.CreateCalls()[0].Name)
	assert.Equal(t, crdt.SiteID(testSite), editorMock.CreateCalls()[0].Site)
}

func TestCli_runNew_InvalidArgs(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "no name", args: nil},
		{name: "two names", args: []string{"a", "b"}},
		{name: "bad name", args: []string{"a/b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			editorMock := &editor.ServiceMock{}
			mockIO, _ := newTestIO("", "")
			c := &Cli{io: mockIO, editor: editorMock, authService: &auth.ServiceMock{}}

			require.Error(t, c.Run(context.Background(), "new", tt.args))
			assert.Empty(t, editorMock.CreateCalls())
		})
	}
}

func TestCli_runInsert(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		input     string
		wantIndex int
		wantText  string
	}{
		{name: "text from args", args: []string{"notes", "3", "hello", "world"}, wantIndex: 3, wantText: "hello world"},
		{name: "text from prompt", args: []string{"notes", "0"}, input: "typed", wantIndex: 0, wantText: "typed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			editorMock := &editor.ServiceMock{
				InsertFunc: func(ctx context.Context, name string, index int, text string) ([]crdt.Operation, error) {
					return crdt.New(testSite).Insert(0, text), nil
				},
			}
			mockIO, out := newTestIO(tt.input, "")
			c := &Cli{io: mockIO, editor: editorMock}

			require.NoError(t, c.Run(context.Background(), "insert", tt.args))

			require.Len(t, editorMock.InsertCalls(), 1)
			call := editorMock.InsertCalls()[0]
			assert.Equal(t, "notes", call.Name)
			assert.Equal(t, tt.wantIndex, call.Index)
			assert.Equal(t, tt.wantText, call.Text)
			assert.Contains(t, out.String(), "Inserted")
		})
	}
}

func TestCli_runInsert_Errors(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		input string
	}{
		{name: "missing index", args: []string{"notes"}},
		{name: "index not a number", args: []string{"notes", "x", "text"}},
		{name: "empty prompt text", args: []string{"notes", "0"}, input: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			editorMock := &editor.ServiceMock{}
			mockIO, _ := newTestIO(tt.input, "")
			c := &Cli{io: mockIO, editor: editorMock}

			require.Error(t, c.Run(context.Background(), "insert", tt.args))
			assert.Empty(t, editorMock.InsertCalls())
		})
	}
}

func TestCli_runDelete(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		deleted    int
		wantLength int
		wantOut    string
	}{
		{name: "default length", args: []string{"notes", "2"}, deleted: 1, wantLength: 1, wantOut: "Deleted 1 character(s)"},
		{name: "explicit length", args: []string{"notes", "2", "5"}, deleted: 5, wantLength: 5, wantOut: "Deleted 5 character(s)"},
		{name: "out of range", args: []string{"notes", "99"}, deleted: 0, wantLength: 1, wantOut: "Nothing to delete."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			editorMock := &editor.ServiceMock{
				DeleteFunc: func(ctx context.Context, name string, index, length int) ([]crdt.Operation, error) {
					return make([]crdt.Operation, tt.deleted), nil
				},
			}
			mockIO, out := newTestIO("", "")
			c := &Cli{io: mockIO, editor: editorMock}

			require.NoError(t, c.Run(context.Background(), "delete", tt.args))
			require.Len(t, editorMock.DeleteCalls(), 1)
			assert.Equal(t, tt.wantLength, editorMock.DeleteCalls()[0].Length)
			assert.Contains(t, out.String(), tt.wantOut)
		})
	}
}

func TestCli_runShow(t *testing.T) {
	editorMock := &editor.ServiceMock{
		TextFunc: func(ctx context.Context, name string) (string, error) {
			return "héllo", nil
		},
		VectorFunc: func(ctx context.Context, name string) (crdt.VersionVector, error) {
			return crdt.VersionVector{testSite: 5}, nil
		},
	}
	syncMock := &sync.ServiceMock{
		GetPendingCountFunc: func(ctx context.Context, name string) (int, error) { return 2, nil },
	}
	mockIO, out := newTestIO("", "")
	c := &Cli{io: mockIO, editor: editorMock, syncService: syncMock}

	require.NoError(t, c.Run(context.Background(), "show", []string{"notes"}))

	assert.Contains(t, out.String(), "=== Document notes ===")
	assert.Contains(t, out.String(), "Length:  5 character(s)")
	assert.Contains(t, out.String(), "Pending: 2 operation(s)")
	assert.Contains(t, out.String(), "héllo")
	assert.Contains(t, out.String(), crdt.VersionVector{testSite: 5}.String())
}

func TestCli_runShow_DocumentNotFound(t *testing.T) {
	editorMock := &editor.ServiceMock{
		TextFunc: func(ctx context.Context, name string) (string, error) {
			return "", storage.ErrDocumentNotFound
		},
	}
	mockIO, _ := newTestIO("", "")
	c := &Cli{io: mockIO, editor: editorMock}

	err := c.Run(context.Background(), "show", []string{"missing"})
	assert.ErrorIs(t, err, storage.ErrDocumentNotFound)
}

func TestCli_runRemote(t *testing.T) {
	apiMock := &clientapi.ClientAPIMock{
		GetDocumentFunc: func(ctx context.Context, accessToken, documentID string) (*api.DocumentResponse, error) {
			return &api.DocumentResponse{
				ID:         documentID,
				Text:       "server text",
				Vector:     api.VersionVector{testSite: 11},
				Operations: 11,
			}, nil
		},
	}
	authMock := &auth.ServiceMock{AccessTokenFunc: validToken}
	mockIO, out := newTestIO("", "")
	c := &Cli{io: mockIO, apiClient: apiMock, authService: authMock}

	require.NoError(t, c.Run(context.Background(), "remote", []string{"notes"}))

	require.Len(t, apiMock.GetDocumentCalls(), 1)
	assert.Equal(t, testToken, apiMock.GetDocumentCalls()[0].AccessToken)
	assert.Contains(t, out.String(), "server copy")
	assert.Contains(t, out.String(), "server text")
	assert.Contains(t, out.String(), "Operations: 11")
}

func TestCli_runList(t *testing.T) {
	t.Run("local", func(t *testing.T) {
		editorMock := &editor.ServiceMock{
			ListFunc: func(ctx context.Context) ([]string, error) { return []string{"notes", "todo"}, nil },
		}
		mockIO, out := newTestIO("", "")
		c := &Cli{io: mockIO, editor: editorMock}

		require.NoError(t, c.Run(context.Background(), "list", nil))
		assert.Contains(t, out.String(), "Local Documents")
		assert.Contains(t, out.String(), "  notes\n")
		assert.Contains(t, out.String(), "Total: 2 document(s)")
	})

	t.Run("remote", func(t *testing.T) {
		apiMock := &clientapi.ClientAPIMock{
			ListDocumentsFunc: func(ctx context.Context, accessToken string) (*api.DocumentListResponse, error) {
				return &api.DocumentListResponse{Documents: []string{"shared"}}, nil
			},
		}
		mockIO, out := newTestIO("", "")
		c := &Cli{io: mockIO, apiClient: apiMock, authService: &auth.ServiceMock{AccessTokenFunc: validToken}}

		require.NoError(t, c.Run(context.Background(), "list", []string{"--remote"}))
		assert.Contains(t, out.String(), "Server Documents")
		assert.Contains(t, out.String(), "  shared\n")
	})

	t.Run("empty", func(t *testing.T) {
		editorMock := &editor.ServiceMock{
			ListFunc: func(ctx context.Context) ([]string, error) { return nil, nil },
		}
		mockIO, out := newTestIO("", "")
		c := &Cli{io: mockIO, editor: editorMock}

		require.NoError(t, c.Run(context.Background(), "list", nil))
		assert.Contains(t, out.String(), "No documents found.")
	})
}

func TestCli_runSync(t *testing.T) {
	editorMock := &editor.ServiceMock{
		ListFunc: func(ctx context.Context) ([]string, error) { return []string{"notes", "todo"}, nil },
	}
	syncMock := &sync.ServiceMock{
		SyncFunc: func(ctx context.Context, name, accessToken string) (*sync.SyncResult, error) {
			return &sync.SyncResult{Pushed: 2, Accepted: 2, Pulled: 1, Inserted: 1, Attempts: 1}, nil
		},
	}
	mockIO, out := newTestIO("", "")
	c := &Cli{io: mockIO, editor: editorMock, syncService: syncMock, authService: &auth.ServiceMock{AccessTokenFunc: validToken}}

	require.NoError(t, c.Run(context.Background(), "sync", nil))

	calls := syncMock.SyncCalls()
	require.Len(t, calls, 2)
	assert.Equal(t, "notes", calls[0].Name)
	assert.Equal(t, "todo", calls[1].Name)
	assert.Equal(t, testToken, calls[0].AccessToken)
	assert.Contains(t, out.String(), "✓ notes: pushed 2 (accepted 2), pulled 1, +1/-0 characters")
}

func TestCli_runSync_PartialFailure(t *testing.T) {
	syncMock := &sync.ServiceMock{
		SyncFunc: func(ctx context.Context, name, accessToken string) (*sync.SyncResult, error) {
			if name == "broken" {
				return nil, errors.New("server unavailable")
			}
			return &sync.SyncResult{Attempts: 1}, nil
		},
	}
	mockIO, out := newTestIO("", "")
	c := &Cli{io: mockIO, syncService: syncMock, authService: &auth.ServiceMock{AccessTokenFunc: validToken}}

	err := c.Run(context.Background(), "sync", []string{"notes", "broken"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 2")
	// Ошибка одного документа не мешает синхронизировать остальные
	assert.Len(t, syncMock.SyncCalls(), 2)
	assert.Contains(t, out.String(), "✗ broken: server unavailable")
}

func TestCli_runSync_TokenExpired(t *testing.T) {
	authMock := &auth.ServiceMock{
		AccessTokenFunc: func(ctx context.Context) (string, error) {
			return "", auth.ErrTokenExpired
		},
	}
	syncMock := &sync.ServiceMock{}
	mockIO, _ := newTestIO("", "")
	c := &Cli{io: mockIO, syncService: syncMock, authService: authMock}

	err := c.Run(context.Background(), "sync", []string{"notes"})
	assert.ErrorIs(t, err, auth.ErrTokenExpired)
	assert.Empty(t, syncMock.SyncCalls())
}

func TestCli_runWatch(t *testing.T) {
	const other = "1a1b1c1d"

	local := crdt.VersionVector{testSite: 3}
	editorMock := &editor.ServiceMock{
		TextFunc: func(ctx context.Context, name string) (string, error) {
			return "hi", nil
		},
		VectorFunc: func(ctx context.Context, name string) (crdt.VersionVector, error) {
			return local, nil
		},
	}
	syncMock := &sync.ServiceMock{
		SyncFunc: func(ctx context.Context, name, accessToken string) (*sync.SyncResult, error) {
			if len(local) == 1 {
				return &sync.SyncResult{}, nil
			}
			return &sync.SyncResult{Pulled: 2, Inserted: 2}, nil
		},
	}
	apiMock := &clientapi.ClientAPIMock{
		WatchFunc: func(ctx context.Context, accessToken, documentID string, handle func(api.WatchMessage) error) error {
			// Эхо собственных операций уже покрыто локальным вектором
			if err := handle(api.WatchMessage{DocumentID: documentID, Site: testSite, Vector: api.VersionVector{testSite: 3}}); err != nil {
				return err
			}
			local = crdt.VersionVector{testSite: 3, other: 0}
			return handle(api.WatchMessage{DocumentID: documentID, Site: other, Operations: 2, Vector: api.VersionVector{testSite: 3, other: 2}})
		},
	}
	mockIO, out := newTestIO("", "")
	c := &Cli{
		io:          mockIO,
		apiClient:   apiMock,
		editor:      editorMock,
		syncService: syncMock,
		authService: &auth.ServiceMock{AccessTokenFunc: validToken},
	}

	require.NoError(t, c.Run(context.Background(), "watch", []string{"notes"}))

	// Начальная синхронизация и одна по уведомлению другого сайта
	require.Len(t, syncMock.SyncCalls(), 2)
	// Текст напечатан после начальной синхронизации и после изменения
	assert.Len(t, editorMock.TextCalls(), 2)
	assert.Contains(t, out.String(), `Watching "notes"`)
}

func TestCli_runWatch_InvalidMessage(t *testing.T) {
	apiMock := &clientapi.ClientAPIMock{
		WatchFunc: func(ctx context.Context, accessToken, documentID string, handle func(api.WatchMessage) error) error {
			return handle(api.WatchMessage{Vector: api.VersionVector{"not-a-site": 1}})
		},
	}
	editorMock := &editor.ServiceMock{
		TextFunc: func(ctx context.Context, name string) (string, error) { return "", nil },
	}
	syncMock := &sync.ServiceMock{
		SyncFunc: func(ctx context.Context, name, accessToken string) (*sync.SyncResult, error) {
			return &sync.SyncResult{}, nil
		},
	}
	mockIO, _ := newTestIO("", "")
	c := &Cli{
		io:          mockIO,
		apiClient:   apiMock,
		editor:      editorMock,
		syncService: syncMock,
		authService: &auth.ServiceMock{AccessTokenFunc: validToken},
	}

	err := c.Run(context.Background(), "watch", []string{"notes"})
	assert.ErrorIs(t, err, crdt.ErrInvalidID)
	assert.Len(t, syncMock.SyncCalls(), 1)
}

func TestCovers(t *testing.T) {
	local := crdt.VersionVector{testSite: 5, "1a1b1c1d": 2}

	assert.True(t, covers(local, crdt.VersionVector{}))
	assert.True(t, covers(local, crdt.VersionVector{testSite: 5}))
	assert.True(t, covers(local, crdt.VersionVector{"2a2b2c2d": 0}))
	assert.False(t, covers(local, crdt.VersionVector{testSite: 6}))
	assert.False(t, covers(local, crdt.VersionVector{"2a2b2c2d": 1}))
}
