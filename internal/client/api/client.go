package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gorilla/websocket"

	"github.com/iudanet/gophtext/pkg/api"
)

//go:generate moq -out client_mock.go . ClientAPI

// ClientAPI описывает запросы клиента к серверу
type ClientAPI interface {
	Register(ctx context.Context, req api.RegisterRequest) (*api.RegisterResponse, error)
	Token(ctx context.Context, req api.TokenRequest) (*api.TokenResponse, error)
	Sync(ctx context.Context, accessToken, documentID string, req api.SyncRequest) (*api.SyncResponse, error)
	GetDocument(ctx context.Context, accessToken, documentID string) (*api.DocumentResponse, error)
	ListDocuments(ctx context.Context, accessToken string) (*api.DocumentListResponse, error)
	Watch(ctx context.Context, accessToken, documentID string, handle func(api.WatchMessage) error) error
}

// StatusError ошибка с HTTP статусом ответа сервера
type StatusError struct {
	Message    string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("server error (%d): %s", e.StatusCode, e.Message)
}

// IsClientError сообщает, что сервер отклонил запрос (4xx) и повтор не поможет
func IsClientError(err error) bool {
	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		return false
	}
	return statusErr.StatusCode >= 400 && statusErr.StatusCode < 500
}

// Client представляет HTTP клиент для взаимодействия с сервером
type Client struct {
	httpClient *http.Client
	dialer     *websocket.Dialer
	baseURL    string
}

var _ ClientAPI = (*Client)(nil)

// NewClient создает новый API клиент
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// Копируем заголовки Authorization при редиректе
				if len(via) > 0 && via[0].Header.Get("Authorization") != "" {
					req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
				}
				return nil
			},
		},
		dialer: &websocket.Dialer{
			HandshakeTimeout: 10 * time.Second,
		},
	}
}

// Register регистрирует новый сайт
func (c *Client) Register(ctx context.Context, req api.RegisterRequest) (*api.RegisterResponse, error) {
	var resp api.RegisterResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/v1/auth/register", "", req, &resp); err != nil {
		return nil, fmt.Errorf("register request failed: %w", err)
	}
	return &resp, nil
}

// Token получает access token по site id и ключу доступа
func (c *Client) Token(ctx context.Context, req api.TokenRequest) (*api.TokenResponse, error) {
	var resp api.TokenResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/v1/auth/token", "", req, &resp); err != nil {
		return nil, fmt.Errorf("token request failed: %w", err)
	}
	return &resp, nil
}

// Sync отправляет локальные операции документа и получает недостающие
func (c *Client) Sync(ctx context.Context, accessToken, documentID string, req api.SyncRequest) (*api.SyncResponse, error) {
	var resp api.SyncResponse
	path := "/api/v1/documents/" + url.PathEscape(documentID) + "/sync"
	if err := c.doRequest(ctx, http.MethodPost, path, accessToken, req, &resp); err != nil {
		return nil, fmt.Errorf("sync request failed: %w", err)
	}
	return &resp, nil
}

// GetDocument получает текст документа в том виде, в каком его видит сервер
func (c *Client) GetDocument(ctx context.Context, accessToken, documentID string) (*api.DocumentResponse, error) {
	var resp api.DocumentResponse
	path := "/api/v1/documents/" + url.PathEscape(documentID)
	if err := c.doRequest(ctx, http.MethodGet, path, accessToken, nil, &resp); err != nil {
		return nil, fmt.Errorf("get document request failed: %w", err)
	}
	return &resp, nil
}

// ListDocuments получает список документов на сервере
func (c *Client) ListDocuments(ctx context.Context, accessToken string) (*api.DocumentListResponse, error) {
	var resp api.DocumentListResponse
	if err := c.doRequest(ctx, http.MethodGet, "/api/v1/documents", accessToken, nil, &resp); err != nil {
		return nil, fmt.Errorf("list documents request failed: %w", err)
	}
	return &resp, nil
}

// Watch подписывается на новые операции документа по WebSocket и вызывает handle
// для каждого сообщения. Возвращает nil при отмене ctx, иначе ошибку соединения
// или ошибку handle.
func (c *Client) Watch(ctx context.Context, accessToken, documentID string, handle func(api.WatchMessage) error) error {
	wsURL, err := c.websocketURL("/api/v1/documents/" + url.PathEscape(documentID) + "/watch")
	if err != nil {
		return err
	}

	header := http.Header{}
	header.Set("Authorization", "Bearer "+accessToken)

	conn, resp, err := c.dialer.DialContext(ctx, wsURL, header)
	if err != nil {
		if resp != nil {
			return &StatusError{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		}
		return fmt.Errorf("websocket dial failed: %w", err)
	}
	defer func() {
		_ = conn.Close()
	}()

	// Закрываем соединение при отмене контекста, чтобы разблокировать ReadJSON
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			_ = conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
				time.Now().Add(time.Second))
			_ = conn.Close()
		case <-done:
		}
	}()

	for {
		var msg api.WatchMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if ctx.Err() != nil || websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				return nil
			}
			return fmt.Errorf("websocket read failed: %w", err)
		}

		if err := handle(msg); err != nil {
			return err
		}
	}
}

func (c *Client) websocketURL(path string) (string, error) {
	u, err := url.Parse(c.baseURL + path)
	if err != nil {
		return "", fmt.Errorf("invalid server url: %w", err)
	}

	switch u.Scheme {
	case "https":
		u.Scheme = "wss"
	default:
		u.Scheme = "ws"
	}

	return u.String(), nil
}

// doRequest выполняет HTTP запрос
func (c *Client) doRequest(ctx context.Context, method, path, accessToken string, body, result any) error {
	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+accessToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	// Проверяем статус код
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		statusErr := &StatusError{StatusCode: resp.StatusCode, Message: strings.TrimSpace(string(respBody))}
		var errResp api.ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Message != "" {
			statusErr.Message = errResp.Message
		} else if err == nil && errResp.Error != "" {
			statusErr.Message = errResp.Error
		}
		return statusErr
	}

	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}
