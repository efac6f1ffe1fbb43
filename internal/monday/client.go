package monday

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	// Значения по умолчанию.
	defaultTimeout  = 30 * time.Second
	maxResponseBody = 10 * 1024 * 1024 // 10 MB

	// Пути monday.com API: /v2 для мутаций, /v2/file для загрузок.
	queryPath  = "/v2"
	uploadPath = "/v2/file"
)

var upstreamRequests = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "monday_upstream_requests_total",
	Help: "Total requests issued to the monday.com API",
}, []string{"path", "outcome"})

// Client — клиент monday.com GraphQL API.
//
// На каждый входящий запрос прокси выполняется ровно один исходящий POST.
// Все вызовы ограничены таймаутом клиента и контекстом входящего запроса.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient создаёт клиент для baseURL с токеном token.
func NewClient(baseURL, token string, logger *slog.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		token:   token,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		logger: logger,
	}
}

// CreateItem создаёт item на доске boardID.
//
// Значения передаются как bound variables: текст пользователя никогда
// не вклеивается в текст мутации.
func (c *Client) CreateItem(ctx context.Context, boardID any, itemName string) (json.RawMessage, error) {
	query := `mutation ($boardId: ID!, $itemName: String!) { create_item (board_id: $boardId, item_name: $itemName) { id } }`
	return c.Query(ctx, query, map[string]any{
		"boardId":  boardID,
		"itemName": itemName,
	})
}

// CreateSubitem создаёт subitem у родительского item.
func (c *Client) CreateSubitem(ctx context.Context, parentItemID any, itemName string) (json.RawMessage, error) {
	query := `mutation ($parentItemId: ID!, $itemName: String!) { create_subitem (parent_item_id: $parentItemId, item_name: $itemName) { id } }`
	return c.Query(ctx, query, map[string]any{
		"parentItemId": parentItemID,
		"itemName":     itemName,
	})
}

// Query выполняет GraphQL запрос к /v2 и возвращает тело ответа как JSON.
func (c *Client) Query(ctx context.Context, query string, variables map[string]any) (json.RawMessage, error) {
	payload, err := json.Marshal(map[string]any{
		"query":     query,
		"variables": variables,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal query: %w", err)
	}

	return c.post(ctx, queryPath, "application/json", payload)
}

// UploadFile загружает файл в колонку columnID item'а itemID через /v2/file.
func (c *Client) UploadFile(ctx context.Context, itemID, columnID, filename string, file []byte) (json.RawMessage, error) {
	query := `mutation ($file: File!, $itemId: ID!, $columnId: String!) { add_file_to_column (item_id: $itemId, column_id: $columnId, file: $file) { id } }`
	body, contentType, err := encodeUpload(query, map[string]any{
		"itemId":   itemID,
		"columnId": columnID,
	}, filename, file)
	if err != nil {
		return nil, fmt.Errorf("encode upload: %w", err)
	}

	return c.post(ctx, uploadPath, contentType, body)
}

// post выполняет один POST к upstream и валидирует тело ответа как JSON.
func (c *Client) post(ctx context.Context, path, contentType string, body []byte) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		upstreamRequests.WithLabelValues(path, "transport_error").Inc()
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer resp.Body.Close()

	// Тело накапливается целиком, стримингового парсинга нет.
	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		upstreamRequests.WithLabelValues(path, "transport_error").Inc()
		return nil, fmt.Errorf("%w: read body: %v", ErrTransport, err)
	}

	if !json.Valid(respBody) {
		upstreamRequests.WithLabelValues(path, "bad_response").Inc()
		c.logger.Error("upstream returned non-JSON body",
			"path", path,
			"status", resp.StatusCode,
		)
		return nil, fmt.Errorf("%w: status %d", ErrBadResponse, resp.StatusCode)
	}

	upstreamRequests.WithLabelValues(path, "ok").Inc()
	return json.RawMessage(respBody), nil
}
