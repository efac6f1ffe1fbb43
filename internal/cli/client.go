package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"time"
)

// --- Request types ---

// CreateItemRequest — создание item.
type CreateItemRequest struct {
	BoardID  string `json:"boardId"`
	ItemName string `json:"itemName"`
}

// CreateSubitemRequest — создание subitem.
type CreateSubitemRequest struct {
	ParentItemID string `json:"parentItemId"`
	ItemName     string `json:"itemName"`
}

// --- API error wrapper ---

type errorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// --- Client ---

// Client — HTTP-клиент для monday-proxy API.
//
// Прокси ретранслирует ответы monday.com как есть, поэтому методы
// возвращают json.RawMessage без декодирования в типы.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient создаёт клиент для API.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// CreateItem создаёт item на доске.
func (c *Client) CreateItem(boardID, itemName string) (json.RawMessage, error) {
	return c.postJSON("/create-item", CreateItemRequest{
		BoardID:  boardID,
		ItemName: itemName,
	})
}

// CreateSubitem создаёт subitem у родительского item.
func (c *Client) CreateSubitem(parentItemID, itemName string) (json.RawMessage, error) {
	return c.postJSON("/create-subitem", CreateSubitemRequest{
		ParentItemID: parentItemID,
		ItemName:     itemName,
	})
}

// Upload загружает файл path в колонку columnID item'а itemID.
func (c *Client) Upload(itemID, columnID, path string) (json.RawMessage, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)

	part, err := w.CreateFormFile("file", filepath.Base(path))
	if err != nil {
		return nil, fmt.Errorf("create form file: %w", err)
	}
	if _, err := io.Copy(part, f); err != nil {
		return nil, fmt.Errorf("copy file: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("close form: %w", err)
	}

	params := url.Values{}
	params.Set("item_id", itemID)
	params.Set("column_id", columnID)

	return c.post("/upload?"+params.Encode(), w.FormDataContentType(), buf)
}

// --- HTTP helpers ---

func (c *Client) postJSON(path string, body any) (json.RawMessage, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}
	return c.post(path, "application/json", bytes.NewReader(data))
}

func (c *Client) post(path, contentType string, body io.Reader) (json.RawMessage, error) {
	req, err := http.NewRequest(http.MethodPost, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		var er errorResponse
		if err := json.Unmarshal(respBody, &er); err != nil || er.Error.Code == "" {
			return nil, fmt.Errorf("API error: HTTP %d", resp.StatusCode)
		}
		return nil, fmt.Errorf("%s: %s", er.Error.Code, er.Error.Message)
	}

	return json.RawMessage(respBody), nil
}
