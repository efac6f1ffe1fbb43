package monday

import (
	"bytes"
	"encoding/json"
	"io"
	"mime"
	"mime/multipart"
	"strings"
	"testing"
)

const testMutation = `mutation ($file: File!, $itemId: ID!, $columnId: String!) { add_file_to_column (item_id: $itemId, column_id: $columnId, file: $file) { id } }`

// parseMultipart разбирает собранное тело обратно в части.
func parseMultipart(t *testing.T, body []byte, contentType string) map[string][]byte {
	t.Helper()

	mediaType, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		t.Fatalf("failed to parse content type: %v", err)
	}
	if mediaType != "multipart/form-data" {
		t.Fatalf("expected multipart/form-data, got %s", mediaType)
	}

	parts := map[string][]byte{}
	mr := multipart.NewReader(bytes.NewReader(body), params["boundary"])
	for {
		part, err := mr.NextPart()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("failed to read part: %v", err)
		}
		data, err := io.ReadAll(part)
		if err != nil {
			t.Fatalf("failed to read part body: %v", err)
		}
		parts[part.FormName()] = data
	}
	return parts
}

func TestEncodeUpload_RoundTrip(t *testing.T) {
	fileBytes := []byte{0x89, 0x50, 0x4e, 0x47, 0x00, 0x01, 0x02}

	body, contentType, err := encodeUpload(testMutation, map[string]any{
		"itemId":   "42",
		"columnId": "files",
	}, "report.png", fileBytes)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	parts := parseMultipart(t, body, contentType)

	// Текст мутации возвращается без изменений
	if string(parts["query"]) != testMutation {
		t.Errorf("query part mismatch: %s", parts["query"])
	}

	// variables содержит связанные значения и null-слот файла
	var vars map[string]any
	if err := json.Unmarshal(parts["variables"], &vars); err != nil {
		t.Fatalf("variables part is not JSON: %v", err)
	}
	if vars["itemId"] != "42" || vars["columnId"] != "files" {
		t.Errorf("unexpected variables: %v", vars)
	}
	if v, ok := vars["file"]; !ok || v != nil {
		t.Errorf("expected null file slot, got %v", vars["file"])
	}

	// map связывает поле file с variables.file
	var m map[string][]string
	if err := json.Unmarshal(parts["map"], &m); err != nil {
		t.Fatalf("map part is not JSON: %v", err)
	}
	if len(m["file"]) != 1 || m["file"][0] != "variables.file" {
		t.Errorf("unexpected map part: %v", m)
	}

	// Байты файла возвращаются без изменений
	if !bytes.Equal(parts["file"], fileBytes) {
		t.Errorf("file bytes mismatch: %v", parts["file"])
	}
}

func TestEncodeUpload_FilenameAndContentType(t *testing.T) {
	body, contentType, err := encodeUpload(testMutation, nil, "данные с пробелами.bin", []byte("x"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		t.Fatalf("failed to parse content type: %v", err)
	}

	mr := multipart.NewReader(bytes.NewReader(body), params["boundary"])
	for {
		part, err := mr.NextPart()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("failed to read part: %v", err)
		}
		if part.FormName() != "file" {
			continue
		}
		if part.FileName() != "данные с пробелами.bin" {
			t.Errorf("unexpected filename: %s", part.FileName())
		}
		if ct := part.Header.Get("Content-Type"); ct != "application/octet-stream" {
			t.Errorf("expected octet-stream, got %s", ct)
		}
		return
	}
	t.Fatal("file part not found")
}

func TestNewBoundary_Unique(t *testing.T) {
	a := newBoundary()
	b := newBoundary()
	if a == b {
		t.Error("boundaries should be unique")
	}
	if !strings.HasPrefix(a, "MondayFormBoundary") {
		t.Errorf("unexpected boundary format: %s", a)
	}
}
