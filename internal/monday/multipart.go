package monday

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"strings"

	"github.com/google/uuid"
)

// Имя поля файла и его путь в variables. map-часть связывает одно с другим,
// как того требует GraphQL multipart request specification.
const (
	fileFieldName    = "file"
	fileVariablePath = "variables.file"
)

// newBoundary генерирует уникальную границу для multipart тела.
func newBoundary() string {
	return "MondayFormBoundary" + strings.ReplaceAll(uuid.NewString(), "-", "")
}

// encodeUpload собирает multipart/form-data тело для загрузки файла через
// GraphQL мутацию. Структура тела:
//
//  1. часть "query" — текст мутации с переменной $file
//  2. часть "variables" — JSON переменных, слот файла = null
//  3. часть "map" — {"file": ["variables.file"]}
//  4. часть "file" — сырые байты с оригинальным именем, octet-stream
//
// Всё тело собирается в память; Content-Length считается из итогового буфера.
func encodeUpload(query string, variables map[string]any, filename string, file []byte) (body []byte, contentType string, err error) {
	// Слот файла в variables — всегда null-заглушка.
	vars := make(map[string]any, len(variables)+1)
	for k, v := range variables {
		vars[k] = v
	}
	vars[fileFieldName] = nil

	varsJSON, err := json.Marshal(vars)
	if err != nil {
		return nil, "", fmt.Errorf("marshal variables: %w", err)
	}

	mapJSON, err := json.Marshal(map[string][]string{
		fileFieldName: {fileVariablePath},
	})
	if err != nil {
		return nil, "", fmt.Errorf("marshal map: %w", err)
	}

	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)
	if err := w.SetBoundary(newBoundary()); err != nil {
		return nil, "", fmt.Errorf("set boundary: %w", err)
	}

	// Порядок частей фиксирован: query, variables, map, затем файл.
	fields := []struct {
		name  string
		value string
	}{
		{"query", query},
		{"variables", string(varsJSON)},
		{"map", string(mapJSON)},
	}
	for _, f := range fields {
		if err := w.WriteField(f.name, f.value); err != nil {
			return nil, "", fmt.Errorf("write %s part: %w", f.name, err)
		}
	}

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, fileFieldName, filename))
	header.Set("Content-Type", "application/octet-stream")

	part, err := w.CreatePart(header)
	if err != nil {
		return nil, "", fmt.Errorf("create file part: %w", err)
	}
	if _, err := part.Write(file); err != nil {
		return nil, "", fmt.Errorf("write file part: %w", err)
	}

	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("close multipart body: %w", err)
	}

	return buf.Bytes(), w.FormDataContentType(), nil
}
