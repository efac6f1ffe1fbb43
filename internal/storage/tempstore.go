package storage

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// TempStore сохраняет входящие загрузки во временные файлы.
//
// Каждая загрузка получает уникальный сгенерированный путь, поэтому
// конкурентные запросы не конфликтуют. Файл живёт ровно один запрос:
// сохранили, прочитали для upstream вызова, удалили.
type TempStore struct {
	dir    string
	logger *slog.Logger
}

// NewTempStore создаёт TempStore поверх каталога dir.
func NewTempStore(dir string, logger *slog.Logger) *TempStore {
	return &TempStore{dir: dir, logger: logger}
}

// StoredFile — временный файл одной загрузки.
type StoredFile struct {
	// Path — сгенерированный путь на диске.
	Path string

	// Name — оригинальное имя файла из запроса.
	Name string

	// Size — размер в байтах.
	Size int64
}

// Save записывает содержимое r во временный файл с уникальным именем.
func (s *TempStore) Save(r io.Reader, filename string) (*StoredFile, error) {
	path := filepath.Join(s.dir, uuid.NewString()+filepath.Ext(filename))

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}

	size, err := io.Copy(f, r)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		s.Remove(path)
		return nil, fmt.Errorf("write temp file: %w", err)
	}

	return &StoredFile{Path: path, Name: filename, Size: size}, nil
}

// Read возвращает содержимое сохранённого файла целиком.
func (s *TempStore) Read(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read temp file: %w", err)
	}
	return data, nil
}

// Remove удаляет временный файл. Ошибка удаления логируется и не
// возвращается: ответ клиенту от неё не зависит.
func (s *TempStore) Remove(path string) {
	if err := os.Remove(path); err != nil {
		s.logger.Error("failed to remove temp file", "path", path, "error", err)
	}
}
