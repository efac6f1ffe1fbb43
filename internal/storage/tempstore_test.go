package storage

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"testing"
)

func newTestStore(t *testing.T) *TempStore {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewTempStore(t.TempDir(), logger)
}

func TestTempStore_SaveReadRemove(t *testing.T) {
	store := newTestStore(t)

	stored, err := store.Save(strings.NewReader("payload"), "doc.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stored.Name != "doc.txt" {
		t.Errorf("expected original name, got %s", stored.Name)
	}
	if stored.Size != int64(len("payload")) {
		t.Errorf("expected size %d, got %d", len("payload"), stored.Size)
	}

	data, err := store.Read(stored.Path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(data) != "payload" {
		t.Errorf("expected payload, got %s", data)
	}

	store.Remove(stored.Path)
	if _, err := os.Stat(stored.Path); !os.IsNotExist(err) {
		t.Error("file should be removed")
	}
}

func TestTempStore_UniquePaths(t *testing.T) {
	store := newTestStore(t)

	// Одинаковые имена не конфликтуют: каждый файл получает свой путь
	a, err := store.Save(strings.NewReader("a"), "same.bin")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := store.Save(strings.NewReader("b"), "same.bin")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if a.Path == b.Path {
		t.Error("paths should be unique")
	}
}

func TestTempStore_RemoveMissingDoesNotPanic(t *testing.T) {
	store := newTestStore(t)

	// Повторное удаление — только запись в лог
	store.Remove("/nonexistent/path")
}
