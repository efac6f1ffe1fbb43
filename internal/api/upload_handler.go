package api

import (
	"net/http"
)

// Лимит размера multipart формы, удерживаемой в памяти.
const maxUploadMemory = 32 << 20 // 32 MB

// Upload принимает файл и пересылает его в колонку monday.com.
// POST /upload?item_id=...&column_id=...
func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	itemID := r.URL.Query().Get("item_id")
	columnID := r.URL.Query().Get("column_id")

	// Параметры проверяются до чтения формы: без них upstream не вызывается.
	if itemID == "" || columnID == "" {
		BadRequest(w, "item_id and column_id are required")
		return
	}

	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		BadRequest(w, "invalid multipart body")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		BadRequest(w, "no file provided")
		return
	}
	defer file.Close()

	stored, err := h.store.Save(file, header.Filename)
	if err != nil {
		InternalError(w, h.logger, err)
		return
	}
	// Временный файл удаляется ровно один раз, независимо от исхода
	// upstream вызова. Ошибка удаления логируется внутри store.
	defer h.store.Remove(stored.Path)

	data, err := h.store.Read(stored.Path)
	if err != nil {
		InternalError(w, h.logger, err)
		return
	}

	result, err := h.monday.UploadFile(r.Context(), itemID, columnID, stored.Name, data)
	if err != nil {
		UpstreamError(w, h.logger, err)
		return
	}

	Relay(w, result)
}
