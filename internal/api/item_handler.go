package api

import (
	"encoding/json"
	"net/http"
)

// CreateItem создаёт item на доске monday.com.
// POST /create-item {"boardId": ..., "itemName": ...}
func (h *Handler) CreateItem(w http.ResponseWriter, r *http.Request) {
	var req CreateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		BadRequest(w, "invalid request body")
		return
	}

	// Валидация до любого I/O: без обоих полей upstream не вызывается.
	if !present(req.BoardID) || req.ItemName == "" {
		BadRequest(w, "boardId and itemName are required")
		return
	}

	result, err := h.monday.CreateItem(r.Context(), req.BoardID, req.ItemName)
	if err != nil {
		UpstreamError(w, h.logger, err)
		return
	}

	Relay(w, result)
}

// CreateSubitem создаёт subitem у родительского item.
// POST /create-subitem {"parentItemId": ..., "itemName": ...}
func (h *Handler) CreateSubitem(w http.ResponseWriter, r *http.Request) {
	var req CreateSubitemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		BadRequest(w, "invalid request body")
		return
	}

	if !present(req.ParentItemID) || req.ItemName == "" {
		BadRequest(w, "parentItemId and itemName are required")
		return
	}

	result, err := h.monday.CreateSubitem(r.Context(), req.ParentItemID, req.ItemName)
	if err != nil {
		UpstreamError(w, h.logger, err)
		return
	}

	Relay(w, result)
}

// Health — проверка живости. Не зависит от доступности monday.com.
// GET /health
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}
