package itemshandler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"backoffice/internal/domain/items"
	"backoffice/internal/transport/http/api"
	"backoffice/internal/transport/http/shared"
)

type Handler struct {
	Store items.StoreAPI
}

func NewHandler(store items.StoreAPI) *Handler {
	return &Handler{Store: store}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/items", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Post("/sync", h.handleSync)
		r.Get("/{id}", h.handleGet)
		r.Post("/", h.handleCreate)
		r.Put("/{id}", h.handleUpdate)
		r.Delete("/{id}", h.handleDelete)
	})
}

type itemRequest struct {
	ItemName string `json:"item_name"`
	Stock    *int   `json:"stock"`
	Unit     string `json:"unit"`
}

type syncRequest struct {
	Items json.RawMessage `json:"items"`
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	filter := items.ListFilter{
		Search: r.URL.Query().Get("search"),
		Limit:  shared.QueryInt(r, "limit", 0),
		Offset: shared.QueryInt(r, "offset", 0),
	}

	list, err := h.Store.List(r.Context(), filter)
	if err != nil {
		api.FailError(w, http.StatusInternalServerError, "Gagal mengambil data barang", err)
		return
	}
	api.SuccessData(w, list)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	id, err := shared.IDParam(r, "id")
	if err != nil {
		api.Fail(w, http.StatusNotFound, "Barang tidak ditemukan")
		return
	}

	item, err := h.Store.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, items.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "Barang tidak ditemukan")
			return
		}
		api.FailError(w, http.StatusInternalServerError, "Gagal mengambil data barang", err)
		return
	}
	api.SuccessData(w, item)
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var payload itemRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "Nama barang, stok, dan satuan wajib diisi")
		return
	}
	if payload.ItemName == "" || payload.Stock == nil || payload.Unit == "" {
		api.Fail(w, http.StatusBadRequest, "Nama barang, stok, dan satuan wajib diisi")
		return
	}

	item, err := h.Store.Create(r.Context(), payload.ItemName, *payload.Stock, payload.Unit)
	if err != nil {
		api.FailError(w, http.StatusInternalServerError, "Gagal menambahkan barang", err)
		return
	}
	api.Created(w, "Barang berhasil ditambahkan", item)
}

func (h *Handler) handleSync(w http.ResponseWriter, r *http.Request) {
	var payload syncRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "Data items tidak valid")
		return
	}
	if len(payload.Items) == 0 {
		api.Fail(w, http.StatusBadRequest, "Data items tidak valid")
		return
	}

	var feed []items.SyncItem
	if err := json.Unmarshal(payload.Items, &feed); err != nil {
		api.Fail(w, http.StatusBadRequest, "Data items tidak valid")
		return
	}

	synced, err := h.Store.Sync(r.Context(), feed)
	if err != nil {
		api.FailError(w, http.StatusInternalServerError, "Gagal menyinkronkan data", err)
		return
	}
	api.Success(w, fmt.Sprintf("%d barang baru disinkronkan", synced), map[string]int{"synced": synced})
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := shared.IDParam(r, "id")
	if err != nil {
		api.Fail(w, http.StatusNotFound, "Barang tidak ditemukan")
		return
	}

	var payload itemRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "Nama barang, stok, dan satuan wajib diisi")
		return
	}
	if payload.ItemName == "" || payload.Stock == nil || payload.Unit == "" {
		api.Fail(w, http.StatusBadRequest, "Nama barang, stok, dan satuan wajib diisi")
		return
	}

	item, err := h.Store.Update(r.Context(), id, payload.ItemName, *payload.Stock, payload.Unit)
	if err != nil {
		if errors.Is(err, items.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "Barang tidak ditemukan")
			return
		}
		api.FailError(w, http.StatusInternalServerError, "Gagal mengupdate barang", err)
		return
	}
	api.Success(w, "Barang berhasil diupdate", item)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := shared.IDParam(r, "id")
	if err != nil {
		api.Fail(w, http.StatusNotFound, "Barang tidak ditemukan")
		return
	}

	if err := h.Store.Delete(r.Context(), id); err != nil {
		if errors.Is(err, items.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "Barang tidak ditemukan")
			return
		}
		api.FailError(w, http.StatusInternalServerError, "Gagal menghapus barang", err)
		return
	}
	api.Success(w, "Barang berhasil dihapus", nil)
}
