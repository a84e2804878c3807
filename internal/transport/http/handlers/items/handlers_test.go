package itemshandler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"backoffice/internal/domain/items"
	"backoffice/internal/transport/http/api"
)

type fakeStore struct {
	nextID  int64
	records map[int64]*items.Item
}

func newFakeStore() *fakeStore {
	return &fakeStore{nextID: 1, records: map[int64]*items.Item{}}
}

func (f *fakeStore) List(_ context.Context, filter items.ListFilter) ([]items.Item, error) {
	var out []items.Item
	for _, rec := range f.records {
		if filter.Search != "" && !strings.Contains(strings.ToLower(rec.ItemName), strings.ToLower(filter.Search)) {
			continue
		}
		out = append(out, *rec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	if filter.Offset > 0 {
		if filter.Offset >= len(out) {
			return nil, nil
		}
		out = out[filter.Offset:]
	}
	if filter.Limit > 0 && filter.Limit < len(out) {
		out = out[:filter.Limit]
	}
	return out, nil
}

func (f *fakeStore) Get(_ context.Context, id int64) (items.Item, error) {
	rec, ok := f.records[id]
	if !ok {
		return items.Item{}, items.ErrNotFound
	}
	return *rec, nil
}

func (f *fakeStore) Create(_ context.Context, itemName string, stock int, unit string) (items.Item, error) {
	rec := &items.Item{ID: f.nextID, ItemName: itemName, Stock: stock, Unit: unit}
	f.nextID++
	f.records[rec.ID] = rec
	return *rec, nil
}

func (f *fakeStore) Update(_ context.Context, id int64, itemName string, stock int, unit string) (items.Item, error) {
	rec, ok := f.records[id]
	if !ok {
		return items.Item{}, items.ErrNotFound
	}
	rec.ItemName = itemName
	rec.Stock = stock
	rec.Unit = unit
	return *rec, nil
}

func (f *fakeStore) Delete(_ context.Context, id int64) error {
	if _, ok := f.records[id]; !ok {
		return items.ErrNotFound
	}
	delete(f.records, id)
	return nil
}

func (f *fakeStore) Sync(_ context.Context, feed []items.SyncItem) (int, error) {
	synced := 0
	for _, entry := range feed {
		var existing *items.Item
		for _, rec := range f.records {
			if rec.ExternalID != nil && *rec.ExternalID == entry.ID {
				existing = rec
				break
			}
		}
		if existing == nil {
			externalID := entry.ID
			rec := &items.Item{ID: f.nextID, ItemName: entry.ItemName, Stock: entry.Stock, Unit: entry.Unit, ExternalID: &externalID}
			f.nextID++
			f.records[rec.ID] = rec
			synced++
			continue
		}
		existing.ItemName = entry.ItemName
		existing.Stock = entry.Stock
		existing.Unit = entry.Unit
	}
	return synced, nil
}

func newTestRouter() (http.Handler, *fakeStore) {
	store := newFakeStore()
	handler := NewHandler(store)

	router := chi.NewRouter()
	handler.RegisterRoutes(router)
	return router, store
}

func doJSON(t *testing.T, router http.Handler, method, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	var raw []byte
	if payload != nil {
		var err error
		raw, err = json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal error: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) api.Envelope {
	t.Helper()
	var env api.Envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	return env
}

func TestCreateItemAcceptsZeroStock(t *testing.T) {
	router, _ := newTestRouter()

	rec := doJSON(t, router, http.MethodPost, "/items/", map[string]any{
		"item_name": "Kardus",
		"stock":     0,
		"unit":      "pcs",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	env := decode(t, rec)
	if env.Message != "Barang berhasil ditambahkan" {
		t.Fatalf("unexpected message: %q", env.Message)
	}
	data, _ := env.Data.(map[string]any)
	if stock, _ := data["stock"].(float64); stock != 0 {
		t.Fatalf("expected stock 0, got %v", data["stock"])
	}
}

func TestCreateItemRequiresFields(t *testing.T) {
	router, _ := newTestRouter()

	rec := doJSON(t, router, http.MethodPost, "/items/", map[string]any{"item_name": "Kardus"})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	env := decode(t, rec)
	if env.Message != "Nama barang, stok, dan satuan wajib diisi" {
		t.Fatalf("unexpected message: %q", env.Message)
	}
}

func TestGetMissingItem(t *testing.T) {
	router, _ := newTestRouter()

	rec := doJSON(t, router, http.MethodGet, "/items/42", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	env := decode(t, rec)
	if env.Message != "Barang tidak ditemukan" {
		t.Fatalf("unexpected message: %q", env.Message)
	}
}

func TestSyncCountsOnlyInserts(t *testing.T) {
	router, _ := newTestRouter()

	feed := map[string]any{"items": []map[string]any{
		{"id": 101, "item_name": "Palet", "stock": 12, "unit": "pcs"},
	}}

	rec := doJSON(t, router, http.MethodPost, "/items/sync", feed)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	env := decode(t, rec)
	if env.Message != "1 barang baru disinkronkan" {
		t.Fatalf("unexpected message: %q", env.Message)
	}

	// Re-syncing the same feed updates in place and inserts nothing.
	rec = doJSON(t, router, http.MethodPost, "/items/sync", feed)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	env = decode(t, rec)
	if env.Message != "0 barang baru disinkronkan" {
		t.Fatalf("unexpected message: %q", env.Message)
	}
	data, _ := env.Data.(map[string]any)
	if synced, _ := data["synced"].(float64); synced != 0 {
		t.Fatalf("expected synced 0, got %v", data["synced"])
	}
}

func TestSyncRejectsInvalidPayload(t *testing.T) {
	router, _ := newTestRouter()

	rec := doJSON(t, router, http.MethodPost, "/items/sync", map[string]any{"items": "bukan-array"})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	env := decode(t, rec)
	if env.Message != "Data items tidak valid" {
		t.Fatalf("unexpected message: %q", env.Message)
	}

	rec = doJSON(t, router, http.MethodPost, "/items/sync", map[string]any{})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing items, got %d", rec.Code)
	}
}

func TestListWithSearchAndPagination(t *testing.T) {
	router, store := newTestRouter()
	for _, name := range []string{"Kardus besar", "Kardus kecil", "Lakban"} {
		if _, err := store.Create(context.Background(), name, 5, "pcs"); err != nil {
			t.Fatalf("seed error: %v", err)
		}
	}

	rec := doJSON(t, router, http.MethodGet, "/items/?search=kardus&limit=1&offset=1", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	env := decode(t, rec)
	data, _ := env.Data.([]any)
	if len(data) != 1 {
		t.Fatalf("expected one row, got %d", len(data))
	}
	row, _ := data[0].(map[string]any)
	if name, _ := row["item_name"].(string); name != "Kardus kecil" {
		t.Fatalf("unexpected row: %+v", row)
	}
}

func TestUpdateAndDeleteItem(t *testing.T) {
	router, store := newTestRouter()
	if _, err := store.Create(context.Background(), "Kardus", 5, "pcs"); err != nil {
		t.Fatalf("seed error: %v", err)
	}

	rec := doJSON(t, router, http.MethodPut, "/items/1", map[string]any{"item_name": "Kardus besar", "stock": 8, "unit": "pcs"})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	env := decode(t, rec)
	if env.Message != "Barang berhasil diupdate" {
		t.Fatalf("unexpected message: %q", env.Message)
	}

	rec = doJSON(t, router, http.MethodDelete, "/items/1", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	env = decode(t, rec)
	if env.Message != "Barang berhasil dihapus" {
		t.Fatalf("unexpected message: %q", env.Message)
	}

	rec = doJSON(t, router, http.MethodGet, "/items/1", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", rec.Code)
	}
}
