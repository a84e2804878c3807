package corehandler

import (
	"encoding/json"
	"errors"
	"net/http"

	"backoffice/internal/domain/core"
	"backoffice/internal/transport/http/api"
	"backoffice/internal/transport/http/shared"
)

type positionRequest struct {
	Name         string  `json:"name"`
	DepartmentID *int64  `json:"department_id"`
	Description  *string `json:"description"`
}

func (h *Handler) handleListPositions(w http.ResponseWriter, r *http.Request) {
	positions, err := h.Store.ListPositions(r.Context(), shared.QueryInt64(r, "department_id"))
	if err != nil {
		api.FailError(w, http.StatusInternalServerError, "Gagal mengambil data jabatan", err)
		return
	}
	api.SuccessData(w, positions)
}

func (h *Handler) handleGetPosition(w http.ResponseWriter, r *http.Request) {
	id, err := shared.IDParam(r, "id")
	if err != nil {
		api.Fail(w, http.StatusNotFound, "Jabatan tidak ditemukan")
		return
	}

	position, err := h.Store.GetPosition(r.Context(), id)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "Jabatan tidak ditemukan")
			return
		}
		api.FailError(w, http.StatusInternalServerError, "Gagal mengambil data jabatan", err)
		return
	}
	api.SuccessData(w, position)
}

func (h *Handler) handleCreatePosition(w http.ResponseWriter, r *http.Request) {
	var payload positionRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "Nama jabatan wajib diisi")
		return
	}
	if payload.Name == "" {
		api.Fail(w, http.StatusBadRequest, "Nama jabatan wajib diisi")
		return
	}

	position, err := h.Store.CreatePosition(r.Context(), payload.Name, payload.DepartmentID, payload.Description)
	if err != nil {
		api.FailError(w, http.StatusInternalServerError, "Gagal menambahkan jabatan", err)
		return
	}
	api.Created(w, "Jabatan berhasil ditambahkan", position)
}

func (h *Handler) handleUpdatePosition(w http.ResponseWriter, r *http.Request) {
	id, err := shared.IDParam(r, "id")
	if err != nil {
		api.Fail(w, http.StatusNotFound, "Jabatan tidak ditemukan")
		return
	}

	var payload positionRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "Nama jabatan wajib diisi")
		return
	}
	if payload.Name == "" {
		api.Fail(w, http.StatusBadRequest, "Nama jabatan wajib diisi")
		return
	}

	position, err := h.Store.UpdatePosition(r.Context(), id, payload.Name, payload.DepartmentID, payload.Description)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "Jabatan tidak ditemukan")
			return
		}
		api.FailError(w, http.StatusInternalServerError, "Gagal mengupdate jabatan", err)
		return
	}
	api.Success(w, "Jabatan berhasil diupdate", position)
}

func (h *Handler) handleDeletePosition(w http.ResponseWriter, r *http.Request) {
	id, err := shared.IDParam(r, "id")
	if err != nil {
		api.Fail(w, http.StatusNotFound, "Jabatan tidak ditemukan")
		return
	}

	if err := h.Store.DeletePosition(r.Context(), id); err != nil {
		if errors.Is(err, core.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "Jabatan tidak ditemukan")
			return
		}
		api.FailError(w, http.StatusInternalServerError, "Gagal menghapus jabatan", err)
		return
	}
	api.Success(w, "Jabatan berhasil dihapus", nil)
}
