package corehandler

import (
	"encoding/json"
	"errors"
	"net/http"

	"backoffice/internal/domain/core"
	"backoffice/internal/transport/http/api"
	"backoffice/internal/transport/http/shared"
)

type departmentRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

func (h *Handler) handleListDepartments(w http.ResponseWriter, r *http.Request) {
	departments, err := h.Store.ListDepartments(r.Context())
	if err != nil {
		api.FailError(w, http.StatusInternalServerError, "Gagal mengambil data departemen", err)
		return
	}
	api.SuccessData(w, departments)
}

func (h *Handler) handleGetDepartment(w http.ResponseWriter, r *http.Request) {
	id, err := shared.IDParam(r, "id")
	if err != nil {
		api.Fail(w, http.StatusNotFound, "Departemen tidak ditemukan")
		return
	}

	department, err := h.Store.GetDepartment(r.Context(), id)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "Departemen tidak ditemukan")
			return
		}
		api.FailError(w, http.StatusInternalServerError, "Gagal mengambil data departemen", err)
		return
	}
	api.SuccessData(w, department)
}

func (h *Handler) handleCreateDepartment(w http.ResponseWriter, r *http.Request) {
	var payload departmentRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "Nama departemen wajib diisi")
		return
	}
	if payload.Name == "" {
		api.Fail(w, http.StatusBadRequest, "Nama departemen wajib diisi")
		return
	}

	department, err := h.Store.CreateDepartment(r.Context(), payload.Name, payload.Description)
	if err != nil {
		if errors.Is(err, core.ErrDuplicate) {
			api.Fail(w, http.StatusBadRequest, "Nama departemen sudah ada")
			return
		}
		api.FailError(w, http.StatusInternalServerError, "Gagal menambahkan departemen", err)
		return
	}
	api.Created(w, "Departemen berhasil ditambahkan", department)
}

func (h *Handler) handleUpdateDepartment(w http.ResponseWriter, r *http.Request) {
	id, err := shared.IDParam(r, "id")
	if err != nil {
		api.Fail(w, http.StatusNotFound, "Departemen tidak ditemukan")
		return
	}

	var payload departmentRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "Nama departemen wajib diisi")
		return
	}
	if payload.Name == "" {
		api.Fail(w, http.StatusBadRequest, "Nama departemen wajib diisi")
		return
	}

	department, err := h.Store.UpdateDepartment(r.Context(), id, payload.Name, payload.Description)
	if err != nil {
		switch {
		case errors.Is(err, core.ErrNotFound):
			api.Fail(w, http.StatusNotFound, "Departemen tidak ditemukan")
		case errors.Is(err, core.ErrDuplicate):
			api.Fail(w, http.StatusBadRequest, "Nama departemen sudah ada")
		default:
			api.FailError(w, http.StatusInternalServerError, "Gagal mengupdate departemen", err)
		}
		return
	}
	api.Success(w, "Departemen berhasil diupdate", department)
}

func (h *Handler) handleDeleteDepartment(w http.ResponseWriter, r *http.Request) {
	id, err := shared.IDParam(r, "id")
	if err != nil {
		api.Fail(w, http.StatusNotFound, "Departemen tidak ditemukan")
		return
	}

	if err := h.Store.DeleteDepartment(r.Context(), id); err != nil {
		if errors.Is(err, core.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "Departemen tidak ditemukan")
			return
		}
		api.FailError(w, http.StatusInternalServerError, "Gagal menghapus departemen", err)
		return
	}
	api.Success(w, "Departemen berhasil dihapus", nil)
}
