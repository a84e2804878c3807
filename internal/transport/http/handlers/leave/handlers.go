package leavehandler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"backoffice/internal/domain/auth"
	"backoffice/internal/domain/leave"
	"backoffice/internal/transport/http/api"
	"backoffice/internal/transport/http/middleware"
	"backoffice/internal/transport/http/shared"
)

type Handler struct {
	Store leave.StoreAPI
}

func NewHandler(store leave.StoreAPI) *Handler {
	return &Handler{Store: store}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/leaves", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.With(middleware.RequireAdmin).Get("/export/csv", h.handleExportCSV)
		r.Get("/{id}", h.handleGet)
		r.Post("/", h.handleCreate)
		r.With(middleware.RequireAdmin).Put("/{id}/approve", h.handleApprove)
		r.Put("/{id}", h.handleUpdate)
		r.Delete("/{id}", h.handleDelete)
	})
}

type createRequest struct {
	EmployeeID *int64  `json:"employee_id"`
	LeaveType  string  `json:"leave_type"`
	StartDate  string  `json:"start_date"`
	EndDate    string  `json:"end_date"`
	Reason     *string `json:"reason"`
}

type approveRequest struct {
	Status string `json:"status"`
}

type updateRequest struct {
	LeaveType string  `json:"leave_type"`
	StartDate string  `json:"start_date"`
	EndDate   string  `json:"end_date"`
	Reason    *string `json:"reason"`
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "Token tidak ditemukan")
		return
	}

	filter := leave.Filter{
		Status:    r.URL.Query().Get("status"),
		StartDate: r.URL.Query().Get("start_date"),
		EndDate:   r.URL.Query().Get("end_date"),
	}
	if scope := auth.ScopeEmployeeID(identity); scope != nil {
		filter.EmployeeID = scope
	} else {
		filter.EmployeeID = shared.QueryInt64(r, "employee_id")
	}

	leaves, err := h.Store.List(r.Context(), filter)
	if err != nil {
		api.FailError(w, http.StatusInternalServerError, "Gagal mengambil data cuti", err)
		return
	}
	api.SuccessData(w, leaves)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "Token tidak ditemukan")
		return
	}

	id, err := shared.IDParam(r, "id")
	if err != nil {
		api.Fail(w, http.StatusNotFound, "Data cuti tidak ditemukan")
		return
	}

	record, err := h.Store.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, leave.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "Data cuti tidak ditemukan")
			return
		}
		api.FailError(w, http.StatusInternalServerError, "Gagal mengambil data cuti", err)
		return
	}

	if !auth.CanAccessEmployee(identity, record.EmployeeID) {
		api.Fail(w, http.StatusForbidden, "Anda tidak memiliki akses ke data ini")
		return
	}
	api.SuccessData(w, record)
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "Token tidak ditemukan")
		return
	}

	var payload createRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "Jenis cuti, tanggal mulai, dan tanggal selesai wajib diisi")
		return
	}

	var target *int64
	if identity.IsAdmin() {
		target = payload.EmployeeID
	} else {
		target = identity.EmployeeID
	}
	if target == nil {
		api.Fail(w, http.StatusBadRequest, "Employee ID tidak ditemukan")
		return
	}

	if payload.LeaveType == "" || payload.StartDate == "" || payload.EndDate == "" {
		api.Fail(w, http.StatusBadRequest, "Jenis cuti, tanggal mulai, dan tanggal selesai wajib diisi")
		return
	}

	start, err := shared.ParseDate(payload.StartDate)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "Format tanggal tidak valid")
		return
	}
	end, err := shared.ParseDate(payload.EndDate)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "Format tanggal tidak valid")
		return
	}
	if err := leave.ValidateDateRange(start, end); err != nil {
		api.Fail(w, http.StatusBadRequest, "Tanggal mulai tidak boleh lebih dari tanggal selesai")
		return
	}

	record, err := h.Store.Create(r.Context(), leave.CreateInput{
		EmployeeID: *target,
		LeaveType:  payload.LeaveType,
		StartDate:  payload.StartDate,
		EndDate:    payload.EndDate,
		Reason:     payload.Reason,
	})
	if err != nil {
		api.FailError(w, http.StatusInternalServerError, "Gagal membuat pengajuan cuti", err)
		return
	}
	api.Created(w, "Pengajuan cuti berhasil dibuat", record)
}

func (h *Handler) handleApprove(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "Token tidak ditemukan")
		return
	}

	id, err := shared.IDParam(r, "id")
	if err != nil {
		api.Fail(w, http.StatusNotFound, "Data cuti tidak ditemukan")
		return
	}

	var payload approveRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "Status harus approved atau rejected")
		return
	}
	if err := leave.ValidateDecision(payload.Status); err != nil {
		api.Fail(w, http.StatusBadRequest, "Status harus approved atau rejected")
		return
	}

	record, err := h.Store.Decide(r.Context(), id, payload.Status, identity.ID)
	if err != nil {
		switch {
		case errors.Is(err, leave.ErrNotFound):
			api.Fail(w, http.StatusNotFound, "Data cuti tidak ditemukan")
		case errors.Is(err, leave.ErrAlreadyProcessed):
			api.Fail(w, http.StatusBadRequest, "Cuti ini sudah diproses sebelumnya")
		default:
			api.FailError(w, http.StatusInternalServerError, "Gagal memproses cuti", err)
		}
		return
	}

	message := "Cuti berhasil ditolak"
	if payload.Status == leave.StatusApproved {
		message = "Cuti berhasil disetujui"
	}
	api.Success(w, message, record)
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "Token tidak ditemukan")
		return
	}

	id, err := shared.IDParam(r, "id")
	if err != nil {
		api.Fail(w, http.StatusNotFound, "Data cuti tidak ditemukan")
		return
	}

	record, err := h.Store.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, leave.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "Data cuti tidak ditemukan")
			return
		}
		api.FailError(w, http.StatusInternalServerError, "Gagal mengambil data cuti", err)
		return
	}

	if !auth.CanAccessEmployee(identity, record.EmployeeID) {
		api.Fail(w, http.StatusForbidden, "Anda tidak memiliki akses untuk mengubah data ini")
		return
	}

	var payload updateRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "Jenis cuti, tanggal mulai, dan tanggal selesai wajib diisi")
		return
	}

	updated, err := h.Store.Update(r.Context(), id, leave.UpdateInput{
		LeaveType: payload.LeaveType,
		StartDate: payload.StartDate,
		EndDate:   payload.EndDate,
		Reason:    payload.Reason,
	})
	if err != nil {
		switch {
		case errors.Is(err, leave.ErrNotFound):
			api.Fail(w, http.StatusNotFound, "Data cuti tidak ditemukan")
		case errors.Is(err, leave.ErrAlreadyProcessed):
			api.Fail(w, http.StatusBadRequest, "Cuti yang sudah diproses tidak dapat diubah")
		default:
			api.FailError(w, http.StatusInternalServerError, "Gagal mengupdate data cuti", err)
		}
		return
	}
	api.Success(w, "Data cuti berhasil diupdate", updated)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "Token tidak ditemukan")
		return
	}

	id, err := shared.IDParam(r, "id")
	if err != nil {
		api.Fail(w, http.StatusNotFound, "Data cuti tidak ditemukan")
		return
	}

	record, err := h.Store.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, leave.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "Data cuti tidak ditemukan")
			return
		}
		api.FailError(w, http.StatusInternalServerError, "Gagal mengambil data cuti", err)
		return
	}

	if !auth.CanAccessEmployee(identity, record.EmployeeID) {
		api.Fail(w, http.StatusForbidden, "Anda tidak memiliki akses untuk menghapus data ini")
		return
	}

	// Admins may remove processed requests; everyone else only pending ones.
	if !identity.IsAdmin() {
		if err := leave.CanModify(record.Status); err != nil {
			api.Fail(w, http.StatusBadRequest, "Cuti yang sudah diproses tidak dapat dihapus")
			return
		}
	}

	if err := h.Store.Delete(r.Context(), id); err != nil {
		if errors.Is(err, leave.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "Data cuti tidak ditemukan")
			return
		}
		api.FailError(w, http.StatusInternalServerError, "Gagal menghapus data cuti", err)
		return
	}
	api.Success(w, "Data cuti berhasil dihapus", nil)
}
