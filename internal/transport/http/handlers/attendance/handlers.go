package attendancehandler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"backoffice/internal/domain/attendance"
	"backoffice/internal/domain/auth"
	"backoffice/internal/transport/http/api"
	"backoffice/internal/transport/http/middleware"
	"backoffice/internal/transport/http/shared"
)

type Handler struct {
	Store attendance.StoreAPI
	Now   func() time.Time
}

func NewHandler(store attendance.StoreAPI) *Handler {
	return &Handler{Store: store, Now: time.Now}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/attendances", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Post("/check-in", h.handleCheckIn)
		r.Post("/check-out", h.handleCheckOut)
		r.Get("/today/status", h.handleTodayStatus)
		r.With(middleware.RequireAdmin).Get("/export/csv", h.handleExportCSV)
		r.With(middleware.RequireAdmin).Get("/export/pdf", h.handleExportPDF)
		r.With(middleware.RequireAdmin).Post("/", h.handleCreate)
		r.With(middleware.RequireAdmin).Put("/{id}", h.handleUpdate)
		r.With(middleware.RequireAdmin).Delete("/{id}", h.handleDelete)
	})
}

type checkRequest struct {
	EmployeeID *int64 `json:"employee_id"`
}

type createRequest struct {
	EmployeeID *int64  `json:"employee_id"`
	Date       string  `json:"date"`
	CheckIn    *string `json:"check_in"`
	CheckOut   *string `json:"check_out"`
	Status     string  `json:"status"`
	Notes      *string `json:"notes"`
}

type updateRequest struct {
	CheckIn  *string `json:"check_in"`
	CheckOut *string `json:"check_out"`
	Status   string  `json:"status"`
	Notes    *string `json:"notes"`
}

func (h *Handler) filterFromQuery(r *http.Request, identity auth.Identity) attendance.Filter {
	filter := attendance.Filter{
		StartDate: r.URL.Query().Get("start_date"),
		EndDate:   r.URL.Query().Get("end_date"),
		Status:    r.URL.Query().Get("status"),
	}
	if scope := auth.ScopeEmployeeID(identity); scope != nil {
		filter.EmployeeID = scope
	} else {
		filter.EmployeeID = shared.QueryInt64(r, "employee_id")
	}
	return filter
}

// targetEmployee resolves who a check action applies to: admins may act on
// any employee via the body, everyone else only on themselves.
func targetEmployee(identity auth.Identity, fromBody *int64) *int64 {
	if identity.IsAdmin() {
		return fromBody
	}
	return identity.EmployeeID
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "Token tidak ditemukan")
		return
	}

	records, err := h.Store.List(r.Context(), h.filterFromQuery(r, identity))
	if err != nil {
		api.FailError(w, http.StatusInternalServerError, "Gagal mengambil data absensi", err)
		return
	}
	api.SuccessData(w, records)
}

func (h *Handler) handleCheckIn(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "Token tidak ditemukan")
		return
	}

	var payload checkRequest
	_ = json.NewDecoder(r.Body).Decode(&payload)

	target := targetEmployee(identity, payload.EmployeeID)
	if target == nil {
		api.Fail(w, http.StatusBadRequest, "Employee ID tidak ditemukan")
		return
	}

	record, err := h.Store.CheckIn(r.Context(), *target, h.Now())
	if err != nil {
		if errors.Is(err, attendance.ErrAlreadyCheckedIn) {
			api.Fail(w, http.StatusBadRequest, "Anda sudah check-in hari ini")
			return
		}
		api.FailError(w, http.StatusInternalServerError, "Gagal check-in", err)
		return
	}
	api.Success(w, "Check-in berhasil", record)
}

func (h *Handler) handleCheckOut(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "Token tidak ditemukan")
		return
	}

	var payload checkRequest
	_ = json.NewDecoder(r.Body).Decode(&payload)

	target := targetEmployee(identity, payload.EmployeeID)
	if target == nil {
		api.Fail(w, http.StatusBadRequest, "Employee ID tidak ditemukan")
		return
	}

	record, err := h.Store.CheckOut(r.Context(), *target, h.Now())
	if err != nil {
		switch {
		case errors.Is(err, attendance.ErrNotCheckedIn):
			api.Fail(w, http.StatusBadRequest, "Anda belum check-in hari ini")
		case errors.Is(err, attendance.ErrAlreadyCheckedOut):
			api.Fail(w, http.StatusBadRequest, "Anda sudah check-out hari ini")
		default:
			api.FailError(w, http.StatusInternalServerError, "Gagal check-out", err)
		}
		return
	}
	api.Success(w, "Check-out berhasil", record)
}

func (h *Handler) handleTodayStatus(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "Token tidak ditemukan")
		return
	}

	if identity.EmployeeID == nil {
		api.Success(w, "User tidak terhubung dengan data karyawan", nil)
		return
	}

	record, err := h.Store.TodayStatus(r.Context(), *identity.EmployeeID, h.Now())
	if err != nil {
		api.FailError(w, http.StatusInternalServerError, "Gagal mengambil status absensi", err)
		return
	}
	if record == nil {
		api.SuccessData(w, nil)
		return
	}
	api.SuccessData(w, record)
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var payload createRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "Employee ID dan tanggal wajib diisi")
		return
	}
	if payload.EmployeeID == nil || payload.Date == "" {
		api.Fail(w, http.StatusBadRequest, "Employee ID dan tanggal wajib diisi")
		return
	}
	if payload.Status == "" {
		payload.Status = attendance.StatusPresent
	}

	record, err := h.Store.Create(r.Context(), attendance.CreateInput{
		EmployeeID: *payload.EmployeeID,
		Date:       payload.Date,
		CheckIn:    payload.CheckIn,
		CheckOut:   payload.CheckOut,
		Status:     payload.Status,
		Notes:      payload.Notes,
	})
	if err != nil {
		if errors.Is(err, attendance.ErrDuplicateDate) {
			api.Fail(w, http.StatusBadRequest, "Data absensi untuk tanggal ini sudah ada")
			return
		}
		api.FailError(w, http.StatusInternalServerError, "Gagal menambahkan data absensi", err)
		return
	}
	api.Created(w, "Data absensi berhasil ditambahkan", record)
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := shared.IDParam(r, "id")
	if err != nil {
		api.Fail(w, http.StatusNotFound, "Data absensi tidak ditemukan")
		return
	}

	var payload updateRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "Payload tidak valid")
		return
	}

	record, err := h.Store.Update(r.Context(), id, attendance.UpdateInput{
		CheckIn:  payload.CheckIn,
		CheckOut: payload.CheckOut,
		Status:   payload.Status,
		Notes:    payload.Notes,
	})
	if err != nil {
		if errors.Is(err, attendance.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "Data absensi tidak ditemukan")
			return
		}
		api.FailError(w, http.StatusInternalServerError, "Gagal mengupdate data absensi", err)
		return
	}
	api.Success(w, "Data absensi berhasil diupdate", record)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := shared.IDParam(r, "id")
	if err != nil {
		api.Fail(w, http.StatusNotFound, "Data absensi tidak ditemukan")
		return
	}

	if err := h.Store.Delete(r.Context(), id); err != nil {
		if errors.Is(err, attendance.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "Data absensi tidak ditemukan")
			return
		}
		api.FailError(w, http.StatusInternalServerError, "Gagal menghapus data absensi", err)
		return
	}
	api.Success(w, "Data absensi berhasil dihapus", nil)
}
