package corehandler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"backoffice/internal/domain/core"
	"backoffice/internal/transport/http/api"
	"backoffice/internal/transport/http/shared"
)

type employeeRequest struct {
	EmployeeCode      string  `json:"employee_code"`
	Name              string  `json:"name"`
	Email             string  `json:"email"`
	Phone             *string `json:"phone"`
	Address           *string `json:"address"`
	DateOfBirth       *string `json:"date_of_birth"`
	HireDate          string  `json:"hire_date"`
	DepartmentID      *int64  `json:"department_id"`
	PositionID        *int64  `json:"position_id"`
	Status            string  `json:"status"`
	CreateUserAccount bool    `json:"create_user_account"`
	Password          string  `json:"password"`
}

func (h *Handler) handleListEmployees(w http.ResponseWriter, r *http.Request) {
	filter := core.EmployeeFilter{
		Search:       r.URL.Query().Get("search"),
		DepartmentID: shared.QueryInt64(r, "department_id"),
		Status:       r.URL.Query().Get("status"),
	}

	employees, err := h.Store.ListEmployees(r.Context(), filter)
	if err != nil {
		api.FailError(w, http.StatusInternalServerError, "Gagal mengambil data karyawan", err)
		return
	}
	api.SuccessData(w, employees)
}

func (h *Handler) handleGetEmployee(w http.ResponseWriter, r *http.Request) {
	id, err := shared.IDParam(r, "id")
	if err != nil {
		api.Fail(w, http.StatusNotFound, "Karyawan tidak ditemukan")
		return
	}

	employee, err := h.Store.GetEmployee(r.Context(), id)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "Karyawan tidak ditemukan")
			return
		}
		api.FailError(w, http.StatusInternalServerError, "Gagal mengambil data karyawan", err)
		return
	}
	api.SuccessData(w, employee)
}

func (h *Handler) handleCreateEmployee(w http.ResponseWriter, r *http.Request) {
	var payload employeeRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "Kode karyawan, nama, email, dan tanggal masuk wajib diisi")
		return
	}
	if payload.EmployeeCode == "" || payload.Name == "" || payload.Email == "" || payload.HireDate == "" {
		api.Fail(w, http.StatusBadRequest, "Kode karyawan, nama, email, dan tanggal masuk wajib diisi")
		return
	}

	hireDate, err := shared.ParseDate(payload.HireDate)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "Format tanggal tidak valid")
		return
	}
	var dateOfBirth *time.Time
	if payload.DateOfBirth != nil && *payload.DateOfBirth != "" {
		dob, err := shared.ParseDate(*payload.DateOfBirth)
		if err != nil {
			api.Fail(w, http.StatusBadRequest, "Format tanggal tidak valid")
			return
		}
		dateOfBirth = &dob
	}

	employee, err := h.Store.CreateEmployee(r.Context(), core.CreateEmployeeInput{
		EmployeeCode:      payload.EmployeeCode,
		Name:              payload.Name,
		Email:             payload.Email,
		Phone:             payload.Phone,
		Address:           payload.Address,
		DateOfBirth:       dateOfBirth,
		HireDate:          hireDate,
		DepartmentID:      payload.DepartmentID,
		PositionID:        payload.PositionID,
		CreateUserAccount: payload.CreateUserAccount,
		Password:          payload.Password,
	})
	if err != nil {
		if errors.Is(err, core.ErrDuplicate) {
			api.Fail(w, http.StatusBadRequest, "Kode karyawan atau email sudah digunakan")
			return
		}
		api.FailError(w, http.StatusInternalServerError, "Gagal menambahkan karyawan", err)
		return
	}
	api.Created(w, "Karyawan berhasil ditambahkan", employee)
}

func (h *Handler) handleUpdateEmployee(w http.ResponseWriter, r *http.Request) {
	id, err := shared.IDParam(r, "id")
	if err != nil {
		api.Fail(w, http.StatusNotFound, "Karyawan tidak ditemukan")
		return
	}

	var payload employeeRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "Kode karyawan, nama, email, dan tanggal masuk wajib diisi")
		return
	}
	if payload.EmployeeCode == "" || payload.Name == "" || payload.Email == "" || payload.HireDate == "" {
		api.Fail(w, http.StatusBadRequest, "Kode karyawan, nama, email, dan tanggal masuk wajib diisi")
		return
	}

	hireDate, err := shared.ParseDate(payload.HireDate)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "Format tanggal tidak valid")
		return
	}
	var dateOfBirth *time.Time
	if payload.DateOfBirth != nil && *payload.DateOfBirth != "" {
		dob, err := shared.ParseDate(*payload.DateOfBirth)
		if err != nil {
			api.Fail(w, http.StatusBadRequest, "Format tanggal tidak valid")
			return
		}
		dateOfBirth = &dob
	}
	if payload.Status == "" {
		payload.Status = core.EmployeeStatusActive
	}

	employee, err := h.Store.UpdateEmployee(r.Context(), id, core.UpdateEmployeeInput{
		EmployeeCode: payload.EmployeeCode,
		Name:         payload.Name,
		Email:        payload.Email,
		Phone:        payload.Phone,
		Address:      payload.Address,
		DateOfBirth:  dateOfBirth,
		HireDate:     hireDate,
		DepartmentID: payload.DepartmentID,
		PositionID:   payload.PositionID,
		Status:       payload.Status,
	})
	if err != nil {
		switch {
		case errors.Is(err, core.ErrNotFound):
			api.Fail(w, http.StatusNotFound, "Karyawan tidak ditemukan")
		case errors.Is(err, core.ErrDuplicate):
			api.Fail(w, http.StatusBadRequest, "Kode karyawan atau email sudah digunakan")
		default:
			api.FailError(w, http.StatusInternalServerError, "Gagal mengupdate karyawan", err)
		}
		return
	}
	api.Success(w, "Data karyawan berhasil diupdate", employee)
}

func (h *Handler) handleDeleteEmployee(w http.ResponseWriter, r *http.Request) {
	id, err := shared.IDParam(r, "id")
	if err != nil {
		api.Fail(w, http.StatusNotFound, "Karyawan tidak ditemukan")
		return
	}

	if err := h.Store.DeleteEmployee(r.Context(), id); err != nil {
		if errors.Is(err, core.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "Karyawan tidak ditemukan")
			return
		}
		api.FailError(w, http.StatusInternalServerError, "Gagal menghapus karyawan", err)
		return
	}
	api.Success(w, "Karyawan berhasil dihapus", nil)
}

func (h *Handler) handleExportEmployees(w http.ResponseWriter, r *http.Request) {
	employees, err := h.Store.ExportEmployees(r.Context(), shared.QueryInt64(r, "department_id"), r.URL.Query().Get("status"))
	if err != nil {
		api.FailError(w, http.StatusInternalServerError, "Gagal export data karyawan", err)
		return
	}

	headers := []string{"Kode Karyawan", "Nama", "Email", "Telepon", "Alamat", "Tanggal Lahir", "Tanggal Masuk", "Departemen", "Jabatan", "Status"}
	rows := make([][]string, 0, len(employees))
	for _, e := range employees {
		dob := ""
		if e.DateOfBirth != nil {
			dob = shared.FormatDateID(*e.DateOfBirth)
		}
		status := "Tidak Aktif"
		if e.Status == core.EmployeeStatusActive {
			status = "Aktif"
		}
		rows = append(rows, []string{
			e.EmployeeCode,
			e.Name,
			e.Email,
			shared.Deref(e.Phone, ""),
			shared.Deref(e.Address, ""),
			dob,
			shared.FormatDateID(e.HireDate),
			shared.Deref(e.DepartmentName, ""),
			shared.Deref(e.PositionName, ""),
			status,
		})
	}
	shared.WriteCSV(w, "karyawan", headers, rows)
}
