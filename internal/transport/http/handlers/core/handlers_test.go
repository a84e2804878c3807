package corehandler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"backoffice/internal/domain/auth"
	"backoffice/internal/domain/core"
	"backoffice/internal/transport/http/api"
	"backoffice/internal/transport/http/middleware"
)

const testSecret = "test-secret"

type fakeStore struct {
	nextID      int64
	departments map[int64]*core.Department
	positions   map[int64]*core.Position
	employees   map[int64]*core.Employee
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		nextID:      1,
		departments: map[int64]*core.Department{},
		positions:   map[int64]*core.Position{},
		employees:   map[int64]*core.Employee{},
	}
}

func (f *fakeStore) ListDepartments(_ context.Context) ([]core.Department, error) {
	var out []core.Department
	for _, dep := range f.departments {
		out = append(out, *dep)
	}
	return out, nil
}

func (f *fakeStore) GetDepartment(_ context.Context, id int64) (core.Department, error) {
	dep, ok := f.departments[id]
	if !ok {
		return core.Department{}, core.ErrNotFound
	}
	return *dep, nil
}

func (f *fakeStore) CreateDepartment(_ context.Context, name string, description *string) (core.Department, error) {
	for _, dep := range f.departments {
		if dep.Name == name {
			return core.Department{}, core.ErrDuplicate
		}
	}
	dep := &core.Department{ID: f.nextID, Name: name, Description: description}
	f.nextID++
	f.departments[dep.ID] = dep
	return *dep, nil
}

func (f *fakeStore) UpdateDepartment(_ context.Context, id int64, name string, description *string) (core.Department, error) {
	dep, ok := f.departments[id]
	if !ok {
		return core.Department{}, core.ErrNotFound
	}
	for otherID, other := range f.departments {
		if otherID != id && other.Name == name {
			return core.Department{}, core.ErrDuplicate
		}
	}
	dep.Name = name
	dep.Description = description
	return *dep, nil
}

func (f *fakeStore) DeleteDepartment(_ context.Context, id int64) error {
	if _, ok := f.departments[id]; !ok {
		return core.ErrNotFound
	}
	delete(f.departments, id)
	return nil
}

func (f *fakeStore) ListPositions(_ context.Context, departmentID *int64) ([]core.Position, error) {
	var out []core.Position
	for _, pos := range f.positions {
		if departmentID != nil && (pos.DepartmentID == nil || *pos.DepartmentID != *departmentID) {
			continue
		}
		out = append(out, *pos)
	}
	return out, nil
}

func (f *fakeStore) GetPosition(_ context.Context, id int64) (core.Position, error) {
	pos, ok := f.positions[id]
	if !ok {
		return core.Position{}, core.ErrNotFound
	}
	return *pos, nil
}

func (f *fakeStore) CreatePosition(_ context.Context, name string, departmentID *int64, description *string) (core.Position, error) {
	pos := &core.Position{ID: f.nextID, Name: name, DepartmentID: departmentID, Description: description}
	f.nextID++
	f.positions[pos.ID] = pos
	return *pos, nil
}

func (f *fakeStore) UpdatePosition(_ context.Context, id int64, name string, departmentID *int64, description *string) (core.Position, error) {
	pos, ok := f.positions[id]
	if !ok {
		return core.Position{}, core.ErrNotFound
	}
	pos.Name = name
	pos.DepartmentID = departmentID
	pos.Description = description
	return *pos, nil
}

func (f *fakeStore) DeletePosition(_ context.Context, id int64) error {
	if _, ok := f.positions[id]; !ok {
		return core.ErrNotFound
	}
	delete(f.positions, id)
	return nil
}

func (f *fakeStore) ListEmployees(_ context.Context, filter core.EmployeeFilter) ([]core.Employee, error) {
	var out []core.Employee
	for _, emp := range f.employees {
		if filter.Status != "" && emp.Status != filter.Status {
			continue
		}
		if filter.Search != "" && !strings.Contains(strings.ToLower(emp.Name), strings.ToLower(filter.Search)) {
			continue
		}
		out = append(out, *emp)
	}
	return out, nil
}

func (f *fakeStore) ExportEmployees(ctx context.Context, departmentID *int64, status string) ([]core.Employee, error) {
	return f.ListEmployees(ctx, core.EmployeeFilter{DepartmentID: departmentID, Status: status})
}

func (f *fakeStore) GetEmployee(_ context.Context, id int64) (core.Employee, error) {
	emp, ok := f.employees[id]
	if !ok {
		return core.Employee{}, core.ErrNotFound
	}
	return *emp, nil
}

func (f *fakeStore) CreateEmployee(_ context.Context, input core.CreateEmployeeInput) (core.Employee, error) {
	for _, emp := range f.employees {
		if emp.EmployeeCode == input.EmployeeCode || emp.Email == input.Email {
			return core.Employee{}, core.ErrDuplicate
		}
	}
	emp := &core.Employee{
		ID:           f.nextID,
		EmployeeCode: input.EmployeeCode,
		Name:         input.Name,
		Email:        input.Email,
		Phone:        input.Phone,
		Address:      input.Address,
		DateOfBirth:  input.DateOfBirth,
		HireDate:     input.HireDate,
		DepartmentID: input.DepartmentID,
		PositionID:   input.PositionID,
		Status:       core.EmployeeStatusActive,
	}
	f.nextID++
	f.employees[emp.ID] = emp
	return *emp, nil
}

func (f *fakeStore) UpdateEmployee(_ context.Context, id int64, input core.UpdateEmployeeInput) (core.Employee, error) {
	emp, ok := f.employees[id]
	if !ok {
		return core.Employee{}, core.ErrNotFound
	}
	for otherID, other := range f.employees {
		if otherID != id && (other.EmployeeCode == input.EmployeeCode || other.Email == input.Email) {
			return core.Employee{}, core.ErrDuplicate
		}
	}
	emp.EmployeeCode = input.EmployeeCode
	emp.Name = input.Name
	emp.Email = input.Email
	emp.Status = input.Status
	return *emp, nil
}

func (f *fakeStore) DeleteEmployee(_ context.Context, id int64) error {
	if _, ok := f.employees[id]; !ok {
		return core.ErrNotFound
	}
	delete(f.employees, id)
	return nil
}

func newTestRouter() (http.Handler, *fakeStore) {
	store := newFakeStore()
	handler := NewHandler(store)

	router := chi.NewRouter()
	router.Group(func(r chi.Router) {
		r.Use(middleware.Authenticate(testSecret))
		handler.RegisterRoutes(r)
	})
	return router, store
}

func adminToken(t *testing.T) string {
	t.Helper()
	token, err := auth.GenerateAccessToken(testSecret, auth.AccessClaims{
		UserID: 1,
		Email:  "admin@hr.com",
		Name:   "Admin",
		Role:   auth.RoleAdmin,
	}, time.Hour)
	if err != nil {
		t.Fatalf("token error: %v", err)
	}
	return token
}

func doJSON(t *testing.T, router http.Handler, method, path, token string, payload any) *httptest.ResponseRecorder {
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
	req.Header.Set("Authorization", "Bearer "+token)
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

func TestCreateDepartmentAndDuplicate(t *testing.T) {
	router, _ := newTestRouter()
	token := adminToken(t)

	rec := doJSON(t, router, http.MethodPost, "/departments/", token, map[string]string{"name": "Engineering"})
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	env := decode(t, rec)
	if env.Message != "Departemen berhasil ditambahkan" {
		t.Fatalf("unexpected message: %q", env.Message)
	}

	rec = doJSON(t, router, http.MethodPost, "/departments/", token, map[string]string{"name": "Engineering"})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	env = decode(t, rec)
	if env.Message != "Nama departemen sudah ada" {
		t.Fatalf("unexpected message: %q", env.Message)
	}
}

func TestCreateDepartmentRequiresName(t *testing.T) {
	router, _ := newTestRouter()

	rec := doJSON(t, router, http.MethodPost, "/departments/", adminToken(t), map[string]string{"description": "tanpa nama"})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	env := decode(t, rec)
	if env.Message != "Nama departemen wajib diisi" {
		t.Fatalf("unexpected message: %q", env.Message)
	}
}

func TestCreateEmployeeValidation(t *testing.T) {
	router, _ := newTestRouter()
	token := adminToken(t)

	rec := doJSON(t, router, http.MethodPost, "/employees/", token, map[string]any{"name": "Budi"})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	env := decode(t, rec)
	if env.Message != "Kode karyawan, nama, email, dan tanggal masuk wajib diisi" {
		t.Fatalf("unexpected message: %q", env.Message)
	}

	rec = doJSON(t, router, http.MethodPost, "/employees/", token, map[string]any{
		"employee_code": "EMP001",
		"name":          "Budi",
		"email":         "budi@hr.com",
		"hire_date":     "bukan-tanggal",
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	env = decode(t, rec)
	if env.Message != "Format tanggal tidak valid" {
		t.Fatalf("unexpected message: %q", env.Message)
	}
}

func TestCreateEmployeeAndDuplicateCode(t *testing.T) {
	router, _ := newTestRouter()
	token := adminToken(t)

	payload := map[string]any{
		"employee_code": "EMP001",
		"name":          "Budi",
		"email":         "budi@hr.com",
		"hire_date":     "2026-01-05",
	}

	rec := doJSON(t, router, http.MethodPost, "/employees/", token, payload)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	env := decode(t, rec)
	if env.Message != "Karyawan berhasil ditambahkan" {
		t.Fatalf("unexpected message: %q", env.Message)
	}

	rec = doJSON(t, router, http.MethodPost, "/employees/", token, payload)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	env = decode(t, rec)
	if env.Message != "Kode karyawan atau email sudah digunakan" {
		t.Fatalf("unexpected message: %q", env.Message)
	}
}

func TestEmployeeWriteRoutesRequireAdmin(t *testing.T) {
	router, _ := newTestRouter()
	employeeID := int64(7)
	token, err := auth.GenerateAccessToken(testSecret, auth.AccessClaims{
		UserID:     2,
		Role:       auth.RoleEmployee,
		EmployeeID: &employeeID,
	}, time.Hour)
	if err != nil {
		t.Fatalf("token error: %v", err)
	}

	rec := doJSON(t, router, http.MethodPost, "/employees/", token, map[string]any{
		"employee_code": "EMP002",
		"name":          "Siti",
		"email":         "siti@hr.com",
		"hire_date":     "2026-01-05",
	})
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestDeleteMissingPosition(t *testing.T) {
	router, _ := newTestRouter()

	rec := doJSON(t, router, http.MethodDelete, "/positions/99", adminToken(t), nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	env := decode(t, rec)
	if env.Message != "Jabatan tidak ditemukan" {
		t.Fatalf("unexpected message: %q", env.Message)
	}
}
