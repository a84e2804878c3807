package authhandler

import (
	"encoding/json"
	"errors"
	"net/http"

	"backoffice/internal/domain/auth"
	"backoffice/internal/transport/http/api"
	"backoffice/internal/transport/http/middleware"
)

type Handler struct {
	Service *auth.Service
}

func NewHandler(service *auth.Service) *Handler {
	return &Handler{Service: service}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

type loginUser struct {
	ID           int64   `json:"id"`
	Email        string  `json:"email"`
	Name         string  `json:"name"`
	Role         string  `json:"role"`
	EmployeeID   *int64  `json:"employee_id"`
	EmployeeCode *string `json:"employee_code"`
}

func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var payload loginRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "Email dan password wajib diisi")
		return
	}
	if payload.Email == "" || payload.Password == "" {
		api.Fail(w, http.StatusBadRequest, "Email dan password wajib diisi")
		return
	}

	pair, user, err := h.Service.Login(r.Context(), payload.Email, payload.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			api.Fail(w, http.StatusUnauthorized, "Email atau password salah")
			return
		}
		api.FailError(w, http.StatusInternalServerError, "Gagal login", err)
		return
	}

	api.Success(w, "Login berhasil", map[string]any{
		"accessToken":  pair.AccessToken,
		"refreshToken": pair.RefreshToken,
		"expiresIn":    pair.ExpiresIn,
		"user": loginUser{
			ID:           user.ID,
			Email:        user.Email,
			Name:         user.Name,
			Role:         user.Role,
			EmployeeID:   user.EmployeeID,
			EmployeeCode: user.EmployeeCode,
		},
	})
}

func (h *Handler) HandleRefresh(w http.ResponseWriter, r *http.Request) {
	var payload refreshRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "Refresh token diperlukan")
		return
	}
	if payload.RefreshToken == "" {
		api.Fail(w, http.StatusBadRequest, "Refresh token diperlukan")
		return
	}

	pair, err := h.Service.Refresh(r.Context(), payload.RefreshToken)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrRefreshExpired):
			api.Fail(w, http.StatusUnauthorized, "Refresh token sudah kadaluarsa, silakan login kembali")
		case errors.Is(err, auth.ErrInvalidRefreshToken):
			api.Fail(w, http.StatusUnauthorized, "Refresh token tidak valid")
		default:
			api.FailError(w, http.StatusInternalServerError, "Gagal memperbarui token", err)
		}
		return
	}

	api.Success(w, "Token berhasil diperbarui", map[string]any{
		"accessToken":  pair.AccessToken,
		"refreshToken": pair.RefreshToken,
		"expiresIn":    pair.ExpiresIn,
	})
}

func (h *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "Token tidak ditemukan")
		return
	}

	if err := h.Service.Logout(r.Context(), identity.ID); err != nil {
		api.FailError(w, http.StatusInternalServerError, "Gagal logout", err)
		return
	}
	api.Success(w, "Logout berhasil", nil)
}

func (h *Handler) HandleMe(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "Token tidak ditemukan")
		return
	}

	profile, err := h.Service.Me(r.Context(), identity.ID)
	if err != nil {
		if errors.Is(err, auth.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "User tidak ditemukan")
			return
		}
		api.FailError(w, http.StatusInternalServerError, "Gagal mengambil data user", err)
		return
	}
	api.SuccessData(w, profile)
}

func (h *Handler) HandleChangePassword(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "Token tidak ditemukan")
		return
	}

	var payload changePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "Password lama dan baru wajib diisi")
		return
	}
	if payload.CurrentPassword == "" || payload.NewPassword == "" {
		api.Fail(w, http.StatusBadRequest, "Password lama dan baru wajib diisi")
		return
	}

	if err := h.Service.ChangePassword(r.Context(), identity.ID, payload.CurrentPassword, payload.NewPassword); err != nil {
		if errors.Is(err, auth.ErrWrongPassword) {
			api.Fail(w, http.StatusUnauthorized, "Password lama salah")
			return
		}
		api.FailError(w, http.StatusInternalServerError, "Gagal mengubah password", err)
		return
	}
	api.Success(w, "Password berhasil diubah", nil)
}
