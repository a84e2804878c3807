package hrserver_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"backoffice/internal/app/hrserver"
	"backoffice/internal/platform/config"
)

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func testConfig(dbURL string) config.Config {
	return config.Config{
		DatabaseURL:       dbURL,
		JWTSecret:         "test-secret",
		JWTRefreshSecret:  "test-secret_refresh",
		Environment:       "test",
		SeedAdminEmail:    "admin@test.local",
		SeedAdminName:     "Admin Test",
		SeedAdminPassword: "ChangeMe123!",
		RunMigrations:     true,
		RunSeed:           true,
		MigrationsDir:     "../../../migrations/hr",
		AccessTokenTTL:    15 * time.Minute,
		RefreshTokenTTL:   7 * 24 * time.Hour,
		RateLimitWindow:   15 * time.Minute,
		RateLimitGeneral:  1000,
		RateLimitAuth:     1000,
		MetricsEnabled:    true,
	}
}

func postJSON(t *testing.T, client *http.Client, url, token string, payload any) (*http.Response, envelope) {
	t.Helper()
	raw, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal error: %v", err)
	}
	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("request error: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	return resp, env
}

func login(t *testing.T, client *http.Client, baseURL, email, password string) (string, string) {
	t.Helper()
	resp, env := postJSON(t, client, baseURL+"/api/auth/login", "", map[string]string{"email": email, "password": password})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login failed: %d %s", resp.StatusCode, env.Message)
	}
	var data struct {
		AccessToken  string `json:"accessToken"`
		RefreshToken string `json:"refreshToken"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("decode login data: %v", err)
	}
	return data.AccessToken, data.RefreshToken
}

func TestEmployeeLifecycleJourney(t *testing.T) {
	dbURL := os.Getenv("TEST_DATABASE_URL")
	if dbURL == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	cfg := testConfig(dbURL)
	app, err := hrserver.New(context.Background(), cfg)
	if err != nil {
		t.Fatalf("failed to start app: %v", err)
	}
	defer app.DB.Close()

	ts := httptest.NewServer(app.Router)
	defer ts.Close()
	client := ts.Client()

	adminToken, _ := login(t, client, ts.URL, cfg.SeedAdminEmail, cfg.SeedAdminPassword)

	email := fmt.Sprintf("journey-%d@example.com", time.Now().UnixNano())
	code := fmt.Sprintf("EMP%d", time.Now().UnixNano()%1000000)
	resp, env := postJSON(t, client, ts.URL+"/api/employees", adminToken, map[string]any{
		"employee_code":       code,
		"name":                "Journey Tester",
		"email":               email,
		"hire_date":           "2026-01-05",
		"create_user_account": true,
		"password":            "rahasia123",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", resp.StatusCode, env.Message)
	}
	if env.Message != "Karyawan berhasil ditambahkan" {
		t.Fatalf("unexpected message: %q", env.Message)
	}

	employeeToken, _ := login(t, client, ts.URL, email, "rahasia123")

	resp, env = postJSON(t, client, ts.URL+"/api/attendances/check-in", employeeToken, nil)
	if resp.StatusCode != http.StatusOK || env.Message != "Check-in berhasil" {
		t.Fatalf("check-in failed: %d %q", resp.StatusCode, env.Message)
	}

	resp, env = postJSON(t, client, ts.URL+"/api/attendances/check-in", employeeToken, nil)
	if resp.StatusCode != http.StatusBadRequest || env.Message != "Anda sudah check-in hari ini" {
		t.Fatalf("expected duplicate check-in rejection, got %d %q", resp.StatusCode, env.Message)
	}

	resp, env = postJSON(t, client, ts.URL+"/api/attendances/check-out", employeeToken, nil)
	if resp.StatusCode != http.StatusOK || env.Message != "Check-out berhasil" {
		t.Fatalf("check-out failed: %d %q", resp.StatusCode, env.Message)
	}

	resp, env = postJSON(t, client, ts.URL+"/api/leaves", employeeToken, map[string]any{
		"leave_type": "annual",
		"start_date": "2026-04-01",
		"end_date":   "2026-04-03",
		"reason":     "Liburan",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("leave request failed: %d %q", resp.StatusCode, env.Message)
	}
	var created struct {
		ID int64 `json:"id"`
	}
	if err := json.Unmarshal(env.Data, &created); err != nil {
		t.Fatalf("decode leave: %v", err)
	}

	req, _ := http.NewRequest(http.MethodPut, fmt.Sprintf("%s/api/leaves/%d/approve", ts.URL, created.ID), bytes.NewReader([]byte(`{"status":"approved"}`)))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+adminToken)
	approveResp, err := client.Do(req)
	if err != nil {
		t.Fatalf("approve failed: %v", err)
	}
	var approveEnv envelope
	if err := json.NewDecoder(approveResp.Body).Decode(&approveEnv); err != nil {
		t.Fatalf("decode approve: %v", err)
	}
	approveResp.Body.Close()
	if approveResp.StatusCode != http.StatusOK || approveEnv.Message != "Cuti berhasil disetujui" {
		t.Fatalf("expected approval, got %d %q", approveResp.StatusCode, approveEnv.Message)
	}
}

func TestRefreshTokenRotationJourney(t *testing.T) {
	dbURL := os.Getenv("TEST_DATABASE_URL")
	if dbURL == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	cfg := testConfig(dbURL)
	app, err := hrserver.New(context.Background(), cfg)
	if err != nil {
		t.Fatalf("failed to start app: %v", err)
	}
	defer app.DB.Close()

	ts := httptest.NewServer(app.Router)
	defer ts.Close()
	client := ts.Client()

	_, refresh := login(t, client, ts.URL, cfg.SeedAdminEmail, cfg.SeedAdminPassword)

	resp, env := postJSON(t, client, ts.URL+"/api/auth/refresh", "", map[string]string{"refreshToken": refresh})
	if resp.StatusCode != http.StatusOK || env.Message != "Token berhasil diperbarui" {
		t.Fatalf("refresh failed: %d %q", resp.StatusCode, env.Message)
	}

	resp, env = postJSON(t, client, ts.URL+"/api/auth/refresh", "", map[string]string{"refreshToken": refresh})
	if resp.StatusCode != http.StatusUnauthorized || env.Message != "Refresh token tidak valid" {
		t.Fatalf("expected rotated token rejection, got %d %q", resp.StatusCode, env.Message)
	}
}
