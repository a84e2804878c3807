package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// Envelope is the wire format of every JSON response. Error carries the
// underlying failure detail and is only populated on 500s.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

func WriteJSON(w http.ResponseWriter, status int, payload Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Warn("write json failed", "err", err)
	}
}

func Success(w http.ResponseWriter, message string, data any) {
	WriteJSON(w, http.StatusOK, Envelope{Success: true, Message: message, Data: data})
}

func SuccessData(w http.ResponseWriter, data any) {
	WriteJSON(w, http.StatusOK, Envelope{Success: true, Data: data})
}

func Created(w http.ResponseWriter, message string, data any) {
	WriteJSON(w, http.StatusCreated, Envelope{Success: true, Message: message, Data: data})
}

func Fail(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, Envelope{Success: false, Message: message})
}

// FailError is for unanticipated failures: the message stays user-facing,
// the error field echoes what actually went wrong.
func FailError(w http.ResponseWriter, status int, message string, err error) {
	envelope := Envelope{Success: false, Message: message}
	if err != nil {
		envelope.Error = err.Error()
	}
	WriteJSON(w, status, envelope)
}
