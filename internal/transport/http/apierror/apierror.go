package apierror

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// Problem is the error payload for failures that carry a single message.
type Problem struct {
	Title  string `json:"title"`
	Detail string `json:"detail"`
	Status int    `json:"status"`
}

// WriteJSON writes data as a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
	}
}

// WriteProblem writes a Problem payload with the given status code.
func WriteProblem(w http.ResponseWriter, status int, title, detail string) {
	WriteJSON(w, status, Problem{
		Title:  title,
		Detail: detail,
		Status: status,
	})
}
