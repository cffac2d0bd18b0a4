package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
)

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if data == nil {
		return
	}

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(true)
	_ = enc.Encode(data)
}

func parseIntOr(input string, fallback int) int {
	if input == "" {
		return fallback
	}
	v, err := strconv.Atoi(input)
	if err != nil {
		return fallback
	}
	return v
}
