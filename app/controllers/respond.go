package controllers

import (
	"encoding/json"
	"net/http"

	"gemini-portal/app/middleware"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func currentUsername(r *http.Request) string {
	if claims := middleware.GetSession(r.Context()); claims != nil {
		return claims.Username
	}
	return ""
}
