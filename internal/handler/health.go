package handler

import "net/http"

// Healthz handles GET /healthz.
func Healthz(w http.ResponseWriter, r *http.Request) {
	RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
