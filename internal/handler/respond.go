package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/dukerupert/vanir/internal/domain"
	"github.com/dukerupert/vanir/internal/middleware"
)

// errorBody is the JSON error envelope returned by every endpoint.
type errorBody struct {
	Code           string `json:"code"`
	Message        string `json:"message"`
	ShortfallCents *int64 `json:"shortfall_cents,omitempty"`
}

// RespondJSON writes v as a JSON response with the given status.
func RespondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		json.NewEncoder(w).Encode(v)
	}
}

// RespondError writes a structured JSON error response, mapping domain error
// codes to HTTP status codes. Below-minimum coupon rejections additionally
// carry the shortfall so the client can present "add X more to qualify".
func RespondError(w http.ResponseWriter, r *http.Request, err error) {
	body := errorBody{
		Code:    domain.ErrorCode(err),
		Message: domain.ErrorMessage(err),
	}

	var belowMin *domain.BelowMinimumError
	if errors.As(err, &belowMin) {
		shortfall := belowMin.ShortfallCents()
		body.Code = domain.EINVALID
		body.Message = belowMin.Error()
		body.ShortfallCents = &shortfall
	}

	status := errorCodeToHTTPStatus(body.Code)

	logger := middleware.GetLogger(r.Context())
	attrs := []any{
		slog.String("error", err.Error()),
		slog.String("code", body.Code),
		slog.Int("status", status),
	}
	if status >= 500 {
		logger.Error("request failed", attrs...)
	} else {
		logger.Info("request rejected", attrs...)
	}

	RespondJSON(w, status, map[string]errorBody{"error": body})
}

// errorCodeToHTTPStatus maps domain error codes to HTTP status codes.
func errorCodeToHTTPStatus(code string) int {
	switch code {
	case domain.EINVALID:
		return http.StatusBadRequest // 400
	case domain.ENOTFOUND:
		return http.StatusNotFound // 404
	case domain.ECONFLICT:
		return http.StatusConflict // 409
	case domain.EINTERNAL:
		return http.StatusInternalServerError // 500
	default:
		return http.StatusInternalServerError // 500
	}
}
