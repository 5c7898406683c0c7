package httpx

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"

	apperrors "github.com/campushq/campushq-api/internal/errors"
)

// DecodeJSON decodes JSON from the request body into the destination and handles errors.
// Returns true if successful, false if there was an error (error response already written).
func DecodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_json", Err: err})
		return false
	}

	return true
}

// WriteJSON writes a JSON response with the given status code and data.
func WriteJSON(w http.ResponseWriter, code int, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err := buf.WriteTo(w); err != nil {
		// Response writer errors (e.g., client disconnect) can't be recovered from here.
		return
	}
}

// ErrorParams groups parameters for WriteError to adhere to the ≤3 params guideline.
type ErrorParams struct {
	Code    int
	ErrCode string
	Err     error
}

// WriteError writes a JSON error response using ErrorParams.
func WriteError(w http.ResponseWriter, p ErrorParams) {
	WriteJSON(w, p.Code, map[string]string{"error": p.ErrCode, "message": p.Err.Error()})
}

// WriteAppError maps an application error to an HTTP status and writes it.
// AppError codes carry the status; anything else is a 500.
func WriteAppError(w http.ResponseWriter, err error) {
	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "internal_error", Err: err})
		return
	}
	WriteError(w, ErrorParams{Code: statusForCode(appErr.Code), ErrCode: string(appErr.Code), Err: appErr})
}

func statusForCode(code apperrors.ErrorCode) int {
	switch code {
	case apperrors.ErrCodeNotFound:
		return http.StatusNotFound
	case apperrors.ErrCodeConflict:
		return http.StatusConflict
	case apperrors.ErrCodeValidation:
		return http.StatusBadRequest
	case apperrors.ErrCodeUnauthorized:
		return http.StatusUnauthorized
	case apperrors.ErrCodeForbidden:
		return http.StatusForbidden
	case apperrors.ErrCodeTimeout:
		return http.StatusGatewayTimeout
	case apperrors.ErrCodeCanceled:
		return 499 // client closed request
	default:
		return http.StatusInternalServerError
	}
}
