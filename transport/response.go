package transport

import (
	"encoding/json"
	stderrors "errors"
	"net/http"

	"github.com/muhammadheryan/marketplace/constant"
	"github.com/muhammadheryan/marketplace/utils/errors"
)

// Counter names reported next to partial-failure results.
const (
	counterCreated = "Objects created"
	counterUpdated = "Updated objects"
	counterDeleted = "Delete objects"
)

func writeJSON(w http.ResponseWriter, status int, body map[string]any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// writeSuccess writes {"Status": true, "Data": data}. A nil data omits Data.
func writeSuccess(w http.ResponseWriter, data any) {
	body := map[string]any{"Status": true}
	if data != nil {
		body["Data"] = data
	}
	writeJSON(w, http.StatusOK, body)
}

func writeCounter(w http.ResponseWriter, counter string, n int) {
	writeJSON(w, http.StatusOK, map[string]any{"Status": true, counter: n})
}

func writeError(w http.ResponseWriter, err error) {
	status, body := errorBody(err)
	writeJSON(w, status, body)
}

// writeCounterError reports a failure together with the number of items
// applied before it.
func writeCounterError(w http.ResponseWriter, err error, counter string, n int) {
	status, body := errorBody(err)
	body[counter] = n
	writeJSON(w, status, body)
}

func errorBody(err error) (int, map[string]any) {
	var ce errors.CustomError
	if !stderrors.As(err, &ce) {
		ce = errors.SetCustomError(constant.ErrInternal)
	}
	return ce.ErrorHTTPCode(), map[string]any{
		"Status": false,
		"Errors": ce.Error(),
		"Code":   ce.ErrorCode(),
	}
}

// decodeBody decodes the JSON request body into dst, reporting malformed
// input as ErrInvalidRequest.
func decodeBody(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.UseNumber()
	if err := dec.Decode(dst); err != nil {
		return errors.SetCustomError(constant.ErrInvalidRequest)
	}
	return nil
}
