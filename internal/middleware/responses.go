package middleware

import (
	"encoding/json"
	"net/http"
)

type errorBody struct {
	Error string `json:"error"`
}

// writeError reports a request failure. htmx callers get a JSON body their
// error hook can surface without swapping an HTML error page into the target;
// everyone else gets the plain-text response.
func writeError(w http.ResponseWriter, r *http.Request, code int, msg string) {
	if IsHTMX(r.Context()) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(code)
		_ = json.NewEncoder(w).Encode(errorBody{Error: msg})
		return
	}
	http.Error(w, msg, code)
}
