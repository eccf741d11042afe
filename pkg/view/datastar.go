package view

import (
	"net/http"
	"strings"

	"github.com/starfederation/datastar-go/datastar"
)

const dataStarAccept = "text/event-stream"

// IsDataStar reports whether r was issued by the DataStar client, which
// accepts server-sent events or carries signals in the "datastar" query param.
func IsDataStar(r *http.Request) bool {
	if strings.Contains(r.Header.Get("Accept"), dataStarAccept) {
		return true
	}
	return r.URL.Query().Has("datastar")
}

// Redirect sends the client to url. DataStar requests get a redirect event
// over SSE, the rest a plain redirect with code.
func Redirect(w http.ResponseWriter, r *http.Request, url string, code int) error {
	if IsDataStar(r) {
		return datastar.NewSSE(w, r).Redirect(url)
	}
	http.Redirect(w, r, url, code)
	return nil
}
