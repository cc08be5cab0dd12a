package handlers

import (
	"log"
	"net/http"

	"github.com/yltimon/Yosemite-Voluteer/session"
	"github.com/yltimon/Yosemite-Voluteer/view"
)

// renderPage renders a template with the ambient fields every page expects:
// login state, current path, and any pending flash messages.
func renderPage(rnd *view.Renderer, s *session.Store, w http.ResponseWriter, r *http.Request, name string, data map[string]any) {
	if data == nil {
		data = map[string]any{}
	}
	data["isLoggedIn"] = IsLoggedIn(r)
	data["isAdmin"] = IsAdmin(r)
	data["path"] = r.URL.Path
	data["errors"] = s.Flashes(r, "error")
	data["success"] = s.Flashes(r, "success")

	if err := rnd.Render(w, name, data); err != nil {
		log.Printf("error rendering %s: %v", name, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}
