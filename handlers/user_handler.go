package handlers

import (
	"log"
	"net/http"

	"github.com/yltimon/Yosemite-Voluteer/repository"
	"github.com/yltimon/Yosemite-Voluteer/session"
	"github.com/yltimon/Yosemite-Voluteer/view"

	"github.com/gorilla/mux"
)

type UserHandler struct {
	Users    repository.UserRepository
	Sessions *session.Store
	Renderer *view.Renderer
}

func (h *UserHandler) AdminList(w http.ResponseWriter, r *http.Request) {
	users, err := h.Users.GetAllUsers()
	if err != nil {
		log.Printf("error fetching users: %v", err)
		http.Redirect(w, r, "/admin", http.StatusFound)
		return
	}
	renderPage(h.Renderer, h.Sessions, w, r, "admin/users", map[string]any{"users": users})
}

// Delete removes the user record. Applications that reference the user are
// not touched; their user relation resolves to nil from here on.
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.Users.DeleteUser(mux.Vars(r)["id"]); err != nil {
		log.Printf("error deleting user: %v", err)
	}
	http.Redirect(w, r, "/admin/users", http.StatusFound)
}
