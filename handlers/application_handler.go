package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/yltimon/Yosemite-Voluteer/models"
	"github.com/yltimon/Yosemite-Voluteer/repository"
	"github.com/yltimon/Yosemite-Voluteer/session"
	"github.com/yltimon/Yosemite-Voluteer/view"

	"github.com/gorilla/mux"
)

type ApplicationHandler struct {
	Apps     repository.ApplicationRepository
	Sessions *session.Store
	Renderer *view.Renderer
}

// parseDate reads an HTML date input; a blank or malformed value becomes the
// zero time, same as the original's unvalidated date fields.
func parseDate(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}

// Apply files an application for the logged-in user. A missing post id
// bounces back to the listing; a persistence failure bounces back to the
// post's own page. The two targets differ on purpose.
func (h *ApplicationHandler) Apply(w http.ResponseWriter, r *http.Request) {
	user, ok := CurrentUser(r)
	if !ok {
		h.Sessions.AddFlash(w, r, "error", "You need to be logged in to apply for jobs")
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}

	postID := r.FormValue("post")
	if postID == "" {
		h.Sessions.AddFlash(w, r, "error", "No post ID found")
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	app := &models.Application{
		UserID:    user.ID,
		PostID:    postID,
		StartDate: parseDate(r.FormValue("startDate")),
		EndDate:   parseDate(r.FormValue("endDate")),
	}

	if err := h.Apps.CreateApplication(app); err != nil {
		log.Printf("error creating application: %v", err)
		h.Sessions.AddFlash(w, r, "error", "Error applying for job: "+err.Error())
		http.Redirect(w, r, "/posts/"+postID, http.StatusFound)
		return
	}

	h.Sessions.AddFlash(w, r, "success", "Application submitted successfully")
	http.Redirect(w, r, "/", http.StatusFound)
}

// History lists the logged-in user's own applications with each post
// resolved.
func (h *ApplicationHandler) History(w http.ResponseWriter, r *http.Request) {
	user, ok := CurrentUser(r)
	if !ok {
		// The admin principal has no application history.
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}

	apps, err := h.Apps.GetApplicationsByUser(user.ID)
	if err != nil {
		log.Printf("error fetching application history: %v", err)
		apps = nil
	}
	renderPage(h.Renderer, h.Sessions, w, r, "history", map[string]any{"applications": apps})
}

// AdminList shows every application with user and post resolved.
func (h *ApplicationHandler) AdminList(w http.ResponseWriter, r *http.Request) {
	apps, err := h.Apps.GetAllApplications()
	if err != nil {
		log.Printf("error fetching applications: %v", err)
		apps = nil
	}
	renderPage(h.Renderer, h.Sessions, w, r, "admin/applications", map[string]any{"applications": apps})
}

// UpdateStatus overwrites an application's status with whatever the form
// sent. No allowed-value check is applied.
func (h *ApplicationHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := h.Apps.UpdateStatus(id, r.FormValue("status")); err != nil {
		log.Printf("error updating application status: %v", err)
	}
	http.Redirect(w, r, "/admin/applications", http.StatusFound)
}

func (h *ApplicationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.Apps.DeleteApplication(mux.Vars(r)["id"]); err != nil {
		log.Printf("error deleting application: %v", err)
	}
	http.Redirect(w, r, "/admin/applications", http.StatusFound)
}
