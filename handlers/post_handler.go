package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/yltimon/Yosemite-Voluteer/models"
	"github.com/yltimon/Yosemite-Voluteer/repository"
	"github.com/yltimon/Yosemite-Voluteer/session"
	"github.com/yltimon/Yosemite-Voluteer/utils"
	"github.com/yltimon/Yosemite-Voluteer/view"

	"github.com/gorilla/mux"
)

const maxUploadBytes = 10 << 20

type PostHandler struct {
	Posts     repository.PostRepository
	Sessions  *session.Store
	Renderer  *view.Renderer
	UploadDir string
}

// truncateDescription shortens listing descriptions to 100 characters plus
// an ellipsis; anything at or under the limit passes through untouched.
func truncateDescription(s string) string {
	if len(s) > 100 {
		return s[:100] + "..."
	}
	return s
}

// Index lists every post, newest first, with truncated descriptions.
func (h *PostHandler) Index(w http.ResponseWriter, r *http.Request) {
	posts, err := h.Posts.GetAllPosts()
	if err != nil {
		log.Printf("error fetching posts: %v", err)
		posts = nil
	}

	listed := make([]*models.Post, 0, len(posts))
	for _, p := range posts {
		copied := *p
		copied.Description = truncateDescription(p.Description)
		listed = append(listed, &copied)
	}

	renderPage(h.Renderer, h.Sessions, w, r, "index", map[string]any{"posts": listed})
}

func (h *PostHandler) About(w http.ResponseWriter, r *http.Request) {
	renderPage(h.Renderer, h.Sessions, w, r, "about", nil)
}

// PostsShell renders the posts page without a selected post.
func (h *PostHandler) PostsShell(w http.ResponseWriter, r *http.Request) {
	renderPage(h.Renderer, h.Sessions, w, r, "posts", nil)
}

// Show renders a post's detail page with its full description. A missing
// post renders the error view, not an HTTP error status.
func (h *PostHandler) Show(w http.ResponseWriter, r *http.Request) {
	post, err := h.Posts.GetPostByID(mux.Vars(r)["id"])
	if err != nil {
		msg := "An error occurred"
		if errors.Is(err, repository.ErrNotFound) {
			msg = "Post not found"
		} else {
			log.Printf("error fetching post: %v", err)
		}
		renderPage(h.Renderer, h.Sessions, w, r, "error", map[string]any{"error": msg})
		return
	}

	user, _ := CurrentUser(r)
	renderPage(h.Renderer, h.Sessions, w, r, "posts", map[string]any{
		"post": post,
		"user": user,
	})
}

func (h *PostHandler) AddPostForm(w http.ResponseWriter, r *http.Request) {
	renderPage(h.Renderer, h.Sessions, w, r, "admin/add-post", nil)
}

// AddPost creates a post from the add-post form. The image is mandatory;
// its absence is answered with a bare plain-text body rather than a
// redirect, matching the rest of the admin panel's rougher edges.
func (h *PostHandler) AddPost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		http.Error(w, "Unable to parse form data.", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		log.Println("no file uploaded")
		w.Write([]byte("No file uploaded"))
		return
	}
	defer file.Close()

	filename, err := utils.SaveUploadedImage(file, header, h.UploadDir)
	if err != nil {
		log.Printf("error storing image: %v", err)
		w.Write([]byte("Error saving post"))
		return
	}

	post := &models.Post{
		Image:       filename,
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
	}
	if err := h.Posts.CreatePost(post); err != nil {
		log.Printf("error saving post: %v", err)
		w.Write([]byte("Error saving post"))
		return
	}

	renderPage(h.Renderer, h.Sessions, w, r, "admin/add-post", nil)
}

func (h *PostHandler) MyPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.Posts.GetAllPosts()
	if err != nil {
		log.Printf("error fetching posts: %v", err)
		posts = nil
	}
	renderPage(h.Renderer, h.Sessions, w, r, "admin/my-posts", map[string]any{"posts": posts})
}

// DeletePost removes the record only. The stored image file is left on disk;
// the admin panel has no cleanup pass for orphaned images.
func (h *PostHandler) DeletePost(w http.ResponseWriter, r *http.Request) {
	if err := h.Posts.DeletePost(mux.Vars(r)["id"]); err != nil {
		log.Printf("error deleting post: %v", err)
		http.Redirect(w, r, "/my-posts", http.StatusFound)
		return
	}
	http.Redirect(w, r, "/admin/my-posts", http.StatusFound)
}

func (h *PostHandler) UpdatePostForm(w http.ResponseWriter, r *http.Request) {
	post, err := h.Posts.GetPostByID(mux.Vars(r)["id"])
	if err != nil {
		log.Printf("error finding post: %v", err)
		http.Redirect(w, r, "/admin/my-posts", http.StatusFound)
		return
	}
	renderPage(h.Renderer, h.Sessions, w, r, "admin/update-post", map[string]any{"post": post})
}

// UpdatePost overwrites title and description. The image keeps its original
// stored filename.
func (h *PostHandler) UpdatePost(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := h.Posts.UpdatePost(id, r.FormValue("title"), r.FormValue("description")); err != nil {
		log.Printf("error updating post: %v", err)
		http.Redirect(w, r, "/my-posts", http.StatusFound)
		return
	}
	http.Redirect(w, r, "/admin/my-posts", http.StatusFound)
}
