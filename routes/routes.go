package routes

import (
	"net/http"

	"github.com/yltimon/Yosemite-Voluteer/handlers"

	"github.com/gorilla/mux"
)

// Setup wires the full HTTP surface: public site, user-gated routes, and the
// admin panel, plus static files served out of publicDir.
func Setup(
	auth *handlers.AuthMiddleware,
	authHandler *handlers.AuthHandler,
	postHandler *handlers.PostHandler,
	appHandler *handlers.ApplicationHandler,
	userHandler *handlers.UserHandler,
	reportHandler *handlers.ReportHandler,
	publicDir string,
) http.Handler {
	r := mux.NewRouter()
	r.Use(mux.MiddlewareFunc(handlers.Recover))
	r.Use(mux.MiddlewareFunc(auth.WithCurrentUser))

	requireUser := func(h http.HandlerFunc) http.Handler { return auth.RequireAuthenticated(h) }
	requireAdmin := func(h http.HandlerFunc) http.Handler { return auth.RequireAdmin(h) }

	// Public site
	r.HandleFunc("/", postHandler.Index).Methods(http.MethodGet)
	r.HandleFunc("/about", postHandler.About).Methods(http.MethodGet)
	r.HandleFunc("/posts", postHandler.PostsShell).Methods(http.MethodGet)
	r.HandleFunc("/posts/{id}", postHandler.Show).Methods(http.MethodGet)

	r.HandleFunc("/register", authHandler.RegisterForm).Methods(http.MethodGet)
	r.HandleFunc("/register", authHandler.Register).Methods(http.MethodPost)
	r.HandleFunc("/login", authHandler.LoginForm).Methods(http.MethodGet)
	r.HandleFunc("/login", authHandler.Login).Methods(http.MethodPost)
	r.HandleFunc("/logout", authHandler.Logout).Methods(http.MethodGet)

	// Logged-in users
	r.Handle("/apply", requireUser(appHandler.Apply)).Methods(http.MethodPost)
	r.Handle("/history", requireUser(appHandler.History)).Methods(http.MethodGet)

	// Admin panel
	r.HandleFunc("/admin/login", authHandler.AdminLoginForm).Methods(http.MethodGet)
	r.HandleFunc("/admin/login", authHandler.AdminLogin).Methods(http.MethodPost)

	r.Handle("/admin", requireAdmin(postHandler.AddPostForm)).Methods(http.MethodGet)
	r.Handle("/admin/add-post", requireAdmin(postHandler.AddPostForm)).Methods(http.MethodGet)
	r.Handle("/admin/add-post", requireAdmin(postHandler.AddPost)).Methods(http.MethodPost)
	r.Handle("/admin/my-posts", requireAdmin(postHandler.MyPosts)).Methods(http.MethodGet)
	r.Handle("/delete-post/{id}", requireAdmin(postHandler.DeletePost)).Methods(http.MethodPost)
	r.Handle("/update-post/{id}", requireAdmin(postHandler.UpdatePostForm)).Methods(http.MethodGet)
	r.Handle("/update-post/{id}", requireAdmin(postHandler.UpdatePost)).Methods(http.MethodPost)

	r.Handle("/admin/applications", requireAdmin(appHandler.AdminList)).Methods(http.MethodGet)
	r.Handle("/admin/applications/report", requireAdmin(reportHandler.ApplicationsPDF)).Methods(http.MethodGet)
	r.Handle("/admin/application/{id}/status", requireAdmin(appHandler.UpdateStatus)).Methods(http.MethodPost)
	r.Handle("/admin/application/{id}/delete", requireAdmin(appHandler.Delete)).Methods(http.MethodPost)

	r.Handle("/admin/users", requireAdmin(userHandler.AdminList)).Methods(http.MethodGet)
	r.Handle("/admin/users/delete/{id}", requireAdmin(userHandler.Delete)).Methods(http.MethodPost)

	// Uploaded images and other static assets
	fileServer := http.FileServer(http.Dir(publicDir))
	r.PathPrefix("/image/").Handler(fileServer)
	r.PathPrefix("/css/").Handler(fileServer)

	return r
}
