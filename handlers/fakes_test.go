package handlers_test

import (
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/yltimon/Yosemite-Voluteer/handlers"
	"github.com/yltimon/Yosemite-Voluteer/models"
	"github.com/yltimon/Yosemite-Voluteer/repository"
	"github.com/yltimon/Yosemite-Voluteer/routes"
	"github.com/yltimon/Yosemite-Voluteer/session"
	"github.com/yltimon/Yosemite-Voluteer/view"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// In-memory repositories backing the handler tests.

type fakeUserRepo struct {
	mu    sync.Mutex
	seq   int
	users map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*models.User)}
}

func (r *fakeUserRepo) CreateUser(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == user.Email {
			return repository.ErrDuplicateEmail
		}
	}
	r.seq++
	if user.ID == "" {
		user.ID = fmt.Sprintf("user-%d", r.seq)
	}
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *fakeUserRepo) GetUserByEmail(email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeUserRepo) GetUserByID(id string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *u
	return &copied, nil
}

func (r *fakeUserRepo) GetAllUsers() ([]*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*models.User
	for _, u := range r.users {
		copied := *u
		out = append(out, &copied)
	}
	return out, nil
}

func (r *fakeUserRepo) DeleteUser(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.users, id)
	return nil
}

type fakePostRepo struct {
	mu    sync.Mutex
	seq   int
	posts []*models.Post

	// createErr, when set, makes CreatePost fail, simulating a storage
	// outage.
	createErr error
}

func (r *fakePostRepo) CreatePost(post *models.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return r.createErr
	}
	r.seq++
	if post.ID == "" {
		post.ID = fmt.Sprintf("post-%d", r.seq)
	}
	copied := *post
	r.posts = append(r.posts, &copied)
	return nil
}

func (r *fakePostRepo) GetPostByID(id string) (*models.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.posts {
		if p.ID == id {
			copied := *p
			return &copied, nil
		}
	}
	return nil, repository.ErrNotFound
}

// GetAllPosts returns newest first, i.e. reverse insertion order.
func (r *fakePostRepo) GetAllPosts() ([]*models.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*models.Post, 0, len(r.posts))
	for i := len(r.posts) - 1; i >= 0; i-- {
		copied := *r.posts[i]
		out = append(out, &copied)
	}
	return out, nil
}

func (r *fakePostRepo) UpdatePost(id, title, description string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.posts {
		if p.ID == id {
			p.Title = title
			p.Description = description
			return nil
		}
	}
	return repository.ErrNotFound
}

func (r *fakePostRepo) DeletePost(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, p := range r.posts {
		if p.ID == id {
			r.posts = append(r.posts[:i], r.posts[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

type fakeAppRepo struct {
	mu    sync.Mutex
	seq   int
	apps  []*models.Application
	users *fakeUserRepo
	posts *fakePostRepo

	// createErr, when set, makes CreateApplication fail, simulating a
	// storage outage.
	createErr error
}

func (r *fakeAppRepo) CreateApplication(app *models.Application) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return r.createErr
	}
	r.seq++
	if app.ID == "" {
		app.ID = fmt.Sprintf("app-%d", r.seq)
	}
	if app.Status == "" {
		app.Status = models.StatusPending
	}
	copied := *app
	r.apps = append(r.apps, &copied)
	return nil
}

func (r *fakeAppRepo) all(filterUser string, withUser bool) []*models.Application {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*models.Application
	for _, a := range r.apps {
		if filterUser != "" && a.UserID != filterUser {
			continue
		}
		copied := *a
		if post, err := r.posts.GetPostByID(a.PostID); err == nil {
			copied.Post = post
		}
		if withUser {
			if user, err := r.users.GetUserByID(a.UserID); err == nil {
				copied.User = user
			}
		}
		out = append(out, &copied)
	}
	return out
}

func (r *fakeAppRepo) GetAllApplications() ([]*models.Application, error) {
	return r.all("", true), nil
}

func (r *fakeAppRepo) GetApplicationsByUser(userID string) ([]*models.Application, error) {
	return r.all(userID, false), nil
}

func (r *fakeAppRepo) UpdateStatus(id, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.apps {
		if a.ID == id {
			a.Status = status
			return nil
		}
	}
	return repository.ErrNotFound
}

func (r *fakeAppRepo) DeleteApplication(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, a := range r.apps {
		if a.ID == id {
			r.apps = append(r.apps[:i], r.apps[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

// env wires the real router, renderer, and session store over the fakes.
type env struct {
	t         *testing.T
	users     *fakeUserRepo
	posts     *fakePostRepo
	apps      *fakeAppRepo
	sessions  *session.Store
	uploadDir string
	server    *httptest.Server
	client    *http.Client
}

func newEnv(t *testing.T) *env {
	t.Helper()

	renderer, err := view.New("../templates")
	require.NoError(t, err)

	users := newFakeUserRepo()
	posts := &fakePostRepo{}
	apps := &fakeAppRepo{users: users, posts: posts}
	sessions := session.NewStore("test-secret")
	uploadDir := t.TempDir()

	auth := &handlers.AuthMiddleware{Sessions: sessions, Users: users}
	authHandler := &handlers.AuthHandler{
		Users: users, Sessions: sessions, Renderer: renderer,
		AdminUsername: "admin", AdminPassword: "11",
	}
	postHandler := &handlers.PostHandler{
		Posts: posts, Sessions: sessions, Renderer: renderer, UploadDir: uploadDir,
	}
	appHandler := &handlers.ApplicationHandler{Apps: apps, Sessions: sessions, Renderer: renderer}
	userHandler := &handlers.UserHandler{Users: users, Sessions: sessions, Renderer: renderer}
	reportHandler := &handlers.ReportHandler{
		Repo:     &repository.ReportRepository{AppRepo: apps},
		SavePath: t.TempDir(),
	}

	handler := routes.Setup(auth, authHandler, postHandler, appHandler, userHandler, reportHandler, t.TempDir())
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	client := &http.Client{
		Jar: jar,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}

	return &env{
		t: t, users: users, posts: posts, apps: apps,
		sessions: sessions, uploadDir: uploadDir, server: srv, client: client,
	}
}

func (e *env) get(path string) *http.Response {
	e.t.Helper()
	resp, err := e.client.Get(e.server.URL + path)
	require.NoError(e.t, err)
	return resp
}

func (e *env) postForm(path string, form url.Values) *http.Response {
	e.t.Helper()
	resp, err := e.client.PostForm(e.server.URL+path, form)
	require.NoError(e.t, err)
	return resp
}

func (e *env) body(resp *http.Response) string {
	e.t.Helper()
	defer resp.Body.Close()
	var sb strings.Builder
	_, err := io.Copy(&sb, resp.Body)
	require.NoError(e.t, err)
	return sb.String()
}

// addUser stores a user with a bcrypt-hashed password and returns it.
func (e *env) addUser(name, email, password string) *models.User {
	e.t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(e.t, err)
	user := &models.User{Name: name, Email: email, Password: string(hash)}
	require.NoError(e.t, e.users.CreateUser(user))
	return user
}

// loginUser establishes a user session on the test client.
func (e *env) loginUser(email, password string) {
	e.t.Helper()
	resp := e.postForm("/login", url.Values{"email": {email}, "password": {password}})
	resp.Body.Close()
	require.Equal(e.t, "/", resp.Header.Get("Location"))
}

// loginAdmin establishes the admin session on the test client.
func (e *env) loginAdmin() {
	e.t.Helper()
	resp := e.postForm("/admin/login", url.Values{"username": {"admin"}, "password": {"11"}})
	resp.Body.Close()
	require.Equal(e.t, "/admin/add-post", resp.Header.Get("Location"))
}
