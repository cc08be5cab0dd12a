package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/yltimon/Yosemite-Voluteer/models"
	"github.com/yltimon/Yosemite-Voluteer/repository"
	"github.com/yltimon/Yosemite-Voluteer/session"
	"github.com/yltimon/Yosemite-Voluteer/view"

	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 10

type AuthHandler struct {
	Users    repository.UserRepository
	Sessions *session.Store
	Renderer *view.Renderer

	// Admin credentials exist only in configuration; there is no admin
	// user record.
	AdminUsername string
	AdminPassword string
}

func (h *AuthHandler) RegisterForm(w http.ResponseWriter, r *http.Request) {
	renderPage(h.Renderer, h.Sessions, w, r, "register", nil)
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	email := r.FormValue("email")
	password := r.FormValue("password")
	name := r.FormValue("name")

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		log.Printf("error hashing password: %v", err)
		h.Sessions.AddFlash(w, r, "error", "Registration failed")
		http.Redirect(w, r, "/register", http.StatusFound)
		return
	}

	user := &models.User{Name: name, Email: email, Password: string(hash)}
	if err := h.Users.CreateUser(user); err != nil {
		if !errors.Is(err, repository.ErrDuplicateEmail) {
			log.Printf("error creating user: %v", err)
		}
		h.Sessions.AddFlash(w, r, "error", "Email already exists")
		http.Redirect(w, r, "/register", http.StatusFound)
		return
	}

	http.Redirect(w, r, "/login", http.StatusFound)
}

func (h *AuthHandler) LoginForm(w http.ResponseWriter, r *http.Request) {
	renderPage(h.Renderer, h.Sessions, w, r, "login", nil)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	email := r.FormValue("email")
	password := r.FormValue("password")

	user, err := h.Users.GetUserByEmail(email)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			log.Printf("error looking up user: %v", err)
		}
		h.Sessions.AddFlash(w, r, "error", "Incorrect email.")
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		h.Sessions.AddFlash(w, r, "error", "Incorrect password.")
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}

	h.Sessions.Login(w, r, session.UserPrincipal{UserID: user.ID})
	http.Redirect(w, r, "/", http.StatusFound)
}

func (h *AuthHandler) AdminLoginForm(w http.ResponseWriter, r *http.Request) {
	renderPage(h.Renderer, h.Sessions, w, r, "admin/login", nil)
}

func (h *AuthHandler) AdminLogin(w http.ResponseWriter, r *http.Request) {
	username := r.FormValue("username")
	password := r.FormValue("password")

	if username != h.AdminUsername || password != h.AdminPassword {
		h.Sessions.AddFlash(w, r, "error", "Incorrect username or password")
		http.Redirect(w, r, "/admin/login", http.StatusFound)
		return
	}

	h.Sessions.Login(w, r, session.AdminPrincipal{Username: username})
	http.Redirect(w, r, "/admin/add-post", http.StatusFound)
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.Sessions.Logout(w, r)
	h.Sessions.AddFlash(w, r, "success", "You have been logged out successfully")
	http.Redirect(w, r, "/", http.StatusFound)
}
