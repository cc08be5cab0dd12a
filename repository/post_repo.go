package repository

import "github.com/yltimon/Yosemite-Voluteer/models"

// PostRepository defines the interface for post operations
type PostRepository interface {
	CreatePost(post *models.Post) error
	GetPostByID(id string) (*models.Post, error)
	// GetAllPosts returns every post, newest first.
	GetAllPosts() ([]*models.Post, error)
	// UpdatePost overwrites title and description only. The stored image
	// filename is deliberately left untouched.
	UpdatePost(id, title, description string) error
	DeletePost(id string) error
}
