package repository

import "github.com/yltimon/Yosemite-Voluteer/models"

// UserRepository defines the interface for user operations
type UserRepository interface {
	CreateUser(user *models.User) error
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id string) (*models.User, error)
	GetAllUsers() ([]*models.User, error)
	DeleteUser(id string) error
}
