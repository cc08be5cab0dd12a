package repository

import "github.com/yltimon/Yosemite-Voluteer/models"

// ApplicationRepository defines the interface for application operations.
//
// Reads resolve the referenced User and Post the way a document populate
// does: a reference to a record that has since been deleted resolves to nil
// rather than failing the read.
type ApplicationRepository interface {
	CreateApplication(app *models.Application) error
	// GetAllApplications returns every application with User and Post resolved.
	GetAllApplications() ([]*models.Application, error)
	// GetApplicationsByUser returns one user's applications with Post resolved.
	GetApplicationsByUser(userID string) ([]*models.Application, error)
	UpdateStatus(id, status string) error
	DeleteApplication(id string) error
}
