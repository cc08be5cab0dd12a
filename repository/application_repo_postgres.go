package repository

import (
	"database/sql"
	"time"

	"github.com/yltimon/Yosemite-Voluteer/models"

	"github.com/google/uuid"
)

type PostgresApplicationRepo struct {
	DB *sql.DB
}

func NewPostgresApplicationRepo(db *sql.DB) *PostgresApplicationRepo {
	return &PostgresApplicationRepo{DB: db}
}

func (r *PostgresApplicationRepo) CreateApplication(app *models.Application) error {
	if app.ID == "" {
		app.ID = uuid.NewString()
	}
	if app.Status == "" {
		app.Status = models.StatusPending
	}
	if app.CreatedAt.IsZero() {
		app.CreatedAt = time.Now().UTC()
	}

	_, err := r.DB.Exec(`
		INSERT INTO applications(id,user_id,post_id,start_date,end_date,status,created_at)
		VALUES($1,$2,$3,$4,$5,$6,$7)
	`, app.ID, app.UserID, app.PostID, app.StartDate, app.EndDate, app.Status, app.CreatedAt)
	return err
}

const applicationJoinQuery = `
	SELECT a.id, a.user_id, a.post_id, a.start_date, a.end_date, a.status, a.created_at,
	       u.id, u.name, u.email, u.is_admin,
	       p.id, p.image, p.title, p.description
	FROM applications a
	LEFT JOIN users u ON u.id = a.user_id
	LEFT JOIN posts p ON p.id = a.post_id
`

func (r *PostgresApplicationRepo) GetAllApplications() ([]*models.Application, error) {
	rows, err := r.DB.Query(applicationJoinQuery + ` ORDER BY a.created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanApplications(rows)
}

func (r *PostgresApplicationRepo) GetApplicationsByUser(userID string) ([]*models.Application, error) {
	rows, err := r.DB.Query(applicationJoinQuery+` WHERE a.user_id=$1 ORDER BY a.created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanApplications(rows)
}

// scanApplications decodes joined rows. The user and post sides of the join
// are nullable: a reference to a deleted record leaves the relation nil.
func scanApplications(rows *sql.Rows) ([]*models.Application, error) {
	var apps []*models.Application
	for rows.Next() {
		app := &models.Application{}
		var start, end sql.NullTime
		var uID, uName, uEmail sql.NullString
		var uAdmin sql.NullBool
		var pID, pImage, pTitle, pDesc sql.NullString

		err := rows.Scan(
			&app.ID, &app.UserID, &app.PostID, &start, &end, &app.Status, &app.CreatedAt,
			&uID, &uName, &uEmail, &uAdmin,
			&pID, &pImage, &pTitle, &pDesc,
		)
		if err != nil {
			return nil, err
		}
		app.StartDate = start.Time
		app.EndDate = end.Time
		if uID.Valid {
			app.User = &models.User{
				ID:      uID.String,
				Name:    uName.String,
				Email:   uEmail.String,
				IsAdmin: uAdmin.Bool,
			}
		}
		if pID.Valid {
			app.Post = &models.Post{
				ID:          pID.String,
				Image:       pImage.String,
				Title:       pTitle.String,
				Description: pDesc.String,
			}
		}
		apps = append(apps, app)
	}
	return apps, rows.Err()
}

func (r *PostgresApplicationRepo) UpdateStatus(id, status string) error {
	res, err := r.DB.Exec(`UPDATE applications SET status=$2 WHERE id=$1`, id, status)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresApplicationRepo) DeleteApplication(id string) error {
	res, err := r.DB.Exec(`DELETE FROM applications WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
