package repository

import (
	"database/sql"
	"time"

	"github.com/yltimon/Yosemite-Voluteer/models"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type PostgresUserRepo struct {
	DB *sql.DB
}

func NewPostgresUserRepo(db *sql.DB) *PostgresUserRepo {
	return &PostgresUserRepo{DB: db}
}

func (r *PostgresUserRepo) CreateUser(user *models.User) error {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}

	_, err := r.DB.Exec(`
		INSERT INTO users(id,name,email,password_hash,is_admin,created_at)
		VALUES($1,$2,$3,$4,$5,$6)
	`, user.ID, user.Name, user.Email, user.Password, user.IsAdmin, user.CreatedAt)

	if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
		return ErrDuplicateEmail
	}
	return err
}

func (r *PostgresUserRepo) GetUserByEmail(email string) (*models.User, error) {
	return r.getUser(`SELECT id,name,email,password_hash,is_admin,created_at FROM users WHERE email=$1`, email)
}

func (r *PostgresUserRepo) GetUserByID(id string) (*models.User, error) {
	return r.getUser(`SELECT id,name,email,password_hash,is_admin,created_at FROM users WHERE id=$1`, id)
}

func (r *PostgresUserRepo) getUser(query string, arg string) (*models.User, error) {
	user := &models.User{}
	err := r.DB.QueryRow(query, arg).
		Scan(&user.ID, &user.Name, &user.Email, &user.Password, &user.IsAdmin, &user.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (r *PostgresUserRepo) GetAllUsers() ([]*models.User, error) {
	rows, err := r.DB.Query(`SELECT id,name,email,password_hash,is_admin,created_at FROM users ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		user := &models.User{}
		if err := rows.Scan(&user.ID, &user.Name, &user.Email, &user.Password, &user.IsAdmin, &user.CreatedAt); err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

func (r *PostgresUserRepo) DeleteUser(id string) error {
	res, err := r.DB.Exec(`DELETE FROM users WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
