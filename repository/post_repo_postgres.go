package repository

import (
	"database/sql"
	"time"

	"github.com/yltimon/Yosemite-Voluteer/models"

	"github.com/google/uuid"
)

type PostgresPostRepo struct {
	DB *sql.DB
}

func NewPostgresPostRepo(db *sql.DB) *PostgresPostRepo {
	return &PostgresPostRepo{DB: db}
}

func (r *PostgresPostRepo) CreatePost(post *models.Post) error {
	if post.ID == "" {
		post.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if post.CreatedAt.IsZero() {
		post.CreatedAt = now
	}
	post.UpdatedAt = now

	_, err := r.DB.Exec(`
		INSERT INTO posts(id,image,title,description,created_at,updated_at)
		VALUES($1,$2,$3,$4,$5,$6)
	`, post.ID, post.Image, post.Title, post.Description, post.CreatedAt, post.UpdatedAt)
	return err
}

func (r *PostgresPostRepo) GetPostByID(id string) (*models.Post, error) {
	post := &models.Post{}
	err := r.DB.QueryRow(`SELECT id,image,title,description,created_at,updated_at FROM posts WHERE id=$1`, id).
		Scan(&post.ID, &post.Image, &post.Title, &post.Description, &post.CreatedAt, &post.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return post, nil
}

func (r *PostgresPostRepo) GetAllPosts() ([]*models.Post, error) {
	rows, err := r.DB.Query(`SELECT id,image,title,description,created_at,updated_at FROM posts ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []*models.Post
	for rows.Next() {
		post := &models.Post{}
		if err := rows.Scan(&post.ID, &post.Image, &post.Title, &post.Description, &post.CreatedAt, &post.UpdatedAt); err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}
	return posts, rows.Err()
}

func (r *PostgresPostRepo) UpdatePost(id, title, description string) error {
	res, err := r.DB.Exec(`
		UPDATE posts SET title=$2, description=$3, updated_at=$4 WHERE id=$1
	`, id, title, description, time.Now().UTC())
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresPostRepo) DeletePost(id string) error {
	res, err := r.DB.Exec(`DELETE FROM posts WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
