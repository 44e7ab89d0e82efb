package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/brainrotlabs/brainrot-api/internal/models"
)

type PostRepository struct {
	db *sql.DB
}

func NewPostRepository(db *sql.DB) *PostRepository {
	return &PostRepository{db: db}
}

func (r *PostRepository) Create(ctx context.Context, post *models.Post) error {
	const query = `
INSERT INTO posts (id, user_id, content, author_name, author_handle, toxicity_level, categories, special_mode, is_favorite, metadata)
VALUES (?, ?, ?, ?, ?, ?, ?, NULLIF(?, ''), ?, ?)`
	categories, err := json.Marshal(post.Categories)
	if err != nil {
		return fmt.Errorf("marshal categories: %w", err)
	}
	metadata, err := json.Marshal(post.Metadata)
	if err != nil {
		return fmt.Errorf("marshal metadata: %w", err)
	}
	favorite := 0
	if post.IsFavorite {
		favorite = 1
	}
	if _, err := r.db.ExecContext(ctx, query, post.ID, post.UserID, post.Content, post.AuthorName, post.AuthorHandle, string(post.ToxicityLevel), categories, string(post.SpecialMode), favorite, metadata); err != nil {
		return fmt.Errorf("insert post: %w", err)
	}
	return nil
}

func (r *PostRepository) ListByUser(ctx context.Context, userID string, limit int) ([]models.Post, error) {
	const query = `
SELECT id, user_id, content, author_name, author_handle, toxicity_level, COALESCE(categories, '[]'), COALESCE(special_mode, ''), is_favorite, COALESCE(metadata, '{}'), created_at
FROM posts WHERE user_id = ? ORDER BY created_at DESC LIMIT ?`
	rows, err := r.db.QueryContext(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	defer rows.Close()

	var posts []models.Post
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, *post)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate posts: %w", err)
	}
	return posts, nil
}

func (r *PostRepository) GetByID(ctx context.Context, id, userID string) (*models.Post, error) {
	const query = `
SELECT id, user_id, content, author_name, author_handle, toxicity_level, COALESCE(categories, '[]'), COALESCE(special_mode, ''), is_favorite, COALESCE(metadata, '{}'), created_at
FROM posts WHERE id = ? AND user_id = ?`
	row := r.db.QueryRowContext(ctx, query, id, userID)
	post, err := scanPost(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return post, nil
}

func (r *PostRepository) SetFavorite(ctx context.Context, id, userID string, favorite bool) (bool, error) {
	const query = `UPDATE posts SET is_favorite = ? WHERE id = ? AND user_id = ?`
	value := 0
	if favorite {
		value = 1
	}
	res, err := r.db.ExecContext(ctx, query, value, id, userID)
	if err != nil {
		return false, fmt.Errorf("set favorite: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return affected > 0, nil
}

func (r *PostRepository) Delete(ctx context.Context, id, userID string) (bool, error) {
	const query = `DELETE FROM posts WHERE id = ? AND user_id = ?`
	res, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return false, fmt.Errorf("delete post: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return affected > 0, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPost(row rowScanner) (*models.Post, error) {
	var p models.Post
	var toxicity, specialMode string
	var categories, metadata []byte
	var favorite int
	if err := row.Scan(&p.ID, &p.UserID, &p.Content, &p.AuthorName, &p.AuthorHandle, &toxicity, &categories, &specialMode, &favorite, &metadata, &p.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan post: %w", err)
	}
	p.ToxicityLevel = models.ToxicityTier(toxicity)
	p.SpecialMode = models.SpecialMode(specialMode)
	p.IsFavorite = favorite != 0
	if err := json.Unmarshal(categories, &p.Categories); err != nil {
		return nil, fmt.Errorf("unmarshal categories: %w", err)
	}
	if err := json.Unmarshal(metadata, &p.Metadata); err != nil {
		return nil, fmt.Errorf("unmarshal metadata: %w", err)
	}
	return &p, nil
}
