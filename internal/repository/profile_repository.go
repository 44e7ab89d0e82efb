package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/brainrotlabs/brainrot-api/internal/models"
)

type ProfileRepository struct {
	db *sql.DB
}

func NewProfileRepository(db *sql.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

func (r *ProfileRepository) FindByUserID(ctx context.Context, userID string) (*models.UserProfile, error) {
	const query = `
SELECT user_id, display_name, default_author_name, default_author_handle, email_notifications, auto_save_drafts,
       COALESCE(favorite_categories, '[]'), COALESCE(custom_handles, '[]'), COALESCE(custom_templates, '[]'),
       created_at, updated_at
FROM user_profiles WHERE user_id = ?`
	row := r.db.QueryRowContext(ctx, query, userID)
	var p models.UserProfile
	var emailNotifications, autoSave int
	var categories, handles, templates []byte
	if err := row.Scan(&p.UserID, &p.DisplayName, &p.DefaultAuthorName, &p.DefaultAuthorHandle, &emailNotifications, &autoSave, &categories, &handles, &templates, &p.CreatedAt, &p.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan profile: %w", err)
	}
	p.EmailNotifications = emailNotifications != 0
	p.AutoSaveDrafts = autoSave != 0
	if err := json.Unmarshal(categories, &p.FavoriteCategories); err != nil {
		return nil, fmt.Errorf("unmarshal favorite categories: %w", err)
	}
	if err := json.Unmarshal(handles, &p.CustomHandles); err != nil {
		return nil, fmt.Errorf("unmarshal custom handles: %w", err)
	}
	if err := json.Unmarshal(templates, &p.CustomTemplates); err != nil {
		return nil, fmt.Errorf("unmarshal custom templates: %w", err)
	}
	return &p, nil
}

// Ensure returns the profile for the user, creating an empty one on first sight.
func (r *ProfileRepository) Ensure(ctx context.Context, userID string) (*models.UserProfile, error) {
	profile, err := r.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile != nil {
		return profile, nil
	}
	const query = `INSERT IGNORE INTO user_profiles (user_id) VALUES (?)`
	if _, err := r.db.ExecContext(ctx, query, userID); err != nil {
		return nil, fmt.Errorf("insert profile: %w", err)
	}
	return r.FindByUserID(ctx, userID)
}

func (r *ProfileRepository) Update(ctx context.Context, profile *models.UserProfile) error {
	const query = `
UPDATE user_profiles
SET display_name = ?, default_author_name = ?, default_author_handle = ?, email_notifications = ?, auto_save_drafts = ?,
    favorite_categories = ?, custom_handles = ?, custom_templates = ?, updated_at = NOW()
WHERE user_id = ?`
	categories, err := json.Marshal(profile.FavoriteCategories)
	if err != nil {
		return fmt.Errorf("marshal favorite categories: %w", err)
	}
	handles, err := json.Marshal(profile.CustomHandles)
	if err != nil {
		return fmt.Errorf("marshal custom handles: %w", err)
	}
	templates, err := json.Marshal(profile.CustomTemplates)
	if err != nil {
		return fmt.Errorf("marshal custom templates: %w", err)
	}
	emailNotifications := 0
	if profile.EmailNotifications {
		emailNotifications = 1
	}
	autoSave := 0
	if profile.AutoSaveDrafts {
		autoSave = 1
	}
	if _, err := r.db.ExecContext(ctx, query, profile.DisplayName, profile.DefaultAuthorName, profile.DefaultAuthorHandle, emailNotifications, autoSave, categories, handles, templates, profile.UserID); err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	return nil
}
