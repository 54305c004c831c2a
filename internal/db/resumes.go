package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jdoe/resume-builder/internal/types"
)

func scanResume(row pgx.Row) (*types.Resume, error) {
	var (
		id, userID uuid.UUID
		title      string
		document   []byte
		thumbnail  string
		createdAt  time.Time
		updatedAt  time.Time
	)
	err := row.Scan(&id, &userID, &title, &document, &thumbnail, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	var resume types.Resume
	if err := json.Unmarshal(document, &resume); err != nil {
		return nil, fmt.Errorf("failed to decode resume document: %w", err)
	}
	// Columns are authoritative over whatever the stored document carries.
	resume.ID = id
	resume.UserID = userID
	resume.Title = title
	resume.Thumbnail = thumbnail
	resume.CreatedAt = createdAt
	resume.UpdatedAt = updatedAt
	return &resume, nil
}

const resumeColumns = `id, user_id, title, document, thumbnail_link, created_at, updated_at`

// CreateResume inserts a new resume owned by userID with the given title.
func (db *DB) CreateResume(ctx context.Context, userID uuid.UUID, title string) (*types.Resume, error) {
	document, err := json.Marshal(&types.Resume{Title: title})
	if err != nil {
		return nil, fmt.Errorf("failed to encode resume document: %w", err)
	}
	row := db.pool.QueryRow(ctx,
		`INSERT INTO resumes (user_id, title, document)
		 VALUES ($1, $2, $3)
		 RETURNING `+resumeColumns,
		userID, title, document,
	)
	resume, err := scanResume(row)
	if err != nil {
		return nil, fmt.Errorf("failed to create resume: %w", err)
	}
	return resume, nil
}

// ListResumesByUser returns all resumes owned by userID, most recently
// updated first.
func (db *DB) ListResumesByUser(ctx context.Context, userID uuid.UUID) ([]*types.Resume, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+resumeColumns+` FROM resumes WHERE user_id = $1 ORDER BY updated_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list resumes: %w", err)
	}
	defer rows.Close()

	var resumes []*types.Resume
	for rows.Next() {
		resume, err := scanResume(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to list resumes: %w", err)
		}
		resumes = append(resumes, resume)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list resumes: %w", err)
	}
	return resumes, nil
}

// GetResume fetches a resume by id scoped to its owner. Returns nil when the
// resume does not exist or belongs to another user.
func (db *DB) GetResume(ctx context.Context, id, userID uuid.UUID) (*types.Resume, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT `+resumeColumns+` FROM resumes WHERE id = $1 AND user_id = $2`,
		id, userID,
	)
	resume, err := scanResume(row)
	if err != nil {
		return nil, fmt.Errorf("failed to get resume: %w", err)
	}
	return resume, nil
}

// UpdateResume replaces the stored document wholesale and returns the new row.
func (db *DB) UpdateResume(ctx context.Context, id, userID uuid.UUID, resume *types.Resume) (*types.Resume, error) {
	document, err := json.Marshal(resume)
	if err != nil {
		return nil, fmt.Errorf("failed to encode resume document: %w", err)
	}
	row := db.pool.QueryRow(ctx,
		`UPDATE resumes SET title = $1, document = $2, updated_at = NOW()
		 WHERE id = $3 AND user_id = $4
		 RETURNING `+resumeColumns,
		resume.Title, document, id, userID,
	)
	updated, err := scanResume(row)
	if err != nil {
		return nil, fmt.Errorf("failed to update resume: %w", err)
	}
	return updated, nil
}

// DeleteResume removes a resume scoped to its owner. Returns false when
// nothing was deleted.
func (db *DB) DeleteResume(ctx context.Context, id, userID uuid.UUID) (bool, error) {
	tag, err := db.pool.Exec(ctx,
		`DELETE FROM resumes WHERE id = $1 AND user_id = $2`,
		id, userID,
	)
	if err != nil {
		return false, fmt.Errorf("failed to delete resume: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// SetResumeThumbnail stores the uploaded thumbnail location.
func (db *DB) SetResumeThumbnail(ctx context.Context, id, userID uuid.UUID, link string) (*types.Resume, error) {
	row := db.pool.QueryRow(ctx,
		`UPDATE resumes SET thumbnail_link = $1, updated_at = NOW()
		 WHERE id = $2 AND user_id = $3
		 RETURNING `+resumeColumns,
		link, id, userID,
	)
	resume, err := scanResume(row)
	if err != nil {
		return nil, fmt.Errorf("failed to set resume thumbnail: %w", err)
	}
	return resume, nil
}
