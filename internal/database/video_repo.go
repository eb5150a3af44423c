package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/RohanTekale/Multimodal-Regional-Language-Video-Summarization-Tool/internal/models"
)

type VideoRepository struct {
	db *DB
}

func NewVideoRepository(db *DB) *VideoRepository {
	return &VideoRepository{db: db}
}

// InsertVideo stores the record and fills in the issued numeric ID.
func (r *VideoRepository) InsertVideo(ctx context.Context, video *models.Video) error {
	query := `
		INSERT INTO videos (filename, original_name, content_type, size, upload_time)
		VALUES (?, ?, ?, ?, ?)`

	result, err := r.db.conn.ExecContext(ctx, query,
		video.Filename,
		video.OriginalName,
		video.ContentType,
		video.Size,
		video.UploadTime,
	)
	if err != nil {
		return fmt.Errorf("failed to insert video: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read issued video id: %w", err)
	}
	video.ID = id
	return nil
}

func (r *VideoRepository) GetVideoByID(ctx context.Context, id int64) (*models.Video, error) {
	query := `
		SELECT id, filename, original_name, content_type, size, upload_time
		FROM videos WHERE id = ?`

	var video models.Video
	err := r.db.conn.QueryRowContext(ctx, query, id).Scan(
		&video.ID,
		&video.Filename,
		&video.OriginalName,
		&video.ContentType,
		&video.Size,
		&video.UploadTime,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("video not found")
		}
		return nil, fmt.Errorf("failed to get video: %w", err)
	}
	return &video, nil
}

func (r *VideoRepository) ListVideos(ctx context.Context) ([]models.Video, error) {
	query := `
		SELECT id, filename, original_name, content_type, size, upload_time
		FROM videos ORDER BY upload_time DESC`

	rows, err := r.db.conn.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list videos: %w", err)
	}
	defer rows.Close()

	var videos []models.Video
	for rows.Next() {
		var video models.Video
		if err := rows.Scan(
			&video.ID,
			&video.Filename,
			&video.OriginalName,
			&video.ContentType,
			&video.Size,
			&video.UploadTime,
		); err != nil {
			return nil, fmt.Errorf("failed to scan video: %w", err)
		}
		videos = append(videos, video)
	}
	return videos, rows.Err()
}
