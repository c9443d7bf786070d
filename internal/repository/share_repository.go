package repository

import (
	"context"
	"database/sql"
	"errors"
	"filelink/config"
	"filelink/internal/model"
	"filelink/internal/util"
	"fmt"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const (
	uniqueViolationCode  = "23505"
	slugConstraint       = "shares_slug_key"
	uniquePathConstraint = "shares_unique_path"
	shareColumns         = `id, slug, directory, name, download_enabled, force_download, owner_uuid, created_at, updated_at`
)

type ShareRepository struct {
	*config.Database
}

func NewShareRepository(database *config.Database) *ShareRepository {
	return &ShareRepository{database}
}

// Create : сохраняет новую ссылку, заполняет id и временные метки.
// Нарушение уникальности slug -> model.ErrSlugTaken, пути -> model.ErrPathTaken
func (r *ShareRepository) Create(ctx context.Context, exec sqlx.ExtContext, share *model.Share) error {
	query := `
		INSERT INTO shares (slug, directory, name, download_enabled, force_download, owner_uuid)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`
	err := exec.QueryRowxContext(
		ctx,
		query,
		share.Slug,
		share.Directory,
		share.Name,
		share.DownloadEnabled,
		share.ForceDownload,
		share.OwnerUUID,
	).Scan(&share.ID, &share.CreatedAt, &share.UpdatedAt)

	if err != nil {
		return mapUniqueViolation("[ShareRepo] ошибка вставки ссылки в БД", err)
	}

	return nil
}

// GetByID : ссылка владельца, чужие ссылки не отличаются от отсутствующих
func (r *ShareRepository) GetByID(ctx context.Context, exec sqlx.ExtContext, id int64, ownerUUID string) (*model.Share, error) {
	query := `SELECT ` + shareColumns + ` FROM shares WHERE id = $1 AND owner_uuid = $2`

	var share model.Share
	err := sqlx.GetContext(ctx, exec, &share, query, id, ownerUUID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("[ShareRepo] ссылка %d: %w", id, model.ErrNotFound)
		}
		return nil, util.LogError("[ShareRepo] не удалось получить ссылку", err)
	}
	return &share, nil
}

// GetBySlug : владелец не проверяется, скачивание по slug публичное
func (r *ShareRepository) GetBySlug(ctx context.Context, exec sqlx.ExtContext, slug string) (*model.Share, error) {
	query := `SELECT ` + shareColumns + ` FROM shares WHERE slug = $1`

	var share model.Share
	err := sqlx.GetContext(ctx, exec, &share, query, slug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("[ShareRepo] slug %s: %w", slug, model.ErrNotFound)
		}
		return nil, util.LogError("[ShareRepo] не удалось получить ссылку по slug", err)
	}
	return &share, nil
}

func (r *ShareRepository) ListByOwner(ctx context.Context, exec sqlx.ExtContext, ownerUUID string) ([]model.Share, error) {
	query := `SELECT ` + shareColumns + ` FROM shares WHERE owner_uuid = $1 ORDER BY directory ASC, name ASC`

	shares := []model.Share{}
	if err := sqlx.SelectContext(ctx, exec, &shares, query, ownerUUID); err != nil {
		return nil, util.LogError("[ShareRepo] не удалось получить список ссылок", err)
	}
	return shares, nil
}

// ListByDirectory : все ссылки на файлы директории, независимо от владельца
func (r *ShareRepository) ListByDirectory(ctx context.Context, exec sqlx.ExtContext, directory string) ([]model.Share, error) {
	query := `SELECT ` + shareColumns + ` FROM shares WHERE directory = $1`

	shares := []model.Share{}
	if err := sqlx.SelectContext(ctx, exec, &shares, query, directory); err != nil {
		return nil, util.LogError("[ShareRepo] не удалось получить ссылки директории", err)
	}
	return shares, nil
}

// Update : меняет путь и флаги; slug и владелец не меняются никогда
func (r *ShareRepository) Update(ctx context.Context, exec sqlx.ExtContext, share *model.Share) error {
	query := `
		UPDATE shares
		SET directory = $3, name = $4, download_enabled = $5, force_download = $6, updated_at = NOW()
		WHERE id = $1 AND owner_uuid = $2
		RETURNING slug, updated_at
	`
	err := exec.QueryRowxContext(
		ctx,
		query,
		share.ID,
		share.OwnerUUID,
		share.Directory,
		share.Name,
		share.DownloadEnabled,
		share.ForceDownload,
	).Scan(&share.Slug, &share.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("[ShareRepo] ссылка %d: %w", share.ID, model.ErrNotFound)
		}
		return mapUniqueViolation("[ShareRepo] не удалось обновить ссылку", err)
	}
	return nil
}

// Delete : удаляет ссылку владельца, записи download_logs удаляются каскадом. Возвращает slug
func (r *ShareRepository) Delete(ctx context.Context, exec sqlx.ExtContext, id int64, ownerUUID string) (string, error) {
	query := `DELETE FROM shares WHERE id = $1 AND owner_uuid = $2 RETURNING slug`

	var slug string
	err := sqlx.GetContext(ctx, exec, &slug, query, id, ownerUUID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", fmt.Errorf("[ShareRepo] ссылка %d: %w", id, model.ErrNotFound)
		}
		return "", util.LogError("[ShareRepo] не удалось удалить ссылку", err)
	}
	return slug, nil
}

func (r *ShareRepository) BeginTX(ctx context.Context) (sqlx.ExtContext, func() error, func() error, error) {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return nil, nil, nil, err
	}
	return tx, tx.Rollback, tx.Commit, nil
}

func mapUniqueViolation(message string, err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolationCode {
		switch pqErr.Constraint {
		case slugConstraint:
			return fmt.Errorf("%s: %w", message, model.ErrSlugTaken)
		case uniquePathConstraint:
			return fmt.Errorf("%s: %w", message, model.ErrPathTaken)
		}
	}
	return util.LogError(message, err)
}
