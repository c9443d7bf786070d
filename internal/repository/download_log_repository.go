package repository

import (
	"context"
	"filelink/config"
	"filelink/internal/model"
	"filelink/internal/util"
	"github.com/jmoiron/sqlx"
)

type DownloadLogRepository struct {
	database *config.Database
}

func NewDownloadLogRepository(database *config.Database) *DownloadLogRepository {
	return &DownloadLogRepository{database: database}
}

// Create : одна запись на каждое разрешённое скачивание
func (r *DownloadLogRepository) Create(ctx context.Context, exec sqlx.ExtContext, downloadLog *model.DownloadLog) error {
	query := `
		INSERT INTO download_logs (downloaded_at, share_id, ip, user_agent, range_header)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	err := exec.QueryRowxContext(
		ctx,
		query,
		downloadLog.Timestamp,
		downloadLog.ShareID,
		downloadLog.ClientIP,
		downloadLog.UserAgent,
		downloadLog.RangeHeader,
	).Scan(&downloadLog.ID)

	if err != nil {
		return util.LogError("[DownloadLogRepo] не удалось записать скачивание", err)
	}
	return nil
}
