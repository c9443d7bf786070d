package ports

import (
	"context"
	"filelink/internal/model"
	"github.com/jmoiron/sqlx"
)

// ShareRepository : SQL слой ссылок
type ShareRepository interface {
	Create(ctx context.Context, exec sqlx.ExtContext, share *model.Share) error
	GetByID(ctx context.Context, exec sqlx.ExtContext, id int64, ownerUUID string) (*model.Share, error)
	GetBySlug(ctx context.Context, exec sqlx.ExtContext, slug string) (*model.Share, error)
	ListByOwner(ctx context.Context, exec sqlx.ExtContext, ownerUUID string) ([]model.Share, error)
	ListByDirectory(ctx context.Context, exec sqlx.ExtContext, directory string) ([]model.Share, error)
	Update(ctx context.Context, exec sqlx.ExtContext, share *model.Share) error
	Delete(ctx context.Context, exec sqlx.ExtContext, id int64, ownerUUID string) (string, error)
	BeginTX(ctx context.Context) (sqlx.ExtContext, func() error, func() error, error)
}

// DownloadLogRepository : журнал скачиваний, только запись
type DownloadLogRepository interface {
	Create(ctx context.Context, exec sqlx.ExtContext, downloadLog *model.DownloadLog) error
}

// CacheRepository : Redis слой, ссылки по slug
type CacheRepository interface {
	SetShare(ctx context.Context, share *model.Share) error
	GetShare(ctx context.Context, slug string) (*model.Share, error)
	DeleteShare(ctx context.Context, slug string) error
}

type ShareService interface {
	CreateShare(ctx context.Context, ownerUUID string, draft model.ShareDraft) (*model.Share, error)
	EditShare(ctx context.Context, id int64, ownerUUID string, draft model.ShareDraft) (*model.Share, error)
	DeleteShare(ctx context.Context, id int64, ownerUUID string) error
	GetShare(ctx context.Context, id int64, ownerUUID string) (*model.Share, error)
	ListShares(ctx context.Context, ownerUUID string) ([]model.Share, error)
	NewShareDraft(requestPath string) model.ShareDraft
}

type FileService interface {
	Browse(ctx context.Context, requestPath string) (*model.Listing, error)
}

type DownloadService interface {
	ResolveDownload(ctx context.Context, slug string, meta model.RequestMeta) (*model.DownloadTarget, error)
}
