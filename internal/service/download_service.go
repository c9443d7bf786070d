package service

import (
	"context"
	"errors"
	"filelink/config"
	"filelink/internal/filesystem"
	"filelink/internal/model"
	"filelink/internal/ports"
	"filelink/internal/util"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"
)

type DownloadService struct {
	shareRepository       ports.ShareRepository
	downloadLogRepository ports.DownloadLogRepository
	cacheRepository       ports.CacheRepository
	pathResolver          ports.PathResolver
	now                   func() time.Time
}

func NewDownloadService(
	shareRepository ports.ShareRepository,
	downloadLogRepository ports.DownloadLogRepository,
	cacheRepository ports.CacheRepository,
	pathResolver ports.PathResolver,
) *DownloadService {
	return &DownloadService{
		shareRepository:       shareRepository,
		downloadLogRepository: downloadLogRepository,
		cacheRepository:       cacheRepository,
		pathResolver:          pathResolver,
		now:                   time.Now,
	}
}

// ResolveDownload : slug -> ссылка -> путь внутри корня -> запись в журнал (кроме HEAD).
// Отсутствующая ссылка, отключённая ссылка и удалённый файл возвращают один и тот же model.ErrNotFound
func (s *DownloadService) ResolveDownload(ctx context.Context, slug string, meta model.RequestMeta) (*model.DownloadTarget, error) {
	if slug == "" {
		return nil, model.ErrNotFound
	}

	db, err := config.DatabaseFromContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("[DownloadService] %w", err)
	}

	share, err := s.findShare(ctx, db, slug)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			log.Printf("[DownloadService] ссылка %s не найдена", slug)
			return nil, model.ErrNotFound
		}
		return nil, err
	}

	if share.DownloadEnabled == false {
		log.Printf("[DownloadService] скачивание по ссылке %d отключено", share.ID)
		return nil, model.ErrNotFound
	}

	filePath, err := s.pathResolver.Resolve(share.FullPath())
	if err != nil {
		if errors.Is(err, model.ErrPathEscape) {
			log.Printf("[DownloadService] путь ссылки %d выходит за пределы корня: %v", share.ID, err)
			return nil, model.ErrNotFound
		}
		return nil, util.LogError("[DownloadService] не удалось разрешить путь", err)
	}

	info, err := os.Stat(filePath)
	if err != nil {
		if filesystem.IsMissing(err) {
			log.Printf("[DownloadService] файл ссылки %d отсутствует: %s", share.ID, share.FullPath())
			return nil, model.ErrNotFound
		}
		return nil, util.LogError("[DownloadService] ошибка чтения файла", err)
	}
	if info.Mode().IsRegular() == false {
		log.Printf("[DownloadService] путь ссылки %d не является файлом: %s", share.ID, share.FullPath())
		return nil, model.ErrNotFound
	}

	if meta.Method != http.MethodHead {
		downloadLog := model.NewDownloadLog(share, meta, s.now())
		if err := s.downloadLogRepository.Create(ctx, db, downloadLog); err != nil {
			log.Printf("[DownloadService] не удалось записать скачивание ссылки %d: %v", share.ID, err)
		}
	}

	return &model.DownloadTarget{
		Share:        share,
		Path:         filePath,
		Filename:     share.Name,
		Disposition:  share.Disposition(),
		AcceptRanges: true,
	}, nil
}

// findShare : сначала Redis, затем БД; ошибки кэша не мешают скачиванию
func (s *DownloadService) findShare(ctx context.Context, db *config.Database, slug string) (*model.Share, error) {
	share, err := s.cacheRepository.GetShare(ctx, slug)
	if err != nil {
		log.Printf("[DownloadService] ошибка кэширования: %v", err)
	}
	if share != nil {
		return share, nil
	}

	share, err = s.shareRepository.GetBySlug(ctx, db, slug)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, err
		}
		return nil, util.LogError("[DownloadService] не удалось получить ссылку", err)
	}

	if err := s.cacheRepository.SetShare(ctx, share); err != nil {
		log.Printf("[DownloadService] ошибка кэширования ссылки: %v", err)
	}

	return share, nil
}
