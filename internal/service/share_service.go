package service

import (
	"context"
	"errors"
	"filelink/config"
	"filelink/internal/model"
	"filelink/internal/ports"
	"filelink/internal/util"
	"fmt"
	"log"
	"path"
	"strings"
	"unicode/utf8"
)

const maxSlugAttempts = 5

type ShareService struct {
	shareRepository ports.ShareRepository
	cacheRepository ports.CacheRepository
	pathResolver    ports.PathResolver
	generateSlug    func() (string, error)
}

func NewShareService(
	shareRepository ports.ShareRepository,
	cacheRepository ports.CacheRepository,
	pathResolver ports.PathResolver,
) *ShareService {
	return &ShareService{
		shareRepository: shareRepository,
		cacheRepository: cacheRepository,
		pathResolver:    pathResolver,
		generateSlug:    util.GenerateSlug,
	}
}

// WithSlugGenerator : подменяет генератор slug
func (s *ShareService) WithSlugGenerator(generate func() (string, error)) *ShareService {
	s.generateSlug = generate
	return s
}

// NewShareDraft : заполняет форму новой ссылки из пути файла в листинге
func (s *ShareService) NewShareDraft(requestPath string) model.ShareDraft {
	directory, name := model.SplitSharePath(requestPath)
	return model.NewShareDraft(directory, name)
}

// CreateShare : создаёт ссылку. Slug генерируется заново при коллизии, не более maxSlugAttempts раз.
// Существование файла не проверяется: ссылка может указывать на путь, который появится позже
func (s *ShareService) CreateShare(ctx context.Context, ownerUUID string, draft model.ShareDraft) (*model.Share, error) {
	draft, err := s.validateDraft(draft)
	if err != nil {
		return nil, err
	}

	db, err := config.DatabaseFromContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("[ShareService] %w", err)
	}

	for attempt := 1; attempt <= maxSlugAttempts; attempt++ {
		slug, err := s.generateSlug()
		if err != nil {
			return nil, util.LogError("[ShareService] не удалось сгенерировать slug", err)
		}

		share := &model.Share{
			Slug:            slug,
			Directory:       draft.Directory,
			Name:            draft.Name,
			DownloadEnabled: draft.DownloadEnabled,
			ForceDownload:   draft.ForceDownload,
			OwnerUUID:       ownerUUID,
		}

		err = s.shareRepository.Create(ctx, db, share)
		switch {
		case err == nil:
			log.Printf("[ShareService] ссылка %d на %s успешно создана", share.ID, share.FullPath())
			return share, nil
		case errors.Is(err, model.ErrSlugTaken):
			log.Printf("[ShareService] коллизия slug, попытка %d из %d", attempt, maxSlugAttempts)
			continue
		case errors.Is(err, model.ErrPathTaken):
			return nil, pathTakenError()
		default:
			return nil, util.LogError("[ShareService] не удалось сохранить ссылку в БД", err)
		}
	}

	return nil, util.LogError("[ShareService] не удалось создать ссылку", model.ErrSlugCollisionExhausted)
}

// EditShare : меняет путь и флаги ссылки владельца, slug и владелец остаются прежними
func (s *ShareService) EditShare(ctx context.Context, id int64, ownerUUID string, draft model.ShareDraft) (*model.Share, error) {
	draft, err := s.validateDraft(draft)
	if err != nil {
		return nil, err
	}

	exec, rollback, commit, err := s.shareRepository.BeginTX(ctx)
	if err != nil {
		return nil, util.LogError("[ShareService] не удалось начать транзакцию", err)
	}
	defer rollback()

	share, err := s.shareRepository.GetByID(ctx, exec, id, ownerUUID)
	if err != nil {
		return nil, fmt.Errorf("[ShareService] ссылка не найдена: %w", err)
	}
	previousSlug := share.Slug

	share.Directory = draft.Directory
	share.Name = draft.Name
	share.DownloadEnabled = draft.DownloadEnabled
	share.ForceDownload = draft.ForceDownload

	if err := s.shareRepository.Update(ctx, exec, share); err != nil {
		if errors.Is(err, model.ErrPathTaken) {
			return nil, pathTakenError()
		}
		return nil, fmt.Errorf("[ShareService] не удалось обновить ссылку: %w", err)
	}

	if err := commit(); err != nil {
		return nil, util.LogError("[ShareService] ошибка коммита транзакции", err)
	}

	if err := s.cacheRepository.DeleteShare(ctx, previousSlug); err != nil {
		return nil, util.LogError("[ShareService] ссылка обновлена, но кэш не инвалидирован", err)
	}

	log.Printf("[ShareService] ссылка %d обновлена", share.ID)
	return share, nil
}

// DeleteShare : удаляет ссылку владельца вместе с журналом скачиваний, slug сразу перестаёт работать
func (s *ShareService) DeleteShare(ctx context.Context, id int64, ownerUUID string) error {
	exec, rollback, commit, err := s.shareRepository.BeginTX(ctx)
	if err != nil {
		return util.LogError("[ShareService] не удалось начать транзакцию", err)
	}
	defer rollback()

	slug, err := s.shareRepository.Delete(ctx, exec, id, ownerUUID)
	if err != nil {
		return fmt.Errorf("[ShareService] ошибка удаления ссылки: %w", err)
	}

	if err := commit(); err != nil {
		return util.LogError("[ShareService] ошибка коммита транзакции", err)
	}

	if err := s.cacheRepository.DeleteShare(ctx, slug); err != nil {
		return util.LogError("[ShareService] ссылка удалена, но кэш не инвалидирован", err)
	}

	log.Printf("[ShareService] ссылка %d удалена", id)
	return nil
}

func (s *ShareService) GetShare(ctx context.Context, id int64, ownerUUID string) (*model.Share, error) {
	db, err := config.DatabaseFromContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("[ShareService] %w", err)
	}

	share, err := s.shareRepository.GetByID(ctx, db, id, ownerUUID)
	if err != nil {
		return nil, fmt.Errorf("[ShareService] ссылка не найдена: %w", err)
	}
	return share, nil
}

func (s *ShareService) ListShares(ctx context.Context, ownerUUID string) ([]model.Share, error) {
	db, err := config.DatabaseFromContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("[ShareService] %w", err)
	}

	shares, err := s.shareRepository.ListByOwner(ctx, db, ownerUUID)
	if err != nil {
		return nil, fmt.Errorf("[ShareService] не удалось получить список ссылок: %w", err)
	}
	return shares, nil
}

// validateDraft : проверяет поля формы и нормализует директорию ("", "." -> корень).
// Путь проверяется тем же PathResolver, что и при скачивании, но без обращения к файлу
func (s *ShareService) validateDraft(draft model.ShareDraft) (model.ShareDraft, error) {
	verr := model.NewValidationError()

	draft.Directory = strings.TrimSpace(draft.Directory)
	if draft.Directory != "" {
		if strings.HasPrefix(draft.Directory, "/") {
			verr.Add("directory", "директория должна быть относительной")
		}
		if strings.ContainsRune(draft.Directory, 0) {
			verr.Add("directory", "недопустимый символ в пути")
		}
		draft.Directory = path.Clean(draft.Directory)
		if draft.Directory == "." {
			draft.Directory = ""
		}
	}
	if utf8.RuneCountInString(draft.Directory) > model.MaxDirectoryLength {
		verr.Add("directory", fmt.Sprintf("не более %d символов", model.MaxDirectoryLength))
	}

	switch {
	case draft.Name == "":
		verr.Add("name", "обязательное поле")
	case utf8.RuneCountInString(draft.Name) > model.MaxNameLength:
		verr.Add("name", fmt.Sprintf("не более %d символов", model.MaxNameLength))
	case draft.Name == "." || draft.Name == ".." || strings.ContainsAny(draft.Name, "/\x00"):
		verr.Add("name", "имя файла не может содержать путь")
	}

	if verr.HasErrors() {
		return draft, verr
	}

	share := model.Share{Directory: draft.Directory, Name: draft.Name}
	if _, err := s.pathResolver.Resolve(share.FullPath()); err != nil {
		if errors.Is(err, model.ErrPathEscape) {
			verr.Add("directory", "путь выходит за пределы корневой директории")
			return draft, verr
		}
		return draft, util.LogError("[ShareService] не удалось проверить путь", err)
	}

	return draft, nil
}

func pathTakenError() error {
	verr := model.NewValidationError()
	verr.Add("name", "ссылка с такими директорией и именем файла уже существует")
	return fmt.Errorf("%w: %w", model.ErrPathTaken, verr)
}
