package service

import (
	"context"
	"filelink/config"
	"filelink/internal/model"
	"filelink/internal/ports"
	"fmt"
)

type FileService struct {
	pathResolver    ports.PathResolver
	directoryLister ports.DirectoryLister
	shareRepository ports.ShareRepository
}

func NewFileService(pathResolver ports.PathResolver, directoryLister ports.DirectoryLister, shareRepository ports.ShareRepository) *FileService {
	return &FileService{
		pathResolver:    pathResolver,
		directoryLister: directoryLister,
		shareRepository: shareRepository,
	}
}

// Browse : листинг директории внутри корня и уже существующие ссылки на её файлы
func (s *FileService) Browse(ctx context.Context, requestPath string) (*model.Listing, error) {
	confined, err := s.pathResolver.Resolve(requestPath)
	if err != nil {
		return nil, fmt.Errorf("[FileService] %w", err)
	}

	directories, files, parent, err := s.directoryLister.List(confined)
	if err != nil {
		return nil, fmt.Errorf("[FileService] %w", err)
	}

	relative, err := s.pathResolver.Relative(confined)
	if err != nil {
		return nil, fmt.Errorf("[FileService] %w", err)
	}

	directory := relative
	if directory == "." {
		directory = ""
	}

	db, err := config.DatabaseFromContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("[FileService] %w", err)
	}

	shares, err := s.shareRepository.ListByDirectory(ctx, db, directory)
	if err != nil {
		return nil, fmt.Errorf("[FileService] не удалось получить ссылки директории: %w", err)
	}

	sharesByName := make(map[string]model.Share, len(shares))
	for _, share := range shares {
		sharesByName[share.Name] = share
	}

	return &model.Listing{
		Path:        relative,
		Directories: directories,
		Files:       files,
		Parent:      parent,
		Shares:      sharesByName,
	}, nil
}
