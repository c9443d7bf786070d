package filesystem

import (
	"filelink/internal/model"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
)

type DirectoryLister struct {
	resolver *PathResolver
}

func NewDirectoryLister(resolver *PathResolver) *DirectoryLister {
	return &DirectoryLister{resolver: resolver}
}

// List : содержимое одной директории без рекурсии. Директории и файлы сортируются
// отдельно по отображаемому имени. Всё, что не является ни директорией, ни обычным
// файлом (сокеты, устройства, битые симлинки), в листинг не попадает.
func (l *DirectoryLister) List(confined string) (directories []model.Entry, files []model.Entry, parent *string, err error) {
	info, err := os.Stat(confined)
	if err != nil {
		if IsMissing(err) {
			return nil, nil, nil, fmt.Errorf("%w: %s", model.ErrNotFound, confined)
		}
		return nil, nil, nil, fmt.Errorf("[DirectoryLister] ошибка чтения %s: %w", confined, err)
	}
	if info.IsDir() == false {
		return nil, nil, nil, fmt.Errorf("%w: %s", model.ErrNotADirectory, confined)
	}

	dirEntries, err := os.ReadDir(confined)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("[DirectoryLister] ошибка чтения директории %s: %w", confined, err)
	}

	directories = []model.Entry{}
	files = []model.Entry{}

	for _, dirEntry := range dirEntries {
		kind, ok := classify(confined, dirEntry)
		if ok == false {
			continue
		}

		rel, err := l.resolver.Relative(filepath.Join(confined, dirEntry.Name()))
		if err != nil {
			return nil, nil, nil, err
		}

		switch kind {
		case model.EntryDirectory:
			directories = append(directories, model.Entry{Name: dirEntry.Name() + "/", Path: rel, Kind: kind})
		case model.EntryFile:
			files = append(files, model.Entry{Name: dirEntry.Name(), Path: rel, Kind: kind})
		}
	}

	sort.Slice(directories, func(i, j int) bool { return directories[i].Name < directories[j].Name })
	sort.Slice(files, func(i, j int) bool { return files[i].Name < files[j].Name })

	if confined != l.resolver.Root() {
		parentPath, err := resolveFrom(confined, []string{".."})
		if err != nil {
			return nil, nil, nil, fmt.Errorf("[DirectoryLister] не удалось определить родительскую директорию: %w", err)
		}
		rel, err := l.resolver.Relative(parentPath)
		if err != nil {
			return nil, nil, nil, err
		}
		parent = &rel
	}

	return directories, files, parent, nil
}

// classify : симлинки классифицируются по цели
func classify(dir string, entry fs.DirEntry) (model.EntryKind, bool) {
	mode := entry.Type()
	if mode&fs.ModeSymlink != 0 {
		info, err := os.Stat(filepath.Join(dir, entry.Name()))
		if err != nil {
			return "", false
		}
		mode = info.Mode().Type()
	}

	switch {
	case mode.IsDir():
		return model.EntryDirectory, true
	case mode.IsRegular():
		return model.EntryFile, true
	default:
		return "", false
	}
}
