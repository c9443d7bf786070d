package filesystem

import (
	"errors"
	"filelink/internal/model"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"syscall"
)

// PathResolver : удерживает запрошенные пути внутри корневой директории
type PathResolver struct {
	root string
}

// NewPathResolver : корень приводится к абсолютному пути с раскрытыми симлинками один раз
func NewPathResolver(root string) (*PathResolver, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("[PathResolver] не удалось получить абсолютный путь корня %q: %w", root, err)
	}

	resolvedRoot, err := filepath.EvalSymlinks(absRoot)
	if err != nil {
		return nil, fmt.Errorf("[PathResolver] корневая директория %q недоступна: %w", root, err)
	}

	return &PathResolver{root: resolvedRoot}, nil
}

func (r *PathResolver) Root() string {
	return r.root
}

// Resolve : проходит запрошенный путь от корня и проверяет, что результат равен корню
// или лежит внутри него
func (r *PathResolver) Resolve(requested string) (string, error) {
	if filepath.IsAbs(requested) || strings.HasPrefix(requested, "/") {
		return "", fmt.Errorf("%w: %q", model.ErrPathEscape, requested)
	}

	resolved, err := resolveFrom(r.root, splitComponents(requested))
	if err != nil {
		return "", fmt.Errorf("[PathResolver] не удалось разрешить путь %q: %w", requested, err)
	}

	if r.contains(resolved) == false {
		return "", fmt.Errorf("%w: %q", model.ErrPathEscape, requested)
	}

	return resolved, nil
}

// Relative : путь относительно корня в форме со слешами, "." для самого корня
func (r *PathResolver) Relative(confined string) (string, error) {
	rel, err := filepath.Rel(r.root, confined)
	if err != nil {
		return "", fmt.Errorf("[PathResolver] не удалось получить относительный путь: %w", err)
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %q", model.ErrPathEscape, confined)
	}
	return filepath.ToSlash(rel), nil
}

func (r *PathResolver) contains(path string) bool {
	if path == r.root {
		return true
	}
	prefix := strings.TrimSuffix(r.root, string(filepath.Separator)) + string(filepath.Separator)
	return strings.HasPrefix(path, prefix)
}

// IsMissing : ошибки файловой системы, которые означают, что по пути ничего нет
func IsMissing(err error) bool {
	return errors.Is(err, fs.ErrNotExist) ||
		errors.Is(err, syscall.ENOTDIR) ||
		errors.Is(err, syscall.ENAMETOOLONG) ||
		errors.Is(err, syscall.EINVAL)
}

func splitComponents(requested string) []string {
	return strings.Split(filepath.FromSlash(requested), string(filepath.Separator))
}

// resolveFrom : компоненты раскрываются по очереди, как это делает ОС, поэтому ".."
// применяется к цели симлинка, а не к его имени. Несуществующий хвост присоединяется лексически
func resolveFrom(base string, components []string) (string, error) {
	current := base

	for i, component := range components {
		if component == "" || component == "." {
			continue
		}

		next, err := filepath.EvalSymlinks(current + string(filepath.Separator) + component)
		if err != nil {
			if IsMissing(err) {
				return filepath.Join(append([]string{current}, components[i:]...)...), nil
			}
			return "", err
		}
		current = next
	}

	return current, nil
}
