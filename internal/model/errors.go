package model

import (
	"errors"
	"sort"
	"strings"
)

var (
	ErrPathEscape             = errors.New("путь выходит за пределы корневой директории")
	ErrNotFound               = errors.New("не найдено")
	ErrNotADirectory          = errors.New("не является директорией")
	ErrPathTaken              = errors.New("ссылка на этот путь уже существует")
	ErrSlugTaken              = errors.New("slug уже занят")
	ErrSlugCollisionExhausted = errors.New("не удалось сгенерировать уникальный slug")
)

// ValidationError : ошибки по полям формы
type ValidationError struct {
	Fields map[string]string
}

func NewValidationError() *ValidationError {
	return &ValidationError{Fields: map[string]string{}}
}

func (e *ValidationError) Add(field, message string) {
	if _, exists := e.Fields[field]; exists == false {
		e.Fields[field] = message
	}
}

func (e *ValidationError) HasErrors() bool {
	return len(e.Fields) > 0
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "ошибка валидации: " + strings.Join(parts, "; ")
}
