package model

type EntryKind string

const (
	EntryDirectory EntryKind = "directory"
	EntryFile      EntryKind = "file"
)

// Entry : элемент листинга, Path относителен корню и записан через "/"
type Entry struct {
	Name string    `json:"name"`
	Path string    `json:"path"`
	Kind EntryKind `json:"kind"`
}

type Listing struct {
	Path        string
	Directories []Entry
	Files       []Entry
	// Parent равен nil для корня
	Parent *string
	// Shares : существующие ссылки на файлы текущей директории, ключ - имя файла
	Shares map[string]Share
}
