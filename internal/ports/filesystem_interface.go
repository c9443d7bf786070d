package ports

import "filelink/internal/model"

type PathResolver interface {
	Resolve(requested string) (string, error)
	Relative(confined string) (string, error)
	Root() string
}

type DirectoryLister interface {
	List(confined string) (directories []model.Entry, files []model.Entry, parent *string, err error)
}
