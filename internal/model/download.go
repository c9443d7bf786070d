package model

type Disposition string

const (
	DispositionAttachment Disposition = "attachment"
	DispositionInline     Disposition = "inline"
)

// DownloadTarget : всё, что нужно транспортному слою для отдачи файла
type DownloadTarget struct {
	Share        *Share
	Path         string
	Filename     string
	Disposition  Disposition
	AcceptRanges bool
}
