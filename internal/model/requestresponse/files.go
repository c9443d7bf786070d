package requestresponse

import "filelink/internal/model"

// FileEntryResponse : элемент листинга; у файла с существующей ссылкой заполнено поле share
type FileEntryResponse struct {
	Name  string          `json:"name" example:"cat.jpg"`
	Path  string          `json:"path" example:"photos/2024/cat.jpg"`
	Kind  model.EntryKind `json:"kind" example:"file"`
	Share *ShareResponse  `json:"share,omitempty"`
}

type ListingResponse struct {
	Data struct {
		Path        string              `json:"path" example:"photos/2024"`
		Parent      *string             `json:"parent" example:"photos"`
		Directories []FileEntryResponse `json:"directories"`
		Files       []FileEntryResponse `json:"files"`
	} `json:"data"`
}

// ListingResponseFromModel : конвертирует model.Listing, подставляя ссылки к файлам
func ListingResponseFromModel(listing *model.Listing) ListingResponse {
	resp := ListingResponse{}
	resp.Data.Path = listing.Path
	resp.Data.Parent = listing.Parent
	resp.Data.Directories = make([]FileEntryResponse, 0, len(listing.Directories))
	resp.Data.Files = make([]FileEntryResponse, 0, len(listing.Files))

	for _, entry := range listing.Directories {
		resp.Data.Directories = append(resp.Data.Directories, FileEntryResponse{
			Name: entry.Name,
			Path: entry.Path,
			Kind: entry.Kind,
		})
	}

	for _, entry := range listing.Files {
		item := FileEntryResponse{Name: entry.Name, Path: entry.Path, Kind: entry.Kind}
		if share, ok := listing.Shares[entry.Name]; ok {
			shareResponse := ShareResponseFromModel(&share)
			item.Share = &shareResponse
		}
		resp.Data.Files = append(resp.Data.Files, item)
	}

	return resp
}
