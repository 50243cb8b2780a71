package dtos

// UploadResponse reports the outcome of a multi-file upload. Files fail
// independently: only the succeeded URLs are returned and recorded.
type UploadResponse struct {
	URLs   []string `json:"urls"`
	Failed int      `json:"failed"`
}

type SuggestAreasResponse struct {
	Suggestions []string `json:"suggestions"`
}
