package mediaapi

type UploadResponse struct {
	OK   bool   `json:"ok"`
	Key  string `json:"key"`
	URL  string `json:"url"`
	Name string `json:"name"`
}

type DeleteRequest struct {
	URL string `json:"url"`
}

type DeleteResponse struct {
	OK  bool   `json:"ok"`
	Key string `json:"key"`
}
