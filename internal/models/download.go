package models

// DownloadResult is the final product of a subtitle download: the serialized
// document plus the computed file name.
type DownloadResult struct {
	Filename    string `json:"filename"`
	Content     []byte `json:"-"`
	ContentType string `json:"contentType"`
}
