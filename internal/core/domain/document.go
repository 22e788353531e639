package domain

import "io"

// DocumentSummary is one row of a search result, produced by the remote
// API and read-only on this side.
type DocumentSummary struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	MajorHead    string `json:"major_head"`
	MinorHead    string `json:"minor_head"`
	DocumentDate string `json:"document_date"`
}

// PendingFile is a picked file waiting for submission. URI is an opaque
// handle owned by the staging store; the file is discarded on successful
// upload and retained on failure so the user can retry.
type PendingFile struct {
	URI      string
	Name     string
	MimeType string
}

// TagRef is the wire shape of one tag inside a search query.
type TagRef struct {
	TagName string `json:"tag_name"`
}

type SearchText struct {
	Value string `json:"value"`
}

// SearchQuery is the search endpoint payload, assembled at submit time
// and never persisted. UploadedBy is a reserved field and stays empty.
type SearchQuery struct {
	MajorHead  string     `json:"major_head"`
	MinorHead  string     `json:"minor_head"`
	FromDate   string     `json:"from_date"`
	ToDate     string     `json:"to_date"`
	Tags       []TagRef   `json:"tags"`
	UploadedBy string     `json:"uploaded_by"`
	Start      int        `json:"start"`
	Length     int        `json:"length"`
	FilterID   string     `json:"filterId"`
	Search     SearchText `json:"search"`
}

// Page is the pagination window of a search.
type Page struct {
	Start  int
	Length int
}

const DefaultPageLength = 50

// UploadPart is one file entry of a multipart submission.
type UploadPart struct {
	Name     string
	MimeType string
	Body     io.Reader
}

// UploadPayload is the assembled multipart submission for the upload
// endpoint.
type UploadPayload struct {
	MajorHead    string
	MinorHead    string
	DocumentDate string
	Remarks      string
	UserID       string
	Tags         []TagRef
	Files        []UploadPart
}
