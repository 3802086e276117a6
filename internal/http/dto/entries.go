package dto

// Content is a pointer so that a present-but-empty string is accepted while
// a missing key is rejected.
type CreateEntryRequest struct {
	Content *string `json:"content"`
}

type CreateEntryResponse struct {
	ID string `json:"id"`
}

type EntryResponse struct {
	Content   string `json:"content"`
	Timestamp string `json:"timestamp"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
