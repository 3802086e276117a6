package model

// Entry is a shared clipboard entry. Timestamp is an opaque token recorded
// at creation, not a wall-clock value; it is kept for compatibility with
// existing clipboard_data.json files.
type Entry struct {
	ID        string `json:"id"`
	Content   string `json:"content"`
	Timestamp string `json:"timestamp"`
}
