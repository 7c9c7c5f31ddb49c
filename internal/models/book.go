package models

// Book is a catalog entry keyed by ISBN. Reviews maps a reviewer's
// username to their review text, one entry per user.
type Book struct {
	ISBN    string            `json:"isbn"`
	Title   string            `json:"title"`
	Author  string            `json:"author"`
	Reviews map[string]string `json:"reviews"`
}

const (
	BookEntity = "book"
)
