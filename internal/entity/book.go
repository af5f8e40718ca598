package entity

// Book is a catalog record keyed by ISBN. Reviews maps a username to that
// user's review text; at most one entry per username.
type Book struct {
	ISBN    string            `json:"isbn"`
	Title   string            `json:"title"`
	Author  string            `json:"author"`
	Reviews map[string]string `json:"reviews"`
}
