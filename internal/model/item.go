package model

// Todo is the domain model for a todo entry.
// It has no ID; a todo is addressed by its position in the list.
type Todo struct {
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

// New returns a pending todo with the given text.
func New(text string) Todo {
	return Todo{Text: text}
}
