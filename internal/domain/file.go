package domain

import "github.com/google/uuid"

// SourceFile represents one editable source buffer in a workspace. The ID is
// stable across renames; the name is the join key the judge uses to distinguish
// compilation units.
type SourceFile struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Content string    `json:"content"`
}

// NewSourceFile creates a new source file
func NewSourceFile(name, content string) *SourceFile {
	return &SourceFile{
		ID:      uuid.New(),
		Name:    name,
		Content: content,
	}
}
