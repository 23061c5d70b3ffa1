package workspace

import (
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"gitlab.com/fcv-2025.net/client/internal/domain"
	"gitlab.com/fcv-2025.net/client/internal/static/errs"
)

const (
	// DefaultFileName seeds a freshly opened workspace
	DefaultFileName = "main.c"
	// ModuleNamePattern names files added after the first one
	ModuleNamePattern = "module_%d.c"
)

// FileSet is the ordered collection of source buffers for one workspace, plus
// the active selection. Invariants: never empty, no two members share a name,
// and the active id always resolves to a member.
type FileSet struct {
	mu       sync.Mutex
	files    []*domain.SourceFile
	activeID uuid.UUID
}

// NewFileSet creates a workspace with a single empty default file, which is
// the active one.
func NewFileSet() *FileSet {
	first := domain.NewSourceFile(DefaultFileName, "")
	return &FileSet{
		files:    []*domain.SourceFile{first},
		activeID: first.ID,
	}
}

// AddFile appends a new empty file with a generated name unique against the
// current members and makes it the active file.
func (fs *FileSet) AddFile() domain.SourceFile {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	n := len(fs.files)
	name := fmt.Sprintf(ModuleNamePattern, n)
	for fs.nameTaken(name, uuid.Nil) {
		n++
		name = fmt.Sprintf(ModuleNamePattern, n)
	}

	file := domain.NewSourceFile(name, "")
	fs.files = append(fs.files, file)
	fs.activeID = file.ID
	return *file
}

// UpdateContent replaces the content of the file with the given id. A stale
// id (file already removed) is a no-op.
func (fs *FileSet) UpdateContent(id uuid.UUID, content string) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	for _, f := range fs.files {
		if f.ID == id {
			f.Content = content
			return
		}
	}
}

// Rename changes a file's name. The new name is trimmed; an empty result or a
// collision with another member is rejected and the prior name retained.
func (fs *FileSet) Rename(id uuid.UUID, newName string) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	trimmed := strings.TrimSpace(newName)
	if trimmed == "" {
		return errs.EmptyFileName
	}
	if fs.nameTaken(trimmed, id) {
		return errs.DuplicateName
	}
	for _, f := range fs.files {
		if f.ID == id {
			f.Name = trimmed
			return nil
		}
	}
	return nil
}

// Remove deletes a file. Removing the last remaining file is rejected. If the
// removed file was active, the first remaining file becomes active.
func (fs *FileSet) Remove(id uuid.UUID) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	if len(fs.files) <= 1 {
		return errs.LastFileProtected
	}

	for i, f := range fs.files {
		if f.ID == id {
			fs.files = append(fs.files[:i], fs.files[i+1:]...)
			if fs.activeID == id {
				fs.activeID = fs.files[0].ID
			}
			return nil
		}
	}
	return nil
}

// SetActive changes the active selection. An unknown id is a no-op.
func (fs *FileSet) SetActive(id uuid.UUID) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	for _, f := range fs.files {
		if f.ID == id {
			fs.activeID = id
			return
		}
	}
}

// ActiveID returns the id of the active file
func (fs *FileSet) ActiveID() uuid.UUID {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	return fs.activeID
}

// Len returns the number of files
func (fs *FileSet) Len() int {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	return len(fs.files)
}

// Snapshot returns value copies of all files in order. Actions build their
// payload from one snapshot taken at action start and never re-read the live
// set mid-flight.
func (fs *FileSet) Snapshot() []domain.SourceFile {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	out := make([]domain.SourceFile, len(fs.files))
	for i, f := range fs.files {
		out[i] = *f
	}
	return out
}

// ReplaceAll discards every open file and seeds the set with a single default
// file holding the given content. Used when restoring a past submission; the
// caller gates this behind explicit user action.
func (fs *FileSet) ReplaceAll(content string) domain.SourceFile {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	first := domain.NewSourceFile(DefaultFileName, content)
	fs.files = []*domain.SourceFile{first}
	fs.activeID = first.ID
	return *first
}

// nameTaken reports whether another member (id excluded) already uses name.
// Caller holds the lock.
func (fs *FileSet) nameTaken(name string, exclude uuid.UUID) bool {
	for _, f := range fs.files {
		if f.ID != exclude && f.Name == name {
			return true
		}
	}
	return false
}
