package workspace

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlab.com/fcv-2025.net/client/internal/static/errs"
)

func TestNewFileSet(t *testing.T) {
	fs := NewFileSet()

	files := fs.Snapshot()
	require.Len(t, files, 1)
	assert.Equal(t, "main.c", files[0].Name)
	assert.Equal(t, "", files[0].Content)
	assert.Equal(t, files[0].ID, fs.ActiveID())
}

func TestAddFileBecomesActive(t *testing.T) {
	fs := NewFileSet()

	added := fs.AddFile()

	files := fs.Snapshot()
	require.Len(t, files, 2)
	assert.Equal(t, "module_1.c", added.Name)
	assert.NotEqual(t, files[0].Name, added.Name)
	assert.Equal(t, added.ID, fs.ActiveID())
}

func TestAddFileSkipsTakenNames(t *testing.T) {
	fs := NewFileSet()
	require.NoError(t, fs.Rename(fs.ActiveID(), "module_1.c"))

	added := fs.AddFile()

	assert.Equal(t, "module_2.c", added.Name)
}

func TestUpdateContent(t *testing.T) {
	fs := NewFileSet()
	id := fs.ActiveID()

	fs.UpdateContent(id, "int main() {}")
	assert.Equal(t, "int main() {}", fs.Snapshot()[0].Content)

	// stale ids are ignored, defending against callbacks firing after removal
	fs.UpdateContent(uuid.New(), "other")
	assert.Equal(t, "int main() {}", fs.Snapshot()[0].Content)
}

func TestRename(t *testing.T) {
	fs := NewFileSet()
	second := fs.AddFile()

	tests := []struct {
		name    string
		newName string
		wantErr error
		want    string
	}{
		{"valid", "helpers.c", nil, "helpers.c"},
		{"trims whitespace", "  util.c  ", nil, "util.c"},
		{"empty rejected", "   ", errs.EmptyFileName, "util.c"},
		{"duplicate rejected", "main.c", errs.DuplicateName, "util.c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := fs.Rename(second.ID, tt.newName)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.want, fs.Snapshot()[1].Name)
		})
	}
}

func TestRenameToOwnNameAllowed(t *testing.T) {
	fs := NewFileSet()
	require.NoError(t, fs.Rename(fs.ActiveID(), "main.c"))
}

func TestRemoveLastFileProtected(t *testing.T) {
	fs := NewFileSet()
	before := fs.Snapshot()

	err := fs.Remove(fs.ActiveID())

	require.ErrorIs(t, err, errs.LastFileProtected)
	assert.Equal(t, before, fs.Snapshot())
}

func TestRemoveActiveReassignsToFirst(t *testing.T) {
	fs := NewFileSet()
	second := fs.AddFile()
	require.Equal(t, second.ID, fs.ActiveID())

	require.NoError(t, fs.Remove(second.ID))

	files := fs.Snapshot()
	require.Len(t, files, 1)
	assert.Equal(t, files[0].ID, fs.ActiveID())
}

func TestRemoveInactiveKeepsActive(t *testing.T) {
	fs := NewFileSet()
	first := fs.Snapshot()[0]
	second := fs.AddFile()

	require.NoError(t, fs.Remove(first.ID))

	assert.Equal(t, second.ID, fs.ActiveID())
}

func TestSetActive(t *testing.T) {
	fs := NewFileSet()
	first := fs.Snapshot()[0]
	fs.AddFile()

	fs.SetActive(first.ID)
	assert.Equal(t, first.ID, fs.ActiveID())

	// unknown ids are ignored
	fs.SetActive(uuid.New())
	assert.Equal(t, first.ID, fs.ActiveID())
}

func TestReplaceAll(t *testing.T) {
	fs := NewFileSet()
	fs.AddFile()
	fs.AddFile()

	file := fs.ReplaceAll("int main() { return 0; }")

	files := fs.Snapshot()
	require.Len(t, files, 1)
	assert.Equal(t, "int main() { return 0; }", files[0].Content)
	assert.Equal(t, file.ID, fs.ActiveID())
}

// invariants: never empty, unique names, active always resolves
func TestInvariantsUnderOperationSequence(t *testing.T) {
	fs := NewFileSet()

	var removed []uuid.UUID
	for i := 0; i < 20; i++ {
		switch i % 4 {
		case 0:
			fs.AddFile()
		case 1:
			files := fs.Snapshot()
			_ = fs.Rename(files[len(files)-1].ID, fmt.Sprintf("renamed_%d.c", i))
		case 2:
			files := fs.Snapshot()
			id := files[i%len(files)].ID
			if fs.Remove(id) == nil {
				removed = append(removed, id)
			}
		case 3:
			files := fs.Snapshot()
			fs.SetActive(files[0].ID)
		}

		files := fs.Snapshot()
		require.NotEmpty(t, files)

		seen := make(map[string]bool, len(files))
		activeFound := false
		for _, f := range files {
			require.Falsef(t, seen[f.Name], "duplicate name %q after step %d", f.Name, i)
			seen[f.Name] = true
			if f.ID == fs.ActiveID() {
				activeFound = true
			}
		}
		require.Truef(t, activeFound, "active id does not resolve after step %d", i)
	}
	require.NotEmpty(t, removed)
}


func TestSnapshotIsACopy(t *testing.T) {
	fs := NewFileSet()
	snap := fs.Snapshot()
	snap[0].Content = "mutated"

	assert.Equal(t, "", fs.Snapshot()[0].Content)
}
