package intake

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"inkhaus/models"
)

func stagedFiles(names ...string) []models.StagedFile {
	out := make([]models.StagedFile, 0, len(names))
	for _, n := range names {
		out = append(out, models.StagedFile{Name: n, Size: 1024})
	}
	return out
}

func stagedNames(files []models.StagedFile) []string {
	out := make([]string, 0, len(files))
	for _, f := range files {
		out = append(out, f.Name)
	}
	return out
}

func TestAddFilesUnderCap(t *testing.T) {
	f := DefaultBookingForm()
	f = AddFiles(f, stagedFiles("a.jpg", "b.jpg"))
	f = AddFiles(f, stagedFiles("c.jpg"))
	assert.Equal(t, []string{"a.jpg", "b.jpg", "c.jpg"}, stagedNames(f.StagedFiles))
}

func TestAddFilesEnforcesCapFirstComeWins(t *testing.T) {
	f := DefaultBookingForm()
	f = AddFiles(f, stagedFiles("a", "b", "c", "d", "e", "f"))

	// Six staged; a batch of five only has room for two more.
	f = AddFiles(f, stagedFiles("g", "h", "i", "j", "k"))
	assert.Len(t, f.StagedFiles, MaxStagedFiles)
	assert.Equal(t, []string{"a", "b", "c", "d", "e", "f", "g", "h"}, stagedNames(f.StagedFiles))

	// At the cap every further add is dropped.
	f = AddFiles(f, stagedFiles("z"))
	assert.Len(t, f.StagedFiles, MaxStagedFiles)
	assert.NotContains(t, stagedNames(f.StagedFiles), "z")
}

func TestAddFilesOversizedSingleBatch(t *testing.T) {
	var names []string
	for i := 0; i < 20; i++ {
		names = append(names, fmt.Sprintf("ref-%d.jpg", i))
	}
	f := AddFiles(DefaultBookingForm(), stagedFiles(names...))
	assert.Len(t, f.StagedFiles, MaxStagedFiles)
	assert.Equal(t, names[:MaxStagedFiles], stagedNames(f.StagedFiles))
}

func TestRemoveFileByPosition(t *testing.T) {
	f := AddFiles(DefaultBookingForm(), stagedFiles("a", "b", "c"))

	f = RemoveFile(f, 1)
	assert.Equal(t, []string{"a", "c"}, stagedNames(f.StagedFiles))

	// Out-of-range indices are no-ops.
	f = RemoveFile(f, -1)
	f = RemoveFile(f, 5)
	assert.Equal(t, []string{"a", "c"}, stagedNames(f.StagedFiles))
}

func TestRemoveFileFreesRoomForNewAdds(t *testing.T) {
	f := AddFiles(DefaultBookingForm(), stagedFiles("a", "b", "c", "d", "e", "f", "g", "h"))
	f = RemoveFile(f, 0)
	f = AddFiles(f, stagedFiles("i"))
	assert.Equal(t, []string{"b", "c", "d", "e", "f", "g", "h", "i"}, stagedNames(f.StagedFiles))
}
