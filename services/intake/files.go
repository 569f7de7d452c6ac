// File: intake/files.go
package intake

import (
	"os"

	"inkhaus/models"
)

// MaxStagedFiles caps how many reference files one session may stage.
const MaxStagedFiles = 8

// AddFiles appends the new files to the staged list and truncates the
// merged list to the first MaxStagedFiles entries. Files already staged
// keep priority over newly added ones beyond the cap; the overflow is
// silently dropped, not rejected.
func AddFiles(f models.BookingForm, newFiles []models.StagedFile) models.BookingForm {
	merged := make([]models.StagedFile, 0, len(f.StagedFiles)+len(newFiles))
	merged = append(merged, f.StagedFiles...)
	merged = append(merged, newFiles...)
	if len(merged) > MaxStagedFiles {
		merged = merged[:MaxStagedFiles]
	}
	f.StagedFiles = merged
	return f
}

// RemoveFile removes the staged file at the given position. File identity
// is positional, not content based; an out-of-range index is a no-op.
func RemoveFile(f models.BookingForm, index int) models.BookingForm {
	if index < 0 || index >= len(f.StagedFiles) {
		return f
	}
	files := make([]models.StagedFile, 0, len(f.StagedFiles)-1)
	files = append(files, f.StagedFiles[:index]...)
	files = append(files, f.StagedFiles[index+1:]...)
	f.StagedFiles = files
	return f
}

// cleanupStagedFiles removes the temp copies backing staged files. Best
// effort; staging dirs are also subject to OS temp cleanup.
func cleanupStagedFiles(files []models.StagedFile) {
	for _, f := range files {
		if f.TempPath != "" {
			os.Remove(f.TempPath)
		}
	}
}
