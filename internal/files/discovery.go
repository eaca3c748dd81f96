package files

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"
)

// RecordingExt is the fixed extension of chunked recording containers.
const RecordingExt = ".npz"

// FileInfo represents information about a discovered file
type FileInfo struct {
	Path    string
	Name    string
	Size    int64
	ModTime time.Time
}

// Discovery provides file discovery operations
type Discovery struct {
	basePath string
}

// NewDiscovery creates a new file discovery instance
func NewDiscovery(basePath string) *Discovery {
	return &Discovery{basePath: basePath}
}

// FindRecordingFiles finds all recording containers belonging to one
// participant in the specified directory. Matching is purely by filename
// pattern *_<participant>_*.npz; unreadable entries are skipped.
func (d *Discovery) FindRecordingFiles(dir, participantID string) ([]FileInfo, error) {
	pattern := fmt.Sprintf("*_%s_*%s", participantID, RecordingExt)
	return d.FindFilesByPattern(dir, pattern)
}

// FindFilesByPattern finds files matching a glob pattern
func (d *Discovery) FindFilesByPattern(dir string, pattern string) ([]FileInfo, error) {
	// If dir is already absolute, use it directly
	fullPath := dir
	if !filepath.IsAbs(dir) {
		fullPath = filepath.Join(d.basePath, dir)
	}
	searchPattern := filepath.Join(fullPath, pattern)

	matches, err := filepath.Glob(searchPattern)
	if err != nil {
		return nil, fmt.Errorf("invalid pattern %s: %w", pattern, err)
	}

	var files []FileInfo
	for _, match := range matches {
		info, err := os.Stat(match)
		if err != nil {
			continue
		}

		if !info.IsDir() {
			files = append(files, FileInfo{
				Path:    match,
				Name:    filepath.Base(match),
				Size:    info.Size(),
				ModTime: info.ModTime(),
			})
		}
	}

	return files, nil
}

// SortByName sorts files lexically by name. Glob output is already sorted
// on most platforms; this makes the order explicit for callers that rely
// on deterministic iteration.
func SortByName(files []FileInfo) {
	sort.Slice(files, func(i, j int) bool {
		return files[i].Name < files[j].Name
	})
}
