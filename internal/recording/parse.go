package recording

import (
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

// chunkSuffix matches the trailing chunk number of a dataset stem,
// e.g. the "_7" of "rest_105923_7".
var chunkSuffix = regexp.MustCompile(`_(\d+)$`)

// fileMeta describes one recording container, parsed from its filename.
type fileMeta struct {
	// dataset is the key of the array inside the container: the filename
	// with extension and trailing chunk number stripped.
	dataset string
	task    string
	chunk   int
}

// parseFileName derives the dataset name, task, and chunk index from a
// container filename. The second return value is false when the name
// belongs to no known task; such files are skipped by the loader.
func parseFileName(name string) (fileMeta, bool) {
	stem := strings.TrimSuffix(name, filepath.Ext(name))

	meta := fileMeta{dataset: stem}
	if m := chunkSuffix.FindStringSubmatch(stem); m != nil {
		// chunk numbers come from the pattern _<digits> and fit an int
		meta.chunk, _ = strconv.Atoi(m[1])
		meta.dataset = strings.TrimSuffix(stem, m[0])
	}

	for _, task := range Tasks {
		if strings.HasPrefix(meta.dataset, task) {
			meta.task = task
			return meta, true
		}
	}

	return fileMeta{}, false
}
