package recording

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/sbinet/npyio/npz"
	"gonum.org/v1/gonum/mat"

	"github.com/antisocialites/Deep-Learning/internal/errs"
	"github.com/antisocialites/Deep-Learning/internal/files"
)

// chunk is one time-segment of a task recording.
type chunk struct {
	index int
	data  *mat.Dense
}

// Loader discovers and assembles the chunked recordings of participants.
type Loader struct {
	logger    *slog.Logger
	discovery *files.Discovery
	dir       string
}

// NewLoader creates a loader reading from recordingsDir.
// A nil logger falls back to slog.Default().
func NewLoader(logger *slog.Logger, recordingsDir string) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{
		logger:    logger,
		discovery: files.NewDiscovery(recordingsDir),
		dir:       recordingsDir,
	}
}

// LoadParticipant loads every task recording of one participant. Chunks
// of each task are sorted by chunk index and concatenated along the time
// axis; tasks with no matching files stay nil in the result.
func (l *Loader) LoadParticipant(ctx context.Context, participantID string) (*ParticipantData, error) {
	buckets, err := l.loadChunks(ctx, participantID)
	if err != nil {
		return nil, err
	}

	data := &ParticipantData{ParticipantID: participantID}
	for _, task := range Tasks {
		m, err := concatChunks(task, buckets[task])
		if err != nil {
			return nil, err
		}
		if m != nil {
			rows, cols := m.Dims()
			l.logger.InfoContext(ctx, "assembled task recording",
				slog.String("participant", participantID),
				slog.String("task", task),
				slog.Int("chunks", len(buckets[task])),
				slog.Int("nodes", rows),
				slog.Int("timepoints", cols))
		}
		data.setTask(task, m)
	}

	return data, nil
}

// LoadTask loads the concatenated recording of a single task, nil when
// the participant has no files for it.
func (l *Loader) LoadTask(ctx context.Context, participantID, task string) (*mat.Dense, error) {
	buckets, err := l.loadChunks(ctx, participantID)
	if err != nil {
		return nil, err
	}
	return concatChunks(task, buckets[task])
}

// loadChunks discovers the participant's files and reads them into
// per-task chunk buckets. Files that parse to no known task are skipped.
func (l *Loader) loadChunks(ctx context.Context, participantID string) (map[string][]chunk, error) {
	found, err := l.discovery.FindRecordingFiles(".", participantID)
	if err != nil {
		return nil, fmt.Errorf("failed to discover recordings for %s: %w", participantID, err)
	}

	buckets := make(map[string][]chunk, len(Tasks))
	for _, f := range found {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		meta, ok := parseFileName(f.Name)
		if !ok {
			l.logger.DebugContext(ctx, "skipping file with unknown task",
				slog.String("file", f.Name))
			continue
		}

		m, err := readContainer(f.Path, meta.dataset)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", f.Name, err)
		}

		l.logger.DebugContext(ctx, "read recording chunk",
			slog.String("file", f.Name),
			slog.String("task", meta.task),
			slog.Int("chunk", meta.chunk))

		buckets[meta.task] = append(buckets[meta.task], chunk{index: meta.chunk, data: m})
	}

	return buckets, nil
}

// concatChunks orders the chunks of one task by ascending index and
// concatenates them along the time axis (columns). All chunks must agree
// on the node count (rows).
func concatChunks(task string, chunks []chunk) (*mat.Dense, error) {
	if len(chunks) == 0 {
		return nil, nil
	}

	sort.SliceStable(chunks, func(i, j int) bool {
		return chunks[i].index < chunks[j].index
	})

	rows, _ := chunks[0].data.Dims()
	total := 0
	for _, c := range chunks {
		r, cols := c.data.Dims()
		if r != rows {
			return nil, errs.ValidationWrap(errs.ErrInconsistentShape, task,
				fmt.Sprintf("chunk %d has %d nodes, want %d", c.index, r, rows))
		}
		total += cols
	}

	if len(chunks) == 1 {
		return chunks[0].data, nil
	}

	out := mat.NewDense(rows, total, nil)
	offset := 0
	for _, c := range chunks {
		_, cols := c.data.Dims()
		out.Slice(0, rows, offset, offset+cols).(*mat.Dense).Copy(c.data)
		offset += cols
	}

	return out, nil
}

// readContainer reads the named dataset from an npz container into a
// dense matrix. Keys are resolved both bare and with the .npy suffix
// numpy appends to archive members.
func readContainer(path, dataset string) (*mat.Dense, error) {
	r, err := npz.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open container: %w", err)
	}
	defer r.Close()

	key := ""
	for _, k := range r.Keys() {
		if k == dataset || k == dataset+".npy" {
			key = k
			break
		}
	}
	if key == "" {
		return nil, fmt.Errorf("dataset %q not found in container", dataset)
	}

	var m mat.Dense
	if err := r.Read(key, &m); err != nil {
		return nil, fmt.Errorf("failed to read dataset %q: %w", dataset, err)
	}

	return &m, nil
}
