package recording

import (
	"context"
	"errors"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/sbinet/npyio/npz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/antisocialites/Deep-Learning/internal/errs"
	"github.com/antisocialites/Deep-Learning/internal/shared/testutil"
)

// writeChunk writes one recording container the way the acquisition
// pipeline lays them out: <dataset>_<chunk>.npz holding a single array
// keyed <dataset>.npy.
func writeChunk(t *testing.T, dir, file, dataset string, m *mat.Dense) {
	t.Helper()

	w, err := npz.Create(filepath.Join(dir, file))
	require.NoError(t, err)
	require.NoError(t, w.Write(dataset+".npy", m))
	require.NoError(t, w.Close())
}

// constMatrix fills a rows x cols matrix with a single value.
func constMatrix(rows, cols int, v float64) *mat.Dense {
	data := make([]float64, rows*cols)
	for i := range data {
		data[i] = v
	}
	return mat.NewDense(rows, cols, data)
}

func TestLoadParticipant_SingleChunkIdentity(t *testing.T) {
	dir := t.TempDir()
	src := mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6})
	writeChunk(t, dir, "rest_105923_0.npz", "rest_105923", src)

	loader := NewLoader(slog.Default(), dir)
	data, err := loader.LoadParticipant(context.Background(), "105923")
	require.NoError(t, err)

	require.NotNil(t, data.Rest)
	assert.True(t, mat.Equal(src, data.Rest))
	assert.Nil(t, data.Motor)
	assert.Nil(t, data.StoryMath)
	assert.Nil(t, data.WorkingMemory)
	assert.Equal(t, "105923", data.ParticipantID)
}

func TestLoadParticipant_ChunkOrder(t *testing.T) {
	dir := t.TempDir()
	// written out of order on purpose; each chunk is filled with its own
	// index so block order is visible after concatenation
	writeChunk(t, dir, "rest_105923_2.npz", "rest_105923", constMatrix(4, 10, 2))
	writeChunk(t, dir, "rest_105923_0.npz", "rest_105923", constMatrix(4, 10, 0))
	writeChunk(t, dir, "rest_105923_1.npz", "rest_105923", constMatrix(4, 10, 1))

	loader := NewLoader(slog.Default(), dir)
	data, err := loader.LoadParticipant(context.Background(), "105923")
	require.NoError(t, err)

	require.NotNil(t, data.Rest)
	rows, cols := data.Rest.Dims()
	assert.Equal(t, 4, rows)
	assert.Equal(t, 30, cols)

	for j := 0; j < cols; j++ {
		want := float64(j / 10)
		for i := 0; i < rows; i++ {
			assert.Equal(t, want, data.Rest.At(i, j), "row %d col %d", i, j)
		}
	}
}

func TestLoadParticipant_AllTasks(t *testing.T) {
	dir := t.TempDir()
	writeChunk(t, dir, "rest_105923_0.npz", "rest_105923", constMatrix(3, 5, 1))
	writeChunk(t, dir, "task_motor_105923_0.npz", "task_motor_105923", constMatrix(3, 6, 2))
	writeChunk(t, dir, "task_story_math_105923_0.npz", "task_story_math_105923", constMatrix(3, 7, 3))
	writeChunk(t, dir, "task_working_memory_105923_0.npz", "task_working_memory_105923", constMatrix(3, 8, 4))

	loader := NewLoader(slog.Default(), dir)
	data, err := loader.LoadParticipant(context.Background(), "105923")
	require.NoError(t, err)

	for task, wantCols := range map[string]int{
		TaskRest:          5,
		TaskMotor:         6,
		TaskStoryMath:     7,
		TaskWorkingMemory: 8,
	} {
		m := data.ByTask(task)
		require.NotNil(t, m, task)
		rows, cols := m.Dims()
		assert.Equal(t, 3, rows, task)
		assert.Equal(t, wantCols, cols, task)
	}
}

func TestLoadParticipant_SkipsOtherParticipantsAndUnknownTasks(t *testing.T) {
	dir := t.TempDir()
	writeChunk(t, dir, "rest_105923_0.npz", "rest_105923", constMatrix(2, 4, 1))
	writeChunk(t, dir, "rest_212318_0.npz", "rest_212318", constMatrix(2, 4, 9))
	writeChunk(t, dir, "task_eyes_open_105923_0.npz", "task_eyes_open_105923", constMatrix(2, 4, 9))

	logger, logs := testutil.NewTestLogger()
	loader := NewLoader(logger, dir)
	data, err := loader.LoadParticipant(context.Background(), "105923")
	require.NoError(t, err)

	require.NotNil(t, data.Rest)
	_, cols := data.Rest.Dims()
	assert.Equal(t, 4, cols)
	assert.Equal(t, 1.0, data.Rest.At(0, 0))
	assert.True(t, logs.HasMessage("skipping file with unknown task"))
}

func TestLoadParticipant_InconsistentNodeCount(t *testing.T) {
	dir := t.TempDir()
	writeChunk(t, dir, "rest_105923_0.npz", "rest_105923", constMatrix(4, 10, 0))
	writeChunk(t, dir, "rest_105923_1.npz", "rest_105923", constMatrix(5, 10, 1))

	loader := NewLoader(slog.Default(), dir)
	data, err := loader.LoadParticipant(context.Background(), "105923")

	require.Error(t, err)
	assert.Nil(t, data)
	assert.True(t, errors.Is(err, errs.ErrInconsistentShape))
	assert.True(t, errs.IsValidation(err))
}

func TestLoadParticipant_EmptyDirectory(t *testing.T) {
	loader := NewLoader(slog.Default(), t.TempDir())
	data, err := loader.LoadParticipant(context.Background(), "105923")
	require.NoError(t, err)

	assert.Nil(t, data.Rest)
	assert.Nil(t, data.Motor)
	assert.Nil(t, data.StoryMath)
	assert.Nil(t, data.WorkingMemory)
}

func TestLoadParticipant_Canceled(t *testing.T) {
	dir := t.TempDir()
	writeChunk(t, dir, "rest_105923_0.npz", "rest_105923", constMatrix(2, 2, 1))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	loader := NewLoader(slog.Default(), dir)
	_, err := loader.LoadParticipant(ctx, "105923")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLoadTask(t *testing.T) {
	dir := t.TempDir()
	writeChunk(t, dir, "task_motor_105923_1.npz", "task_motor_105923", constMatrix(2, 3, 1))
	writeChunk(t, dir, "task_motor_105923_0.npz", "task_motor_105923", constMatrix(2, 3, 0))

	loader := NewLoader(slog.Default(), dir)

	m, err := loader.LoadTask(context.Background(), "105923", TaskMotor)
	require.NoError(t, err)
	require.NotNil(t, m)

	_, cols := m.Dims()
	require.Equal(t, 6, cols)
	assert.Equal(t, 0.0, m.At(0, 0))
	assert.Equal(t, 1.0, m.At(0, 5))

	absent, err := loader.LoadTask(context.Background(), "105923", TaskRest)
	require.NoError(t, err)
	assert.Nil(t, absent)
}

func TestLoadParticipant_MissingDataset(t *testing.T) {
	dir := t.TempDir()
	// container keyed under the wrong name
	writeChunk(t, dir, "rest_105923_0.npz", "something_else", constMatrix(2, 2, 1))

	loader := NewLoader(slog.Default(), dir)
	_, err := loader.LoadParticipant(context.Background(), "105923")
	assert.Error(t, err)
}
