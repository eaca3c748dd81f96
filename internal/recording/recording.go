package recording

import "gonum.org/v1/gonum/mat"

// The four experimental task categories recorded per participant.
// Matching against filenames is case-sensitive and first match wins,
// in this order.
const (
	TaskRest          = "rest"
	TaskMotor         = "task_motor"
	TaskStoryMath     = "task_story_math"
	TaskWorkingMemory = "task_working_memory"
)

// Tasks lists the known task categories in their fixed result order.
var Tasks = []string{TaskRest, TaskMotor, TaskStoryMath, TaskWorkingMemory}

// ParticipantData holds the concatenated recording of each task for one
// participant, shaped nodes x timepoints. A field is nil when no file of
// that task matched the participant.
type ParticipantData struct {
	ParticipantID string

	Rest          *mat.Dense
	Motor         *mat.Dense
	StoryMath     *mat.Dense
	WorkingMemory *mat.Dense
}

// ByTask returns the matrix of the named task, nil for an unknown task
// name or a task with no data.
func (p *ParticipantData) ByTask(task string) *mat.Dense {
	switch task {
	case TaskRest:
		return p.Rest
	case TaskMotor:
		return p.Motor
	case TaskStoryMath:
		return p.StoryMath
	case TaskWorkingMemory:
		return p.WorkingMemory
	}
	return nil
}

// setTask stores m under the named task.
func (p *ParticipantData) setTask(task string, m *mat.Dense) {
	switch task {
	case TaskRest:
		p.Rest = m
	case TaskMotor:
		p.Motor = m
	case TaskStoryMath:
		p.StoryMath = m
	case TaskWorkingMemory:
		p.WorkingMemory = m
	}
}
