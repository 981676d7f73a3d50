package models

import "time"

type TaskStatus string

const (
	TaskTodo       TaskStatus = "todo"
	TaskInProgress TaskStatus = "in-progress"
	TaskDone       TaskStatus = "done"
)

type Task struct {
	ID            string     `json:"id"`
	UserID        string     `json:"user_id"`
	ApplicationID *string    `json:"application_id"`
	Title         string     `json:"title"`
	Description   *string    `json:"description"`
	DueDate       *time.Time `json:"due_date"`
	Priority      *Priority  `json:"priority"`
	Status        TaskStatus `json:"status,omitempty"`
	Completed     bool       `json:"completed"`
	CompletedAt   *time.Time `json:"completed_at"`
	Category      *string    `json:"category"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     *time.Time `json:"updated_at"`
}

func (t Task) Key() string { return t.ID }

func (t Task) Clone() Task {
	t.ApplicationID = clonePtr(t.ApplicationID)
	t.Description = clonePtr(t.Description)
	t.DueDate = clonePtr(t.DueDate)
	t.Priority = clonePtr(t.Priority)
	t.CompletedAt = clonePtr(t.CompletedAt)
	t.Category = clonePtr(t.Category)
	t.UpdatedAt = clonePtr(t.UpdatedAt)
	return t
}

// TaskLess orders newest first.
func TaskLess(a, b Task) bool {
	return a.CreatedAt.After(b.CreatedAt)
}

// TogglePatch flips completed and the fields that depend on it. An
// un-completed task gets status reopen, or todo when reopen is empty or done.
func (t Task) TogglePatch(now time.Time, reopen TaskStatus) Patch {
	if t.Completed {
		if reopen == "" || reopen == TaskDone {
			reopen = TaskTodo
		}
		return Patch{"completed": false, "status": string(reopen), "completed_at": nil}
	}
	return Patch{"completed": true, "status": string(TaskDone), "completed_at": now.UTC()}
}
