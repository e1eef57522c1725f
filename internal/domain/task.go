package domain

// Priority mirrors the backend's task priority choices.
type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
)

// TaskStatus mirrors the backend's task status choices.
type TaskStatus string

const (
	StatusPending    TaskStatus = "PENDING"
	StatusInProgress TaskStatus = "IN_PROGRESS"
	StatusCompleted  TaskStatus = "COMPLETED"
)

// TaskDraft is the payload of POST /tasks/.
// Fields are sent as-is; server-side validation is what the probe exercises.
// A nil DueDate is encoded as JSON null.
type TaskDraft struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	DueDate     *string    `json:"due_date"`
	Priority    Priority   `json:"priority"`
	Status      TaskStatus `json:"status"`
	Starred     bool       `json:"starred"`
}

// APIResponse is the raw outcome of a single HTTP call.
type APIResponse struct {
	StatusCode int
	Body       []byte
}
