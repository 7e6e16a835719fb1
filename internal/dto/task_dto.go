package dto

// CreateTaskRequest is the typed contract for POST /tasks. Status is
// validated against the canonical set; no default is substituted
// server-side (clients send "Pending" for new tasks).
type CreateTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
	Assignee    string `json:"assignee"`
}

// UpdateTaskRequest fully replaces a task's mutable fields; there are no
// sparse updates.
type UpdateTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
	Assignee    string `json:"assignee"`
}

type SetConfigRequest struct {
	Value any `json:"value"`
}
