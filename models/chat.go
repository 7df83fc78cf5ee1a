package models

import "github.com/google/uuid"

// ChatCommand is the body of POST /chat: a free-text task-creation command
// ("create a task 'buy fruit' for 12.12, tag urgent"). UserIDs optionally fans
// the created task out to multiple accounts; when empty the task is created
// for the caller only.
type ChatCommand struct {
	Message string      `json:"message"`
	UserIDs []uuid.UUID `json:"user_ids,omitempty"`
}

// ChatReply is the backend's answer. TaskCreated is set when the command
// resulted in a new task.
type ChatReply struct {
	Reply       string `json:"reply"`
	TaskCreated *Task  `json:"task_created,omitempty"`
}
