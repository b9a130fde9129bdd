package models

import "fmt"

type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pendente"
	TaskStatusInProgress TaskStatus = "em_progresso"
	TaskStatusCompleted  TaskStatus = "concluída"
)

var TaskStatuses = []TaskStatus{
	TaskStatusPending,
	TaskStatusInProgress,
	TaskStatusCompleted,
}

func ParseTaskStatus(s string) (TaskStatus, error) {
	for _, st := range TaskStatuses {
		if string(st) == s {
			return st, nil
		}
	}
	return "", fmt.Errorf("invalid task status %q", s)
}

func (s TaskStatus) Label() string {
	switch s {
	case TaskStatusPending:
		return "Pendente"
	case TaskStatusInProgress:
		return "Em Progresso"
	case TaskStatusCompleted:
		return "Concluída"
	}
	return string(s)
}

type Task struct {
	ID          int64      `json:"id"`
	Title       string     `json:"titulo"`
	Description string     `json:"descricao"`
	Status      TaskStatus `json:"status"`
	CreatedAt   Timestamp  `json:"data_criacao"`
	CompletedAt *Timestamp `json:"data_conclusao"`
	Project     Project    `json:"projeto"`
	Assignee    *User      `json:"atribuido_a"`
}

type TaskInput struct {
	Title       string `json:"titulo"`
	Description string `json:"descricao"`
	ProjectID   int64  `json:"projeto_id"`
}

// CountByStatus counts tasks per status. Statuses outside the known set are ignored.
func CountByStatus(tasks []Task) map[TaskStatus]int {
	counts := make(map[TaskStatus]int, len(TaskStatuses))
	for _, st := range TaskStatuses {
		counts[st] = 0
	}
	for _, t := range tasks {
		if _, ok := counts[t.Status]; ok {
			counts[t.Status]++
		}
	}
	return counts
}
