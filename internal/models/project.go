package models

type Project struct {
	ID          int64     `json:"id"`
	Name        string    `json:"nome"`
	Description string    `json:"descricao"`
	CreatedAt   Timestamp `json:"data_criacao"`
	Owner       User      `json:"proprietario"`
}

type ProjectInput struct {
	Name        string `json:"nome"`
	Description string `json:"descricao"`
	OwnerID     *int64 `json:"proprietario_id,omitempty"`
}

type ProgressSummary struct {
	Total      int `json:"total_tarefas"`
	Completed  int `json:"concluidas"`
	Pending    int `json:"pendentes"`
	InProgress int `json:"em_progresso"`
}

// Percent is the share of completed tasks, 0 when the project has none.
func (p ProgressSummary) Percent() int {
	if p.Total == 0 {
		return 0
	}
	return p.Completed * 100 / p.Total
}

type ProjectTaskCount struct {
	ProjectName string `json:"projeto__nome"`
	Total       int    `json:"total"`
}
