package taskapi

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TWRT/taskboard/internal/models"
)

type item struct {
	ID int64 `json:"id"`
}

func TestExtractResults(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		want   []item
		wantOK bool
	}{
		{name: "bare array", raw: `[{"id":1},{"id":2}]`, want: []item{{1}, {2}}, wantOK: true},
		{name: "envelope", raw: `{"count":1,"next":null,"previous":null,"results":[{"id":7}]}`, want: []item{{7}}, wantOK: true},
		{name: "empty array", raw: `[]`, want: []item{}, wantOK: true},
		{name: "envelope with empty results", raw: `{"results":[]}`, want: []item{}, wantOK: true},
		{name: "leading whitespace", raw: "\n  [{\"id\":3}]", want: []item{{3}}, wantOK: true},
		{name: "object without results", raw: `{"detail":"x"}`, want: []item{}, wantOK: false},
		{name: "results not a list", raw: `{"results":{"id":1}}`, want: []item{}, wantOK: false},
		{name: "null results", raw: `{"results":null}`, want: []item{}, wantOK: false},
		{name: "null", raw: `null`, want: []item{}, wantOK: false},
		{name: "string", raw: `"hello"`, want: []item{}, wantOK: false},
		{name: "empty body", raw: ``, want: []item{}, wantOK: false},
		{name: "broken json", raw: `[{"id":`, want: []item{}, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractResults[item]([]byte(tt.raw))
			assert.Equal(t, tt.wantOK, ok)
			assert.NotNil(t, got)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractResults_NaiveTimestampsKeepTheList(t *testing.T) {
	raw := `[
		{"id":1,"titulo":"Layout","status":"pendente","data_criacao":"2024-05-01T12:00:00.123456","data_conclusao":null},
		{"id":2,"titulo":"Deploy","status":"concluída","data_criacao":"2024-05-01T12:00:00","data_conclusao":"2024-05-02T08:30:00Z"},
		{"id":3,"titulo":"Docs","status":"pendente","data_criacao":"ontem"}
	]`

	tasks, ok := ExtractResults[models.Task]([]byte(raw))
	require.True(t, ok)
	require.Len(t, tasks, 3)

	want := time.Date(2024, 5, 1, 12, 0, 0, 123456000, time.Local)
	assert.True(t, want.Equal(tasks[0].CreatedAt.Time))
	assert.Nil(t, tasks[0].CompletedAt)
	require.NotNil(t, tasks[1].CompletedAt)
	assert.True(t, time.Date(2024, 5, 2, 8, 30, 0, 0, time.UTC).Equal(tasks[1].CompletedAt.Time))
	assert.True(t, tasks[2].CreatedAt.IsZero())
	assert.Equal(t, "Docs", tasks[2].Title)
}
