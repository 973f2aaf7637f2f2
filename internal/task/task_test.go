package task

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Iron-Ham/tasklist/internal/errors"
)

var testNow = time.Date(2026, time.October, 16, 8, 30, 0, 0, time.UTC)

func TestNew(t *testing.T) {
	tk, err := New("  Buy milk  ", NewDate(2026, time.October, 20), testNow)
	require.NoError(t, err)

	assert.NotEmpty(t, tk.ID)
	assert.Equal(t, "Buy milk", tk.Text)
	assert.False(t, tk.Done)
	assert.True(t, tk.HasDue())
	assert.Equal(t, testNow, tk.CreatedAt)

	other, err := New("Buy milk", Date{}, testNow)
	require.NoError(t, err)
	assert.NotEqual(t, tk.ID, other.ID)
	assert.False(t, other.HasDue())
}

func TestNew_EmptyText(t *testing.T) {
	for _, text := range []string{"", "   ", "\t\n"} {
		_, err := New(text, Date{}, testNow)
		assert.ErrorIs(t, err, errors.ErrEmptyText, "text %q", text)
	}
}

func TestTask_MarshalJSON(t *testing.T) {
	tk := Task{
		ID:        "abc",
		Text:      "Buy milk",
		Due:       NewDate(2026, time.October, 20),
		CreatedAt: testNow,
	}

	data, err := json.Marshal(tk)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"id": "abc",
		"text": "Buy milk",
		"date": "2026-10-20",
		"done": false,
		"createdAt": "2026-10-16T08:30:00.000Z"
	}`, string(data))

	tk.Due = Date{}
	tk.Done = true
	data, err = json.Marshal(tk)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"date":""`)
	assert.Contains(t, string(data), `"done":true`)
}

func TestTask_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Task
		wantErr bool
	}{
		{
			name:  "full record",
			input: `{"id":"a","text":"Read","date":"2026-01-02","done":true,"createdAt":"2026-01-01T10:00:00.000Z"}`,
			want: Task{
				ID: "a", Text: "Read", Due: NewDate(2026, time.January, 2), Done: true,
				CreatedAt: time.Date(2026, time.January, 1, 10, 0, 0, 0, time.UTC),
			},
		},
		{
			name:  "no date and bad createdAt",
			input: `{"id":"b","text":" Walk ","date":"","done":false,"createdAt":"yesterday"}`,
			want:  Task{ID: "b", Text: "Walk"},
		},
		{name: "missing id", input: `{"text":"x"}`, wantErr: true},
		{name: "blank text", input: `{"id":"c","text":"  "}`, wantErr: true},
		{name: "bad date", input: `{"id":"d","text":"x","date":"20/10/2026"}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got Task
			err := json.Unmarshal([]byte(tt.input), &got)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate(" 2026-02-28 ")
	require.NoError(t, err)
	assert.Equal(t, NewDate(2026, time.February, 28), d)
	assert.Equal(t, "2026-02-28", d.String())

	d, err = ParseDate("")
	require.NoError(t, err)
	assert.True(t, d.IsZero())
	assert.Equal(t, "", d.String())

	for _, bad := range []string{"2026-02-30", "tomorrow", "2026/02/01"} {
		_, err := ParseDate(bad)
		assert.ErrorIs(t, err, errors.ErrInvalidDate, bad)
	}
}

func TestDate_BeforeAndAddDays(t *testing.T) {
	today := NewDate(2026, time.December, 31)

	assert.True(t, today.AddDays(-1).Before(today))
	assert.False(t, today.Before(today))
	assert.False(t, today.AddDays(1).Before(today))
	assert.Equal(t, NewDate(2027, time.January, 1), today.AddDays(1))
}
