package mux

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simon/muxpick/internal/session"
)

func TestParseTmuxList(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		expect []session.Record
	}{
		{
			name:  "full columns",
			input: "dev|1|3|1700000000|/home/u/dev\n",
			expect: []session.Record{
				{Name: "dev", Attached: true, Clients: 1, Windows: 3, Created: time.Unix(1700000000, 0), Path: "/home/u/dev"},
			},
		},
		{
			name:  "keeps authority order",
			input: "zeta|0|1|0|\nalpha|0|1|0|\n",
			expect: []session.Record{
				{Name: "zeta", Windows: 1},
				{Name: "alpha", Windows: 1},
			},
		},
		{
			name:   "plain name without columns",
			input:  "legacy\n",
			expect: []session.Record{{Name: "legacy"}},
		},
		{
			name:   "missing name degrades to raw line",
			input:  "|0|1|0|/x\n",
			expect: []session.Record{{Name: "|0|1|0|/x", Windows: 1, Path: "/x"}},
		},
		{
			name:   "blank lines skipped",
			input:  "\n\n",
			expect: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, parseTmuxList(tt.input))
		})
	}
}

func TestParseShpoolList(t *testing.T) {
	input := "NAME\tSTARTED_AT\tSTATUS\n" +
		"main\t2024-05-20T10:00:00Z\tattached\n" +
		"scratch\t2024-05-21T08:30:00Z\tdisconnected\n"

	got := parseShpoolList(input)
	require.Len(t, got, 2)
	assert.Equal(t, "main", got[0].Name)
	assert.True(t, got[0].Attached)
	assert.Equal(t, "attached", got[0].Status)
	assert.Equal(t, time.Date(2024, 5, 20, 10, 0, 0, 0, time.UTC), got[0].Created)
	assert.Equal(t, "scratch", got[1].Name)
	assert.False(t, got[1].Attached)
	assert.Equal(t, "disconnected", got[1].Status)
}

func TestParseShpoolListWhitespaceColumns(t *testing.T) {
	got := parseShpoolList("NAME  STARTED_AT  STATUS\nwork  garbage  Disconnected\nlonely\n")
	require.Len(t, got, 2)
	assert.Equal(t, "work", got[0].Name)
	assert.True(t, got[0].Created.IsZero())
	assert.Equal(t, "disconnected", got[0].Status)
	assert.Equal(t, session.Record{Name: "lonely"}, got[1])
}

func TestParseZmxList(t *testing.T) {
	input := "session_name=dev\tpid=4242\tclients=1\tcreated_at=1700000000\tstart_dir=/src/my project\n" +
		"session_name=ops\tpid=77\tclients=0\n" +
		"garbage line without pairs\n"

	got := parseZmxList(input)
	require.Len(t, got, 3)

	assert.Equal(t, session.Record{
		Name:     "dev",
		Attached: true,
		Clients:  1,
		Created:  time.Unix(1700000000, 0),
		Path:     "/src/my project",
	}, got[0])
	assert.Equal(t, "ops", got[1].Name)
	assert.False(t, got[1].Attached)
	assert.Equal(t, "garbage line without pairs", got[2].Name)
}

func TestParseIsIdempotent(t *testing.T) {
	parsers := map[string]struct {
		parse func(string) []session.Record
		input string
	}{
		"tmux":   {parseTmuxList, "a|0|1|1700000000|/a\nb|2|4|1700000001|/b\n"},
		"shpool": {parseShpoolList, "NAME\tSTARTED_AT\tSTATUS\na\t2024-05-20T10:00:00Z\tattached\n"},
		"zmx":    {parseZmxList, "session_name=a\tclients=2\nsession_name=b\n"},
	}

	for name, p := range parsers {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, p.parse(p.input), p.parse(p.input))
		})
	}
}
