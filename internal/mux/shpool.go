package mux

import (
	"strings"
	"time"

	"github.com/simon/muxpick/internal/session"
)

// NewShpool returns the shpool authority. shpool attach creates missing
// sessions, so Create and Attach share one subcommand.
func NewShpool(runner Runner, opts ...Option) *Backend {
	attach := func(name string) []string { return []string{"attach", name} }
	return newBackend(dialect{
		name:       "shpool",
		listArgs:   []string{"list"},
		empty:      shpoolEmpty,
		parse:      parseShpoolList,
		attachArgs: attach,
		createArgs: attach,
		killArgs: func(name string) []string {
			return []string{"kill", name}
		},
	}, runner, opts...)
}

func shpoolEmpty(res Result) bool {
	if res.ExitCode != 0 {
		return false
	}
	return len(parseShpoolList(res.Stdout)) == 0
}

// parseShpoolList parses the NAME / STARTED_AT / STATUS table printed by
// `shpool list`. Columns are tab separated; whitespace is accepted too.
func parseShpoolList(output string) []session.Record {
	var records []session.Record
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		fields := splitColumns(line)
		if len(fields) == 0 {
			continue
		}
		if fields[0] == "NAME" {
			continue
		}
		r := session.Record{Name: fields[0]}
		if len(fields) > 1 {
			r.Created = parseTimestamp(fields[1])
		}
		if len(fields) > 2 {
			r.Status = strings.ToLower(fields[len(fields)-1])
			r.Attached = r.Status == "attached"
		}
		records = append(records, r)
	}
	return records
}

// splitColumns splits on tabs when present, otherwise on runs of whitespace.
func splitColumns(line string) []string {
	if !strings.Contains(line, "\t") {
		return strings.Fields(line)
	}
	var out []string
	for _, f := range strings.Split(line, "\t") {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
}

func parseTimestamp(s string) time.Time {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
