package mux

import (
	"strconv"
	"strings"
	"time"

	"github.com/simon/muxpick/internal/session"
)

const zmxNoSessions = "no sessions found"

// NewZmx returns the zmx authority. Like shpool, attach creates.
func NewZmx(runner Runner, opts ...Option) *Backend {
	attach := func(name string) []string { return []string{"attach", name} }
	return newBackend(dialect{
		name:       "zmx",
		listArgs:   []string{"list"},
		empty:      zmxEmpty,
		parse:      parseZmxList,
		attachArgs: attach,
		createArgs: attach,
		killArgs: func(name string) []string {
			return []string{"kill", name}
		},
	}, runner, opts...)
}

func zmxEmpty(res Result) bool {
	out := strings.ToLower(strings.TrimSpace(res.Stdout))
	if res.ExitCode != 0 {
		return strings.Contains(strings.ToLower(res.Stderr), zmxNoSessions) ||
			strings.Contains(out, zmxNoSessions)
	}
	return out == "" || strings.Contains(out, zmxNoSessions)
}

// parseZmxList scans `key=value` tokens per line, e.g.
//
//	session_name=dev	pid=4242	clients=1	created_at=1717000000	start_dir=/src
func parseZmxList(output string) []session.Record {
	var records []session.Record
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		var r session.Record
		for _, tok := range splitColumns(line) {
			key, value, ok := strings.Cut(tok, "=")
			if !ok {
				continue
			}
			switch key {
			case "session_name", "name":
				r.Name = value
			case "clients":
				r.Clients, _ = strconv.Atoi(value)
				r.Attached = r.Clients > 0
			case "created_at", "created":
				r.Created = parseZmxTime(value)
			case "start_dir", "dir", "cwd":
				r.Path = value
			case "status":
				r.Status = value
			}
		}
		if r.Name == "" {
			r.Name = line
		}
		records = append(records, r)
	}
	return records
}

func parseZmxTime(s string) time.Time {
	if unix, err := strconv.ParseInt(s, 10, 64); err == nil && unix > 0 {
		return time.Unix(unix, 0)
	}
	return parseTimestamp(s)
}
