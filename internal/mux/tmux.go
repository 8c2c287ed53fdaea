package mux

import (
	"strconv"
	"strings"
	"time"

	"github.com/simon/muxpick/internal/session"
)

const tmuxListFormat = "#{session_name}|#{session_attached}|#{session_windows}|#{session_created}|#{session_path}"

// NewTmux returns the tmux authority. tmux distinguishes creating a session
// from attaching to one, so Create uses new-session.
func NewTmux(runner Runner, opts ...Option) *Backend {
	return newBackend(dialect{
		name:     "tmux",
		listArgs: []string{"list-sessions", "-F", tmuxListFormat},
		empty:    tmuxEmpty,
		parse:    parseTmuxList,
		attachArgs: func(name string) []string {
			return []string{"attach-session", "-t", name}
		},
		createArgs: func(name string) []string {
			return []string{"new-session", "-s", name}
		},
		killArgs: func(name string) []string {
			return []string{"kill-session", "-t", name}
		},
	}, runner, opts...)
}

// tmuxEmpty recognizes tmux's "no server" exits, which just mean there
// are no sessions yet.
func tmuxEmpty(res Result) bool {
	if res.ExitCode == 0 {
		return strings.TrimSpace(res.Stdout) == ""
	}
	lower := strings.ToLower(res.Stderr)
	return strings.Contains(lower, "no server running") ||
		strings.Contains(lower, "no sessions") ||
		strings.Contains(lower, "error connecting to")
}

// parseTmuxList parses list-sessions output in tmuxListFormat.
func parseTmuxList(output string) []session.Record {
	var records []session.Record
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		parts := strings.SplitN(line, "|", 5)
		name := parts[0]
		if name == "" {
			name = line
		}
		r := session.Record{Name: name}
		if len(parts) > 1 {
			attached, _ := strconv.Atoi(parts[1])
			r.Clients = attached
			r.Attached = attached > 0
		}
		if len(parts) > 2 {
			r.Windows, _ = strconv.Atoi(parts[2])
		}
		if len(parts) > 3 {
			if createdUnix, err := strconv.ParseInt(parts[3], 10, 64); err == nil && createdUnix > 0 {
				r.Created = time.Unix(createdUnix, 0)
			}
		}
		if len(parts) > 4 {
			r.Path = parts[4]
		}
		records = append(records, r)
	}
	return records
}
