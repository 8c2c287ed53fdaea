package session

import (
	"fmt"
	"strings"
	"time"
)

// Record is one session as reported by the external authority.
// Only Name is guaranteed; the remaining fields are filled in when the
// authority's listing carries them.
type Record struct {
	Name     string
	Attached bool
	Clients  int    // connected clients (zmx)
	Windows  int    // window count (tmux)
	Path     string // working directory, if known
	Status   string // raw status column (shpool: attached/disconnected)
	Created  time.Time
}

// Names returns the session names in listing order.
func Names(records []Record) []string {
	names := make([]string, 0, len(records))
	for _, r := range records {
		names = append(names, r.Name)
	}
	return names
}

// Describe renders the optional attributes of a record for display,
// e.g. "attached · 3 windows · 2h".
func (r Record) Describe(now time.Time) string {
	var parts []string
	switch {
	case r.Attached:
		parts = append(parts, "attached")
	case r.Status != "":
		parts = append(parts, r.Status)
	}
	if r.Clients > 0 {
		parts = append(parts, plural(r.Clients, "client"))
	}
	if r.Windows > 0 {
		parts = append(parts, plural(r.Windows, "window"))
	}
	if !r.Created.IsZero() && now.After(r.Created) {
		parts = append(parts, FormatDurationCoarse(now.Sub(r.Created)))
	}
	return strings.Join(parts, " · ")
}

func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

// FormatDurationCoarse formats a duration using only the largest unit.
func FormatDurationCoarse(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
	if d < time.Hour {
		return fmt.Sprintf("%dm", int(d.Minutes()))
	}
	if d < 24*time.Hour {
		return fmt.Sprintf("%dh", int(d.Hours()))
	}
	return fmt.Sprintf("%dd", int(d.Hours())/24)
}

// FormatDuration formats a duration for display.
func FormatDuration(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
	if d < time.Hour {
		return fmt.Sprintf("%dm", int(d.Minutes()))
	}
	if d < 24*time.Hour {
		h := int(d.Hours())
		m := int(d.Minutes()) % 60
		if m == 0 {
			return fmt.Sprintf("%dh", h)
		}
		return fmt.Sprintf("%dh %dm", h, m)
	}
	days := int(d.Hours()) / 24
	hours := int(d.Hours()) % 24
	if hours == 0 {
		return fmt.Sprintf("%dd", days)
	}
	return fmt.Sprintf("%dd %dh", days, hours)
}
