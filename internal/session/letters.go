package session

// Designate maps a zero-based rank to its shortcut label: a..z, then aa, ab, ...
//
// Ranks of 26 and above get two letters, 'a'+rank/26-1 followed by
// 'a'+rank%26. This is not bijective base-26: past rank 701 the first
// rune runs beyond 'z'. Labels are unique for the first 676 ranks.
func Designate(rank int) string {
	if rank < 26 {
		return string(rune('a' + rank))
	}
	return string([]rune{rune('a' + rank/26 - 1), rune('a' + rank%26)})
}

// LetterMap is the ordered label -> session name mapping for one listing.
// It is built once and never mutated.
type LetterMap struct {
	keys  []string
	names map[string]string
}

// NewLetterMap designates every record by its position in the listing.
func NewLetterMap(records []Record) *LetterMap {
	m := &LetterMap{
		keys:  make([]string, 0, len(records)),
		names: make(map[string]string, len(records)),
	}
	for i, r := range records {
		label := Designate(i)
		m.keys = append(m.keys, label)
		m.names[label] = r.Name
	}
	return m
}

// Keys returns the labels in listing order.
func (m *LetterMap) Keys() []string {
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}

// Lookup returns the session name designated by label.
func (m *LetterMap) Lookup(label string) (string, bool) {
	name, ok := m.names[label]
	return name, ok
}

// Len returns the number of designated sessions.
func (m *LetterMap) Len() int {
	return len(m.keys)
}
