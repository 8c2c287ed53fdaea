package session

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDesignateSingleLetters(t *testing.T) {
	for r := 0; r < 26; r++ {
		got := Designate(r)
		require.Len(t, got, 1)
		assert.Equal(t, string(rune('a'+r)), got)
	}
}

func TestDesignateTwoLetters(t *testing.T) {
	for r := 26; r < 52; r++ {
		assert.Equal(t, "a"+string(rune('a'+r%26)), Designate(r), "rank %d", r)
	}

	tests := []struct {
		rank   int
		expect string
	}{
		{26, "aa"},
		{27, "ab"},
		{51, "az"},
		{52, "ba"},
		{675, "yz"},
		{676, "za"},
		{701, "zz"},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.rank), func(t *testing.T) {
			assert.Equal(t, tt.expect, Designate(tt.rank))
		})
	}
}

func records(n int) []Record {
	out := make([]Record, n)
	for i := range out {
		out[i] = Record{Name: fmt.Sprintf("s%d", i)}
	}
	return out
}

func TestLetterMapUniqueUpTo676(t *testing.T) {
	m := NewLetterMap(records(676))
	assert.Equal(t, 676, m.Len())

	seen := make(map[string]bool)
	for _, k := range m.Keys() {
		assert.False(t, seen[k], "duplicate label %q", k)
		seen[k] = true
	}
	assert.Len(t, seen, 676)
}

func TestLetterMapTwentySevenSessions(t *testing.T) {
	m := NewLetterMap(records(27))

	keys := m.Keys()
	require.Len(t, keys, 27)
	assert.Equal(t, "a", keys[0])
	assert.Equal(t, "z", keys[25])
	assert.Equal(t, "aa", keys[26])

	name, ok := m.Lookup("aa")
	require.True(t, ok)
	assert.Equal(t, "s26", name)

	name, ok = m.Lookup("a")
	require.True(t, ok)
	assert.Equal(t, "s0", name)
}

func TestLetterMapPreservesOrder(t *testing.T) {
	m := NewLetterMap([]Record{{Name: "zeta"}, {Name: "alpha"}})

	assert.Equal(t, []string{"a", "b"}, m.Keys())
	name, _ := m.Lookup("a")
	assert.Equal(t, "zeta", name)

	_, ok := m.Lookup("c")
	assert.False(t, ok)
}

func TestLetterMapKeysIsACopy(t *testing.T) {
	m := NewLetterMap(records(2))
	keys := m.Keys()
	keys[0] = "mutated"
	assert.Equal(t, []string{"a", "b"}, m.Keys())
}

func TestLetterMapEmpty(t *testing.T) {
	m := NewLetterMap(nil)
	assert.Equal(t, 0, m.Len())
	assert.Empty(t, m.Keys())
}
