package oset

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTTreeCreate(t *testing.T) {
	tree, err := NewTTree(8)
	require.NoError(t, err)
	require.NotNil(t, tree)

	_, err = NewTTree(-1)
	require.Error(t, err)
}

func TestTTreeInsertGet(t *testing.T) {
	sequence := []string{
		"(.(..(....).).)",
		"((....).(....))",
	}

	tree, err := NewTTree(8)
	require.NoError(t, err)
	k := 3

	for _, s := range sequence {
		require.NoError(t, tree.Insert(k, s, 1))
	}

	for _, s := range sequence {
		count, err := tree.Get(k, s)
		require.NoError(t, err)
		require.Equal(t, 1, count)
	}

	_, err = tree.Get(k, "(.)")
	require.Error(t, err)

	// Other buckets stay empty
	_, err = tree.Get(0, sequence[0])
	require.Error(t, err)
}

func TestTTreeIterate(t *testing.T) {
	sequence := []string{
		"(.(..(....).).)",
		"((....).(....))",
		"(..(..(....).))",
	}

	tree, err := NewTTree(8)
	require.NoError(t, err)
	k := 3

	for i, s := range sequence {
		require.NoError(t, tree.Insert(k, s, 1+i))
	}

	valid := make(map[string]bool, len(sequence))
	for _, s := range sequence {
		valid[s] = true
	}

	nseq := 0
	total := 0
	err = tree.Iterate(k, func(s string, count int) error {
		require.True(t, valid[s], "unexpected string %q", s)
		nseq++
		total += count
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, 3, nseq)
	require.Equal(t, 6, total)
}

func TestTTreeInvalidArguments(t *testing.T) {
	tree, err := NewTTree(4)
	require.NoError(t, err)

	require.Error(t, tree.Insert(-1, "abc", 1))
	require.Error(t, tree.Insert(5, "abc", 1))
	require.Error(t, tree.Insert(0, "", 1))
	_, err = tree.Get(5, "abc")
	require.Error(t, err)
	_, err = tree.Get(0, "")
	require.Error(t, err)
	require.Error(t, tree.Iterate(5, func(string, int) error { return nil }))

	// Bucket maxK itself is valid
	require.NoError(t, tree.Insert(4, "abc", 1))
}

// TestTTreeLongString: iteration has no fixed buffer limit.
func TestTTreeLongString(t *testing.T) {
	long := strings.Repeat("ab", 2048)

	tree, err := NewTTree(1)
	require.NoError(t, err)
	require.NoError(t, tree.Insert(0, long, 7))

	count, err := tree.Get(0, long)
	require.NoError(t, err)
	require.Equal(t, 7, count)

	found := false
	err = tree.Iterate(0, func(s string, count int) error {
		require.Equal(t, long, s)
		require.Equal(t, 7, count)
		found = true
		return nil
	})
	require.NoError(t, err)
	require.True(t, found)
}

// TestTTreePrefixKeys: a key that is a prefix of another is still reported
// alongside its extension.
func TestTTreePrefixKeys(t *testing.T) {
	tree, err := NewTTree(0)
	require.NoError(t, err)

	require.NoError(t, tree.Insert(0, "car", 1))
	require.NoError(t, tree.Insert(0, "cart", 2))

	got := map[string]int{}
	err = tree.Iterate(0, func(s string, count int) error {
		got[s] = count
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, map[string]int{"car": 1, "cart": 2}, got)
}
