package linkedlist_test

import (
	"math/rand"
	"testing"

	"github.com/emirpasic/gods/lists/singlylinkedlist"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dsakit/linkedlist"
)

// TestLinkedList_MatchesGodsList replays the same operations on gods'
// singlylinkedlist and compares every observable result.
func TestLinkedList_MatchesGodsList(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	ours := linkedlist.New[int]()
	oracle := singlylinkedlist.New()

	for step := 0; step < 1000; step++ {
		switch rng.Intn(4) {
		case 0, 1:
			ours.Append(step)
			oracle.Add(step)
		case 2:
			idx := rng.Intn(oracle.Size()+2) - 1
			want, wantOK := oracle.Get(idx)
			got, ok := ours.RemoveAt(idx)
			require.Equal(t, wantOK, ok, "step %d: RemoveAt(%d) presence", step, idx)
			if wantOK {
				require.Equal(t, want, got, "step %d: RemoveAt(%d) value", step, idx)
				oracle.Remove(idx)
			}
		case 3:
			idx := rng.Intn(oracle.Size()+2) - 1
			want, wantOK := oracle.Get(idx)
			got, ok := ours.GetAt(idx)
			require.Equal(t, wantOK, ok, "step %d: GetAt(%d) presence", step, idx)
			if wantOK {
				require.Equal(t, want, got, "step %d: GetAt(%d) value", step, idx)
			}
		}
		require.Equal(t, oracle.Size(), ours.Size())
	}

	want := make([]int, 0, oracle.Size())
	for _, v := range oracle.Values() {
		want = append(want, v.(int))
	}
	require.Equal(t, want, ours.Values())
}
