package slices_test

import (
	"strconv"
	"testing"

	"github.com/AliRehmantechndev/EdgeMind-backend/pkg/utils/cmp"
	"github.com/AliRehmantechndev/EdgeMind-backend/pkg/utils/slices"
)

func TestMap(t *testing.T) {
	got := slices.Map([]int{1, 2, 3}, strconv.Itoa)
	if !cmp.SliceEq(got, []string{"1", "2", "3"}) {
		t.Errorf("Map = %v", got)
	}

	if got := slices.Map([]int{}, strconv.Itoa); len(got) != 0 {
		t.Errorf("Map of empty = %v", got)
	}
}

func TestFirst(t *testing.T) {
	even := func(v int) bool { return v%2 == 0 }

	t.Run("the first satisfying element is found", func(t *testing.T) {
		got, ok := slices.First([]int{1, 3, 4, 6}, even)
		if !ok || got != 4 {
			t.Errorf("First = (%d, %v), want (4, true)", got, ok)
		}
	})

	t.Run("no satisfying element yields not-ok", func(t *testing.T) {
		got, ok := slices.First([]int{1, 3, 5}, even)
		if ok || got != 0 {
			t.Errorf("First = (%d, %v), want (0, false)", got, ok)
		}
	})
}

func TestKeepIf(t *testing.T) {
	even := func(v int) bool { return v%2 == 0 }

	got := slices.KeepIf([]int{1, 2, 3, 4, 5, 6}, even)
	if !cmp.SliceEq(got, []int{2, 4, 6}) {
		t.Errorf("KeepIf = %v", got)
	}

	if got := slices.KeepIf([]int{1, 3}, even); len(got) != 0 {
		t.Errorf("KeepIf = %v, want none", got)
	}
}
