package cmp_test

import (
	"strconv"
	"testing"

	"github.com/AliRehmantechndev/EdgeMind-backend/pkg/utils/cmp"
)

func TestSliceEq(t *testing.T) {
	for name, testcase := range map[string]struct {
		a, b []int
		want bool
	}{
		"same elements in same order are equal":     {[]int{1, 2, 3}, []int{1, 2, 3}, true},
		"same elements in other order are not":      {[]int{1, 2, 3}, []int{3, 2, 1}, false},
		"different lengths are not equal":           {[]int{1, 2}, []int{1, 2, 3}, false},
		"empty slices are equal":                    {[]int{}, []int{}, true},
		"nil and empty are equal":                   {nil, []int{}, true},
		"a prefix is not equal to the whole":        {[]int{1}, []int{1, 2}, false},
		"single differing element breaks equality":  {[]int{1, 2, 3}, []int{1, 9, 3}, false},
	} {
		t.Run(name, func(t *testing.T) {
			if got := cmp.SliceEq(testcase.a, testcase.b); got != testcase.want {
				t.Errorf("SliceEq(%v, %v) = %v, want %v", testcase.a, testcase.b, got, testcase.want)
			}
		})
	}
}

func TestSliceEqWith(t *testing.T) {
	pred := func(a int, b string) bool { return strconv.Itoa(a) == b }

	if !cmp.SliceEqWith([]int{1, 2}, []string{"1", "2"}, pred) {
		t.Error("pairwise-matching slices are not equal")
	}
	if cmp.SliceEqWith([]int{1, 2}, []string{"2", "1"}, pred) {
		t.Error("order should matter")
	}
	if cmp.SliceEqWith([]int{1}, []string{"1", "2"}, pred) {
		t.Error("length should matter")
	}
}

func TestSliceContentEq(t *testing.T) {
	for name, testcase := range map[string]struct {
		a, b []string
		want bool
	}{
		"same content in other order is equal": {
			[]string{"a", "b", "c"}, []string{"c", "a", "b"}, true,
		},
		"multiplicity matters": {
			[]string{"a", "a", "b"}, []string{"a", "b", "b"}, false,
		},
		"extra elements break equality": {
			[]string{"a"}, []string{"a", "a"}, false,
		},
		"empty slices are equal": {[]string{}, []string{}, true},
	} {
		t.Run(name, func(t *testing.T) {
			if got := cmp.SliceContentEq(testcase.a, testcase.b); got != testcase.want {
				t.Errorf(
					"SliceContentEq(%v, %v) = %v, want %v",
					testcase.a, testcase.b, got, testcase.want,
				)
			}
		})
	}
}
