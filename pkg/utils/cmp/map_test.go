package cmp_test

import (
	"testing"

	"github.com/AliRehmantechndev/EdgeMind-backend/pkg/utils/cmp"
)

func TestMapEq(t *testing.T) {
	for name, testcase := range map[string]struct {
		a, b map[string]int
		want bool
	}{
		"maps with same entries are equal": {
			map[string]int{"a": 1, "b": 2}, map[string]int{"b": 2, "a": 1}, true,
		},
		"a differing value breaks equality": {
			map[string]int{"a": 1}, map[string]int{"a": 2}, false,
		},
		"a differing key breaks equality": {
			map[string]int{"a": 1}, map[string]int{"b": 1}, false,
		},
		"different sizes are not equal": {
			map[string]int{"a": 1}, map[string]int{"a": 1, "b": 2}, false,
		},
		"empty maps are equal": {map[string]int{}, map[string]int{}, true},
	} {
		t.Run(name, func(t *testing.T) {
			if got := cmp.MapEq(testcase.a, testcase.b); got != testcase.want {
				t.Errorf("MapEq(%v, %v) = %v, want %v", testcase.a, testcase.b, got, testcase.want)
			}
		})
	}
}

func TestMapEqWith(t *testing.T) {
	approx := func(a float64, b float64) bool {
		d := a - b
		return -0.01 < d && d < 0.01
	}

	if !cmp.MapEqWith(
		map[string]float64{"x": 1.0}, map[string]float64{"x": 1.005}, approx,
	) {
		t.Error("values within tolerance should be equal")
	}
	if cmp.MapEqWith(
		map[string]float64{"x": 1.0}, map[string]float64{"x": 1.5}, approx,
	) {
		t.Error("values out of tolerance should not be equal")
	}
}
