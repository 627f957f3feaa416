package util

import "testing"

func TestIndent(t *testing.T) {
	if got := Indent("a\nb", "\t"); got != "\ta\n\tb" {
		t.Errorf("Indent = %q", got)
	}
	if got := Indent("", "\t"); got != "" {
		t.Errorf("Indent(empty) = %q", got)
	}
}

func TestZeroPadSliceToString(t *testing.T) {
	if got := ZeroPadSliceToString([]byte{'a', 'b', 0, 0}); got != "ab" {
		t.Errorf("got %q, want %q", got, "ab")
	}
	if got := ZeroPadSliceToString([]byte{0, 0}); got != "" {
		t.Errorf("got %q, want empty", got)
	}
}

func TestHexGrid(t *testing.T) {
	got := HexGrid([]int{0, 1, 2, 3, 4}, "  ", 4)
	want := "  00 01 02 03\n  04"
	if got != want {
		t.Errorf("HexGrid = %q, want %q", got, want)
	}
}
