package debugger

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseCond(t *testing.T) {
	tests := []struct {
		s       string
		want    Cond
		wantErr bool
	}{
		{s: "eq 3", want: Cond{Op: OpEqual, Lo: 3}},
		{s: "NE $ff", want: Cond{Op: OpNotEqual, Lo: 0xFF}},
		{s: "gt 0x10", want: Cond{Op: OpGreater, Lo: 0x10}},
		{s: "lt 9", want: Cond{Op: OpLess, Lo: 9}},
		{s: "between 20 10", want: Cond{Op: OpBetween, Lo: 10, Hi: 20}},
		{s: "decreased", want: Cond{Op: OpDecreased}},
		{s: "changed", want: Cond{Op: OpChanged}},
		{s: "", wantErr: true},
		{s: "eq", wantErr: true},
		{s: "eq 256", wantErr: true},
		{s: "increased 1", wantErr: true},
		{s: "approx 3", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseCond(tt.s)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseCond(%q) err = %v, wantErr %t", tt.s, err, tt.wantErr)
			continue
		}
		if err == nil && got != tt.want {
			t.Errorf("ParseCond(%q) = %+v, want %+v", tt.s, got, tt.want)
		}
	}
}

func TestCondString(t *testing.T) {
	for _, s := range []string{"eq 3", "between 1 5", "unchanged"} {
		c, err := ParseCond(s)
		if err != nil {
			t.Fatal(err)
		}
		if c.String() != s {
			t.Errorf("String() = %q, want %q", c.String(), s)
		}
	}
}

func TestSearch(t *testing.T) {
	// Looking for a counter going 5 -> 4 -> 4 -> 3.
	mem := []byte{5, 5, 1, 5, 9, 0, 5, 7}
	s := NewSearch(mem)

	filter := func(c Cond) {
		t.Helper()
		if _, err := s.Filter(mem, c); err != nil {
			t.Fatal(err)
		}
	}
	offsets := func() []int {
		var offs []int
		for _, r := range s.Results() {
			offs = append(offs, r.Offset)
		}
		return offs
	}

	filter(Cond{Op: OpEqual, Lo: 5})
	if diff := cmp.Diff([]int{0, 1, 3, 6}, offsets()); diff != "" {
		t.Fatalf("pass 1 (-want +got):\n%s", diff)
	}

	mem[0], mem[1], mem[3], mem[6] = 4, 5, 4, 6
	mem[2] = 0 // not a candidate anymore, ignored
	filter(Cond{Op: OpDecreased})
	if diff := cmp.Diff([]int{0, 3}, offsets()); diff != "" {
		t.Fatalf("pass 2 (-want +got):\n%s", diff)
	}

	mem[3] = 2
	filter(Cond{Op: OpUnchanged})
	want := []SearchResult{{Offset: 0, Value: 4, Prev: 4}}
	if diff := cmp.Diff(want, s.Results()); diff != "" {
		t.Fatalf("pass 3 (-want +got):\n%s", diff)
	}

	mem[0] = 3
	n, err := s.Filter(mem, Cond{Op: OpBetween, Lo: 1, Hi: 3})
	if err != nil {
		t.Fatal(err)
	}
	want = []SearchResult{{Offset: 0, Value: 3, Prev: 4}}
	if n != 1 || !cmp.Equal(want, s.Results()) {
		t.Errorf("pass 4: %d results %+v, want %+v", n, s.Results(), want)
	}

	if _, err := s.Filter(mem[:4], Cond{Op: OpChanged}); err == nil {
		t.Errorf("Filter accepted a memory of a different size")
	}
}

func TestSearchFirstPassChange(t *testing.T) {
	mem := []byte{1, 2, 3}
	s := NewSearch(mem)
	mem[1] = 7
	if n, _ := s.Filter(mem, Cond{Op: OpChanged}); n != 1 {
		t.Fatalf("got %d results, want 1", n)
	}
	want := []SearchResult{{Offset: 1, Value: 7, Prev: 2}}
	if diff := cmp.Diff(want, s.Results()); diff != "" {
		t.Errorf("results mismatch (-want +got):\n%s", diff)
	}
}
