package debugger

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-faster/errors"
)

// Cond is a memory search condition. Value conditions compare the current
// value with the condition operands, change conditions compare it with the
// value seen by the previous search pass.
type Cond struct {
	Op     Op
	Lo, Hi uint8
}

type Op uint8

const (
	OpEqual Op = iota
	OpNotEqual
	OpGreater
	OpLess
	OpBetween // Lo <= value <= Hi
	OpIncreased
	OpDecreased
	OpUnchanged
	OpChanged

	numOps
)

var opNames = [numOps]string{
	"eq", "ne", "gt", "lt", "between",
	"increased", "decreased", "unchanged", "changed",
}

func (op Op) String() string {
	if op < numOps {
		return opNames[op]
	}
	return "Op(" + strconv.Itoa(int(op)) + ")"
}

func (c Cond) String() string {
	switch {
	case c.Op == OpBetween:
		return fmt.Sprintf("%s %d %d", c.Op, c.Lo, c.Hi)
	case c.Op < OpBetween:
		return fmt.Sprintf("%s %d", c.Op, c.Lo)
	}
	return c.Op.String()
}

// ParseCond parses a condition in the Cond.String format, for example
// "eq 3", "between 10 20" or "decreased". Operands are decimal, or
// hexadecimal with a '$' or 0x prefix.
func ParseCond(s string) (Cond, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return Cond{}, errors.New("empty search condition")
	}

	var c Cond
	found := false
	for op := range numOps {
		if strings.EqualFold(fields[0], opNames[op]) {
			c.Op, found = op, true
			break
		}
	}
	if !found {
		return Cond{}, errors.Errorf("unknown search condition %q", fields[0])
	}

	want := 0
	switch {
	case c.Op == OpBetween:
		want = 2
	case c.Op < OpBetween:
		want = 1
	}
	if len(fields)-1 != want {
		return Cond{}, errors.Errorf("%s: want %d operands, got %d", c.Op, want, len(fields)-1)
	}

	ops := []*uint8{&c.Lo, &c.Hi}
	for i, f := range fields[1:] {
		v, err := parseUint8(f)
		if err != nil {
			return Cond{}, errors.Wrapf(err, "%s operand", c.Op)
		}
		*ops[i] = v
	}
	if c.Op == OpBetween && c.Lo > c.Hi {
		c.Lo, c.Hi = c.Hi, c.Lo
	}
	return c, nil
}

func parseUint8(s string) (uint8, error) {
	base := 10
	switch {
	case strings.HasPrefix(s, "$"):
		s, base = s[1:], 16
	case strings.HasPrefix(s, "0x"), strings.HasPrefix(s, "0X"):
		s, base = s[2:], 16
	}
	v, err := strconv.ParseUint(s, base, 8)
	return uint8(v), err
}

func (c Cond) match(cur, prev uint8) bool {
	switch c.Op {
	case OpEqual:
		return cur == c.Lo
	case OpNotEqual:
		return cur != c.Lo
	case OpGreater:
		return cur > c.Lo
	case OpLess:
		return cur < c.Lo
	case OpBetween:
		return cur >= c.Lo && cur <= c.Hi
	case OpIncreased:
		return cur > prev
	case OpDecreased:
		return cur < prev
	case OpUnchanged:
		return cur == prev
	case OpChanged:
		return cur != prev
	}
	return false
}

// SearchResult is a memory location still matching the search.
type SearchResult struct {
	Offset int
	Value  uint8
	Prev   uint8
}

// A Search narrows down the locations of a memory region holding a value of
// interest (a life counter, a timer...) over successive passes. The first
// pass considers every location of the region, the following ones only
// the locations that matched so far.
type Search struct {
	snapshot []byte
	results  []SearchResult
	started  bool
}

// NewSearch starts a search on a copy of mem.
func NewSearch(mem []byte) *Search {
	return &Search{snapshot: append([]byte(nil), mem...)}
}

// Filter runs a search pass over mem, which must have the length of the
// memory the search was started with. It returns the number of matching
// locations.
func (s *Search) Filter(mem []byte, c Cond) (int, error) {
	if len(mem) != len(s.snapshot) {
		return 0, errors.Errorf("search: memory size changed from %d to %d", len(s.snapshot), len(mem))
	}

	if !s.started {
		s.started = true
		for off, cur := range mem {
			prev := s.snapshot[off]
			if c.match(cur, prev) {
				s.results = append(s.results, SearchResult{Offset: off, Value: cur, Prev: prev})
			}
		}
	} else {
		kept := s.results[:0]
		for _, r := range s.results {
			cur, prev := mem[r.Offset], s.snapshot[r.Offset]
			if c.match(cur, prev) {
				kept = append(kept, SearchResult{Offset: r.Offset, Value: cur, Prev: prev})
			}
		}
		s.results = kept
	}

	copy(s.snapshot, mem)
	modDbg.DebugZ("search pass").Stringer("cond", c).Int("matches", len(s.results)).End()
	return len(s.results), nil
}

// Results returns the locations matching all passes so far.
func (s *Search) Results() []SearchResult {
	return s.results
}
