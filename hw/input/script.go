package input

import (
	"bufio"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/go-faster/errors"
)

// A Script is a sequence of input changes, keyed by frame number.
//
// The text format has one event per line:
//
//	<frame> <pad1 buttons> [<pad2 buttons>]
//
// Buttons are in the Buttons.String format. Blank lines and lines starting
// with '#' are ignored. The state set at a frame holds until the next event.
type Script struct {
	events []Event
}

type Event struct {
	Frame int64
	Pads  [2]Buttons
}

// ParseScript reads a script.
func ParseScript(r io.Reader) (*Script, error) {
	var s Script

	sc := bufio.NewScanner(r)
	lineno := 0
	for sc.Scan() {
		lineno++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 2 || len(fields) > 3 {
			return nil, errors.Errorf("line %d: want '<frame> <pad1> [<pad2>]', got %q", lineno, line)
		}
		frame, err := strconv.ParseInt(fields[0], 10, 64)
		if err != nil || frame < 0 {
			return nil, errors.Errorf("line %d: invalid frame number %q", lineno, fields[0])
		}

		ev := Event{Frame: frame}
		for i, f := range fields[1:] {
			if ev.Pads[i], err = ParseButtons(f); err != nil {
				return nil, errors.Wrapf(err, "line %d", lineno)
			}
		}
		s.events = append(s.events, ev)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	slices.SortStableFunc(s.events, func(a, b Event) int {
		switch {
		case a.Frame < b.Frame:
			return -1
		case a.Frame > b.Frame:
			return 1
		}
		return 0
	})
	return &s, nil
}

// Events returns the script events, sorted by frame.
func (s *Script) Events() []Event {
	return s.events
}

// At returns the pads state at frame.
func (s *Script) At(frame int64) [2]Buttons {
	var pads [2]Buttons
	for _, ev := range s.events {
		if ev.Frame > frame {
			break
		}
		pads = ev.Pads
	}
	return pads
}
