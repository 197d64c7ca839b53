package input

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Upper bound for the repeat count of a single script token.
const maxRepeat = 10000

var ErrInvalidScript = errors.New("input: invalid script")

var keyTokens = map[string]Key{
	"w":   KeyW,
	"s":   KeyS,
	"a":   KeyA,
	"d":   KeyD,
	"[":   KeyDown,
	"]":   KeyUp,
	"q":   KeyQ,
	"esc": KeyEscape,
}

// ParseScript converts a comma separated list of input tokens into events.
// Supported tokens:
//
//	w s a d [ ] q esc   key presses
//	look:dx:dy          relative cursor motion
//	press / release     look button state
//	move:x:y            absolute cursor position
//
// Any token may be suffixed with *N to repeat it N times. Empty tokens are
// ignored.
func ParseScript(script string) ([]Event, error) {
	var events []Event
	for _, token := range strings.Split(script, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}

		repeat := 1
		if idx := strings.LastIndexByte(token, '*'); idx != -1 {
			n, err := strconv.Atoi(token[idx+1:])
			if err != nil || n < 1 || n > maxRepeat {
				return nil, fmt.Errorf("%w: bad repeat count in %q", ErrInvalidScript, token)
			}
			repeat = n
			token = token[:idx]
		}

		ev, err := parseToken(token)
		if err != nil {
			return nil, err
		}
		for i := 0; i < repeat; i++ {
			events = append(events, ev)
		}
	}

	return events, nil
}

func parseToken(token string) (Event, error) {
	if key, ok := keyTokens[token]; ok {
		return Event{Type: KeyPressed, Key: key}, nil
	}

	fields := strings.Split(token, ":")
	switch fields[0] {
	case "press":
		if len(fields) == 1 {
			return Event{Type: LookPressed}, nil
		}
	case "release":
		if len(fields) == 1 {
			return Event{Type: LookReleased}, nil
		}
	case "look", "move":
		if len(fields) != 3 {
			break
		}
		x, errX := strconv.ParseFloat(fields[1], 32)
		y, errY := strconv.ParseFloat(fields[2], 32)
		if errX != nil || errY != nil {
			break
		}

		evType := Look
		if fields[0] == "move" {
			evType = CursorMoved
		}
		return Event{Type: evType, X: float32(x), Y: float32(y)}, nil
	}

	return Event{}, fmt.Errorf("%w: unknown token %q", ErrInvalidScript, token)
}
