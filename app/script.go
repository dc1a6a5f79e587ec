package app

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"pongos/hal"
)

// ParseKeyScript parses a comma separated list of tick:key pairs such as
// "3:w,10:s,20:space" into key presses keyed by tick number.
//
// A key is a single character, one of the names space, up, down, left,
// right, enter, esc, tab and backspace, or ctrl-w / ctrl-s for the raw W and
// S codes.
func ParseKeyScript(s string) (map[uint64][]hal.KeyEvent, error) {
	script := make(map[uint64][]hal.KeyEvent)
	s = strings.TrimSpace(s)
	if s == "" {
		return script, nil
	}
	for _, item := range strings.Split(s, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		tickStr, key, ok := strings.Cut(item, ":")
		if !ok {
			return nil, fmt.Errorf("key script: %q: want tick:key", item)
		}
		tick, err := strconv.ParseUint(strings.TrimSpace(tickStr), 10, 64)
		if err != nil || tick == 0 {
			return nil, fmt.Errorf("key script: %q: bad tick", item)
		}
		ev, err := parseKey(key)
		if err != nil {
			return nil, fmt.Errorf("key script: %q: %w", item, err)
		}
		script[tick] = append(script[tick], ev)
	}
	return script, nil
}

var namedKeys = map[string]hal.KeyEvent{
	"space":     {Press: true, Rune: ' '},
	"up":        {Press: true, Code: hal.KeyUp},
	"down":      {Press: true, Code: hal.KeyDown},
	"left":      {Press: true, Code: hal.KeyLeft},
	"right":     {Press: true, Code: hal.KeyRight},
	"enter":     {Press: true, Code: hal.KeyEnter},
	"esc":       {Press: true, Code: hal.KeyEscape},
	"tab":       {Press: true, Code: hal.KeyTab},
	"backspace": {Press: true, Code: hal.KeyBackspace},
	"ctrl-w":    {Press: true, Code: hal.KeyW},
	"ctrl-s":    {Press: true, Code: hal.KeyS},
}

func parseKey(key string) (hal.KeyEvent, error) {
	if key == " " {
		return namedKeys["space"], nil
	}
	key = strings.TrimSpace(key)
	if ev, ok := namedKeys[strings.ToLower(key)]; ok {
		return ev, nil
	}
	if r, n := utf8.DecodeRuneInString(key); n == len(key) && r != utf8.RuneError {
		return hal.KeyEvent{Press: true, Rune: r}, nil
	}
	return hal.KeyEvent{}, fmt.Errorf("unknown key %q", key)
}
