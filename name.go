package marionette

import (
	"strconv"
	"strings"
)

// Clip name modifier tokens. A raw clip name has the form
// base[_modifier[_value]]*, where everything from the first recognized token
// onward is playback behavior, not identity. "walk_loop_next_idle" is the
// base "walk", looping, chaining into "idle" when stopped.
const (
	modLoop   = "loop"
	modSpeed  = "speed"
	modSpeedX = "speedx"
	modSpeedY = "speedy"
	modNext   = "next"
)

// StatePrefix marks base names that belong to a named state group.
// "state_intro_coins" is a member of the state "state_intro".
const StatePrefix = "state_"

// ClipModifiers is the decoded behavior suffix of a raw clip name.
type ClipModifiers struct {
	// Loop makes the clip repeat until explicitly stopped. Looping clips
	// never complete naturally.
	Loop bool

	// SpeedX and SpeedY are per-axis playback speed multipliers, 1 when
	// unmodified. A "speed" token sets both; "speedx"/"speedy" override one
	// axis. The two forms are mutually overriding, never additive.
	SpeedX float64
	SpeedY float64

	// Next is the base name to fan out through PlayBase when this clip
	// completes naturally, "" if none.
	Next string
}

func isModifierToken(s string) bool {
	switch s {
	case modLoop, modSpeed, modSpeedX, modSpeedY, modNext:
		return true
	}
	return false
}

// DecodeClipName splits a raw clip name into its base name and decoded
// modifiers. The base is everything before the first recognized modifier
// token; unrecognized suffixes stay in the base, so decoding never fails and
// decoding a base a second time returns it unchanged.
func DecodeClipName(raw string) (string, ClipModifiers) {
	mods := ClipModifiers{SpeedX: 1, SpeedY: 1}
	parts := strings.Split(raw, "_")

	// The base always keeps at least the first token, so an empty base can
	// never be produced by a name that merely starts with a modifier word.
	split := len(parts)
	for i := 1; i < len(parts); i++ {
		if isModifierToken(parts[i]) {
			split = i
			break
		}
	}
	base := strings.Join(parts[:split], "_")

	for i := split; i < len(parts); i++ {
		switch parts[i] {
		case modLoop:
			mods.Loop = true
		case modSpeed:
			if v, ok := takeFloat(parts, i); ok {
				mods.SpeedX = v
				mods.SpeedY = v
				i++
			}
		case modSpeedX:
			if v, ok := takeFloat(parts, i); ok {
				mods.SpeedX = v
				i++
			}
		case modSpeedY:
			if v, ok := takeFloat(parts, i); ok {
				mods.SpeedY = v
				i++
			}
		case modNext:
			// The chain target runs to the next modifier token so targets
			// with underscores ("big_win") survive.
			end := len(parts)
			for j := i + 1; j < len(parts); j++ {
				if isModifierToken(parts[j]) {
					end = j
					break
				}
			}
			mods.Next = strings.Join(parts[i+1:end], "_")
			i = end - 1
		}
	}
	return base, mods
}

// takeFloat parses parts[i+1] as the value for the modifier at parts[i].
// A missing or malformed value leaves the modifier inert.
func takeFloat(parts []string, i int) (float64, bool) {
	if i+1 >= len(parts) {
		return 0, false
	}
	v, err := strconv.ParseFloat(parts[i+1], 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// ParseNext extracts the chained-next target from a raw clip name, "" if the
// name carries no next modifier.
func ParseNext(raw string) string {
	_, mods := DecodeClipName(raw)
	return mods.Next
}

// IsStateName reports whether name carries the reserved state prefix.
// PlayQueue uses this to dispatch entries to PlayState vs PlayBase.
func IsStateName(name string) bool {
	return strings.HasPrefix(name, StatePrefix)
}

// stateOf returns the state a base name belongs to ("state_intro" for
// "state_intro_coins"), or "" for base names outside any state.
func stateOf(base string) string {
	if !strings.HasPrefix(base, StatePrefix) {
		return ""
	}
	rest := base[len(StatePrefix):]
	if rest == "" {
		return ""
	}
	if i := strings.IndexByte(rest, '_'); i >= 0 {
		rest = rest[:i]
	}
	return StatePrefix + rest
}
