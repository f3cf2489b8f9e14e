package input

import (
	"github.com/cbodonnell/stackfall/pkg/game/types"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	// RepeatDelay is how many ticks a key is held before it starts repeating.
	RepeatDelay = 12
	// RepeatInterval is how many ticks pass between repeats of a held key.
	RepeatInterval = 4
)

// IsPositiveJustPressed returns a boolean value indicating whether the generic positive input is just pressed.
// This is used to handle both keyboard and touch inputs.
func IsPositiveJustPressed() bool {
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		return true
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return true
	}
	touchIDs := inpututil.AppendJustPressedTouchIDs(nil)
	if len(touchIDs) > 0 {
		return true
	}
	gamepadIDs := ebiten.AppendGamepadIDs(nil)
	for _, g := range gamepadIDs {
		if ebiten.IsStandardGamepadLayoutAvailable(g) {
			if inpututil.IsStandardGamepadButtonJustPressed(g, ebiten.StandardGamepadButtonRightBottom) {
				return true
			}
			if inpututil.IsStandardGamepadButtonJustPressed(g, ebiten.StandardGamepadButtonRightRight) {
				return true
			}
		} else {
			// The button 0/1 might not be A/B buttons.
			if inpututil.IsGamepadButtonJustPressed(g, ebiten.GamepadButton0) {
				return true
			}
			if inpututil.IsGamepadButtonJustPressed(g, ebiten.GamepadButton1) {
				return true
			}
		}
	}
	return false
}

// IsNegativeJustPressed returns a boolean value indicating whether the generic negative input is just pressed.
// This is used to handle both keyboard and touch inputs.
func IsNegativeJustPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}

// Repeats reports whether a key held for the given number of ticks fires on
// this tick: on the first tick, then every RepeatInterval ticks once
// RepeatDelay has passed.
func Repeats(duration int) bool {
	if duration == 1 {
		return true
	}
	if duration <= RepeatDelay {
		return false
	}
	return (duration-RepeatDelay)%RepeatInterval == 0
}

// binding ties a set of keys to a command. Repeating bindings fire while held.
type binding struct {
	keys      []ebiten.Key
	command   types.Command
	repeating bool
}

var bindings = []binding{
	{keys: []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}, command: types.CommandMoveLeft, repeating: true},
	{keys: []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}, command: types.CommandMoveRight, repeating: true},
	{keys: []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW, ebiten.KeyX}, command: types.CommandRotate},
	{keys: []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS, ebiten.KeySpace}, command: types.CommandDrop, repeating: true},
}

// Commands returns the commands triggered on this tick, in binding order.
// Pause toggling depends on session state, so it is reported separately by
// IsPauseJustPressed.
func Commands() []types.Command {
	var commands []types.Command
	for _, b := range bindings {
		for _, key := range b.keys {
			d := inpututil.KeyPressDuration(key)
			if d == 0 {
				continue
			}
			if d == 1 || (b.repeating && Repeats(d)) {
				commands = append(commands, b.command)
				break
			}
		}
	}
	return commands
}

func IsPauseJustPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyP)
}

func IsNewGameJustPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyN)
}
