package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputState is one frame of control input. The simulation consumes this
// struct directly so tests can drive the game without a keyboard.
type InputState struct {
	Up    bool
	Down  bool
	Left  bool
	Right bool

	FirePrimary bool // held: auto-fire cannon
	FireMissile bool
	ChargeLaser bool // held: charge, released: fire
	Shield      bool

	PausePressed   bool // edge-triggered
	RestartPressed bool // edge-triggered, game over / victory screens
}

// InputProvider produces one InputState per tick.
type InputProvider interface {
	Read() InputState
}

// KeyboardInput reads the player's keyboard through ebiten.
type KeyboardInput struct{}

// NewKeyboardInput creates a keyboard input provider
func NewKeyboardInput() *KeyboardInput {
	return &KeyboardInput{}
}

// Read polls the current keyboard state
func (k *KeyboardInput) Read() InputState {
	return InputState{
		Up:    ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		Down:  ebiten.IsKeyPressed(ebiten.KeyArrowDown),
		Left:  ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right: ebiten.IsKeyPressed(ebiten.KeyArrowRight),

		FirePrimary: ebiten.IsKeyPressed(ebiten.KeySpace),
		FireMissile: ebiten.IsKeyPressed(ebiten.KeyE),
		ChargeLaser: ebiten.IsKeyPressed(ebiten.KeyR),
		Shield:      ebiten.IsKeyPressed(ebiten.KeyF),

		PausePressed: inpututil.IsKeyJustPressed(ebiten.KeyEscape) ||
			inpututil.IsKeyJustPressed(ebiten.KeyP),
		RestartPressed: inpututil.IsKeyJustPressed(ebiten.KeyR) ||
			inpututil.IsKeyJustPressed(ebiten.KeyEnter),
	}
}
