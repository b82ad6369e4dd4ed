package game

import (
	"encoding/json"
	"fmt"
	"image/color"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
)

const highScoreFile = "highscore.json"

type uiMessage struct {
	Text  string
	Timer float64
}

// UI owns the HUD, the timed message queue, and the persisted high score.
type UI struct {
	messages  []uiMessage
	HighScore int
	newRecord bool
}

// NewUI creates the UI and loads the saved high score
func NewUI() *UI {
	return &UI{HighScore: loadHighScore()}
}

// loadHighScore reads the saved high score, or 0 when missing or unreadable
func loadHighScore() int {
	data, err := os.ReadFile(highScoreFile)
	if err != nil {
		return 0
	}
	var saved struct {
		HighScore int `json:"high_score"`
	}
	if err := json.Unmarshal(data, &saved); err != nil {
		return 0
	}
	return saved.HighScore
}

// SaveHighScore persists the score when it beats the current record.
// Write failures are ignored; the score only lives for bragging rights.
func (u *UI) SaveHighScore(score int) {
	if score <= u.HighScore {
		u.newRecord = false
		return
	}
	u.HighScore = score
	u.newRecord = true
	data, err := json.Marshal(struct {
		HighScore int `json:"high_score"`
	}{score})
	if err != nil {
		return
	}
	_ = os.WriteFile(highScoreFile, data, 0o644)
}

// ShowMessage queues a temporary on-screen message
func (u *UI) ShowMessage(text string, duration float64) {
	u.messages = append(u.messages, uiMessage{Text: text, Timer: duration})
}

// UpdateMessages ticks message timers and drops expired ones
func (u *UI) UpdateMessages(dt float64) {
	valid := u.messages[:0]
	for _, msg := range u.messages {
		msg.Timer -= dt
		if msg.Timer > 0 {
			valid = append(valid, msg)
		}
	}
	u.messages = valid
}

// Messages returns the queued messages, newest last
func (u *UI) Messages() []uiMessage { return u.messages }

// DrawMessages renders the message stack in the upper middle of the screen
func (u *UI) DrawMessages(screen *ebiten.Image, screenWidth int) {
	y := 150
	for _, msg := range u.messages {
		drawTextCentered(screen, msg.Text, screenWidth/2, y, color.NRGBA{255, 255, 100, 255})
		y += 20
	}
}

// DrawHUD renders the combat readouts: health, fuel, score, lives, weapon
// level, missile count, laser charge, and shield energy
func (u *UI) DrawHUD(screen *ebiten.Image, aircraft *Aircraft, weapons *WeaponSystem) {
	drawRect(screen, 0, 0, 1000, 90, color.NRGBA{0, 0, 0, 150})

	u.drawBar(screen, 20, 15, 220, 25, aircraft.Health, aircraft.MaxHealth, "HEALTH", color.NRGBA{0, 255, 100, 255})
	u.drawBar(screen, 20, 50, 220, 20, aircraft.Fuel, aircraft.MaxFuel, "FUEL", color.NRGBA{255, 255, 100, 255})

	drawTextCentered(screen, fmt.Sprintf("SCORE: %d", aircraft.Score), 500, 32, color.NRGBA{255, 215, 0, 255})
	drawTextCentered(screen, fmt.Sprintf("LIVES: %d", aircraft.Lives), 500, 64, color.NRGBA{255, 80, 80, 255})

	drawText(screen, fmt.Sprintf("WEAPON Lv.%d", weapons.PrimaryLevel), 700, 28, color.White)
	drawText(screen, fmt.Sprintf("MISSILES: %d", weapons.MissileCount), 700, 58, color.NRGBA{255, 180, 100, 255})

	u.drawBar(screen, 880, 15, 100, 12, weapons.LaserCharge, maxLaserCharge, "LASER", color.NRGBA{100, 200, 255, 255})
	u.drawBar(screen, 880, 45, 100, 12, weapons.ShieldEnergy, maxShieldEnergy, "SHIELD", color.NRGBA{150, 100, 255, 255})
}

// drawBar renders a labeled resource bar
func (u *UI) drawBar(screen *ebiten.Image, x, y, width, height, value, maxValue float64, label string, c color.Color) {
	drawRect(screen, x, y, width, height, color.NRGBA{50, 50, 50, 255})
	drawRect(screen, x, y, width*(value/maxValue), height, c)
	drawRectOutline(screen, x, y, width, height, color.White)
	drawText(screen, label, int(x), int(y)-2, color.White)
}

// DrawTakeoffHUD renders the runway readouts during the takeoff roll
func (u *UI) DrawTakeoffHUD(screen *ebiten.Image, aircraft *Aircraft) {
	drawText(screen, fmt.Sprintf("SPEED: %.1f", aircraft.Vel.x), 20, 30, color.White)
	drawText(screen, fmt.Sprintf("THRUST: %.0f%%", aircraft.Thrust), 20, 50, color.White)
	drawText(screen, fmt.Sprintf("PITCH: %.0f", aircraft.Angle), 20, 70, color.White)
	drawTextCentered(screen, "HOLD UP TO THROTTLE AND ROTATE", 500, 560, color.NRGBA{200, 200, 200, 255})
}

// DrawPauseOverlay dims the screen with the paused banner
func (u *UI) DrawPauseOverlay(screen *ebiten.Image, screenWidth, screenHeight int) {
	drawRect(screen, 0, 0, float64(screenWidth), float64(screenHeight), color.NRGBA{0, 0, 0, 180})
	drawTextCentered(screen, "PAUSED", screenWidth/2, screenHeight/2-10, color.White)
	drawTextCentered(screen, "ESC to resume", screenWidth/2, screenHeight/2+20, color.NRGBA{200, 200, 200, 255})
}

// DrawGameOver renders the game over screen with the final score
func (u *UI) DrawGameOver(screen *ebiten.Image, score, screenWidth, screenHeight int) {
	drawRect(screen, 0, 0, float64(screenWidth), float64(screenHeight), color.NRGBA{0, 0, 0, 200})
	drawTextCentered(screen, "GAME OVER", screenWidth/2, screenHeight/2-40, color.NRGBA{255, 80, 80, 255})
	drawTextCentered(screen, fmt.Sprintf("Final Score: %d", score), screenWidth/2, screenHeight/2-10, color.White)
	if u.newRecord {
		drawTextCentered(screen, "NEW HIGH SCORE!", screenWidth/2, screenHeight/2+20, color.NRGBA{255, 215, 0, 255})
	} else {
		drawTextCentered(screen, fmt.Sprintf("High Score: %d", u.HighScore), screenWidth/2, screenHeight/2+20, color.White)
	}
	drawTextCentered(screen, "R to retry", screenWidth/2, screenHeight/2+60, color.NRGBA{200, 200, 200, 255})
}

// DrawVictory renders the victory screen
func (u *UI) DrawVictory(screen *ebiten.Image, score, screenWidth, screenHeight int) {
	drawRect(screen, 0, 0, float64(screenWidth), float64(screenHeight), color.NRGBA{0, 0, 0, 200})
	drawTextCentered(screen, "VICTORY!", screenWidth/2, screenHeight/2-40, color.NRGBA{255, 215, 0, 255})
	drawTextCentered(screen, fmt.Sprintf("Final Score: %d", score), screenWidth/2, screenHeight/2-10, color.White)
	if u.newRecord {
		drawTextCentered(screen, "NEW HIGH SCORE!", screenWidth/2, screenHeight/2+20, color.NRGBA{255, 215, 0, 255})
	} else {
		drawTextCentered(screen, fmt.Sprintf("High Score: %d", u.HighScore), screenWidth/2, screenHeight/2+20, color.White)
	}
	drawTextCentered(screen, "R to play again", screenWidth/2, screenHeight/2+60, color.NRGBA{200, 200, 200, 255})
}

// DrawRunway renders the ground and landing strip during the takeoff phase
func DrawRunway(screen *ebiten.Image) {
	drawRect(screen, 0, 500, 1000, 100, color.NRGBA{100, 80, 60, 255})
	drawRect(screen, 50, 500, 400, 20, color.NRGBA{50, 50, 50, 255})
	for i := 0; i < 8; i++ {
		x := 70 + float64(i)*45
		drawRect(screen, x, 505, 20, 10, color.White)
	}
}
