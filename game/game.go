package game

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// GameState is the top-level state machine phase.
type GameState int

const (
	StateTakeoff GameState = iota
	StatePlaying
	StatePaused
	StateGameOver
	StateVictory
)

// Game is the root object: it owns every subsystem and implements
// ebiten.Game.
type Game struct {
	config Config
	state  GameState

	aircraft *Aircraft
	weapons  *WeaponSystem
	levels   *LevelManager
	enemies  *EnemyManager
	powerups *PowerUpManager
	parts    *ParticleSystem
	ui       *UI

	input InputProvider
	audio Audio
	rng   *rand.Rand

	currentLevel    int
	transitionTimer float64 // post-takeoff leveling period
	musicTrack      string

	lastUpdateTime time.Time
	tick           int

	// pausedFrom remembers which state to resume into
	pausedFrom GameState
}

// NewGame creates a game with keyboard input and no audio output
func NewGame(config Config) *Game {
	return NewGameWith(config, NewKeyboardInput(), NopAudio{}, rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewGameWith creates a game with explicit collaborators
func NewGameWith(config Config, input InputProvider, audio Audio, rng *rand.Rand) *Game {
	g := &Game{
		config: config,
		input:  input,
		audio:  audio,
		rng:    rng,
		ui:     NewUI(),
	}
	g.StartLevel(1)
	return g
}

// StartLevel rebuilds the play field for a level. Score and lives carry
// over from the previous level within a run.
func (g *Game) StartLevel(level int) {
	score, lives := 0, startLives
	if g.aircraft != nil && level > 1 {
		score = g.aircraft.Score
		lives = g.aircraft.Lives
	}

	g.currentLevel = level
	g.aircraft = NewAircraft()
	g.aircraft.Score = score
	g.aircraft.Lives = lives
	g.weapons = NewWeaponSystem(g.aircraft)
	g.aircraft.Weapons = g.weapons
	g.enemies = NewEnemyManager(g.rng)
	g.powerups = NewPowerUpManager(g.rng)
	g.parts = NewParticleSystem(g.rng)
	g.levels = NewLevelManager(level)

	g.state = StateTakeoff
	g.transitionTimer = 0

	g.playMusic(MusicLevel)
	g.ui.ShowMessage(fmt.Sprintf("LEVEL %d - TAKEOFF!", level), 3.0)
}

// playMusic switches the music track if it changed
func (g *Game) playMusic(track string) {
	if g.musicTrack == track {
		return
	}
	g.musicTrack = track
	g.audio.PlayMusic(track)
}

// Update advances the game one frame
func (g *Game) Update() error {
	// Wall-clock delta, clamped so a stalled frame cannot teleport physics
	now := time.Now()
	dt := 1.0 / 60.0
	if !g.lastUpdateTime.IsZero() {
		dt = now.Sub(g.lastUpdateTime).Seconds()
		if dt > 0.1 {
			dt = 0.1
		}
	}
	g.lastUpdateTime = now

	g.step(g.input.Read(), dt)
	return nil
}

// step advances the simulation by dt with the given input
func (g *Game) step(input InputState, dt float64) {
	g.tick++
	g.ui.UpdateMessages(dt)

	switch g.state {
	case StateTakeoff:
		g.updateTakeoff(input, dt)
	case StatePlaying:
		g.updatePlaying(input, dt)
	case StatePaused:
		if input.PausePressed {
			g.state = g.pausedFrom
		}
	case StateGameOver, StateVictory:
		if input.RestartPressed {
			g.aircraft = nil
			g.StartLevel(1)
		}
	}
}

// updateTakeoff runs the runway roll until the aircraft rotates off
func (g *Game) updateTakeoff(input InputState, dt float64) {
	if input.PausePressed {
		g.pausedFrom = StateTakeoff
		g.state = StatePaused
		return
	}

	g.handleTakeoffControls(input, dt)
	g.aircraft.Update(dt)

	g.parts.CreateEngineTrail(
		vec2{g.aircraft.Pos.x - 30, g.aircraft.Pos.y},
		g.aircraft.Angle, g.aircraft.Thrust)
	g.parts.Update(dt)

	if g.aircraft.HasTakenOff {
		g.state = StatePlaying
		g.aircraft.Invulnerable = false
		g.aircraft.invulnerableTimer = 0
		g.transitionTimer = 1.5
		g.ui.ShowMessage("COMBAT ZONE - ENGAGE!", 2.0)
		g.audio.PlaySound(SoundLevelComplete)
	}
}

// handleTakeoffControls ramps thrust and pitch on the runway
func (g *Game) handleTakeoffControls(input InputState, dt float64) {
	a := g.aircraft

	if input.Up {
		a.Thrust = minFloat(100, a.Thrust+5)

		// Nose comes up gradually as the plane rolls down the strip
		const startX, endX = 180.0, 300.0
		progress := 0.0
		if a.Pos.x > startX {
			progress = minFloat(1, (a.Pos.x-startX)/(endX-startX))
		}
		targetAngle := 18.0 * progress
		a.Angle += (targetAngle - a.Angle) * 2.5 * dt
	} else {
		a.Thrust = maxFloat(0, a.Thrust-1)
	}

	if input.Down {
		a.BrakesActive = true
		a.Thrust = maxFloat(0, a.Thrust-5)
		a.Angle = maxFloat(0, a.Angle-20.0*dt)
	} else {
		a.BrakesActive = false
	}
}

// updatePlaying runs one tick of the combat phase
func (g *Game) updatePlaying(input InputState, dt float64) {
	if input.PausePressed {
		g.pausedFrom = StatePlaying
		g.state = StatePaused
		return
	}

	g.handleCombatControls(input, dt)
	g.handleWeaponControls(input)

	g.aircraft.Update(dt)
	g.weapons.Update(dt)
	g.levels.Update(dt, g.aircraft, g.enemies)
	g.enemies.Update(dt, g.aircraft.Pos, g.weapons.Missiles())
	g.powerups.Update(dt)

	g.parts.CreateEngineTrail(
		vec2{g.aircraft.Pos.x - 30, g.aircraft.Pos.y},
		g.aircraft.Angle, g.aircraft.Thrust)
	if g.aircraft.Health < 30 {
		g.parts.CreateDamageSmoke(g.aircraft.Pos)
	}
	g.parts.Update(dt)

	messages := CheckCollisions(g.aircraft, g.enemies, g.powerups, g.parts, g.audio)
	for _, msg := range messages {
		g.ui.ShowMessage(msg, 2.0)
		g.audio.PlaySound(SoundPowerup)
	}

	if g.aircraft.Health <= 0 {
		g.handleDeath()
		return
	}

	if g.levels.LevelComplete {
		g.handleLevelComplete()
		return
	}

	// Boss fights get their own music
	if g.enemies.Boss() != nil {
		g.playMusic(MusicBoss)
	} else {
		g.playMusic(MusicLevel)
	}
}

// handleCombatControls moves the aircraft directly during combat. The first
// moments after takeoff smoothly level the plane into its combat position.
func (g *Game) handleCombatControls(input InputState, dt float64) {
	a := g.aircraft

	if g.transitionTimer > 0 {
		g.transitionTimer -= dt
		a.Angle += (0 - a.Angle) * 2.0 * dt
		a.Pos.x += (150 - a.Pos.x) * 1.5 * dt
		a.Pos.y += (300 - a.Pos.y) * 1.5 * dt
		return
	}

	const moveSpeed = 5.0

	if input.Up {
		a.Pos.y -= moveSpeed
	}
	if input.Down {
		a.Pos.y += moveSpeed
	}
	if input.Left {
		a.Pos.x -= moveSpeed
	}
	if input.Right {
		a.Pos.x += moveSpeed
	}

	a.Pos.x = clamp(a.Pos.x, 50, 250)
	a.Pos.y = clamp(a.Pos.y, 20, 580)

	// Pitch follows vertical movement for visual feedback
	switch {
	case input.Up:
		a.Angle = minFloat(15, a.Angle+0.5)
	case input.Down:
		a.Angle = maxFloat(-15, a.Angle-0.5)
	case a.Angle > 0:
		a.Angle = maxFloat(0, a.Angle-0.3)
	case a.Angle < 0:
		a.Angle = minFloat(0, a.Angle+0.3)
	}
}

// handleWeaponControls fires weapons from held keys
func (g *Game) handleWeaponControls(input InputState) {
	if input.FirePrimary {
		if g.weapons.FirePrimary() {
			g.audio.PlaySound(SoundShoot)
		}
	}

	if input.FireMissile {
		if g.weapons.FireMissile() {
			g.audio.PlaySound(SoundMissile)
		}
	}

	// Laser charges while held, fires on release
	if input.ChargeLaser {
		g.weapons.IsChargingLaser = true
	} else if g.weapons.IsChargingLaser {
		if g.weapons.FireLaser() {
			g.audio.PlaySound(SoundLaser)
		}
		g.weapons.IsChargingLaser = false
	}

	if input.Shield {
		if g.weapons.ActivateShield() {
			g.audio.PlaySound(SoundShield)
		}
	}
}

// handleDeath explodes the aircraft and spends a life or ends the run
func (g *Game) handleDeath() {
	g.parts.CreateExplosion(g.aircraft.Pos, 50, 100, nil)
	g.audio.PlaySound(SoundPlayerExplosion)

	g.aircraft.LoseLife()

	if g.aircraft.Lives <= 0 {
		g.state = StateGameOver
		g.ui.SaveHighScore(g.aircraft.Score)
		g.audio.StopMusic()
		g.musicTrack = ""
		g.audio.PlaySound(SoundGameOver)
		return
	}

	g.state = StateTakeoff
	g.ui.ShowMessage(fmt.Sprintf("RESPAWN - Lives remaining: %d", g.aircraft.Lives), 2.0)
}

// handleLevelComplete chains to the next level or ends the campaign
func (g *Game) handleLevelComplete() {
	if g.currentLevel < g.levels.MaxLevels {
		g.ui.ShowMessage(fmt.Sprintf("LEVEL %d COMPLETE!", g.currentLevel), 3.0)
		g.audio.PlaySound(SoundLevelComplete)
		g.StartLevel(g.currentLevel + 1)
		return
	}

	g.state = StateVictory
	g.ui.SaveHighScore(g.aircraft.Score)
	g.audio.StopMusic()
	g.musicTrack = ""
	g.audio.PlaySound(SoundLevelComplete)
}

// State returns the current game state
func (g *Game) State() GameState { return g.state }

// Aircraft returns the player aircraft
func (g *Game) Aircraft() *Aircraft { return g.aircraft }

// Weapons returns the player weapon system
func (g *Game) Weapons() *WeaponSystem { return g.weapons }

// Enemies returns the enemy manager
func (g *Game) Enemies() *EnemyManager { return g.enemies }

// Levels returns the level manager
func (g *Game) Levels() *LevelManager { return g.levels }

// Draw renders one frame
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(skyColor)

	switch g.state {
	case StateTakeoff:
		DrawRunway(screen)
		g.parts.Draw(screen)
		g.aircraft.Draw(screen, g.tick)
		g.ui.DrawTakeoffHUD(screen, g.aircraft)
		g.ui.DrawMessages(screen, g.config.ScreenWidth)

	case StatePlaying, StatePaused:
		g.drawWorld(screen)
		if g.state == StatePaused {
			g.ui.DrawPauseOverlay(screen, g.config.ScreenWidth, g.config.ScreenHeight)
		}

	case StateGameOver:
		g.drawWorld(screen)
		g.ui.DrawGameOver(screen, g.aircraft.Score, g.config.ScreenWidth, g.config.ScreenHeight)

	case StateVictory:
		g.drawWorld(screen)
		g.ui.DrawVictory(screen, g.aircraft.Score, g.config.ScreenWidth, g.config.ScreenHeight)
	}
}

// drawWorld renders the combat scene and HUD
func (g *Game) drawWorld(screen *ebiten.Image) {
	g.powerups.Draw(screen)
	g.enemies.Draw(screen)
	g.weapons.Draw(screen)
	g.aircraft.Draw(screen, g.tick)
	g.parts.Draw(screen)

	g.ui.DrawHUD(screen, g.aircraft, g.weapons)
	if boss := g.enemies.Boss(); boss != nil {
		boss.DrawHealthBar(screen, g.config.ScreenWidth)
	}
	g.ui.DrawMessages(screen, g.config.ScreenWidth)
}

// Layout reports the logical screen size
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.config.ScreenWidth, g.config.ScreenHeight
}
