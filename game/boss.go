package game

import (
	"math"
	"math/rand"
)

// BossType identifies one of the three level bosses.
type BossType int

const (
	BossHiveQueen BossType = iota
	BossAegisDefender
	BossFinalDestroyer
)

// String returns the boss type name
func (t BossType) String() string {
	switch t {
	case BossHiveQueen:
		return "hive_queen"
	case BossAegisDefender:
		return "aegis_defender"
	case BossFinalDestroyer:
		return "final_destroyer"
	}
	return "unknown"
}

// DisplayName returns the name shown on screen
func (t BossType) DisplayName() string {
	switch t {
	case BossHiveQueen:
		return "HIVE QUEEN"
	case BossAegisDefender:
		return "AEGIS DEFENDER"
	case BossFinalDestroyer:
		return "TITAN FORTRESS"
	}
	return "BOSS"
}

// BossTypeConfig holds the stats for a boss type
type BossTypeConfig struct {
	Health     float64
	Size       float64
	ScoreValue int
}

// GetBossTypeConfig returns the stats for the given boss type
func GetBossTypeConfig(bossType BossType) BossTypeConfig {
	switch bossType {
	case BossHiveQueen:
		return BossTypeConfig{Health: 800, Size: 300, ScoreValue: 5000}
	case BossAegisDefender:
		return BossTypeConfig{Health: 1200, Size: 360, ScoreValue: 8000}
	default: // final destroyer
		return BossTypeConfig{Health: 1800, Size: 440, ScoreValue: 15000}
	}
}

// bossAttackSpec describes one phase's firing pattern. A zero field means
// that pattern component is absent. Spread angles center on 180 (leftward),
// ring angles cover the full circle, spirals advance with the move timer.
type bossAttackSpec struct {
	Interval float64

	SpreadCount int
	SpreadStep  float64
	SpreadSpeed float64

	RingCount int
	RingSpeed float64

	SpiralRate  float64
	SpiralSpeed float64

	AimedSpeed  float64
	AimedChance float64
}

// bossAttackTable maps boss type and phase (1..3) to an attack spec.
var bossAttackTable = map[BossType][3]bossAttackSpec{
	BossHiveQueen: {
		{Interval: 2.0, SpreadCount: 5, SpreadStep: 20, SpreadSpeed: 4},
		{Interval: 1.5, SpreadCount: 7, SpreadStep: 15, SpreadSpeed: 5, AimedSpeed: 6, AimedChance: 1},
		{Interval: 0.1, SpiralRate: 200, SpiralSpeed: 5},
	},
	BossAegisDefender: {
		{Interval: 0.5, AimedSpeed: 5, AimedChance: 1},
		{Interval: 0.4, AimedSpeed: 6, AimedChance: 1, SpreadCount: 2, SpreadStep: 180, SpreadSpeed: 4},
		{Interval: 0.15, SpreadCount: 3, SpreadStep: 10, SpreadSpeed: 7},
	},
	BossFinalDestroyer: {
		{Interval: 1.5, RingCount: 12, RingSpeed: 4},
		{Interval: 1.2, RingCount: 16, RingSpeed: 5},
		{Interval: 0.08, SpiralRate: 300, SpiralSpeed: 6, AimedSpeed: 8, AimedChance: 0.1},
	},
}

// Boss is a three-phase level boss. Phases change at health thresholds and
// grant a short invulnerable transition window.
type Boss struct {
	Pos        vec2
	Type       BossType
	Active     bool
	Phase      int
	Health     float64
	MaxHealth  float64
	Size       float64
	ScoreValue int

	moveTimer       float64
	attackTimer     float64
	transitionTimer float64

	entered      bool
	entryTargetX float64

	rng *rand.Rand
}

// NewBoss creates a boss of the given type at a position
func NewBoss(pos vec2, bossType BossType, rng *rand.Rand) *Boss {
	cfg := GetBossTypeConfig(bossType)
	return &Boss{
		Pos:          pos,
		Type:         bossType,
		Active:       true,
		Phase:        1,
		Health:       cfg.Health,
		MaxHealth:    cfg.Health,
		Size:         cfg.Size,
		ScoreValue:   cfg.ScoreValue,
		entryTargetX: 650,
		rng:          rng,
	}
}

// Update advances the boss one tick and returns any projectiles it fired
func (b *Boss) Update(dt float64, playerPos vec2) []*EnemyProjectile {
	if !b.Active {
		return nil
	}

	b.moveTimer += dt
	b.attackTimer += dt

	// Entry glide onto the screen before anything else happens
	if !b.entered {
		if b.Pos.x > b.entryTargetX {
			b.Pos.x -= 3
		} else {
			b.entered = true
		}
		return nil
	}

	healthPercent := b.Health / b.MaxHealth
	if healthPercent <= 0.66 && b.Phase == 1 {
		b.Phase = 2
		b.transitionTimer = 2.0
	} else if healthPercent <= 0.33 && b.Phase == 2 {
		b.Phase = 3
		b.transitionTimer = 2.0
	}

	if b.transitionTimer > 0 {
		b.transitionTimer -= dt
		return nil
	}

	shots := b.attack(playerPos)
	b.updateMovement()
	return shots
}

// updateMovement bobs the boss on a vertical sine wave
func (b *Boss) updateMovement() {
	b.Pos.y = 300 + math.Sin(b.moveTimer*0.5)*100
	b.Pos.y = clamp(b.Pos.y, 100, 500)
}

// attack fires the current phase's pattern when the interval elapses
func (b *Boss) attack(playerPos vec2) []*EnemyProjectile {
	spec := bossAttackTable[b.Type][b.Phase-1]
	if b.attackTimer < spec.Interval {
		return nil
	}
	b.attackTimer = 0

	var shots []*EnemyProjectile

	if spec.SpreadCount > 0 {
		for i := 0; i < spec.SpreadCount; i++ {
			angle := 180 + (float64(i)-float64(spec.SpreadCount-1)/2)*spec.SpreadStep
			shots = append(shots, newAngledProjectile(b.Pos, angle, spec.SpreadSpeed))
		}
	}

	if spec.RingCount > 0 {
		step := 360 / float64(spec.RingCount)
		for i := 0; i < spec.RingCount; i++ {
			shots = append(shots, newAngledProjectile(b.Pos, float64(i)*step, spec.RingSpeed))
		}
	}

	if spec.SpiralRate > 0 {
		angle := math.Mod(b.moveTimer*spec.SpiralRate, 360)
		shots = append(shots, newAngledProjectile(b.Pos, angle, spec.SpiralSpeed))
	}

	if spec.AimedSpeed > 0 && b.rng.Float64() < spec.AimedChance {
		shots = append(shots, newAimedProjectile(b.Pos, playerPos, spec.AimedSpeed))
	}

	return shots
}

// TakeDamage applies damage unless a phase transition is in progress.
// Returns true when the boss is destroyed.
func (b *Boss) TakeDamage(amount float64) bool {
	if b.transitionTimer > 0 {
		return false
	}

	b.Health -= amount
	if b.Health <= 0 {
		b.Health = 0
		b.Active = false
		return true
	}
	return false
}

// InTransition reports whether the boss is between phases
func (b *Boss) InTransition() bool {
	return b.transitionTimer > 0
}

// TargetPos implements Target for homing missiles
func (b *Boss) TargetPos() vec2 { return b.Pos }

// IsActive implements Target for homing missiles
func (b *Boss) IsActive() bool { return b.Active }

// Rect returns the boss's collision box
func (b *Boss) Rect() rect {
	return rectAround(b.Pos, b.Size, b.Size)
}
