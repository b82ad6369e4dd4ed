package game

import (
	"math"
	"math/rand"
)

// EnemyType identifies one of the regular enemy variants.
type EnemyType int

const (
	EnemyDrone EnemyType = iota
	EnemyBomber
	EnemyGunship
	EnemyElite
	EnemyKamikaze
)

// String returns the enemy type name
func (t EnemyType) String() string {
	switch t {
	case EnemyDrone:
		return "drone"
	case EnemyBomber:
		return "bomber"
	case EnemyGunship:
		return "gunship"
	case EnemyElite:
		return "elite"
	case EnemyKamikaze:
		return "kamikaze"
	}
	return "unknown"
}

// EnemyTypeConfig holds the stats for an enemy type
type EnemyTypeConfig struct {
	Health     float64
	Speed      float64
	Damage     float64 // contact damage against the player
	ScoreValue int
	Size       float64
}

// GetEnemyTypeConfig returns the stats for the given enemy type
func GetEnemyTypeConfig(enemyType EnemyType) EnemyTypeConfig {
	switch enemyType {
	case EnemyBomber:
		return EnemyTypeConfig{Health: 60, Speed: 1.5, Damage: 15, ScoreValue: 200, Size: 80}
	case EnemyGunship:
		return EnemyTypeConfig{Health: 100, Speed: 1.8, Damage: 20, ScoreValue: 300, Size: 80}
	case EnemyElite:
		return EnemyTypeConfig{Health: 150, Speed: 2.2, Damage: 25, ScoreValue: 400, Size: 80}
	case EnemyKamikaze:
		return EnemyTypeConfig{Health: 20, Speed: 4.0, Damage: 40, ScoreValue: 150, Size: 70}
	default: // drone
		return EnemyTypeConfig{Health: 30, Speed: 2.0, Damage: 10, ScoreValue: 100, Size: 80}
	}
}

// Enemy is a regular hostile aircraft. Behavior is selected by type.
type Enemy struct {
	Pos        vec2
	Type       EnemyType
	Active     bool
	Health     float64
	MaxHealth  float64
	Speed      float64
	Damage     float64
	ScoreValue int
	Size       float64

	vel            vec2
	moveTimer      float64
	attackCooldown float64

	rng *rand.Rand
}

// NewEnemy creates an enemy of the given type at a position
func NewEnemy(pos vec2, enemyType EnemyType, rng *rand.Rand) *Enemy {
	cfg := GetEnemyTypeConfig(enemyType)
	return &Enemy{
		Pos:        pos,
		Type:       enemyType,
		Active:     true,
		Health:     cfg.Health,
		MaxHealth:  cfg.Health,
		Speed:      cfg.Speed,
		Damage:     cfg.Damage,
		ScoreValue: cfg.ScoreValue,
		Size:       cfg.Size,
		vel:        vec2{-cfg.Speed, 0},
		rng:        rng,
	}
}

// Update advances the enemy one tick and returns any projectiles it fired
func (e *Enemy) Update(dt float64, playerPos vec2) []*EnemyProjectile {
	if !e.Active {
		return nil
	}

	e.moveTimer += dt
	e.attackCooldown = math.Max(0, e.attackCooldown-dt)

	var shots []*EnemyProjectile
	switch e.Type {
	case EnemyDrone:
		shots = e.updateDrone(dt)
	case EnemyBomber:
		shots = e.updateBomber(dt, playerPos)
	case EnemyGunship:
		shots = e.updateGunship(dt, playerPos)
	case EnemyElite:
		shots = e.updateElite(dt)
	case EnemyKamikaze:
		e.updateKamikaze(dt, playerPos)
	}

	// Gone once fully past the left edge
	if e.Pos.x < -100 {
		e.Active = false
	}

	return shots
}

// updateDrone flies straight with a slight wave and takes occasional shots
func (e *Enemy) updateDrone(dt float64) []*EnemyProjectile {
	e.Pos = e.Pos.add(e.vel.scale(dt * 60))
	e.Pos.y += math.Sin(e.moveTimer*2) * 1.5

	if e.attackCooldown <= 0 && 50 < e.Pos.x && e.Pos.x < 750 {
		if e.rng.Float64() < 0.02 {
			e.attackCooldown = 2.0
			return []*EnemyProjectile{NewEnemyProjectile(e.Pos, vec2{-5, 0})}
		}
	}
	return nil
}

// updateBomber drifts slowly and drops bombs when above the player
func (e *Enemy) updateBomber(dt float64, playerPos vec2) []*EnemyProjectile {
	e.Pos = e.Pos.add(e.vel.scale(dt * 60))
	e.Pos.y += math.Sin(e.moveTimer*1.5) * 0.8

	if e.attackCooldown <= 0 && 50 < e.Pos.x && e.Pos.x < 750 {
		if math.Abs(e.Pos.x-playerPos.x) < 100 {
			e.attackCooldown = 2.5
			return []*EnemyProjectile{NewEnemyProjectile(e.Pos, vec2{-2, 3})}
		}
	}
	return nil
}

// updateGunship matches the player's altitude and fires aimed shots
func (e *Enemy) updateGunship(dt float64, playerPos vec2) []*EnemyProjectile {
	e.Pos.x += e.vel.x * dt * 60

	if math.Abs(e.Pos.y-playerPos.y) > 5 {
		if playerPos.y > e.Pos.y {
			e.Pos.y += 1.5
		} else {
			e.Pos.y -= 1.5
		}
	}

	if e.attackCooldown <= 0 && 100 < e.Pos.x && e.Pos.x < 700 {
		if e.rng.Float64() < 0.03 {
			e.attackCooldown = 1.8
			return []*EnemyProjectile{newAimedProjectile(e.Pos, playerPos, 4)}
		}
	}
	return nil
}

// updateElite weaves on two sine frequencies and fires triple spreads
func (e *Enemy) updateElite(dt float64) []*EnemyProjectile {
	e.Pos.x += e.vel.x * dt * 60
	e.Pos.y += math.Sin(e.moveTimer*3)*2 + math.Cos(e.moveTimer*1.5)*1

	if e.attackCooldown <= 0 && 100 < e.Pos.x && e.Pos.x < 700 {
		if e.rng.Float64() < 0.04 {
			e.attackCooldown = 1.2
			shots := make([]*EnemyProjectile, 0, 3)
			for _, angle := range []float64{-15, 0, 15} {
				shots = append(shots, newAngledProjectile(e.Pos, angle+180, 5))
			}
			return shots
		}
	}
	return nil
}

// updateKamikaze steers straight at the player
func (e *Enemy) updateKamikaze(dt float64, playerPos vec2) {
	dir := playerPos.add(e.Pos.scale(-1))
	if dir.length() > 0 {
		e.Pos = e.Pos.add(dir.normalized().scale(e.Speed * dt * 60))
	}
}

// TakeDamage applies damage and reports whether the enemy was destroyed
func (e *Enemy) TakeDamage(amount float64) bool {
	e.Health -= amount
	if e.Health <= 0 {
		e.Health = 0
		e.Active = false
		return true
	}
	return false
}

// TargetPos implements Target for homing missiles
func (e *Enemy) TargetPos() vec2 { return e.Pos }

// IsActive implements Target for homing missiles
func (e *Enemy) IsActive() bool { return e.Active }

// Rect returns the enemy's collision box
func (e *Enemy) Rect() rect {
	return rectAround(e.Pos, e.Size, e.Size)
}
