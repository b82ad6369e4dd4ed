package game

import (
	"fmt"
	"math/rand"
)

// PowerUpType identifies a collectible drop.
type PowerUpType int

const (
	PowerUpHealth PowerUpType = iota
	PowerUpWeaponUpgrade
	PowerUpMissiles
	PowerUpShield
	PowerUpScore
)

// String returns the power-up type name
func (t PowerUpType) String() string {
	switch t {
	case PowerUpHealth:
		return "health"
	case PowerUpWeaponUpgrade:
		return "weapon_upgrade"
	case PowerUpMissiles:
		return "missiles"
	case PowerUpShield:
		return "shield"
	case PowerUpScore:
		return "score"
	}
	return "unknown"
}

// Drop weighting: health and missiles are the common drops.
var powerUpWeights = []struct {
	Type   PowerUpType
	Weight int
}{
	{PowerUpHealth, 30},
	{PowerUpWeaponUpgrade, 20},
	{PowerUpMissiles, 25},
	{PowerUpShield, 15},
	{PowerUpScore, 10},
}

const powerUpSize = 25.0

// PowerUp is a collectible drifting left across the screen.
type PowerUp struct {
	Pos      vec2
	Type     PowerUpType
	Active   bool
	lifetime float64
	vel      vec2
}

// NewPowerUp creates a power-up at a position
func NewPowerUp(pos vec2, powerUpType PowerUpType) *PowerUp {
	return &PowerUp{
		Pos:      pos,
		Type:     powerUpType,
		Active:   true,
		lifetime: 8.0,
		vel:      vec2{-1, 0},
	}
}

// Update drifts the power-up and expires it
func (p *PowerUp) Update(dt float64) {
	p.lifetime -= dt
	if p.lifetime <= 0 {
		p.Active = false
		return
	}

	p.Pos = p.Pos.add(p.vel.scale(dt * 60))

	if p.Pos.x < -50 {
		p.Active = false
	}
}

// Rect returns the power-up's collision box
func (p *PowerUp) Rect() rect {
	return rectAround(p.Pos, powerUpSize, powerUpSize)
}

// ApplyEffect grants the power-up to the aircraft and returns the pickup
// message shown to the player
func (p *PowerUp) ApplyEffect(aircraft *Aircraft, rng *rand.Rand) string {
	switch p.Type {
	case PowerUpHealth:
		aircraft.Heal(30)
		return "+30 Health!"

	case PowerUpWeaponUpgrade:
		if aircraft.Weapons.UpgradePrimary() {
			return "Weapon Upgraded!"
		}
		// Already maxed: points instead
		aircraft.AddScore(500)
		return "+500 Points!"

	case PowerUpMissiles:
		aircraft.Weapons.AddMissiles(3)
		return "+3 Missiles!"

	case PowerUpShield:
		aircraft.Weapons.ShieldEnergy = maxShieldEnergy
		aircraft.ActivateShield(shieldDuration)
		return "Shield Activated!"

	case PowerUpScore:
		points := []int{500, 1000, 2000}[rng.Intn(3)]
		aircraft.AddScore(points)
		return fmt.Sprintf("+%d Points!", points)
	}
	return "Power-Up!"
}

// PowerUpManager owns the live power-ups and the drop rolls.
type PowerUpManager struct {
	powerups []*PowerUp
	rng      *rand.Rand
}

// NewPowerUpManager creates an empty power-up manager
func NewPowerUpManager(rng *rand.Rand) *PowerUpManager {
	return &PowerUpManager{rng: rng}
}

// Spawn places a power-up of a specific type
func (pm *PowerUpManager) Spawn(pos vec2, powerUpType PowerUpType) {
	pm.powerups = append(pm.powerups, NewPowerUp(pos, powerUpType))
}

// SpawnRandom places a power-up with the weighted type roll
func (pm *PowerUpManager) SpawnRandom(pos vec2) {
	total := 0
	for _, w := range powerUpWeights {
		total += w.Weight
	}
	roll := pm.rng.Intn(total)
	for _, w := range powerUpWeights {
		roll -= w.Weight
		if roll < 0 {
			pm.Spawn(pos, w.Type)
			return
		}
	}
}

// MaybeSpawnFromEnemy rolls the 30% drop chance for a destroyed enemy
func (pm *PowerUpManager) MaybeSpawnFromEnemy(pos vec2) {
	if pm.rng.Float64() < 0.3 {
		pm.SpawnRandom(pos)
	}
}

// SpawnFromBoss scatters the guaranteed 3-5 drops of a destroyed boss
func (pm *PowerUpManager) SpawnFromBoss(pos vec2) {
	count := 3 + pm.rng.Intn(3)
	for i := 0; i < count; i++ {
		offset := vec2{
			x: pm.rng.Float64()*100 - 50,
			y: pm.rng.Float64()*100 - 50,
		}
		pm.SpawnRandom(pos.add(offset))
	}
}

// Update advances all power-ups and removes expired ones
func (pm *PowerUpManager) Update(dt float64) {
	valid := pm.powerups[:0]
	for _, p := range pm.powerups {
		p.Update(dt)
		if p.Active {
			valid = append(valid, p)
		}
	}
	pm.powerups = valid
}

// CheckCollection collects power-ups touching the aircraft and returns the
// pickup messages
func (pm *PowerUpManager) CheckCollection(aircraft *Aircraft) []string {
	var messages []string
	aircraftRect := aircraft.Rect()

	valid := pm.powerups[:0]
	for _, p := range pm.powerups {
		if p.Active && aircraftRect.intersects(p.Rect()) {
			messages = append(messages, p.ApplyEffect(aircraft, pm.rng))
			p.Active = false
			continue
		}
		valid = append(valid, p)
	}
	pm.powerups = valid

	return messages
}

// PowerUps returns the live power-ups
func (pm *PowerUpManager) PowerUps() []*PowerUp { return pm.powerups }

// Reset clears all power-ups
func (pm *PowerUpManager) Reset() {
	pm.powerups = pm.powerups[:0]
}
