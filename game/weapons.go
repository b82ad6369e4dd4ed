package game

// Weapon cooldown times in seconds.
const (
	primaryCooldown = 0.15
	missileCooldown = 1.5
	laserCooldown   = 3.0
	shieldCooldown  = 8.0
)

const (
	maxPrimaryLevel   = 3
	startMissiles     = 5
	maxMissiles       = 10
	maxLaserCharge    = 100.0
	minLaserCharge    = 30.0
	maxShieldEnergy   = 100.0
	startShieldEnergy = 50.0
	shieldActivateMin = 40.0
	shieldActivateUse = 40.0
	shieldDuration    = 5.0
)

// WeaponSystem manages the aircraft's four weapons and their projectiles.
type WeaponSystem struct {
	aircraft *Aircraft

	PrimaryLevel int
	MissileCount int
	LaserCharge  float64
	ShieldEnergy float64

	IsChargingLaser bool

	primaryTimer float64
	missileTimer float64
	laserTimer   float64
	shieldTimer  float64

	bullets  []*Bullet
	missiles []*HomingMissile
	lasers   []*PlasmaLaser
}

// NewWeaponSystem creates a weapon system bound to an aircraft
func NewWeaponSystem(aircraft *Aircraft) *WeaponSystem {
	return &WeaponSystem{
		aircraft:     aircraft,
		PrimaryLevel: 1,
		MissileCount: startMissiles,
		LaserCharge:  0,
		ShieldEnergy: startShieldEnergy,
	}
}

// Update ticks cooldowns, charge, shield regen, and all live projectiles
func (w *WeaponSystem) Update(dt float64) {
	w.primaryTimer = maxFloat(0, w.primaryTimer-dt)
	w.missileTimer = maxFloat(0, w.missileTimer-dt)
	w.laserTimer = maxFloat(0, w.laserTimer-dt)
	w.shieldTimer = maxFloat(0, w.shieldTimer-dt)

	// Laser charge: fast while charging, trickle otherwise
	if w.IsChargingLaser {
		w.LaserCharge = minFloat(maxLaserCharge, w.LaserCharge+40*dt)
	} else {
		w.LaserCharge = minFloat(maxLaserCharge, w.LaserCharge+5*dt)
	}

	w.ShieldEnergy = minFloat(maxShieldEnergy, w.ShieldEnergy+3*dt)

	validBullets := w.bullets[:0]
	for _, b := range w.bullets {
		b.Update(dt)
		if b.active {
			validBullets = append(validBullets, b)
		}
	}
	w.bullets = validBullets

	// Missiles are advanced by the enemy manager, which knows the targets.
	// Here only the dead ones are compacted away.
	validMissiles := w.missiles[:0]
	for _, m := range w.missiles {
		if m.active {
			validMissiles = append(validMissiles, m)
		}
	}
	w.missiles = validMissiles

	validLasers := w.lasers[:0]
	for _, l := range w.lasers {
		l.Update(dt)
		if l.active {
			validLasers = append(validLasers, l)
		}
	}
	w.lasers = validLasers
}

// FirePrimary fires the cannon if off cooldown. The spread depends on the
// primary level: single, double parallel, or triple spread.
func (w *WeaponSystem) FirePrimary() bool {
	if w.primaryTimer > 0 {
		return false
	}
	w.primaryTimer = primaryCooldown

	pos := w.aircraft.Pos
	switch {
	case w.PrimaryLevel <= 1:
		w.bullets = append(w.bullets, NewBullet(pos, 0))
	case w.PrimaryLevel == 2:
		w.bullets = append(w.bullets,
			NewBullet(vec2{pos.x, pos.y - 10}, 0),
			NewBullet(vec2{pos.x, pos.y + 10}, 0))
	default:
		w.bullets = append(w.bullets,
			NewBullet(pos, 0),
			NewBullet(pos, 15),
			NewBullet(pos, -15))
	}
	return true
}

// FireMissile launches a homing missile if one is available and off cooldown
func (w *WeaponSystem) FireMissile() bool {
	if w.missileTimer > 0 || w.MissileCount <= 0 {
		return false
	}
	w.missileTimer = missileCooldown
	w.MissileCount--
	w.missiles = append(w.missiles, NewHomingMissile(w.aircraft.Pos))
	return true
}

// FireLaser fires the plasma beam, consuming all accumulated charge
func (w *WeaponSystem) FireLaser() bool {
	if w.laserTimer > 0 || w.LaserCharge < minLaserCharge {
		return false
	}
	w.laserTimer = laserCooldown
	w.lasers = append(w.lasers, NewPlasmaLaser(w.aircraft.Pos, w.LaserCharge))
	w.LaserCharge = 0
	w.IsChargingLaser = false
	return true
}

// ActivateShield raises the aircraft shield if enough energy is stored
func (w *WeaponSystem) ActivateShield() bool {
	if w.shieldTimer > 0 || w.ShieldEnergy < shieldActivateMin {
		return false
	}
	w.shieldTimer = shieldCooldown
	w.ShieldEnergy -= shieldActivateUse
	w.aircraft.ActivateShield(shieldDuration)
	return true
}

// DrainShield removes shield energy and reports whether any remains. All
// shield energy spending goes through here so the pool has a single owner.
func (w *WeaponSystem) DrainShield(amount float64) bool {
	w.ShieldEnergy = maxFloat(0, w.ShieldEnergy-amount)
	return w.ShieldEnergy > 0
}

// UpgradePrimary raises the cannon level, returning false at the cap
func (w *WeaponSystem) UpgradePrimary() bool {
	if w.PrimaryLevel < maxPrimaryLevel {
		w.PrimaryLevel++
		return true
	}
	return false
}

// AddMissiles restocks missiles up to the cap
func (w *WeaponSystem) AddMissiles(count int) {
	w.MissileCount += count
	if w.MissileCount > maxMissiles {
		w.MissileCount = maxMissiles
	}
}

// Bullets returns the live cannon rounds
func (w *WeaponSystem) Bullets() []*Bullet { return w.bullets }

// Missiles returns the live homing missiles
func (w *WeaponSystem) Missiles() []*HomingMissile { return w.missiles }

// Lasers returns the live plasma beams
func (w *WeaponSystem) Lasers() []*PlasmaLaser { return w.lasers }

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
