package game

import "math"

// Simplified flight physics constants.
const (
	gravity          = 0.3
	groundLevel      = 500.0
	runwayStartX     = 50.0
	runwayEndX       = 300.0
	minTakeoffSpeed  = 3.5
	rotationX        = 240.0 // runway position where rotation becomes possible
	rotationAngle    = 15.0  // pitch in degrees needed to rotate
	maxLandingSpeed  = 3.0
	maxLandingAngle  = 15.0
	aircraftMaxSpeed = 10.0
	accelerationRate = 0.25
	airDrag          = 0.97
	liftFactor       = 0.08
	aircraftHitbox   = 160.0
	startHealth      = 100.0
	startFuel        = 100.0
	startLives       = 3
)

// Aircraft is the player plane: arcade physics with a runway takeoff and
// landing envelope, plus the combat resource pools.
type Aircraft struct {
	Pos   vec2
	Vel   vec2
	Angle float64 // pitch in degrees, 0 = level, positive = nose up

	OnGround    bool
	HasTakenOff bool
	Thrust      float64 // 0-100

	Flaps          float64 // 0-3
	GearDown       bool
	BrakesActive   bool
	SpoilersActive bool

	Health    float64
	MaxHealth float64
	Fuel      float64
	MaxFuel   float64

	ShieldActive   bool
	shieldDuration float64

	Weapons *WeaponSystem // assigned after construction

	Score             int
	Lives             int
	Invulnerable      bool
	invulnerableTimer float64
}

// NewAircraft creates a fresh aircraft parked on the runway
func NewAircraft() *Aircraft {
	return &Aircraft{
		Pos:       vec2{100, groundLevel},
		OnGround:  true,
		GearDown:  true,
		Health:    startHealth,
		MaxHealth: startHealth,
		Fuel:      startFuel,
		MaxFuel:   startFuel,
		Lives:     startLives,
	}
}

// Update advances timers, physics, and fuel consumption for one tick
func (a *Aircraft) Update(dt float64) {
	if a.Invulnerable {
		a.invulnerableTimer -= dt
		if a.invulnerableTimer <= 0 {
			a.Invulnerable = false
		}
	}

	if a.ShieldActive {
		a.shieldDuration -= dt
		hasEnergy := true
		if a.Weapons != nil {
			hasEnergy = a.Weapons.DrainShield(3 * dt)
		}
		if a.shieldDuration <= 0 || !hasEnergy {
			a.ShieldActive = false
			a.shieldDuration = 0
		}
	}

	if a.OnGround {
		a.updateGroundPhysics(dt)
	} else {
		a.updateAirPhysics(dt)
	}

	if a.Thrust > 0 {
		a.Fuel = math.Max(0, a.Fuel-a.Thrust*0.005*dt)
		if a.Fuel <= 0 {
			a.Thrust = 0
		}
	}
}

// updateGroundPhysics handles the runway roll and the takeoff check
func (a *Aircraft) updateGroundPhysics(dt float64) {
	if a.Thrust > 0 {
		a.Vel.x += a.Thrust * accelerationRate * dt
	}

	if a.BrakesActive {
		a.Vel.x *= 0.95
	} else {
		a.Vel.x *= airDrag
	}

	a.Vel.x = math.Min(a.Vel.x, aircraftMaxSpeed)
	a.Pos.x += a.Vel.x

	a.Angle = clamp(a.Angle, 0, 25)

	// Rotation: far enough down the runway, fast enough, nose up enough
	if a.Pos.x >= rotationX && a.Vel.x >= minTakeoffSpeed && a.Angle >= rotationAngle {
		a.OnGround = false
		a.HasTakenOff = true
		a.GearDown = false
		a.Vel.y = -2.2
	}
}

// updateAirPhysics handles airborne flight and the ground-contact check
func (a *Aircraft) updateAirPhysics(dt float64) {
	if a.Thrust > 0 && a.Fuel > 0 {
		a.Vel.x += a.Thrust * accelerationRate * 0.5 * dt
	}

	// Pitch converts forward speed into climb
	lift := math.Sin(degToRad(a.Angle)) * liftFactor * a.Vel.x
	a.Vel.y -= lift

	a.Vel.y += gravity * dt

	if a.SpoilersActive {
		a.Vel.x *= 0.96
	} else {
		a.Vel.x *= airDrag
	}
	a.Vel.y *= 0.99

	if a.Flaps > 0 {
		a.Vel.y -= a.Flaps * 0.02
		a.Vel.x *= 0.98
	}

	if a.SpoilersActive {
		a.Vel.y += 0.1
	}

	a.Vel.x = math.Min(a.Vel.x, aircraftMaxSpeed)
	a.Vel.y = clamp(a.Vel.y, -5, 5)

	a.Pos = a.Pos.add(a.Vel)

	a.Angle = clamp(a.Angle, -10, 30)

	// Once airborne the camera pins the plane to the left of the screen
	if a.HasTakenOff {
		a.Pos.x = clamp(a.Pos.x, 50, 250)
	} else {
		a.Pos.x = clamp(a.Pos.x, 20, 780)
	}
	a.Pos.y = clamp(a.Pos.y, 20, 580)

	if a.Pos.y >= groundLevel {
		a.checkLanding()
	}
}

// checkLanding lands or crashes depending on where and how the ground is met
func (a *Aircraft) checkLanding() {
	if runwayStartX <= a.Pos.x && a.Pos.x <= runwayEndX {
		if math.Abs(a.Vel.y) <= maxLandingSpeed && math.Abs(a.Angle) <= maxLandingAngle {
			a.land()
			return
		}
	}
	a.crash()
}

// land settles the aircraft onto the runway
func (a *Aircraft) land() {
	a.OnGround = true
	a.Vel.y = 0
	a.Pos.y = groundLevel
	a.GearDown = true
}

// crash destroys the aircraft
func (a *Aircraft) crash() {
	a.Health = 0
}

// TakeDamage applies hull damage and reports whether the aircraft is dead.
// Hits during the invulnerability window are ignored.
func (a *Aircraft) TakeDamage(amount float64) bool {
	if a.Invulnerable {
		return false
	}

	a.Health = math.Max(0, a.Health-amount)

	// Short grace window so overlapping hits don't chain into instant death
	a.Invulnerable = true
	a.invulnerableTimer = 0.2

	return a.Health <= 0
}

// TakeShieldHit spends shield energy to absorb a hit
func (a *Aircraft) TakeShieldHit(energyCost float64) {
	if !a.ShieldActive || a.Weapons == nil {
		return
	}
	if !a.Weapons.DrainShield(energyCost) {
		a.ShieldActive = false
		a.shieldDuration = 0
	}
}

// Heal restores hull health up to the maximum
func (a *Aircraft) Heal(amount float64) {
	a.Health = math.Min(a.MaxHealth, a.Health+amount)
}

// AddFuel adds fuel up to the maximum
func (a *Aircraft) AddFuel(amount float64) {
	a.Fuel = math.Min(a.MaxFuel, a.Fuel+amount)
}

// ActivateShield raises the shield for the given duration in seconds
func (a *Aircraft) ActivateShield(duration float64) {
	a.ShieldActive = true
	a.shieldDuration = duration
}

// AddScore adds points to the score
func (a *Aircraft) AddScore(points int) {
	a.Score += points
}

// LoseLife consumes a life and, if any remain, resets the aircraft onto the
// runway with full health and fuel and a respawn grace window.
func (a *Aircraft) LoseLife() {
	a.Lives--
	if a.Lives <= 0 {
		return
	}
	a.Health = a.MaxHealth
	a.Fuel = a.MaxFuel
	a.Pos = vec2{100, groundLevel}
	a.Vel = vec2{}
	a.Angle = 0
	a.OnGround = true
	a.HasTakenOff = false
	a.GearDown = true
	a.Thrust = 0
	a.Invulnerable = true
	a.invulnerableTimer = 2.0
}

// Rect returns the aircraft's collision box
func (a *Aircraft) Rect() rect {
	return rectAround(a.Pos, aircraftHitbox, aircraftHitbox)
}
