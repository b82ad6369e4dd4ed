package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTakeoffRotation verifies the aircraft rotates off the runway once it is
// far enough down the strip with enough speed and pitch.
func TestTakeoffRotation(t *testing.T) {
	a := NewAircraft()
	a.Pos.x = 245
	a.Vel.x = 4.0
	a.Angle = 16

	a.Update(1.0 / 60.0)

	assert.False(t, a.OnGround)
	assert.True(t, a.HasTakenOff)
	assert.False(t, a.GearDown)
	assert.Equal(t, -2.2, a.Vel.y)
}

// TestNoTakeoffBelowThresholds verifies the aircraft stays on the runway when
// any of the takeoff conditions is unmet.
func TestNoTakeoffBelowThresholds(t *testing.T) {
	cases := []struct {
		name  string
		x     float64
		vx    float64
		angle float64
	}{
		{"too early", 100, 4.0, 16},
		{"too slow", 245, 2.0, 16},
		{"nose too low", 245, 4.0, 10},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a := NewAircraft()
			a.Pos.x = tc.x
			a.Vel.x = tc.vx
			a.Angle = tc.angle

			a.Update(1.0 / 60.0)

			assert.True(t, a.OnGround)
			assert.False(t, a.HasTakenOff)
		})
	}
}

// TestGroundRollAcceleration verifies thrust builds speed against drag on
// the runway.
func TestGroundRollAcceleration(t *testing.T) {
	a := NewAircraft()
	a.Thrust = 100

	for i := 0; i < 60; i++ {
		a.Update(1.0 / 60.0)
	}

	assert.Greater(t, a.Vel.x, 0.0)
	assert.Greater(t, a.Pos.x, 100.0)
	assert.True(t, a.OnGround, "should still be rolling without pitch input")
}

// TestLandingWithinEnvelope verifies a gentle touchdown on the runway lands.
func TestLandingWithinEnvelope(t *testing.T) {
	a := NewAircraft()
	a.OnGround = false
	a.HasTakenOff = true
	a.Pos = vec2{150, 499}
	a.Vel = vec2{2, 2}
	a.Angle = 5

	a.Update(1.0 / 60.0)

	assert.True(t, a.OnGround)
	assert.True(t, a.GearDown)
	assert.Equal(t, groundLevel, a.Pos.y)
	assert.Equal(t, 0.0, a.Vel.y)
	assert.Greater(t, a.Health, 0.0)
}

// TestLandingTooFastCrashes verifies exceeding the sink-rate limit on
// touchdown destroys the aircraft.
func TestLandingTooFastCrashes(t *testing.T) {
	a := NewAircraft()
	a.OnGround = false
	a.HasTakenOff = true
	a.Pos = vec2{150, 499}
	a.Vel = vec2{2, 4.5}
	a.Angle = 5

	a.Update(1.0 / 60.0)

	assert.Equal(t, 0.0, a.Health)
}

// TestLandingOffRunwayCrashes verifies ground contact away from the strip is
// always a crash. The combat-zone clamp keeps x at most 250, so the crash
// side of the envelope is the steep-pitch case here.
func TestLandingOffRunwayCrashes(t *testing.T) {
	a := NewAircraft()
	a.OnGround = false
	a.HasTakenOff = false
	a.Pos = vec2{600, 499}
	a.Vel = vec2{2, 2}
	a.Angle = 0

	a.Update(1.0 / 60.0)

	assert.Equal(t, 0.0, a.Health)
}

// TestTakeDamageInvulnerabilityWindow verifies a hit opens a grace window
// that swallows immediately following hits.
func TestTakeDamageInvulnerabilityWindow(t *testing.T) {
	a := NewAircraft()

	dead := a.TakeDamage(30)
	assert.False(t, dead)
	assert.Equal(t, 70.0, a.Health)
	assert.True(t, a.Invulnerable)

	// Second hit inside the window does nothing
	dead = a.TakeDamage(30)
	assert.False(t, dead)
	assert.Equal(t, 70.0, a.Health)

	// Window expires after 0.2s
	for i := 0; i < 15; i++ {
		a.Update(1.0 / 60.0)
	}
	assert.False(t, a.Invulnerable)

	dead = a.TakeDamage(30)
	assert.False(t, dead)
	assert.Equal(t, 40.0, a.Health)
}

// TestTakeDamageFloorsAtZero verifies health never goes negative and death
// is reported.
func TestTakeDamageFloorsAtZero(t *testing.T) {
	a := NewAircraft()
	a.Health = 5

	dead := a.TakeDamage(50)

	assert.True(t, dead)
	assert.Equal(t, 0.0, a.Health)
}

// TestShieldDrainsAndExpires verifies the active shield drains the weapon
// energy pool and shuts off when the duration runs out.
func TestShieldDrainsAndExpires(t *testing.T) {
	a := NewAircraft()
	w := NewWeaponSystem(a)
	a.Weapons = w

	a.ActivateShield(1.0)
	require.True(t, a.ShieldActive)

	start := w.ShieldEnergy
	a.Update(0.5)
	assert.True(t, a.ShieldActive)
	assert.Less(t, w.ShieldEnergy, start)

	a.Update(0.6)
	assert.False(t, a.ShieldActive)
}

// TestShieldShutsOffWhenEnergyExhausted verifies the shield cannot outlive
// its energy pool.
func TestShieldShutsOffWhenEnergyExhausted(t *testing.T) {
	a := NewAircraft()
	w := NewWeaponSystem(a)
	a.Weapons = w
	w.ShieldEnergy = 0.01

	a.ActivateShield(10.0)
	a.Update(0.1)

	assert.False(t, a.ShieldActive)
}

// TestFuelConsumption verifies thrust burns fuel and dead tanks kill thrust.
func TestFuelConsumption(t *testing.T) {
	a := NewAircraft()
	a.OnGround = false
	a.HasTakenOff = true
	a.Pos = vec2{150, 300}
	a.Thrust = 100

	a.Update(1.0)
	assert.InDelta(t, 99.5, a.Fuel, 0.001)

	a.Fuel = 0.01
	a.Update(1.0)
	assert.Equal(t, 0.0, a.Thrust)
}

// TestLoseLifeResetsToRunway verifies the respawn restores position and
// resources with a respawn grace window.
func TestLoseLifeResetsToRunway(t *testing.T) {
	a := NewAircraft()
	a.Pos = vec2{200, 300}
	a.Health = 0
	a.Fuel = 12
	a.HasTakenOff = true
	a.OnGround = false
	a.Thrust = 80

	a.LoseLife()

	require.Equal(t, 2, a.Lives)
	assert.Equal(t, vec2{100, groundLevel}, a.Pos)
	assert.Equal(t, a.MaxHealth, a.Health)
	assert.Equal(t, a.MaxFuel, a.Fuel)
	assert.True(t, a.OnGround)
	assert.False(t, a.HasTakenOff)
	assert.True(t, a.GearDown)
	assert.Equal(t, 0.0, a.Thrust)
	assert.True(t, a.Invulnerable)
}

// TestLoseLastLifeDoesNotReset verifies no respawn happens on the last life.
func TestLoseLastLifeDoesNotReset(t *testing.T) {
	a := NewAircraft()
	a.Lives = 1
	a.Health = 0

	a.LoseLife()

	assert.Equal(t, 0, a.Lives)
	assert.Equal(t, 0.0, a.Health)
}

// TestHealClampsAtMax verifies overhealing caps at max health.
func TestHealClampsAtMax(t *testing.T) {
	a := NewAircraft()
	a.Health = 90

	a.Heal(30)

	assert.Equal(t, a.MaxHealth, a.Health)
}
