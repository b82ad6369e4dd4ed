package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWeapons() (*Aircraft, *WeaponSystem) {
	a := NewAircraft()
	w := NewWeaponSystem(a)
	a.Weapons = w
	return a, w
}

// TestFirePrimaryCooldown verifies the cannon refuses to fire until the
// cooldown has fully elapsed.
func TestFirePrimaryCooldown(t *testing.T) {
	_, w := newTestWeapons()

	require.True(t, w.FirePrimary())
	assert.False(t, w.FirePrimary(), "still cooling down")

	w.Update(0.1)
	assert.False(t, w.FirePrimary(), "cooldown is 0.15s")

	w.Update(0.06)
	assert.True(t, w.FirePrimary())
}

// TestFirePrimaryLevels verifies the bullet count and spread per level.
func TestFirePrimaryLevels(t *testing.T) {
	t.Run("level 1 single", func(t *testing.T) {
		_, w := newTestWeapons()
		require.True(t, w.FirePrimary())

		bullets := w.Bullets()
		require.Len(t, bullets, 1)
		assert.Equal(t, 0.0, bullets[0].angle)
	})

	t.Run("level 2 parallel pair", func(t *testing.T) {
		a, w := newTestWeapons()
		w.PrimaryLevel = 2
		require.True(t, w.FirePrimary())

		bullets := w.Bullets()
		require.Len(t, bullets, 2)
		assert.Equal(t, a.Pos.y-10, bullets[0].pos.y)
		assert.Equal(t, a.Pos.y+10, bullets[1].pos.y)
		assert.Equal(t, 0.0, bullets[0].angle)
		assert.Equal(t, 0.0, bullets[1].angle)
	})

	t.Run("level 3 spread", func(t *testing.T) {
		_, w := newTestWeapons()
		w.PrimaryLevel = 3
		require.True(t, w.FirePrimary())

		bullets := w.Bullets()
		require.Len(t, bullets, 3)
		angles := []float64{bullets[0].angle, bullets[1].angle, bullets[2].angle}
		assert.ElementsMatch(t, []float64{0, 15, -15}, angles)
	})
}

// TestFireMissileAmmo verifies missiles consume ammo and refuse at zero.
func TestFireMissileAmmo(t *testing.T) {
	_, w := newTestWeapons()

	require.True(t, w.FireMissile())
	assert.Equal(t, startMissiles-1, w.MissileCount)

	w.MissileCount = 0
	w.Update(2.0) // clear the cooldown
	assert.False(t, w.FireMissile())
}

// TestFireLaserChargeGate verifies the beam needs at least 30 charge and
// consumes everything it has.
func TestFireLaserChargeGate(t *testing.T) {
	_, w := newTestWeapons()

	w.LaserCharge = 20
	assert.False(t, w.FireLaser())

	w.LaserCharge = 80
	require.True(t, w.FireLaser())
	assert.Equal(t, 0.0, w.LaserCharge)

	lasers := w.Lasers()
	require.Len(t, lasers, 1)
	assert.Equal(t, 80*0.8, lasers[0].damage)
	assert.Equal(t, 10+80*0.15, lasers[0].width)
}

// TestLaserChargeRates verifies fast charge while held and trickle otherwise.
func TestLaserChargeRates(t *testing.T) {
	_, w := newTestWeapons()

	w.IsChargingLaser = true
	w.Update(1.0)
	assert.InDelta(t, 40.0, w.LaserCharge, 0.001)

	w.IsChargingLaser = false
	w.Update(1.0)
	assert.InDelta(t, 45.0, w.LaserCharge, 0.001)

	w.LaserCharge = 99
	w.IsChargingLaser = true
	w.Update(1.0)
	assert.Equal(t, maxLaserCharge, w.LaserCharge)
}

// TestActivateShieldEnergyGate verifies the 40-energy activation threshold
// and cost.
func TestActivateShieldEnergyGate(t *testing.T) {
	a, w := newTestWeapons()

	w.ShieldEnergy = 30
	assert.False(t, w.ActivateShield())
	assert.False(t, a.ShieldActive)

	w.ShieldEnergy = 50
	require.True(t, w.ActivateShield())
	assert.True(t, a.ShieldActive)
	assert.Equal(t, 10.0, w.ShieldEnergy)

	// Cooldown blocks reactivation even with energy restored
	w.ShieldEnergy = 100
	assert.False(t, w.ActivateShield())
}

// TestShieldEnergyRegen verifies the passive 3/s regeneration.
func TestShieldEnergyRegen(t *testing.T) {
	_, w := newTestWeapons()
	w.ShieldEnergy = 50

	w.Update(1.0)

	assert.InDelta(t, 53.0, w.ShieldEnergy, 0.001)
}

// TestDrainShield verifies the single drain path floors at zero and reports
// exhaustion.
func TestDrainShield(t *testing.T) {
	_, w := newTestWeapons()
	w.ShieldEnergy = 10

	assert.True(t, w.DrainShield(5))
	assert.Equal(t, 5.0, w.ShieldEnergy)

	assert.False(t, w.DrainShield(20))
	assert.Equal(t, 0.0, w.ShieldEnergy)
}

// TestUpgradePrimaryCap verifies the cannon upgrade stops at level 3.
func TestUpgradePrimaryCap(t *testing.T) {
	_, w := newTestWeapons()

	assert.True(t, w.UpgradePrimary())
	assert.True(t, w.UpgradePrimary())
	assert.Equal(t, 3, w.PrimaryLevel)

	assert.False(t, w.UpgradePrimary())
	assert.Equal(t, 3, w.PrimaryLevel)
}

// TestAddMissilesCap verifies restocking clamps at the magazine cap.
func TestAddMissilesCap(t *testing.T) {
	_, w := newTestWeapons()

	w.AddMissiles(3)
	assert.Equal(t, 8, w.MissileCount)

	w.AddMissiles(10)
	assert.Equal(t, maxMissiles, w.MissileCount)
}

// TestUpdateCompactsDeadProjectiles verifies expired projectiles leave the
// live slices.
func TestUpdateCompactsDeadProjectiles(t *testing.T) {
	_, w := newTestWeapons()

	require.True(t, w.FirePrimary())
	w.Bullets()[0].active = false
	w.Update(1.0 / 60.0)
	assert.Empty(t, w.Bullets())

	w.LaserCharge = 50
	require.True(t, w.FireLaser())
	w.Update(0.7) // beyond the 0.6s beam lifetime
	assert.Empty(t, w.Lasers())
}
