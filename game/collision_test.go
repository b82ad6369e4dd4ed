package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestWorld builds an aircraft and the managers CheckCollisions needs.
func newTestWorld() (*Aircraft, *EnemyManager, *PowerUpManager, *ParticleSystem) {
	a := NewAircraft()
	a.Weapons = NewWeaponSystem(a)
	em := NewEnemyManager(testRNG())
	pm := NewPowerUpManager(testRNG())
	ps := NewParticleSystem(testRNG())
	return a, em, pm, ps
}

// TestBulletDestroysEnemy verifies a killing bullet awards score, spends the
// bullet, and throws an explosion.
func TestBulletDestroysEnemy(t *testing.T) {
	a, em, pm, ps := newTestWorld()

	enemy := NewEnemy(a.Pos, EnemyDrone, testRNG())
	enemy.Health = 10
	em.enemies = append(em.enemies, enemy)

	audio := &recordingAudio{}
	require.True(t, a.Weapons.FirePrimary())
	CheckCollisions(a, em, pm, ps, audio)

	assert.False(t, enemy.Active)
	assert.False(t, a.Weapons.Bullets()[0].active)
	assert.Equal(t, enemy.ScoreValue, a.Score)
	assert.Greater(t, ps.Count(), 0)
	assert.True(t, audio.played(SoundExplosion))
}

// TestBulletDamagesWithoutKilling verifies a surviving enemy keeps its score
// unawarded. The gunship sits clear of the aircraft hitbox so the only
// contact is the bullet.
func TestBulletDamagesWithoutKilling(t *testing.T) {
	a, em, pm, ps := newTestWorld()

	enemy := NewEnemy(vec2{a.Pos.x + 300, a.Pos.y}, EnemyGunship, testRNG())
	em.enemies = append(em.enemies, enemy)

	require.True(t, a.Weapons.FirePrimary())

	// Fly the bullet into the stationary gunship
	for i := 0; i < 30 && enemy.Health == enemy.MaxHealth; i++ {
		a.Weapons.Update(1.0 / 60.0)
		CheckCollisions(a, em, pm, ps, NopAudio{})
	}

	assert.True(t, enemy.Active)
	assert.Equal(t, enemy.MaxHealth-bulletDamage, enemy.Health)
	assert.Equal(t, 0, a.Score)
	assert.Equal(t, a.MaxHealth, a.Health, "aircraft untouched at range")
}

// TestMissileHitsBoss verifies missile damage lands on the boss and the
// missile is spent.
func TestMissileHitsBoss(t *testing.T) {
	a, em, pm, ps := newTestWorld()

	em.boss = NewBoss(a.Pos, BossHiveQueen, testRNG())

	require.True(t, a.Weapons.FireMissile())
	CheckCollisions(a, em, pm, ps, NopAudio{})

	assert.Equal(t, em.boss.MaxHealth-missileDamage, em.boss.Health)
	assert.False(t, a.Weapons.Missiles()[0].active)
}

// TestLaserSweepsAndPersists verifies the beam damages everything along its
// line without being consumed.
func TestLaserSweepsAndPersists(t *testing.T) {
	a, em, pm, ps := newTestWorld()

	near := NewEnemy(vec2{a.Pos.x + 200, a.Pos.y}, EnemyGunship, testRNG())
	far := NewEnemy(vec2{a.Pos.x + 500, a.Pos.y}, EnemyGunship, testRNG())
	em.enemies = append(em.enemies, near, far)

	a.Weapons.LaserCharge = 50
	require.True(t, a.Weapons.FireLaser())
	CheckCollisions(a, em, pm, ps, NopAudio{})

	assert.Less(t, near.Health, near.MaxHealth)
	assert.Less(t, far.Health, far.MaxHealth)
	assert.True(t, a.Weapons.Lasers()[0].active, "beam is not consumed on contact")
}

// TestShieldAbsorbsProjectile verifies a shielded hit drains energy instead
// of health.
func TestShieldAbsorbsProjectile(t *testing.T) {
	a, em, pm, ps := newTestWorld()
	a.ShieldActive = true
	a.Weapons.ShieldEnergy = 50

	proj := NewEnemyProjectile(a.Pos, vec2{-5, 0})
	em.projectiles = append(em.projectiles, proj)

	CheckCollisions(a, em, pm, ps, NopAudio{})

	assert.Equal(t, a.MaxHealth, a.Health)
	assert.Equal(t, 42.0, a.Weapons.ShieldEnergy)
	assert.False(t, proj.active)
}

// TestUnshieldedProjectileHit verifies the 10 damage hull hit.
func TestUnshieldedProjectileHit(t *testing.T) {
	a, em, pm, ps := newTestWorld()

	proj := NewEnemyProjectile(a.Pos, vec2{-5, 0})
	em.projectiles = append(em.projectiles, proj)

	CheckCollisions(a, em, pm, ps, NopAudio{})

	assert.Equal(t, a.MaxHealth-10, a.Health)
	assert.False(t, proj.active)
}

// TestEnemyBodyCollision verifies ramming hurts both sides.
func TestEnemyBodyCollision(t *testing.T) {
	a, em, pm, ps := newTestWorld()

	enemy := NewEnemy(a.Pos, EnemyGunship, testRNG())
	em.enemies = append(em.enemies, enemy)

	CheckCollisions(a, em, pm, ps, NopAudio{})

	assert.Equal(t, a.MaxHealth-15, a.Health)
	assert.Equal(t, enemy.MaxHealth-25, enemy.Health)
}

// TestBossBodyCollision verifies the boss hull hits the player without
// taking damage itself.
func TestBossBodyCollision(t *testing.T) {
	a, em, pm, ps := newTestWorld()

	em.boss = NewBoss(a.Pos, BossHiveQueen, testRNG())

	CheckCollisions(a, em, pm, ps, NopAudio{})

	assert.Equal(t, a.MaxHealth-20, a.Health)
	assert.Equal(t, em.boss.MaxHealth, em.boss.Health)
}

// TestPowerUpPickup verifies collection applies the effect and returns the
// pickup message.
func TestPowerUpPickup(t *testing.T) {
	a, em, pm, ps := newTestWorld()
	a.Health = 50

	pm.Spawn(a.Pos, PowerUpHealth)
	messages := CheckCollisions(a, em, pm, ps, NopAudio{})

	require.Equal(t, []string{"+30 Health!"}, messages)
	assert.Equal(t, 80.0, a.Health)
	assert.Empty(t, pm.PowerUps())
}
