package game

import "math/rand"

// SpawnEntry is one queued enemy spawn: the type and its entry altitude.
type SpawnEntry struct {
	Type EnemyType
	Y    float64
}

// EnemyManager owns the live enemies, the boss, and every hostile
// projectile. It also steers the player's homing missiles, since it is the
// only component that knows the full target set.
type EnemyManager struct {
	enemies     []*Enemy
	boss        *Boss
	projectiles []*EnemyProjectile

	spawnTimer float64
	spawnDelay float64
	spawnQueue []SpawnEntry

	bossSpawned  bool
	bossDefeated bool

	rng *rand.Rand
}

// NewEnemyManager creates an empty enemy manager
func NewEnemyManager(rng *rand.Rand) *EnemyManager {
	return &EnemyManager{
		spawnDelay: 2.0,
		rng:        rng,
	}
}

// SetSpawnQueue replaces the pending spawns and resets the spawn timer
func (em *EnemyManager) SetSpawnQueue(queue []SpawnEntry, delay float64) {
	em.spawnQueue = append(em.spawnQueue[:0], queue...)
	em.spawnDelay = delay
	em.spawnTimer = 0
}

// SpawnBoss places the boss off the right edge and clears regular enemies
func (em *EnemyManager) SpawnBoss(bossType BossType) {
	em.boss = NewBoss(vec2{900, 300}, bossType, em.rng)
	em.enemies = em.enemies[:0]
	em.spawnQueue = em.spawnQueue[:0]
	em.bossSpawned = true
	em.bossDefeated = false
}

// Update spawns queued enemies, advances enemies, boss, hostile projectiles,
// and steers the player's homing missiles against the current target set.
func (em *EnemyManager) Update(dt float64, playerPos vec2, missiles []*HomingMissile) {
	em.spawnTimer += dt

	if len(em.spawnQueue) > 0 && em.spawnTimer >= em.spawnDelay {
		em.spawnTimer = 0
		entry := em.spawnQueue[0]
		em.spawnQueue = em.spawnQueue[1:]
		em.enemies = append(em.enemies, NewEnemy(vec2{850, entry.Y}, entry.Type, em.rng))
	}

	validEnemies := em.enemies[:0]
	for _, enemy := range em.enemies {
		em.projectiles = append(em.projectiles, enemy.Update(dt, playerPos)...)
		if enemy.Active {
			validEnemies = append(validEnemies, enemy)
		}
	}
	em.enemies = validEnemies

	if em.boss != nil {
		em.projectiles = append(em.projectiles, em.boss.Update(dt, playerPos)...)
		if !em.boss.Active {
			em.boss = nil
			em.bossDefeated = true
		}
	}

	targets := em.Targets()
	for _, missile := range missiles {
		if missile.active {
			missile.Update(dt, targets)
		}
	}

	validProjectiles := em.projectiles[:0]
	for _, proj := range em.projectiles {
		proj.Update(dt)
		if proj.active {
			validProjectiles = append(validProjectiles, proj)
		}
	}
	em.projectiles = validProjectiles
}

// Targets returns every live enemy and the boss as homing targets
func (em *EnemyManager) Targets() []Target {
	targets := make([]Target, 0, len(em.enemies)+1)
	for _, e := range em.enemies {
		targets = append(targets, e)
	}
	if em.boss != nil {
		targets = append(targets, em.boss)
	}
	return targets
}

// IsWaveComplete reports whether no enemies remain, queued or live, and no
// boss is on screen
func (em *EnemyManager) IsWaveComplete() bool {
	return len(em.enemies) == 0 && len(em.spawnQueue) == 0 && em.boss == nil
}

// Enemies returns the live enemies
func (em *EnemyManager) Enemies() []*Enemy { return em.enemies }

// Boss returns the live boss, or nil
func (em *EnemyManager) Boss() *Boss { return em.boss }

// Projectiles returns the live hostile projectiles
func (em *EnemyManager) Projectiles() []*EnemyProjectile { return em.projectiles }

// BossSpawned reports whether the level boss has been spawned
func (em *EnemyManager) BossSpawned() bool { return em.bossSpawned }

// BossDefeated reports whether the level boss has been destroyed
func (em *EnemyManager) BossDefeated() bool { return em.bossDefeated }

// Reset clears everything for a new level
func (em *EnemyManager) Reset() {
	em.enemies = em.enemies[:0]
	em.boss = nil
	em.projectiles = em.projectiles[:0]
	em.spawnQueue = em.spawnQueue[:0]
	em.spawnTimer = 0
	em.bossSpawned = false
	em.bossDefeated = false
}
