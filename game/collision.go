package game

// CheckCollisions resolves every contact for one tick: player projectiles
// against enemies and boss, hostile projectiles and bodies against the
// aircraft, and power-up pickups. Returns the pickup messages.
func CheckCollisions(aircraft *Aircraft, enemies *EnemyManager, powerups *PowerUpManager, particles *ParticleSystem, audio Audio) []string {
	weapons := aircraft.Weapons

	// Bullets vs enemies and boss
	for _, bullet := range weapons.Bullets() {
		if !bullet.active {
			continue
		}

		bulletRect := bullet.Rect()

		for _, enemy := range enemies.Enemies() {
			if !enemy.Active {
				continue
			}
			if bulletRect.intersects(enemy.Rect()) {
				destroyed := enemy.TakeDamage(bullet.damage)
				particles.CreateHitEffect(bullet.pos)
				bullet.active = false

				if destroyed {
					destroyEnemy(aircraft, powerups, particles, audio, enemy, 25, 50)
				}
				break
			}
		}

		if boss := enemies.Boss(); boss != nil && boss.Active && bullet.active {
			if bulletRect.intersects(boss.Rect()) {
				destroyed := boss.TakeDamage(bullet.damage)
				particles.CreateHitEffect(bullet.pos)
				bullet.active = false

				if destroyed {
					destroyBoss(aircraft, powerups, particles, audio, boss)
				}
			}
		}
	}

	// Missiles vs enemies and boss
	for _, missile := range weapons.Missiles() {
		if !missile.active {
			continue
		}

		missileRect := missile.Rect()

		for _, enemy := range enemies.Enemies() {
			if !enemy.Active {
				continue
			}
			if missileRect.intersects(enemy.Rect()) {
				destroyed := enemy.TakeDamage(missile.damage)
				particles.CreateExplosion(missile.pos, 12, 20, nil)
				audio.PlaySound(SoundExplosion)
				missile.active = false

				if destroyed {
					destroyEnemy(aircraft, powerups, particles, audio, enemy, 18, 35)
				}
				break
			}
		}

		if boss := enemies.Boss(); boss != nil && boss.Active && missile.active {
			if missileRect.intersects(boss.Rect()) {
				destroyed := boss.TakeDamage(missile.damage)
				particles.CreateExplosion(missile.pos, 15, 25, nil)
				audio.PlaySound(SoundExplosion)
				missile.active = false

				if destroyed {
					destroyBoss(aircraft, powerups, particles, audio, boss)
				}
			}
		}
	}

	// Lasers sweep everything in the beam; they never deactivate on contact
	for _, laser := range weapons.Lasers() {
		if !laser.active {
			continue
		}

		for _, enemy := range enemies.Enemies() {
			if !enemy.Active {
				continue
			}
			if damage := laser.DamageAt(enemy.Pos); damage > 0 {
				if enemy.TakeDamage(damage) {
					destroyEnemy(aircraft, powerups, particles, audio, enemy, 25, 50)
				}
			}
		}

		if boss := enemies.Boss(); boss != nil && boss.Active {
			if damage := laser.DamageAt(boss.Pos); damage > 0 {
				if boss.TakeDamage(damage) {
					destroyBoss(aircraft, powerups, particles, audio, boss)
				}
			}
		}
	}

	aircraftRect := aircraft.Rect()

	// Hostile projectiles vs aircraft
	for _, proj := range enemies.Projectiles() {
		if !proj.active {
			continue
		}
		if aircraftRect.intersects(proj.Rect()) {
			if aircraft.ShieldActive {
				aircraft.TakeShieldHit(8)
				particles.CreateShieldHit(proj.pos)
				audio.PlaySound(SoundShieldHit)
			} else {
				aircraft.TakeDamage(10)
				particles.CreateHitEffect(proj.pos)
				audio.PlaySound(SoundHit)
			}
			proj.active = false
		}
	}

	// Enemy bodies vs aircraft: both sides take damage
	for _, enemy := range enemies.Enemies() {
		if !enemy.Active {
			continue
		}
		if aircraftRect.intersects(enemy.Rect()) {
			if aircraft.ShieldActive {
				aircraft.TakeShieldHit(15)
				particles.CreateShieldHit(aircraft.Pos)
				audio.PlaySound(SoundShieldHit)
			} else {
				aircraft.TakeDamage(15)
				particles.CreateHitEffect(aircraft.Pos)
				audio.PlaySound(SoundHit)
			}

			enemy.TakeDamage(25)
			particles.CreateExplosion(enemy.Pos, 25, 50, nil)
		}
	}

	// Boss body vs aircraft: the boss shrugs it off
	if boss := enemies.Boss(); boss != nil && boss.Active {
		if aircraftRect.intersects(boss.Rect()) {
			if aircraft.ShieldActive {
				aircraft.TakeShieldHit(20)
				particles.CreateShieldHit(aircraft.Pos)
				audio.PlaySound(SoundShieldHit)
			} else {
				aircraft.TakeDamage(20)
				particles.CreateHitEffect(aircraft.Pos)
				audio.PlaySound(SoundHit)
			}
		}
	}

	messages := powerups.CheckCollection(aircraft)
	for range messages {
		particles.CreatePowerupCollect(aircraft.Pos)
	}

	return messages
}

// destroyEnemy awards score, explodes, and rolls a power-up drop
func destroyEnemy(aircraft *Aircraft, powerups *PowerUpManager, particles *ParticleSystem, audio Audio, enemy *Enemy, explosionSize float64, explosionCount int) {
	particles.CreateExplosion(enemy.Pos, explosionSize, explosionCount, nil)
	audio.PlaySound(SoundExplosion)
	aircraft.AddScore(enemy.ScoreValue)
	powerups.MaybeSpawnFromEnemy(enemy.Pos)
}

// destroyBoss awards score with the big chained explosion and the
// guaranteed power-up shower
func destroyBoss(aircraft *Aircraft, powerups *PowerUpManager, particles *ParticleSystem, audio Audio, boss *Boss) {
	for i := 0; i < 8; i++ {
		offset := vec2{float64(i)*30 - 120, float64(i%2)*40 - 20}
		particles.CreateExplosion(boss.Pos.add(offset), 25, 40, nil)
	}
	audio.PlaySound(SoundExplosion)
	aircraft.AddScore(boss.ScoreValue)
	powerups.SpawnFromBoss(boss.Pos)
}
