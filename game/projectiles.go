package game

import "math"

// Projectiles deactivate once they leave this margin around the screen.
const (
	offscreenMinX = -50.0
	offscreenMaxX = 850.0
	offscreenMinY = -50.0
	offscreenMaxY = 650.0
)

const (
	bulletSpeed   = 15.0
	bulletDamage  = 15.0
	bulletHitbox  = 8.0
	missileSpeed  = 12.0
	missileDamage = 40.0
	missileHitbox = 12.0

	enemyShotDamage = 8.0
	enemyShotHitbox = 14.0
)

// Target is anything a homing missile can lock onto.
type Target interface {
	TargetPos() vec2
	IsActive() bool
}

// Bullet is a straight-flying cannon round.
type Bullet struct {
	pos    vec2
	vel    vec2
	angle  float64 // degrees, 0 = right, positive = up
	damage float64
	active bool
}

// NewBullet creates a bullet at the given position flying along angle degrees
func NewBullet(pos vec2, angle float64) *Bullet {
	rad := degToRad(angle)
	return &Bullet{
		pos:    pos,
		vel:    vec2{math.Cos(rad) * bulletSpeed, -math.Sin(rad) * bulletSpeed},
		angle:  angle,
		damage: bulletDamage,
		active: true,
	}
}

// Update moves the bullet and deactivates it off screen
func (b *Bullet) Update(dt float64) {
	b.pos = b.pos.add(b.vel.scale(dt * 60))
	if b.pos.x < offscreenMinX || b.pos.x > offscreenMaxX ||
		b.pos.y < offscreenMinY || b.pos.y > offscreenMaxY {
		b.active = false
	}
}

// Rect returns the bullet's collision box
func (b *Bullet) Rect() rect {
	return rectAround(b.pos, bulletHitbox, bulletHitbox)
}

// HomingMissile tracks the nearest active target with a bounded turn rate.
type HomingMissile struct {
	pos      vec2
	vel      vec2
	angle    float64 // degrees, 0 = right, positive = up
	target   Target
	damage   float64
	active   bool
	lifetime float64
	turnRate float64 // degrees per tick
}

// NewHomingMissile creates a missile flying right with no target yet
func NewHomingMissile(pos vec2) *HomingMissile {
	return &HomingMissile{
		pos:      pos,
		vel:      vec2{10, 0},
		angle:    0,
		damage:   missileDamage,
		active:   true,
		lifetime: 6.0,
		turnRate: 3.0,
	}
}

// Update steers the missile toward its target and moves it. The targets slice
// is scanned for a replacement whenever the current target is gone.
func (m *HomingMissile) Update(dt float64, targets []Target) {
	m.lifetime -= dt
	if m.lifetime <= 0 {
		m.active = false
		return
	}

	if m.target == nil || !m.target.IsActive() {
		m.target = nearestTarget(m.pos, targets)
	}

	if m.target != nil && m.target.IsActive() {
		dir := m.target.TargetPos().add(m.pos.scale(-1))
		if dir.length() > 0 {
			targetAngle := math.Atan2(-dir.y, dir.x) * 180 / math.Pi

			// Shortest signed angle difference
			angleDiff := targetAngle - m.angle
			for angleDiff > 180 {
				angleDiff -= 360
			}
			for angleDiff < -180 {
				angleDiff += 360
			}

			if math.Abs(angleDiff) < m.turnRate {
				m.angle = targetAngle
			} else if angleDiff > 0 {
				m.angle += m.turnRate
			} else {
				m.angle -= m.turnRate
			}
		}
	}

	rad := degToRad(m.angle)
	m.vel = vec2{math.Cos(rad) * missileSpeed, -math.Sin(rad) * missileSpeed}
	m.pos = m.pos.add(m.vel.scale(dt * 60))

	if m.pos.x < offscreenMinX || m.pos.x > offscreenMaxX ||
		m.pos.y < offscreenMinY || m.pos.y > offscreenMaxY {
		m.active = false
	}
}

// nearestTarget returns the closest active target, or nil
func nearestTarget(pos vec2, targets []Target) Target {
	var nearest Target
	minDist := math.Inf(1)
	for _, t := range targets {
		if t == nil || !t.IsActive() {
			continue
		}
		d := t.TargetPos().add(pos.scale(-1)).length()
		if d < minDist {
			minDist = d
			nearest = t
		}
	}
	return nearest
}

// Rect returns the missile's collision box
func (m *HomingMissile) Rect() rect {
	return rectAround(m.pos, missileHitbox, missileHitbox)
}

// PlasmaLaser is a short-lived horizontal beam. It persists across collisions
// and deals contact damage per query instead of deactivating on hit.
type PlasmaLaser struct {
	pos      vec2
	charge   float64
	damage   float64
	width    float64
	active   bool
	lifetime float64
	alpha    float64 // 0..1 fade for drawing
}

// NewPlasmaLaser creates a beam at the given origin scaled by charge level
func NewPlasmaLaser(pos vec2, charge float64) *PlasmaLaser {
	c := math.Min(100, charge)
	return &PlasmaLaser{
		pos:      pos,
		charge:   c,
		damage:   c * 0.8,
		width:    10 + c*0.15,
		active:   true,
		lifetime: 0.6,
		alpha:    1,
	}
}

// Update ticks down the beam lifetime and fade
func (l *PlasmaLaser) Update(dt float64) {
	l.lifetime -= dt
	if l.lifetime <= 0 {
		l.active = false
	}
	l.alpha = math.Max(0, l.lifetime/0.6)
}

// DamageAt returns the contact damage for a position inside the beam, 0 outside
func (l *PlasmaLaser) DamageAt(pos vec2) float64 {
	if math.Abs(pos.y-l.pos.y) < l.width/2 && pos.x > l.pos.x {
		return l.damage * 0.02
	}
	return 0
}

// EnemyProjectile is a straight shot fired by enemies and bosses.
type EnemyProjectile struct {
	pos    vec2
	vel    vec2
	damage float64
	active bool
}

// NewEnemyProjectile creates an enemy shot with the given velocity
func NewEnemyProjectile(pos, vel vec2) *EnemyProjectile {
	return &EnemyProjectile{
		pos:    pos,
		vel:    vel,
		damage: enemyShotDamage,
		active: true,
	}
}

// newAimedProjectile creates a shot flying from pos toward target at speed
func newAimedProjectile(pos, target vec2, speed float64) *EnemyProjectile {
	dir := target.add(pos.scale(-1)).normalized()
	return NewEnemyProjectile(pos, dir.scale(speed))
}

// newAngledProjectile creates a shot along an angle in degrees (180 = left)
func newAngledProjectile(pos vec2, angle, speed float64) *EnemyProjectile {
	rad := degToRad(angle)
	return NewEnemyProjectile(pos, vec2{math.Cos(rad) * speed, math.Sin(rad) * speed})
}

// Update moves the projectile and deactivates it off screen
func (p *EnemyProjectile) Update(dt float64) {
	p.pos = p.pos.add(p.vel.scale(dt * 60))
	if p.pos.x < offscreenMinX || p.pos.x > offscreenMaxX ||
		p.pos.y < offscreenMinY || p.pos.y > offscreenMaxY {
		p.active = false
	}
}

// Rect returns the projectile's collision box
func (p *EnemyProjectile) Rect() rect {
	return rectAround(p.pos, enemyShotHitbox, enemyShotHitbox)
}
