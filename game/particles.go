package game

import (
	"image/color"
	"math"
	"math/rand"
)

// Particle is a single visual particle that shrinks as it burns out.
type Particle struct {
	pos         vec2
	vel         vec2
	color       color.NRGBA
	size        float64
	initialSize float64
	lifetime    float64
	maxLifetime float64
	active      bool
}

// Update moves the particle and shrinks it with remaining lifetime
func (p *Particle) Update(dt float64) {
	p.pos = p.pos.add(p.vel.scale(dt * 60))
	p.lifetime -= dt

	if p.lifetime <= 0 {
		p.active = false
	}

	p.size = p.initialSize * (p.lifetime / p.maxLifetime)
}

// ParticleSystem owns all visual particles and the effect emitters.
type ParticleSystem struct {
	particles []Particle
	rng       *rand.Rand
}

// NewParticleSystem creates an empty particle system
func NewParticleSystem(rng *rand.Rand) *ParticleSystem {
	return &ParticleSystem{rng: rng}
}

// Update advances all particles and compacts away dead ones
func (ps *ParticleSystem) Update(dt float64) {
	valid := ps.particles[:0]
	for i := range ps.particles {
		ps.particles[i].Update(dt)
		if ps.particles[i].active {
			valid = append(valid, ps.particles[i])
		}
	}
	ps.particles = valid
}

// Particles returns the live particles for drawing
func (ps *ParticleSystem) Particles() []Particle { return ps.particles }

// Count returns the number of live particles
func (ps *ParticleSystem) Count() int { return len(ps.particles) }

func (ps *ParticleSystem) emit(pos, vel vec2, c color.NRGBA, size, lifetime float64) {
	ps.particles = append(ps.particles, Particle{
		pos:         pos,
		vel:         vel,
		color:       c,
		size:        size,
		initialSize: size,
		lifetime:    lifetime,
		maxLifetime: lifetime,
		active:      true,
	})
}

var explosionColors = []color.NRGBA{
	{255, 220, 100, 255},
	{255, 180, 80, 255},
	{255, 120, 60, 255},
	{220, 100, 100, 255},
	{255, 80, 40, 255},
}

// CreateExplosion bursts particles in all directions
func (ps *ParticleSystem) CreateExplosion(pos vec2, size float64, count int, colors []color.NRGBA) {
	if colors == nil {
		colors = explosionColors
	}

	for i := 0; i < count; i++ {
		angle := ps.rng.Float64() * 2 * math.Pi
		speed := 3 + ps.rng.Float64()*9
		vel := vec2{math.Cos(angle) * speed, math.Sin(angle) * speed}

		c := colors[ps.rng.Intn(len(colors))]
		particleSize := size*0.8 + ps.rng.Float64()*size*1.2
		lifetime := 0.5 + ps.rng.Float64()*1.0

		ps.emit(pos, vel, c, particleSize, lifetime)
	}
}

// CreateHitEffect sparks where a projectile connects
func (ps *ParticleSystem) CreateHitEffect(pos vec2) {
	colors := []color.NRGBA{
		{255, 255, 150, 255},
		{255, 220, 120, 255},
		{255, 180, 80, 255},
	}
	ps.CreateExplosion(pos, 8, 20, colors)
}

// CreateShieldHit flashes blue where the shield absorbed a hit
func (ps *ParticleSystem) CreateShieldHit(pos vec2) {
	colors := []color.NRGBA{
		{120, 180, 255, 255},
		{170, 220, 255, 255},
		{220, 240, 255, 255},
	}

	for i := 0; i < 25; i++ {
		angle := ps.rng.Float64() * 2 * math.Pi
		speed := 5 + ps.rng.Float64()*10
		vel := vec2{math.Cos(angle) * speed, math.Sin(angle) * speed}

		c := colors[ps.rng.Intn(len(colors))]
		size := 3 + ps.rng.Float64()*5
		lifetime := 0.3 + ps.rng.Float64()*0.4

		ps.emit(pos, vel, c, size, lifetime)
	}
}

// CreateEngineTrail streams exhaust behind the aircraft, scaled by thrust
func (ps *ParticleSystem) CreateEngineTrail(pos vec2, directionAngle, thrust float64) {
	if thrust <= 0 {
		return
	}

	count := int(thrust / 25)
	if count < 1 {
		count = 1
	}

	for i := 0; i < count; i++ {
		angleOffset := ps.rng.Float64()*40 - 20
		angle := directionAngle + 180 + angleOffset
		speed := 1 + ps.rng.Float64()*2

		rad := degToRad(angle)
		vel := vec2{math.Cos(rad) * speed, -math.Sin(rad) * speed}

		c := color.NRGBA{
			R: uint8(math.Min(255, 200+thrust*0.5)),
			G: uint8(math.Min(255, 100+thrust*0.3)),
			B: 50,
			A: 255,
		}

		size := 2 + ps.rng.Float64()*2
		lifetime := 0.2 + ps.rng.Float64()*0.2

		ps.emit(pos, vel, c, size, lifetime)
	}
}

// CreatePowerupCollect bursts bright sparks at a pickup
func (ps *ParticleSystem) CreatePowerupCollect(pos vec2) {
	colors := []color.NRGBA{
		{255, 255, 100, 255},
		{100, 255, 255, 255},
		{255, 100, 255, 255},
	}

	for i := 0; i < 20; i++ {
		angle := ps.rng.Float64() * 2 * math.Pi
		speed := 3 + ps.rng.Float64()*5
		vel := vec2{math.Cos(angle) * speed, math.Sin(angle) * speed}

		c := colors[ps.rng.Intn(len(colors))]
		size := 3 + ps.rng.Float64()*3
		lifetime := 0.4 + ps.rng.Float64()*0.4

		ps.emit(pos, vel, c, size, lifetime)
	}
}

// CreateDamageSmoke trails gray smoke from a damaged aircraft. Emits only
// sometimes so the trail stays wispy.
func (ps *ParticleSystem) CreateDamageSmoke(pos vec2) {
	if ps.rng.Float64() >= 0.3 {
		return
	}

	gray := uint8(80 + ps.rng.Intn(41))
	c := color.NRGBA{gray, gray, gray, 255}

	vel := vec2{
		x: ps.rng.Float64()*2 - 1,
		y: -1 - ps.rng.Float64(),
	}
	size := 3 + ps.rng.Float64()*3
	lifetime := 0.8 + ps.rng.Float64()*0.7

	ps.emit(pos, vel, c, size, lifetime)
}
