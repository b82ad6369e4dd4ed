package game

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// hudFace is the bitmap font used for all HUD text.
var hudFace font.Face = basicfont.Face7x13

// skyColor fills the background each frame.
var skyColor = color.NRGBA{135, 206, 235, 255}

// drawRect draws a filled axis-aligned rectangle
func drawRect(dst *ebiten.Image, x, y, w, h float64, c color.Color) {
	vector.DrawFilledRect(dst, float32(x), float32(y), float32(w), float32(h), c, false)
}

// drawRectOutline draws a 1px rectangle border
func drawRectOutline(dst *ebiten.Image, x, y, w, h float64, c color.Color) {
	vector.StrokeRect(dst, float32(x), float32(y), float32(w), float32(h), 1, c, false)
}

// drawCircle draws a filled circle
func drawCircle(dst *ebiten.Image, x, y, r float64, c color.Color) {
	vector.DrawFilledCircle(dst, float32(x), float32(y), float32(r), c, false)
}

// drawCircleOutline draws a circle border with the given stroke width
func drawCircleOutline(dst *ebiten.Image, x, y, r, width float64, c color.Color) {
	vector.StrokeCircle(dst, float32(x), float32(y), float32(r), float32(width), c, false)
}

// drawLine draws a line segment
func drawLine(dst *ebiten.Image, x1, y1, x2, y2, width float64, c color.Color) {
	vector.StrokeLine(dst, float32(x1), float32(y1), float32(x2), float32(y2), float32(width), c, false)
}

// drawText draws HUD text at a position
func drawText(dst *ebiten.Image, s string, x, y int, c color.Color) {
	text.Draw(dst, s, hudFace, x, y, c)
}

// drawTextCentered draws HUD text centered on x
func drawTextCentered(dst *ebiten.Image, s string, x, y int, c color.Color) {
	bounds := text.BoundString(hudFace, s)
	drawText(dst, s, x-bounds.Dx()/2, y, c)
}

// drawTriangle draws a filled triangle through three points
func drawTriangle(dst *ebiten.Image, p1, p2, p3 vec2, c color.Color) {
	var path vector.Path
	path.MoveTo(float32(p1.x), float32(p1.y))
	path.LineTo(float32(p2.x), float32(p2.y))
	path.LineTo(float32(p3.x), float32(p3.y))
	path.Close()

	r, g, b, a := c.RGBA()
	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	for i := range vs {
		vs[i].ColorR = float32(r) / 0xffff
		vs[i].ColorG = float32(g) / 0xffff
		vs[i].ColorB = float32(b) / 0xffff
		vs[i].ColorA = float32(a) / 0xffff
	}
	dst.DrawTriangles(vs, is, whitePixel, &ebiten.DrawTrianglesOptions{AntiAlias: false})
}

var whitePixel = func() *ebiten.Image {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	return img.SubImage(img.Bounds().Inset(1)).(*ebiten.Image)
}()

// Draw renders the aircraft: hull triangle, shield ring, and the small
// health bar when damaged. Flickers while invulnerable.
func (a *Aircraft) Draw(screen *ebiten.Image, tick int) {
	if a.Invulnerable && (tick/6)%2 == 0 {
		return
	}

	// Hull as a right-pointing wedge, rotated by pitch (screen y is down,
	// so nose-up pitch rotates counterclockwise)
	rad := -degToRad(a.Angle)
	nose := a.Pos.add(rotatePoint(vec2{55, 0}, rad))
	topBack := a.Pos.add(rotatePoint(vec2{-55, -22}, rad))
	bottomBack := a.Pos.add(rotatePoint(vec2{-55, 22}, rad))

	hull := color.NRGBA{0, 150, 255, 255}
	if a.Health < 30 {
		hull = color.NRGBA{180, 80, 60, 255}
	}
	drawTriangle(screen, nose, topBack, bottomBack, hull)

	if a.GearDown {
		drawRect(screen, a.Pos.x-20, a.Pos.y+20, 6, 12, color.NRGBA{80, 80, 80, 255})
		drawRect(screen, a.Pos.x+14, a.Pos.y+20, 6, 12, color.NRGBA{80, 80, 80, 255})
	}

	if a.ShieldActive {
		alpha := uint8(100 + 50*math.Sin(float64(tick)*0.15))
		drawCircleOutline(screen, a.Pos.x, a.Pos.y, aircraftHitbox/2, 3,
			color.NRGBA{100, 150, 255, alpha})
	}

	if a.Health < a.MaxHealth {
		barW, barH := 40.0, 4.0
		barX := a.Pos.x - barW/2
		barY := a.Pos.y - aircraftHitbox/2 - 10

		drawRect(screen, barX, barY, barW, barH, color.NRGBA{100, 100, 100, 255})
		c := color.NRGBA{0, 255, 0, 255}
		if a.Health <= 25 {
			c = color.NRGBA{255, 0, 0, 255}
		} else if a.Health <= 50 {
			c = color.NRGBA{255, 255, 0, 255}
		}
		drawRect(screen, barX, barY, barW*(a.Health/a.MaxHealth), barH, c)
	}
}

// Draw renders a cannon round
func (b *Bullet) Draw(screen *ebiten.Image) {
	drawRect(screen, b.pos.x-8, b.pos.y-3, 16, 6, color.NRGBA{0, 255, 100, 255})
}

// Draw renders a homing missile with its exhaust dots
func (m *HomingMissile) Draw(screen *ebiten.Image) {
	drawRect(screen, m.pos.x-10, m.pos.y-4, 20, 8, color.NRGBA{255, 50, 50, 255})

	rad := degToRad(m.angle)
	for i := 0; i < 3; i++ {
		offset := rotatePoint(vec2{-15 - float64(i)*5, 0}, -rad)
		p := m.pos.add(offset)
		c := color.NRGBA{255, uint8(200 - i*50), uint8(100 - i*30), 255}
		drawCircle(screen, p.x, p.y, float64(3-i), c)
	}
}

// Draw renders the laser beam as layered horizontal strokes
func (l *PlasmaLaser) Draw(screen *ebiten.Image) {
	layers := []struct {
		widthScale float64
		c          color.NRGBA
	}{
		{1.8, color.NRGBA{100, 200, 255, uint8(255 * l.alpha)}},
		{1.2, color.NRGBA{150, 220, 255, uint8(127 * l.alpha)}},
		{0.6, color.NRGBA{200, 240, 255, uint8(85 * l.alpha)}},
	}
	for _, layer := range layers {
		drawLine(screen, l.pos.x, l.pos.y, 850, l.pos.y, l.width*layer.widthScale, layer.c)
	}
}

// Draw renders an enemy shot
func (p *EnemyProjectile) Draw(screen *ebiten.Image) {
	drawRect(screen, p.pos.x-7, p.pos.y-7, 14, 14, color.NRGBA{255, 80, 80, 255})
}

var enemyColors = map[EnemyType]color.NRGBA{
	EnemyDrone:    {255, 100, 100, 255},
	EnemyBomber:   {100, 100, 255, 255},
	EnemyGunship:  {100, 255, 100, 255},
	EnemyElite:    {255, 100, 255, 255},
	EnemyKamikaze: {255, 50, 50, 255},
}

// Draw renders an enemy and its health bar once damaged
func (e *Enemy) Draw(screen *ebiten.Image) {
	if !e.Active {
		return
	}

	c := enemyColors[e.Type]
	half := e.Size / 2
	drawTriangle(screen,
		vec2{e.Pos.x - half, e.Pos.y},
		vec2{e.Pos.x + half, e.Pos.y - half*0.6},
		vec2{e.Pos.x + half, e.Pos.y + half*0.6},
		c)

	if e.Health < e.MaxHealth {
		barW, barH := 30.0, 3.0
		barX := e.Pos.x - barW/2
		barY := e.Pos.y - e.Size/2 - 8

		drawRect(screen, barX, barY, barW, barH, color.NRGBA{100, 100, 100, 255})
		drawRect(screen, barX, barY, barW*(e.Health/e.MaxHealth), barH, color.NRGBA{255, 0, 0, 255})
	}
}

// Draw renders the boss. Flickers during phase transitions.
func (b *Boss) Draw(screen *ebiten.Image) {
	if !b.Active {
		return
	}

	if b.transitionTimer > 0 && int(b.transitionTimer*10)%2 == 0 {
		return
	}

	drawCircle(screen, b.Pos.x, b.Pos.y, b.Size/2, color.NRGBA{200, 50, 200, 255})
	drawCircleOutline(screen, b.Pos.x, b.Pos.y, b.Size/2, 3, color.NRGBA{255, 120, 255, 255})
}

// DrawHealthBar renders the boss health bar and phase label at the top
func (b *Boss) DrawHealthBar(screen *ebiten.Image, screenWidth int) {
	if !b.Active {
		return
	}

	barW, barH := 200.0, 15.0
	barX := float64(screenWidth)/2 - barW/2
	barY := 30.0

	drawRect(screen, barX-2, barY-2, barW+4, barH+4, color.NRGBA{50, 50, 50, 255})
	drawRect(screen, barX, barY, barW, barH, color.NRGBA{100, 100, 100, 255})

	c := color.NRGBA{255, 200, 0, 255}
	if b.Phase == 3 {
		c = color.NRGBA{255, 0, 0, 255}
	} else if b.Phase == 2 {
		c = color.NRGBA{255, 100, 0, 255}
	}
	drawRect(screen, barX, barY, barW*(b.Health/b.MaxHealth), barH, c)

	drawText(screen, fmt.Sprintf("PHASE %d/3", b.Phase), int(barX+barW)+10, int(barY)+12, color.White)
}

var powerUpColors = map[PowerUpType]color.NRGBA{
	PowerUpHealth:        {0, 255, 0, 255},
	PowerUpWeaponUpgrade: {255, 255, 0, 255},
	PowerUpMissiles:      {255, 100, 0, 255},
	PowerUpShield:        {100, 150, 255, 255},
	PowerUpScore:         {255, 215, 0, 255},
}

var powerUpLabels = map[PowerUpType]string{
	PowerUpHealth:        "HP",
	PowerUpWeaponUpgrade: "PWR",
	PowerUpMissiles:      "MSL",
	PowerUpShield:        "SHD",
	PowerUpScore:         "PTS",
}

// Draw renders a power-up with its label
func (p *PowerUp) Draw(screen *ebiten.Image) {
	if !p.Active {
		return
	}
	drawCircle(screen, p.Pos.x, p.Pos.y, powerUpSize/2, powerUpColors[p.Type])
	drawTextCentered(screen, powerUpLabels[p.Type], int(p.Pos.x), int(p.Pos.y+powerUpSize/2+12), color.White)
}

// Draw renders all live particles
func (ps *ParticleSystem) Draw(screen *ebiten.Image) {
	for i := range ps.particles {
		p := &ps.particles[i]
		if p.size > 0.5 {
			drawCircle(screen, p.pos.x, p.pos.y, p.size, p.color)
		}
	}
}

// Draw renders enemies, the boss, and hostile projectiles
func (em *EnemyManager) Draw(screen *ebiten.Image) {
	for _, enemy := range em.enemies {
		enemy.Draw(screen)
	}
	if em.boss != nil {
		em.boss.Draw(screen)
	}
	for _, proj := range em.projectiles {
		proj.Draw(screen)
	}
}

// Draw renders all live power-ups
func (pm *PowerUpManager) Draw(screen *ebiten.Image) {
	for _, p := range pm.powerups {
		p.Draw(screen)
	}
}

// Draw renders all live player projectiles, beams first
func (w *WeaponSystem) Draw(screen *ebiten.Image) {
	for _, l := range w.lasers {
		l.Draw(screen)
	}
	for _, b := range w.bullets {
		b.Draw(screen)
	}
	for _, m := range w.missiles {
		m.Draw(screen)
	}
}
