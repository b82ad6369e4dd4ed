package game

// Config holds game configuration constants
type Config struct {
	// ScreenWidth is the window width in pixels
	ScreenWidth int

	// ScreenHeight is the window height in pixels
	ScreenHeight int

	// GroundLevel is the Y coordinate of the runway surface
	GroundLevel float64

	// RunwayStartX and RunwayEndX bound the landing strip
	RunwayStartX float64
	RunwayEndX   float64

	// MinTakeoffSpeed is the horizontal speed needed to rotate off the runway
	MinTakeoffSpeed float64

	// MinTakeoffAngle is the pitch in degrees needed to rotate off the runway
	MinTakeoffAngle float64

	// MaxLandingSpeed is the largest vertical speed that still counts as a landing
	MaxLandingSpeed float64

	// MaxLandingAngle is the largest pitch in degrees that still counts as a landing
	MaxLandingAngle float64
}

// DefaultConfig returns a default configuration
func DefaultConfig() Config {
	return Config{
		ScreenWidth:     1000,
		ScreenHeight:    600,
		GroundLevel:     500,
		RunwayStartX:    50,
		RunwayEndX:      300,
		MinTakeoffSpeed: 3.5,
		MinTakeoffAngle: 15.0,
		MaxLandingSpeed: 3.0,
		MaxLandingAngle: 15.0,
	}
}
