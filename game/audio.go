package game

// Sound names the game emits through the Audio interface.
const (
	SoundShoot           = "shoot"
	SoundMissile         = "missile"
	SoundLaser           = "laser"
	SoundExplosion       = "explosion"
	SoundPlayerExplosion = "player_explosion"
	SoundHit             = "hit"
	SoundPowerup         = "powerup"
	SoundShieldHit       = "shield_hit"
	SoundLevelComplete   = "level_complete"
	SoundGameOver        = "game_over"
	SoundShield          = "shield"
)

// Music track names.
const (
	MusicLevel = "level"
	MusicBoss  = "boss"
)

// Audio receives sound and music events from the simulation. Implementations
// own playback; the game never touches an audio device directly.
type Audio interface {
	PlaySound(name string)
	PlayMusic(track string)
	StopMusic()
}

// NopAudio discards all audio events.
type NopAudio struct{}

func (NopAudio) PlaySound(name string)  {}
func (NopAudio) PlayMusic(track string) {}
func (NopAudio) StopMusic()             {}
