package game

// Wave is one spawn queue with its per-enemy spawn delay.
type Wave struct {
	Enemies []SpawnEntry
	Delay   float64
}

// LevelData describes a level: its waves and the boss that ends it.
type LevelData struct {
	Name       string
	Difficulty string
	Boss       BossType
	Waves      []Wave
}

// GetLevelData returns the configuration for a level number (1..3)
func GetLevelData(levelNum int) LevelData {
	switch levelNum {
	case 2:
		return level2Data()
	case 3:
		return level3Data()
	default:
		return level1Data()
	}
}

func level1Data() LevelData {
	return LevelData{
		Name:       "Level 1: Drone Scramble",
		Difficulty: "Easy",
		Boss:       BossHiveQueen,
		Waves: []Wave{
			{Delay: 1.5, Enemies: []SpawnEntry{
				{EnemyDrone, 150}, {EnemyDrone, 250}, {EnemyDrone, 350}, {EnemyDrone, 450},
			}},
			{Delay: 1.2, Enemies: []SpawnEntry{
				{EnemyDrone, 100}, {EnemyDrone, 200}, {EnemyDrone, 300}, {EnemyDrone, 400}, {EnemyDrone, 500},
			}},
			{Delay: 1.5, Enemies: []SpawnEntry{
				{EnemyDrone, 150}, {EnemyBomber, 250}, {EnemyDrone, 350}, {EnemyBomber, 450},
			}},
			{Delay: 1.0, Enemies: []SpawnEntry{
				{EnemyDrone, 100}, {EnemyDrone, 200}, {EnemyBomber, 300}, {EnemyDrone, 400}, {EnemyBomber, 500}, {EnemyDrone, 250},
			}},
			{Delay: 1.2, Enemies: []SpawnEntry{
				{EnemyBomber, 150}, {EnemyDrone, 200}, {EnemyDrone, 300}, {EnemyBomber, 400}, {EnemyDrone, 450},
			}},
		},
	}
}

func level2Data() LevelData {
	return LevelData{
		Name:       "Level 2: Stormfront Assault",
		Difficulty: "Medium",
		Boss:       BossAegisDefender,
		Waves: []Wave{
			{Delay: 1.2, Enemies: []SpawnEntry{
				{EnemyDrone, 120}, {EnemyBomber, 220}, {EnemyGunship, 300}, {EnemyBomber, 380}, {EnemyDrone, 480},
			}},
			{Delay: 1.5, Enemies: []SpawnEntry{
				{EnemyGunship, 150}, {EnemyDrone, 250}, {EnemyGunship, 350}, {EnemyDrone, 450},
			}},
			{Delay: 1.3, Enemies: []SpawnEntry{
				{EnemyElite, 200}, {EnemyBomber, 300}, {EnemyElite, 400}, {EnemyGunship, 250}, {EnemyGunship, 350},
			}},
			{Delay: 1.0, Enemies: []SpawnEntry{
				{EnemyDrone, 100}, {EnemyElite, 180}, {EnemyBomber, 260}, {EnemyGunship, 340}, {EnemyElite, 420}, {EnemyDrone, 500},
			}},
			{Delay: 1.1, Enemies: []SpawnEntry{
				{EnemyKamikaze, 150}, {EnemyKamikaze, 250}, {EnemyElite, 300}, {EnemyKamikaze, 350}, {EnemyKamikaze, 450},
			}},
			{Delay: 1.2, Enemies: []SpawnEntry{
				{EnemyElite, 120}, {EnemyGunship, 200}, {EnemyBomber, 280}, {EnemyGunship, 360}, {EnemyElite, 440},
			}},
		},
	}
}

func level3Data() LevelData {
	return LevelData{
		Name:       "Level 3: Final Showdown",
		Difficulty: "Hard",
		Boss:       BossFinalDestroyer,
		Waves: []Wave{
			{Delay: 0.9, Enemies: []SpawnEntry{
				{EnemyKamikaze, 100}, {EnemyElite, 180}, {EnemyGunship, 260}, {EnemyKamikaze, 340}, {EnemyElite, 420}, {EnemyKamikaze, 500},
			}},
			{Delay: 1.3, Enemies: []SpawnEntry{
				{EnemyElite, 150}, {EnemyElite, 250}, {EnemyElite, 350}, {EnemyElite, 450},
			}},
			{Delay: 0.8, Enemies: []SpawnEntry{
				{EnemyBomber, 120}, {EnemyGunship, 200}, {EnemyElite, 280}, {EnemyGunship, 360}, {EnemyBomber, 440}, {EnemyKamikaze, 300},
			}},
			{Delay: 0.7, Enemies: []SpawnEntry{
				{EnemyKamikaze, 150}, {EnemyKamikaze, 200}, {EnemyElite, 250}, {EnemyKamikaze, 300}, {EnemyKamikaze, 350}, {EnemyElite, 400}, {EnemyKamikaze, 450},
			}},
			{Delay: 0.9, Enemies: []SpawnEntry{
				{EnemyElite, 100}, {EnemyGunship, 170}, {EnemyBomber, 240}, {EnemyKamikaze, 280}, {EnemyElite, 340}, {EnemyGunship, 410}, {EnemyKamikaze, 480},
			}},
			{Delay: 1.0, Enemies: []SpawnEntry{
				{EnemyElite, 150}, {EnemyElite, 250}, {EnemyGunship, 200}, {EnemyGunship, 350}, {EnemyBomber, 300}, {EnemyKamikaze, 400},
			}},
			{Delay: 1.0, Enemies: []SpawnEntry{
				{EnemyElite, 180}, {EnemyElite, 280}, {EnemyElite, 380}, {EnemyKamikaze, 230}, {EnemyKamikaze, 330},
			}},
		},
	}
}

// LevelManager walks a level through its waves and boss. Waves hold until
// the previous one is fully cleared; the boss spawns after the last wave and
// the level completes when the boss is destroyed.
type LevelManager struct {
	CurrentLevel  int
	MaxLevels     int
	CurrentWave   int
	LevelComplete bool

	wavesStarted bool
	data         LevelData
}

// NewLevelManager creates a level manager loaded with the given level
func NewLevelManager(level int) *LevelManager {
	lm := &LevelManager{MaxLevels: 3}
	lm.LoadLevel(level)
	return lm
}

// LoadLevel resets progression to the start of a level
func (lm *LevelManager) LoadLevel(levelNum int) {
	lm.CurrentLevel = levelNum
	lm.CurrentWave = 0
	lm.LevelComplete = false
	lm.wavesStarted = false
	lm.data = GetLevelData(levelNum)
}

// Data returns the loaded level's configuration
func (lm *LevelManager) Data() LevelData { return lm.data }

// Update drives wave progression. Nothing spawns before takeoff.
func (lm *LevelManager) Update(dt float64, aircraft *Aircraft, enemies *EnemyManager) {
	if !aircraft.HasTakenOff {
		return
	}

	// First wave starts the moment the aircraft is airborne
	if !lm.wavesStarted {
		lm.wavesStarted = true
		if lm.CurrentWave < len(lm.data.Waves) {
			wave := lm.data.Waves[lm.CurrentWave]
			enemies.SetSpawnQueue(wave.Enemies, wave.Delay)
		}
	}

	// All waves done: boss, then completion once it falls
	if lm.CurrentWave >= len(lm.data.Waves) {
		if !enemies.BossSpawned() {
			enemies.SpawnBoss(lm.data.Boss)
		} else if enemies.BossDefeated() {
			lm.LevelComplete = true
		}
		return
	}

	if enemies.IsWaveComplete() {
		lm.CurrentWave++
		if lm.CurrentWave < len(lm.data.Waves) {
			wave := lm.data.Waves[lm.CurrentWave]
			enemies.SetSpawnQueue(wave.Enemies, wave.Delay)
		}
	}
}
