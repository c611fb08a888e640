package game

// Tuning holds the gameplay constants that can be changed from the
// configuration file. Zero fields take their default. An AlienSpeed
// below TotalAliens is raised to TotalAliens, the lowest level baseline.
type Tuning struct {
	AlienSpeed      int `json:"alien_speed"`       // ticks between formation steps at level 1, lower is faster
	AlienStep       int `json:"alien_step"`        // pixels per horizontal step at the start of a wave
	AlienDrop       int `json:"alien_drop"`        // pixels dropped at an edge
	LevelDrop       int `json:"level_drop"`        // extra start depth per level
	LevelDropWrap   int `json:"level_drop_wrap"`   // start depth returns to the top every N levels
	LevelSpeedup    int `json:"level_speedup"`     // baseline speed gained per level
	BombChance      int `json:"bomb_chance"`       // 1 in N per tick, higher is rarer
	ErodeChance     int `json:"erode_chance"`      // neighbour pair survives 1 in N hits
	PenetrateChance int `json:"penetrate_chance"`  // projectile stops 1 in N hits
	MotherShipOdds  int `json:"mothership_chance"` // 1 in N per tick
	MotherShipSpeed int `json:"mothership_speed"`
	PlayerSpeed     int `json:"player_speed"`
	MissileSpeed    int `json:"missile_speed"`
	BombSpeed       int `json:"bomb_speed"`
	Lives           int `json:"lives"`
	StatusHoldMs    int `json:"status_hold_ms"`
	GameOverHoldMs  int `json:"game_over_hold_ms"`
	DeathPauseMs    int `json:"death_pause_ms"`
}

// DefaultTuning returns the stock game
func DefaultTuning() Tuning {
	return Tuning{
		AlienSpeed:      24,
		AlienStep:       1,
		AlienDrop:       4,
		LevelDrop:       4,
		LevelDropWrap:   4,
		LevelSpeedup:    1,
		BombChance:      80,
		ErodeChance:     20,
		PenetrateChance: 1,
		MotherShipOdds:  250,
		MotherShipSpeed: 2,
		PlayerSpeed:     2,
		MissileSpeed:    4,
		BombSpeed:       2,
		Lives:           3,
		StatusHoldMs:    2000,
		GameOverHoldMs:  3000,
		DeathPauseMs:    500,
	}
}

// WithDefaults fills every zero or negative field from DefaultTuning and
// clamps AlienSpeed to at least TotalAliens
func (t Tuning) WithDefaults() Tuning {
	d := DefaultTuning()
	fill := func(v *int, def int) {
		if *v <= 0 {
			*v = def
		}
	}
	fill(&t.AlienSpeed, d.AlienSpeed)
	if t.AlienSpeed < TotalAliens {
		t.AlienSpeed = TotalAliens
	}
	fill(&t.AlienStep, d.AlienStep)
	fill(&t.AlienDrop, d.AlienDrop)
	fill(&t.LevelDrop, d.LevelDrop)
	fill(&t.LevelDropWrap, d.LevelDropWrap)
	fill(&t.LevelSpeedup, d.LevelSpeedup)
	fill(&t.BombChance, d.BombChance)
	fill(&t.ErodeChance, d.ErodeChance)
	fill(&t.PenetrateChance, d.PenetrateChance)
	fill(&t.MotherShipOdds, d.MotherShipOdds)
	fill(&t.MotherShipSpeed, d.MotherShipSpeed)
	fill(&t.PlayerSpeed, d.PlayerSpeed)
	fill(&t.MissileSpeed, d.MissileSpeed)
	fill(&t.BombSpeed, d.BombSpeed)
	fill(&t.Lives, d.Lives)
	fill(&t.StatusHoldMs, d.StatusHoldMs)
	fill(&t.GameOverHoldMs, d.GameOverHoldMs)
	fill(&t.DeathPauseMs, d.DeathPauseMs)
	return t
}
