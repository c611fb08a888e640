// Package hiscore keeps the game's high score. Neither store promises
// durability: the firmware keeps it in RAM and the simulator writes a
// small JSON file.
package hiscore

// Volatile holds the score in memory; it is lost on reset
type Volatile struct {
	score uint32
}

func (v *Volatile) Load() (uint32, error) {
	return v.score, nil
}

func (v *Volatile) Save(score uint32) error {
	v.score = score
	return nil
}
