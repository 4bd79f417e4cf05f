package components

import (
	"math/rand"

	"github.com/yohamta/donburi"
)

// SpawnerData tracks procedural obstacle generation for the run.
type SpawnerData struct {
	Rand *rand.Rand
	// LastSpawnRow is the skier Y at the previous spawn roll.
	LastSpawnRow float64
}

var Spawner = donburi.NewComponentType[SpawnerData]()
