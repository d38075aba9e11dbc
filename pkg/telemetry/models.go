// pkg/telemetry/models.go
package telemetry

import "time"

// Episode is one recorded simulation episode.
type Episode struct {
	ID            uint `gorm:"primarykey"`
	StartedAt     time.Time
	EndedAt       time.Time
	LanderID      string
	Seed          uint64
	Outcome       string // flying, landed, crashed
	Ticks         uint64
	FuelRemaining float64
}

// TickSample is one tick of kinematics plus the controller's output.
type TickSample struct {
	ID        uint   `gorm:"primarykey"`
	EpisodeID uint   `gorm:"index"`
	Tick      uint64 `gorm:"index"`
	X         float64
	Y         float64
	VX        float64
	VY        float64
	Heading   float64
	Fuel      float64
	Phase     string
	Main      bool
	Left      bool
	Right     bool
}

// PhaseChange records an autopilot phase transition within an episode.
type PhaseChange struct {
	ID        uint `gorm:"primarykey"`
	EpisodeID uint `gorm:"index"`
	Tick      uint64
	From      string
	To        string
}
