// Package telemetry persists episode and per-tick flight data to a
// local SQLite database so runs can be analyzed after the fact. The
// autopilot core never touches this package; the harness feeds it.
package telemetry

import (
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// flushThreshold is the number of buffered tick samples written per
// batch insert.
const flushThreshold = 256

// Recorder handles the telemetry database connection and buffering.
type Recorder struct {
	db  *gorm.DB
	buf []TickSample
}

// NewRecorder opens (or creates) the SQLite database at path and
// migrates the telemetry schema.
func NewRecorder(path string) (*Recorder, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open telemetry database: %w", err)
	}

	if err := db.AutoMigrate(&Episode{}, &TickSample{}, &PhaseChange{}); err != nil {
		return nil, fmt.Errorf("failed to migrate telemetry schema: %w", err)
	}

	return &Recorder{
		db:  db,
		buf: make([]TickSample, 0, flushThreshold),
	}, nil
}

// StartEpisode creates a new episode row and returns it for use with
// the per-tick recording calls.
func (r *Recorder) StartEpisode(landerID string, seed uint64) (*Episode, error) {
	ep := &Episode{
		StartedAt: time.Now(),
		LanderID:  landerID,
		Seed:      seed,
		Outcome:   "flying",
	}
	if err := r.db.Create(ep).Error; err != nil {
		return nil, fmt.Errorf("failed to create episode: %w", err)
	}
	return ep, nil
}

// RecordTick buffers one tick sample, flushing to the database once the
// buffer is full.
func (r *Recorder) RecordTick(ep *Episode, sample TickSample) error {
	sample.EpisodeID = ep.ID
	r.buf = append(r.buf, sample)
	if len(r.buf) < flushThreshold {
		return nil
	}
	return r.flush()
}

// RecordPhaseChange stores an autopilot phase transition.
func (r *Recorder) RecordPhaseChange(ep *Episode, tick uint64, from, to string) error {
	change := PhaseChange{
		EpisodeID: ep.ID,
		Tick:      tick,
		From:      from,
		To:        to,
	}
	if err := r.db.Create(&change).Error; err != nil {
		return fmt.Errorf("failed to record phase change: %w", err)
	}
	return nil
}

// FinishEpisode flushes buffered samples and writes the episode's
// outcome.
func (r *Recorder) FinishEpisode(ep *Episode, outcome string, ticks uint64, fuelRemaining float64) error {
	if err := r.flush(); err != nil {
		return err
	}
	ep.EndedAt = time.Now()
	ep.Outcome = outcome
	ep.Ticks = ticks
	ep.FuelRemaining = fuelRemaining
	if err := r.db.Save(ep).Error; err != nil {
		return fmt.Errorf("failed to finish episode: %w", err)
	}
	return nil
}

// Close flushes any remaining samples and closes the connection.
func (r *Recorder) Close() error {
	if err := r.flush(); err != nil {
		return err
	}
	sqlDB, err := r.db.DB()
	if err != nil {
		return fmt.Errorf("failed to access sql interface: %w", err)
	}
	return sqlDB.Close()
}

func (r *Recorder) flush() error {
	if len(r.buf) == 0 {
		return nil
	}
	if err := r.db.CreateInBatches(r.buf, flushThreshold).Error; err != nil {
		return fmt.Errorf("failed to flush tick samples: %w", err)
	}
	r.buf = r.buf[:0]
	return nil
}
