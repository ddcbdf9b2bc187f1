// Package model defines shared data structures.
package model

import "time"

// Config defines meter settings.
type Config struct {
	Reveal   bool
	Denylist string
	History  bool
	Color    bool
}

// GenerateConfig defines generator settings for the CLI.
type GenerateConfig struct {
	Count int
	Seed  int64
}

// HistoryConfig defines filters for history output.
type HistoryConfig struct {
	Since       *time.Time
	Last        int
	CurveWindow int
	Source      Source // empty matches every source
}

// Source tells how a recorded password was produced.
type Source string

// Recorded password origins.
const (
	SourceTyped     Source = "typed"
	SourceGenerated Source = "generated"
)

// HistoryEntry is a saved analysis. It never contains the password.
type HistoryEntry struct {
	ID          int64
	SessionID   string
	CreatedAt   time.Time
	Source      Source
	Length      int
	Score       int
	Strength    string
	Entropy     int
	Upper       int
	Lower       int
	Numbers     int
	Special     int
	HasSequence bool
	IsCommon    bool
}

// HistorySummary aggregates saved entries.
type HistorySummary struct {
	Count      int
	Sessions   int
	AvgScore   float64
	BestScore  int
	AvgEntropy float64
}
