package entity

import (
	"time"

	"github.com/dariubs/percent"
)

type PlayerStats struct {
	Name     string  `json:"name"`
	Shots    int     `json:"shots"`
	Hits     int     `json:"hits"`
	Accuracy float64 `json:"accuracy"`
}

func NewPlayerStats(name string, shots, hits int) PlayerStats {
	stats := PlayerStats{
		Name:  name,
		Shots: shots,
		Hits:  hits,
	}

	if shots > 0 {
		stats.Accuracy = percent.PercentOf(hits, shots)
	}

	return stats
}

type MatchResult struct {
	ID         string        `json:"id"`
	Winner     string        `json:"winner"`
	Loser      string        `json:"loser"`
	Turns      int           `json:"turns"`
	Players    []PlayerStats `json:"players"`
	FinishedAt time.Time     `json:"finished_at"`
}
