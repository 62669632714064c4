package utils

import "time"

// Stats for performance monitoring
type Stats struct {
	GenerationsPerSecond float64
	AveragePopulation    float64
	TotalGenerations     int
	Population           int
	StartTime            time.Time
}

func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

// Update records one tick that took duration and left population cells alive
func (s *Stats) Update(generation int, population int, duration time.Duration) {
	s.TotalGenerations = generation
	s.Population = population
	if duration > 0 {
		s.GenerationsPerSecond = 1.0 / duration.Seconds()
	}

	// Simple moving average for population
	if s.AveragePopulation == 0 {
		s.AveragePopulation = float64(population)
	} else {
		s.AveragePopulation = (s.AveragePopulation * 0.9) + (float64(population) * 0.1)
	}
}

// Reset restarts the averages, keeping the start time
func (s *Stats) Reset() {
	s.GenerationsPerSecond = 0
	s.AveragePopulation = 0
	s.TotalGenerations = 0
	s.Population = 0
}

// Density returns the percentage of cells alive in a grid of the given size
func Density(population, cells int) float64 {
	if cells <= 0 {
		return 0
	}
	return float64(population) / float64(cells) * 100
}
