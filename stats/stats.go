// Package stats keeps the player's score and lives.
package stats

import (
	"fmt"

	"github.com/milk9111/spaceracer/sound"
)

const (
	StartingLives     = 3
	EasyStartingLives = 30

	AsteroidHitPoints   = 100
	LevelCompletePoints = 2000
	ExtraLifePoints     = 10000
)

type Stats struct {
	score      int
	lives      int
	startLives int
	sounds     sound.Player
}

// New returns stats for a fresh game. Easy mode starts with
// EasyStartingLives.
func New(easy bool, sounds sound.Player) *Stats {
	s := &Stats{startLives: StartingLives, sounds: sound.OrNop(sounds)}
	if easy {
		s.startLives = EasyStartingLives
	}
	s.Reset()
	return s
}

func (s *Stats) Reset() {
	s.score = 0
	s.lives = s.startLives
}

func (s *Stats) Score() int { return s.score }
func (s *Stats) Lives() int { return s.lives }

// AddScore adds points and grants a life when the score crosses a multiple
// of ExtraLifePoints.
func (s *Stats) AddScore(points int) {
	next := s.score + points
	if next/ExtraLifePoints != s.score/ExtraLifePoints {
		s.lives++
		s.sounds.Play(sound.ExtraLife)
	}
	s.score = next
}

// LoseLife never drops below zero.
func (s *Stats) LoseLife() {
	if s.lives > 0 {
		s.lives--
	}
}

func (s *Stats) GameOver() bool { return s.lives <= 0 }

func (s *Stats) ScoreText() string { return "Score: " + groupThousands(s.score) }
func (s *Stats) LivesText() string { return fmt.Sprintf("Lives: %d", s.lives) }

func groupThousands(n int) string {
	sign := ""
	if n < 0 {
		sign, n = "-", -n
	}
	s := fmt.Sprint(n)
	for i := len(s) - 3; i > 0; i -= 3 {
		s = s[:i] + "," + s[i:]
	}
	return sign + s
}
