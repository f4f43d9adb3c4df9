package stats

import (
	"testing"

	"github.com/milk9111/spaceracer/sound"
)

func TestScoreAndExtraLives(t *testing.T) {
	snd := &sound.Recorder{}
	s := New(false, snd)
	if s.Lives() != StartingLives {
		t.Fatalf("expected %d lives, got %d", StartingLives, s.Lives())
	}

	for range 99 {
		s.AddScore(AsteroidHitPoints)
	}
	if s.Lives() != 3 || s.Score() != 9900 {
		t.Fatalf("unexpected stats %d/%d", s.Score(), s.Lives())
	}
	s.AddScore(LevelCompletePoints)
	if s.Lives() != 4 {
		t.Fatalf("crossing 10000 should grant a life, got %d", s.Lives())
	}
	if snd.Count(sound.ExtraLife) != 1 {
		t.Fatalf("expected extra life sound")
	}
	s.AddScore(100)
	if s.Lives() != 4 {
		t.Fatalf("no extra life inside the same band")
	}
}

func TestLoseLifeAndGameOver(t *testing.T) {
	s := New(false, nil)
	for range 5 {
		s.LoseLife()
	}
	if s.Lives() != 0 || !s.GameOver() {
		t.Fatalf("expected game over with 0 lives, got %d", s.Lives())
	}
	s.Reset()
	if s.GameOver() || s.Score() != 0 {
		t.Fatalf("reset should restore a fresh game")
	}
	if New(true, nil).Lives() != EasyStartingLives {
		t.Fatalf("easy mode lives")
	}
}

func TestText(t *testing.T) {
	cases := []struct {
		score int
		want  string
	}{
		{0, "Score: 0"},
		{999, "Score: 999"},
		{12000, "Score: 12,000"},
		{1234567, "Score: 1,234,567"},
	}
	for _, c := range cases {
		s := New(false, nil)
		s.score = c.score
		if got := s.ScoreText(); got != c.want {
			t.Fatalf("expected %q, got %q", c.want, got)
		}
	}
	if got := New(false, nil).LivesText(); got != "Lives: 3" {
		t.Fatalf("unexpected lives text %q", got)
	}
}
