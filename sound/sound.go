// Package sound names the game's sound effects and music and the files that
// back them. Playback is done by the game binary; gameplay code only sees
// Player and Music.
package sound

import (
	"fmt"
	"time"
)

type Effect int

const (
	Explosion Effect = iota
	MultiExplosion
	Laser
	ExtraLife
)

func (e Effect) String() string {
	switch e {
	case Explosion:
		return "explosion"
	case MultiExplosion:
		return "multi_explosion"
	case Laser:
		return "laser"
	case ExtraLife:
		return "extra_life"
	}
	return fmt.Sprintf("effect(%d)", int(e))
}

// Clip lists the interchangeable files of an effect. One is picked at random
// on every play.
type Clip struct {
	Files  []string
	Volume float64
}

var Clips = map[Effect]Clip{
	Explosion: {
		Files:  []string{"explosion_01.wav", "explosion_02.wav", "explosion_03.wav", "explosion_04.wav"},
		Volume: 0.8,
	},
	MultiExplosion: {
		Files:  []string{"multi_explosion_01.wav", "multi_explosion_02.wav"},
		Volume: 0.8,
	},
	Laser: {
		Files:  []string{"laser_01.wav", "laser_02.wav", "laser_03.wav", "laser_04.wav"},
		Volume: 0.4,
	},
	ExtraLife: {
		Files:  []string{"extra_life.wav"},
		Volume: 1.0,
	},
}

type Player interface {
	Play(Effect)
}

// Nop discards every effect.
type Nop struct{}

func (Nop) Play(Effect) {}

// Recorder keeps the played effects in order.
type Recorder struct {
	Played []Effect
}

func (r *Recorder) Play(e Effect) { r.Played = append(r.Played, e) }

// Count returns how many times e was played.
func (r *Recorder) Count(e Effect) int {
	n := 0
	for _, p := range r.Played {
		if p == e {
			n++
		}
	}
	return n
}

// OrNop returns p, or Nop when p is nil.
func OrNop(p Player) Player {
	if p == nil {
		return Nop{}
	}
	return p
}

// MusicFadeOut is how long music takes to fade out.
const MusicFadeOut = 2 * time.Second

const (
	TitleMusic  = "title.ogg"
	EndingMusic = "ending.ogg"
)

// Music plays one looping background track at a time.
type Music interface {
	PlayMusic(track string)
	FadeOutMusic()
	PauseMusic()
	ResumeMusic()
}

// NopMusic is silent.
type NopMusic struct{}

func (NopMusic) PlayMusic(string) {}
func (NopMusic) FadeOutMusic()    {}
func (NopMusic) PauseMusic()      {}
func (NopMusic) ResumeMusic()     {}

// MusicLog records music calls as "play <track>", "fade", "pause" and
// "resume".
type MusicLog struct {
	Calls []string
}

func (m *MusicLog) PlayMusic(track string) { m.Calls = append(m.Calls, "play "+track) }
func (m *MusicLog) FadeOutMusic()          { m.Calls = append(m.Calls, "fade") }
func (m *MusicLog) PauseMusic()            { m.Calls = append(m.Calls, "pause") }
func (m *MusicLog) ResumeMusic()           { m.Calls = append(m.Calls, "resume") }

// Last returns the most recent call or "".
func (m *MusicLog) Last() string {
	if len(m.Calls) == 0 {
		return ""
	}
	return m.Calls[len(m.Calls)-1]
}
