package main

import (
	"bytes"
	"errors"
	"io"
	"log"
	"math/rand/v2"
	"path"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	"github.com/milk9111/spaceracer/assets"
	"github.com/milk9111/spaceracer/common"
	"github.com/milk9111/spaceracer/sound"
)

const (
	sampleRate = 44100
	effectsDir = "snd"
	musicDir   = "mus"
)

// audioService plays sound effects and music from the asset directory.
// Missing files are silent.
type audioService struct {
	ctx *audio.Context
	dir string
	rng *rand.Rand

	// pcm caches decoded effects; a nil entry marks a file that failed.
	pcm map[string][]byte

	music    *audio.Player
	track    string
	fadeStep float64
}

func newAudio(dir string, seed uint64) *audioService {
	return &audioService{
		ctx: audio.NewContext(sampleRate),
		dir: dir,
		rng: rand.New(rand.NewPCG(seed, seed^0x5eed)),
		pcm: make(map[string][]byte),
	}
}

func (a *audioService) load(name string) []byte {
	if data, ok := a.pcm[name]; ok {
		return data
	}
	data, err := a.decodeWAV(path.Join(effectsDir, name))
	if err != nil {
		if !errors.Is(err, assets.ErrNotFound) {
			log.Printf("audio: %s: %v", name, err)
		}
		data = nil
	}
	a.pcm[name] = data
	return data
}

func (a *audioService) decodeWAV(file string) ([]byte, error) {
	raw, err := assets.LoadFile(a.dir, file)
	if err != nil {
		return nil, err
	}
	stream, err := wav.DecodeWithSampleRate(sampleRate, bytes.NewReader(raw))
	if err != nil {
		return nil, err
	}
	return io.ReadAll(stream)
}

// Play starts one of the effect's files picked at random.
func (a *audioService) Play(e sound.Effect) {
	clip, ok := sound.Clips[e]
	if !ok || len(clip.Files) == 0 {
		return
	}
	data := a.load(clip.Files[a.rng.IntN(len(clip.Files))])
	if data == nil {
		return
	}
	p := a.ctx.NewPlayerFromBytes(data)
	p.SetVolume(clip.Volume)
	p.Play()
}

// PlayMusic loops track, replacing the current one.
func (a *audioService) PlayMusic(track string) {
	if track == a.track && a.music != nil && a.fadeStep == 0 {
		if !a.music.IsPlaying() {
			a.music.Play()
		}
		return
	}
	a.stopMusic()
	if track == "" {
		return
	}

	raw, err := assets.LoadFile(a.dir, path.Join(musicDir, track))
	if err != nil {
		if !errors.Is(err, assets.ErrNotFound) {
			log.Printf("audio: %s: %v", track, err)
		}
		return
	}
	stream, err := vorbis.DecodeWithSampleRate(sampleRate, bytes.NewReader(raw))
	if err != nil {
		log.Printf("audio: decode %s: %v", track, err)
		return
	}
	p, err := a.ctx.NewPlayer(audio.NewInfiniteLoop(stream, stream.Length()))
	if err != nil {
		log.Printf("audio: play %s: %v", track, err)
		return
	}
	p.SetVolume(1)
	p.Play()
	a.music, a.track = p, track
}

// FadeOutMusic lowers the volume to silence over sound.MusicFadeOut.
func (a *audioService) FadeOutMusic() {
	if a.music == nil {
		return
	}
	ticks := sound.MusicFadeOut.Seconds() * common.FrameRate
	a.fadeStep = max(a.music.Volume()/ticks, 1e-3)
}

func (a *audioService) PauseMusic() {
	if a.music != nil {
		a.music.Pause()
	}
}

func (a *audioService) ResumeMusic() {
	if a.music != nil {
		a.music.Play()
	}
}

// Update runs a pending fade. It is called once per tick.
func (a *audioService) Update() {
	if a.music == nil || a.fadeStep == 0 {
		return
	}
	v := a.music.Volume() - a.fadeStep
	if v <= 0 {
		a.stopMusic()
		return
	}
	a.music.SetVolume(v)
}

func (a *audioService) stopMusic() {
	if a.music != nil {
		a.music.Pause()
		_ = a.music.Close()
	}
	a.music, a.track, a.fadeStep = nil, "", 0
}
