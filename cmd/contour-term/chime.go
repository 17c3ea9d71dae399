package main

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(48000)

// chime plays a short sine tone whenever a block is touched.
type chime struct {
	length int
	volume float64
}

func newChime(length time.Duration, volume float64) (*chime, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return nil, err
	}
	return &chime{length: sampleRate.N(length), volume: volume}, nil
}

// Play queues one tone at freq Hz. A nil chime is silent.
func (c *chime) Play(freq float64) {
	if c == nil {
		return
	}
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return
	}
	speaker.Play(&effects.Volume{
		Streamer: beep.Take(c.length, sine),
		Base:     2,
		Volume:   c.volume,
	})
}

func (c *chime) Close() {
	if c == nil {
		return
	}
	speaker.Close()
}
