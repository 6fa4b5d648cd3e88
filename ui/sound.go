package ui

import (
	"encoding/binary"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	beepSampleRate = 44100
	beepFrequency  = 440
	beepSeconds    = 0.2
)

// Beeper plays a short tone. The zero value is silent.
type Beeper struct {
	sound rl.Sound
	ready bool
}

// NewBeeper opens the audio device; without one the beeper stays silent.
func NewBeeper() *Beeper {
	rl.InitAudioDevice()
	if !rl.IsAudioDeviceReady() {
		return &Beeper{}
	}

	samples := beepSamples()
	wave := rl.NewWave(uint32(len(samples)/2), beepSampleRate, 16, 1, samples)
	return &Beeper{
		sound: rl.LoadSoundFromWave(wave),
		ready: true,
	}
}

// beepSamples renders a mono 16-bit sine tone with a linear fade-out.
func beepSamples() []byte {
	n := int(beepSampleRate * beepSeconds)
	data := make([]byte, n*2)
	for i := 0; i < n; i++ {
		fade := 1 - float64(i)/float64(n)
		v := math.Sin(2*math.Pi*beepFrequency*float64(i)/beepSampleRate) * fade * 0.4
		binary.LittleEndian.PutUint16(data[i*2:], uint16(int16(v*math.MaxInt16)))
	}
	return data
}

func (b *Beeper) Beep() {
	if b == nil || !b.ready {
		return
	}
	rl.PlaySound(b.sound)
}

func (b *Beeper) Close() {
	if b == nil || !b.ready {
		return
	}
	rl.UnloadSound(b.sound)
	rl.CloseAudioDevice()
	b.ready = false
}
