package sdl

import (
	"fmt"

	"github.com/retroenv/retrogolib/log"
	"github.com/veandco/go-sdl2/sdl"
)

const (
	sampleRate    = 22050
	toneFrequency = 440
	// samples that are queued per call, one 60 Hz frame of sound
	samplesPerFrame = sampleRate / 60
)

// tone plays a square wave while the sound timer is running.
type tone struct {
	logger *log.Logger
	device sdl.AudioDeviceID
	frame  []byte
	failed bool // a queue error was logged
}

func openTone(logger *log.Logger) (*tone, error) {
	spec := &sdl.AudioSpec{
		Freq:     sampleRate,
		Format:   sdl.AUDIO_U8,
		Channels: 1,
		Samples:  512,
	}
	device, err := sdl.OpenAudioDevice("", false, spec, nil, 0)
	if err != nil {
		return nil, fmt.Errorf("opening audio device: %w", err)
	}

	return &tone{
		logger: logger,
		device: device,
		frame:  squareWave(samplesPerFrame, sampleRate/toneFrequency),
	}, nil
}

// squareWave returns n unsigned 8 bit samples of a square wave with the given period.
func squareWave(n, period int) []byte {
	samples := make([]byte, n)
	for i := range samples {
		if i%period < period/2 {
			samples[i] = 0xA0
		} else {
			samples[i] = 0x60
		}
	}
	return samples
}

func (t *tone) play(active bool) {
	if !active {
		sdl.ClearQueuedAudio(t.device)
		sdl.PauseAudioDevice(t.device, true)
		return
	}

	// keep about two frames queued to avoid gaps
	if sdl.GetQueuedAudioSize(t.device) < uint32(2*len(t.frame)) {
		if err := sdl.QueueAudio(t.device, t.frame); err != nil && !t.failed {
			t.failed = true
			t.logger.Warn("Queueing audio failed", log.Err(err))
		}
	}
	sdl.PauseAudioDevice(t.device, false)
}

func (t *tone) close() {
	sdl.CloseAudioDevice(t.device)
}
