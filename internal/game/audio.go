package game

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"
	"github.com/sirupsen/logrus"
)

// Sound asset names looked up as <name>.wav in the sound directory.
const (
	SoundStart       = "start"
	SoundWaka        = "waka"
	SoundDeath       = "death"
	SoundPowerPellet = "power_pellet"
	SoundEatGhost    = "eat_ghost"
	SoundGhostEyes   = "ghost_eyes"
	SoundEatFruit    = "eat_fruit"
)

const soundSampleRate = beep.SampleRate(44100)

// SoundBank plays the optional wav assets of the windowed build. Every
// file is optional: a missing or undecodable asset simply never plays,
// and when no asset loads at all the speaker is never initialised.
// All methods are safe on a bank with nothing loaded.
type SoundBank struct {
	ok      bool
	buffers map[string]*beep.Buffer

	// ghostCtrl holds the looped siren or power-pellet channel,
	// eyesCtrl the looped returning-eyes channel.
	ghostCtrl *beep.Ctrl
	eyesCtrl  *beep.Ctrl
}

// NewSoundBank loads wav assets from dir and initialises the speaker
// when at least one decodes.
func NewSoundBank(dir string) *SoundBank {
	sb := &SoundBank{buffers: make(map[string]*beep.Buffer)}

	names := []string{
		SoundStart, SoundWaka, SoundDeath, SoundPowerPellet,
		SoundEatGhost, SoundGhostEyes, SoundEatFruit,
	}
	for tier := 1; tier <= sirenTierCount; tier++ {
		names = append(names, sirenName(tier))
	}
	for _, name := range names {
		sb.load(dir, name)
	}
	if len(sb.buffers) == 0 {
		logrus.Infof("no sound assets under %s, running silent", dir)
		return sb
	}

	if err := speaker.Init(soundSampleRate, soundSampleRate.N(time.Second/10)); err != nil {
		logrus.Warnf("speaker init failed, running silent: %v", err)
		return sb
	}
	sb.ok = true
	return sb
}

func sirenName(tier int) string {
	return fmt.Sprintf("ghost%d", tier)
}

func (sb *SoundBank) load(dir, name string) {
	f, err := os.Open(filepath.Join(dir, name+".wav"))
	if err != nil {
		return
	}
	defer f.Close()

	streamer, format, err := wav.Decode(f)
	if err != nil {
		logrus.Warnf("skipping sound %s: %v", name, err)
		return
	}
	defer streamer.Close()

	buf := beep.NewBuffer(format)
	buf.Append(streamer)
	sb.buffers[name] = buf
}

// streamer returns a fresh playback streamer for a loaded asset,
// resampled to the speaker rate when the file rate differs.
func (sb *SoundBank) streamer(name string) (beep.Streamer, bool) {
	buf, found := sb.buffers[name]
	if !found {
		return nil, false
	}
	var s beep.Streamer = buf.Streamer(0, buf.Len())
	if buf.Format().SampleRate != soundSampleRate {
		s = beep.Resample(4, buf.Format().SampleRate, soundSampleRate, s)
	}
	return s, true
}

// Play fires a one-shot sound.
func (sb *SoundBank) Play(name string) {
	if !sb.ok {
		return
	}
	if s, found := sb.streamer(name); found {
		speaker.Play(s)
	}
}

// loop starts an endless loop of an asset and returns its control.
func (sb *SoundBank) loop(name string) *beep.Ctrl {
	buf, found := sb.buffers[name]
	if !found {
		return nil
	}
	var s beep.Streamer = beep.Loop(-1, buf.Streamer(0, buf.Len()))
	if buf.Format().SampleRate != soundSampleRate {
		s = beep.Resample(4, buf.Format().SampleRate, soundSampleRate, s)
	}
	ctrl := &beep.Ctrl{Streamer: s}
	speaker.Play(ctrl)
	return ctrl
}

func stopCtrl(ctrl *beep.Ctrl) {
	if ctrl == nil {
		return
	}
	speaker.Lock()
	ctrl.Streamer = nil
	speaker.Unlock()
}

// StartSiren switches the ghost channel to the siren loop for a ramp
// tier (1-based asset names, tier parameter 0-based).
func (sb *SoundBank) StartSiren(tier int) {
	if !sb.ok {
		return
	}
	stopCtrl(sb.ghostCtrl)
	sb.ghostCtrl = sb.loop(sirenName(tier + 1))
}

// StartPowerLoop switches the ghost channel to the power-pellet loop.
func (sb *SoundBank) StartPowerLoop() {
	if !sb.ok {
		return
	}
	stopCtrl(sb.ghostCtrl)
	sb.ghostCtrl = sb.loop(SoundPowerPellet)
}

// SetEyes starts or stops the returning-eyes loop.
func (sb *SoundBank) SetEyes(active bool) {
	if !sb.ok {
		return
	}
	if active && sb.eyesCtrl == nil {
		sb.eyesCtrl = sb.loop(SoundGhostEyes)
	}
	if !active && sb.eyesCtrl != nil {
		stopCtrl(sb.eyesCtrl)
		sb.eyesCtrl = nil
	}
}

// StopLoops silences both looped channels.
func (sb *SoundBank) StopLoops() {
	if !sb.ok {
		return
	}
	stopCtrl(sb.ghostCtrl)
	sb.ghostCtrl = nil
	sb.SetEyes(false)
}
