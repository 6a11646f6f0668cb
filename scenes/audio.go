package scenes

import (
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/uzimpp/elemental-dungeon-sub000/assets"
	cfg "github.com/uzimpp/elemental-dungeon-sub000/config"
)

// Global audio state - ebiten allows a single context per process
var (
	globalAudioContext *audio.Context
	globalSFXBank      *assets.SFXBank
	globalSFXVolume    float64
	audioInitOnce      sync.Once
)

func initGlobalAudio(conf cfg.AudioConfig) {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(conf.SampleRate)
		globalSFXBank = assets.NewSFXBank(conf)
		globalSFXVolume = conf.SFXVolume
	})
}

// preloadSFX renders every tone at startup to avoid lag on first play.
func preloadSFX(conf cfg.AudioConfig) {
	initGlobalAudio(conf)
	globalSFXBank.Preload()
}

func playSFX(id cfg.SoundID) {
	if globalAudioContext == nil || globalSFXVolume <= 0 {
		return
	}
	pcm := globalSFXBank.Samples(id)
	if len(pcm) == 0 {
		return
	}
	p := globalAudioContext.NewPlayerFromBytes(pcm)
	p.SetVolume(globalSFXVolume)
	p.Play()
}
