package assets

import (
	"encoding/binary"
	"math"

	"github.com/uzimpp/elemental-dungeon-sub000/config"
)

// ToneSamples renders t as 16-bit little-endian stereo PCM at sampleRate,
// a sine with a linear fade out.
func ToneSamples(sampleRate int, t config.Tone) []byte {
	n := int(float64(sampleRate) * t.Length)
	if n <= 0 || t.Frequency <= 0 {
		return nil
	}
	buf := make([]byte, n*4)
	for i := 0; i < n; i++ {
		env := 1 - float64(i)/float64(n)
		v := math.Sin(2*math.Pi*t.Frequency*float64(i)/float64(sampleRate)) * env
		s := uint16(int16(v * math.MaxInt16 * 0.8))
		binary.LittleEndian.PutUint16(buf[i*4:], s)
		binary.LittleEndian.PutUint16(buf[i*4+2:], s)
	}
	return buf
}

// SFXBank caches rendered tones per sound.
type SFXBank struct {
	sampleRate int
	tones      map[config.SoundID]config.Tone
	cache      map[config.SoundID][]byte
}

func NewSFXBank(cfg config.AudioConfig) *SFXBank {
	return &SFXBank{
		sampleRate: cfg.SampleRate,
		tones:      cfg.Tones,
		cache:      map[config.SoundID][]byte{},
	}
}

// Samples returns the PCM for id, or nil when it has no tone.
func (b *SFXBank) Samples(id config.SoundID) []byte {
	if pcm, ok := b.cache[id]; ok {
		return pcm
	}
	t, ok := b.tones[id]
	if !ok {
		return nil
	}
	pcm := ToneSamples(b.sampleRate, t)
	b.cache[id] = pcm
	return pcm
}

// Preload renders every configured tone up front.
func (b *SFXBank) Preload() {
	for id := range b.tones {
		b.Samples(id)
	}
}
