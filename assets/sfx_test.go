package assets

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/uzimpp/elemental-dungeon-sub000/config"
)

func TestToneSamples(t *testing.T) {
	pcm := ToneSamples(1000, config.Tone{Frequency: 250, Length: 0.1})
	assert.Len(t, pcm, 100*4)

	// quarter period in: the peak of the sine, both channels equal
	left := int16(binary.LittleEndian.Uint16(pcm[1*4:]))
	right := int16(binary.LittleEndian.Uint16(pcm[1*4+2:]))
	assert.Equal(t, left, right)
	assert.Greater(t, left, int16(20000))

	assert.Nil(t, ToneSamples(1000, config.Tone{Frequency: 0, Length: 1}))
	assert.Nil(t, ToneSamples(1000, config.Tone{Frequency: 100, Length: 0}))
}

func TestSFXBankCaches(t *testing.T) {
	bank := NewSFXBank(config.Default().Audio)
	a := bank.Samples(config.SoundHit)
	assert.NotEmpty(t, a)
	b := bank.Samples(config.SoundHit)
	assert.Same(t, &a[0], &b[0])
	assert.Nil(t, bank.Samples(config.SoundNone))
}
