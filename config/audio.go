package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	// Skill sounds
	SoundCast
	SoundSlash
	SoundProjectile
	SoundExplosion
	SoundSummon
	SoundHeal
	SoundChain
	// Combat sounds
	SoundHit
	SoundDeath
	SoundDash
	// Flow
	SoundWave
)

var soundNames = map[SoundID]string{
	SoundNone:       "none",
	SoundCast:       "cast",
	SoundSlash:      "slash",
	SoundProjectile: "projectile",
	SoundExplosion:  "explosion",
	SoundSummon:     "summon",
	SoundHeal:       "heal",
	SoundChain:      "chain",
	SoundHit:        "hit",
	SoundDeath:      "death",
	SoundDash:       "dash",
	SoundWave:       "wave",
}

func (s SoundID) String() string {
	if n, ok := soundNames[s]; ok {
		return n
	}
	return "unknown"
}

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate int     `yaml:"sampleRate"`
	SFXVolume  float64 `yaml:"sfxVolume"`
	// Tone is the synthesized pitch in Hz and length in seconds per sound.
	Tones map[SoundID]Tone `yaml:"-"`
}

type Tone struct {
	Frequency float64
	Length    float64
}

func defaultAudio() AudioConfig {
	return AudioConfig{
		SampleRate: 44100,
		SFXVolume:  0.4,
		Tones: map[SoundID]Tone{
			SoundCast:       {Frequency: 660, Length: 0.06},
			SoundSlash:      {Frequency: 220, Length: 0.08},
			SoundProjectile: {Frequency: 880, Length: 0.05},
			SoundExplosion:  {Frequency: 110, Length: 0.15},
			SoundSummon:     {Frequency: 330, Length: 0.12},
			SoundHeal:       {Frequency: 990, Length: 0.1},
			SoundChain:      {Frequency: 1320, Length: 0.05},
			SoundHit:        {Frequency: 160, Length: 0.04},
			SoundDeath:      {Frequency: 90, Length: 0.2},
			SoundDash:       {Frequency: 440, Length: 0.05},
			SoundWave:       {Frequency: 523, Length: 0.3},
		},
	}
}
