package config

// ScreenConfig is the arena and window size. The arena map may override
// the arena size at load time.
type ScreenConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	FPS    int    `yaml:"fps"`
	Title  string `yaml:"title"`
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	Name      string  `yaml:"name"`
	MaxHealth float64 `yaml:"maxHealth"`
	Radius    float64 `yaml:"radius"`

	// Movement, units per second
	WalkSpeed   float64 `yaml:"walkSpeed"`
	SprintSpeed float64 `yaml:"sprintSpeed"`
	// ActionSlowdown scales speed while casting or hurt.
	ActionSlowdown float64 `yaml:"actionSlowdown"`

	// Stamina
	MaxStamina      float64 `yaml:"maxStamina"`
	StaminaRegen    float64 `yaml:"staminaRegen"`
	SprintDrain     float64 `yaml:"sprintDrain"`
	DashCost        float64 `yaml:"dashCost"`
	DashDistance    float64 `yaml:"dashDistance"`
	StaminaCooldown float64 `yaml:"staminaCooldown"`

	SummonLimit int `yaml:"summonLimit"`
}

// EnemyConfig holds the wave-1 baseline enemy stats.
type EnemyConfig struct {
	BaseHealth     float64 `yaml:"baseHealth"`
	Speed          float64 `yaml:"speed"`
	Damage         float64 `yaml:"damage"`
	Radius         float64 `yaml:"radius"`
	AttackRadius   float64 `yaml:"attackRadius"`
	AttackCooldown float64 `yaml:"attackCooldown"`
}

// SummonConfig holds summon stats not carried by the skill definition.
type SummonConfig struct {
	MaxHealth      float64 `yaml:"maxHealth"`
	Radius         float64 `yaml:"radius"`
	AttackRadius   float64 `yaml:"attackRadius"`
	AttackCooldown float64 `yaml:"attackCooldown"`
}

type WaveConfig struct {
	BaseCount  int     `yaml:"baseCount"`
	Multiplier float64 `yaml:"multiplier"`
	// SpawnMargin keeps spawned enemies this far from the arena edge.
	SpawnMargin float64 `yaml:"spawnMargin"`
}

// SkillConfig holds the fixed geometry of skill activation.
type SkillConfig struct {
	DeckSize              int     `yaml:"deckSize"`
	ProjectileSpawnOffset float64 `yaml:"projectileSpawnOffset"`
	SummonSpawnOffset     float64 `yaml:"summonSpawnOffset"`
	ProjectileRadius      float64 `yaml:"projectileRadius"`
	// ProjectileHitSlack shrinks the contact distance so grazes do not count.
	ProjectileHitSlack float64 `yaml:"projectileHitSlack"`
	SlashHalfArc       float64 `yaml:"slashHalfArc"` // degrees
	ChainCount         int     `yaml:"chainCount"`
	PullStrength       float64 `yaml:"pullStrength"`
}

type SessionConfig struct {
	AppName string `yaml:"appName"`
}

type MetricsConfig struct {
	// Addr enables the /metrics endpoint when non-empty.
	Addr string `yaml:"addr"`
}

// SpaceConfig sizes the resolv broad-phase grid.
type SpaceConfig struct {
	CellSize int `yaml:"cellSize"`
}

type Config struct {
	Screen  ScreenConfig  `yaml:"screen"`
	Player  PlayerConfig  `yaml:"player"`
	Enemy   EnemyConfig   `yaml:"enemy"`
	Summon  SummonConfig  `yaml:"summon"`
	Wave    WaveConfig    `yaml:"wave"`
	Skill   SkillConfig   `yaml:"skill"`
	Audio   AudioConfig   `yaml:"audio"`
	Session SessionConfig `yaml:"session"`
	Metrics MetricsConfig `yaml:"metrics"`
	Space   SpaceConfig   `yaml:"space"`

	Animations AnimationTable `yaml:"-"`
}

const (
	spriteSize = 32
	renderSize = 64
)

// Default returns the stock tuning.
func Default() *Config {
	return &Config{
		Screen: ScreenConfig{
			Width:  1280,
			Height: 720,
			FPS:    60,
			Title:  "Elemental Dungeon",
		},
		Player: PlayerConfig{
			Name:            "Player",
			MaxHealth:       100,
			Radius:          renderSize / 3.0,
			WalkSpeed:       90,
			SprintSpeed:     180,
			ActionSlowdown:  0.5,
			MaxStamina:      100,
			StaminaRegen:    15,
			SprintDrain:     20,
			DashCost:        30,
			DashDistance:    128,
			StaminaCooldown: 2.5,
			SummonLimit:     5,
		},
		Enemy: EnemyConfig{
			BaseHealth:     50,
			Speed:          105,
			Damage:         5,
			Radius:         renderSize / 3.0,
			AttackRadius:   96,
			AttackCooldown: 1.25,
		},
		Summon: SummonConfig{
			MaxHealth:      50,
			Radius:         renderSize / 3.0,
			AttackRadius:   96,
			AttackCooldown: 1.25,
		},
		Wave: WaveConfig{
			BaseCount:   5,
			Multiplier:  0.1,
			SpawnMargin: 20,
		},
		Skill: SkillConfig{
			DeckSize:              4,
			ProjectileSpawnOffset: 30,
			SummonSpawnOffset:     40,
			ProjectileRadius:      5,
			ProjectileHitSlack:    2,
			SlashHalfArc:          30,
			ChainCount:            3,
			PullStrength:          48,
		},
		Audio:   defaultAudio(),
		Session: SessionConfig{AppName: "elemental_dungeon"},
		Space:   SpaceConfig{CellSize: spriteSize},

		Animations: DefaultAnimations(),
	}
}

// EnemyHealth is the per-enemy health for the given wave.
func (c *Config) EnemyHealth(wave int) float64 {
	return c.Enemy.BaseHealth * float64(wave) * c.Wave.Multiplier
}

// EnemyCount is the number of enemies spawned for the given wave.
func (c *Config) EnemyCount(wave int) int {
	return c.Wave.BaseCount + wave
}
