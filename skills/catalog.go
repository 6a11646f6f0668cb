package skills

import (
	"errors"
	"fmt"
	"io"
	"log"
	"sort"
	"strings"

	"github.com/uzimpp/elemental-dungeon-sub000/config"
	"gopkg.in/yaml.v3"
)

var (
	ErrUnknownSkill = errors.New("unknown skill")
	ErrDeckSize     = errors.New("wrong deck size")
)

// Row is one entry of the flat skill table.
type Row struct {
	Name        string  `yaml:"name"`
	Element     string  `yaml:"element"`
	SkillType   string  `yaml:"skill_type"`
	Damage      float64 `yaml:"damage"`
	Speed       float64 `yaml:"speed"`
	Radius      float64 `yaml:"radius"`
	Duration    float64 `yaml:"duration"`
	Pull        bool    `yaml:"pull"`
	HealAmount  float64 `yaml:"heal_amount"`
	HealSummons *bool   `yaml:"heal_summons"`
	ChainCount  int     `yaml:"chain_count"`
	Cooldown    float64 `yaml:"cooldown"`
	Description string  `yaml:"description"`
}

// Definition converts the row, rejecting unknown skill types.
func (r Row) Definition() (Definition, error) {
	archetype, err := ParseArchetype(r.SkillType)
	if err != nil {
		return Definition{}, err
	}
	healSummons := true
	if r.HealSummons != nil {
		healSummons = *r.HealSummons
	}
	return Definition{
		Name:        strings.TrimSpace(r.Name),
		Element:     config.ParseElement(r.Element),
		Archetype:   archetype,
		Damage:      r.Damage,
		Speed:       r.Speed,
		Radius:      r.Radius,
		Duration:    r.Duration,
		Pull:        r.Pull,
		HealAmount:  r.HealAmount,
		HealSummons: healSummons,
		ChainCount:  r.ChainCount,
		Cooldown:    r.Cooldown,
		Description: r.Description,
	}, nil
}

// Catalog holds every loadable skill keyed by name.
type Catalog struct {
	defs  map[string]Definition
	order []string
}

// NewCatalog builds a catalog from rows. Rows with an unknown skill type
// or no name are skipped with a warning.
func NewCatalog(rows []Row) *Catalog {
	c := &Catalog{defs: make(map[string]Definition, len(rows))}
	for _, r := range rows {
		def, err := r.Definition()
		if err != nil {
			log.Printf("Warning: skipping skill %q: %v", r.Name, err)
			continue
		}
		if def.Name == "" {
			log.Printf("Warning: skipping unnamed %s skill", def.Archetype)
			continue
		}
		if _, dup := c.defs[def.Name]; !dup {
			c.order = append(c.order, def.Name)
		}
		c.defs[def.Name] = def
	}
	return c
}

// LoadCatalog decodes a YAML list of rows.
func LoadCatalog(r io.Reader) (*Catalog, error) {
	var rows []Row
	if err := yaml.NewDecoder(r).Decode(&rows); err != nil {
		return nil, fmt.Errorf("decode skill catalog: %w", err)
	}
	return NewCatalog(rows), nil
}

func (c *Catalog) Get(name string) (Definition, bool) {
	def, ok := c.defs[name]
	return def, ok
}

// Names lists skills in table order.
func (c *Catalog) Names() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// ByArchetype groups names by archetype, each group sorted by name.
func (c *Catalog) ByArchetype() map[Archetype][]string {
	out := map[Archetype][]string{}
	for name, def := range c.defs {
		out[def.Archetype] = append(out[def.Archetype], name)
	}
	for _, names := range out {
		sort.Strings(names)
	}
	return out
}

func (c *Catalog) Len() int { return len(c.defs) }

// BuildDeck equips exactly size skills by name. Each slot gets its own
// cooldown clock even if a name repeats.
func BuildDeck(c *Catalog, names []string, size int) ([]*Skill, error) {
	if len(names) != size {
		return nil, fmt.Errorf("%w: want %d skills, got %d", ErrDeckSize, size, len(names))
	}
	deck := make([]*Skill, 0, size)
	for _, name := range names {
		def, ok := c.Get(name)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownSkill, name)
		}
		deck = append(deck, New(def))
	}
	return deck, nil
}

// SplitNames parses a comma separated deck list, dropping blanks.
func SplitNames(s string) []string {
	var names []string
	for _, n := range strings.Split(s, ",") {
		if n = strings.TrimSpace(n); n != "" {
			names = append(names, n)
		}
	}
	return names
}
