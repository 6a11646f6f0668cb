package fonts

import (
	"fmt"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

type FontName string

const (
	HUD      FontName = "hud"
	HUDSmall FontName = "hud-small"
	Title    FontName = "title"
	Bold     FontName = "bold"
)

func (f FontName) Get() font.Face {
	return getFont(f)
}

var (
	mu    sync.RWMutex
	fonts = map[FontName]font.Face{}
)

// LoadDefaults registers the bundled Go fonts under every FontName.
func LoadDefaults() error {
	for _, f := range []struct {
		name FontName
		ttf  []byte
		size float64
	}{
		{HUD, goregular.TTF, 14},
		{HUDSmall, goregular.TTF, 11},
		{Bold, gobold.TTF, 20},
		{Title, gobold.TTF, 36},
	} {
		if err := LoadFontWithSize(f.name, f.ttf, f.size); err != nil {
			return err
		}
	}
	return nil
}

func LoadFontWithSize(name FontName, ttf []byte, size float64) error {
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		return fmt.Errorf("parse font %s: %w", name, err)
	}
	mu.Lock()
	fonts[name] = truetype.NewFace(fontData, &truetype.Options{Size: size})
	mu.Unlock()
	return nil
}

func getFont(name FontName) font.Face {
	mu.RLock()
	f, ok := fonts[name]
	mu.RUnlock()
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}
