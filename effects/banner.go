package effects

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Banner is a single line of text that fades out after being shown.
type Banner struct {
	text  string
	alpha float64
	tween *gween.Tween
}

// Show replaces the banner text and restarts the fade.
func (b *Banner) Show(text string, duration float64) {
	if duration < minDuration {
		duration = minDuration
	}
	b.text = text
	b.alpha = 1
	b.tween = gween.New(1, 0, float32(duration), ease.InQuad)
}

func (b *Banner) Update(dt float64) {
	if b.tween == nil {
		return
	}
	v, done := b.tween.Update(float32(dt))
	b.alpha = float64(v)
	if done {
		b.alpha = 0
		b.tween = nil
	}
}

// Visible reports the text and its opacity, false once faded.
func (b *Banner) Visible() (string, float64, bool) {
	return b.text, b.alpha, b.alpha > 0
}
