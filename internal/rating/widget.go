// Package rating holds the star-rating control independent of any surface.
//
// A Widget owns its committed rating and the transient hover preview. Hosts
// (terminal, SVG) read glyphs and labels from it and forward pointer and
// keyboard activity to HoverAt, Leave and Activate.
package rating

import (
	"math"
	"slices"
	"strconv"
)

// Glyph is the fill state of a single star.
type Glyph int

const (
	GlyphEmpty Glyph = iota
	GlyphHalf
	GlyphFull
)

func (g Glyph) String() string {
	switch g {
	case GlyphFull:
		return "full"
	case GlyphHalf:
		return "half"
	default:
		return "empty"
	}
}

type Widget struct {
	cfg        Config
	committed  float64
	preview    float64
	previewing bool
}

func New(cfg Config) *Widget {
	cfg.Labels = slices.Clone(cfg.Labels)
	if cfg.Animation == "" {
		cfg.Animation = AnimationNone
	}
	return &Widget{cfg: cfg, committed: cfg.DefaultValue}
}

// Config returns a copy of the widget configuration.
func (w *Widget) Config() Config {
	cfg := w.cfg
	cfg.Labels = slices.Clone(w.cfg.Labels)
	return cfg
}

func (w *Widget) MaxStars() int { return w.cfg.MaxStars }

// Rating is the committed value.
func (w *Widget) Rating() float64 { return w.committed }

// Preview reports the hover preview, if any.
func (w *Widget) Preview() (float64, bool) {
	return w.preview, w.previewing
}

// Effective is the value currently on display: preview first, then committed.
func (w *Widget) Effective() float64 {
	if w.previewing {
		return w.preview
	}
	return w.committed
}

func (w *Widget) GlyphAt(i int) Glyph {
	if i < 0 || i >= w.cfg.MaxStars {
		return GlyphEmpty
	}
	eff := w.Effective()
	switch {
	case eff >= float64(i+1):
		return GlyphFull
	case eff == float64(i)+0.5:
		return GlyphHalf
	default:
		return GlyphEmpty
	}
}

func (w *Widget) Glyphs() []Glyph {
	if w.cfg.MaxStars <= 0 {
		return nil
	}
	out := make([]Glyph, w.cfg.MaxStars)
	for i := range out {
		out[i] = w.GlyphAt(i)
	}
	return out
}

// CandidateValue is the value star i commits when activated.
func (w *Widget) CandidateValue(i int) float64 {
	if w.GlyphAt(i) == GlyphHalf {
		return float64(i) + 0.5
	}
	return float64(i + 1)
}

// HoverAt previews the rating under a pointer sitting offset units into star
// i, whose box is width units wide. No-op unless half stars are allowed.
func (w *Widget) HoverAt(i int, offset, width float64) {
	if !w.cfg.AllowHalfStars || !w.inRange(i) || width <= 0 {
		return
	}
	if offset < width/2 {
		w.preview = float64(i) + 0.5
	} else {
		w.preview = float64(i + 1)
	}
	w.previewing = true
}

// Leave clears the hover preview.
func (w *Widget) Leave() {
	w.preview = 0
	w.previewing = false
}

// Activate commits star i and notifies OnRatingChanged exactly once.
// Re-activating the committed value resets to zero when AllowResetOnReclick
// is set. The returned value is the new committed rating.
func (w *Widget) Activate(i int) float64 {
	if !w.inRange(i) {
		return w.committed
	}
	v := w.CandidateValue(i)
	if w.cfg.AllowResetOnReclick && v == w.committed {
		v = 0
	}
	w.committed = v
	if w.cfg.OnRatingChanged != nil {
		w.cfg.OnRatingChanged(v)
	}
	return v
}

// Label is the text shown after the stars.
func (w *Widget) Label() string {
	eff := w.Effective()
	if len(w.cfg.Labels) == w.cfg.MaxStars {
		idx := int(math.Floor(eff)) - 1
		if idx < 0 || idx >= len(w.cfg.Labels) {
			return ""
		}
		return w.cfg.Labels[idx]
	}
	if eff == 0 {
		return ""
	}
	return FormatValue(eff)
}

// FormatValue renders a rating without trailing zeros ("2.5", "3").
func FormatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func (w *Widget) inRange(i int) bool {
	return i >= 0 && i < w.cfg.MaxStars
}
