package rating

import "testing"

func newTestWidget(mutate func(*Config)) (*Widget, *[]float64) {
	var changes []float64
	cfg := DefaultConfig()
	cfg.OnRatingChanged = func(v float64) { changes = append(changes, v) }
	if mutate != nil {
		mutate(&cfg)
	}
	return New(cfg), &changes
}

func TestGlyphsPrefixFullThenAtMostOneHalf(t *testing.T) {
	for _, eff := range []float64{0, 0.5, 1, 1.5, 2, 2.5, 3, 3.5, 4, 4.5, 5} {
		w, _ := newTestWidget(func(c *Config) { c.DefaultValue = eff })
		glyphs := w.Glyphs()
		if len(glyphs) != 5 {
			t.Fatalf("glyph count = %d, want 5", len(glyphs))
		}
		seenNonFull := false
		halves := 0
		for i, g := range glyphs {
			if g == GlyphFull && seenNonFull {
				t.Fatalf("rating %v: star %d full after a non-full star (%v)", eff, i, glyphs)
			}
			if g != GlyphFull {
				seenNonFull = true
			}
			if g == GlyphHalf {
				halves++
			}
		}
		if halves > 1 {
			t.Fatalf("rating %v: %d half stars, want at most 1", eff, halves)
		}
	}
}

func TestGlyphAtRendersFullHalfEmpty(t *testing.T) {
	w, _ := newTestWidget(func(c *Config) { c.DefaultValue = 2.5 })
	want := []Glyph{GlyphFull, GlyphFull, GlyphHalf, GlyphEmpty, GlyphEmpty}
	for i, g := range w.Glyphs() {
		if g != want[i] {
			t.Fatalf("star %d = %s, want %s", i, g, want[i])
		}
	}
	if got := w.GlyphAt(-1); got != GlyphEmpty {
		t.Fatalf("GlyphAt(-1) = %s, want empty", got)
	}
	if got := w.GlyphAt(5); got != GlyphEmpty {
		t.Fatalf("GlyphAt(5) = %s, want empty", got)
	}
}

func TestActivateUnratedStarWholeStars(t *testing.T) {
	w, changes := newTestWidget(func(c *Config) { c.AllowHalfStars = false })
	if got := w.Activate(2); got != 3 {
		t.Fatalf("Activate(2) = %v, want 3", got)
	}
	if w.Rating() != 3 {
		t.Fatalf("rating = %v, want 3", w.Rating())
	}
	if len(*changes) != 1 || (*changes)[0] != 3 {
		t.Fatalf("changes = %v, want [3]", *changes)
	}
}

func TestActivateSameValueResets(t *testing.T) {
	w, changes := newTestWidget(nil)
	w.Activate(1)
	w.Activate(1)
	if w.Rating() != 0 {
		t.Fatalf("rating = %v, want 0", w.Rating())
	}
	if len(*changes) != 2 || (*changes)[1] != 0 {
		t.Fatalf("changes = %v, want [2 0]", *changes)
	}
}

func TestActivateSameValueWithoutResetKeepsValue(t *testing.T) {
	w, changes := newTestWidget(func(c *Config) { c.AllowResetOnReclick = false })
	w.Activate(3)
	w.Activate(3)
	if w.Rating() != 4 {
		t.Fatalf("rating = %v, want 4", w.Rating())
	}
	if len(*changes) != 2 || (*changes)[0] != 4 || (*changes)[1] != 4 {
		t.Fatalf("changes = %v, want [4 4]", *changes)
	}
}

func TestActivateOutOfRangeDoesNotFire(t *testing.T) {
	w, changes := newTestWidget(nil)
	w.Activate(-1)
	w.Activate(5)
	if len(*changes) != 0 {
		t.Fatalf("changes = %v, want none", *changes)
	}
}

func TestActivateNilCallback(t *testing.T) {
	cfg := DefaultConfig()
	w := New(cfg)
	if got := w.Activate(0); got != 1 {
		t.Fatalf("Activate(0) = %v, want 1", got)
	}
}

func TestHoverHalves(t *testing.T) {
	w, _ := newTestWidget(nil)

	w.HoverAt(2, 10, 48)
	if v, ok := w.Preview(); !ok || v != 2.5 {
		t.Fatalf("left-half preview = %v,%v, want 2.5,true", v, ok)
	}
	w.HoverAt(2, 30, 48)
	if v, ok := w.Preview(); !ok || v != 3 {
		t.Fatalf("right-half preview = %v,%v, want 3,true", v, ok)
	}
	if w.Effective() != 3 || w.Rating() != 0 {
		t.Fatalf("effective/rating = %v/%v, want 3/0", w.Effective(), w.Rating())
	}

	w.Leave()
	if _, ok := w.Preview(); ok {
		t.Fatalf("preview should be cleared after Leave")
	}
}

func TestHoverIgnoredWithoutHalfStars(t *testing.T) {
	w, _ := newTestWidget(func(c *Config) { c.AllowHalfStars = false })
	w.HoverAt(1, 1, 48)
	if _, ok := w.Preview(); ok {
		t.Fatalf("preview should stay absent with half stars disabled")
	}
}

func TestHoverIgnoresBadGeometry(t *testing.T) {
	w, _ := newTestWidget(nil)
	w.HoverAt(7, 1, 48)
	w.HoverAt(1, 1, 0)
	if _, ok := w.Preview(); ok {
		t.Fatalf("preview should stay absent for invalid hover")
	}
}

func TestActivateHalfPreviewCommitsHalf(t *testing.T) {
	w, changes := newTestWidget(nil)
	w.HoverAt(2, 1, 48)
	if got := w.CandidateValue(2); got != 2.5 {
		t.Fatalf("CandidateValue(2) = %v, want 2.5", got)
	}
	w.Activate(2)
	if w.Rating() != 2.5 {
		t.Fatalf("rating = %v, want 2.5", w.Rating())
	}

	// Same half position again resets.
	w.Activate(2)
	if w.Rating() != 0 {
		t.Fatalf("rating = %v, want 0 after re-click", w.Rating())
	}
	if len(*changes) != 2 {
		t.Fatalf("changes = %v, want 2 entries", *changes)
	}
}

func TestLabelUsesLabelsWhenCountMatches(t *testing.T) {
	w, _ := newTestWidget(func(c *Config) {
		c.MaxStars = 3
		c.Labels = []string{"Bad", "OK", "Great"}
		c.DefaultValue = 2
	})
	if got := w.Label(); got != "OK" {
		t.Fatalf("label = %q, want OK", got)
	}

	w.Leave()
	w.HoverAt(0, 1, 48)
	if got := w.Label(); got != "" {
		t.Fatalf("label at 0.5 = %q, want empty", got)
	}
}

func TestLabelFallsBackToNumber(t *testing.T) {
	tests := []struct {
		name   string
		labels []string
		value  float64
		want   string
	}{
		{name: "half", labels: []string{"a", "b"}, value: 2.5, want: "2.5"},
		{name: "whole", value: 3, want: "3"},
		{name: "zero", value: 0, want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, _ := newTestWidget(func(c *Config) {
				c.Labels = tt.labels
				c.DefaultValue = tt.value
			})
			if got := w.Label(); got != tt.want {
				t.Fatalf("label = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMountWithZeroDefault(t *testing.T) {
	w, changes := newTestWidget(nil)
	for i, g := range w.Glyphs() {
		if g != GlyphEmpty {
			t.Fatalf("star %d = %s, want empty", i, g)
		}
	}
	if w.Label() != "" {
		t.Fatalf("label = %q, want empty", w.Label())
	}
	if len(*changes) != 0 {
		t.Fatalf("mount fired callback: %v", *changes)
	}
}

func TestConfigIsCopied(t *testing.T) {
	labels := []string{"x", "y", "z", "w", "v"}
	cfg := DefaultConfig()
	cfg.Labels = labels
	w := New(cfg)
	labels[0] = "changed"
	if got := w.Config().Labels[0]; got != "x" {
		t.Fatalf("labels[0] = %q, want x", got)
	}
}

func TestParseAnimation(t *testing.T) {
	tests := []struct {
		in   string
		want Animation
		ok   bool
	}{
		{"", AnimationNone, true},
		{"Scale", AnimationScale, true},
		{" bounce ", AnimationBounce, true},
		{"rotate", AnimationRotate, true},
		{"spin", AnimationNone, false},
	}
	for _, tt := range tests {
		got, ok := ParseAnimation(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Fatalf("ParseAnimation(%q) = %q,%v, want %q,%v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestLabelWithoutStarsAndLabelsIsEmpty(t *testing.T) {
	w, _ := newTestWidget(func(c *Config) {
		c.MaxStars = 0
		c.DefaultValue = 2
	})
	if got := w.Label(); got != "" {
		t.Fatalf("label = %q, want empty", got)
	}
}
