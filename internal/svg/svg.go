// Package svg writes a rating.Widget as a standalone SVG document.
package svg

import (
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/google/uuid"

	"github.com/jask/starrating/internal/rating"
)

// StarPath is the 24x24 star outline shared by every glyph variant.
const StarPath = "M12 17.27l-5.18 3.73c-.68.49-1.6-.17-1.39-.95l1.64-6.36-4.9-4.24c-.61-.53-.28-1.54.52-1.63l6.56-.57 2.52-6.1c.3-.72 1.32-.72 1.62 0l2.52 6.1 6.56.57c.8.07 1.13 1.1.52 1.63l-4.9 4.24 1.64 6.36c.21.78-.71 1.44-1.39.95L12 17.27z"

const (
	starGapPx  = 4
	labelGapPx = 8
	labelScale = 1.5
	labelWidth = 0.6 // rough advance per character, in font-size units
)

const animationCSS = `.star{transform-box:fill-box;transform-origin:center}
.star.scale:hover{animation:star-scale .3s ease-in-out}
.star.rotate:hover{animation:star-rotate .5s ease-in-out}
.star.bounce:hover{animation:star-bounce .4s ease-in-out}
@keyframes star-scale{50%{transform:scale(1.2)}}
@keyframes star-rotate{to{transform:rotate(72deg)}}
@keyframes star-bounce{40%{transform:translateY(-15%)}70%{transform:translateY(-5%)}}`

// Render writes the widget's current state. Gradient ids are unique per call.
func Render(w io.Writer, wid *rating.Widget) error {
	cfg := wid.Config()
	size := cfg.StarSize
	gradientID := "half-" + uuid.NewString()
	label := wid.Label()
	fontSize := size / labelScale

	width := float64(max(cfg.MaxStars, 0))*(size+starGapPx) - starGapPx
	if width < 0 {
		width = 0
	}
	labelX := width + labelGapPx
	if label != "" {
		width = labelX + float64(len([]rune(label)))*fontSize*labelWidth
	}

	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%s" height="%s"`, num(width), num(size))
	if cfg.ContainerClass != "" {
		fmt.Fprintf(&b, ` class="%s"`, esc(cfg.ContainerClass))
	}
	b.WriteString(">\n")
	fmt.Fprintf(&b, "<style>%s</style>\n", animationCSS)

	for i, g := range wid.Glyphs() {
		x := float64(i) * (size + starGapPx)
		writeStar(&b, i, x, g, cfg, gradientID)
	}

	if label != "" {
		fmt.Fprintf(&b, `<text x="%s" y="%s" dominant-baseline="central" fill="%s" font-size="%s" font-weight="500">%s</text>`+"\n",
			num(labelX), num(size/2), esc(cfg.LabelColor), num(fontSize), esc(label))
	}
	b.WriteString("</svg>\n")

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("write svg: %w", err)
	}
	return nil
}

func writeStar(b *strings.Builder, i int, x float64, g rating.Glyph, cfg rating.Config, gradientID string) {
	color := esc(cfg.StarColor)
	fmt.Fprintf(b, `<svg x="%s" y="0" width="%s" height="%s" viewBox="0 0 24 24" class="star %s" role="button" tabindex="0" aria-label="star %d" data-glyph="%s">`,
		num(x), num(cfg.StarSize), num(cfg.StarSize), esc(string(cfg.Animation)), i+1, g)
	switch g {
	case rating.GlyphFull:
		fmt.Fprintf(b, `<path fill="%s" d="%s"/>`, color, StarPath)
	case rating.GlyphHalf:
		fmt.Fprintf(b, `<defs><linearGradient id="%s"><stop offset="50%%" stop-color="%s"/><stop offset="50%%" stop-color="transparent"/></linearGradient></defs>`,
			gradientID, color)
		fmt.Fprintf(b, `<path fill="url(#%s)" stroke="%s" stroke-width="2" d="%s"/>`, gradientID, color, StarPath)
	default:
		fmt.Fprintf(b, `<path fill="none" stroke="%s" stroke-width="2" d="%s"/>`, color, StarPath)
	}
	b.WriteString("</svg>\n")
}

func esc(s string) string { return html.EscapeString(s) }

func num(v float64) string { return rating.FormatValue(v) }
