package orbital

import (
	"fmt"
	"strings"
)

// SVG plot constants
const (
	trackStrokeColor      = "crimson"
	terminatorStrokeColor = "slateblue"
	satelliteFillColor    = "gold"
	backgroundColor       = "white"
	frameColor            = "dimgray"
	strokeWidth           = "1.5"
	markerBaseRadius      = 4.0
)

// OverlaySVG renders an overlay and the satellite view point as a standalone
// SVG document. It is a debugging/training aid, not the production renderer:
// the web canvas layer consumes the raw geometry instead. Invisible points
// split the polylines so backside orthographic samples and sinusoidal wraps
// do not draw spurious segments across the map.
func OverlaySVG(ov Overlay, vp ViewPoint, width, height float64) string {
	var b strings.Builder
	fmt.Fprintf(&b, `<svg width="%.0f" height="%.0f" xmlns="http://www.w3.org/2000/svg">`, width, height)
	fmt.Fprintf(&b, `<rect width="100%%" height="100%%" fill="%s"/>`, backgroundColor)
	fmt.Fprintf(&b, `<rect x="0.5" y="0.5" width="%.0f" height="%.0f" fill="none" stroke="%s"/>`, width-1, height-1, frameColor)

	writePolylines(&b, ov.Track, trackStrokeColor, width)
	writePolylines(&b, ov.Terminator, terminatorStrokeColor, width)

	if vp.Point.Visible {
		fmt.Fprintf(&b, `<circle cx="%.2f" cy="%.2f" r="%.2f" fill="%s" stroke="%s"/>`,
			vp.Point.X, vp.Point.Y, markerBaseRadius*maxf(vp.Point.Scale, 0.25), satelliteFillColor, frameColor)
	}
	fmt.Fprintf(&b, `<text x="8" y="%.0f" font-size="11" fill="%s">mode=%s blend=%.2f</text>`, height-8, frameColor, ov.Mode, ov.Blend)
	b.WriteString(`</svg>`)
	return b.String()
}

// writePolylines emits one <polyline> per visible run of points, breaking on
// invisible samples and on horizontal jumps wider than half the canvas,
// which is where a track wraps around the map edge.
func writePolylines(b *strings.Builder, pts []ScreenPoint, color string, width float64) {
	var run []ScreenPoint
	flush := func() {
		if len(run) >= 2 {
			b.WriteString(`<polyline fill="none" stroke="` + color + `" stroke-width="` + strokeWidth + `" points="`)
			for i, p := range run {
				if i > 0 {
					b.WriteByte(' ')
				}
				fmt.Fprintf(b, "%.2f,%.2f", p.X, p.Y)
			}
			b.WriteString(`"/>`)
		}
		run = run[:0]
	}
	for _, p := range pts {
		if !p.Visible {
			flush()
			continue
		}
		if len(run) > 0 && absf(p.X-run[len(run)-1].X) > width/2 {
			flush()
		}
		run = append(run, p)
	}
	flush()
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func absf(a float64) float64 {
	if a < 0 {
		return -a
	}
	return a
}
