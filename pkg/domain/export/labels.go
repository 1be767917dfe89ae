package export

import (
	"fmt"
	"strings"

	kdb "github.com/AliRehmantechndev/EdgeMind-backend/pkg/db"
)

// classMapping maps class names to zero-based indexes, per the order of
// the dataset's class list. Stable only within one export.
type classMapping map[string]int

func newClassMapping(classes []kdb.AnnotationClass) classMapping {
	m := classMapping{}
	for nth, c := range classes {
		if _, ok := m[c.Name]; ok {
			continue
		}
		m[c.Name] = nth
	}
	return m
}

// IndexOf resolves a label to its class index.
//
// A label without a mapping entry resolves to 0, conflating "first
// class" and "unknown class". This silent fallback is inherited
// behavior; callers relying on index 0 being meaningful should define
// their first class accordingly.
func (m classMapping) IndexOf(label string) int {
	if idx, ok := m[label]; ok {
		return idx
	}
	return 0
}

// labelContent renders annotations of one image in detection-label
// format: one `<class> <cx> <cy> <w> <h>` line per box, center-relative
// and normalized by the reference dimensions. The reference is a fixed
// configured size, never the image's true dimensions.
func labelContent(annotations []kdb.Annotation, classes classMapping, refWidth int, refHeight int) string {
	lines := make([]string, len(annotations))
	for nth, anno := range annotations {
		g := anno.Geometry
		lines[nth] = fmt.Sprintf(
			"%d %.6f %.6f %.6f %.6f",
			classes.IndexOf(anno.Label),
			(g.X+g.Width/2)/float64(refWidth),
			(g.Y+g.Height/2)/float64(refHeight),
			g.Width/float64(refWidth),
			g.Height/float64(refHeight),
		)
	}
	return strings.Join(lines, "\n")
}

// labelFilename swaps the image extension for .txt, keeping the base name.
func labelFilename(imageFilename string) string {
	base := imageFilename
	if dot := strings.LastIndex(base, "."); 0 < dot {
		base = base[:dot]
	}
	return base + ".txt"
}
