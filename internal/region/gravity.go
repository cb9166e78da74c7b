package region

import (
	"fmt"
	"strings"
)

// Gravity anchors a region inside the original image along two independent
// axes. Horizontal and vertical flags may be or-ed together; an axis with no
// flag set is centered.
type Gravity uint8

const (
	// Unspecified sets no axis. Both axes are centered.
	Unspecified Gravity = 0

	Left             Gravity = 1 << 0
	Right            Gravity = 1 << 1
	CenterHorizontal Gravity = 1 << 2
	Top              Gravity = 1 << 3
	Bottom           Gravity = 1 << 4
	CenterVertical   Gravity = 1 << 5

	// Center centers on both axes.
	Center = CenterHorizontal | CenterVertical

	HorizontalMask = Left | Right | CenterHorizontal
	VerticalMask   = Top | Bottom | CenterVertical
)

var gravityNames = []struct {
	g    Gravity
	name string
}{
	{Left, "left"},
	{Right, "right"},
	{CenterHorizontal, "center_horizontal"},
	{Top, "top"},
	{Bottom, "bottom"},
	{CenterVertical, "center_vertical"},
}

// Horizontal returns only the horizontal flags of g.
func (g Gravity) Horizontal() Gravity { return g & HorizontalMask }

// Vertical returns only the vertical flags of g.
func (g Gravity) Vertical() Gravity { return g & VerticalMask }

// offsetX returns the left offset of a span that leaves space free pixels
// on the horizontal axis.
func (g Gravity) offsetX(space int) int {
	switch g.Horizontal() {
	case Left:
		return 0
	case Right:
		return space
	default:
		return space / 2
	}
}

// offsetY is the vertical counterpart of offsetX.
func (g Gravity) offsetY(space int) int {
	switch g.Vertical() {
	case Top:
		return 0
	case Bottom:
		return space
	default:
		return space / 2
	}
}

// String renders g as "|"-joined flag names, "center" or "unspecified".
func (g Gravity) String() string {
	switch g {
	case Unspecified:
		return "unspecified"
	case Center:
		return "center"
	}
	var parts []string
	for _, n := range gravityNames {
		if g&n.g != 0 {
			parts = append(parts, n.name)
		}
	}
	if len(parts) == 0 {
		return fmt.Sprintf("Gravity(%d)", uint8(g))
	}
	return strings.Join(parts, "|")
}

// ParseGravity parses a gravity description such as "center", "top",
// "left|bottom", "top-right" or "center_horizontal,bottom". Matching is
// case-insensitive. The empty string parses as Unspecified. A bare "center"
// combined with other names only fills the axes they leave unset, so
// "center-left" is Left|CenterVertical.
func ParseGravity(s string) (Gravity, error) {
	fields := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return r == '|' || r == ',' || r == '+' || r == ' '
	})

	var g Gravity
	center := false
	add := func(name string) bool {
		v, ok := lookupGravity(name)
		if !ok {
			return false
		}
		if v == Center {
			center = true
		} else {
			g |= v
		}
		return true
	}
	for _, f := range fields {
		f = strings.ReplaceAll(f, "_", "-")
		if add(f) {
			continue
		}
		// compound forms like "top-left"
		for _, part := range strings.Split(f, "-") {
			if !add(part) {
				return Unspecified, fmt.Errorf("unknown gravity %q", s)
			}
		}
	}
	if center {
		if g.Horizontal() == 0 {
			g |= CenterHorizontal
		}
		if g.Vertical() == 0 {
			g |= CenterVertical
		}
	}
	return g, nil
}

func lookupGravity(name string) (Gravity, bool) {
	switch name {
	case "left", "start":
		return Left, true
	case "right", "end":
		return Right, true
	case "top":
		return Top, true
	case "bottom":
		return Bottom, true
	case "center", "centre":
		return Center, true
	case "center-horizontal", "centerhorizontal":
		return CenterHorizontal, true
	case "center-vertical", "centervertical":
		return CenterVertical, true
	case "unspecified", "none":
		return Unspecified, true
	}
	return Unspecified, false
}
