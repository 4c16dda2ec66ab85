package grid

import "fmt"

// Anchor says where content sits inside its cell along one axis.
type Anchor uint8

const (
	AnchorFill     Anchor = iota // Stretch between the margins
	AnchorCenter                 // Centered between the margins
	AnchorLeading                // Against the leading margin (top or left)
	AnchorTrailing               // Against the trailing margin (bottom or right)
)

// String returns the anchor name.
func (a Anchor) String() string {
	switch a {
	case AnchorCenter:
		return "center"
	case AnchorLeading:
		return "leading"
	case AnchorTrailing:
		return "trailing"
	default:
		return "fill"
	}
}

// Alignment is an immutable alignment policy for one axis.
//
// Fill ignores Length and Auto. For the other anchors the content length is
// Length, or the content's measured length when Auto is set.
type Alignment struct {
	Anchor Anchor
	Auto   bool
	Length float64
}

// Fill stretches content to the cell minus margins.
func Fill() Alignment { return Alignment{Anchor: AnchorFill} }

// Center centers content of the given length.
func Center(length float64) Alignment { return Alignment{Anchor: AnchorCenter, Length: length} }

// CenterAuto centers content at its measured length.
func CenterAuto() Alignment { return Alignment{Anchor: AnchorCenter, Auto: true} }

// Leading places content of the given length against the top or left margin.
func Leading(length float64) Alignment { return Alignment{Anchor: AnchorLeading, Length: length} }

// LeadingAuto places content at its measured length against the top or left margin.
func LeadingAuto() Alignment { return Alignment{Anchor: AnchorLeading, Auto: true} }

// Trailing places content of the given length against the bottom or right margin.
func Trailing(length float64) Alignment { return Alignment{Anchor: AnchorTrailing, Length: length} }

// TrailingAuto places content at its measured length against the bottom or right margin.
func TrailingAuto() Alignment { return Alignment{Anchor: AnchorTrailing, Auto: true} }

// IsFill reports whether the alignment stretches content.
func (a Alignment) IsFill() bool { return a.Anchor == AnchorFill }

// IsFixed reports whether the content length is authored rather than measured.
func (a Alignment) IsFixed() bool { return a.Anchor != AnchorFill && !a.Auto }

// IsAuto reports whether the content length comes from measurement.
func (a Alignment) IsAuto() bool { return a.Anchor != AnchorFill && a.Auto }

// String formats the alignment the way layout documents spell it.
func (a Alignment) String() string {
	if a.IsFixed() {
		return fmt.Sprintf("%s:%g", a.Anchor, a.Length)
	}
	return a.Anchor.String()
}

// spacing derives the leading and trailing gaps between a content box and its
// cell along one axis. Margins are folded in, so for Fill the gaps equal the
// margins. Slack goes half to each side when centered, after the content when
// leading and before it when trailing.
func (a Alignment) spacing(cell, content float64, margin span) span {
	slack := cell - margin.sum() - content

	lead := margin.lead
	switch a.Anchor {
	case AnchorCenter:
		lead += slack / 2
	case AnchorTrailing:
		lead += slack
	}
	return span{lead: lead, trail: cell - lead - content}
}
