package grid

import (
	"github.com/grindlemire/go-grid/internal/layout"
)

// pass is the scratch record of one resolution over a grid's items. Layout
// and fitting queries each build their own; nothing here outlives the call.
type pass struct {
	g           *Grid
	orientation Orientation

	boundsP float64
	boundsO float64

	// totalFixed accumulates fixed lengths, then resolved intrinsic lengths
	// in item order.
	totalFixed  float64
	totalWeight float64
	multiplier  float64

	resolved []resolution
}

// resolution is one item's resolved cell and content lengths plus the
// spacing derived from them.
type resolution struct {
	ok bool

	cellP, cellO       float64
	contentP, contentO float64

	spacingP, spacingO span
}

func (g *Grid) newPass(bounds Size) *pass {
	return &pass{
		g:           g,
		orientation: g.orientation,
		boundsP:     g.orientation.primary(bounds),
		boundsO:     g.orientation.orthogonal(bounds),
		resolved:    make([]resolution, len(g.items)),
	}
}

// resolve sizes every item. Fixed lengths and expansion weights are summed
// first; intrinsic items are then resolved in order, each folded into the
// fixed total; expanding items are resolved last against the complete total.
func (p *pass) resolve() {
	expanding := 0
	for _, it := range p.g.items {
		switch it.sizer.kind() {
		case SizingFixed:
			p.totalFixed += p.length(it)
		case SizingExpanding:
			p.totalWeight += p.weight(it)
			expanding++
		}
	}

	for i, it := range p.g.items {
		if it.sizer.kind() != SizingIntrinsic {
			continue
		}
		p.resolved[i] = p.resolveItem(it)
		p.totalFixed += p.resolved[i].cellP
	}

	p.multiplier = p.expansionMultiplier(expanding)

	for i, it := range p.g.items {
		if !p.resolved[i].ok {
			p.resolved[i] = p.resolveItem(it)
		}
	}
}

func (p *pass) resolveItem(it *Item) resolution {
	marginP, marginO := p.orientation.split(it.margin)
	alignP, alignO := it.alignments(p.orientation)

	contentO := p.orthogonal(it, marginO, it.sizer.estimate(it, p, marginP))
	cellP, contentP := it.sizer.primary(it, p, marginP, contentO)

	cellO := p.boundsO
	if !layout.Bounded(cellO) {
		cellO = contentO + marginO.sum()
	}

	return resolution{
		ok:       true,
		cellP:    cellP,
		cellO:    cellO,
		contentP: contentP,
		contentO: contentO,
		spacingP: alignP.spacing(cellP, contentP, marginP),
		spacingO: alignO.spacing(cellO, contentO, marginO),
	}
}

// expansionMultiplier is the leftover primary space per unit of weight.
func (p *pass) expansionMultiplier(expanding int) float64 {
	if expanding == 0 {
		return 0
	}
	if p.totalWeight <= 0 {
		p.g.log().Warn("grid: expanding items with zero total weight",
			"grid", p.g.name, "items", expanding)
		return 0
	}
	if !layout.Bounded(p.boundsP) {
		return 0
	}
	leftover := p.boundsP - p.totalFixed
	if leftover < 0 {
		p.g.log().Warn("grid: no space left for expanding items",
			"grid", p.g.name, "available", p.boundsP, "fixed", p.totalFixed)
		return 0
	}
	return leftover / p.totalWeight
}

// place chains content boxes along the primary axis. The first box sits at
// its own leading spacing; each later one starts after the previous box's
// trailing spacing plus its own leading spacing.
func (p *pass) place() []Geometry {
	out := make([]Geometry, len(p.resolved))
	var prevEnd, prevTrail float64

	for i, r := range p.resolved {
		offset := r.spacingP.lead
		if i > 0 {
			offset = prevEnd + prevTrail + r.spacingP.lead
		}
		cellStart := offset - r.spacingP.lead

		out[i] = Geometry{
			Orientation:      p.orientation,
			OffsetPrimary:    offset,
			OffsetOrthogonal: r.spacingO.lead,
			SizePrimary:      r.contentP,
			SizeOrthogonal:   r.contentO,
			Cell:             p.cellRect(cellStart, r.cellP, r.cellO),
		}

		prevEnd = offset + r.contentP
		prevTrail = r.spacingP.trail
	}
	return out
}

func (p *pass) cellRect(start, lengthP, lengthO float64) Rect {
	if p.orientation == Horizontal {
		return NewRect(start, 0, lengthP, lengthO)
	}
	return NewRect(0, start, lengthO, lengthP)
}

// aggregate sums cell lengths along the primary axis and takes the largest
// cell across it.
func (p *pass) aggregate() Size {
	var sumP, maxO float64
	for _, r := range p.resolved {
		sumP += r.cellP
		maxO = max(maxO, r.cellO)
	}
	return p.orientation.size(sumP, maxO)
}

// length is a fixed item's cell length.
func (p *pass) length(it *Item) float64 {
	return p.nonNegative(it, "fixed length", it.value)
}

// weight is an expanding item's weight.
func (p *pass) weight(it *Item) float64 {
	return p.nonNegative(it, "expansion weight", it.value)
}

// share is an expanding item's cell length.
func (p *pass) share(it *Item) float64 {
	return max(it.value, 0) * p.multiplier
}

func (p *pass) supports(it *Item) bool {
	return it.content.SupportsIntrinsicSizing()
}

// measurePrimary measures the primary length given the orthogonal content
// length as a constraint.
func (p *pass) measurePrimary(it *Item, orthogonal float64) float64 {
	return p.orientation.primary(p.g.measure(it.content, p.orientation.size(0, orthogonal)))
}

// measureOrthogonal measures the orthogonal length given a primary hint.
func (p *pass) measureOrthogonal(it *Item, estimate float64) float64 {
	return p.orientation.orthogonal(p.g.measure(it.content, p.orientation.size(estimate, 0)))
}

// nonNegative clamps a degenerate negative length to zero.
func (p *pass) nonNegative(it *Item, what string, v float64) float64 {
	if v < 0 {
		p.g.log().Warn("grid: negative length clamped to zero",
			"grid", p.g.name, "content", describe(it.content), "what", what, "value", v)
		return 0
	}
	return v
}
