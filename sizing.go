package grid

import (
	"github.com/grindlemire/go-grid/internal/layout"
)

// sizer is the closed set of primary-axis sizing strategies. The three
// implementations below are the only ones.
type sizer interface {
	kind() Sizing

	// estimate returns the content length used as the primary-axis hint when
	// measuring the orthogonal axis. Zero means unconstrained.
	estimate(it *Item, p *pass, margin span) float64

	// primary resolves the cell and content lengths along the primary axis.
	// orthogonal is the already resolved orthogonal content length.
	primary(it *Item, p *pass, margin span, orthogonal float64) (cell, content float64)
}

type fixedSizer struct{}

func (fixedSizer) kind() Sizing { return SizingFixed }

func (fixedSizer) estimate(it *Item, p *pass, margin span) float64 {
	a, _ := it.alignments(p.orientation)
	if a.IsFixed() {
		return a.Length
	}
	return max(p.length(it)-margin.sum(), 0)
}

func (fixedSizer) primary(it *Item, p *pass, margin span, orthogonal float64) (float64, float64) {
	cell := p.length(it)
	return cell, p.contentWithin(it, cell, margin, orthogonal)
}

type expandingSizer struct{}

func (expandingSizer) kind() Sizing { return SizingExpanding }

func (expandingSizer) estimate(it *Item, p *pass, margin span) float64 {
	a, _ := it.alignments(p.orientation)
	if a.IsFixed() {
		return a.Length
	}
	return max(p.share(it)-margin.sum(), 0)
}

func (expandingSizer) primary(it *Item, p *pass, margin span, orthogonal float64) (float64, float64) {
	cell := p.share(it)
	if cell > 0 {
		return cell, p.contentWithin(it, cell, margin, orthogonal)
	}
	if it.canCollapse {
		return 0, 0
	}
	// No share: report the content's natural length instead of vanishing.
	content := p.natural(it, orthogonal)
	return content + margin.sum(), content
}

type intrinsicSizer struct{}

func (intrinsicSizer) kind() Sizing { return SizingIntrinsic }

func (intrinsicSizer) estimate(it *Item, p *pass, margin span) float64 {
	a, _ := it.alignments(p.orientation)
	if a.IsFixed() {
		return a.Length
	}
	if layout.Bounded(it.maxLength) {
		return it.maxLength
	}
	return 0
}

func (intrinsicSizer) primary(it *Item, p *pass, margin span, orthogonal float64) (float64, float64) {
	content := clamp(p.natural(it, orthogonal), it.minLength, it.maxLength)
	return content + margin.sum(), content
}

// contentWithin resolves the primary content length of a fixed or expanding
// cell from the item's primary alignment.
func (p *pass) contentWithin(it *Item, cell float64, margin span, orthogonal float64) float64 {
	a, _ := it.alignments(p.orientation)
	inner := p.nonNegative(it, "primary content", cell-margin.sum())
	switch {
	case a.IsFixed():
		return a.Length
	case a.IsFill():
		return inner
	default:
		if !p.supports(it) {
			return 0
		}
		return min(p.measurePrimary(it, orthogonal), inner)
	}
}

// natural is the content's own primary length: the authored length for fixed
// alignments, otherwise its measurement (zero when it cannot be measured).
func (p *pass) natural(it *Item, orthogonal float64) float64 {
	a, _ := it.alignments(p.orientation)
	if a.IsFixed() {
		return a.Length
	}
	if !p.supports(it) {
		return 0
	}
	return p.measurePrimary(it, orthogonal)
}

// orthogonal resolves the content length across the primary axis. It does not
// depend on any sibling.
func (p *pass) orthogonal(it *Item, margin span, estimate float64) float64 {
	_, a := it.alignments(p.orientation)
	bounded := layout.Bounded(p.boundsO)

	switch {
	case a.IsFixed():
		return a.Length
	case a.IsFill():
		if bounded {
			return p.nonNegative(it, "orthogonal content", p.boundsO-margin.sum())
		}
		if !p.supports(it) {
			return 0
		}
		return p.measureOrthogonal(it, estimate)
	default:
		if !p.supports(it) {
			return 0
		}
		measured := p.measureOrthogonal(it, estimate)
		if bounded {
			return min(measured, p.nonNegative(it, "orthogonal content", p.boundsO-margin.sum()))
		}
		return measured
	}
}

// clamp restricts v to [lo, hi]. Callers keep lo <= hi.
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
