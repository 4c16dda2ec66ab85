package grid

// Content is the opaque unit a cell arranges. The engine never draws it; it
// only asks for its natural size and reports where it goes.
//
// Content values identify items in the mutation API, so implementations must
// be comparable. Pointer types are the usual choice.
type Content interface {
	// SupportsIntrinsicSizing reports whether MeasureIntrinsicSize answers
	// meaningfully. When false the engine treats the content's natural size
	// as zero without calling MeasureIntrinsicSize.
	SupportsIntrinsicSizing() bool

	// MeasureIntrinsicSize returns the content's natural size given optional
	// constraints. A zero available length means that axis is unconstrained.
	MeasureIntrinsicSize(availableWidth, availableHeight float64) (width, height float64)
}

// Nested is implemented by content that is itself a layout engine. The engine
// lays such content out after placing it and invalidates it along with its
// owner.
type Nested interface {
	NestedGrid() *Grid
}

// nestedGrid returns the grid behind c, if any.
func nestedGrid(c Content) (*Grid, bool) {
	n, ok := c.(Nested)
	if !ok {
		return nil, false
	}
	g := n.NestedGrid()
	return g, g != nil
}

// Backend materializes computed geometry onto a visible surface. Every call
// names the grid that owns the content; geometry is relative to that grid.
type Backend interface {
	// Attach inserts content into the visible tree under owner.
	Attach(owner *Grid, c Content)

	// Detach removes content from the visible tree.
	Detach(owner *Grid, c Content)

	// ReleaseGeometry voids the geometry previously applied to content.
	ReleaseGeometry(owner *Grid, c Content)

	// ApplyGeometry positions and sizes content.
	ApplyGeometry(owner *Grid, c Content, g Geometry)
}

// NopBackend discards every backend call.
type NopBackend struct{}

func (NopBackend) Attach(*Grid, Content)                 {}
func (NopBackend) Detach(*Grid, Content)                 {}
func (NopBackend) ReleaseGeometry(*Grid, Content)        {}
func (NopBackend) ApplyGeometry(*Grid, Content, Geometry) {}

// Box is plain content with an optional natural size.
type Box struct {
	Name string

	natural   Size
	intrinsic bool
}

// NewBox creates content that does not support intrinsic sizing.
func NewBox(name string) *Box {
	return &Box{Name: name}
}

// NewSizedBox creates content whose natural size is always (width, height),
// whatever the constraints.
func NewSizedBox(name string, width, height float64) *Box {
	return &Box{Name: name, natural: Size{Width: width, Height: height}, intrinsic: true}
}

// SetNatural changes the natural size. Grids holding the box must be
// invalidated by the caller.
func (b *Box) SetNatural(width, height float64) {
	b.natural = Size{Width: width, Height: height}
	b.intrinsic = true
}

// SupportsIntrinsicSizing implements Content.
func (b *Box) SupportsIntrinsicSizing() bool { return b.intrinsic }

// MeasureIntrinsicSize implements Content.
func (b *Box) MeasureIntrinsicSize(_, _ float64) (float64, float64) {
	return b.natural.Width, b.natural.Height
}

// String returns the box name.
func (b *Box) String() string { return b.Name }
