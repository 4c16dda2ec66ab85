package canvas

import (
	"fmt"
	"log/slog"
	"math"
	"sort"

	grid "github.com/grindlemire/go-grid"
	"github.com/grindlemire/go-grid/internal/debug"
)

var _ grid.Backend = (*Canvas)(nil)

// Liner is content that draws as lines of text.
type Liner interface {
	Lines(width float64) []string
}

// node is what the canvas knows about one attached content.
type node struct {
	owner    *grid.Grid
	geometry grid.Geometry
	placed   bool
}

// Canvas records attachments and applied geometry per content.
type Canvas struct {
	nodes  map[grid.Content]*node
	border BorderStyle
	logger *slog.Logger
}

// Option configures a Canvas.
type Option func(*Canvas)

// WithBorder sets the border style of leaf boxes. Default is BorderSingle.
func WithBorder(s BorderStyle) Option {
	return func(c *Canvas) {
		c.border = s
	}
}

// WithLogger sets the logger for backend calls on unknown content.
func WithLogger(l *slog.Logger) Option {
	return func(c *Canvas) {
		if l != nil {
			c.logger = l
		}
	}
}

// New creates an empty canvas.
func New(opts ...Option) *Canvas {
	c := &Canvas{
		nodes: make(map[grid.Content]*node),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Attach implements grid.Backend.
func (c *Canvas) Attach(owner *grid.Grid, content grid.Content) {
	c.nodes[content] = &node{owner: owner}
}

// Detach implements grid.Backend.
func (c *Canvas) Detach(owner *grid.Grid, content grid.Content) {
	n, ok := c.nodes[content]
	if !ok || n.owner != owner {
		c.log().Debug("canvas: detach of content not attached here",
			"content", fmt.Sprint(content), "owner", fmt.Sprint(owner))
		return
	}
	delete(c.nodes, content)
}

// ReleaseGeometry implements grid.Backend.
func (c *Canvas) ReleaseGeometry(_ *grid.Grid, content grid.Content) {
	if n, ok := c.nodes[content]; ok {
		n.placed = false
	}
}

// ApplyGeometry implements grid.Backend.
func (c *Canvas) ApplyGeometry(owner *grid.Grid, content grid.Content, g grid.Geometry) {
	n, ok := c.nodes[content]
	if !ok {
		c.log().Debug("canvas: geometry for unattached content", "content", fmt.Sprint(content))
		n = &node{owner: owner}
		c.nodes[content] = n
	}
	n.geometry = g
	n.placed = true
}

func (c *Canvas) log() *slog.Logger {
	if c.logger != nil {
		return c.logger
	}
	return debug.Logger()
}

// Len returns the number of attached contents.
func (c *Canvas) Len() int { return len(c.nodes) }

// Attached reports whether content is attached and which grid owns it.
func (c *Canvas) Attached(content grid.Content) (*grid.Grid, bool) {
	n, ok := c.nodes[content]
	if !ok {
		return nil, false
	}
	return n.owner, true
}

// Geometry returns the geometry last applied to content, relative to its
// owning grid. It reports false once the geometry has been released.
func (c *Canvas) Geometry(content grid.Content) (grid.Geometry, bool) {
	n, ok := c.nodes[content]
	if !ok || !n.placed {
		return grid.Geometry{}, false
	}
	return n.geometry, true
}

// Frame returns content's box in the coordinate space of the outermost grid
// by adding up the origins of every grid it is nested in.
func (c *Canvas) Frame(content grid.Content) (grid.Rect, bool) {
	g, ok := c.Geometry(content)
	if !ok {
		return grid.Rect{}, false
	}
	r := g.Rect()
	for owner := c.nodes[content].owner; owner != nil; {
		n, ok := c.nodes[owner]
		if !ok {
			break
		}
		if !n.placed {
			return grid.Rect{}, false
		}
		origin := n.geometry.Rect()
		r = r.Translate(origin.X, origin.Y)
		owner = n.owner
	}
	return r, true
}

// Render lays root out at width x height and draws it.
func (c *Canvas) Render(root *grid.Grid, width, height int) *Buffer {
	root.RequestLayout(grid.NewSize(float64(width), float64(height)))
	buf := NewBuffer(width, height)
	c.Draw(buf, root)
	return buf
}

// Draw paints every placed leaf under root into buf.
func (c *Canvas) Draw(buf *Buffer, root *grid.Grid) {
	for _, it := range root.Items() {
		content := it.Content()
		if nested, ok := content.(grid.Nested); ok && nested.NestedGrid() != nil {
			c.Draw(buf, nested.NestedGrid())
			continue
		}
		frame, ok := c.Frame(content)
		if !ok {
			continue
		}
		x, y, w, h := cells(frame)
		if liner, ok := content.(Liner); ok {
			for i, line := range liner.Lines(frame.Width) {
				if i >= h {
					break
				}
				buf.SetString(x, y+i, line, x+w)
			}
			continue
		}
		drawBox(buf, x, y, w, h, c.border, fmt.Sprint(content))
	}
}

// Frames returns the absolute frame of every placed content, keyed by its
// printed name, in a stable order.
func (c *Canvas) Frames() []NamedFrame {
	var out []NamedFrame
	for content := range c.nodes {
		if r, ok := c.Frame(content); ok {
			out = append(out, NamedFrame{Name: fmt.Sprint(content), Frame: r})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Frame.Y != out[j].Frame.Y {
			return out[i].Frame.Y < out[j].Frame.Y
		}
		if out[i].Frame.X != out[j].Frame.X {
			return out[i].Frame.X < out[j].Frame.X
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// NamedFrame is an absolute frame labeled with its content.
type NamedFrame struct {
	Name  string
	Frame grid.Rect
}

// cells snaps a frame to whole terminal cells.
func cells(r grid.Rect) (x, y, w, h int) {
	r = r.Round()
	return int(r.X), int(r.Y), int(math.Max(r.Width, 0)), int(math.Max(r.Height, 0))
}
