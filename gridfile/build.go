package gridfile

import (
	"fmt"
	"math"

	grid "github.com/grindlemire/go-grid"
	"github.com/grindlemire/go-grid/text"
)

// Layout is a grid tree built from a document.
type Layout struct {
	Root *grid.Grid

	// Contents maps item names to their content.
	Contents map[string]grid.Content
}

// Lookup returns the content of the item called name.
func (l *Layout) Lookup(name string) (grid.Content, bool) {
	c, ok := l.Contents[name]
	return c, ok
}

// Build creates the grid tree for d. opts apply to the outermost grid; nested
// grids inherit its backend, logger and meter.
func Build(d *Document, opts ...grid.Option) (*Layout, error) {
	b := &builder{contents: make(map[string]grid.Content)}
	root, err := b.grid(d, "", opts)
	if err != nil {
		return nil, err
	}
	return &Layout{Root: root, Contents: b.contents}, nil
}

type builder struct {
	contents map[string]grid.Content
}

func (b *builder) grid(d *Document, path string, opts []grid.Option) (*grid.Grid, error) {
	orientation, err := ParseOrientation(d.Orientation)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", where(path, "orientation"), err)
	}
	if d.Name != "" {
		opts = append(opts, grid.WithName(d.Name))
	}

	items := make([]*grid.Item, 0, len(d.Items))
	for i := range d.Items {
		it, err := b.item(&d.Items[i], fmt.Sprintf("%sitems[%d]", prefix(path), i))
		if err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return grid.New(orientation, items, opts...), nil
}

func (b *builder) item(src *Item, path string) (*grid.Item, error) {
	sizing, err := ParseSizing(src.Sizing)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", where(path, "sizing"), err)
	}
	opts, err := itemOptions(src, sizing, path)
	if err != nil {
		return nil, err
	}
	content, err := b.content(src, path)
	if err != nil {
		return nil, err
	}

	if src.Value < 0 || math.IsNaN(src.Value) {
		return nil, fmt.Errorf("%s: %w: negative value %g", where(path, "value"), ErrInvalidDocument, src.Value)
	}
	switch sizing {
	case grid.SizingExpanding:
		weight := src.Value
		if weight == 0 {
			weight = 1
		}
		return grid.Expanding(content, weight, opts...), nil
	case grid.SizingIntrinsic:
		if src.Value != 0 {
			return nil, fmt.Errorf("%s: %w: intrinsic items take no value", where(path, "value"), ErrInvalidDocument)
		}
		return grid.Intrinsic(content, opts...), nil
	default:
		return grid.Fixed(content, src.Value, opts...), nil
	}
}

func itemOptions(src *Item, sizing grid.Sizing, path string) ([]grid.ItemOption, error) {
	horizontal, err := ParseAlignment(src.Horizontal)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", where(path, "horizontal"), err)
	}
	vertical, err := ParseAlignment(src.Vertical)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", where(path, "vertical"), err)
	}
	margin, err := ParseMargin(src.Margin)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", where(path, "margin"), err)
	}

	opts := []grid.ItemOption{
		grid.WithHorizontal(horizontal),
		grid.WithVertical(vertical),
		grid.WithMargin(margin),
	}

	if src.Min != nil || src.Max != nil {
		if sizing != grid.SizingIntrinsic {
			return nil, fmt.Errorf("%s: %w: min and max apply to intrinsic items only", where(path, "min"), ErrInvalidDocument)
		}
		if src.Max != nil {
			opts = append(opts, grid.WithMaxLength(*src.Max))
		}
		if src.Min != nil {
			opts = append(opts, grid.WithMinLength(*src.Min))
		}
	}
	if src.Collapse {
		if sizing != grid.SizingExpanding {
			return nil, fmt.Errorf("%s: %w: collapse applies to expanding items only", where(path, "collapse"), ErrInvalidDocument)
		}
		opts = append(opts, grid.WithCollapse(true))
	}
	return opts, nil
}

func (b *builder) content(src *Item, path string) (grid.Content, error) {
	kinds := 0
	for _, set := range []bool{src.Text != nil, src.Size != nil, src.Grid != nil} {
		if set {
			kinds++
		}
	}
	if kinds > 1 {
		return nil, fmt.Errorf("%s: %w: text, size and grid are exclusive", path, ErrInvalidDocument)
	}

	var c grid.Content
	switch {
	case src.Text != nil:
		var opts []text.Option
		if src.Name != "" {
			opts = append(opts, text.WithName(src.Name))
		}
		c = text.NewLabel(*src.Text, opts...)
	case src.Size != nil:
		if len(src.Size) != 2 || src.Size[0] < 0 || src.Size[1] < 0 {
			return nil, fmt.Errorf("%s: %w: size needs [width, height], got %v", where(path, "size"), ErrInvalidDocument, src.Size)
		}
		c = grid.NewSizedBox(src.Name, src.Size[0], src.Size[1])
	case src.Grid != nil:
		nested := *src.Grid
		if nested.Name == "" {
			nested.Name = src.Name
		}
		g, err := b.grid(&nested, path+".grid", nil)
		if err != nil {
			return nil, err
		}
		c = g
	default:
		c = grid.NewBox(src.Name)
	}

	if src.Name != "" {
		if _, dup := b.contents[src.Name]; dup {
			return nil, fmt.Errorf("%s: %w: duplicate name %q", where(path, "name"), ErrInvalidDocument, src.Name)
		}
		b.contents[src.Name] = c
	}
	return c, nil
}

func where(path, field string) string {
	return prefix(path) + field
}

func prefix(path string) string {
	if path == "" {
		return ""
	}
	return path + "."
}
