package layout

const (
	// GroupChildSpacing separates consecutive children of a group
	GroupChildSpacing = 3.0
	// GroupTrailingSpacing follows the last child of a group
	GroupTrailingSpacing = 5.0
)

// Group keeps a heading together with the content that follows it. The
// paginator never splits a group across pages.
type Group struct {
	Children []*Leaf
	Y        float64
	height   float64
}

// NewGroup creates a group and assigns each child its offset inside the group
func NewGroup(children ...*Leaf) *Group {
	g := &Group{Children: children}
	offset := 0.0
	for i, child := range children {
		if i > 0 {
			offset += GroupChildSpacing
		}
		child.RelativeY = offset
		offset += child.Height
	}
	if len(children) > 0 {
		offset += GroupTrailingSpacing
	}
	g.height = offset
	return g
}

// Kind returns KindGroup
func (g *Group) Kind() Kind {
	return KindGroup
}

// GetHeight returns the sum of child heights plus spacing
func (g *Group) GetHeight() float64 {
	return g.height
}

// GetInkHeight excludes the trailing spacing
func (g *Group) GetInkHeight() float64 {
	if len(g.Children) == 0 {
		return 0
	}
	return g.height - GroupTrailingSpacing
}

// GetY returns the y position of the group
func (g *Group) GetY() float64 {
	return g.Y
}

// SetPosition sets the y position of the group
func (g *Group) SetPosition(y float64) {
	g.Y = y
}
