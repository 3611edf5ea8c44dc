package layout

// Leaf is a single piece of text with an estimated height
type Leaf struct {
	ElementKind Kind
	Text        string
	Height      float64
	// Y is set by the paginator for top-level leaves
	Y float64
	// RelativeY is the offset inside the enclosing group
	RelativeY float64
}

// NewLeaf creates a leaf of the given kind
func NewLeaf(kind Kind, text string, height float64) *Leaf {
	return &Leaf{
		ElementKind: kind,
		Text:        text,
		Height:      height,
	}
}

// Kind returns the element kind
func (l *Leaf) Kind() Kind {
	return l.ElementKind
}

// GetHeight returns the height of the leaf
func (l *Leaf) GetHeight() float64 {
	return l.Height
}

// GetInkHeight returns the height of the leaf
func (l *Leaf) GetInkHeight() float64 {
	return l.Height
}

// GetY returns the y position of the leaf
func (l *Leaf) GetY() float64 {
	return l.Y
}

// SetPosition sets the y position of the leaf
func (l *Leaf) SetPosition(y float64) {
	l.Y = y
}
