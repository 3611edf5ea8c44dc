package layout

// Kind identifies the visual role of an element
type Kind string

const (
	KindHeader       Kind = "header"
	KindSectionTitle Kind = "sectionTitle"
	KindSubheading   Kind = "subheading"
	KindBullet       Kind = "bullet"
	KindProjectTitle Kind = "projectTitle"
	KindParagraph    Kind = "paragraph"
	KindCareerEntry  Kind = "careerEntry"
	KindDate         Kind = "date"
	KindQuote        Kind = "quote"
	KindAttribution  Kind = "attribution"
	KindEmpty        Kind = "empty"
	KindGroup        Kind = "group"
)

// Element is the unit the paginator places. It is either a *Leaf or a *Group.
type Element interface {
	Kind() Kind
	// GetHeight is the vertical extent in points including trailing spacing
	GetHeight() float64
	// GetInkHeight is the extent that must fit above the page bottom
	GetInkHeight() float64
	// GetY is the offset from the top of the page content area
	GetY() float64
	SetPosition(y float64)
}

// Walk calls fn for every leaf in el with its offset from the page content top
func Walk(el Element, fn func(leaf *Leaf, y float64)) {
	switch e := el.(type) {
	case *Leaf:
		fn(e, e.Y)
	case *Group:
		for _, child := range e.Children {
			fn(child, e.Y+child.RelativeY)
		}
	}
}
