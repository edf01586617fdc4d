package cssbuilder

// DuplicateCategoryError is the panic value for a second write to a
// category that may occur at most once (element, id, pseudo-element).
type DuplicateCategoryError struct {
	Category string
}

func (e *DuplicateCategoryError) Error() string {
	return "cssbuilder: " + e.Category + " may occur only once per selector"
}

// OrderError is the panic value for a selector part written after a part
// that must come later. Parts have to be added as element, id, class,
// attribute, pseudo-class, pseudo-element.
type OrderError struct {
	Category string // the part being written
	Present  string // the later part already on the selector
}

func (e *OrderError) Error() string {
	return "cssbuilder: " + e.Category + " written after " + e.Present
}
