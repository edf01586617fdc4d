package cssbuilder

// Selector is the one capability shared by simple and combined selectors.
type Selector interface {
	String() string
}

// CombinedSelector joins two selectors with a combinator token. Both sides
// may themselves be combined selectors. It is immutable once created.
type CombinedSelector struct {
	left       Selector
	combinator string
	right      Selector
}

// String stringifies both sides and puts the combinator token between
// them, padded with one space on each side whatever the token is. A " "
// combinator therefore yields three spaces between the parts; that extra
// whitespace is kept as is, CSS collapses it anyway.
func (c *CombinedSelector) String() string {
	return c.left.String() + " " + c.combinator + " " + c.right.String()
}
