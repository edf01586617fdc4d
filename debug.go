package cssbuilder

func (c category) String() string {
	switch c {
	case catElement:
		return "element"
	case catID:
		return "id"
	case catClass:
		return "class"
	case catAttribute:
		return "attribute"
	case catPseudoClass:
		return "pseudo-class"
	case catPseudoElement:
		return "pseudo-element"
	}
	return "unknown"
}

// fragments returns the stored fragments in category order, separators
// included.
func (s *SimpleSelector) fragments() []string {
	ret := []string{}
	if s.hasElement {
		ret = append(ret, s.element)
	}
	if s.hasID {
		ret = append(ret, s.id)
	}
	ret = append(ret, s.classes...)
	ret = append(ret, s.attributes...)
	ret = append(ret, s.pseudoClasses...)
	if s.hasPseudoElement {
		ret = append(ret, s.pseudoElement)
	}
	return ret
}
