package cssbuilder

import (
	"strings"

	"go.uber.org/zap"
)

// category indexes the parts of a simple selector in the order CSS requires
// them to be written.
type category int

const (
	catElement category = iota
	catID
	catClass
	catAttribute
	catPseudoClass
	catPseudoElement
)

// SimpleSelector builds a single compound selector such as
// "a.external[href]:hover". Each mutating method returns the receiver so
// calls can be chained; the chain must follow the category order element,
// id, class, attribute, pseudo-class, pseudo-element. Out-of-order calls
// and repeated element/id/pseudo-element calls are programming errors and
// panic with *OrderError or *DuplicateCategoryError.
//
// The zero value is an empty selector and stringifies to "".
type SimpleSelector struct {
	element       string
	id            string
	classes       []string
	attributes    []string
	pseudoClasses []string
	pseudoElement string

	hasElement       bool
	hasID            bool
	hasPseudoElement bool

	log *zap.Logger
}

// present reports whether the category already holds a value.
func (s *SimpleSelector) present(c category) bool {
	switch c {
	case catElement:
		return s.hasElement
	case catID:
		return s.hasID
	case catClass:
		return len(s.classes) > 0
	case catAttribute:
		return len(s.attributes) > 0
	case catPseudoClass:
		return len(s.pseudoClasses) > 0
	case catPseudoElement:
		return s.hasPseudoElement
	}
	return false
}

// checkSingle panics if the single-occurrence category c was already
// written on this instance.
func (s *SimpleSelector) checkSingle(c category) {
	if s.present(c) {
		panic(&DuplicateCategoryError{Category: c.String()})
	}
}

// checkOrder panics if any category after c already holds a value. This
// runs on every mutating call, so a chain is valid exactly when its calls
// arrive in non-decreasing category order.
func (s *SimpleSelector) checkOrder(c category) {
	for later := c + 1; later <= catPseudoElement; later++ {
		if s.present(later) {
			panic(&OrderError{Category: c.String(), Present: later.String()})
		}
	}
}

func (s *SimpleSelector) debug(msg string, fields ...zap.Field) {
	if s.log != nil {
		s.log.Debug(msg, fields...)
	}
}

// Element sets the element name, for example "div".
func (s *SimpleSelector) Element(value string) *SimpleSelector {
	s.checkSingle(catElement)
	s.checkOrder(catElement)
	s.element = value
	s.hasElement = true
	s.debug("set element", zap.String("value", value))
	return s
}

// ID sets the id. The stored fragment is "#" + value.
func (s *SimpleSelector) ID(value string) *SimpleSelector {
	s.checkSingle(catID)
	s.checkOrder(catID)
	s.id = "#" + value
	s.hasID = true
	s.debug("set id", zap.String("value", value))
	return s
}

// Class appends a class. Any number of classes may be added; they keep
// their call order in the output.
func (s *SimpleSelector) Class(value string) *SimpleSelector {
	s.checkOrder(catClass)
	s.classes = append(s.classes, "."+value)
	s.debug("add class", zap.String("value", value))
	return s
}

// Attr appends an attribute condition. The value is wrapped in brackets
// verbatim, no escaping or syntax checking.
func (s *SimpleSelector) Attr(value string) *SimpleSelector {
	s.checkOrder(catAttribute)
	s.attributes = append(s.attributes, "["+value+"]")
	s.debug("add attribute", zap.String("value", value))
	return s
}

// PseudoClass appends a pseudo-class such as "hover" or "nth-child(2n)".
func (s *SimpleSelector) PseudoClass(value string) *SimpleSelector {
	s.checkOrder(catPseudoClass)
	s.pseudoClasses = append(s.pseudoClasses, ":"+value)
	s.debug("add pseudo-class", zap.String("value", value))
	return s
}

// PseudoElement sets the pseudo-element, for example "before".
func (s *SimpleSelector) PseudoElement(value string) *SimpleSelector {
	s.checkSingle(catPseudoElement)
	s.checkOrder(catPseudoElement)
	s.pseudoElement = "::" + value
	s.hasPseudoElement = true
	s.debug("set pseudo-element", zap.String("value", value))
	return s
}

// String concatenates the stored fragments in category order. The
// separators ("#", ".", "[]", ":", "::") are part of the fragments, so no
// per-category formatting happens here. Pure and repeatable.
func (s *SimpleSelector) String() string {
	return strings.Join(s.fragments(), "")
}
