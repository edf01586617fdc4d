package cssbuilder

import "go.uber.org/zap"

// Builder creates selectors. Every selector it creates carries the
// builder's logger, so chained calls show up in debug output.
type Builder struct {
	log *zap.Logger
}

// NewBuilder returns a new selector builder. A nil logger disables
// logging.
func NewBuilder(log *zap.Logger) *Builder {
	if log == nil {
		log = zap.NewNop()
	}
	return &Builder{log: log.Named("cssbuilder")}
}

func (b *Builder) newSelector() *SimpleSelector {
	return &SimpleSelector{log: b.log}
}

// Element starts a selector with an element name.
func (b *Builder) Element(value string) *SimpleSelector {
	return b.newSelector().Element(value)
}

// ID starts a selector with an id.
func (b *Builder) ID(value string) *SimpleSelector {
	return b.newSelector().ID(value)
}

// Class starts a selector with a class.
func (b *Builder) Class(value string) *SimpleSelector {
	return b.newSelector().Class(value)
}

// Attr starts a selector with an attribute condition.
func (b *Builder) Attr(value string) *SimpleSelector {
	return b.newSelector().Attr(value)
}

// PseudoClass starts a selector with a pseudo-class.
func (b *Builder) PseudoClass(value string) *SimpleSelector {
	return b.newSelector().PseudoClass(value)
}

// PseudoElement starts a selector with a pseudo-element.
func (b *Builder) PseudoElement(value string) *SimpleSelector {
	return b.newSelector().PseudoElement(value)
}

// Combine joins left and right with the combinator token. The token is
// stored verbatim and never validated; " ", "+", "~" and ">" are the ones
// CSS knows about.
func (b *Builder) Combine(left Selector, combinator string, right Selector) *CombinedSelector {
	if b.log != nil {
		b.log.Debug("combine", zap.String("combinator", combinator))
	}
	return &CombinedSelector{left: left, combinator: combinator, right: right}
}

// defaultBuilder backs the package-level entry points with a silent
// logger.
var defaultBuilder = NewBuilder(nil)

// Element starts a selector with an element name.
func Element(value string) *SimpleSelector { return defaultBuilder.Element(value) }

// ID starts a selector with an id.
func ID(value string) *SimpleSelector { return defaultBuilder.ID(value) }

// Class starts a selector with a class.
func Class(value string) *SimpleSelector { return defaultBuilder.Class(value) }

// Attr starts a selector with an attribute condition.
func Attr(value string) *SimpleSelector { return defaultBuilder.Attr(value) }

// PseudoClass starts a selector with a pseudo-class.
func PseudoClass(value string) *SimpleSelector { return defaultBuilder.PseudoClass(value) }

// PseudoElement starts a selector with a pseudo-element.
func PseudoElement(value string) *SimpleSelector { return defaultBuilder.PseudoElement(value) }

// Combine joins left and right with the combinator token.
func Combine(left Selector, combinator string, right Selector) *CombinedSelector {
	return defaultBuilder.Combine(left, combinator, right)
}
