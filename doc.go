// Package cssbuilder composes CSS selector strings from typed parts.
//
// A SimpleSelector collects element, id, class, attribute, pseudo-class and
// pseudo-element fragments in their CSS order, and Combine joins two
// selectors with a combinator token. The output is the plain selector
// string, ready to be handed to goquery or cascadia.
package cssbuilder
