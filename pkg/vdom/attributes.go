package vdom

import "strings"

// attr creates an Attr with the given key and value.
func attr(key string, value any) Attr {
	return Attr{Key: key, Value: value}
}

// Identity attributes

// ID sets the id attribute.
func ID(id string) Attr { return attr("id", id) }

// Class sets the class attribute, joining multiple classes with spaces.
func Class(classes ...string) Attr { return attr("class", strings.Join(classes, " ")) }

// StyleAttr sets the style attribute (named to avoid conflict with a
// Style element).
func StyleAttr(style string) Attr { return attr("style", style) }

// Data creates a data-* attribute.
// Example: Data("severity", "error") → data-severity="error"
func Data(key, value string) Attr { return attr("data-"+key, value) }

// Hidden sets the hidden boolean attribute.
func Hidden(hidden bool) Attr { return attr("hidden", hidden) }

// Type sets the type attribute.
func Type(t string) Attr { return attr("type", t) }

// Href sets the href attribute.
func Href(href string) Attr { return attr("href", href) }

// Accessibility attributes

// Role sets the role attribute.
func Role(role string) Attr { return attr("role", role) }

// AriaLabel sets the aria-label attribute.
func AriaLabel(label string) Attr { return attr("aria-label", label) }

// AriaHidden sets the aria-hidden attribute.
func AriaHidden(hidden bool) Attr { return attr("aria-hidden", hidden) }

// AriaLive sets the aria-live attribute.
func AriaLive(mode string) Attr { return attr("aria-live", mode) }

// AriaAtomic sets the aria-atomic attribute.
func AriaAtomic(atomic bool) Attr { return attr("aria-atomic", atomic) }
