// Package vdom defines the virtual DOM that flashbar components render
// into: VNode trees built from element constructors, attribute helpers,
// and event handlers. The render package turns these trees into HTML.
package vdom
