// Package render turns vdom trees into HTML.
//
// Output is deterministic: attributes are emitted in sorted order and
// text/attribute values are escaped. Event handler props are not
// rendered as attributes; instead a data-on-<event> marker is emitted
// for the client runtime to bind against.
package render
