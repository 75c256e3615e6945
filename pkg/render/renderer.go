package render

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/flashbar-dev/flashbar/pkg/vdom"
)

// Config configures the HTML renderer.
type Config struct {
	// Pretty enables indented output. Development only; it inflates
	// output size.
	Pretty bool

	// Indent is the string for each indentation level in pretty mode.
	// Defaults to two spaces.
	Indent string
}

// Renderer renders VNode trees to HTML.
type Renderer struct {
	config Config
}

// New creates a Renderer with the given configuration.
func New(config Config) *Renderer {
	if config.Indent == "" {
		config.Indent = "  "
	}
	return &Renderer{config: config}
}

// RenderToString renders a VNode tree to an HTML string.
func (r *Renderer) RenderToString(node *vdom.VNode) (string, error) {
	var buf bytes.Buffer
	if err := r.RenderToWriter(&buf, node); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderToWriter streams a VNode tree to the given writer.
func (r *Renderer) RenderToWriter(w io.Writer, node *vdom.VNode) error {
	return r.renderNode(w, node, 0)
}

func (r *Renderer) renderNode(w io.Writer, node *vdom.VNode, depth int) error {
	if node == nil {
		return nil
	}

	switch node.Kind {
	case vdom.KindElement:
		return r.renderElement(w, node, depth)
	case vdom.KindText:
		_, err := io.WriteString(w, escapeHTML(node.Text))
		return err
	case vdom.KindFragment:
		for _, child := range node.Children {
			if err := r.renderNode(w, child, depth); err != nil {
				return err
			}
		}
		return nil
	case vdom.KindComponent:
		if node.Comp != nil {
			return r.renderNode(w, node.Comp.Render(), depth)
		}
		return nil
	case vdom.KindRaw:
		_, err := io.WriteString(w, node.Text)
		return err
	default:
		return fmt.Errorf("unknown node kind: %d", node.Kind)
	}
}

func (r *Renderer) renderElement(w io.Writer, node *vdom.VNode, depth int) error {
	tag := node.Tag

	if r.config.Pretty && depth > 0 {
		r.writeIndent(w, depth)
	}

	if _, err := fmt.Fprintf(w, "<%s", tag); err != nil {
		return err
	}

	if err := r.renderAttributes(w, node); err != nil {
		return err
	}

	if vdom.IsVoidElement(tag) {
		if _, err := w.Write([]byte{'>'}); err != nil {
			return err
		}
		if r.config.Pretty {
			w.Write([]byte{'\n'})
		}
		return nil
	}

	if _, err := w.Write([]byte{'>'}); err != nil {
		return err
	}

	hasBlockChildren := len(node.Children) > 0 && !isInlineElement(tag)
	if r.config.Pretty && hasBlockChildren {
		w.Write([]byte{'\n'})
	}

	for _, child := range node.Children {
		if err := r.renderNode(w, child, depth+1); err != nil {
			return err
		}
	}

	if r.config.Pretty && hasBlockChildren {
		r.writeIndent(w, depth)
	}

	if _, err := fmt.Fprintf(w, "</%s>", tag); err != nil {
		return err
	}
	if r.config.Pretty {
		w.Write([]byte{'\n'})
	}

	return nil
}

// renderAttributes emits attributes in sorted key order for deterministic
// output. Event handler props become data-on-<event> markers.
func (r *Renderer) renderAttributes(w io.Writer, node *vdom.VNode) error {
	if node.Props == nil {
		return nil
	}

	keys := make([]string, 0, len(node.Props))
	for key := range node.Props {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		value := node.Props[key]

		if strings.HasPrefix(key, "on") && isEventHandler(value) {
			continue
		}
		if key == "key" {
			continue
		}

		// Boolean attributes render as bare names when true.
		if isBooleanAttr(key) {
			if boolValue, ok := value.(bool); ok {
				if boolValue {
					if _, err := fmt.Fprintf(w, " %s", key); err != nil {
						return err
					}
				}
				continue
			}
		}

		strValue := attrToString(value)
		if strValue != "" {
			if _, err := fmt.Fprintf(w, ` %s="%s"`, key, escapeAttr(strValue)); err != nil {
				return err
			}
		}
	}

	for _, key := range keys {
		if strings.HasPrefix(key, "on") && isEventHandler(node.Props[key]) {
			eventName := strings.ToLower(key[2:])
			if _, err := fmt.Fprintf(w, ` data-on-%s="true"`, eventName); err != nil {
				return err
			}
		}
	}

	return nil
}

func isEventHandler(value any) bool {
	if value == nil {
		return false
	}
	switch value.(type) {
	case func():
		return true
	case func(any):
		return true
	case vdom.EventHandler:
		return true
	default:
		return strings.HasPrefix(fmt.Sprintf("%T", value), "func")
	}
}

var booleanAttrs = map[string]bool{
	"hidden":    true,
	"disabled":  true,
	"checked":   true,
	"selected":  true,
	"required":  true,
	"readonly":  true,
	"autofocus": true,
}

func isBooleanAttr(key string) bool {
	return booleanAttrs[key]
}

var inlineElements = map[string]bool{
	"a":      true,
	"span":   true,
	"b":      true,
	"i":      true,
	"em":     true,
	"strong": true,
	"code":   true,
	"small":  true,
}

func isInlineElement(tag string) bool {
	return inlineElements[tag]
}

func attrToString(value any) string {
	if value == nil {
		return ""
	}
	switch v := value.(type) {
	case string:
		return v
	case bool:
		if v {
			return "true"
		}
		return "false"
	case int:
		return fmt.Sprintf("%d", v)
	case int64:
		return fmt.Sprintf("%d", v)
	case float64:
		return fmt.Sprintf("%g", v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

func (r *Renderer) writeIndent(w io.Writer, depth int) {
	for i := 0; i < depth; i++ {
		w.Write([]byte(r.config.Indent))
	}
}
