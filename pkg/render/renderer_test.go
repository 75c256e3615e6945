package render

import (
	"strings"
	"testing"

	"github.com/flashbar-dev/flashbar/pkg/vdom"
)

func renderCompact(t *testing.T, node *vdom.VNode) string {
	t.Helper()
	html, err := New(Config{}).RenderToString(node)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	return html
}

func TestRenderElement(t *testing.T) {
	node := vdom.Div(vdom.Class("box"), vdom.Text("hello"))
	html := renderCompact(t, node)

	want := `<div class="box">hello</div>`
	if html != want {
		t.Errorf("expected %q, got %q", want, html)
	}
}

func TestRenderNilNode(t *testing.T) {
	html := renderCompact(t, nil)
	if html != "" {
		t.Errorf("nil node should render nothing, got %q", html)
	}
}

func TestRenderVoidElement(t *testing.T) {
	node := vdom.Meta(vdom.Attr{Key: "charset", Value: "utf-8"})
	html := renderCompact(t, node)

	want := `<meta charset="utf-8">`
	if html != want {
		t.Errorf("expected %q, got %q", want, html)
	}
}

func TestRenderAttributesSorted(t *testing.T) {
	node := vdom.El("div",
		vdom.Attr{Key: "zeta", Value: "z"},
		vdom.Attr{Key: "alpha", Value: "a"},
		vdom.Attr{Key: "mid", Value: "m"},
	)
	html := renderCompact(t, node)

	want := `<div alpha="a" mid="m" zeta="z"></div>`
	if html != want {
		t.Errorf("attributes not sorted: %q", html)
	}
}

func TestRenderDeterministic(t *testing.T) {
	node := vdom.Div(
		vdom.ID("x"),
		vdom.Class("a", "b"),
		vdom.Data("state", "open"),
	)

	first := renderCompact(t, node)
	for i := 0; i < 10; i++ {
		if got := renderCompact(t, node); got != first {
			t.Fatalf("render not deterministic: %q vs %q", first, got)
		}
	}
}

func TestRenderEscapesText(t *testing.T) {
	node := vdom.Span(vdom.Text(`<script>alert("x")</script>`))
	html := renderCompact(t, node)

	if strings.Contains(html, "<script>") {
		t.Errorf("text not escaped: %q", html)
	}
	if !strings.Contains(html, "&lt;script&gt;") {
		t.Errorf("expected escaped markup, got %q", html)
	}
}

func TestRenderEscapesAttr(t *testing.T) {
	node := vdom.Div(vdom.Attr{Key: "title", Value: `a"b`})
	html := renderCompact(t, node)

	if !strings.Contains(html, `title="a&quot;b"`) {
		t.Errorf("attribute not escaped: %q", html)
	}
}

func TestRenderRawNotEscaped(t *testing.T) {
	node := vdom.Div(vdom.Raw("<b>bold</b>"))
	html := renderCompact(t, node)

	if !strings.Contains(html, "<b>bold</b>") {
		t.Errorf("raw content was escaped: %q", html)
	}
}

func TestRenderBooleanAttributes(t *testing.T) {
	shown := renderCompact(t, vdom.Div(vdom.Hidden(false)))
	if strings.Contains(shown, "hidden") {
		t.Errorf("false boolean attribute rendered: %q", shown)
	}

	hidden := renderCompact(t, vdom.Div(vdom.Hidden(true)))
	if hidden != "<div hidden></div>" {
		t.Errorf("expected bare boolean attribute, got %q", hidden)
	}
}

func TestRenderEventHandlerMarker(t *testing.T) {
	node := vdom.Button(vdom.OnClick(func() {}), vdom.Text("Close"))
	html := renderCompact(t, node)

	if !strings.Contains(html, `data-on-click="true"`) {
		t.Errorf("expected event marker, got %q", html)
	}
	if strings.Contains(html, "onclick=") {
		t.Errorf("handler leaked into markup: %q", html)
	}
}

func TestRenderFragment(t *testing.T) {
	node := vdom.Fragment(
		vdom.Span(vdom.Text("a")),
		vdom.Span(vdom.Text("b")),
	)
	html := renderCompact(t, node)

	want := "<span>a</span><span>b</span>"
	if html != want {
		t.Errorf("expected %q, got %q", want, html)
	}
}

func TestRenderNested(t *testing.T) {
	node := vdom.Div(
		vdom.Class("outer"),
		vdom.Ul(
			vdom.Li(vdom.Text("one")),
			vdom.Li(vdom.Text("two")),
		),
	)
	html := renderCompact(t, node)

	want := `<div class="outer"><ul><li>one</li><li>two</li></ul></div>`
	if html != want {
		t.Errorf("expected %q, got %q", want, html)
	}
}

func TestRenderPretty(t *testing.T) {
	node := vdom.Div(vdom.P(vdom.Text("x")))
	html, err := New(Config{Pretty: true}).RenderToString(node)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}

	if !strings.Contains(html, "\n") {
		t.Errorf("pretty output should contain newlines: %q", html)
	}
}

func TestRenderToWriter(t *testing.T) {
	var sb strings.Builder
	err := New(Config{}).RenderToWriter(&sb, vdom.Span(vdom.Text("w")))
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if sb.String() != "<span>w</span>" {
		t.Errorf("unexpected writer output: %q", sb.String())
	}
}
