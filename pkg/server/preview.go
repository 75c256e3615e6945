package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/flashbar-dev/flashbar/pkg/banner"
	"github.com/flashbar-dev/flashbar/pkg/render"
	"github.com/flashbar-dev/flashbar/pkg/status"
	"github.com/flashbar-dev/flashbar/pkg/vdom"
)

// clientScript connects to /ws and turns pushed events into DOM custom
// events, then renders flashbar:toast events as snackbars.
const clientScript = `
(function () {
  var proto = location.protocol === "https:" ? "wss:" : "ws:";
  var ws = new WebSocket(proto + "//" + location.host + "/ws");
  ws.onmessage = function (msg) {
    var ev = JSON.parse(msg.data);
    window.dispatchEvent(new CustomEvent(ev.name, { detail: ev.data }));
  };
  window.addEventListener("flashbar:toast", function (e) {
    var d = e.detail || {};
    var el = document.createElement("div");
    el.className = "flashbar-snackbar flashbar-bottom-left flashbar-" + d.level + " flashbar-open";
    el.setAttribute("role", "alert");
    el.textContent = (d.title ? d.title + ": " : "") + d.message;
    document.body.appendChild(el);
    setTimeout(function () { el.remove(); }, window.FLASHBAR_AUTO_HIDE_MS || 6000);
  });
})();
`

// handlePreview renders the demo page. An optional ?severity=...&message=...
// query renders a server-side snackbar so the markup can be inspected
// without a WebSocket round trip.
func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	autoHide := s.config.AutoHide
	if autoHide == 0 {
		autoHide = banner.DefaultAutoHide
	}

	page := vdom.Html(
		vdom.Head(
			vdom.Meta(vdom.Attr{Key: "charset", Value: "utf-8"}),
			vdom.Title(vdom.Text("flashbar preview")),
		),
		vdom.Body(
			vdom.Main(
				vdom.H1(vdom.Text("flashbar")),
				vdom.P(vdom.Text("POST /toast to push a notification to this page.")),
				vdom.Pre(vdom.Text(`curl -X POST /toast -d '{"severity":"success","message":"Saved"}'`)),
				s.renderServerBanner(r),
			),
			vdom.Script(vdom.Raw(fmt.Sprintf("window.FLASHBAR_AUTO_HIDE_MS = %d;", autoHide/time.Millisecond))),
			vdom.Script(vdom.Raw(clientScript)),
		),
	)

	renderer := render.New(render.Config{Pretty: true})
	html, err := renderer.RenderToString(page)
	if err != nil {
		s.logger.Error("preview render failed", "error", err)
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, "<!DOCTYPE html>\n"+html)
}

// renderServerBanner renders a snackbar from query parameters, or
// nothing when no severity is given.
func (s *Server) renderServerBanner(r *http.Request) *vdom.VNode {
	severity := status.Severity(r.URL.Query().Get("severity"))
	if !severity.Valid() {
		return vdom.Nothing()
	}

	message := r.URL.Query().Get("message")
	if message == "" {
		message = "Example notification"
	}

	b := banner.New(func() banner.DisplayProps {
		return banner.DisplayProps{
			Open:     true,
			Severity: severity,
			Message:  message,
		}
	}, banner.WithAutoHide(0))
	defer b.Unmount()

	return b.Render()
}
