// Package uitest provides testing helpers for flashbar components.
//
// The uitest package reduces boilerplate when testing banner output by
// providing render assertions and recording doubles for the observer
// and emitter interfaces.
//
// # Quick Start
//
//	func TestBanner_ShowsMessage(t *testing.T) {
//	    b := banner.New(func() banner.DisplayProps {
//	        return banner.DisplayProps{Open: true, Severity: status.SeverityInfo, Message: "Saved"}
//	    })
//	    defer b.Unmount()
//	    uitest.ExpectContains(t, b.Render(), "Saved")
//	}
//
// # Render Assertions
//
// Assert on rendered HTML output:
//
//	uitest.ExpectContains(t, node, "Saved")
//	uitest.ExpectNotContains(t, node, "error")
//	uitest.ExpectElement(t, node, "button")
//	uitest.ExpectAttribute(t, node, "role", "alert")
//
// # Recording Doubles
//
// RecordingObserver captures banner lifecycle events and CaptureEmitter
// captures emitted toast events for assertions:
//
//	obs := uitest.NewRecordingObserver()
//	b := banner.New(props, banner.WithObserver(obs))
//	...
//	if got := obs.Dismissals(); len(got) != 1 {
//	    t.Fatalf("expected one dismissal, got %v", got)
//	}
package uitest
