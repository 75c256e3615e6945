// Package server provides the HTTP/WebSocket server for flashbar.
//
// The server exposes:
//
//   - GET /          server-rendered preview page with a live snackbar
//   - GET /ws        WebSocket endpoint for toast push delivery
//   - POST /toast    emit a toast to all connected clients
//   - GET /healthz   liveness probe
//   - GET /metrics   Prometheus metrics
//
// The WebSocket Hub implements toast.Emitter, so application code can
// push notifications to every connected browser:
//
//	srv := server.New(nil)
//	toast.Success(srv.Hub(), "Import finished")
//	srv.Run()
package server
