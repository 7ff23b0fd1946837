// control/httpdebug.go
// License: Apache-2.0
//
// HTTP snapshot endpoint for live inspection of a running bench:
// /stats, /config and /debug serve the Control snapshots as JSON.

package control

import (
	"log"

	"github.com/sugawarayuuta/sonnet"
	"github.com/valyala/fasthttp"

	"github.com/jagan3954/asyncfifo/api"
)

// DebugServer serves Control snapshots over HTTP.
type DebugServer struct {
	ctrl api.Control
	srv  *fasthttp.Server
}

// NewDebugServer wraps ctrl with an HTTP snapshot endpoint.
func NewDebugServer(ctrl api.Control) *DebugServer {
	ds := &DebugServer{ctrl: ctrl}
	ds.srv = &fasthttp.Server{Handler: ds.route}
	return ds
}

// ListenAndServe blocks serving snapshot requests on addr.
func (ds *DebugServer) ListenAndServe(addr string) error {
	log.Printf("[control] debug endpoint listening on %s", addr)
	return ds.srv.ListenAndServe(addr)
}

// Shutdown stops the listener gracefully.
func (ds *DebugServer) Shutdown() error {
	return ds.srv.Shutdown()
}

func (ds *DebugServer) route(ctx *fasthttp.RequestCtx) {
	var snapshot map[string]any
	switch string(ctx.Path()) {
	case "/stats":
		snapshot = ds.ctrl.Stats()
	case "/config":
		snapshot = ds.ctrl.GetConfig()
	case "/debug":
		snapshot = map[string]any{"stats": ds.ctrl.Stats(), "config": ds.ctrl.GetConfig()}
	default:
		ctx.Error("not found", fasthttp.StatusNotFound)
		return
	}
	body, err := sonnet.Marshal(snapshot)
	if err != nil {
		ctx.Error("snapshot encoding failed", fasthttp.StatusInternalServerError)
		return
	}
	ctx.SetContentType("application/json")
	ctx.SetStatusCode(fasthttp.StatusOK)
	_, _ = ctx.Write(body)
}
