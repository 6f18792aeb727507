package httpapi

import (
	"context"
	"net/http"
)

// upstreamContext derives the context for a daemon call. A client going away
// does not cancel a call once issued; shutdown of the server does. Request
// scoped values such as the request id are kept.
func (s *Server) upstreamContext(r *http.Request) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.WithoutCancel(r.Context()))
	stop := context.AfterFunc(s.baseCtx, cancel)
	return ctx, func() {
		stop()
		cancel()
	}
}
