package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/jsamuelsen11/agency-site-api/internal/adapters/http/dto"
)

// errPanicked is what the client sees for a recovered panic. The panic value
// and stack go to the log only.
var errPanicked = errors.New("handler panicked")

// Recovery returns middleware that turns a handler panic into a problem+json
// 500. The panic value, stack and matched route are logged. When the handler
// already started its response only the log entry is written.
//
// http.ErrAbortHandler is re-raised so net/http can drop the connection
// without a stack dump.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rw := newResponseWriter(w)

			defer func() {
				v := recover()
				if v == nil {
					return
				}
				if err, ok := v.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(v)
				}

				logger.ErrorContext(r.Context(), "panic recovered",
					slog.String("panic", fmt.Sprint(v)),
					slog.String("stack", string(debug.Stack())),
					slog.String("method", r.Method),
					slog.String("route", routePattern(r)),
					slog.Bool("response_started", rw.headerWritten),
				)

				if !rw.headerWritten {
					dto.WriteErrorResponse(rw, r, errPanicked)
				}
			}()

			next.ServeHTTP(rw, r)
		})
	}
}
