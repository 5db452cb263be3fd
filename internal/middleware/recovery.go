package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"go.uber.org/zap"
)

// Recovery turns handler panics into a 500 envelope. exposeStack adds the
// stack trace to the response body.
func Recovery(logger *zap.Logger, exposeStack bool) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					if err == http.ErrAbortHandler {
						panic(err)
					}
					stack := string(debug.Stack())
					LoggerFrom(r.Context(), logger).Error("Panic recovered",
						zap.Any("error", err),
						zap.String("path", r.URL.Path),
						zap.String("method", r.Method),
						zap.String("stack", stack),
					)

					resp := ErrorResponse{Error: ErrorCodeInternal, Message: ErrorMessageInternal}
					if exposeStack {
						resp.Message = fmt.Sprint(err)
						resp.Stack = stack
					}
					WriteErrorResponse(w, r, http.StatusInternalServerError, resp)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
