package middleware

import (
	"errors"
	"fmt"
	"hotelier/shared/logger"
	"hotelier/transport/http/response"
	"net/http"
)

// Recover turns a handler panic into a 500 {error} response.
func (a *appMiddleware) Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}

			if err, ok := rec.(error); ok && errors.Is(err, http.ErrAbortHandler) {
				panic(rec)
			}

			err := fmt.Errorf("panic serving %s %s: %v", r.Method, r.URL.Path, rec)
			logger.ErrorWithStack(err)

			response.WithError(w, err)
		}()

		next.ServeHTTP(w, r)
	})
}
