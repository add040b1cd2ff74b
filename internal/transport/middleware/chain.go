package middleware

import "net/http"

// Middleware wraps an http.Handler. It is assignable to chi's middleware
// signature, so a composed Chain can be handed straight to Router.Use.
type Middleware func(http.Handler) http.Handler

// Chain folds mws into one Middleware, first element outermost.
// An empty chain passes requests through untouched.
func Chain(mws ...Middleware) Middleware {
	return func(final http.Handler) http.Handler {
		for i := len(mws) - 1; i >= 0; i-- {
			if mws[i] == nil {
				continue
			}
			final = mws[i](final)
		}
		return final
	}
}
