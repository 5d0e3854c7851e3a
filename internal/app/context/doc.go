// Package context memoizes lookups for the lifetime of one request.
//
// The HTTP layer installs a RequestContext per request; the repository then
// resolves expensive, request-stable values through it, most often the
// signed-in user:
//
//	user, err := reqctx.Get(ctx, reqctx.Provider[*domain.User]{
//	    Key:   "current-user",
//	    Fetch: auth.CurrentUser,
//	})
//
// Concurrent lookups of the same key share one fetch. Failed fetches are not
// memoized, so a later lookup in the same request tries again. Without a
// RequestContext in ctx, Get simply calls Fetch.
package context
