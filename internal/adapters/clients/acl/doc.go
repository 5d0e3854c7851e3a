// Package acl is the anti-corruption layer between the quote vault and its
// remote backend: a PostgREST data API (quotes, user_favorites, collections)
// and a GoTrue auth API behind the same base URL.
//
// Backend rows are decoded into unexported records and translated into
// domain types here; nothing backend-shaped crosses the package boundary.
// That includes timestamps, which arrive as ISO-8601 strings, structured
// {seconds, nanos} objects or epoch milliseconds depending on who wrote the
// row, and leave as UTC [time.Time] (see [Timestamp]).
//
// # Adapters
//
//   - [QuoteAdapter] implements ports.QuoteSource and ports.HealthChecker.
//   - [AuthAdapter] implements ports.AuthSource and ports.CollectionSource.
//
// Both embed [BaseAdapter], which sends a [Call] through the instrumented
// client and maps failures with the call's [ErrorMapper].
//
// # Error mapping
//
// Data API failures go through [MapHTTPError]:
//   - 404, or no rows for a single-object read -> domain.ErrNotFound
//   - 409 or unique violation -> domain.ErrConflict
//   - 400/422 -> domain.ErrValidation
//   - row-level security rejection -> domain.ErrForbidden
//   - 401/403, 429, 5xx, transport errors, open circuit -> domain.ErrUnavailable
//
// Credential flows go through [MapAuthError] and always produce a
// domain.AuthError whose reason is invalid credentials, email already
// registered, network failure or a rejection carrying the backend message.
//
// # Credentials
//
// [NewAuthFunc] builds the client hook that sends the project key as apikey
// and the caller's session token (from ports.SessionTokenFromContext) as the
// bearer token, falling back to the project key for anonymous calls.
package acl
