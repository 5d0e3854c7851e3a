//go:build integration

package integration

import (
	"cmp"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

// quoteRow is a row of the fake quotes table.
type quoteRow struct {
	ID         string    `json:"id"`
	Content    string    `json:"content"`
	Author     string    `json:"author"`
	Category   string    `json:"category"`
	Tags       []string  `json:"tags"`
	Likes      int       `json:"likes"`
	IsFeatured bool      `json:"is_featured"`
	CreatedAt  time.Time `json:"created_at"`
}

type favoriteRow struct {
	UserID    string    `json:"user_id"`
	QuoteID   string    `json:"quote_id"`
	CreatedAt time.Time `json:"created_at"`
}

type fakeUser struct {
	id       string
	email    string
	password string
	name     string
}

// fakeBackend speaks enough of the PostgREST and GoTrue dialects for the
// acl adapters: quote listing with filters and keyset paging, password
// sign-in, the user lookup and the favorites table.
type fakeBackend struct {
	server *httptest.Server
	down   atomic.Bool

	mu        sync.Mutex
	seq       int
	quotes    []quoteRow
	users     []fakeUser
	tokens    map[string]string
	favorites []favoriteRow
	apiKeys   []string
}

var cursorFilter = regexp.MustCompile(`^\(created_at\.lt\.("(?:[^"\\]|\\.)*"),and\(created_at\.eq\.(?:"(?:[^"\\]|\\.)*"),id\.lt\.("(?:[^"\\]|\\.)*")\)\)$`)

func newFakeBackend(t *testing.T) *fakeBackend {
	t.Helper()

	b := &fakeBackend{tokens: make(map[string]string)}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /rest/v1/quotes", b.listQuotes)
	mux.HandleFunc("POST /rest/v1/quotes", b.createQuotes)
	mux.HandleFunc("GET /rest/v1/user_favorites", b.listFavorites)
	mux.HandleFunc("POST /rest/v1/user_favorites", b.addFavorite)
	mux.HandleFunc("DELETE /rest/v1/user_favorites", b.removeFavorite)
	mux.HandleFunc("POST /auth/v1/token", b.signIn)
	mux.HandleFunc("GET /auth/v1/user", b.currentUser)
	mux.HandleFunc("POST /auth/v1/logout", b.signOut)

	b.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if b.down.Load() {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}

		b.mu.Lock()
		b.apiKeys = append(b.apiKeys, r.Header.Get("apikey"))
		b.mu.Unlock()

		mux.ServeHTTP(w, r)
	}))
	t.Cleanup(b.server.Close)

	return b
}

func (b *fakeBackend) URL() string {
	return b.server.URL
}

// addUser registers a user that can sign in with password.
func (b *fakeBackend) addUser(id, email, password, name string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.users = append(b.users, fakeUser{id: id, email: email, password: password, name: name})
}

// addQuotes inserts rows; the last one is the newest.
func (b *fakeBackend) addQuotes(rows ...quoteRow) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.quotes = append(b.quotes, rows...)
}

func (b *fakeBackend) favoriteIDs(userID string) []string {
	b.mu.Lock()
	defer b.mu.Unlock()

	var ids []string

	for _, f := range b.favorites {
		if f.UserID == userID {
			ids = append(ids, f.QuoteID)
		}
	}

	return ids
}

func (b *fakeBackend) quoteCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return len(b.quotes)
}

func (b *fakeBackend) seenAPIKeys() []string {
	b.mu.Lock()
	defer b.mu.Unlock()

	return slices.Compact(slices.Sorted(slices.Values(b.apiKeys)))
}

func (b *fakeBackend) listQuotes(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	b.mu.Lock()
	rows := slices.Clone(b.quotes)
	b.mu.Unlock()

	slices.SortFunc(rows, func(x, y quoteRow) int {
		if c := y.CreatedAt.Compare(x.CreatedAt); c != 0 {
			return c
		}

		return cmp.Compare(y.ID, x.ID)
	})

	rows = slices.DeleteFunc(rows, func(row quoteRow) bool {
		return !matchQuote(row, q)
	})

	if filter := q.Get("or"); filter != "" {
		m := cursorFilter.FindStringSubmatch(filter)
		if m == nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"code": "PGRST100", "message": "bad or filter"})
			return
		}

		ts, err := time.Parse(time.RFC3339Nano, unquote(m[1]))
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"code": "22007", "message": err.Error()})
			return
		}

		id := unquote(m[2])
		rows = slices.DeleteFunc(rows, func(row quoteRow) bool {
			return !(row.CreatedAt.Before(ts) || (row.CreatedAt.Equal(ts) && row.ID < id))
		})
	}

	if limit, err := strconv.Atoi(q.Get("limit")); err == nil && limit < len(rows) {
		rows = rows[:limit]
	}

	if rows == nil {
		rows = []quoteRow{}
	}

	writeJSON(w, http.StatusOK, rows)
}

func matchQuote(row quoteRow, q map[string][]string) bool {
	get := func(key string) string {
		if v := q[key]; len(v) > 0 {
			return v[0]
		}

		return ""
	}

	if v := get("id"); v != "" {
		switch {
		case strings.HasPrefix(v, "eq."):
			if row.ID != strings.TrimPrefix(v, "eq.") {
				return false
			}
		case strings.HasPrefix(v, "in.("):
			var ids []string
			for part := range strings.SplitSeq(strings.TrimSuffix(strings.TrimPrefix(v, "in.("), ")"), ",") {
				ids = append(ids, unquote(part))
			}

			if !slices.Contains(ids, row.ID) {
				return false
			}
		}
	}

	if v := get("category"); v != "" && row.Category != strings.TrimPrefix(v, "eq.") {
		return false
	}

	if get("is_featured") == "eq.true" && !row.IsFeatured {
		return false
	}

	for key, field := range map[string]string{"content": row.Content, "author": row.Author} {
		v := get(key)
		if v == "" {
			continue
		}

		// Simple filters are not unquoted: a quoted pattern matches literally.
		pattern := strings.TrimPrefix(v, "ilike.")
		if len(pattern) < 2 || !strings.HasPrefix(pattern, "*") || !strings.HasSuffix(pattern, "*") {
			return false
		}

		needle := likeUnescape.Replace(pattern[1 : len(pattern)-1])
		if !strings.Contains(strings.ToLower(field), strings.ToLower(needle)) {
			return false
		}
	}

	return true
}

func (b *fakeBackend) createQuotes(w http.ResponseWriter, r *http.Request) {
	var rows []quoteRow
	if err := json.NewDecoder(r.Body).Decode(&rows); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"code": "PGRST102", "message": err.Error()})
		return
	}

	b.mu.Lock()
	for i := range rows {
		b.seq++
		rows[i].ID = fmt.Sprintf("seed-%03d", b.seq)

		if rows[i].CreatedAt.IsZero() {
			rows[i].CreatedAt = time.Now().UTC()
		}
	}

	b.quotes = append(b.quotes, rows...)
	b.mu.Unlock()

	writeJSON(w, http.StatusCreated, rows)
}

func (b *fakeBackend) userFor(r *http.Request) (fakeUser, bool) {
	token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")

	b.mu.Lock()
	defer b.mu.Unlock()

	id, ok := b.tokens[token]
	if !ok {
		return fakeUser{}, false
	}

	for _, u := range b.users {
		if u.id == id {
			return u, true
		}
	}

	return fakeUser{}, false
}

func userJSON(u fakeUser) map[string]any {
	return map[string]any{
		"id":            u.id,
		"email":         u.email,
		"created_at":    "2025-01-01T00:00:00Z",
		"user_metadata": map[string]string{"display_name": u.name},
	}
}

func (b *fakeBackend) signIn(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || r.URL.Query().Get("grant_type") != "password" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error_code": "validation_failed", "msg": "bad request"})
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	for _, u := range b.users {
		if u.email == body.Email && u.password == body.Password {
			b.seq++
			token := fmt.Sprintf("token-%d", b.seq)
			b.tokens[token] = u.id

			writeJSON(w, http.StatusOK, map[string]any{
				"access_token":  token,
				"refresh_token": "refresh-" + token,
				"expires_in":    3600,
				"user":          userJSON(u),
			})

			return
		}
	}

	writeJSON(w, http.StatusBadRequest, map[string]string{"error_code": "invalid_credentials", "msg": "Invalid login credentials"})
}

func (b *fakeBackend) currentUser(w http.ResponseWriter, r *http.Request) {
	u, ok := b.userFor(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error_code": "bad_jwt", "msg": "invalid JWT"})
		return
	}

	writeJSON(w, http.StatusOK, userJSON(u))
}

func (b *fakeBackend) signOut(w http.ResponseWriter, r *http.Request) {
	token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")

	b.mu.Lock()
	delete(b.tokens, token)
	b.mu.Unlock()

	w.WriteHeader(http.StatusNoContent)
}

func (b *fakeBackend) addFavorite(w http.ResponseWriter, r *http.Request) {
	u, ok := b.userFor(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"code": "PGRST301", "message": "JWT expired"})
		return
	}

	var row favoriteRow
	if err := json.NewDecoder(r.Body).Decode(&row); err != nil || row.UserID != u.id {
		writeJSON(w, http.StatusForbidden, map[string]string{"code": "42501", "message": "row-level security"})
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	exists := slices.ContainsFunc(b.favorites, func(f favoriteRow) bool {
		return f.UserID == row.UserID && f.QuoteID == row.QuoteID
	})
	if !exists {
		row.CreatedAt = time.Now().UTC()
		b.favorites = append(b.favorites, row)
	}

	w.WriteHeader(http.StatusCreated)
}

func (b *fakeBackend) removeFavorite(w http.ResponseWriter, r *http.Request) {
	if _, ok := b.userFor(r); !ok {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"code": "PGRST301", "message": "JWT expired"})
		return
	}

	userID := strings.TrimPrefix(r.URL.Query().Get("user_id"), "eq.")
	quoteID := strings.TrimPrefix(r.URL.Query().Get("quote_id"), "eq.")

	b.mu.Lock()
	b.favorites = slices.DeleteFunc(b.favorites, func(f favoriteRow) bool {
		return f.UserID == userID && f.QuoteID == quoteID
	})
	b.mu.Unlock()

	w.WriteHeader(http.StatusNoContent)
}

func (b *fakeBackend) listFavorites(w http.ResponseWriter, r *http.Request) {
	userID := strings.TrimPrefix(r.URL.Query().Get("user_id"), "eq.")

	b.mu.Lock()
	rows := make([]favoriteRow, 0)

	for _, f := range b.favorites {
		if f.UserID == userID {
			rows = append(rows, f)
		}
	}
	b.mu.Unlock()

	slices.SortStableFunc(rows, func(x, y favoriteRow) int {
		return y.CreatedAt.Compare(x.CreatedAt)
	})

	writeJSON(w, http.StatusOK, rows)
}

var likeUnescape = strings.NewReplacer(`\\`, `\`, `\%`, `%`, `\_`, `_`)

func unquote(v string) string {
	if s, err := strconv.Unquote(v); err == nil {
		return s
	}

	return v
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
