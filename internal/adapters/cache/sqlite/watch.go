package sqlite

import (
	"context"
	"sync"

	"github.com/jsamuelsen/quotevault/internal/platform/logging"
)

// hub wakes watchers of a topic after a committed write. Wake-ups carry no
// data; watchers re-run their query.
type hub struct {
	mu   sync.Mutex
	subs map[string]map[chan struct{}]struct{}
}

func newHub() *hub {
	return &hub{subs: make(map[string]map[chan struct{}]struct{})}
}

func (h *hub) subscribe(topic string) (<-chan struct{}, func()) {
	ch := make(chan struct{}, 1)

	h.mu.Lock()
	if h.subs[topic] == nil {
		h.subs[topic] = make(map[chan struct{}]struct{})
	}
	h.subs[topic][ch] = struct{}{}
	h.mu.Unlock()

	return ch, func() {
		h.mu.Lock()
		defer h.mu.Unlock()

		delete(h.subs[topic], ch)
		if len(h.subs[topic]) == 0 {
			delete(h.subs, topic)
		}
	}
}

// publish never blocks. A pending wake-up already covers this write.
func (h *hub) publish(topic string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for ch := range h.subs[topic] {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

func (h *hub) watchers(topic string) int {
	h.mu.Lock()
	defer h.mu.Unlock()

	return len(h.subs[topic])
}

// watch runs query now and after every wake-up on topic, sending results
// that differ from the last one sent. The output holds at most one pending
// result; a slow reader sees only the latest. The channel closes when ctx ends.
func watch[T any](
	ctx context.Context,
	h *hub,
	topic string,
	query func(context.Context) (T, error),
	equal func(a, b T) bool,
) (<-chan T, error) {
	wake, unsubscribe := h.subscribe(topic)

	initial, err := query(ctx)
	if err != nil {
		unsubscribe()
		return nil, err
	}

	out := make(chan T, 1)
	out <- initial

	go func() {
		defer close(out)
		defer unsubscribe()

		last := initial

		for {
			select {
			case <-ctx.Done():
				return
			case <-wake:
			}

			next, err := query(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return
				}

				logging.FromContext(ctx).WarnContext(ctx, "re-reading watched cache query",
					"topic", topic, "error", err)

				continue
			}

			if equal(last, next) {
				continue
			}

			last = next

			select {
			case <-out:
			default:
			}

			out <- next
		}
	}()

	return out, nil
}
