package politeness

import (
	"fmt"
	"net/http"
	"sync"

	"golang.org/x/time/rate"
)

// userAgents is a small pool of current desktop browser identities,
// rotated round-robin across requests.
var userAgents = []string{
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/133.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/133.0.0.0 Safari/537.36",
	"Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/133.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:135.0) Gecko/20100101 Firefox/135.0",
}

// Transport is an http.RoundTripper that applies the polite-access
// pipeline before each request: UserAgent → RobotsCheck → RateLimiter → Delay → Send.
type Transport struct {
	Base        http.RoundTripper
	Robots      *RobotsChecker
	Delay       *Delay
	RateLimiter *rate.Limiter

	mu  sync.Mutex
	idx int
}

func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	ua := t.nextUserAgent()
	if req.Header.Get("User-Agent") == "" {
		req.Header.Set("User-Agent", ua)
	}

	if t.Robots != nil {
		allowed, err := t.Robots.IsAllowed(ua, req.URL.String())
		if err == nil && !allowed {
			return nil, fmt.Errorf("blocked by robots.txt: %s", req.URL.Path)
		}
	}

	if t.RateLimiter != nil {
		if err := t.RateLimiter.Wait(req.Context()); err != nil {
			return nil, fmt.Errorf("rate limiter: %w", err)
		}
	}

	if t.Delay != nil {
		if err := t.Delay.Wait(req.Context()); err != nil {
			return nil, fmt.Errorf("delay: %w", err)
		}
	}

	base := t.Base
	if base == nil {
		base = http.DefaultTransport
	}
	return base.RoundTrip(req)
}

func (t *Transport) nextUserAgent() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	ua := userAgents[t.idx%len(userAgents)]
	t.idx++
	return ua
}
