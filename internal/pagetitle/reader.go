// Package pagetitle reads the card title displayed on a marketplace product
// page using a headless Chromium browser.
package pagetitle

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// ErrTitleNotFound is returned when no candidate element holds visible text.
var ErrTitleNotFound = errors.New("title not found")

// DefaultSelectors are tried in order; the first visible match wins.
var DefaultSelectors = []string{
	"h1",
	"span.text-2xl.font-semibold.text-white",
	".text-2xl.font-semibold",
	`[class*="text-2xl"][class*="font-bold"]`,
}

const defaultTimeout = 30 * time.Second

// Reader opens pages in a lazily launched browser.
type Reader struct {
	bin        string
	controlURL string
	selectors  []string
	timeout    time.Duration
	log        *slog.Logger

	mu       sync.Mutex
	browser  *rod.Browser
	launched *launcher.Launcher
}

// Option configures the Reader.
type Option func(*Reader)

// WithBrowserBin sets the Chromium binary. Empty auto-detects.
func WithBrowserBin(bin string) Option {
	return func(r *Reader) {
		r.bin = bin
	}
}

// WithControlURL connects to an already running browser instead of
// launching one.
func WithControlURL(u string) Option {
	return func(r *Reader) {
		r.controlURL = u
	}
}

// WithSelectors overrides DefaultSelectors.
func WithSelectors(selectors []string) Option {
	return func(r *Reader) {
		r.selectors = selectors
	}
}

// WithTimeout bounds a single Read.
func WithTimeout(d time.Duration) Option {
	return func(r *Reader) {
		r.timeout = d
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(r *Reader) {
		r.log = l
	}
}

// NewReader creates a Reader. No browser is started until the first Read.
func NewReader(opts ...Option) *Reader {
	r := &Reader{
		selectors: DefaultSelectors,
		timeout:   defaultTimeout,
		log:       slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Read loads pageURL and returns the trimmed text of the first visible
// element matching the selectors.
func (r *Reader) Read(ctx context.Context, pageURL string) (string, error) {
	b, err := r.connect()
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	page, err := b.Context(ctx).Page(proto.TargetCreateTarget{URL: pageURL})
	if err != nil {
		return "", fmt.Errorf("opening page: %w", err)
	}
	defer func() {
		if cerr := page.Close(); cerr != nil {
			r.log.Debug("closing page", "error", cerr)
		}
	}()

	if err := page.WaitLoad(); err != nil {
		return "", fmt.Errorf("waiting for page load: %w", err)
	}

	return firstVisible(r.selectors, func(sel string) ([]element, error) {
		els, err := page.Elements(sel)
		if err != nil {
			return nil, err
		}
		out := make([]element, 0, len(els))
		for _, el := range els {
			visible, err := el.Visible()
			if err != nil {
				return nil, err
			}
			text, err := el.Text()
			if err != nil {
				return nil, err
			}
			out = append(out, element{text: text, visible: visible})
		}
		return out, nil
	})
}

// Close shuts the browser down if one was started. A process this Reader
// launched is also killed.
func (r *Reader) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.browser == nil {
		return nil
	}
	err := r.browser.Close()
	r.browser = nil
	if r.launched != nil {
		r.launched.Kill()
		r.launched = nil
	}
	if err != nil {
		return fmt.Errorf("closing browser: %w", err)
	}
	return nil
}

// connect starts or attaches to the shared browser. The browser outlives any
// single Read; only Close ends it.
func (r *Reader) connect() (*rod.Browser, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.browser != nil {
		return r.browser, nil
	}

	var l *launcher.Launcher
	controlURL := r.controlURL
	if controlURL == "" {
		l = launcher.New().
			Context(context.Background()).
			Headless(true).
			NoSandbox(true).
			Leakless(false)
		if r.bin != "" {
			l = l.Bin(r.bin)
		}
		u, err := l.Launch()
		if err != nil {
			return nil, fmt.Errorf("launching browser: %w", err)
		}
		controlURL = u
	}

	b := rod.New().ControlURL(controlURL)
	if err := b.Connect(); err != nil {
		if l != nil {
			l.Kill()
		}
		return nil, fmt.Errorf("connecting to browser: %w", err)
	}
	r.log.Debug("browser connected", "control_url", controlURL)

	r.browser = b
	r.launched = l
	return b, nil
}

type element struct {
	text    string
	visible bool
}

// firstVisible walks selectors in order and returns the first visible,
// non-empty text.
func firstVisible(selectors []string, query func(string) ([]element, error)) (string, error) {
	for _, sel := range selectors {
		els, err := query(sel)
		if err != nil {
			return "", fmt.Errorf("querying %q: %w", sel, err)
		}
		for _, el := range els {
			if !el.visible {
				continue
			}
			if text := strings.TrimSpace(el.text); text != "" {
				return text, nil
			}
		}
	}
	return "", ErrTitleNotFound
}
