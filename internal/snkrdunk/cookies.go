package snkrdunk

import (
	"context"
	"fmt"
	"net/http"
	"strings"
)

// StaticCookies forwards a fixed Cookie header, typically from config.
type StaticCookies struct {
	cookies []*http.Cookie
}

// NewStaticCookies parses a Cookie header value ("a=1; b=2"). An empty
// header yields a provider that forwards nothing.
func NewStaticCookies(header string) (*StaticCookies, error) {
	header = strings.TrimSpace(header)
	if header == "" {
		return &StaticCookies{}, nil
	}
	cookies, err := http.ParseCookie(header)
	if err != nil {
		return nil, fmt.Errorf("parsing cookie header: %w", err)
	}
	return &StaticCookies{cookies: cookies}, nil
}

// Cookies implements CookieProvider.
func (s *StaticCookies) Cookies(_ context.Context) ([]*http.Cookie, error) {
	return s.cookies, nil
}

type cookieHeaderKey struct{}

// ContextWithCookieHeader attaches a caller-supplied Cookie header to ctx so
// ContextCookies forwards it for the requests made under ctx.
func ContextWithCookieHeader(ctx context.Context, header string) context.Context {
	if strings.TrimSpace(header) == "" {
		return ctx
	}
	return context.WithValue(ctx, cookieHeaderKey{}, header)
}

// ContextCookies forwards a per-request Cookie header when one is attached to
// the context, and falls back to another provider otherwise.
type ContextCookies struct {
	fallback CookieProvider
}

// NewContextCookies creates a ContextCookies. fallback may be nil.
func NewContextCookies(fallback CookieProvider) *ContextCookies {
	return &ContextCookies{fallback: fallback}
}

// Cookies implements CookieProvider.
func (c *ContextCookies) Cookies(ctx context.Context) ([]*http.Cookie, error) {
	if header, ok := ctx.Value(cookieHeaderKey{}).(string); ok {
		cookies, err := http.ParseCookie(header)
		if err != nil {
			return nil, fmt.Errorf("parsing forwarded cookie header: %w", err)
		}
		return cookies, nil
	}
	if c.fallback == nil {
		return nil, nil
	}
	return c.fallback.Cookies(ctx)
}
