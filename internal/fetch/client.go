// Package fetch retrieves fantasy market and league payloads from the
// upstream statistics API, caching raw bodies through the JSON store.
package fetch

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	jsoniter "github.com/json-iterator/go"

	"afcon-fantasy-tracker/internal/store"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Headers carries the request headers the upstream expects. The challenge
// values (XRequestedWith, Cookie) are captured from a browser session and
// passed through untouched.
type Headers struct {
	UserAgent      string
	Accept         string
	AcceptLanguage string
	Referer        string
	XRequestedWith string
	Cookie         string
	Extra          map[string]string
}

// Client fetches upstream payloads with a politeness sleep between network
// requests. Cached bodies are served from the store unless force or live
// mode disables the cache.
type Client struct {
	HTTP         *http.Client
	Store        *store.JSONStore
	BaseURL      string
	Headers      Headers
	Sleep        time.Duration
	PrettyWrite  bool
	UseCache     bool
	DisableWrite bool
	Log          *slog.Logger
}

func NewClient(st *store.JSONStore, baseURL string, headers Headers, log *slog.Logger) *Client {
	if log == nil {
		log = slog.Default()
	}
	return &Client{
		HTTP:        &http.Client{Timeout: 15 * time.Second},
		Store:       st,
		BaseURL:     baseURL,
		Headers:     headers,
		Sleep:       250 * time.Millisecond,
		PrettyWrite: true,
		UseCache:    true,
		Log:         log,
	}
}

// FetchRaw downloads urlPath (like "/fantasy/round/803/players") with the
// given query and writes the body to relPath in the store. Returns raw
// bytes from cache or network.
func (c *Client) FetchRaw(ctx context.Context, urlPath string, query url.Values, relPath string, force bool) ([]byte, error) {
	if !force && c.UseCache && c.Store.Exists(relPath) {
		return c.Store.ReadRaw(relPath)
	}

	if c.Sleep > 0 {
		time.Sleep(c.Sleep)
	}

	full := c.BaseURL + urlPath
	if len(query) > 0 {
		full += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, full, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	c.applyHeaders(req)

	c.Log.Debug("fetching", slog.String("url", full))
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: GET %s: %v", ErrUpstream, urlPath, err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: GET %s: status %d body=%s", ErrUpstream, urlPath, resp.StatusCode, string(body))
	}

	if !c.DisableWrite {
		if err := c.Store.WriteRaw(relPath, body, c.PrettyWrite); err != nil {
			return nil, err
		}
	}
	return body, nil
}

func (c *Client) applyHeaders(req *http.Request) {
	h := c.Headers
	if h.UserAgent != "" {
		req.Header.Set("User-Agent", h.UserAgent)
	}
	if h.Accept != "" {
		req.Header.Set("Accept", h.Accept)
	} else {
		req.Header.Set("Accept", "application/json")
	}
	if h.AcceptLanguage != "" {
		req.Header.Set("Accept-Language", h.AcceptLanguage)
	}
	if h.Referer != "" {
		req.Header.Set("Referer", h.Referer)
	}
	if h.XRequestedWith != "" {
		req.Header.Set("X-Requested-With", h.XRequestedWith)
	}
	if h.Cookie != "" {
		req.Header.Set("Cookie", h.Cookie)
	}
	for k, v := range h.Extra {
		req.Header.Set(k, v)
	}
}
