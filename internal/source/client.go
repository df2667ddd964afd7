package source

import (
	"context"
	"crypto/tls"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"

	"github.com/ryanfowler/iterm2img/internal/core"
)

type client struct {
	c        *http.Client
	noEncode bool
}

func newClient(cfg Config) *client {
	transport := &http.Transport{
		// Content encodings are requested and decoded by the client itself.
		DisableCompression: true,
		Proxy: func(r *http.Request) (*url.URL, error) {
			if cfg.Proxy != nil {
				return cfg.Proxy, nil
			}
			return http.ProxyFromEnvironment(r)
		},
	}

	if cfg.Insecure {
		transport.TLSClientConfig = &tls.Config{
			InsecureSkipVerify: true,
		}
	}

	return &client{
		c: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: transport,
		},
		noEncode: cfg.NoEncode,
	}
}

func (c *client) newRequest(ctx context.Context, u *url.URL) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Accept", "image/*,*/*;q=0.8")
	req.Header.Set("User-Agent", core.UserAgent)
	if !c.noEncode {
		req.Header.Set("Accept-Encoding", "gzip, zstd")
	}
	return req, nil
}

// do sends the request, transparently decoding any requested content
// encoding of the response body.
func (c *client) do(req *http.Request) (*http.Response, error) {
	resp, err := c.c.Do(req)
	if err != nil {
		return nil, err
	}
	if c.noEncode {
		return resp, nil
	}

	switch strings.ToLower(strings.TrimSpace(resp.Header.Get("Content-Encoding"))) {
	case "gzip":
		gz, err := gzip.NewReader(resp.Body)
		if err != nil {
			resp.Body.Close()
			return nil, err
		}
		resp.Body = &decodeReader{r: gz, closeFn: gz.Close, c: resp.Body}
	case "zstd":
		zr, err := zstd.NewReader(resp.Body)
		if err != nil {
			resp.Body.Close()
			return nil, err
		}
		resp.Body = &decodeReader{r: zr, closeFn: func() error { zr.Close(); return nil }, c: resp.Body}
	default:
		return resp, nil
	}

	resp.Header.Del("Content-Encoding")
	resp.Header.Del("Content-Length")
	resp.ContentLength = -1
	return resp, nil
}

type decodeReader struct {
	r       io.Reader
	closeFn func() error
	c       io.Closer
}

func (r *decodeReader) Read(p []byte) (int, error) {
	return r.r.Read(p)
}

func (r *decodeReader) Close() error {
	err := r.closeFn()
	err2 := r.c.Close()
	if err != nil {
		return err
	}
	return err2
}

// timeoutError represents the error when a request times out.
type timeoutError struct {
	timeout time.Duration
}

func (err timeoutError) Error() string {
	return "request timed out after " + err.timeout.String()
}
