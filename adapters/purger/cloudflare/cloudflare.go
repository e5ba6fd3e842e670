// Package cloudflare implements the purge port against the public
// Cloudflare 1.1.1.1 resolver cache purge API.
package cloudflare

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/dnspurge/dnspurge/domain/model"
)

// DefaultEndpoint is the public purge API of the 1.1.1.1 resolver.
const DefaultEndpoint = "https://one.one.one.one/api/v1/purge"

const defaultUserAgent = "dnspurge"

// The API acknowledges accepted purges with this phrase in the body.
const successMarker = "purge request queued"

// Options configures a Purger.
type Options struct {
	// Endpoint overrides DefaultEndpoint, mainly for tests.
	Endpoint string
	// UserAgent is sent with every request.
	UserAgent string
	// HTTPClient overrides the default client. The default carries no
	// timeout; cancellation is driven by the request context.
	HTTPClient *http.Client
}

// Purger sends purge requests over HTTP.
type Purger struct {
	endpoint  string
	userAgent string
	client    *http.Client
}

var _ model.Purger = (*Purger)(nil)

// New returns a Purger with defaults applied for unset options.
func New(opts Options) *Purger {
	p := &Purger{
		endpoint:  opts.Endpoint,
		userAgent: opts.UserAgent,
		client:    opts.HTTPClient,
	}
	if p.endpoint == "" {
		p.endpoint = DefaultEndpoint
	}
	if p.userAgent == "" {
		p.userAgent = defaultUserAgent
	}
	if p.client == nil {
		p.client = &http.Client{}
	}
	return p
}

// Purge submits one purge request and classifies the response. Transport
// and decode problems become FAILURE outcomes rather than errors so a bad
// record type never aborts the remaining ones.
func (p *Purger) Purge(ctx context.Context, req model.PurgeRequest) model.PurgeOutcome {
	fail := func(msg string) model.PurgeOutcome {
		return model.PurgeOutcome{Type: req.Type, Status: model.StatusFailure, Message: msg}
	}

	body, err := json.Marshal(req)
	if err != nil {
		return fail(err.Error())
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return fail(err.Error())
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("User-Agent", p.userAgent)

	resp, err := p.client.Do(httpReq)
	if err != nil {
		return fail(err.Error())
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fail(err.Error())
	}
	msg := strings.TrimSpace(string(respBody))

	status := model.StatusFailure
	if resp.StatusCode >= 200 && resp.StatusCode < 300 && strings.Contains(strings.ToLower(msg), successMarker) {
		status = model.StatusSuccess
	}
	return model.PurgeOutcome{Type: req.Type, Status: status, Message: msg}
}
