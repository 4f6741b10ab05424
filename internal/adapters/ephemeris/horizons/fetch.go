package horizons

import (
	"context"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	perr "kundali/internal/platform/errors"
)

// fetch issues one GET with retries and backoff for transient responses
func (p *Provider) fetch(ctx context.Context, query string) ([]byte, error) {
	url := p.opts.BaseURL + "?" + query
	attempts := 0
	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, perr.Wrapf(err, perr.ErrorCodeUnknown, "horizons new request failed")
		}
		req.Header.Set("User-Agent", p.opts.UserAgent)

		start := p.now()
		resp, err := p.http.Do(req)
		lat := p.now().Sub(start)

		if err != nil {
			if !p.shouldRetry(attempts) {
				return nil, perr.Wrapf(err, perr.ErrorCodeUnavailable, "horizons request failed")
			}
			back := p.backoff(attempts)
			p.log.Warn().Dur("retry_in", back).Int("attempt", attempts).Msg("horizons transport error retrying")
			p.sleep(back)
			attempts++
			continue
		}

		p.log.Debug().
			Int("status", resp.StatusCode).
			Int("attempt", attempts).
			Dur("latency", lat).
			Msg("horizons http response")

		switch resp.StatusCode {
		case http.StatusOK:
			body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
			cerr := resp.Body.Close()
			if err != nil {
				return nil, perr.Wrapf(err, perr.ErrorCodeUnavailable, "horizons body read failed")
			}
			if cerr != nil {
				return nil, perr.Wrapf(cerr, perr.ErrorCodeUnavailable, "horizons body close failed")
			}
			return body, nil
		case http.StatusTooManyRequests, http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
			if !p.shouldRetry(attempts) {
				_ = drainAndClose(resp.Body)
				return nil, perr.Unavailablef("horizons transient status %d", resp.StatusCode)
			}
			wait := retryAfter(resp.Header)
			if wait <= 0 {
				wait = p.backoff(attempts)
			}
			p.log.Warn().Dur("retry_in", wait).Int("status", resp.StatusCode).Msg("horizons transient status retrying")
			_ = drainAndClose(resp.Body)
			p.sleep(wait)
			attempts++
			continue
		default:
			// read a small tail for diagnostics then return
			body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
			_ = resp.Body.Close()
			return nil, perr.Newf(perr.ErrorCodeUnknown, "horizons unexpected status %d body %s", resp.StatusCode, strings.TrimSpace(string(body)))
		}
	}
}

func (p *Provider) backoff(attempt int) time.Duration {
	d := p.opts.RetryBase
	// simple exponential with cap
	ms := int64(d / time.Millisecond)
	ms = ms << uint(attempt)
	max := int64(30 * time.Second / time.Millisecond)
	if ms > max {
		ms = max
	}
	return time.Duration(ms) * time.Millisecond
}

func (p *Provider) shouldRetry(attempt int) bool {
	return attempt < p.opts.MaxRetries
}

func retryAfter(h http.Header) time.Duration {
	s := h.Get("Retry-After")
	if s == "" {
		return 0
	}
	sec, err := strconv.Atoi(s)
	if err != nil || sec <= 0 {
		return 0
	}
	return time.Duration(sec) * time.Second
}

func drainAndClose(rc io.ReadCloser) error {
	_, _ = io.Copy(io.Discard, io.LimitReader(rc, 512))
	return rc.Close()
}
