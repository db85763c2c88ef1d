// Package sfs talks to the Student Finance System, which already knows
// about students enrolled through loans and grants. When no address is
// configured a random stub stands in for it.
package sfs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/GlebRadaev/aescholar/internal/domain"
	"github.com/GlebRadaev/aescholar/internal/metrics"
	"github.com/GlebRadaev/aescholar/pkg/clients"
	"go.uber.org/zap"
)

const (
	maxRetries    = 3
	retryInterval = time.Second * 1
)

var ErrUnexpectedStatus = errors.New("unexpected status code")

// Result is the outcome of one enrollment lookup.
type Result struct {
	Confirmed bool
	SFSID     string
}

type Checker interface {
	Check(ctx context.Context, app domain.Application) (Result, error)
}

type Response struct {
	Reference string `json:"reference"`
	Status    string `json:"status"`
	SFSID     string `json:"sfs_id,omitempty"`
}

// HTTPChecker queries GET <addr>/api/enrollments/<reference>.
type HTTPChecker struct {
	url    string
	client clients.HTTPClientI
	sleep  func(ctx context.Context, d time.Duration) error
}

func NewHTTPChecker(addr string, client clients.HTTPClientI) *HTTPChecker {
	return &HTTPChecker{url: addr, client: client, sleep: sleepCtx}
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func (c *HTTPChecker) Check(ctx context.Context, app domain.Application) (Result, error) {
	target := c.url + "/api/enrollments/" + url.PathEscape(app.ReferenceNumber)
	if inst := app.PostsecondaryInfo.InstitutionName; inst != "" {
		target += "?institution=" + url.QueryEscape(inst)
	}

	var err error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		if ctx.Err() != nil {
			return Result{}, ctx.Err()
		}
		var status int
		var body []byte
		var headers http.Header
		status, body, headers, err = c.client.Get(ctx, target, nil)
		if err != nil {
			if attempt < maxRetries {
				if err := c.sleep(ctx, retryInterval*time.Duration(attempt)); err != nil {
					return Result{}, err
				}
				continue
			}
			metrics.SFSChecks.WithLabelValues("error").Inc()
			return Result{}, fmt.Errorf("sfs lookup for %s failed after %d retries: %w", app.ReferenceNumber, maxRetries, err)
		}

		switch status {
		case http.StatusTooManyRequests:
			wait := retryAfter(headers, attempt)
			zap.L().Warn("sfs rate limit, retrying",
				zap.String("reference", app.ReferenceNumber), zap.Int("attempt", attempt), zap.Duration("retryAfter", wait))
			if err := c.sleep(ctx, wait); err != nil {
				return Result{}, err
			}
			continue
		case http.StatusNoContent, http.StatusNotFound:
			metrics.SFSChecks.WithLabelValues("miss").Inc()
			return Result{}, nil
		case http.StatusOK:
			return c.decode(app, body)
		default:
			zap.L().Error("unexpected sfs status", zap.Int("status", status), zap.String("reference", app.ReferenceNumber))
			metrics.SFSChecks.WithLabelValues("error").Inc()
			return Result{}, ErrUnexpectedStatus
		}
	}
	metrics.SFSChecks.WithLabelValues("error").Inc()
	return Result{}, fmt.Errorf("sfs lookup for %s still rate limited after %d attempts", app.ReferenceNumber, maxRetries)
}

func (c *HTTPChecker) decode(app domain.Application, body []byte) (Result, error) {
	var resp Response
	if err := json.Unmarshal(body, &resp); err != nil {
		return Result{}, fmt.Errorf("failed to parse sfs response: %w", err)
	}
	if resp.Reference != app.ReferenceNumber {
		return Result{}, fmt.Errorf("reference mismatch: expected %s, got %s", app.ReferenceNumber, resp.Reference)
	}
	if resp.Status == "CONFIRMED" {
		metrics.SFSChecks.WithLabelValues("hit").Inc()
		return Result{Confirmed: true, SFSID: resp.SFSID}, nil
	}
	metrics.SFSChecks.WithLabelValues("miss").Inc()
	return Result{}, nil
}

func retryAfter(headers http.Header, attempt int) time.Duration {
	wait := retryInterval * time.Duration(attempt)
	if v := headers.Get("Retry-After"); v != "" {
		if seconds, err := strconv.Atoi(v); err == nil {
			wait = time.Duration(seconds) * time.Second
		}
	}
	return wait
}

// Stub confirms roughly 30% of full-time students.
type Stub struct {
	mu   sync.Mutex
	rand *rand.Rand
	now  func() time.Time
}

func NewStub(seed int64) *Stub {
	return &Stub{rand: rand.New(rand.NewSource(seed)), now: time.Now}
}

func (s *Stub) Check(_ context.Context, app domain.Application) (Result, error) {
	s.mu.Lock()
	roll := s.rand.Float64()
	s.mu.Unlock()

	if app.PostsecondaryInfo.EnrollmentStatus == "full_time" && roll > 0.7 {
		metrics.SFSChecks.WithLabelValues("hit").Inc()
		return Result{Confirmed: true, SFSID: fmt.Sprintf("SFS-%d", s.now().UnixMilli())}, nil
	}
	metrics.SFSChecks.WithLabelValues("miss").Inc()
	return Result{}, nil
}

// New picks the HTTP checker when an address is configured.
func New(addr string, client clients.HTTPClientI) Checker {
	if addr == "" {
		zap.L().Info("SFS address not set, using stub")
		return NewStub(time.Now().UnixNano())
	}
	return NewHTTPChecker(addr, client)
}
