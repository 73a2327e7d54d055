package visa

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/dharmasatrya/swifttrip/internal/ratelimit"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, nil, nil, zap.NewNop())
}

func TestLookup_VisaFree(t *testing.T) {
	var gotPath string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{"category":{"name":"Visa Free"},"dur":90}`))
	})

	resp, err := client.Lookup(context.Background(), "hk", "Japan")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}

	if gotPath != "/visa/HK/JP" {
		t.Errorf("unexpected request path %s", gotPath)
	}
	if resp.Status != string(StatusVisaFree) {
		t.Errorf("expected visa_free, got %s", resp.Status)
	}
	if resp.MaxStayDays == nil || *resp.MaxStayDays != 90 {
		t.Errorf("expected 90 days, got %v", resp.MaxStayDays)
	}
	if resp.Message != "Visa not required (up to 90 days)" {
		t.Errorf("unexpected message %q", resp.Message)
	}
	if resp.DestinationName != "Japan" {
		t.Errorf("expected destination name Japan, got %q", resp.DestinationName)
	}
}

func TestLookup_StringDurationAndEVisa(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"category":{"name":"eVisa"},"dur":"30"}`))
	})

	resp, err := client.Lookup(context.Background(), "IN", "AU")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if resp.Status != string(StatusEVisa) || resp.Message != "eVisa available" {
		t.Errorf("unexpected response %+v", resp)
	}
	if resp.MaxStayDays == nil || *resp.MaxStayDays != 30 {
		t.Errorf("expected 30 days, got %v", resp.MaxStayDays)
	}
}

func TestLookup_MissingCategory(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"dur":null}`))
	})

	resp, err := client.Lookup(context.Background(), "HK", "JP")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if resp.Status != string(StatusUnknown) || resp.Message != "Information unavailable" {
		t.Errorf("unexpected response %+v", resp)
	}
	if resp.MaxStayDays != nil {
		t.Errorf("expected no stay length, got %d", *resp.MaxStayDays)
	}
}

func TestLookup_UpstreamFailure(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	if _, err := client.Lookup(context.Background(), "HK", "JP"); err == nil {
		t.Error("expected error for upstream 500")
	}
}

func TestLookup_InvalidCountry(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("upstream should not be called for an invalid country")
	})

	_, err := client.Lookup(context.Background(), "Atlantis", "JP")
	if !errors.Is(err, ErrInvalidCountry) {
		t.Errorf("expected ErrInvalidCountry, got %v", err)
	}
}

func TestClassify(t *testing.T) {
	tests := map[string]Status{
		"visa free":       StatusVisaFree,
		" VISA FREE ":     StatusVisaFree,
		"eVisa":           StatusEVisa,
		"Visa Required":   StatusVisaRequired,
		"visa on arrival": StatusUnknown,
		"":                StatusUnknown,
	}

	for in, want := range tests {
		if got := Classify(in); got != want {
			t.Errorf("Classify(%q) = %s, want %s", in, got, want)
		}
	}
}

func TestMessage_VisaFreeWithoutDuration(t *testing.T) {
	if got := Message(Result{Status: StatusVisaFree}); got != "Visa not required" {
		t.Errorf("unexpected message %q", got)
	}
	if got := Message(Result{Status: StatusVisaRequired}); got != "Visa required" {
		t.Errorf("unexpected message %q", got)
	}
}

func TestResolveCountry(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{"jp", "JP", false},
		{"Japan", "JP", false},
		{"  germany ", "DE", false},
		{"ZZ", "", true},
		{"", "", true},
		{"Narnia", "", true},
	}

	for _, tt := range tests {
		region, err := ResolveCountry(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ResolveCountry(%q) expected error, got %s", tt.input, region)
			}
			continue
		}
		if err != nil {
			t.Errorf("ResolveCountry(%q): %v", tt.input, err)
			continue
		}
		if region.String() != tt.want {
			t.Errorf("ResolveCountry(%q) = %s, want %s", tt.input, region, tt.want)
		}
	}
}

func TestLookup_UsesVisaQuota(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.Write([]byte(`{"category":{"name":"Visa Required"}}`))
	}))
	t.Cleanup(srv.Close)

	limiter := ratelimit.NewSourceLimiter(ratelimit.Config{RequestsPerSecond: 100, BurstSize: 100})
	if err := limiter.SetLimit(SourceName, ratelimit.Config{RequestsPerSecond: 0.1, BurstSize: 1}); err != nil {
		t.Fatalf("SetLimit: %v", err)
	}
	client := NewClient(srv.URL, nil, limiter, zap.NewNop())

	if _, err := client.Lookup(context.Background(), "HK", "JP"); err != nil {
		t.Fatalf("first lookup should use the burst: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if _, err := client.Lookup(ctx, "HK", "JP"); err == nil {
		t.Error("expected the second lookup to wait past its deadline")
	}
	if got := atomic.LoadInt32(&calls); got != 1 {
		t.Errorf("expected one upstream call, got %d", got)
	}
}
