package blogengine

import (
	"testing"
	"time"
)

func TestLoginLimiterBlocksAfterMax(t *testing.T) {
	limiter := NewLoginLimiter(2, 200*time.Millisecond)
	ip := "203.0.113.10"

	if !limiter.Check(ip) {
		t.Fatal("expected fresh ip to pass")
	}
	limiter.Record(ip)
	if !limiter.Check(ip) {
		t.Fatal("expected ip below the limit to pass")
	}
	limiter.Record(ip)
	if limiter.Check(ip) {
		t.Fatal("expected ip at the limit to be blocked")
	}
}

func TestLoginLimiterResetsAfterWindow(t *testing.T) {
	limiter := NewLoginLimiter(1, 150*time.Millisecond)
	ip := "203.0.113.20"

	limiter.Record(ip)
	if limiter.Check(ip) {
		t.Fatal("expected ip at the limit to be blocked")
	}

	time.Sleep(200 * time.Millisecond)
	if !limiter.Check(ip) {
		t.Fatal("expected attempt after window to be allowed")
	}
}

func TestLoginLimiterIsPerIP(t *testing.T) {
	limiter := NewLoginLimiter(1, 200*time.Millisecond)

	limiter.Record("203.0.113.30")
	if limiter.Check("203.0.113.30") {
		t.Fatal("expected first ip to be blocked after max")
	}
	if !limiter.Check("203.0.113.31") {
		t.Fatal("expected second ip to be allowed independently")
	}
}
