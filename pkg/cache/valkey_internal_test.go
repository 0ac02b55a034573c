package cache

import (
	"testing"
	"time"
)

func TestExpiryMillis(t *testing.T) {
	cases := map[time.Duration]int64{
		time.Nanosecond:         1,
		500 * time.Microsecond:  1,
		time.Millisecond:        1,
		1500 * time.Microsecond: 2,
		250 * time.Millisecond:  250,
		30 * time.Second:        30000,
	}
	for ttl, want := range cases {
		if got := expiryMillis(ttl); got != want {
			t.Fatalf("expiryMillis(%s) = %d, want %d", ttl, got, want)
		}
	}
}
