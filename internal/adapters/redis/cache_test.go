package redisad_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"

	redisad "tripster/internal/adapters/redis"
)

type payload struct {
	Title string  `json:"title"`
	Total float64 `json:"total"`
}

func TestCacheRoundTrip(t *testing.T) {
	mr := miniredis.RunT(t)
	c := redisad.New(mr.Addr(), "", 0)
	ctx := context.Background()

	var out payload
	ok, err := c.Get(ctx, "itinerary:itn_x", &out)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if ok {
		t.Fatal("expected a miss on empty cache")
	}

	in := payload{Title: "Goa Trip", Total: 15000}
	if err := c.Set(ctx, "itinerary:itn_x", in, 60); err != nil {
		t.Fatalf("set: %v", err)
	}

	ok, err = c.Get(ctx, "itinerary:itn_x", &out)
	if err != nil || !ok {
		t.Fatalf("get after set: ok=%v err=%v", ok, err)
	}
	if out != in {
		t.Fatalf("got %+v want %+v", out, in)
	}

	if err := c.Del(ctx, "itinerary:itn_x"); err != nil {
		t.Fatalf("del: %v", err)
	}
	ok, _ = c.Get(ctx, "itinerary:itn_x", &out)
	if ok {
		t.Fatal("expected a miss after delete")
	}
}

func TestCacheTTLExpires(t *testing.T) {
	mr := miniredis.RunT(t)
	c := redisad.New(mr.Addr(), "", 0)
	ctx := context.Background()

	if err := c.Set(ctx, "k", payload{Title: "x"}, 30); err != nil {
		t.Fatalf("set: %v", err)
	}
	mr.FastForward(31 * time.Second)

	var out payload
	ok, _ := c.Get(ctx, "k", &out)
	if ok {
		t.Fatal("expected expiry after TTL")
	}
}
