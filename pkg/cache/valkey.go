package cache

import (
	"context"
	"time"

	valkey "github.com/valkey-io/valkey-go"
)

// ValkeyClient implements Cache using Valkey. Keys are namespaced with prefix so
// several instances can share one server.
type ValkeyClient struct {
	c      valkey.Client
	prefix string
}

func NewValkey(addr, password, prefix string) (*ValkeyClient, error) {
	opts := valkey.ClientOption{
		InitAddress: []string{addr},
	}
	if password != "" {
		opts.Username = "default"
		opts.Password = password
	}
	client, err := valkey.NewClient(opts)
	if err != nil {
		return nil, err
	}
	return &ValkeyClient{c: client, prefix: prefix}, nil
}

func (v *ValkeyClient) Get(ctx context.Context, key string) (string, bool) {
	res := v.c.Do(ctx, v.c.B().Get().Key(v.prefix+key).Build())
	if err := res.Error(); err != nil {
		return "", false
	}
	str, err := res.ToString()
	if err != nil {
		return "", false
	}
	return str, true
}

func (v *ValkeyClient) Set(ctx context.Context, key string, val string, ttl time.Duration) error {
	k := v.prefix + key
	if ttl > 0 {
		return v.c.Do(ctx, v.c.B().Set().Key(k).Value(val).PxMilliseconds(expiryMillis(ttl)).Build()).Error()
	}
	return v.c.Do(ctx, v.c.B().Set().Key(k).Value(val).Build()).Error()
}

// expiryMillis converts a positive ttl to PX milliseconds; the server rejects 0.
func expiryMillis(ttl time.Duration) int64 {
	ms := ttl.Milliseconds()
	if ttl%time.Millisecond != 0 {
		ms++
	}
	if ms < 1 {
		ms = 1
	}
	return ms
}

func (v *ValkeyClient) Delete(ctx context.Context, key string) error {
	return v.c.Do(ctx, v.c.B().Del().Key(v.prefix+key).Build()).Error()
}

// Ping reports whether the server answers.
func (v *ValkeyClient) Ping(ctx context.Context) error {
	return v.c.Do(ctx, v.c.B().Ping().Build()).Error()
}

func (v *ValkeyClient) Close() error {
	v.c.Close()
	return nil
}
