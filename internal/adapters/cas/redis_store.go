package cas

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"go.trai.ch/shiori/internal/core/domain"
	"go.trai.ch/shiori/internal/core/ports"
	"go.trai.ch/zerr"
)

var (
	_ ports.BlobStore   = (*RedisStore)(nil)
	_ ports.BlobBackend = (*RedisBackend)(nil)
)

const (
	redisTimeout   = 5 * time.Second
	redisScanCount = 100
)

// RedisBackend implements ports.BlobBackend on a Redis instance shared between machines.
// Keys are laid out as prefix:namespace:key.
type RedisBackend struct {
	client *redis.Client
	prefix string
}

// NewRedisBackend connects to the Redis server at addr and verifies it is reachable.
func NewRedisBackend(ctx context.Context, addr, prefix string) (*RedisBackend, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})

	ctx, cancel := context.WithTimeout(ctx, redisTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreCreateFailed.Error()), "addr", addr)
	}

	return &RedisBackend{client: client, prefix: prefix}, nil
}

// Open returns the store of namespace.
func (b *RedisBackend) Open(namespace string) (ports.BlobStore, error) {
	return &RedisStore{client: b.client, prefix: b.prefix + ":" + namespace}, nil
}

// Namespaces lists every namespace holding a global file state.
func (b *RedisBackend) Namespaces() ([]string, error) {
	root := &RedisStore{client: b.client, prefix: b.prefix}
	keys, err := root.Keys()
	if err != nil {
		return nil, err
	}

	suffix := ":" + domain.GlobalStateKey
	var namespaces []string
	for _, key := range keys {
		if ns, ok := strings.CutSuffix(key, suffix); ok {
			namespaces = append(namespaces, ns)
		}
	}
	return namespaces, nil
}

// Clear deletes every key under the backend prefix.
func (b *RedisBackend) Clear() error {
	return (&RedisStore{client: b.client, prefix: b.prefix}).Clear()
}

// Close releases the connection pool.
func (b *RedisBackend) Close() error {
	return b.client.Close()
}

// RedisStore implements ports.BlobStore for one namespace of a RedisBackend.
type RedisStore struct {
	client *redis.Client
	prefix string
}

// Read returns the blob stored at key, or nil if it does not exist.
func (s *RedisStore) Read(key string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(context.Background(), redisTimeout)
	defer cancel()

	data, err := s.client.Get(ctx, s.redisKey(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreReadFailed.Error()), "key", key)
	}
	return data, nil
}

// Write stores blob at key without expiry.
func (s *RedisStore) Write(key string, blob []byte) error {
	ctx, cancel := context.WithTimeout(context.Background(), redisTimeout)
	defer cancel()

	if err := s.client.Set(ctx, s.redisKey(key), blob, 0).Err(); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "key", key)
	}
	return nil
}

// Keys lists the keys of every blob under the store prefix.
func (s *RedisStore) Keys() ([]string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), redisTimeout)
	defer cancel()

	var keys []string
	iter := s.client.Scan(ctx, 0, scanPattern(s.prefix), redisScanCount).Iterator()
	for iter.Next(ctx) {
		if key, ok := strings.CutPrefix(iter.Val(), s.prefix+":"); ok {
			keys = append(keys, key)
		}
	}
	if err := iter.Err(); err != nil {
		return nil, zerr.Wrap(err, domain.ErrStoreListFailed.Error())
	}
	return keys, nil
}

// Clear deletes every blob under the store prefix.
func (s *RedisStore) Clear() error {
	keys, err := s.Keys()
	if err != nil {
		return zerr.Wrap(err, domain.ErrStoreClearFailed.Error())
	}
	if len(keys) == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), redisTimeout)
	defer cancel()

	full := make([]string, len(keys))
	for i, k := range keys {
		full[i] = s.redisKey(k)
	}
	if err := s.client.Del(ctx, full...).Err(); err != nil {
		return zerr.Wrap(err, domain.ErrStoreClearFailed.Error())
	}
	return nil
}

func (s *RedisStore) redisKey(key string) string {
	return s.prefix + ":" + key
}

// globEscaper quotes the characters SCAN's MATCH treats as patterns.
var globEscaper = strings.NewReplacer(
	`\`, `\\`,
	`*`, `\*`,
	`?`, `\?`,
	`[`, `\[`,
	`]`, `\]`,
)

// scanPattern matches every key below prefix and nothing else.
func scanPattern(prefix string) string {
	return globEscaper.Replace(prefix) + ":*"
}
