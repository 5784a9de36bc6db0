package config

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"sync"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
)

// SecretsCache lazily loads API keys from AWS Secrets Manager into the
// process environment, at most once per TTL window. Concurrent callers
// during the init window share the single in-flight fetch instead of
// issuing duplicates; its failure reaches every waiter.
type SecretsCache struct {
	mu       sync.Mutex
	fetch    func(ctx context.Context, secretID string) (string, error)
	ttl      time.Duration
	loadedAt time.Time
	loaded   bool
	pending  *inflightFetch
	payload  map[string]string
}

// inflightFetch is one shared fetch attempt. err is written before done
// closes, so waiters may read it without the cache lock.
type inflightFetch struct {
	done chan struct{}
	err  error
}

// NewSecretsCache builds a cache backed by Secrets Manager.
func NewSecretsCache() *SecretsCache {
	return &SecretsCache{
		fetch: fetchFromSecretsManager,
		ttl:   SecretsTTL(),
	}
}

// NewSecretsCacheWithFetcher is used by tests to substitute the fetch.
func NewSecretsCacheWithFetcher(fetch func(ctx context.Context, secretID string) (string, error), ttl time.Duration) *SecretsCache {
	return &SecretsCache{fetch: fetch, ttl: ttl}
}

// EnsureInitialized loads the configured secret into the environment if
// the cache is stale. Local runs and runs without APP_SECRET_ID are a
// no-op (.env supplies the keys there).
func (c *SecretsCache) EnsureInitialized(ctx context.Context) error {
	secretID := os.Getenv("APP_SECRET_ID")
	if IsLocal() || secretID == "" {
		return nil
	}

	c.mu.Lock()
	if c.loaded && time.Since(c.loadedAt) < c.ttl {
		c.mu.Unlock()
		return nil
	}
	if c.pending != nil {
		// 進行中の初期化を共有し、その結果も共有する
		pending := c.pending
		c.mu.Unlock()
		select {
		case <-pending.done:
			return pending.err
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	pending := &inflightFetch{done: make(chan struct{})}
	c.pending = pending
	c.mu.Unlock()

	raw, err := c.fetch(ctx, secretID)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.pending = nil
	if err != nil {
		pending.err = fmt.Errorf("failed to fetch secret %q: %w", secretID, err)
		close(pending.done)
		return pending.err
	}

	c.apply(raw)
	c.loaded = true
	c.loadedAt = time.Now()
	close(pending.done)
	return nil
}

// apply decodes the secret string. A JSON payload sets every string value
// as an environment variable; a bare string becomes the OpenWeather key.
func (c *SecretsCache) apply(raw string) {
	if raw == "" {
		return
	}
	var payload map[string]interface{}
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		if os.Getenv("OPENWEATHER_API_KEY") == "" {
			os.Setenv("OPENWEATHER_API_KEY", raw)
		}
		return
	}
	c.payload = map[string]string{}
	for k, v := range payload {
		if s, ok := v.(string); ok {
			c.payload[k] = s
			os.Setenv(k, s)
		}
	}
}

// Payload exposes the decoded secret values for debugging.
func (c *SecretsCache) Payload() map[string]string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make(map[string]string, len(c.payload))
	for k, v := range c.payload {
		out[k] = v
	}
	return out
}

func fetchFromSecretsManager(ctx context.Context, secretID string) (string, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(Region()))
	if err != nil {
		return "", fmt.Errorf("failed to load AWS config: %w", err)
	}
	client := secretsmanager.NewFromConfig(cfg)
	out, err := client.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{SecretId: &secretID})
	if err != nil {
		return "", err
	}
	if out.SecretString == nil {
		log.Printf("Secret %s has no string payload\n", secretID)
		return "", nil
	}
	return *out.SecretString, nil
}
