package config

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureInitializedSkipsWithoutSecretID(t *testing.T) {
	t.Setenv("APP_SECRET_ID", "")

	var calls int32
	cache := NewSecretsCacheWithFetcher(func(ctx context.Context, secretID string) (string, error) {
		atomic.AddInt32(&calls, 1)
		return "", nil
	}, time.Minute)

	require.NoError(t, cache.EnsureInitialized(context.Background()))
	assert.Zero(t, atomic.LoadInt32(&calls))
}

func TestEnsureInitializedSkipsLocal(t *testing.T) {
	t.Setenv("APP_SECRET_ID", "kisekae/prod")
	t.Setenv("IS_LOCAL", "true")

	var calls int32
	cache := NewSecretsCacheWithFetcher(func(ctx context.Context, secretID string) (string, error) {
		atomic.AddInt32(&calls, 1)
		return "", nil
	}, time.Minute)

	require.NoError(t, cache.EnsureInitialized(context.Background()))
	assert.Zero(t, atomic.LoadInt32(&calls))
}

func TestEnsureInitializedAppliesJSONPayload(t *testing.T) {
	t.Setenv("APP_SECRET_ID", "kisekae/prod")
	t.Setenv("IS_LOCAL", "")
	t.Setenv("OPENWEATHER_API_KEY", "")
	t.Setenv("RAKUTEN_APP_ID", "")

	cache := NewSecretsCacheWithFetcher(func(ctx context.Context, secretID string) (string, error) {
		assert.Equal(t, "kisekae/prod", secretID)
		return `{"OPENWEATHER_API_KEY":"ow-key","RAKUTEN_APP_ID":"rk-id"}`, nil
	}, time.Minute)

	require.NoError(t, cache.EnsureInitialized(context.Background()))

	assert.Equal(t, "ow-key", OpenWeatherKey())
	assert.Equal(t, "rk-id", RakutenAppID())
	assert.Equal(t, map[string]string{
		"OPENWEATHER_API_KEY": "ow-key",
		"RAKUTEN_APP_ID":      "rk-id",
	}, cache.Payload())
}

func TestEnsureInitializedBareStringBecomesWeatherKey(t *testing.T) {
	t.Setenv("APP_SECRET_ID", "kisekae/prod")
	t.Setenv("IS_LOCAL", "")
	t.Setenv("OPENWEATHER_API_KEY", "")

	cache := NewSecretsCacheWithFetcher(func(ctx context.Context, secretID string) (string, error) {
		return "bare-key", nil
	}, time.Minute)

	require.NoError(t, cache.EnsureInitialized(context.Background()))
	assert.Equal(t, "bare-key", OpenWeatherKey())
}

func TestEnsureInitializedCachesWithinTTL(t *testing.T) {
	t.Setenv("APP_SECRET_ID", "kisekae/prod")
	t.Setenv("IS_LOCAL", "")

	var calls int32
	cache := NewSecretsCacheWithFetcher(func(ctx context.Context, secretID string) (string, error) {
		atomic.AddInt32(&calls, 1)
		return `{}`, nil
	}, time.Hour)

	require.NoError(t, cache.EnsureInitialized(context.Background()))
	require.NoError(t, cache.EnsureInitialized(context.Background()))
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestEnsureInitializedRefreshesAfterTTL(t *testing.T) {
	t.Setenv("APP_SECRET_ID", "kisekae/prod")
	t.Setenv("IS_LOCAL", "")

	var calls int32
	cache := NewSecretsCacheWithFetcher(func(ctx context.Context, secretID string) (string, error) {
		atomic.AddInt32(&calls, 1)
		return `{}`, nil
	}, time.Nanosecond)

	require.NoError(t, cache.EnsureInitialized(context.Background()))
	time.Sleep(time.Millisecond)
	require.NoError(t, cache.EnsureInitialized(context.Background()))
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestEnsureInitializedSharesInFlightFetch(t *testing.T) {
	t.Setenv("APP_SECRET_ID", "kisekae/prod")
	t.Setenv("IS_LOCAL", "")

	var calls int32
	release := make(chan struct{})
	cache := NewSecretsCacheWithFetcher(func(ctx context.Context, secretID string) (string, error) {
		atomic.AddInt32(&calls, 1)
		<-release
		return `{}`, nil
	}, time.Hour)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, cache.EnsureInitialized(context.Background()))
		}()
	}

	// 最初のフェッチが走り始めるのを待ってから解放する
	for atomic.LoadInt32(&calls) == 0 {
		time.Sleep(time.Millisecond)
	}
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestEnsureInitializedSharedFetchFailureReachesAllWaiters(t *testing.T) {
	t.Setenv("APP_SECRET_ID", "kisekae/prod")
	t.Setenv("IS_LOCAL", "")

	var calls, failures int32
	release := make(chan struct{})
	cache := NewSecretsCacheWithFetcher(func(ctx context.Context, secretID string) (string, error) {
		atomic.AddInt32(&calls, 1)
		<-release
		return "", context.DeadlineExceeded
	}, time.Hour)

	var wg sync.WaitGroup
	call := func() {
		defer wg.Done()
		if err := cache.EnsureInitialized(context.Background()); err != nil {
			atomic.AddInt32(&failures, 1)
		}
	}

	// フェッチが走り始めてから待ち合わせ側を起動する
	wg.Add(1)
	go call()
	for atomic.LoadInt32(&calls) == 0 {
		time.Sleep(time.Millisecond)
	}
	for i := 0; i < 3; i++ {
		wg.Add(1)
		go call()
	}
	time.Sleep(10 * time.Millisecond)
	close(release)
	wg.Wait()

	// 待ち合わせた呼び出しも含めて全員が失敗を観測する
	assert.Equal(t, int32(4), atomic.LoadInt32(&failures))
}

func TestEnsureInitializedFetchErrorPropagates(t *testing.T) {
	t.Setenv("APP_SECRET_ID", "kisekae/prod")
	t.Setenv("IS_LOCAL", "")

	cache := NewSecretsCacheWithFetcher(func(ctx context.Context, secretID string) (string, error) {
		return "", context.DeadlineExceeded
	}, time.Hour)

	err := cache.EnsureInitialized(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "kisekae/prod")
}
