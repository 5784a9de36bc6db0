package config

import (
	"os"
	"strconv"
	"time"
)

// ランタイム値は常に最新の環境変数から読む。Secrets Manager 経由で
// 後から注入されるキーがあるため、起動時に固定しない。

// Region returns the AWS region, defaulting to ap-northeast-1.
func Region() string {
	if r := os.Getenv("AWS_REGION"); r != "" {
		return r
	}
	return "ap-northeast-1"
}

// OpenWeatherKey returns the OpenWeather API key.
func OpenWeatherKey() string {
	return os.Getenv("OPENWEATHER_API_KEY")
}

// RakutenAppID returns the Rakuten application id.
func RakutenAppID() string {
	return os.Getenv("RAKUTEN_APP_ID")
}

// RakutenAffiliateID returns the optional Rakuten affiliate id.
func RakutenAffiliateID() string {
	return os.Getenv("RAKUTEN_AFFILIATE_ID")
}

// IllustrationBucket returns the S3 bucket holding member-card artwork.
func IllustrationBucket() string {
	return os.Getenv("ILLUSTRATION_BUCKET_NAME")
}

// IsLocal reports whether the process runs against local infrastructure
// (.env instead of Secrets Manager, local DynamoDB endpoint).
func IsLocal() bool {
	return os.Getenv("IS_LOCAL") == "true"
}

// IsProduction reports whether error responses must mask internal detail.
func IsProduction() bool {
	return os.Getenv("APP_ENV") == "production"
}

// SecretsTTL returns how long a fetched secret stays fresh. Defaults to
// 60 minutes; invalid values fall back to the default.
func SecretsTTL() time.Duration {
	minutes := 60
	if v := os.Getenv("SECRETS_TTL_MINUTES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			minutes = n
		}
	}
	return time.Duration(minutes) * time.Minute
}
