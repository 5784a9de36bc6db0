package services

import (
	"context"
	"log"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"kisekae_server/config"
	"kisekae_server/rules"
)

// IllustrationResolver returns an artwork URL for a member card.
type IllustrationResolver interface {
	ResolveURL(ctx context.Context, group rules.GeneralAgeGroup) string
}

// S3IllustrationService serves presigned read URLs for the per-age-group
// member-card artwork stored in S3. Resolution is best-effort: any
// failure yields an empty URL and the card renders without artwork.
type S3IllustrationService struct {
	Presigner *s3.PresignClient
}

// NewS3IllustrationService builds the service from the ambient AWS config.
func NewS3IllustrationService() *S3IllustrationService {
	cfg, err := awsconfig.LoadDefaultConfig(context.TODO(), awsconfig.WithRegion(config.Region()))
	if err != nil {
		log.Fatalf("Failed to load AWS config: %v", err)
	}
	return &S3IllustrationService{
		Presigner: s3.NewPresignClient(s3.NewFromConfig(cfg)),
	}
}

// ResolveURL presigns a read for the group's illustration object.
func (s *S3IllustrationService) ResolveURL(ctx context.Context, group rules.GeneralAgeGroup) string {
	bucket := config.IllustrationBucket()
	if bucket == "" {
		return ""
	}

	key := "illustrations/" + string(group) + ".png"
	req, err := s.Presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(15*time.Minute))
	if err != nil {
		log.Printf("Failed to presign illustration %s: %v\n", key, err)
		return ""
	}
	return req.URL
}
