package audio

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/mindful-ai-dude/multilingo/internal/language"
	"github.com/mindful-ai-dude/multilingo/internal/netx"
)

// PresignExpiry bounds how long a generated recording URL stays valid.
const PresignExpiry = 15 * time.Minute

// S3Settings configures the optional bucket of community-recorded phrases.
// A zero value disables the bucket; only the bundled manifest is served.
type S3Settings struct {
	Region       string
	BaseEndpoint string
	Bucket       string
	AccessKey    string
	SecretKey    string
}

func (s S3Settings) enabled() bool {
	return s.Bucket != ""
}

// Library resolves recording URLs: the configured bucket first, the bundled
// manifest as fallback.
type Library struct {
	settings S3Settings
}

func NewLibrary(settings S3Settings) *Library {
	return &Library{settings: settings}
}

func (l *Library) getPresignClient() (*s3.PresignClient, error) {
	cfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(l.settings.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			l.settings.AccessKey,
			l.settings.SecretKey,
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if l.settings.BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(l.settings.BaseEndpoint)
		}
	})

	return s3.NewPresignClient(client), nil
}

// StorageKey is the bucket layout for phrase recordings.
func StorageKey(englishPhrase string, lang language.Language) string {
	return fmt.Sprintf("audio/%s/%s", lang.Code(), englishPhrase)
}

// ResolveURL returns a playable URL for the phrase in the given language.
// With a bucket configured it presigns a GET against the bucket key; on
// presign failure or without a bucket it falls back to the bundled manifest.
func (l *Library) ResolveURL(ctx context.Context, englishPhrase string, lang language.Language) (string, bool) {
	if l.settings.enabled() {
		if url, err := l.presignGet(ctx, StorageKey(englishPhrase, lang)); err == nil {
			return url, true
		}
	}
	return BundledURL(englishPhrase, lang)
}

// Upload stores a community phrase recording under the bucket key for the
// phrase and language. Requires a configured bucket.
func (l *Library) Upload(ctx context.Context, englishPhrase string, lang language.Language, clip []byte) error {
	if !l.settings.enabled() {
		return fmt.Errorf("no recording bucket configured")
	}

	presignClient, err := l.getPresignClient()
	if err != nil {
		return err
	}

	bucket := l.settings.Bucket
	key := StorageKey(englishPhrase, lang)
	req, err := presignClient.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}, s3.WithPresignExpires(PresignExpiry))
	if err != nil {
		return err
	}
	return netx.UploadToPresignedURL(ctx, req.URL, clip)
}

func (l *Library) presignGet(ctx context.Context, key string) (string, error) {
	presignClient, err := l.getPresignClient()
	if err != nil {
		return "", err
	}

	bucket := l.settings.Bucket
	req, err := presignClient.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}, s3.WithPresignExpires(PresignExpiry))
	if err != nil {
		return "", err
	}
	return req.URL, nil
}
