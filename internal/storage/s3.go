package storage

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/HenriqueMND/agendamento-app/internal/config"
)

// AvatarStore envia fotos de perfil para um bucket compatível com S3 e
// devolve a URL pública do objeto.
type AvatarStore struct {
	client    *s3.Client
	bucket    string
	publicURL string
}

func NewAvatarStore(cfg *config.Config) *AvatarStore {
	opts := s3.Options{
		Region: cfg.StorageRegion,
		Credentials: aws.NewCredentialsCache(
			credentials.NewStaticCredentialsProvider(
				cfg.StorageAccessKey,
				cfg.StorageSecretKey,
				"",
			),
		),
		UsePathStyle: true,
	}
	if cfg.StorageEndpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.StorageEndpoint)
	}

	return &AvatarStore{
		client:    s3.New(opts),
		bucket:    cfg.StorageBucket,
		publicURL: strings.TrimRight(cfg.StoragePublicURL, "/"),
	}
}

func (s *AvatarStore) Put(
	ctx context.Context,
	key string,
	data []byte,
	contentType string,
) (string, error) {

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", err
	}

	return s.URLFor(key), nil
}

func (s *AvatarStore) URLFor(key string) string {
	if s.publicURL != "" {
		return fmt.Sprintf("%s/%s", s.publicURL, key)
	}
	return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.bucket, key)
}
