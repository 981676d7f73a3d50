package services

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/dmitrijs2005/jobkeeper/internal/common"
	"github.com/dmitrijs2005/jobkeeper/internal/filex"
	sc "github.com/dmitrijs2005/jobkeeper/internal/server/config"
	"github.com/google/uuid"
)

const presignValidity = 15 * time.Minute

// Seams over the AWS SDK so tests can run without an S3 endpoint.
var (
	loadDefaultAWSConfig  = awsconfig.LoadDefaultConfig
	newS3ClientFromConfig = s3.NewFromConfig
	newS3PresignClient    = func(c *s3.Client) *s3.PresignClient { return s3.NewPresignClient(c) }
	presignPutObject      = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignPutObject(ctx, in, optFns...)
	}
)

// Upload is a presigned PUT target and the URL the object will be served at.
type Upload struct {
	UploadURL string
	PublicURL string
	Key       string
}

// StorageService hands out presigned S3 uploads under users/<user_id>/.
type StorageService struct {
	config *sc.Config
}

func NewStorageService(cfg *sc.Config) *StorageService {
	return &StorageService{config: cfg}
}

func (s *StorageService) getPresignClient(ctx context.Context) (*s3.PresignClient, error) {
	cfg, err := loadDefaultAWSConfig(ctx,
		awsconfig.WithRegion(s.config.S3Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.config.S3RootUser,
			s.config.S3RootPassword,
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(s.config.S3BaseEndpoint)
		o.UsePathStyle = true
	})

	return newS3PresignClient(client), nil
}

// ObjectKey builds the storage key for a user-supplied path. Cleaning it as
// an absolute path keeps it inside the user's prefix. An empty path gets a
// random name.
func ObjectKey(userID, p string) (string, error) {
	if userID == "" {
		return "", common.ErrAuth
	}
	p = strings.TrimPrefix(path.Clean("/"+strings.TrimSpace(p)), "/")
	if p == "" {
		p = uuid.NewString()
	}
	return path.Join("users", userID, p), nil
}

// PresignUpload returns a presigned PUT for p. Sizes over filex.MaxUploadSize
// are refused.
func (s *StorageService) PresignUpload(ctx context.Context, userID, p, contentType string, size int64) (*Upload, error) {
	if size < 0 || size > filex.MaxUploadSize {
		return nil, fmt.Errorf("%w: %w", common.ErrWrite, filex.ErrTooLarge)
	}

	key, err := ObjectKey(userID, p)
	if err != nil {
		return nil, err
	}

	presignClient, err := s.getPresignClient(ctx)
	if err != nil {
		return nil, err
	}

	in := &s3.PutObjectInput{
		Bucket: aws.String(s.config.S3Bucket),
		Key:    aws.String(key),
	}
	if contentType != "" {
		in.ContentType = aws.String(contentType)
	}

	req, err := presignPutObject(presignClient, ctx, in, s3.WithPresignExpires(presignValidity))
	if err != nil {
		return nil, err
	}

	return &Upload{
		UploadURL: req.URL,
		PublicURL: strings.TrimSuffix(s.config.S3PublicBaseURL, "/") + "/" + key,
		Key:       key,
	}, nil
}
