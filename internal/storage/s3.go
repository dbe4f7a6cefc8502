// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package storage provides an S3-compatible object storage client for the
// catalog's media. Content files may reference images by object key; the
// client turns those keys into public URLs and uploads local files. It wraps
// the AWS SDK v2 and uses path-style access (required by CEPH/MinIO).
package storage

import (
	"context"
	"fmt"
	"io"
	"mime"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"

	"yenisei/internal/slug"
)

// Config locates the media bucket.
type Config struct {
	Endpoint  string
	Region    string
	AccessKey string
	SecretKey string
	Bucket    string
	PublicURL string // optional CDN/direct URL for the bucket
}

const defaultRegion = "us-east-1"

// Client wraps an S3 client for one public media bucket.
type Client struct {
	s3        *s3.Client
	bucket    string
	endpoint  string
	publicURL string
}

// New creates an S3 storage client with path-style addressing. Returns
// (nil, nil) when neither an endpoint nor static credentials are set,
// allowing the app to start without storage. Without static credentials
// the default AWS chain (environment, shared config, instance role) is used.
func New(ctx context.Context, cfg Config, optFns ...func(*s3.Options)) (*Client, error) {
	static := cfg.AccessKey != "" && cfg.SecretKey != ""
	if cfg.Endpoint == "" && !static {
		return nil, nil
	}
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("s3 storage: bucket is required")
	}

	region := cfg.Region
	if region == "" {
		region = defaultRegion
	}
	loadOpts := []func(*config.LoadOptions) error{config.WithRegion(region)}
	if static {
		loadOpts = append(loadOpts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}
	awsCfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("s3 storage: load aws config: %w", err)
	}

	endpoint := strings.TrimRight(cfg.Endpoint, "/")
	s3Client := s3.NewFromConfig(awsCfg, append([]func(*s3.Options){func(o *s3.Options) {
		o.UsePathStyle = true
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	}}, optFns...)...)

	if endpoint == "" {
		endpoint = "https://s3." + region + ".amazonaws.com"
	}

	return &Client{
		s3:        s3Client,
		bucket:    cfg.Bucket,
		endpoint:  endpoint,
		publicURL: strings.TrimRight(cfg.PublicURL, "/"),
	}, nil
}

// Upload stores a public-read object in the media bucket.
func (c *Client) Upload(ctx context.Context, key, contentType string, body io.Reader, size int64) error {
	_, err := c.s3.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(c.bucket),
		Key:           aws.String(key),
		Body:          body,
		ContentLength: aws.Int64(size),
		ContentType:   aws.String(contentType),
		ACL:           s3types.ObjectCannedACLPublicRead,
	})
	if err != nil {
		return fmt.Errorf("s3 upload %s/%s: %w", c.bucket, key, err)
	}
	return nil
}

// UploadFile uploads a local file under prefix and returns its object key.
// The content type is derived from the file extension.
func (c *Client) UploadFile(ctx context.Context, localPath, prefix string) (string, error) {
	f, err := os.Open(localPath)
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return "", fmt.Errorf("stat upload: %w", err)
	}

	key := ObjectKey(prefix, localPath)
	if err := c.Upload(ctx, key, ContentType(localPath), f, info.Size()); err != nil {
		return "", err
	}
	return key, nil
}

// FileURL returns the public URL for an object key.
// Uses the configured public URL if set, otherwise builds a path-style URL.
func (c *Client) FileURL(key string) string {
	key = strings.TrimLeft(key, "/")
	if c.publicURL != "" {
		return c.publicURL + "/" + key
	}
	return c.endpoint + "/" + c.bucket + "/" + key
}

// Resolve maps an image reference from content to a URL. Absolute URLs and
// empty references pass through; anything else is an object key. A nil
// client leaves every reference unchanged.
func (c *Client) Resolve(ref string) string {
	if c == nil || ref == "" || IsAbsoluteURL(ref) {
		return ref
	}
	return c.FileURL(ref)
}

// Bucket returns the name of the media bucket.
func (c *Client) Bucket() string {
	return c.bucket
}

// IsAbsoluteURL reports whether ref already names a fetchable location.
func IsAbsoluteURL(ref string) bool {
	return strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") || strings.HasPrefix(ref, "//")
}

// ObjectKey builds a key under prefix from the base name of localPath. The
// name is slugged so keys stay ASCII; a name with nothing left to slug is
// used as is.
func ObjectKey(prefix, localPath string) string {
	base := filepath.Base(localPath)
	ext := strings.ToLower(filepath.Ext(base))
	name := slug.Generate(strings.TrimSuffix(base, filepath.Ext(base)))
	if name == "" {
		name = strings.TrimSuffix(base, filepath.Ext(base))
	}
	name += ext

	prefix = strings.Trim(prefix, "/")
	if prefix == "" {
		return name
	}
	return path.Join(prefix, name)
}

// ContentType guesses a MIME type from the file extension.
func ContentType(name string) string {
	if ct := mime.TypeByExtension(strings.ToLower(filepath.Ext(name))); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
