// Package imagesource resolves logo references to image bytes. HTTP(S) references are
// downloaded; anything else is read from a gocloud.dev bucket under a key prefix.
package imagesource

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"path"
	"strings"

	"truefans/config"
	"truefans/internal/domain/service"
	"truefans/internal/errors"

	"github.com/hashicorp/go-retryablehttp"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets
	_ "gocloud.dev/blob/gcsblob"  // gs:// buckets
	_ "gocloud.dev/blob/memblob"  // mem:// buckets
	"gocloud.dev/gcerrors"
)

// ErrImageTooLarge is returned when an image exceeds the configured size limit.
var ErrImageTooLarge = errors.New("image exceeds size limit")

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

type imageSource struct {
	bucket    *blob.Bucket // nil when no bucket is configured
	client    *retryablehttp.Client
	keyPrefix string
	maxBytes  int64
}

// New opens the configured bucket and builds the HTTP client.
func New(ctx context.Context, params Params) (service.ImageSource, error) {
	cfg := params.Config.ImageSource

	var bucket *blob.Bucket
	if cfg.BucketURL != "" {
		var err error
		bucket, err = blob.OpenBucket(ctx, cfg.BucketURL)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to open image bucket %s", cfg.BucketURL)
		}

		params.Append(fx.Hook{
			OnStop: func(_ context.Context) error {
				return errors.WithStack(bucket.Close())
			},
		})
	}

	client := retryablehttp.NewClient()
	client.RetryMax = cfg.RetryMax
	client.HTTPClient.Timeout = cfg.HTTPTimeout
	client.Logger = params.Logger

	return NewImageSource(bucket, client, cfg.KeyPrefix, cfg.MaxBytes), nil
}

// NewImageSource builds an image source from already opened collaborators.
func NewImageSource(bucket *blob.Bucket, client *retryablehttp.Client, keyPrefix string, maxBytes int64) service.ImageSource {
	return &imageSource{
		bucket:    bucket,
		client:    client,
		keyPrefix: keyPrefix,
		maxBytes:  maxBytes,
	}
}

// Fetch returns the raw bytes behind ref.
func (s *imageSource) Fetch(ctx context.Context, ref string) ([]byte, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, service.ErrImageNotFound
	}

	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return s.fetchHTTP(ctx, ref)
	}

	return s.fetchBlob(ctx, ref)
}

// fetchBlob reads <keyPrefix>/<basename of ref> from the bucket.
func (s *imageSource) fetchBlob(ctx context.Context, ref string) ([]byte, error) {
	if s.bucket == nil {
		return nil, errors.Wrap(service.ErrImageNotFound, "no image bucket configured")
	}

	key := path.Join(s.keyPrefix, path.Base(ref))
	reader, err := s.bucket.NewReader(ctx, key, nil)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, errors.Wrapf(service.ErrImageNotFound, "key %s", key)
		}

		return nil, errors.Wrapf(err, "failed to open image %s", key)
	}
	defer reader.Close()

	return s.readLimited(reader)
}

func (s *imageSource) fetchHTTP(ctx context.Context, ref string) ([]byte, error) {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, ref, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build image request")
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to download image %s", ref)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, errors.Wrapf(service.ErrImageNotFound, "url %s", ref)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return nil, errors.Errorf("unexpected status %d downloading image %s", resp.StatusCode, ref)
	}

	return s.readLimited(resp.Body)
}

func (s *imageSource) readLimited(r io.Reader) ([]byte, error) {
	if s.maxBytes <= 0 {
		data, err := io.ReadAll(r)

		return data, errors.WithStack(err)
	}

	data, err := io.ReadAll(io.LimitReader(r, s.maxBytes+1))
	if err != nil {
		return nil, errors.Wrap(err, "failed to read image")
	}
	if int64(len(data)) > s.maxBytes {
		return nil, ErrImageTooLarge
	}

	return data, nil
}
