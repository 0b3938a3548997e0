// Package artifact opens the static files read once at startup. A location is
// either a local path (leading '~' expanded) or an s3://bucket/key URI served by
// an S3-compatible store. Names ending in .zst or .lz4 are decompressed on the
// fly.
package artifact

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/klauspost/compress/zstd"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/pierrec/lz4/v4"

	"houseprice/internal/common/fsutil"
)

// ErrNotFound is returned when an artifact does not exist.
var ErrNotFound = errors.New("artifact not found")

const s3Scheme = "s3://"

// S3Options configures the client used for s3:// locations.
type S3Options struct {
	Endpoint  string
	Region    string
	AccessKey string
	SecretKey string
	UseSSL    bool
}

// Opener resolves artifact locations. The S3 client is created on first use,
// so purely local setups never need S3 settings.
type Opener struct {
	opts S3Options

	once   sync.Once
	client *minio.Client
	err    error
}

// NewOpener returns an Opener using opts for s3:// locations.
func NewOpener(opts S3Options) *Opener {
	return &Opener{opts: opts}
}

// ParseS3URI splits s3://bucket/key. ok is false for anything else.
func ParseS3URI(uri string) (bucket, key string, ok bool) {
	if !strings.HasPrefix(uri, s3Scheme) {
		return "", "", false
	}
	rest := strings.TrimPrefix(uri, s3Scheme)
	bucket, key, found := strings.Cut(rest, "/")
	if !found || bucket == "" || key == "" {
		return "", "", false
	}
	return bucket, key, true
}

// Open returns a reader over the decompressed artifact contents.
func (o *Opener) Open(ctx context.Context, location string) (io.ReadCloser, error) {
	if strings.TrimSpace(location) == "" {
		return nil, fmt.Errorf("empty artifact location")
	}
	var (
		raw io.ReadCloser
		err error
	)
	if strings.HasPrefix(location, s3Scheme) {
		raw, err = o.openS3(ctx, location)
	} else {
		raw, err = openLocal(location)
	}
	if err != nil {
		return nil, err
	}
	_, comp := fsutil.SplitCompression(location)
	rc, err := decompress(raw, comp)
	if err != nil {
		_ = raw.Close()
		return nil, fmt.Errorf("%s: %w", location, err)
	}
	return rc, nil
}

// ReadAll reads the whole artifact into memory.
func (o *Opener) ReadAll(ctx context.Context, location string) ([]byte, error) {
	rc, err := o.Open(ctx, location)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	b, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", location, err)
	}
	return b, nil
}

func openLocal(path string) (io.ReadCloser, error) {
	p, err := fsutil.ExpandHome(path)
	if err != nil {
		return nil, err
	}
	abs, err := filepath.Abs(p)
	if err != nil {
		return nil, fmt.Errorf("abs path: %w", err)
	}
	f, err := os.Open(abs)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", abs, ErrNotFound)
		}
		return nil, err
	}
	return f, nil
}

func (o *Opener) s3Client() (*minio.Client, error) {
	o.once.Do(func() {
		if o.opts.Endpoint == "" {
			o.err = fmt.Errorf("s3 endpoint not configured")
			return
		}
		o.client, o.err = minio.New(o.opts.Endpoint, &minio.Options{
			Creds:  credentials.NewStaticV4(o.opts.AccessKey, o.opts.SecretKey, ""),
			Secure: o.opts.UseSSL,
			Region: o.opts.Region,
		})
	})
	return o.client, o.err
}

func (o *Opener) openS3(ctx context.Context, uri string) (io.ReadCloser, error) {
	bucket, key, ok := ParseS3URI(uri)
	if !ok {
		return nil, fmt.Errorf("malformed s3 uri: %s", uri)
	}
	client, err := o.s3Client()
	if err != nil {
		return nil, err
	}
	obj, err := client.GetObject(ctx, bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", uri, err)
	}
	// GetObject is lazy; Stat surfaces missing keys before the first Read.
	if _, err := obj.Stat(); err != nil {
		_ = obj.Close()
		resp := minio.ToErrorResponse(err)
		if resp.Code == "NoSuchKey" || resp.Code == "NotFound" {
			return nil, fmt.Errorf("%s: %w", uri, ErrNotFound)
		}
		return nil, fmt.Errorf("stat %s: %w", uri, err)
	}
	return obj, nil
}

type readCloser struct {
	io.Reader
	close func() error
}

func (r readCloser) Close() error { return r.close() }

func decompress(raw io.ReadCloser, comp string) (io.ReadCloser, error) {
	switch comp {
	case fsutil.CompressionZstd:
		dec, err := zstd.NewReader(raw)
		if err != nil {
			return nil, fmt.Errorf("zstd: %w", err)
		}
		return readCloser{Reader: dec, close: func() error {
			dec.Close()
			return raw.Close()
		}}, nil
	case fsutil.CompressionLZ4:
		return readCloser{Reader: lz4.NewReader(raw), close: raw.Close}, nil
	default:
		return raw, nil
	}
}
