package seed

import (
	"context"
	"fmt"
	"strings"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"

	"github.com/jaki95/lineup-genre-sorter/internal/domain"
)

// GCSLoader reads seed data from a Google Cloud Storage object given as
// gs://bucket/object, decoded by the object's extension.
type GCSLoader struct {
	credentialsFile string
}

func NewGCSLoader(credentialsFile string) *GCSLoader {
	return &GCSLoader{credentialsFile: credentialsFile}
}

func (g *GCSLoader) Name() string {
	return "gcs"
}

func (g *GCSLoader) Load(ctx context.Context, source string) ([]domain.SeedArtist, error) {
	bucket, object, err := ParseGCSURL(source)
	if err != nil {
		return nil, err
	}

	decode, err := DecoderFor(object)
	if err != nil {
		return nil, err
	}

	var opts []option.ClientOption
	if g.credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(g.credentialsFile))
	}

	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCS client: %w", err)
	}
	defer client.Close()

	reader, err := client.Bucket(bucket).Object(object).NewReader(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to open gs://%s/%s: %w", bucket, object, err)
	}
	defer reader.Close()

	return decode(reader)
}

// ParseGCSURL splits gs://bucket/object into bucket and object names.
func ParseGCSURL(source string) (bucket, object string, err error) {
	rest, ok := strings.CutPrefix(source, gcsScheme)
	if !ok {
		return "", "", fmt.Errorf("%w: %s", ErrUnsupportedSource, source)
	}
	bucket, object, _ = strings.Cut(rest, "/")
	if bucket == "" || object == "" {
		return "", "", fmt.Errorf("%w: expected gs://bucket/object, got %q", ErrUnsupportedSource, source)
	}
	return bucket, object, nil
}
