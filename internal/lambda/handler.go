package lambda

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/aitrends/gh-aitrends/internal/commands"
	"github.com/aitrends/gh-aitrends/internal/snapshot"
)

// NewHandler returns a Lambda handler that runs the update pipeline and
// uploads the snapshot files to S3. Unless OUTPUT_DIR says otherwise the
// snapshots are written under /tmp, the only writable path in the Lambda
// filesystem.
func NewHandler(app *commands.App) func(context.Context, interface{}) (string, error) {
	return func(ctx context.Context, event interface{}) (string, error) {
		s3Bucket := os.Getenv("S3_BUCKET_NAME")
		if s3Bucket == "" {
			return "", fmt.Errorf("S3_BUCKET_NAME environment variable must be set")
		}
		keyPrefix := os.Getenv("S3_KEY_PREFIX")
		if keyPrefix == "" {
			keyPrefix = "assets"
		}

		if os.Getenv("OUTPUT_DIR") == "" {
			app.Config.OutputDir = "/tmp/assets"
		}

		var buf bytes.Buffer
		if err := app.RunUpdate(ctx, &buf); err != nil {
			return "", fmt.Errorf("update: %w", err)
		}

		cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(os.Getenv("AWS_REGION")))
		if err != nil {
			return "", fmt.Errorf("failed to load AWS config: %w", err)
		}
		svc := s3.NewFromConfig(cfg)

		for _, name := range snapshot.Files() {
			data, err := os.ReadFile(filepath.Join(app.Config.OutputDir, name))
			if err != nil {
				return "", fmt.Errorf("reading snapshot %s: %w", name, err)
			}
			_, err = svc.PutObject(ctx, &s3.PutObjectInput{
				Bucket:      aws.String(s3Bucket),
				Key:         aws.String(path.Join(keyPrefix, name)),
				Body:        bytes.NewReader(data),
				ContentType: aws.String("application/json"),
			})
			if err != nil {
				return "", fmt.Errorf("failed to upload %s to S3: %w", name, err)
			}
		}

		return fmt.Sprintf("Update completed and %d snapshots uploaded to s3://%s/%s",
			len(snapshot.Files()), s3Bucket, keyPrefix), nil
	}
}
