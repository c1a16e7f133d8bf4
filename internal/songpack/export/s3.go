package export

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"path/filepath"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/shiroemons/go-songpack/internal/songpack/interfaces"
)

// DefaultConcurrentUploads は同時アップロード数のデフォルト値です
const DefaultConcurrentUploads = 4

// S3Target はアップロード先のバケットとキーの接頭辞です
type S3Target struct {
	Bucket string
	Prefix string
}

// String は s3://bucket/prefix 形式の文字列を返します
func (t S3Target) String() string {
	if t.Prefix == "" {
		return "s3://" + t.Bucket
	}
	return "s3://" + t.Bucket + "/" + t.Prefix
}

// Key はパッケージルートからの相対パスをオブジェクトキーに変換します
func (t S3Target) Key(rel string) string {
	rel = filepath.ToSlash(rel)
	if t.Prefix == "" {
		return rel
	}
	return path.Join(t.Prefix, rel)
}

// ParseS3Target は s3://bucket/prefix 形式の指定を解析します
func ParseS3Target(s string) (S3Target, error) {
	rest, ok := strings.CutPrefix(s, "s3://")
	if !ok {
		return S3Target{}, fmt.Errorf("%w: %q", ErrInvalidTarget, s)
	}
	bucket, prefix, _ := strings.Cut(rest, "/")
	if bucket == "" {
		return S3Target{}, fmt.Errorf("%w: %q", ErrInvalidTarget, s)
	}
	return S3Target{Bucket: bucket, Prefix: strings.Trim(prefix, "/")}, nil
}

// S3Options はS3互換ストレージへの接続設定です
type S3Options struct {
	Endpoint        string
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	SessionToken    string
	// PathStyle はバケット名をパスに含める形式でアクセスします（MinIOなど）
	PathStyle   bool
	Concurrency int
}

// s3API はPutObjectだけを使うS3クライアントのインターフェース
type s3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Publisher は書き出したパッケージをS3互換ストレージへアップロードします
type S3Publisher struct {
	client      s3API
	fs          interfaces.FileSystem
	target      S3Target
	format      Format
	concurrency int
	logger      interfaces.Logger
}

// NewS3Publisher は新しいS3Publisherを作成します
func NewS3Publisher(fs interfaces.FileSystem, target S3Target, format Format, opts S3Options, logger interfaces.Logger) *S3Publisher {
	cfg := aws.Config{
		Region: opts.Region,
	}
	if cfg.Region == "" {
		cfg.Region = "us-east-1"
	}
	if opts.AccessKeyID != "" {
		cfg.Credentials = credentials.NewStaticCredentialsProvider(opts.AccessKeyID, opts.SecretAccessKey, opts.SessionToken)
	} else {
		cfg.Credentials = aws.AnonymousCredentials{}
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.Endpoint)
		}
		o.UsePathStyle = opts.PathStyle
	})

	return newS3Publisher(client, fs, target, format, opts.Concurrency, logger)
}

func newS3Publisher(client s3API, fs interfaces.FileSystem, target S3Target, format Format, concurrency int, logger interfaces.Logger) *S3Publisher {
	if concurrency <= 0 {
		concurrency = DefaultConcurrentUploads
	}
	return &S3Publisher{
		client:      client,
		fs:          fs,
		target:      target,
		format:      format,
		concurrency: concurrency,
		logger:      logger,
	}
}

// Publish は root 以下の files をアップロードします。最初に発生したエラーを返します
func (p *S3Publisher) Publish(ctx context.Context, root string, files []string) error {
	semaphore := make(chan struct{}, p.concurrency)
	errChan := make(chan error, len(files))
	var wg sync.WaitGroup

	uploadFile := func(filePath string) {
		defer wg.Done()
		semaphore <- struct{}{}
		defer func() { <-semaphore }()

		if err := ctx.Err(); err != nil {
			errChan <- err
			return
		}

		rel, err := filepath.Rel(root, filePath)
		if err != nil {
			errChan <- fmt.Errorf("%w: %s: %w", ErrUpload, filePath, err)
			return
		}
		data, err := p.fs.ReadFile(filePath)
		if err != nil {
			errChan <- fmt.Errorf("%w: %s: %w", ErrUpload, filePath, err)
			return
		}

		key := p.target.Key(rel)
		_, err = p.client.PutObject(ctx, &s3.PutObjectInput{
			Bucket:      aws.String(p.target.Bucket),
			Key:         aws.String(key),
			Body:        bytes.NewReader(data),
			ContentType: aws.String(p.format.ContentType()),
		})
		if err != nil {
			p.logger.Warnf("%s のアップロードに失敗しました: %v", filePath, err)
			errChan <- fmt.Errorf("%w: s3://%s/%s: %w", ErrUpload, p.target.Bucket, key, err)
			return
		}
		p.logger.Printf("アップロードしました: s3://%s/%s", p.target.Bucket, key)
	}

	for _, filePath := range files {
		wg.Add(1)
		go uploadFile(filePath)
	}
	wg.Wait()
	close(errChan)

	var errs []error
	for err := range errChan {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return errs[0]
	}
	return nil
}
