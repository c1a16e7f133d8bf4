package schema

import (
	"context"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/shiroemons/go-songpack/internal/songpack/interfaces"
)

// Format はスキーマ文書の形式です
type Format int

const (
	// FormatJSON はJSON形式
	FormatJSON Format = iota
	// FormatYAML はYAML形式
	FormatYAML
)

// DetectFormat はファイル名の拡張子から形式を判定します
func DetectFormat(name string) Format {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		return FormatYAML
	}
	return FormatJSON
}

// Parse は指定された形式でスキーマ文書を解析します
func Parse(data []byte, format Format) (*Document, error) {
	if format == FormatYAML {
		return ParseYAML(data)
	}
	return ParseJSON(data)
}

// IsRemote は取得元がHTTP(S)のURLか判定します
func IsRemote(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

// Loader はファイルまたはURLからスキーマ文書を読み込みます
type Loader struct {
	fs     interfaces.FileSystem
	client *resty.Client
}

// LoaderOption はLoaderの設定オプション
type LoaderOption func(*Loader)

// WithClient はリモート取得に使うHTTPクライアントを指定します
func WithClient(client *resty.Client) LoaderOption {
	return func(l *Loader) {
		l.client = client
	}
}

// NewLoader は新しいLoaderを作成します
func NewLoader(fs interfaces.FileSystem, opts ...LoaderOption) *Loader {
	l := &Loader{fs: fs}
	for _, opt := range opts {
		opt(l)
	}
	if l.client == nil {
		l.client = resty.New().
			SetRetryCount(2).
			SetTimeout(30*time.Second).
			SetHeader("Accept", "application/json, application/yaml, */*")
	}
	return l
}

// Load はスキーマ文書を読み込みます
func (l *Loader) Load(ctx context.Context, source string) (*Document, error) {
	if IsRemote(source) {
		return l.fetch(ctx, source)
	}

	data, err := l.fs.ReadFile(source)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrReadDocument, source, err)
	}
	return Parse(data, DetectFormat(source))
}

func (l *Loader) fetch(ctx context.Context, source string) (*Document, error) {
	resp, err := l.client.R().
		SetContext(ctx).
		Get(source)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrFetchDocument, source, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("%w: %s: HTTP %d", ErrFetchDocument, source, resp.StatusCode())
	}

	format := FormatJSON
	if u, err := url.Parse(source); err == nil {
		format = DetectFormat(u.Path)
	}
	if strings.Contains(resp.Header().Get("Content-Type"), "yaml") {
		format = FormatYAML
	}
	return Parse(resp.Body(), format)
}
