package app

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shiroemons/go-songpack/internal/songpack/mocks"
)

func TestApp_Run_ContextCancellation(t *testing.T) {
	tests := []struct {
		name          string
		setupContext  func() (context.Context, context.CancelFunc)
		expectedError error
	}{
		{
			name: "即座にキャンセルされたコンテキスト",
			setupContext: func() (context.Context, context.CancelFunc) {
				ctx, cancel := context.WithCancel(context.Background())
				cancel() // 即座にキャンセル
				return ctx, cancel
			},
			expectedError: context.Canceled,
		},
		{
			name: "タイムアウトコンテキスト",
			setupContext: func() (context.Context, context.CancelFunc) {
				ctx, cancel := context.WithTimeout(context.Background(), 1*time.Nanosecond)
				time.Sleep(10 * time.Millisecond) // タイムアウトを確実に発生させる
				return ctx, cancel
			},
			expectedError: context.DeadlineExceeded,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, cancel := tt.setupContext()
			defer cancel()

			fs := newTestFS()
			app := NewWithOptions(newTestConfig(), Options{
				FileSystem: fs,
				Logger:     &mocks.MockLogger{},
				Stdout:     &bytes.Buffer{},
			})

			err := app.Run(ctx)
			if err != tt.expectedError {
				t.Errorf("Expected error %v, got %v", tt.expectedError, err)
			}
			if len(fs.Files) != 3 {
				t.Errorf("Expected nothing to be written, got %d files", len(fs.Files))
			}
		})
	}
}

func TestApp_resolveInput_ContextCancellation(t *testing.T) {
	finder := &mocks.MockSourceFinder{FoundFile: "/test/dir/SLPM_650.77"}
	cfg := newTestConfig()
	cfg.InputPath = ""

	app := NewWithOptions(cfg, Options{
		FileSystem:   newTestFS(),
		SourceFinder: finder,
		Logger:       &mocks.MockLogger{},
	})

	// キャンセル済みのコンテキスト
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := app.resolveInput(ctx, nil)
	if err != context.Canceled {
		t.Errorf("Expected context.Canceled error, got %v", err)
	}
	if finder.Names != nil {
		t.Error("Expected finder not to be called")
	}
}
