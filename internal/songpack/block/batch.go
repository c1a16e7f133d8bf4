package block

import (
	"sync"

	songerrors "github.com/shiroemons/go-songpack/internal/songpack/errors"
	"github.com/shiroemons/go-songpack/internal/songpack/interfaces"
	"github.com/shiroemons/go-songpack/internal/songpack/schema"
)

// Batch はレコード範囲をまとめて読み込んだ結果です
type Batch struct {
	Blocks []*Block
	// Expected はスキーマの範囲から求めたレコード数
	Expected int
	// Warnings はスキーマの警告
	Warnings []error
}

// IDs は各レコードの正規化済みの曲IDをファイル上の順に返します
func (b *Batch) IDs() []string {
	ids := make([]string, len(b.Blocks))
	for i, blk := range b.Blocks {
		ids[i] = blk.MusicID()
	}
	return ids
}

// Option はReadBatchの設定オプション
type Option func(*options)

type options struct {
	workers int
	logger  interfaces.Logger
}

// WithWorkers はレコードを並列に読み込むワーカー数を指定します
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithLogger は進捗と警告の出力先を指定します
func WithLogger(l interfaces.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

type nopLogger struct{}

func (nopLogger) Printf(string, ...any) {}
func (nopLogger) Warnf(string, ...any) {}

// ReadBatch は [Offset, EndOffset) を block_size ごとに読み込みます
//
// データが範囲の途中で終わっている場合は、そこまでのレコードを返します（エラーにはしません）。
// レコードの読み込みに失敗した場合は、それまでに読み込んだレコードと *RecordError を返します。
func ReadBatch(data []byte, s *schema.Schema, opts ...Option) (*Batch, error) {
	o := options{workers: 1, logger: nopLogger{}}
	for _, opt := range opts {
		opt(&o)
	}

	batch := &Batch{
		Expected: s.RecordCount(),
		Warnings: s.Warnings(),
	}
	for _, w := range batch.Warnings {
		o.logger.Warnf("%v", w)
	}

	windows := make([][]byte, 0, batch.Expected)
	for i := 0; i < batch.Expected; i++ {
		start := s.Offset + i*s.BlockSize
		end := start + s.BlockSize
		if end > len(data) {
			o.logger.Printf("データの終端 (0x%x) に達したため %d/%d 件で読み込みを終了しました", len(data), i, batch.Expected)
			break
		}
		windows = append(windows, data[start:end:end])
	}

	var blocks []*Block
	var errs []error
	if o.workers > 1 && len(windows) > 1 {
		blocks, errs = readParallel(windows, s.Fields, o.workers)
	} else {
		blocks, errs = readSequential(windows, s.Fields)
	}

	for i, err := range errs {
		if err != nil {
			batch.Blocks = blocks[:i]
			return batch, &songerrors.RecordError{
				Index:  i,
				Offset: s.Offset + i*s.BlockSize,
				Err:    err,
			}
		}
	}

	batch.Blocks = blocks
	o.logger.Printf("%d 件のレコードを読み込みました", len(blocks))
	return batch, nil
}

func readSequential(windows [][]byte, fields []schema.FieldSpec) ([]*Block, []error) {
	blocks := make([]*Block, len(windows))
	errs := make([]error, len(windows))
	for i, w := range windows {
		blocks[i], errs[i] = Read(w, fields)
		if errs[i] != nil {
			break
		}
	}
	return blocks, errs
}

type readJob struct {
	index  int
	window []byte
}

type readResult struct {
	index int
	block *Block
	err   error
}

// readParallel はワーカーでレコードを読み込み、結果をファイル上の順に並べます
func readParallel(windows [][]byte, fields []schema.FieldSpec, numWorkers int) ([]*Block, []error) {
	if numWorkers > len(windows) {
		numWorkers = len(windows)
	}

	jobs := make(chan readJob, numWorkers*2)
	results := make(chan readResult, numWorkers*2)

	var wg sync.WaitGroup
	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobs {
				blk, err := Read(job.window, fields)
				results <- readResult{index: job.index, block: blk, err: err}
			}
		}()
	}

	go func() {
		for i, w := range windows {
			jobs <- readJob{index: i, window: w}
		}
		close(jobs)
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	blocks := make([]*Block, len(windows))
	errs := make([]error, len(windows))
	for r := range results {
		blocks[r.index] = r.block
		errs[r.index] = r.err
	}
	return blocks, errs
}
