// Package app はアプリケーションのメインロジックを実装します
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/go-resty/resty/v2"
	"gopkg.in/yaml.v3"

	"github.com/shiroemons/go-songpack/internal/songpack/assemble"
	"github.com/shiroemons/go-songpack/internal/songpack/block"
	"github.com/shiroemons/go-songpack/internal/songpack/config"
	"github.com/shiroemons/go-songpack/internal/songpack/difficulty"
	songerrors "github.com/shiroemons/go-songpack/internal/songpack/errors"
	"github.com/shiroemons/go-songpack/internal/songpack/export"
	"github.com/shiroemons/go-songpack/internal/songpack/fileutil"
	"github.com/shiroemons/go-songpack/internal/songpack/interfaces"
	"github.com/shiroemons/go-songpack/internal/songpack/models"
	"github.com/shiroemons/go-songpack/internal/songpack/schema"
	"github.com/shiroemons/go-songpack/internal/songpack/titles"
)

// TemplateSourceName は入力ファイルが指定されていない場合の雛形のキーです
const TemplateSourceName = "SLPM_000.00"

// App はアプリケーションのメインロジックを管理します
type App struct {
	config    *config.Config
	logger    interfaces.Logger
	fs        interfaces.FileSystem
	finder    interfaces.SourceFinder
	loader    *schema.Loader
	publisher interfaces.Publisher
	stdout    io.Writer
}

// Options はAppの設定オプション
type Options struct {
	FileSystem   interfaces.FileSystem
	SourceFinder interfaces.SourceFinder
	Publisher    interfaces.Publisher
	Logger       interfaces.Logger
	HTTPClient   *resty.Client
	Stdout       io.Writer
}

// New は新しいAppを作成します
func New(cfg *config.Config) *App {
	return NewWithOptions(cfg, Options{})
}

// NewWithOptions は新しいAppをオプション付きで作成します
func NewWithOptions(cfg *config.Config, opts Options) *App {
	// デフォルトのロガーを設定
	var logger interfaces.Logger = config.NewDebugLogger(cfg.DebugMode)
	if opts.Logger != nil {
		logger = opts.Logger
	}

	// デフォルトのファイルシステムを設定
	fs := opts.FileSystem
	if fs == nil {
		fs = fileutil.NewOSFileSystem()
	}

	// デフォルトのSourceFinderを設定
	var finder interfaces.SourceFinder
	if opts.SourceFinder != nil {
		finder = opts.SourceFinder
	} else {
		finder = fileutil.NewSourceFinder(fs)
	}

	var loaderOpts []schema.LoaderOption
	if opts.HTTPClient != nil {
		loaderOpts = append(loaderOpts, schema.WithClient(opts.HTTPClient))
	}

	stdout := opts.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}

	return &App{
		config:    cfg,
		logger:    logger,
		fs:        fs,
		finder:    finder,
		loader:    schema.NewLoader(fs, loaderOpts...),
		publisher: opts.Publisher,
		stdout:    stdout,
	}
}

// Run はアプリケーションを実行します
func (a *App) Run(ctx context.Context) error {
	if a.config.Template {
		return a.printTemplate()
	}

	format, err := export.ParseFormat(a.config.Format)
	if err != nil {
		return err
	}

	doc, err := a.loader.Load(ctx, a.config.ConfigPath)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrLoadSchema, err)
	}
	a.logger.Printf("%s から %d 件のスキーマを読み込みました", a.config.ConfigPath, doc.Len())

	// 入力ファイルとスキーマの決定
	path, err := a.resolveInput(ctx, doc)
	if err != nil {
		return err
	}
	s, err := doc.Lookup(filepath.Base(path))
	if err != nil {
		return err
	}
	if err := s.Validate(); err != nil {
		return err
	}

	src, err := a.readSource(ctx, path)
	if err != nil {
		return err
	}

	// タイトル表の読み込み
	table := titles.Table{}
	if s.HasTitleRange() {
		table, err = a.scanTitles(s, src)
		if err != nil {
			return err
		}
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	// レコードのデコード
	batch, err := block.ReadBatch(src.Data, s,
		block.WithWorkers(a.config.Workers),
		block.WithLogger(a.logger),
	)
	if err != nil {
		var recErr *songerrors.RecordError
		if errors.As(err, &recErr) {
			a.logger.Warnf("失敗する前に %d/%d 件のレコードを読み込みました", recErr.Decoded(), batch.Expected)
		}
		return fmt.Errorf("%w: %s: %w", ErrDecode, src.Name, err)
	}

	ids := batch.IDs()
	table = table.Filter(ids)
	table.Override(s.ManualTitles, ids)
	a.reportOrphans(table, ids)

	songs, err := assemble.All(batch.Blocks, s, src.Name, table)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrAssemble, err)
	}
	a.listSongs(songs)

	if err := ctx.Err(); err != nil {
		return err
	}

	// 書き出し
	exporter := export.NewExporter(a.fs,
		export.WithFormat(format),
		export.WithDryRun(a.config.DryRun),
	)
	res, err := exporter.Export(songs, s.PackageName(src.Name), a.config.OutputDir)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExport, err)
	}
	if a.config.DryRun {
		for _, f := range res.Files {
			a.logger.Printf("[dry-run] %s", f)
		}
	}

	if err := a.publish(ctx, format, res); err != nil {
		return err
	}

	if a.config.DryRun {
		fmt.Fprintf(a.stdout, "%s: %d 曲を %s に書き出します (dry-run)\n", src.Name, len(songs), res.Root)
	} else {
		fmt.Fprintf(a.stdout, "%s: %d 曲を %s に書き出しました\n", src.Name, len(songs), res.Root)
	}
	return nil
}

// resolveInput は入力ファイルのパスを決定します
// 指定がない場合はスキーマが定義されたファイルを自動検出します
func (a *App) resolveInput(ctx context.Context, doc *schema.Document) (string, error) {
	// コンテキストのキャンセルチェック
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	default:
	}

	if a.config.InputPath != "" {
		return a.config.InputPath, nil
	}
	path, err := a.finder.Find(doc.Names())
	if err != nil {
		return "", err
	}
	a.logger.Printf("自動検出した入力ファイル %s を読み込みます", filepath.Base(path))
	return path, nil
}

// readSource は入力ファイルを読み込みます
func (a *App) readSource(ctx context.Context, path string) (models.SourceData, error) {
	// コンテキストのキャンセルチェック
	select {
	case <-ctx.Done():
		return models.SourceData{}, ctx.Err()
	default:
	}

	data, err := a.fs.ReadFile(path)
	if err != nil {
		return models.SourceData{}, fmt.Errorf("%w: %s: %w", ErrReadFile, path, err)
	}
	a.logger.Printf("%s (%d バイト) を読み込みました", path, len(data))
	return models.SourceData{Name: filepath.Base(path), Data: data}, nil
}

// scanTitles はスキーマで指定されたパーサーでタイトル表を読み込みます
func (a *App) scanTitles(s *schema.Schema, src models.SourceData) (titles.Table, error) {
	enc, err := s.Encoding()
	if err != nil {
		return nil, err
	}
	scanner, err := titles.New(s.ParserName(), titles.WithEncoding(enc))
	if err != nil {
		return nil, err
	}

	start, end := s.TitlesOffsetStart, s.TitlesOffsetEnd
	if end > len(src.Data) {
		a.logger.Warnf("タイトル表の終端 0x%x がファイルサイズ 0x%x を超えています", end, len(src.Data))
	}

	var table titles.Table
	if fw, ok := scanner.(*titles.Forward); ok {
		var artists map[string]string
		table, artists = fw.ScanWithArtists(src.Data, start, end)
		a.logger.Printf("アーティスト名 %d 件は出力されません", len(artists))
	} else {
		table = scanner.Scan(src.Data, start, end)
	}
	a.logger.Printf("%s で %d 件のタイトルを読み込みました", scanner.Name(), len(table))
	return table, nil
}

// reportOrphans はタイトルが見つからなかった曲を表示します
func (a *App) reportOrphans(table titles.Table, ids []string) {
	// タイトル表にない曲も仮タイトルとして扱う
	for _, id := range ids {
		if _, ok := table[id]; !ok {
			table[id] = nil
		}
	}
	orphans := table.Orphans()
	if len(orphans) == 0 {
		return
	}
	a.logger.Printf("タイトルが見つからなかった曲 (%d): %s", len(orphans), strings.Join(orphans, ", "))
}

// listSongs はデコードした曲の一覧を表示します
func (a *App) listSongs(songs []models.Song) {
	for _, song := range songs {
		a.logger.Printf("%-6s %-8s %s / %s", song.MusicID, song.BPMLabel(), song.Title, song.Title2)
	}
}

// publish は書き出したファイルをアップロードします
func (a *App) publish(ctx context.Context, format export.Format, res *export.Result) error {
	if a.config.PublishTarget == "" && a.publisher == nil {
		return nil
	}
	if a.config.DryRun {
		a.logger.Printf("[dry-run] アップロードをスキップしました")
		return nil
	}

	publisher := a.publisher
	if publisher == nil {
		target, err := export.ParseS3Target(a.config.PublishTarget)
		if err != nil {
			return err
		}
		publisher = export.NewS3Publisher(a.fs, target, format, export.S3Options{
			Endpoint:        a.config.S3Endpoint,
			Region:          a.config.S3Region,
			AccessKeyID:     a.config.S3AccessKeyID,
			SecretAccessKey: a.config.S3SecretAccessKey,
			SessionToken:    a.config.S3SessionToken,
			PathStyle:       a.config.S3PathStyle,
		}, a.logger)
	}

	if err := publisher.Publish(ctx, res.Root, res.Files); err != nil {
		return fmt.Errorf("%w: %w", ErrPublish, err)
	}
	a.logger.Printf("%d 件のファイルをアップロードしました", len(res.Files))
	return nil
}

// printTemplate は雛形スキーマを標準出力に表示します
// 出力形式は --config の拡張子に合わせます
func (a *App) printTemplate() error {
	scale, err := difficulty.ParseScale(a.config.TemplateScale)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrTemplate, err)
	}

	name := TemplateSourceName
	if a.config.InputPath != "" {
		name = filepath.Base(a.config.InputPath)
	}
	doc := schema.NewDocument()
	doc.Set(name, schema.Template(a.config.TemplateGame, scale))

	var data []byte
	if schema.DetectFormat(a.config.ConfigPath) == schema.FormatYAML {
		data, err = yaml.Marshal(doc)
	} else {
		data, err = sonic.ConfigDefault.MarshalIndent(doc, "", "    ")
		data = append(data, '\n')
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrTemplate, err)
	}

	_, err = a.stdout.Write(data)
	return err
}
