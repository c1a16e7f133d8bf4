// Package config はsongpackコマンドの設定管理を行います
package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
)

const Version = "0.1.0"

// Config はアプリケーションの設定を保持します
type Config struct {
	InputPath   string
	ConfigPath  string
	OutputDir   string
	Format      string
	Workers     int
	DebugMode   bool
	DryRun      bool
	ShowVersion bool

	// 雛形スキーマの出力
	Template      bool
	TemplateGame  string
	TemplateScale string

	// S3互換ストレージへのアップロード
	PublishTarget     string
	S3Endpoint        string
	S3Region          string
	S3PathStyle       bool
	S3AccessKeyID     string
	S3SecretAccessKey string
	S3SessionToken    string
}

// usage はフラグの説明を出力します（ダブルハイフン表示）
func usage(fs *flag.FlagSet) func() {
	return func() {
		out := fs.Output()
		fmt.Fprintf(out, "Usage of %s: [flags] <binary file>\n", fs.Name())
		fmt.Fprintln(out, "  --config string")
		fmt.Fprintln(out, "    \tschema document path or URL (.json, .yaml) (default \"config.json\")")
		fmt.Fprintln(out, "  -c string\tschema document path or URL (shorthand)")
		fmt.Fprintln(out, "  -o string")
		fmt.Fprintln(out, "    \toutput directory for the <game>_packages folder (default \".\")")
		fmt.Fprintln(out, "  --format string")
		fmt.Fprintln(out, "    \toutput format: json or msgpack (default \"json\")")
		fmt.Fprintln(out, "  --workers int")
		fmt.Fprintln(out, "    \tnumber of parallel record decoders (default 1)")
		fmt.Fprintln(out, "  -w int\tnumber of parallel record decoders (shorthand)")
		fmt.Fprintln(out, "  --debug")
		fmt.Fprintln(out, "    \tlist decoded songs and orphans")
		fmt.Fprintln(out, "  -d\tlist decoded songs and orphans (shorthand)")
		fmt.Fprintln(out, "  --dry-run")
		fmt.Fprintln(out, "    \tperform a dry run without writing output files")
		fmt.Fprintln(out, "  -n\tperform a dry run without writing output files (shorthand)")
		fmt.Fprintln(out, "  --template")
		fmt.Fprintln(out, "    \tprint a skeleton schema for --game and --scale and exit")
		fmt.Fprintln(out, "  --game string")
		fmt.Fprintln(out, "    \tgame name for --template")
		fmt.Fprintln(out, "  --scale string")
		fmt.Fprintln(out, "    \tdifficulty scale for --template: 1_10 or 1_20 (default \"1_10\")")
		fmt.Fprintln(out, "  --publish string")
		fmt.Fprintln(out, "    \tupload written files to s3://bucket/prefix")
		fmt.Fprintln(out, "  --s3-endpoint string")
		fmt.Fprintln(out, "    \tS3-compatible endpoint URL (env AWS_ENDPOINT_URL)")
		fmt.Fprintln(out, "  --s3-region string")
		fmt.Fprintln(out, "    \tS3 region (env AWS_REGION)")
		fmt.Fprintln(out, "  --s3-path-style")
		fmt.Fprintln(out, "    \tuse path-style bucket addressing")
		fmt.Fprintln(out, "  --version")
		fmt.Fprintln(out, "    \tshow version information")
		fmt.Fprintln(out, "  -v\tshow version information (shorthand)")
	}
}

// ParseFlags はコマンドライン引数を解析して設定を返します
func ParseFlags() *Config {
	config, err := ParseArgs(flag.CommandLine, os.Args[1:])
	if err != nil {
		os.Exit(2)
	}
	config.LoadEnv(os.Getenv)
	return config
}

// ParseArgs は指定されたFlagSetで引数を解析します
func ParseArgs(fs *flag.FlagSet, args []string) (*Config, error) {
	config := &Config{}
	fs.Usage = usage(fs)

	// スキーマ文書
	fs.StringVar(&config.ConfigPath, "config", "config.json", "schema document path or URL")
	fs.StringVar(&config.ConfigPath, "c", "config.json", "schema document path or URL (shorthand)")

	// 出力
	fs.StringVar(&config.OutputDir, "o", ".", "output directory for the <game>_packages folder")
	fs.StringVar(&config.Format, "format", "json", "output format: json or msgpack")

	// 並列数
	fs.IntVar(&config.Workers, "workers", 1, "number of parallel record decoders")
	fs.IntVar(&config.Workers, "w", 1, "number of parallel record decoders (shorthand)")

	// デバッグモード
	fs.BoolVar(&config.DebugMode, "debug", false, "list decoded songs and orphans")
	fs.BoolVar(&config.DebugMode, "d", false, "list decoded songs and orphans (shorthand)")

	// ドライランモード
	fs.BoolVar(&config.DryRun, "dry-run", false, "perform a dry run without writing output files")
	fs.BoolVar(&config.DryRun, "n", false, "perform a dry run without writing output files (shorthand)")

	// 雛形スキーマ
	fs.BoolVar(&config.Template, "template", false, "print a skeleton schema and exit")
	fs.StringVar(&config.TemplateGame, "game", "", "game name for --template")
	fs.StringVar(&config.TemplateScale, "scale", "1_10", "difficulty scale for --template")

	// アップロード
	fs.StringVar(&config.PublishTarget, "publish", "", "upload written files to s3://bucket/prefix")
	fs.StringVar(&config.S3Endpoint, "s3-endpoint", "", "S3-compatible endpoint URL")
	fs.StringVar(&config.S3Region, "s3-region", "", "S3 region")
	fs.BoolVar(&config.S3PathStyle, "s3-path-style", false, "use path-style bucket addressing")

	// バージョン表示
	fs.BoolVar(&config.ShowVersion, "version", false, "show version information")
	fs.BoolVar(&config.ShowVersion, "v", false, "show version information (shorthand)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	config.InputPath = fs.Arg(0)

	if config.Workers <= 0 {
		config.Workers = runtime.NumCPU()
	}

	return config, nil
}

// LoadEnv はフラグで指定されていない接続設定を環境変数から読み込みます
func (c *Config) LoadEnv(getenv func(string) string) {
	if c.S3Endpoint == "" {
		c.S3Endpoint = getenv("AWS_ENDPOINT_URL")
	}
	if c.S3Region == "" {
		c.S3Region = getenv("AWS_REGION")
	}
	c.S3AccessKeyID = getenv("AWS_ACCESS_KEY_ID")
	c.S3SecretAccessKey = getenv("AWS_SECRET_ACCESS_KEY")
	c.S3SessionToken = getenv("AWS_SESSION_TOKEN")
}

// HandleVersion はバージョン表示を処理します
func HandleVersion(showVersion bool) {
	if showVersion {
		fmt.Printf("songpack version %s\n", Version)
		os.Exit(0)
	}
}

// DebugLogger はデバッグ出力を管理します
type DebugLogger struct {
	enabled bool
	out     io.Writer
	errOut  io.Writer
}

// NewDebugLogger は新しいDebugLoggerを作成します
func NewDebugLogger(enabled bool) *DebugLogger {
	return NewDebugLoggerWithWriters(enabled, os.Stdout, os.Stderr)
}

// NewDebugLoggerWithWriters は出力先を指定してDebugLoggerを作成します
func NewDebugLoggerWithWriters(enabled bool, out, errOut io.Writer) *DebugLogger {
	return &DebugLogger{enabled: enabled, out: out, errOut: errOut}
}

// Enabled はデバッグモードが有効か返します
func (d *DebugLogger) Enabled() bool {
	return d.enabled
}

// Printf はデバッグモードが有効な場合のみメッセージを表示します
func (d *DebugLogger) Printf(format string, a ...any) {
	if d.enabled {
		fmt.Fprint(d.out, line(format, a...))
	}
}

// Warnf は警告をデバッグモードに関係なく標準エラー出力に表示します
func (d *DebugLogger) Warnf(format string, a ...any) {
	fmt.Fprint(d.errOut, "警告: "+line(format, a...))
}

func line(format string, a ...any) string {
	s := fmt.Sprintf(format, a...)
	if !strings.HasSuffix(s, "\n") {
		s += "\n"
	}
	return s
}
