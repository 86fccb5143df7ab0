/*
Command builder generates a linked Markdown note vault of the Bible.

	go run ./cmd/builder                        # build the whole vault into "The Bible/"
	go run ./cmd/builder --book Ruth            # rebuild the index and one book
	go run ./cmd/builder --cache-db markup.db   # keep fetched pages for offline re-runs
	go run ./cmd/builder digest "The Bible"     # fingerprint a generated vault

Outputs:

	{out}/The Bible.md                  — index of every book and chapter
	{out}/{book}/{book}.md              — book landing note
	{out}/{book}/{book} {ch}.md         — chapter note transcluding its verses
	{out}/{book}/{book} {ch}-{v}.md     — verse note with aliases and block id

Settings may also come from the environment or a .env file.
*/
package main

import (
	"context"
	"io"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// CLI defines the command-line interface.
type CLI struct {
	Verbose bool `short:"v" env:"BIBLE_VERBOSE" help:"Enable debug logging"`

	Build  BuildCmd  `cmd:"" default:"withargs" help:"Generate the note vault (default)"`
	Digest DigestCmd `cmd:"" help:"Print the BLAKE3 digest of a generated vault"`
}

func main() {
	// A missing .env is not an error.
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	run(ctx, os.Args[1:], os.Stdout, os.Stderr, os.Exit)
}

// run parses args and executes the selected command. Logs and errors go to
// stderr; a failure is reported once, by kong, followed by exit(1).
func run(ctx context.Context, args []string, stdout, stderr io.Writer, exit func(int)) {
	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("builder"),
		kong.Description("Generate a linked Markdown vault of the Bible"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
		kong.Writers(stdout, stderr),
		kong.Exit(exit),
	)
	if err != nil {
		panic(err)
	}
	kctx, err := parser.Parse(args)
	if err != nil {
		parser.FatalIfErrorf(err)
		return
	}

	logger := newLogger(cli.Verbose, stderr)
	defer logger.Sync()

	kctx.BindTo(ctx, (*context.Context)(nil))
	kctx.BindTo(stdout, (*io.Writer)(nil))
	kctx.FatalIfErrorf(kctx.Run(logger))
}

func newLogger(verbose bool, w io.Writer) *zap.Logger {
	level := zapcore.InfoLevel
	encoder := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	if verbose {
		level = zapcore.DebugLevel
		encoder = zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	}
	return zap.New(zapcore.NewCore(encoder, zapcore.AddSync(w), level))
}
