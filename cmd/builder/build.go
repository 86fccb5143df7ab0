package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"go.uber.org/zap"

	"biblevault/internal/passage"
	"biblevault/internal/vault"
)

// BuildCmd generates the vault.
type BuildCmd struct {
	Out          string        `short:"o" default:"The Bible" env:"BIBLE_OUT" type:"path" help:"Output root folder"`
	Version      string        `default:"NIV" env:"BIBLE_VERSION" help:"Translation identifier passed to the passage site"`
	Manifest     string        `env:"BIBLE_MANIFEST" help:"YAML manifest of books and chapter counts (default: 66-book canon)"`
	Book         string        `help:"Only build this book (the index is still written in full)"`
	Clean        bool          `help:"Delete the output root before building"`
	CacheDB      string        `name:"cache-db" env:"BIBLE_CACHE_DB" help:"SQLite file caching fetched markup"`
	FetchWorkers int           `default:"0" env:"BIBLE_FETCH_WORKERS" help:"Prefetch chapters with this many concurrent requests (0: fetch sequentially)"`
	Timeout      time.Duration `default:"60s" env:"BIBLE_TIMEOUT" help:"Per-request timeout"`
	BaseURL      string        `name:"base-url" default:"https://www.biblegateway.com" env:"BIBLE_BASE_URL" help:"Passage site base URL"`
	Strict       bool          `env:"BIBLE_STRICT" help:"Fail when a chapter's verses are not numbered 1..n"`
}

// Run builds the vault described by the flags.
func (c *BuildCmd) Run(ctx context.Context, logger *zap.Logger, stdout io.Writer) error {
	manifest, err := c.loadManifest()
	if err != nil {
		return err
	}

	if c.Clean {
		if err := os.RemoveAll(c.Out); err != nil {
			return fmt.Errorf("removing %s: %w", c.Out, err)
		}
		logger.Info("removed output root", zap.String("root", c.Out))
	}

	src, closeSource, err := c.source(manifest, logger)
	if err != nil {
		return err
	}
	defer closeSource()

	if c.FetchWorkers > 0 {
		refs := chapterReferences(manifest, c.Book)
		logger.Info("prefetching chapters", zap.Int("chapters", len(refs)), zap.Int("workers", c.FetchWorkers))
		if err := passage.Prefetch(ctx, src, refs, c.Version, c.FetchWorkers); err != nil {
			return fmt.Errorf("prefetching: %w", err)
		}
	}

	p := vault.New(manifest, src, c.Version,
		vault.WithLogger(logger),
		vault.WithStrictVerses(c.Strict),
		vault.WithOnly(c.Book),
	)
	summary, err := p.Run(ctx, c.Out)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "Bible files generated successfully (%d notes).\n", summary.Files)
	return nil
}

func (c *BuildCmd) loadManifest() (vault.Manifest, error) {
	if c.Manifest == "" {
		return vault.DefaultManifest(), nil
	}
	return vault.LoadManifest(c.Manifest)
}

// source assembles gateway fetcher -> optional SQLite cache -> parser ->
// optional in-memory memo (needed for prefetch to pay off).
func (c *BuildCmd) source(manifest vault.Manifest, logger *zap.Logger) (passage.Source, func(), error) {
	var fetcher passage.Fetcher = passage.NewGateway(c.BaseURL, c.Timeout, passage.WithGatewayLogger(logger))
	closeSource := func() {}

	if c.CacheDB != "" {
		store, err := passage.OpenStore(c.CacheDB, fetcher, logger)
		if err != nil {
			return nil, nil, err
		}
		fetcher = store
		closeSource = func() {
			if err := store.Close(); err != nil {
				logger.Warn("closing markup cache", zap.Error(err))
			}
		}
	}

	src := passage.NewSource(fetcher, passage.GatewayParser{})
	if c.FetchWorkers > 0 {
		memo, err := passage.NewMemo(src, max(manifest.TotalChapters(), 1))
		if err != nil {
			closeSource()
			return nil, nil, err
		}
		src = memo
	}
	return src, closeSource, nil
}

// chapterReferences lists "{book} {chapter}" for every chapter that the
// build will emit.
func chapterReferences(manifest vault.Manifest, only string) []string {
	var refs []string
	for _, b := range manifest.Books() {
		if only != "" && b.Name != only {
			continue
		}
		for ch := 1; ch <= b.Chapters; ch++ {
			refs = append(refs, vault.ChapterRef(b.Name, ch).Citation())
		}
	}
	return refs
}

// DigestCmd prints a vault fingerprint, for comparing two builds.
type DigestCmd struct {
	Root string `arg:"" type:"existingdir" help:"Vault root folder"`
}

// Run prints the digest of Root.
func (c *DigestCmd) Run(stdout io.Writer) error {
	sum, err := vault.Digest(c.Root)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "%s  %s\n", sum, c.Root)
	return nil
}
