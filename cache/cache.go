// Package cache materializes compact and binary artifacts from a
// parsed readable source, preserving the source's directory structure
// under a cache root.  Writes are atomic: a temp file in the
// destination directory is renamed into place, so readers never see a
// partial file and a failed write never corrupts an existing one.
package cache

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/najmus-sakib-hossain/dx-go/compact"
	"github.com/najmus-sakib-hossain/dx-go/debug"
	"github.com/najmus-sakib-hossain/dx-go/format"
	"github.com/najmus-sakib-hossain/dx-go/ir"
	"github.com/najmus-sakib-hossain/dx-go/zero"
)

// Generator rewrites source paths under the cache root and writes the
// configured artifact formats.  A Generator is safe for concurrent
// use; writes to the same destination path are serialized.
type Generator struct {
	projectRoot string
	cacheRoot   string

	compact     bool
	binary      bool
	compactOpts []compact.Option
	binaryOpts  []zero.EncodeOption
	timeout     time.Duration

	locks sync.Map // destination path -> *sync.Mutex
}

type Option func(*Generator)

// WithCompact controls compact artifact generation (on by default).
func WithCompact(v bool) Option {
	return func(g *Generator) { g.compact = v }
}

// WithBinary controls binary artifact generation (on by default).
func WithBinary(v bool) Option {
	return func(g *Generator) { g.binary = v }
}

// WithCompactOptions passes serializer options through to the compact
// codec.
func WithCompactOptions(opts ...compact.Option) Option {
	return func(g *Generator) { g.compactOpts = opts }
}

// WithBinaryOptions passes encoder options through to the binary
// codec.
func WithBinaryOptions(opts ...zero.EncodeOption) Option {
	return func(g *Generator) { g.binaryOpts = opts }
}

// WithTimeout bounds the filesystem write phase of a single Generate
// call.  Zero means no bound beyond the caller's context.
func WithTimeout(d time.Duration) Option {
	return func(g *Generator) { g.timeout = d }
}

func New(projectRoot, cacheRoot string, opts ...Option) *Generator {
	g := &Generator{
		projectRoot: projectRoot,
		cacheRoot:   cacheRoot,
		compact:     true,
		binary:      true,
	}
	for _, f := range opts {
		f(g)
	}
	return g
}

// Result reports where Generate wrote its artifacts.  Paths are empty
// for formats that were not configured.
type Result struct {
	CompactPath string
	BinaryPath  string
}

// Generate writes the configured artifacts for one source file.  On
// any failure it returns a typed error and leaves previously existing
// cache files untouched.
func (g *Generator) Generate(ctx context.Context, sourcePath string, doc *ir.Document) (*Result, error) {
	if err := doc.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSerialize, err)
	}

	res := &Result{}
	type artifact struct {
		path string
		data []byte
	}
	var artifacts []artifact

	if g.compact {
		path, err := g.targetPath(sourcePath, format.CompactFormat)
		if err != nil {
			return nil, err
		}
		artifacts = append(artifacts, artifact{path, []byte(compact.Serialize(doc, g.compactOpts...))})
		res.CompactPath = path
	}
	if g.binary {
		path, err := g.targetPath(sourcePath, format.BinaryFormat)
		if err != nil {
			return nil, err
		}
		artifacts = append(artifacts, artifact{path, zero.Encode(doc, g.binaryOpts...)})
		res.BinaryPath = path
	}

	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}
	for _, a := range artifacts {
		if err := g.write(ctx, a.path, a.data); err != nil {
			return nil, err
		}
		if debug.Cache() {
			debug.Logf("cache: wrote %s (%d bytes)\n", a.path, len(a.data))
		}
	}
	return res, nil
}

// targetPath re-roots a source path under the cache root with the
// format's extension, normalizing separators.
func (g *Generator) targetPath(sourcePath string, f format.Format) (string, error) {
	rel, err := filepath.Rel(g.projectRoot, sourcePath)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrPath, err)
	}
	rel = filepath.ToSlash(rel)
	if rel == ".." || strings.HasPrefix(rel, "../") {
		return "", fmt.Errorf("%w: %q escapes project root %q", ErrPath, sourcePath, g.projectRoot)
	}
	ext := filepath.Ext(rel)
	rel = strings.TrimSuffix(rel, ext) + f.Suffix()
	return filepath.Join(g.cacheRoot, filepath.FromSlash(rel)), nil
}

func (g *Generator) write(ctx context.Context, path string, data []byte) error {
	mu, _ := g.locks.LoadOrStore(path, &sync.Mutex{})
	mu.(*sync.Mutex).Lock()
	defer mu.(*sync.Mutex).Unlock()

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: %v", ErrDir, err)
	}

	done := make(chan error, 1)
	go func() { done <- writeAtomic(dir, path, data) }()
	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("%w: %v", ErrWrite, err)
		}
		return nil
	case <-ctx.Done():
		// The temp-then-rename discipline means an abandoned write
		// never lands at the final path.
		return fmt.Errorf("%w: %v", ErrWrite, ctx.Err())
	}
}

func writeAtomic(dir, path string, data []byte) error {
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+"-*.tmp")
	if err != nil {
		return err
	}
	defer func() {
		if tmp != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()
	if _, err := tmp.Write(data); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return err
	}
	tmp = nil
	return nil
}
