package cache

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/najmus-sakib-hossain/dx-go/compact"
	"github.com/najmus-sakib-hossain/dx-go/ir"
	"github.com/najmus-sakib-hossain/dx-go/zero"
)

func sampleDoc(name string) *ir.Document {
	doc := ir.NewDocument()
	doc.Set("name", ir.FromString(name))
	doc.AddSection(ir.Section{
		ID:     'u',
		Schema: []string{"id", "name"},
		Rows:   [][]ir.Value{{ir.FromInt(1), ir.FromString("Alice")}},
	})
	return doc
}

func TestGeneratePreservesPath(t *testing.T) {
	root := t.TempDir()
	cacheRoot := t.TempDir()
	src := filepath.Join(root, "a", "b", "c.dxh")

	g := New(root, cacheRoot)
	res, err := g.Generate(context.Background(), src, sampleDoc("demo"))
	if err != nil {
		t.Fatal(err)
	}
	wantCompact := filepath.Join(cacheRoot, "a", "b", "c.dx")
	wantBinary := filepath.Join(cacheRoot, "a", "b", "c.dxb")
	if res.CompactPath != wantCompact {
		t.Errorf("CompactPath = %q, want %q", res.CompactPath, wantCompact)
	}
	if res.BinaryPath != wantBinary {
		t.Errorf("BinaryPath = %q, want %q", res.BinaryPath, wantBinary)
	}

	text, err := os.ReadFile(wantCompact)
	if err != nil {
		t.Fatal(err)
	}
	back, err := compact.Parse(string(text))
	if err != nil {
		t.Fatal(err)
	}
	if !back.Equal(sampleDoc("demo")) {
		t.Error("compact artifact does not round trip")
	}

	data, err := os.ReadFile(wantBinary)
	if err != nil {
		t.Fatal(err)
	}
	if back, err = zero.Decode(data); err != nil {
		t.Fatal(err)
	} else if !back.Equal(sampleDoc("demo")) {
		t.Error("binary artifact does not round trip")
	}
}

func TestGenerateCompactOnly(t *testing.T) {
	root := t.TempDir()
	g := New(root, t.TempDir(), WithBinary(false))
	res, err := g.Generate(context.Background(), filepath.Join(root, "x.dxh"), sampleDoc("x"))
	if err != nil {
		t.Fatal(err)
	}
	if res.BinaryPath != "" {
		t.Errorf("BinaryPath = %q, want empty", res.BinaryPath)
	}
	if _, err := os.Stat(res.CompactPath); err != nil {
		t.Error(err)
	}
}

func TestGenerateRejectsEscapingPath(t *testing.T) {
	root := filepath.Join(t.TempDir(), "proj")
	g := New(root, t.TempDir())
	_, err := g.Generate(context.Background(), filepath.Join(root, "..", "outside.dxh"), sampleDoc("x"))
	if !errors.Is(err, ErrPath) {
		t.Errorf("err = %v, want %v", err, ErrPath)
	}
}

func TestGenerateRejectsInvalidDocument(t *testing.T) {
	doc := ir.NewDocument()
	doc.AddSection(ir.Section{ID: 'u', Schema: []string{"id"}, Rows: [][]ir.Value{{ir.FromInt(1), ir.FromInt(2)}}})
	root := t.TempDir()
	g := New(root, t.TempDir())
	_, err := g.Generate(context.Background(), filepath.Join(root, "x.dxh"), doc)
	if !errors.Is(err, ErrSerialize) {
		t.Errorf("err = %v, want %v", err, ErrSerialize)
	}
}

func TestGenerateCanceledLeavesExistingArtifact(t *testing.T) {
	root := t.TempDir()
	cacheRoot := t.TempDir()
	src := filepath.Join(root, "rules.dxh")
	g := New(root, cacheRoot, WithBinary(false))

	if _, err := g.Generate(context.Background(), src, sampleDoc("before")); err != nil {
		t.Fatal(err)
	}
	before, err := os.ReadFile(filepath.Join(cacheRoot, "rules.dx"))
	if err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := g.Generate(ctx, src, sampleDoc("after")); !errors.Is(err, ErrWrite) {
		t.Fatalf("err = %v, want %v", err, ErrWrite)
	}

	after, err := os.ReadFile(filepath.Join(cacheRoot, "rules.dx"))
	if err != nil {
		t.Fatal(err)
	}
	if string(before) != string(after) {
		t.Error("failed generate corrupted the existing artifact")
	}
}

func TestGenerateConcurrent(t *testing.T) {
	root := t.TempDir()
	cacheRoot := t.TempDir()
	g := New(root, cacheRoot)

	srcs := []string{
		filepath.Join(root, "src", "pkg1", "rules.dxh"),
		filepath.Join(root, "src", "pkg2", "rules.dxh"),
	}
	var wg sync.WaitGroup
	errs := make([]error, len(srcs))
	for i, src := range srcs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, errs[i] = g.Generate(context.Background(), src, sampleDoc(src))
		}()
	}
	wg.Wait()
	for i, err := range errs {
		if err != nil {
			t.Errorf("generate %d: %v", i, err)
		}
	}
	for _, pkg := range []string{"pkg1", "pkg2"} {
		if _, err := os.Stat(filepath.Join(cacheRoot, "src", pkg, "rules.dx")); err != nil {
			t.Error(err)
		}
	}
}
