package fsutil

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	if runtime.GOOS == "windows" {
		t.Setenv("USERPROFILE", home)
	}
	if got, err := ExpandHome("/tmp"); err != nil || got != "/tmp" {
		t.Fatalf("got %q err=%v", got, err)
	}
	if got, err := ExpandHome(""); err != nil || got != "" {
		t.Fatalf("got %q err=%v", got, err)
	}
	p, err := ExpandHome("~")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if p != home {
		t.Fatalf("expected %q, got %q", home, p)
	}
	exp, err := ExpandHome("~/artifacts")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if want := filepath.Join(home, "artifacts"); exp != want {
		t.Fatalf("expected %q, got %q", want, exp)
	}
}

func TestPathExists(t *testing.T) {
	d := t.TempDir()
	p := filepath.Join(d, "columns.json")
	if PathExists(p) {
		t.Fatalf("expected %s to be missing", p)
	}
	if err := os.WriteFile(p, []byte("{}"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if !PathExists(p) {
		t.Fatalf("expected %s to exist", p)
	}
}

func TestSplitCompression(t *testing.T) {
	cases := []struct {
		in, base, comp string
	}{
		{"model.json", "model.json", CompressionNone},
		{"model.json.zst", "model.json", CompressionZstd},
		{"MODEL.TOML.LZ4", "MODEL.TOML", CompressionLZ4},
		{"s3://bucket/a/model.yaml.zst", "s3://bucket/a/model.yaml", CompressionZstd},
	}
	for _, c := range cases {
		base, comp := SplitCompression(c.in)
		if base != c.base || comp != c.comp {
			t.Fatalf("SplitCompression(%q) = (%q, %q), want (%q, %q)", c.in, base, comp, c.base, c.comp)
		}
	}
	if got := Ext("model.YAML.zst"); got != ".yaml" {
		t.Fatalf("Ext = %q", got)
	}
}
