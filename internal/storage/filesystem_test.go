package storage

import (
	"context"
	"os"
	"testing"

	"adcraft/pkg/zip"
)

func TestFileStoreWriteAssets(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore returned error: %v", err)
	}
	keys, err := store.WriteAssets(context.Background(), "cold-brew", []zip.Asset{
		{Filename: "copy.txt", Data: []byte("Tagline: Cold Brew")},
		{Filename: "result.json", Data: []byte("{}")},
	})
	if err != nil {
		t.Fatalf("WriteAssets returned error: %v", err)
	}
	if len(keys) != 2 || keys[0] != "cold-brew/copy.txt" {
		t.Fatalf("keys = %v", keys)
	}
	data, err := os.ReadFile(store.Path(keys[0]))
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(data) != "Tagline: Cold Brew" {
		t.Fatalf("content = %q", data)
	}
}

func TestSanitizeKey(t *testing.T) {
	cases := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "kit/copy.txt", want: "kit/copy.txt"},
		{in: "/kit//copy.txt", want: "kit/copy.txt"},
		{in: `kit\copy.txt`, want: "kit/copy.txt"},
		{in: "../escape.txt", wantErr: true},
		{in: "  ", wantErr: true},
	}
	for _, tc := range cases {
		got, err := sanitizeKey(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("sanitizeKey(%q) expected error, got %q", tc.in, got)
			}
			continue
		}
		if err != nil || got != tc.want {
			t.Fatalf("sanitizeKey(%q) = %q, %v; want %q", tc.in, got, err, tc.want)
		}
	}
}

func TestFileStoreWriteHonoursContext(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore returned error: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := store.Write(ctx, "a.txt", nil); err == nil {
		t.Fatal("expected error for cancelled context")
	}
}
