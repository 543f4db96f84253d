package cache

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestPreviewCache_SaveGet(t *testing.T) {
	tmp := t.TempDir()
	c := &PreviewCache{Dir: tmp}
	key := KeyFrom(0, "<div><p>x</p></div>")
	data := []byte(`{"html":"<div><p>x</p></div>","text":"x"}`)
	if err := c.Save(context.Background(), key, data); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, ok, err := c.Get(context.Background(), key)
	if err != nil || !ok {
		t.Fatalf("get: %v ok=%v", err, ok)
	}
	if string(got) != string(data) {
		t.Fatalf("mismatch")
	}
}

func TestPreviewCache_Miss(t *testing.T) {
	c := &PreviewCache{Dir: t.TempDir()}
	if _, ok, err := c.Get(context.Background(), KeyFrom(0, "absent")); ok || err != nil {
		t.Fatalf("expected clean miss, ok=%v err=%v", ok, err)
	}
}

func TestPreviewCache_NoDir(t *testing.T) {
	var c PreviewCache
	if _, _, err := c.Get(context.Background(), "k"); err == nil {
		t.Fatal("expected error without dir")
	}
}

func TestKeyFrom_DependsOnOptions(t *testing.T) {
	if KeyFrom(0, "a") == KeyFrom(10, "a") {
		t.Fatal("rune limit must change the key")
	}
	if KeyFrom(0, "a") != KeyFrom(0, "a") {
		t.Fatal("key must be stable")
	}
}

func TestPreviewCache_StrictPerms(t *testing.T) {
	t.Parallel()
	base := t.TempDir()
	dir := filepath.Join(base, "previews")
	c := &PreviewCache{Dir: dir, StrictPerms: true}
	key := KeyFrom(0, "body")
	if err := c.Save(context.Background(), key, []byte(`{}`)); err != nil {
		t.Fatalf("save: %v", err)
	}
	info, err := os.Stat(dir)
	if err != nil {
		t.Fatalf("stat dir: %v", err)
	}
	if got := info.Mode() & 0o777; got != 0o700 {
		t.Fatalf("dir mode = %o, want 0700", got)
	}
	finfo, err := os.Stat(filepath.Join(dir, key+".json"))
	if err != nil {
		t.Fatalf("stat file: %v", err)
	}
	if got := finfo.Mode() & 0o777; got != 0o600 {
		t.Fatalf("file mode = %o, want 0600", got)
	}
}

func TestPurgeOlderThan(t *testing.T) {
	tmp := t.TempDir()
	c := &PreviewCache{Dir: tmp}
	oldKey, newKey := KeyFrom(0, "old"), KeyFrom(0, "new")
	for _, k := range []string{oldKey, newKey} {
		if err := c.Save(context.Background(), k, []byte(`{}`)); err != nil {
			t.Fatalf("save: %v", err)
		}
	}
	past := time.Now().Add(-2 * time.Hour)
	if err := os.Chtimes(filepath.Join(tmp, oldKey+".json"), past, past); err != nil {
		t.Fatalf("chtimes: %v", err)
	}
	removed, err := PurgeOlderThan(tmp, time.Hour)
	if err != nil {
		t.Fatalf("purge: %v", err)
	}
	if removed != 1 {
		t.Fatalf("removed = %d, want 1", removed)
	}
	if _, ok, _ := c.Get(context.Background(), oldKey); ok {
		t.Fatal("expected old entry purged")
	}
	if _, ok, _ := c.Get(context.Background(), newKey); !ok {
		t.Fatal("expected new entry kept")
	}
}

func TestPurgeOlderThan_MissingDirAndDisabled(t *testing.T) {
	if n, err := PurgeOlderThan(filepath.Join(t.TempDir(), "nope"), time.Hour); n != 0 || err != nil {
		t.Fatalf("missing dir: n=%d err=%v", n, err)
	}
	if n, err := PurgeOlderThan(t.TempDir(), 0); n != 0 || err != nil {
		t.Fatalf("disabled: n=%d err=%v", n, err)
	}
}

func TestClearDir(t *testing.T) {
	tmp := t.TempDir()
	if err := os.WriteFile(filepath.Join(tmp, "x.json"), []byte("1"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := ClearDir(tmp); err != nil {
		t.Fatalf("clear: %v", err)
	}
	entries, err := os.ReadDir(tmp)
	if err != nil {
		t.Fatalf("readdir: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected empty dir, got %d entries", len(entries))
	}
	if err := ClearDir("  "); err == nil {
		t.Fatal("expected error for blank dir")
	}
}
