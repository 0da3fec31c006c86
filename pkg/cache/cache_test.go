package cache

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestNullCache(t *testing.T) {
	ctx := context.Background()
	c := NewNullCache()
	defer c.Close()

	data, hit, err := c.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if hit {
		t.Error("NullCache.Get should always return miss")
	}
	if data != nil {
		t.Error("NullCache.Get should return nil data")
	}

	if err := c.Set(ctx, "key", []byte("value"), time.Hour); err != nil {
		t.Errorf("Set error: %v", err)
	}
	_, hit, _ = c.Get(ctx, "key")
	if hit {
		t.Error("NullCache should not store data")
	}

	if err := c.Delete(ctx, "key"); err != nil {
		t.Errorf("Delete error: %v", err)
	}
}

func TestFileCache(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(filepath.Join(t.TempDir(), "artifacts"))
	if err != nil {
		t.Fatalf("NewFileCache error: %v", err)
	}
	defer c.Close()

	// Absent key misses
	_, hit, err := c.Get(ctx, "plan:abc")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if hit {
		t.Error("expected a miss for an absent key")
	}

	// Roundtrip without expiration
	payload := []byte{0x89, 'P', 'N', 'G'}
	if err := c.Set(ctx, "plan:abc", payload, 0); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	data, hit, err := c.Get(ctx, "plan:abc")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if !hit {
		t.Fatal("expected a hit after Set")
	}
	if !bytes.Equal(data, payload) {
		t.Errorf("Get returned %v, want %v", data, payload)
	}

	// Delete removes the entry; deleting again is fine
	if err := c.Delete(ctx, "plan:abc"); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if _, hit, _ = c.Get(ctx, "plan:abc"); hit {
		t.Error("expected a miss after Delete")
	}
	if err := c.Delete(ctx, "plan:abc"); err != nil {
		t.Errorf("second Delete error: %v", err)
	}
}

func TestFileCacheExpiration(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache error: %v", err)
	}
	if err := c.Set(ctx, "key", []byte("stale"), time.Nanosecond); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	time.Sleep(5 * time.Millisecond)
	if _, hit, _ := c.Get(ctx, "key"); hit {
		t.Error("expected an expired entry to miss")
	}
}

func TestFileCacheCorruptEntry(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	c, err := NewFileCache(dir)
	if err != nil {
		t.Fatalf("NewFileCache error: %v", err)
	}
	fc := c.(*FileCache)
	path := fc.path("key")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, hit, err := c.Get(ctx, "key"); err != nil || hit {
		t.Errorf("expected a silent miss for a corrupt entry, got hit=%v err=%v", hit, err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("expected the corrupt entry to be removed")
	}
}

func TestHash(t *testing.T) {
	h1 := Hash([]byte("hello"))
	h2 := Hash([]byte("hello"))
	if h1 != h2 {
		t.Error("Hash should be deterministic")
	}
	h3 := Hash([]byte("world"))
	if h1 == h3 {
		t.Error("Different inputs should produce different hashes")
	}
	if len(h1) != 64 {
		t.Errorf("Hash length should be 64, got %d", len(h1))
	}
}

func TestDefaultKeyer(t *testing.T) {
	k := NewDefaultKeyer()

	pk1 := k.PlanKey("confighash", 0, PlanKeyOpts{DPI: 100})
	pk2 := k.PlanKey("confighash", 0, PlanKeyOpts{DPI: 100})
	if pk1 != pk2 {
		t.Error("PlanKey should be deterministic")
	}
	if !strings.HasPrefix(pk1, "plan:") {
		t.Errorf("PlanKey should carry the plan prefix: %s", pk1)
	}
	if pk1 == k.PlanKey("confighash", 1, PlanKeyOpts{DPI: 100}) {
		t.Error("Different plan indices should produce different keys")
	}
	if pk1 == k.PlanKey("confighash", 0, PlanKeyOpts{DPI: 150}) {
		t.Error("Different DPI values should produce different keys")
	}
	if pk1 == k.PlanKey("otherhash", 0, PlanKeyOpts{DPI: 100}) {
		t.Error("Different config hashes should produce different keys")
	}

	dk := k.DocumentKey("confighash")
	if !strings.HasPrefix(dk, "document:") {
		t.Errorf("DocumentKey should carry the document prefix: %s", dk)
	}
	if dk == k.DocumentKey("otherhash") {
		t.Error("Different config hashes should produce different document keys")
	}
}

func TestScopedKeyer(t *testing.T) {
	inner := NewDefaultKeyer()
	scoped := NewScopedKeyer(inner, "v1.2.0:")

	pk := scoped.PlanKey("confighash", 0, PlanKeyOpts{DPI: 100})
	if !strings.HasPrefix(pk, "v1.2.0:plan:") {
		t.Errorf("ScopedKeyer PlanKey should be prefixed: %s", pk)
	}
	if strings.TrimPrefix(pk, "v1.2.0:") != inner.PlanKey("confighash", 0, PlanKeyOpts{DPI: 100}) {
		t.Error("ScopedKeyer should delegate to the inner keyer")
	}

	dk := scoped.DocumentKey("confighash")
	if !strings.HasPrefix(dk, "v1.2.0:document:") {
		t.Errorf("ScopedKeyer DocumentKey should be prefixed: %s", dk)
	}
}

func TestScopedKeyerNilInner(t *testing.T) {
	scoped := NewScopedKeyer(nil, "prefix:")
	want := "prefix:" + NewDefaultKeyer().DocumentKey("confighash")
	if got := scoped.DocumentKey("confighash"); got != want {
		t.Errorf("Unexpected key with nil inner: got %s, want %s", got, want)
	}
}
