package store

import (
	"bytes"
	"errors"
	"testing"
)

type testConfig struct {
	path string
}

func (t testConfig) BasePath() string {
	return t.path
}

func TestDiskReadMissingKey(t *testing.T) {
	p, err := Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load store: %v", err)
	}

	data, ok, err := p.Read(JournalKey)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if ok || data != nil {
		t.Fatalf("expected no data for an unwritten key, got ok=%v data=%q", ok, data)
	}
}

func TestDiskWriteReadRoundTrip(t *testing.T) {
	base := t.TempDir()
	p, err := Load(testConfig{path: base})
	if err != nil {
		t.Fatalf("load store: %v", err)
	}

	want := []byte(`[{"id":"a","title":"t","content":"c","date":"2024-03-01T00:00:00Z","mood":"happy"}]`)
	if err := p.Write(JournalKey, want); err != nil {
		t.Fatalf("write: %v", err)
	}

	got, ok, err := p.Read(JournalKey)
	if err != nil || !ok {
		t.Fatalf("read back: ok=%v err=%v", ok, err)
	}
	if !bytes.Equal(got, want) {
		t.Fatalf("round trip changed data: %q != %q", got, want)
	}

	// A second write overwrites the prior value.
	if err := p.Write(JournalKey, []byte("[]")); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	got, _, _ = p.Read(JournalKey)
	if string(got) != "[]" {
		t.Fatalf("overwrite not applied: %q", got)
	}

	// A fresh adapter over the same path sees the persisted value.
	p2, err := Load(testConfig{path: base})
	if err != nil {
		t.Fatalf("reload store: %v", err)
	}
	got, ok, err = p2.Read(JournalKey)
	if err != nil || !ok || string(got) != "[]" {
		t.Fatalf("persisted value lost: ok=%v err=%v data=%q", ok, err, got)
	}
}

func TestMemoryWriteErr(t *testing.T) {
	m := NewMemory()
	if err := m.Write(JournalKey, []byte("a")); err != nil {
		t.Fatalf("write: %v", err)
	}

	m.WriteErr = errTest
	if err := m.Write(JournalKey, []byte("b")); err != errTest {
		t.Fatalf("expected injected error, got %v", err)
	}

	got, ok, err := m.Read(JournalKey)
	if err != nil || !ok || string(got) != "a" {
		t.Fatalf("failed write should leave stored data alone: %q", got)
	}
}

var errTest = errors.New("write refused")
