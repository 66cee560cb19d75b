package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func newTestFS(t *testing.T) (*FS, string) {
	t.Helper()
	dir := t.TempDir()
	fs, err := NewFS(dir)
	if err != nil {
		t.Fatalf("NewFS: %v", err)
	}
	return fs, dir
}

func TestWriteAndRead(t *testing.T) {
	fs, _ := newTestFS(t)
	if err := fs.Write("crim.txt", []byte("มาตรา 1 เนื้อหา")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	data, err := fs.Read("crim.txt")
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if string(data) != "มาตรา 1 เนื้อหา" {
		t.Errorf("data = %q", data)
	}
}

func TestDelete(t *testing.T) {
	fs, _ := newTestFS(t)
	if err := fs.Write("civil.txt", []byte("x")); err != nil {
		t.Fatal(err)
	}
	if err := fs.Delete("civil.txt"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := fs.Read("civil.txt"); err == nil {
		t.Error("expected read error after delete")
	}
}

func TestList_OnlyTxtFiles(t *testing.T) {
	fs, dir := newTestFS(t)
	if err := fs.Write("crim.txt", []byte("a")); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "notes.md"), []byte("b"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.Mkdir(filepath.Join(dir, "sub"), 0o755); err != nil {
		t.Fatal(err)
	}

	infos, err := fs.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(infos) != 1 || infos[0].Name != "crim.txt" {
		t.Errorf("infos = %+v, want only crim.txt", infos)
	}
	if infos[0].Checksum == "" {
		t.Error("checksum should be populated")
	}
}

func TestTraversalBlocked(t *testing.T) {
	fs, _ := newTestFS(t)
	for _, name := range []string{"../escape.txt", "a/b.txt", "..", ""} {
		if _, err := fs.Read(name); err == nil {
			t.Errorf("Read(%q) should fail", name)
		}
		if err := fs.Write(name, []byte("x")); err == nil {
			t.Errorf("Write(%q) should fail", name)
		}
	}
}

func TestAtomicWriteNoCorruption(t *testing.T) {
	fs, dir := newTestFS(t)
	if err := fs.Write("law.txt", []byte("v1")); err != nil {
		t.Fatal(err)
	}
	if err := fs.Write("law.txt", []byte("v2")); err != nil {
		t.Fatal(err)
	}
	data, err := fs.Read("law.txt")
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "v2" {
		t.Errorf("data = %q, want v2", data)
	}

	// No temp files left behind.
	entries, _ := os.ReadDir(dir)
	for _, e := range entries {
		if e.Name() != "law.txt" {
			t.Errorf("unexpected leftover file: %s", e.Name())
		}
	}
}

func TestNewFS_NonExistentDir(t *testing.T) {
	if _, err := NewFS(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("expected error for missing directory")
	}
}
