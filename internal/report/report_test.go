package report

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/gofrs/flock"

	"paradup/internal/dupdetect"
	"paradup/internal/testsupport"
)

func TestWriteTextDuplicates(t *testing.T) {
	result := dupdetect.Result{
		Root:       "data",
		FilesFound: 3,
		Duplicates: dupdetect.Report{
			"zebra":       {"a.txt", "c.txt"},
			"hello world": {"file1.txt", "file2.txt"},
		},
	}
	var buf bytes.Buffer
	if err := WriteText(&buf, result); err != nil {
		t.Fatalf("WriteText returned error: %v", err)
	}
	want := "Duplicate Paragraph: hello world\n-> Found in: file1.txt, file2.txt\n" +
		"Duplicate Paragraph: zebra\n-> Found in: a.txt, c.txt\n"
	if buf.String() != want {
		t.Fatalf("unexpected output:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestWriteTextNoDuplicates(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteText(&buf, dupdetect.Result{Root: "data", FilesFound: 2, Duplicates: dupdetect.Report{}}); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "No duplicates found!\n" {
		t.Fatalf("unexpected output %q", buf.String())
	}
}

func TestWriteTextNoFiles(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteText(&buf, dupdetect.Result{Root: "empty", Duplicates: dupdetect.Report{}}); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "No files found in empty\nNo duplicates found!\n" {
		t.Fatalf("unexpected output %q", buf.String())
	}
}

func TestEncode(t *testing.T) {
	r := dupdetect.Report{
		"b <tag> & more": {"x.txt", "y.txt"},
		"a":              {"file1.txt", "file2.txt"},
	}
	got, err := Marshal(r)
	if err != nil {
		t.Fatal(err)
	}
	want := "{\n  \"a\": [\n    \"file1.txt\",\n    \"file2.txt\"\n  ],\n  \"b <tag> & more\": [\n    \"x.txt\",\n    \"y.txt\"\n  ]\n}\n"
	if string(got) != want {
		t.Fatalf("unexpected JSON:\n%s\nwant:\n%s", got, want)
	}
}

func TestEncodeEmpty(t *testing.T) {
	for _, r := range []dupdetect.Report{nil, {}} {
		got, err := Marshal(r)
		if err != nil {
			t.Fatal(err)
		}
		if string(got) != "{}\n" {
			t.Fatalf("unexpected empty encoding %q", got)
		}
	}
}

func TestWriteFileIsIdempotent(t *testing.T) {
	root := testsupport.WriteCorpus(t, map[string]string{
		"file1.txt": "Hello World\n\nUnique A",
		"file2.txt": "HELLO   WORLD\n\nUnique B",
		"file3.txt": "unique c\n\nhello world",
	})
	out := filepath.Join(t.TempDir(), "out", "report.json")

	var runs [][]byte
	for i := 0; i < 2; i++ {
		result, err := dupdetect.Find(dupdetect.Options{Root: root})
		if err != nil {
			t.Fatalf("Find returned error: %v", err)
		}
		if err := WriteFile(out, result.Duplicates); err != nil {
			t.Fatalf("WriteFile returned error: %v", err)
		}
		data, err := os.ReadFile(out)
		if err != nil {
			t.Fatal(err)
		}
		runs = append(runs, data)
	}
	if !bytes.Equal(runs[0], runs[1]) {
		t.Fatalf("expected byte-identical output:\n%s\n---\n%s", runs[0], runs[1])
	}
	if !strings.Contains(string(runs[0]), `"hello world": [`) {
		t.Fatalf("unexpected report content %s", runs[0])
	}
}

func TestWriteFileLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "report.json")
	if err := WriteFile(out, dupdetect.Report{"a": {"x", "y"}}); err != nil {
		t.Fatal(err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	var names []string
	for _, entry := range entries {
		if strings.HasSuffix(entry.Name(), ".tmp") {
			t.Fatalf("leftover temp file %s", entry.Name())
		}
		names = append(names, entry.Name())
	}
	if want := []string{"report.json", "report.json.lock"}; !reflect.DeepEqual(names, want) {
		t.Fatalf("directory entries = %v, want %v", names, want)
	}
}

func TestWriteFileRespectsLock(t *testing.T) {
	out := filepath.Join(t.TempDir(), "report.json")
	if err := os.WriteFile(out, []byte("previous"), 0o644); err != nil {
		t.Fatal(err)
	}
	holder := flock.New(out + ".lock")
	locked, err := holder.TryLock()
	if err != nil || !locked {
		t.Fatalf("acquire lock: locked=%v err=%v", locked, err)
	}
	defer holder.Unlock()

	err = WriteFile(out, dupdetect.Report{"a": {"x", "y"}})
	if !errors.Is(err, ErrLocked) {
		t.Fatalf("expected ErrLocked, got %v", err)
	}
	data, _ := os.ReadFile(out)
	if string(data) != "previous" {
		t.Fatalf("expected existing report to be untouched, got %q", data)
	}
}

func TestWriteFileEmptyPath(t *testing.T) {
	if err := WriteFile("  ", dupdetect.Report{}); err == nil {
		t.Fatal("expected error for empty path")
	}
}
