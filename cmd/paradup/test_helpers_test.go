package main

import (
	"bytes"
	"strings"
	"testing"

	"paradup/internal/testsupport"
)

func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func scenarioCorpus(t *testing.T) string {
	t.Helper()
	return testsupport.WriteCorpus(t, map[string]string{
		"file1.txt": "Hello World\n\nUnique A",
		"file2.txt": "HELLO   WORLD\n\nUnique B",
	})
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}
