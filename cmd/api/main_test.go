package main

import (
	"bytes"
	"context"
	"net"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "api.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func run(t *testing.T, ctx context.Context, args ...string) (string, error) {
	t.Helper()
	for _, k := range []string{"PORT", "SHELTER_PORT", "SHELTER_CONFIG", "LOG_FORMAT", "SHELTER_LOG_FORMAT"} {
		t.Setenv(k, "")
	}

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(ctx)
	return out.String(), err
}

func TestRootCmd_MissingConfigFile(t *testing.T) {
	_, err := run(t, context.Background(), "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatalf("expected error for missing config file")
	}
	if !strings.Contains(err.Error(), "read config") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRootCmd_RejectsArgs(t *testing.T) {
	if _, err := run(t, context.Background(), "serve"); err == nil {
		t.Fatalf("expected error for positional args")
	}
}

func TestRootCmd_StopsWhenContextDone(t *testing.T) {
	path := writeConfig(t, "port: \"0\"\nlog_format: json\n")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out, err := run(t, ctx, "--config", path)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out, "starting server") || !strings.Contains(out, "server stopped") {
		t.Fatalf("unexpected log output: %q", out)
	}
}

func TestRootCmd_PortInUse(t *testing.T) {
	ln, err := net.Listen("tcp", ":0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	defer ln.Close()

	_, port, _ := net.SplitHostPort(ln.Addr().String())
	path := writeConfig(t, "port: \""+port+"\"\n")

	_, err = run(t, context.Background(), "--config", path)
	if err == nil || !strings.Contains(err.Error(), "listen") {
		t.Fatalf("expected listen error, got %v", err)
	}
}
