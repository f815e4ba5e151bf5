package main

import (
	"errors"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tinytelemetry/vmfirst/internal/model"
	"github.com/tinytelemetry/vmfirst/internal/nav"
)

func TestLoadConfig_Defaults(t *testing.T) {
	resetVMFirstEnv(t)

	cfg, err := loadCLIConfig(filepath.Join(t.TempDir(), "missing.yml"))
	if err != nil {
		t.Fatalf("loadCLIConfig returned error: %v", err)
	}
	if cfg.StartRoute != model.DefaultStartRoute {
		t.Fatalf("StartRoute = %q", cfg.StartRoute)
	}
	if cfg.ToastDuration != model.DefaultToastDuration || cfg.LongToastDuration != model.DefaultLongToast {
		t.Fatalf("toast durations = %s, %s", cfg.ToastDuration, cfg.LongToastDuration)
	}
	if !strings.HasSuffix(cfg.LogFile, filepath.Join("vmfirst", "vmfirst.log")) {
		t.Fatalf("LogFile = %q", cfg.LogFile)
	}
}

func TestLoadConfig_FileAndEnv(t *testing.T) {
	resetVMFirstEnv(t)

	path := writeTempConfig(t, `
start-route: Catalog
catalog-path: /tmp/shop.yml
toast-duration: 500ms
`)
	t.Setenv("VMFIRST_LONG_TOAST_DURATION", "9s")

	cfg, err := loadCLIConfig(path)
	if err != nil {
		t.Fatalf("loadCLIConfig returned error: %v", err)
	}
	if cfg.StartRoute != "Catalog" || cfg.CatalogPath != "/tmp/shop.yml" {
		t.Fatalf("cfg = %+v", cfg)
	}
	if cfg.ToastDuration != 500*time.Millisecond {
		t.Fatalf("ToastDuration = %s", cfg.ToastDuration)
	}
	if cfg.LongToastDuration != 9*time.Second {
		t.Fatalf("LongToastDuration = %s", cfg.LongToastDuration)
	}
}

func TestLoadConfig_Invalid(t *testing.T) {
	resetVMFirstEnv(t)

	tests := []struct {
		name         string
		configYAML   string
		errSubstring string
	}{
		{"blank start route", "start-route: '  '", "start-route"},
		{"zero toast", "toast-duration: 0s", "toast durations"},
		{"broken yaml", "start-route: [", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loadCLIConfig(writeTempConfig(t, tt.configYAML))
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if tt.errSubstring != "" && !strings.Contains(err.Error(), tt.errSubstring) {
				t.Fatalf("error = %q, want substring %q", err.Error(), tt.errSubstring)
			}
		})
	}
}

func TestConfigureRuntimeLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "vmfirst.log")
	cleanup := configureRuntimeLogger(path)
	log.Printf("main: hello from the test")
	cleanup()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "hello from the test") {
		t.Fatalf("log = %q", data)
	}
}

func TestNewShell_UnknownStartRoute(t *testing.T) {
	t.Parallel()

	_, err := newShell(cliConfig{StartRoute: "Nowhere", ToastDuration: time.Second, LongToastDuration: time.Second})
	if !errors.Is(err, nav.ErrUnknownRoute) {
		t.Fatalf("err = %v, want ErrUnknownRoute", err)
	}
}

func TestNewShell_ShowsStartRoute(t *testing.T) {
	t.Parallel()

	sh, err := newShell(cliConfig{StartRoute: "Login", ToastDuration: time.Second, LongToastDuration: time.Second})
	if err != nil {
		t.Fatalf("newShell: %v", err)
	}
	defer sh.Close()

	if sh.root.IsResolved() {
		t.Fatal("root push should wait for the event loop")
	}
	sh.app.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	if ok, _ := sh.root.Value(); !ok {
		t.Fatal("root push should succeed")
	}
	if !strings.Contains(sh.app.View(), "Welcome to the shop") {
		t.Fatalf("view:\n%s", sh.app.View())
	}
}

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	if err := os.WriteFile(path, []byte(strings.TrimSpace(content)+"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func resetVMFirstEnv(t *testing.T) {
	t.Helper()

	for _, kv := range os.Environ() {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || !strings.HasPrefix(key, "VMFIRST_") {
			continue
		}
		t.Setenv(key, value)
		if err := os.Unsetenv(key); err != nil {
			t.Fatalf("unset %s: %v", key, err)
		}
	}
}
