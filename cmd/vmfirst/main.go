package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"

	"github.com/tinytelemetry/vmfirst/internal/bus"
	"github.com/tinytelemetry/vmfirst/internal/demo"
	"github.com/tinytelemetry/vmfirst/internal/future"
	"github.com/tinytelemetry/vmfirst/internal/model"
	"github.com/tinytelemetry/vmfirst/internal/mvvm"
	"github.com/tinytelemetry/vmfirst/internal/nav"
	"github.com/tinytelemetry/vmfirst/internal/tui"
)

var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
	goVersion = "unknown"
)

func main() {
	var configPath string
	var showVersion bool

	flag.StringVar(&configPath, "config", "", "config file (default is $HOME/.config/vmfirst/config.yml)")
	flag.BoolVar(&showVersion, "version", false, "print version information")
	flag.Parse()

	if showVersion {
		fmt.Printf("vmfirst - view-model-first navigation demo\n")
		fmt.Printf("  Version:    %s\n", version)
		fmt.Printf("  Commit:     %s\n", commit)
		fmt.Printf("  Built:      %s\n", buildTime)
		fmt.Printf("  Go version: %s\n", goVersion)
		return
	}

	cfg, err := loadCLIConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if err := runTUI(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// shell is the wired application: the terminal host, the navigation
// service and the pending root push.
type shell struct {
	bus  *bus.Bus
	app  *tui.App
	svc  *nav.Service
	root *future.Future[bool]
}

func newShell(cfg cliConfig) (*shell, error) {
	b := bus.New()
	app := tui.NewApp(b, tui.WithToastDurations(cfg.ToastDuration, cfg.LongToastDuration))

	routes := nav.NewRoutes()
	env := demo.Env{Deps: mvvm.Deps{Bus: b, Routes: routes}, CatalogPath: cfg.CatalogPath}
	if err := demo.Register(routes, env); err != nil {
		app.Close()
		return nil, fmt.Errorf("registering routes: %w", err)
	}

	page, vm, err := routes.Build(cfg.StartRoute)
	if err != nil {
		app.Close()
		return nil, fmt.Errorf("start route: %w", err)
	}

	svc := nav.NewService(app.Window(), b)
	root := svc.Init(model.NewPushInfo(page, vm, model.NavigationModeRootPage, nil, false))
	return &shell{bus: b, app: app, svc: svc, root: root}, nil
}

func (s *shell) Close() {
	s.svc.Close()
	s.app.Close()
}

func runTUI(cfg cliConfig) error {
	cleanupLogger := configureRuntimeLogger(cfg.LogFile)
	defer cleanupLogger()

	sh, err := newShell(cfg)
	if err != nil {
		return err
	}
	defer sh.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	p := tea.NewProgram(sh.app, tea.WithAltScreen(), tea.WithContext(ctx))
	sh.app.Attach(p)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer cancel()
		if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
			if strings.Contains(err.Error(), "TTY") || strings.Contains(err.Error(), "/dev/tty") {
				return fmt.Errorf("TUI requires a real terminal")
			}
			return fmt.Errorf("error running TUI: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		ok, err := sh.root.Wait(gctx)
		if err != nil {
			return nil
		}
		if !ok {
			log.Printf("main: start route %q failed to show", cfg.StartRoute)
			p.Quit()
			return fmt.Errorf("could not show %q", cfg.StartRoute)
		}
		log.Printf("main: started on %q", cfg.StartRoute)
		return nil
	})

	return g.Wait()
}
