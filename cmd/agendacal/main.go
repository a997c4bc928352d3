package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"

	"agendacal/internal/agenda"
	"agendacal/internal/config"
	"agendacal/internal/ics"
	appLog "agendacal/internal/log"
	"agendacal/internal/render"
	"agendacal/internal/source"
	"agendacal/internal/web"
)

// flagConfig holds CLI flag values. Positional arguments are the event
// directories and override the config file's dirs list.
type flagConfig struct {
	configPath string
	listen     string
	exportICS  string
	watch      bool
	verbose    bool
}

func main() {
	flags := parseFlags()

	if flags.verbose {
		appLog.SetLevel(appLog.LevelDebug)
	}

	conf := config.DefaultConfig()
	if flags.configPath != "" {
		var err error
		conf, err = config.Load(flags.configPath)
		if err != nil {
			appLog.Error("failed to load config", err, "config_path", flags.configPath)
			os.Exit(1)
		}
	}

	// CLI overrides.
	if flags.listen != "" {
		conf.Listen = flags.listen
	}
	if flags.exportICS != "" {
		conf.ExportICS = flags.exportICS
	}
	dirs := flag.Args()
	if len(dirs) == 0 {
		dirs = conf.Dirs
	}
	if len(dirs) == 0 {
		appLog.Error("no event directories", fmt.Errorf("pass directories as arguments or set dirs in the config"))
		os.Exit(1)
	}

	if !flags.watch {
		snap, err := evaluate(dirs, conf.ExportICS)
		if err != nil {
			appLog.Error("error processing event files", err)
			os.Exit(1)
		}
		printAgenda(snap)
		return
	}

	runWatch(conf, dirs)
}

// evaluate runs one full pipeline pass: load every document, keep the
// events active at a single captured timestamp, order them, and render
// their lines. Any document error aborts the pass with no output.
func evaluate(dirs []string, exportPath string) (web.Snapshot, error) {
	events, err := source.LoadDirs(dirs)
	if err != nil {
		return web.Snapshot{}, err
	}

	now := time.Now()
	active := agenda.Active(events, now)
	agenda.Sort(active)

	lines := make([]string, len(active))
	for i, ev := range active {
		lines[i] = render.Line(ev, now)
	}

	if exportPath != "" {
		f, err := os.Create(exportPath)
		if err != nil {
			return web.Snapshot{}, err
		}
		if err := ics.Export(f, active, now); err != nil {
			f.Close()
			return web.Snapshot{}, err
		}
		if err := f.Close(); err != nil {
			return web.Snapshot{}, err
		}
		appLog.Debug("wrote ICS export", "path", exportPath, "event_count", len(active))
	}

	return web.Snapshot{GeneratedAt: now, EventCount: len(active), Lines: lines}, nil
}

func printAgenda(snap web.Snapshot) {
	for _, line := range snap.Lines {
		fmt.Println(line)
	}
}

// runWatch re-evaluates the agenda on the config cron schedule until
// SIGINT/SIGTERM. A failing cycle is logged and produces no output; the
// previous snapshot stays published.
func runWatch(conf *config.Config, dirs []string) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		appLog.Info("signal received, shutting down", "signal", sig.String())
		cancel()
	}()

	var srv *web.Server
	var httpSrv *http.Server
	if conf.Listen != "" {
		srv = web.NewServer()
		httpSrv = &http.Server{Addr: conf.Listen, Handler: srv.Handler()}
		go func() {
			appLog.Info("status server listening", "addr", conf.Listen)
			if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				appLog.Error("status server failed", err)
				cancel()
			}
		}()
	}

	cycle := func() {
		snap, err := evaluate(dirs, conf.ExportICS)
		if err != nil {
			appLog.Error("error processing event files", err)
			return
		}
		printAgenda(snap)
		if srv != nil {
			srv.Publish(snap)
		}
	}

	cycle()

	c := cron.New()
	if _, err := c.AddFunc(conf.RefreshCron, cycle); err != nil {
		appLog.Error("invalid refresh schedule", err, "refresh", conf.RefreshCron)
		os.Exit(1)
	}
	c.Start()

	<-ctx.Done()
	c.Stop()
	if httpSrv != nil {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer shutdownCancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			appLog.Error("status server shutdown failed", err)
		}
	}
	appLog.Info("agendacal exiting")
}

func parseFlags() flagConfig {
	var cfg flagConfig

	flag.StringVar(&cfg.configPath, "config", "", "Path to YAML config file (optional)")
	flag.StringVar(&cfg.listen, "listen", "", "HTTP listen address for the status server (watch mode)")
	flag.StringVar(&cfg.exportICS, "export-ics", "", "Write the active agenda to this path as iCalendar")
	flag.BoolVar(&cfg.watch, "watch", false, "Keep running and refresh on the config cron schedule")
	flag.BoolVar(&cfg.verbose, "v", false, "Enable debug logging")

	flag.Parse()

	return cfg
}
