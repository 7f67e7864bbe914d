package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/solardome/mpg-dashboard/internal/config"
	"github.com/solardome/mpg-dashboard/internal/dataset"
	"github.com/solardome/mpg-dashboard/internal/report"
	"github.com/solardome/mpg-dashboard/internal/server"
	"github.com/solardome/mpg-dashboard/internal/styling"
)

func main() {
	var addr string
	var configPath string
	var datasetPath string
	var runLogPath string
	var snapshotPath string

	flag.StringVar(&addr, "addr", "", "Listen address (overrides config listen_addr)")
	flag.StringVar(&configPath, "config", "", "Path to config YAML")
	flag.StringVar(&datasetPath, "dataset", "", "Path to dataset CSV (default: embedded dataset)")
	flag.StringVar(&runLogPath, "run-log", "", "Output run log path (default next to snapshot, or mpg-dashboard.run.log)")
	flag.StringVar(&snapshotPath, "snapshot", "", "Write a dataset snapshot JSON to this path and exit")
	flag.Parse()

	if err := run(addr, configPath, datasetPath, runLogPath, snapshotPath); err != nil {
		fmt.Fprintln(os.Stderr, "mpg-dashboard error:", err)
		os.Exit(2)
	}
}

func run(addr, configPath, datasetPath, runLogPath, snapshotPath string) error {
	cfg := config.Default()
	if strings.TrimSpace(configPath) != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if strings.TrimSpace(addr) != "" {
		cfg.ListenAddr = addr
	}

	store, err := loadDataset(datasetPath)
	if err != nil {
		return err
	}

	if strings.TrimSpace(runLogPath) == "" {
		runLogPath = report.DefaultRunLogPath(snapshotPath)
	}
	log, err := report.NewAuditLogger(runLogPath)
	if err != nil {
		return err
	}
	defer log.Close()

	log.Info("startup", map[string]interface{}{
		"dataset_source": store.Source,
		"dataset_sha256": store.SHA256,
		"record_count":   len(store.Records),
	})

	if strings.TrimSpace(snapshotPath) != "" {
		return writeSnapshot(snapshotPath, store, log)
	}
	return serve(cfg, store, log)
}

func loadDataset(path string) (*dataset.Store, error) {
	if strings.TrimSpace(path) == "" {
		return dataset.LoadDefault()
	}
	return dataset.LoadFile(path)
}

func writeSnapshot(path string, store *dataset.Store, log *report.AuditLogger) error {
	snap := report.BuildSnapshot(store, time.Now())
	if err := report.WriteSnapshot(path, snap); err != nil {
		return err
	}
	log.Info("snapshot.written", map[string]interface{}{
		"path":         path,
		"record_count": snap.RecordCount,
	})
	fmt.Printf("records=%d snapshot=%s checksums=%s\n", snap.RecordCount, path, report.DefaultChecksumsPath(path))
	return nil
}

func serve(cfg config.Config, store *dataset.Store, log *report.AuditLogger) error {
	styles := &styling.StyleStore{}
	client := styling.NewClient(styling.ClientConfig{
		BaseURL:   cfg.Styling.BaseURL,
		Model:     cfg.Styling.Model,
		MaxTokens: cfg.Styling.MaxTokens,
		Timeout:   cfg.Styling.Timeout(),
	})
	manager := styling.NewManager(client, nil, styles, log)
	srv := server.New(store, cfg, manager, styles, log)

	httpSrv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- httpSrv.ListenAndServe()
	}()

	log.Info("listening", map[string]interface{}{
		"addr":   cfg.ListenAddr,
		"run_id": srv.RunID(),
	})
	fmt.Printf("run_id=%s addr=%s records=%d dataset=%s\n", srv.RunID(), cfg.ListenAddr, len(store.Records), store.Source)

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Info("shutdown", map[string]interface{}{"run_id": srv.RunID()})
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return httpSrv.Shutdown(shutdownCtx)
}
