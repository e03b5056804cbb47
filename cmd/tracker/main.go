package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"PortfolioTracker/internal/collector"
	"PortfolioTracker/internal/config"
	"PortfolioTracker/internal/portfolio"
	"PortfolioTracker/internal/recorder"
	"PortfolioTracker/internal/scheduler"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] PortfolioTracker starting...")

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	// Init collector
	fetcher := collector.NewYahooFetcher(cfg.DataSource.Proxy)
	log.Printf("[INFO] data source: %s", fetcher.Name())
	col := collector.NewCollector(fetcher)

	// Init recorder
	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	// Init scheduler for periodic price refresh
	sched := scheduler.NewScheduler(col)
	if err := sched.Register(cfg.Schedule.RefreshCron); err != nil {
		log.Fatalf("[FATAL] register refresh task: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	// The portfolio lives for the process lifetime and is passed explicitly;
	// there is no ambient state.
	app := &App{
		Portfolio: portfolio.New(),
		Collector: col,
		Recorder:  rec,
		Config:    cfg,
		In:        bufio.NewReader(os.Stdin),
	}

	// Ctrl+C exits the prompt loop cleanly.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Println("\nGoodbye!")
		os.Exit(0)
	}()

	fmt.Println("PortfolioTracker")
	fmt.Println("Commands: ADD, DELETE, SHOW, SIMULATE, REFRESH, QUIT. Ctrl+C quits at any point.")

	for {
		line, err := app.prompt("\nProvide a command (ADD/DELETE/SHOW/SIMULATE/REFRESH/QUIT): ")
		if err != nil {
			break
		}
		command := strings.ToUpper(strings.TrimSpace(line))
		if command == "" {
			continue
		}
		if command == "QUIT" || command == "EXIT" {
			fmt.Println("Goodbye!")
			break
		}
		if err := app.handleCommand(command); err != nil {
			fmt.Printf("Error: %v\n", err)
		}
	}

	log.Println("[INFO] PortfolioTracker stopped")
}
