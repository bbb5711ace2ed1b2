package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	_ "github.com/joho/godotenv/autoload"

	"folio/internal/config"
	"folio/internal/contact"
	"folio/internal/content"
	"folio/internal/domain"
	"folio/internal/eventbus"
	"folio/internal/navigation"
	"folio/internal/ui"
)

func main() {
	var (
		configPath string
		logPath    string
		contentDir string
	)
	flag.StringVar(&configPath, "config", "", "Path to config file (default: user config dir)")
	flag.StringVar(&logPath, "log", "folio.log", "Path to log file")
	flag.StringVar(&contentDir, "content", "", "Directory with sections.toml and markdown pages")
	flag.Parse()

	// Set up logging
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	if err := run(configPath, contentDir); err != nil {
		log.Printf("Error: %v", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	log.Printf("UI exited normally")
}

func run(configPath, contentDir string) error {
	// Create context for graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	bus := eventbus.New()
	unsubscribe := subscribeAuditLog(bus)
	defer func() {
		// the audit log stays attached until the queue is flushed
		bus.Close()
		unsubscribe()
	}()

	if configPath == "" {
		configPath = config.DefaultPath()
	}
	configSvc := config.NewConfigService(configPath, bus)
	cfg, err := configSvc.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if contentDir != "" {
		cfg.ContentDir = contentDir
	}

	portfolio, err := content.Load(cfg.ContentDir)
	if err != nil {
		return fmt.Errorf("load content: %w", err)
	}
	log.Printf("Loaded %d sections for %s", len(portfolio.Sections), portfolio.Owner)

	sched := navigation.NewLoopScheduler()
	nav, err := navigation.NewController(portfolio.Sections, navigation.NewRegistry(), sched, cfg.NavigationOptions(0))
	if err != nil {
		return fmt.Errorf("create navigation: %w", err)
	}
	nav.SetPublisher(bus)
	defer nav.Dispose()

	client := contact.NewClient(cfg.Contact.Endpoint, cfg.ContactTimeout())
	client.SetPublisher(bus)

	uiModel := ui.NewModel(cfg, portfolio, nav, client)
	p := tea.NewProgram(uiModel,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)
	sched.Bind(func(msg any) { p.Send(msg) })
	uiModel.SetProgram(p)

	log.Printf("Starting UI...")
	if _, err := p.Run(); err != nil {
		// a signal cancelled ctx: not a failure
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}

// subscribeAuditLog writes every domain event to the log file
func subscribeAuditLog(bus eventbus.EventBus) func() {
	types := []domain.EventType{
		domain.EventSectionChanged,
		domain.EventViewportChanged,
		domain.EventContactSubmitted,
		domain.EventContactFailed,
		domain.EventError,
		domain.EventConfigLoaded,
		domain.EventConfigSaved,
	}
	var unsubs []func()
	for _, t := range types {
		unsubs = append(unsubs, bus.Subscribe(t, func(e eventbus.DomainEvent) {
			log.Printf("event %s: %+v", e.Type(), e)
		}))
	}
	return func() {
		for _, u := range unsubs {
			u()
		}
	}
}
