package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/flywithpoints/flywithpoints/internal/catalog"
	"github.com/flywithpoints/flywithpoints/internal/config"
	"github.com/flywithpoints/flywithpoints/internal/database"
	"github.com/flywithpoints/flywithpoints/internal/database/repository"
	"github.com/flywithpoints/flywithpoints/internal/flights"
	"github.com/flywithpoints/flywithpoints/internal/llm"
	"github.com/flywithpoints/flywithpoints/internal/secrets"
	"github.com/flywithpoints/flywithpoints/internal/service"
	"github.com/flywithpoints/flywithpoints/internal/testdata"
	"github.com/flywithpoints/flywithpoints/internal/tui"
)

func main() {
	seedDemo := flag.Bool("seed-demo", false, "load a demo points portfolio and exit")
	flag.Parse()

	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
		log.Fatalf("mkdir db dir: %v", err)
	}

	if err := database.RunMigrations(cfg.Database.Path, "internal/database/migrations"); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer db.Close()

	balanceRepo := repository.NewBalanceRepo(db)
	cat := catalog.Default()
	portfolio := &service.PortfolioService{Balances: balanceRepo, Catalog: cat}

	if *seedDemo {
		if err := testdata.Seed(ctx, portfolio); err != nil {
			log.Fatalf("seed demo: %v", err)
		}
		fmt.Println("demo portfolio loaded")
		return
	}

	apiKey := resolveAPIKey(cfg)
	provider := llm.NewGeminiProvider(apiKey, cfg.Advisor.Model)

	advisor := &service.AdvisorService{Provider: provider}

	p := tea.NewProgram(tui.New(ctx, cfg, cat, tui.Services{
		Portfolio: portfolio,
		Advisor:   advisor,
		Flights:   &flights.MockProvider{Catalog: cat},
	}), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("error: %v\n", err)
	}
}

func resolveAPIKey(cfg config.Config) string {
	env := strings.TrimSpace(cfg.Advisor.APIKeyEnv)
	if env == "" {
		env = "GEMINI_API_KEY"
	}
	if v := os.Getenv(env); v != "" {
		return v
	}
	if k, err := secrets.FetchProviderKey(cfg.Advisor.Provider); err == nil {
		return k
	}
	return strings.TrimSpace(cfg.Advisor.APIKey)
}
