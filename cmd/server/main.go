package main

import (
	"log"

	"github.com/NiteeshPutla/investment-analysis-deep-agent/internal/config"
	"github.com/NiteeshPutla/investment-analysis-deep-agent/internal/llm"
	"github.com/NiteeshPutla/investment-analysis-deep-agent/internal/researcher"
	"github.com/NiteeshPutla/investment-analysis-deep-agent/internal/search"
	"github.com/NiteeshPutla/investment-analysis-deep-agent/internal/server"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	searchProvider := search.NewTavily(&cfg.Tavily)

	llmProvider, err := llm.NewOpenAI(&cfg.OpenAI)
	if err != nil {
		log.Fatalf("failed to create LLM provider: %v", err)
	}

	rsr := researcher.New(searchProvider, llmProvider, cfg.Research)

	srv := server.New(*cfg, rsr)
	if err := srv.Run(); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
