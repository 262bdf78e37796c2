package main

import (
	"context"
	"flag"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/NiteeshPutla/investment-analysis-deep-agent/apimodels"
	"github.com/NiteeshPutla/investment-analysis-deep-agent/internal/config"
	"github.com/NiteeshPutla/investment-analysis-deep-agent/internal/llm"
	"github.com/NiteeshPutla/investment-analysis-deep-agent/internal/report"
	"github.com/NiteeshPutla/investment-analysis-deep-agent/internal/researcher"
	"github.com/NiteeshPutla/investment-analysis-deep-agent/internal/search"
)

func main() {
	var (
		outputPath = flag.String("o", "", "output file path (overrides RESEARCH_OUTPUT_FILE)")
		configPath = flag.String("config", "", "optional config file with run parameters")
	)
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}
	if *configPath != "" {
		if err := cfg.ApplyFile(*configPath); err != nil {
			log.Fatalf("failed to apply config file: %v", err)
		}
	}
	if *outputPath != "" {
		cfg.Research.OutputFile = *outputPath
	}

	query := readQuery()
	if query == "" {
		log.Fatalf("no research request given: pass it as an argument or on stdin")
	}

	searchProvider := search.NewTavily(&cfg.Tavily)

	llmProvider, err := llm.NewOpenAI(&cfg.OpenAI)
	if err != nil {
		log.Fatalf("failed to create LLM provider: %v", err)
	}

	rsr := researcher.New(searchProvider, llmProvider, cfg.Research)

	result, err := rsr.Research(context.Background(), apimodels.ResearchRequest{Query: query})
	if err != nil {
		log.Fatalf("research failed: %v", err)
	}

	writer := report.NewWriter(cfg.Research.OutputFile)
	if err := writer.Write(result.Report); err != nil {
		log.Fatalf("failed to write report: %v", err)
	}

	slog.Info("research complete",
		"path", cfg.Research.OutputFile,
		"steps", result.Metadata.Steps,
		"tokensUsed", result.Metadata.TokensUsed,
		"duration", result.Metadata.Duration,
	)
}

// readQuery takes the research request from the command line, or from stdin
// when no arguments are given.
func readQuery() string {
	if args := flag.Args(); len(args) > 0 {
		return strings.TrimSpace(strings.Join(args, " "))
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}
