package researcher

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/NiteeshPutla/investment-analysis-deep-agent/apimodels"
	"github.com/NiteeshPutla/investment-analysis-deep-agent/internal/config"
	"github.com/NiteeshPutla/investment-analysis-deep-agent/internal/llm"
	"github.com/NiteeshPutla/investment-analysis-deep-agent/internal/report"
	"github.com/NiteeshPutla/investment-analysis-deep-agent/internal/search"
	"github.com/NiteeshPutla/investment-analysis-deep-agent/internal/tools"
)

const DefaultMaxSteps = 8

var (
	errSearchUnreachable = errors.New("search unreachable after retry")
	maxSearchRetries     = 2
)

// findings fed back into the prompt are capped so one verbose search result
// cannot crowd out the rest of the context
const maxToolPayload = 5000

type AgentState struct {
	Steps         int
	GatheredData  []StepData
	CurrentQuery  string
	OriginalQuery string
}

type StepData struct {
	StepNumber   int
	FunctionName string
	Arguments    json.RawMessage
	Data         string
	Findings     string
}

type AgentAction struct {
	Action    string          `json:"action"` // "function_call" or "final_response"
	Function  string          `json:"function,omitempty"`
	Arguments json.RawMessage `json:"arguments,omitempty"`
	Message   string          `json:"message,omitempty"`
}

type Researcher struct {
	searchProvider search.Provider
	llmProvider    llm.Provider
	cfg            config.ResearchConfig
}

func New(searchProvider search.Provider, llmProvider llm.Provider, cfg config.ResearchConfig) *Researcher {
	if cfg.MaxSteps <= 0 {
		cfg.MaxSteps = DefaultMaxSteps
	}
	return &Researcher{
		searchProvider: searchProvider,
		llmProvider:    llmProvider,
		cfg:            cfg,
	}
}

// Research runs the agent loop for one request and returns the finished
// report. The request text is embedded verbatim into the report instructions
// before the first model call.
func (r *Researcher) Research(ctx context.Context, req apimodels.ResearchRequest) (*apimodels.ResearchResponse, error) {
	slog.Info("starting research", "query", req.Query)
	startTime := time.Now()

	maxSteps := r.cfg.MaxSteps
	if req.Options.MaxSteps > 0 {
		maxSteps = req.Options.MaxSteps
	}

	state := &AgentState{
		Steps:         0,
		OriginalQuery: req.Query,
		CurrentQuery:  report.Format(req.Query),
		GatheredData:  make([]StepData, 0),
	}

	for state.Steps < maxSteps {
		action, llmUsage, err := r.getNextAgentAction(ctx, req, state, maxSteps)
		if err != nil {
			return nil, err
		}

		switch action.Action {
		case "function_call":
			err := r.handleFunctionCall(ctx, state, action)
			if err != nil {
				if errors.Is(err, errSearchUnreachable) {
					state.GatheredData = append(state.GatheredData, StepData{
						StepNumber:   state.Steps + 1,
						FunctionName: action.Function,
						Arguments:    action.Arguments,
						Data:         "Failed to reach the search service after multiple attempts.",
						Findings:     "Search service unreachable after multiple attempts.",
					})
					state.Steps++
					return r.generateSearchFailureExplanation(ctx, req, startTime, state)
				}
				return nil, err
			}
		case "final_response":
			return r.handleFinalResponse(startTime, req, state, llmUsage, action.Message)
		default:
			slog.Error("unknown agent action", "action", action.Action)
			return nil, fmt.Errorf("unknown agent action: %s", action.Action)
		}
	}

	// If we've reached max steps, force a best-effort report
	return r.generateFinalReport(ctx, req, startTime, state, maxSteps)
}

// getNextAgentAction calls the LLM to get the agent's next action.
func (r *Researcher) getNextAgentAction(ctx context.Context, req apimodels.ResearchRequest, state *AgentState, maxSteps int) (AgentAction, llm.Usage, error) {
	findings := summarizeFindings(state.GatheredData)

	// build a reminder of previously used function calls to discourage repetition
	historyReminder := r.buildHistoryReminder(state)

	systemContent := fmt.Sprintf(
		"%s\n\nCurrent step: %d/%d\nPrevious findings:\n%s\n\n%s",
		SystemPrompt, state.Steps+1, maxSteps, findings, historyReminder,
	)
	userContent := state.CurrentQuery

	llmResp, err := r.llmProvider.Analyze(
		ctx,
		[]string{systemContent},
		[]string{userContent},
		llm.Option(func(o *llm.Options) {
			o.Tools = tools.Specs
			o.Temperature = r.cfg.Temperature
			if req.Options.Model != "" {
				o.Model = req.Options.Model
			}
			if req.Options.MaxTokens != 0 {
				o.MaxTokens = req.Options.MaxTokens
			}
			if req.Options.Temperature != 0 {
				o.Temperature = req.Options.Temperature
			}
		}),
	)
	if err != nil {
		slog.Error("LLM call failed", "error", err)
		return AgentAction{}, llm.Usage{}, fmt.Errorf("LLM call failed: %w", err)
	}

	var action AgentAction
	if llmResp.FunctionCall != nil {
		action = AgentAction{
			Action:    "function_call",
			Function:  llmResp.FunctionCall.Name,
			Arguments: []byte(llmResp.FunctionCall.Arguments),
		}
		slog.Debug("LLM requested function call", "function", action.Function, "arguments", string(action.Arguments))
	} else {
		action.Action = "final_response"
		action.Message = llmResp.Content
		slog.Debug("LLM provided final report")
	}

	return action, llmResp.Usage, nil
}

func (r *Researcher) buildHistoryReminder(state *AgentState) string {
	if len(state.GatheredData) == 0 {
		return "No previous function calls have been made."
	}

	reminder := "Previously called functions (do not repeat these exact calls):\n"
	seen := make(map[string]bool)
	for _, sd := range state.GatheredData {
		key := sd.FunctionName + string(sd.Arguments)
		if !seen[key] {
			reminder += fmt.Sprintf("- Function: %s Arguments: %s\n", sd.FunctionName, string(sd.Arguments))
			seen[key] = true
		}
	}
	return reminder
}

func (r *Researcher) handleFunctionCall(ctx context.Context, state *AgentState, action AgentAction) error {
	slog.Info("executing function call", "function", action.Function)

	// check if this exact call was previously made
	for _, sd := range state.GatheredData {
		if sd.FunctionName == action.Function && jsonEqual(sd.Arguments, action.Arguments) {
			findings := fmt.Sprintf("Step %d: %s called again with same arguments, reusing results from step %d",
				state.Steps+1, action.Function, sd.StepNumber)

			state.GatheredData = append(state.GatheredData, StepData{
				StepNumber:   state.Steps + 1,
				FunctionName: action.Function,
				Arguments:    action.Arguments,
				Data:         sd.Data,
				Findings:     findings,
			})
			state.Steps++
			return nil
		}
	}

	stepData, err := r.executeFunction(ctx, action.Function, action.Arguments)
	if err != nil {
		if errors.Is(err, errSearchUnreachable) {
			return err
		}
		slog.Error("function execution failed", "error", err)
		return fmt.Errorf("function execution failed: %w", err)
	}

	state.GatheredData = append(state.GatheredData, StepData{
		StepNumber:   state.Steps + 1,
		FunctionName: action.Function,
		Arguments:    action.Arguments,
		Data:         stepData,
		Findings:     fmt.Sprintf("Step %d: %s returned %s", state.Steps+1, action.Function, stepData),
	})
	state.Steps++
	return nil
}

func (r *Researcher) handleFinalResponse(startTime time.Time, req apimodels.ResearchRequest, state *AgentState, usage llm.Usage, message string) (*apimodels.ResearchResponse, error) {
	slog.Info("returning final report", "steps", state.Steps)
	return &apimodels.ResearchResponse{
		Report: message,
		SupportingData: &apimodels.SupportingData{
			Queries:    getSearchQueries(state.GatheredData),
			SearchData: state.GatheredData,
		},
		Metadata: apimodels.ResearchMetadata{
			Duration:   time.Since(startTime).String(),
			Model:      req.Options.Model,
			TokensUsed: usage.TotalTokens,
			Steps:      state.Steps,
		},
	}, nil
}

func (r *Researcher) generateFinalReport(ctx context.Context, req apimodels.ResearchRequest, startTime time.Time, state *AgentState, maxSteps int) (*apimodels.ResearchResponse, error) {
	systemContent := fmt.Sprintf(maxStepsPromptFmt, maxSteps, state.OriginalQuery, summarizeFindings(state.GatheredData))

	userContent := ""

	finalResp, err := r.llmProvider.Analyze(
		ctx,
		[]string{systemContent},
		[]string{userContent},
		llm.Option(func(o *llm.Options) {
			if req.Options.Model != "" {
				o.Model = req.Options.Model
			}
			if req.Options.MaxTokens != 0 {
				o.MaxTokens = req.Options.MaxTokens
			}
		}),
	)
	if err != nil {
		slog.Error("failed to generate final report", "error", err)
		return nil, fmt.Errorf("failed to generate final report: %w", err)
	}

	return &apimodels.ResearchResponse{
		Report: finalResp.Content,
		SupportingData: &apimodels.SupportingData{
			Queries:    getSearchQueries(state.GatheredData),
			SearchData: state.GatheredData,
		},
		Metadata: apimodels.ResearchMetadata{
			Duration:   time.Since(startTime).String(),
			Model:      req.Options.Model,
			TokensUsed: finalResp.Usage.TotalTokens,
			Steps:      state.Steps,
		},
	}, nil
}

func (r *Researcher) generateSearchFailureExplanation(ctx context.Context, req apimodels.ResearchRequest, startTime time.Time, state *AgentState) (*apimodels.ResearchResponse, error) {
	slog.Info("generating search failure explanation")

	systemContent := fmt.Sprintf(searchFailurePromptFmt, state.OriginalQuery, summarizeFindings(state.GatheredData))

	userContent := ""

	finalResp, err := r.llmProvider.Analyze(
		ctx,
		[]string{systemContent},
		[]string{userContent},
		llm.Option(func(o *llm.Options) {
			if req.Options.Model != "" {
				o.Model = req.Options.Model
			}
			o.Tools = nil
		}),
	)
	if err != nil {
		slog.Error("failed to generate search failure explanation", "error", err)
		return nil, fmt.Errorf("failed to generate search failure explanation: %w", err)
	}

	return &apimodels.ResearchResponse{
		Report: finalResp.Content,
		SupportingData: &apimodels.SupportingData{
			Queries:    getSearchQueries(state.GatheredData),
			SearchData: state.GatheredData,
		},
		Metadata: apimodels.ResearchMetadata{
			Duration:   time.Since(startTime).String(),
			Model:      req.Options.Model,
			TokensUsed: finalResp.Usage.TotalTokens,
			Steps:      state.Steps,
		},
	}, nil
}

// executeFunction dispatches a tool call requested by the model. Only
// internet_search exists today.
func (r *Researcher) executeFunction(ctx context.Context, functionName string, arguments json.RawMessage) (string, error) {
	if functionName != tools.InternetSearch {
		return "", fmt.Errorf("unknown function: %s", functionName)
	}

	var q search.Query
	if err := json.Unmarshal(arguments, &q); err != nil {
		return "", fmt.Errorf("invalid %s arguments: %w", functionName, err)
	}
	if q.MaxResults <= 0 || q.MaxResults > r.cfg.MaxResults {
		q.MaxResults = r.cfg.MaxResults
	}
	if q.Topic == "" {
		q.Topic = r.cfg.Topic
	}

	results, err := r.searchWithRetry(ctx, q, maxSearchRetries)
	if err != nil {
		return "", err
	}

	jsonBytes, err := json.Marshal(results)
	if err != nil {
		slog.Error("failed to marshal search results", "error", err)
		return "error: failed to parse tool output", nil
	}

	return truncateString(string(jsonBytes), maxToolPayload), nil
}

func (r *Researcher) searchWithRetry(ctx context.Context, q search.Query, maxAttempts int) ([]search.Result, error) {
	var lastErr error
	for i := 0; i < maxAttempts; i++ {
		slog.Info("running web search", "query", q.Query, "topic", q.Topic, "attempt", i+1)
		results, err := r.searchProvider.Search(ctx, q)
		if err == nil {
			return results, nil
		}
		lastErr = err
		slog.Warn("web search failed", "attempt", i+1, "query", q.Query, "error", err)
	}
	return nil, fmt.Errorf("%w: %v", errSearchUnreachable, lastErr)
}

func summarizeFindings(data []StepData) string {
	if len(data) == 0 {
		return "No previous findings."
	}
	summary := ""
	for _, step := range data {
		summary += fmt.Sprintf("Step %d:\n  Function: %s\n  Arguments: %s\n  Data: %s\n\n",
			step.StepNumber, step.FunctionName, string(step.Arguments), step.Data)
	}
	return summary
}

func getSearchQueries(data []StepData) []string {
	queries := make([]string, 0, len(data))
	for _, step := range data {
		var q search.Query
		if err := json.Unmarshal(step.Arguments, &q); err == nil && q.Query != "" {
			queries = append(queries, q.Query)
		}
	}
	return queries
}

func truncateString(s string, maxLen int) string {
	if len(s) > maxLen {
		return s[:maxLen] + "\n[truncated]"
	}
	return s
}

func jsonEqual(a, b json.RawMessage) bool {
	var ja, jb interface{}
	_ = json.Unmarshal(a, &ja)
	_ = json.Unmarshal(b, &jb)
	return fmt.Sprintf("%v", ja) == fmt.Sprintf("%v", jb)
}
