package tools

import (
	"github.com/openai/openai-go"
)

// InternetSearch is the name the model uses to request a web search.
const InternetSearch = "internet_search"

// Specs lists the functions that can be called by the LLM during research
var Specs = []openai.ChatCompletionToolParam{
	{
		Type: openai.F(openai.ChatCompletionToolTypeFunction),
		Function: openai.F(openai.FunctionDefinitionParam{
			Name:        openai.String(InternetSearch),
			Description: openai.String("Run a web search tuned for investment research. Use focused queries that cover one dimension at a time (profile, financials, news, sentiment, or competitors)."),
			Parameters: openai.F(openai.FunctionParameters{
				"type": "object",
				"properties": map[string]interface{}{
					"query": map[string]string{
						"type":        "string",
						"description": "The search query",
					},
					"max_results": map[string]interface{}{
						"type":        "integer",
						"description": "Maximum number of results to return",
					},
					"topic": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"general", "news", "finance"},
						"description": "Search topic category",
					},
					"include_raw_content": map[string]interface{}{
						"type":        "boolean",
						"description": "Include full page content in results",
					},
				},
				"required": []string{"query"},
			}),
		}),
	},
}
