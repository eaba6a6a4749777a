package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"

	"github.com/justsurfingit/job-carousel/internal/dtos"
)

var ErrExtractorDisabled = errors.New("posting extraction is not configured")

const maxPostingChars = 20000

// DraftExtractor turns a pasted job posting into a prefilled form.
type DraftExtractor interface {
	ExtractDraft(ctx context.Context, rawHTML string) (dtos.ApplicationForm, error)
}

type LLMService struct {
	Client llms.Model
}

// NewLLMService connects to Gemini. An empty key yields a nil service and no error,
// which callers treat as "extraction disabled".
func NewLLMService(ctx context.Context, apiKey, model string) (*LLMService, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, nil
	}
	llm, err := googleai.New(ctx,
		googleai.WithAPIKey(apiKey),
		googleai.WithDefaultModel(model),
	)
	if err != nil {
		return nil, fmt.Errorf("create Gemini client: %w", err)
	}
	return &LLMService{Client: llm}, nil
}

const postingExtractionPrompt = `
You are an expert Job Data Extraction Agent. Your task is to analyze the provided raw HTML/Text from a job posting and extract the fields needed to log a job application.

### INSTRUCTIONS:
1. **Analyze** the text to identify the core job details.
2. **Ignore** navigation menus, footers, "similar jobs" lists, and site advertisements.
3. **Format** the output as valid JSON only. Do not wrap the output in markdown code blocks.

### OUTPUT SCHEMA:
{
    "company_name": "Name of the company (e.g., Google, StartupInc)",
    "role_title": "Job title (e.g., Senior Backend Engineer)",
    "location": "Job location or 'Remote'",
    "salary_range": "The salary string if explicitly mentioned (e.g., '$100k - $150k'), otherwise null",
    "summary": "Two sentences on what the role is about."
}

### CONSTRAINT:
If a piece of information is missing, set the value to null. Do not hallucinate or guess.

### RAW CONTENT:
%s
`

// ExtractDraft asks the model for the posting's fields and maps them onto the form.
func (s *LLMService) ExtractDraft(ctx context.Context, rawHTML string) (dtos.ApplicationForm, error) {
	if s == nil || s.Client == nil {
		return dtos.ApplicationForm{}, ErrExtractorDisabled
	}
	rawHTML = truncateChars(rawHTML, maxPostingChars)

	prompt := fmt.Sprintf(postingExtractionPrompt, rawHTML)
	resp, err := llms.GenerateFromSinglePrompt(ctx, s.Client, prompt)
	if err != nil {
		return dtos.ApplicationForm{}, fmt.Errorf("generate extraction: %w", err)
	}
	return ParseDraft(resp)
}

// truncateChars keeps the first n characters, never splitting a multi-byte rune.
func truncateChars(s string, n int) string {
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}

// ParseDraft reads the model's JSON answer. Markdown fences around it are tolerated.
func ParseDraft(answer string) (dtos.ApplicationForm, error) {
	answer = strings.TrimSpace(answer)
	answer = strings.TrimPrefix(answer, "```json")
	answer = strings.TrimPrefix(answer, "```")
	answer = strings.TrimSuffix(answer, "```")
	answer = strings.TrimSpace(answer)

	if !gjson.Valid(answer) {
		return dtos.ApplicationForm{}, fmt.Errorf("extraction answer is not JSON: %.80q", answer)
	}
	r := gjson.Parse(answer)
	if !r.IsObject() {
		return dtos.ApplicationForm{}, errors.New("extraction answer is not a JSON object")
	}

	return dtos.ApplicationForm{
		CompanyName: r.Get("company_name").String(),
		Role:        r.Get("role_title").String(),
		Location:    r.Get("location").String(),
		SalaryRange: r.Get("salary_range").String(),
		Notes:       r.Get("summary").String(),
	}, nil
}
