// Package gemini implements an LLM-backed program extractor using
// Google Gemini. It is an optional alternative to the heuristic
// pipeline; callers fall back to the pipeline on any error.
package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/progscout/progscout"
	"google.golang.org/genai"
)

const model = "gemini-2.5-flash"

// maxPromptHTML bounds how much page HTML goes into the prompt.
const maxPromptHTML = 200_000

// maxRecords caps the extractor's output, matching the pipeline.
const maxRecords = 30

// Ensure Extractor implements progscout.Extractor at compile time.
var _ progscout.Extractor = (*Extractor)(nil)

// Extractor implements progscout.Extractor using Google Gemini.
type Extractor struct {
	client *genai.Client
}

// NewExtractor creates a new Extractor.
func NewExtractor(client *genai.Client) *Extractor {
	return &Extractor{client: client}
}

// NewClient creates a genai client for the Gemini API.
func NewClient(ctx context.Context, apiKey string) (*genai.Client, error) {
	return genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
}

// ExtractPrograms asks the model for a JSON array of program records
// found in html. A response that is not valid JSON is an error, not a
// partial result.
func (e *Extractor) ExtractPrograms(ctx context.Context, html, pageURL string) ([]*progscout.Program, error) {
	if strings.TrimSpace(html) == "" {
		return nil, nil
	}

	prompt := BuildUserPrompt(html, pageURL)
	config := BuildConfig()

	result, err := e.client.Models.GenerateContent(ctx, model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		config,
	)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, progscout.Errorf(progscout.EINTERNAL, "gemini returned nil result")
	}

	return DecodeRecords([]byte(result.Text()), pageURL)
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
// The response is constrained to JSON.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.1)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You extract educational program listings (courses, seminars, workshops, video series) from web page HTML. Respond with a JSON array of objects with keys: title, description, url, price, currency, start_date, end_date, mode, venue, city, country, type. Use null for unknown values, ISO dates, and ISO currency codes. Respond with [] when the page lists no programs.",
			}},
		},
		Temperature:      &temp,
		ResponseMIMEType: "application/json",
	}
}

// BuildUserPrompt builds the user prompt containing the page URL and HTML.
func BuildUserPrompt(html, pageURL string) string {
	if len(html) > maxPromptHTML {
		html = html[:maxPromptHTML]
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "<page url=%q>\n", pageURL)
	sb.WriteString(html)
	sb.WriteString("\n</page>\n\n")
	sb.WriteString("Extract the educational programs listed on this page.")
	return sb.String()
}

// llmRecord mirrors the JSON shape the model is asked for.
type llmRecord struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	URL         string   `json:"url"`
	Price       *float64 `json:"price"`
	Currency    string   `json:"currency"`
	StartDate   string   `json:"start_date"`
	EndDate     string   `json:"end_date"`
	Mode        string   `json:"mode"`
	Venue       string   `json:"venue"`
	City        string   `json:"city"`
	Country     string   `json:"country"`
	Type        string   `json:"type"`
}

// DecodeRecords parses the model's JSON response into normalized
// records. Parsing is strict: malformed JSON fails the whole call so
// the caller falls back to the heuristic pipeline.
func DecodeRecords(data []byte, pageURL string) ([]*progscout.Program, error) {
	var raw []llmRecord
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, progscout.Errorf(progscout.EINTERNAL, "decoding model response: %v", err)
	}

	var out []*progscout.Program
	for _, r := range raw {
		rec := &progscout.Program{
			Title:       progscout.CleanText(r.Title),
			Description: progscout.CleanText(r.Description),
			URL:         strings.TrimSpace(r.URL),
			Price:       r.Price,
			Currency:    progscout.NormalizeCurrency(r.Currency),
			StartDate:   strings.TrimSpace(r.StartDate),
			EndDate:     strings.TrimSpace(r.EndDate),
			Mode:        progscout.NormalizeMode(r.Mode),
			Venue:       progscout.CleanText(r.Venue),
			City:        progscout.CleanText(r.City),
			Country:     progscout.CleanText(r.Country),
			Type:        progscout.Type(strings.TrimSpace(r.Type)),
		}
		if rec.Title == "" && rec.Description == "" {
			continue
		}
		if rec.Title == "" {
			rec.Title = progscout.PlaceholderTitle
		}
		if rec.URL == "" {
			rec.URL = pageURL
		}
		switch rec.Type {
		case progscout.TypeCourse, progscout.TypeSeminar, progscout.TypeVideo, progscout.TypeOther:
		default:
			rec.Type = progscout.ClassifyType(rec.Title + " " + rec.Description)
		}

		out = append(out, rec)
		if len(out) >= maxRecords {
			break
		}
	}
	return out, nil
}
