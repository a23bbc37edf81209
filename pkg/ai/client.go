// Package ai wraps the Gemini text-generation service behind the four calls
// the editor needs: enhance a description, parse a pasted resume, write a
// summary, and tailor a resume to a job posting. Callers treat failed or
// empty results as "no change"; nothing in this package mutates the record.
package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"resume-builder/internal/model"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gemini-2.5-flash"

// Client talks to Gemini. Constructed once per session and passed down;
// never reached for ambiently.
type Client struct {
	client *genai.Client
	model  string
}

// NewClient creates a Gemini-backed client.
func NewClient(ctx context.Context, apiKey, modelName string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if modelName == "" {
		modelName = DefaultModel
	}
	c, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create Gemini client: %w", err)
	}
	return &Client{client: c, model: modelName}, nil
}

// Close releases the underlying connection.
func (c *Client) Close() error { return c.client.Close() }

// Enhance rewrites free-form description text as an impactful bulleted
// list. Empty input is returned unchanged without a network call.
func (c *Client) Enhance(ctx context.Context, text, roleContext string) (string, error) {
	if text == "" {
		return "", nil
	}
	out, err := c.generateText(ctx, enhancePrompt(text, roleContext))
	if err != nil {
		return "", fmt.Errorf("enhance text: %w", err)
	}
	return out, nil
}

// GenerateSummary writes a three-sentence professional summary from the
// record's experience history.
func (c *Client) GenerateSummary(ctx context.Context, r *model.Resume) (string, error) {
	type roleRef struct {
		Role    string `json:"role"`
		Company string `json:"company"`
	}
	history := make([]roleRef, 0, len(r.Experience))
	for _, e := range r.Experience {
		history = append(history, roleRef{Role: e.Role, Company: e.Company})
	}
	ctxJSON, err := json.Marshal(history)
	if err != nil {
		return "", err
	}
	out, err := c.generateText(ctx, summaryPrompt(string(ctxJSON)))
	if err != nil {
		return "", fmt.Errorf("generate summary: %w", err)
	}
	return out, nil
}

// ParseResume extracts a structured record from pasted free text using
// schema-constrained JSON output. Entry ids are left empty; the caller
// assigns them.
func (c *Client) ParseResume(ctx context.Context, rawText string) (*model.Resume, error) {
	rec, err := c.generateRecord(ctx, parsePrompt(rawText))
	if err != nil {
		return nil, fmt.Errorf("parse resume text: %w", err)
	}
	return rec, nil
}

// GenerateTailored merges the current resume and LinkedIn data, then
// filters and rewrites the result against the target job description.
func (c *Client) GenerateTailored(ctx context.Context, resumeText, linkedinText, jobDescription, location string) (*model.Resume, error) {
	rec, err := c.generateRecord(ctx, tailorPrompt(resumeText, linkedinText, jobDescription, location))
	if err != nil {
		return nil, fmt.Errorf("generate tailored resume: %w", err)
	}
	return rec, nil
}

func (c *Client) generateText(ctx context.Context, prompt string) (string, error) {
	m := c.client.GenerativeModel(c.model)
	resp, err := m.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(responseText(resp)), nil
}

func (c *Client) generateRecord(ctx context.Context, prompt string) (*model.Resume, error) {
	m := c.client.GenerativeModel(c.model)
	m.ResponseMIMEType = "application/json"
	m.ResponseSchema = resumeSchema()
	resp, err := m.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, err
	}
	text := responseText(resp)
	if text == "" {
		text = "{}"
	}
	out := model.NewResume()
	if err := json.Unmarshal([]byte(text), out); err != nil {
		return nil, fmt.Errorf("response is not a resume document: %w", err)
	}
	return out, nil
}

// responseText concatenates the text parts of the first candidate.
func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if t, ok := part.(genai.Text); ok {
			sb.WriteString(string(t))
		}
	}
	return sb.String()
}
