// Package assistant is the boundary to the generative-language service that
// powers automation suggestions and the help-center chat. The boundary never
// fails upward: every path resolves to displayable content, falling back to
// canned text when the service is unreachable, misbehaves, or no API key is
// configured.
package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	defaultModel   = "gemini-2.5-flash"

	// suggestionCount is how many automation ideas the wizard's final step
	// renders. The display assumes exactly this many.
	suggestionCount = 3

	chatPersona = "You are HomeNet, a helpful, friendly, and concise smart home assistant. " +
		"You help users manage their home devices, suggest automations, and troubleshoot issues."
)

// Canned content for the degrade-gracefully paths. The unconfigured and error
// triples are distinct so a missing key is distinguishable from an outage
// when eyeballing the UI.
var (
	unconfiguredSuggestions = []string{
		"Good Morning: Turn on lights and coffee maker at 7 AM",
		"Security Guard: Lock doors and turn on cameras when you leave",
		"Night Mode: Dim lights and lower thermostat at 10 PM",
	}

	errorSuggestions = []string{
		"Wake Up: Slowly brighten lights at 7 AM",
		"Eco Mode: Turn off thermostat when window opens",
		"Welcome Home: Turn on hallway lights when door unlocks",
	}

	chatUnconfiguredReply = "I'm sorry, I can't connect to the server right now. (Missing API Key)"
	chatErrorReply        = "Sorry, I'm having trouble thinking right now."
)

// Client talks to the generativelanguage REST API. A zero API key puts the
// client in unconfigured mode, where every call returns fallback content
// without touching the network.
type Client struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a Client for the production endpoint.
func NewClient(apiKey, model string) *Client {
	return NewClientWithURL(apiKey, model, defaultBaseURL)
}

// NewClientWithURL creates a Client against a custom endpoint. Tests point
// this at a local server.
func NewClientWithURL(apiKey, model, baseURL string) *Client {
	if model == "" {
		model = defaultModel
	}
	return &Client{
		apiKey:  apiKey,
		model:   model,
		baseURL: baseURL,
		// The upstream call has no streaming and no retry; the timeout is the
		// only bound on a hung connection.
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// Configured reports whether an API key is set.
func (c *Client) Configured() bool {
	return c.apiKey != ""
}

// --- wire types (generativelanguage v1beta generateContent) ---

type content struct {
	Parts []part `json:"parts"`
	Role  string `json:"role,omitempty"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	ResponseMIMEType string          `json:"responseMimeType,omitempty"`
	ResponseSchema   json.RawMessage `json:"responseSchema,omitempty"`
}

type generateRequest struct {
	Contents         []content         `json:"contents"`
	SystemInstruct   *content          `json:"systemInstruction,omitempty"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Message string `json:"message"`
		Code    int    `json:"code"`
	} `json:"error,omitempty"`
}

// stringArraySchema constrains the suggestion response to a JSON string array.
var stringArraySchema = json.RawMessage(`{"type":"ARRAY","items":{"type":"STRING"}}`)

// SuggestAutomations asks for exactly three automation ideas for the given
// device names, each formatted "Title: Description". It always returns three
// strings: the unconfigured triple without an API key, the error triple when
// the call fails or the response does not parse into three strings.
func (c *Client) SuggestAutomations(ctx context.Context, deviceNames []string) []string {
	if !c.Configured() {
		return unconfiguredSuggestions
	}

	prompt := fmt.Sprintf("I have the following smart home devices: %s. "+
		"Suggest exactly 3 distinct, creative, and practical home automation ideas. "+
		"Return them as a JSON array of strings. Each string MUST be a concise title "+
		"and description, following the format 'Title: Description'.",
		strings.Join(deviceNames, ", "))

	text, err := c.generate(ctx, generateRequest{
		Contents: []content{{Role: "user", Parts: []part{{Text: prompt}}}},
		GenerationConfig: &generationConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema:   stringArraySchema,
		},
	})
	if err != nil {
		log.Warn().Err(err).Msg("suggestion request failed, serving fallback")
		return errorSuggestions
	}

	var suggestions []string
	if err := json.Unmarshal([]byte(text), &suggestions); err != nil {
		log.Warn().Err(err).Msg("suggestion response did not parse, serving fallback")
		return errorSuggestions
	}
	if len(suggestions) < suggestionCount {
		log.Warn().Int("got", len(suggestions)).Msg("too few suggestions, serving fallback")
		return errorSuggestions
	}
	return suggestions[:suggestionCount]
}

// Chat sends a single-turn message under the HomeNet persona and returns the
// reply, or a fixed apology when unconfigured or on failure.
func (c *Client) Chat(ctx context.Context, message string) string {
	if !c.Configured() {
		return chatUnconfiguredReply
	}

	text, err := c.generate(ctx, generateRequest{
		SystemInstruct: &content{Parts: []part{{Text: chatPersona}}},
		Contents:       []content{{Role: "user", Parts: []part{{Text: message}}}},
	})
	if err != nil {
		log.Warn().Err(err).Msg("chat request failed, serving fallback")
		return chatErrorReply
	}
	if text == "" {
		return "I didn't catch that."
	}
	return text
}

// generate performs one generateContent call and returns the first
// candidate's text with any markdown code fences stripped.
func (c *Client) generate(ctx context.Context, reqBody generateRequest) (string, error) {
	body, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("sending request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("generativelanguage API error %d: %s", resp.StatusCode, string(respBody))
	}

	var result generateResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", fmt.Errorf("decoding response: %w", err)
	}
	if result.Error != nil {
		return "", fmt.Errorf("generativelanguage error: %s", result.Error.Message)
	}
	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("empty response")
	}

	text := strings.TrimSpace(result.Candidates[0].Content.Parts[0].Text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	return strings.TrimSpace(text), nil
}
