package assistant

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
)

// generateServer fakes the generateContent endpoint, answering every request
// with the given candidate text.
func generateServer(t *testing.T, candidateText string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		resp := map[string]any{
			"candidates": []map[string]any{
				{"content": map[string]any{"parts": []map[string]any{{"text": candidateText}}}},
			},
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
}

func TestSuggestAutomations_ParsesThreeStrings(t *testing.T) {
	srv := generateServer(t, `["A: one","B: two","C: three","D: extra"]`)
	defer srv.Close()

	c := NewClientWithURL("test-key", "", srv.URL)
	got := c.SuggestAutomations(context.Background(), []string{"Smart Light", "Smart Plug"})

	want := []string{"A: one", "B: two", "C: three"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("suggestions = %v, want %v", got, want)
	}
}

func TestSuggestAutomations_StripsCodeFences(t *testing.T) {
	srv := generateServer(t, "```json\n[\"A: one\",\"B: two\",\"C: three\"]\n```")
	defer srv.Close()

	c := NewClientWithURL("test-key", "", srv.URL)
	got := c.SuggestAutomations(context.Background(), []string{"Cam"})
	if len(got) != 3 || got[0] != "A: one" {
		t.Errorf("suggestions = %v", got)
	}
}

func TestSuggestAutomations_NoKeyReturnsUnconfiguredTriple(t *testing.T) {
	c := NewClient("", "")

	got := c.SuggestAutomations(context.Background(), nil)
	if !reflect.DeepEqual(got, unconfiguredSuggestions) {
		t.Errorf("suggestions = %v, want unconfigured fallback", got)
	}
	if len(got) != 3 {
		t.Errorf("fallback has %d entries, want 3", len(got))
	}
}

func TestSuggestAutomations_ServerErrorReturnsErrorTriple(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"quota exceeded","code":429}}`, http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewClientWithURL("test-key", "", srv.URL)
	got := c.SuggestAutomations(context.Background(), []string{"Lock"})
	if !reflect.DeepEqual(got, errorSuggestions) {
		t.Errorf("suggestions = %v, want error fallback", got)
	}
}

func TestSuggestAutomations_MalformedPayloadReturnsErrorTriple(t *testing.T) {
	srv := generateServer(t, "here are some ideas for you!")
	defer srv.Close()

	c := NewClientWithURL("test-key", "", srv.URL)
	got := c.SuggestAutomations(context.Background(), []string{"Plug"})
	if !reflect.DeepEqual(got, errorSuggestions) {
		t.Errorf("suggestions = %v, want error fallback", got)
	}
}

func TestSuggestAutomations_TooFewReturnsErrorTriple(t *testing.T) {
	srv := generateServer(t, `["Only: one idea"]`)
	defer srv.Close()

	c := NewClientWithURL("test-key", "", srv.URL)
	got := c.SuggestAutomations(context.Background(), []string{"Plug"})
	if !reflect.DeepEqual(got, errorSuggestions) {
		t.Errorf("suggestions = %v, want error fallback", got)
	}
}

func TestChat_ReturnsReply(t *testing.T) {
	srv := generateServer(t, "The living room lights are on.")
	defer srv.Close()

	c := NewClientWithURL("test-key", "", srv.URL)
	got := c.Chat(context.Background(), "are my lights on?")
	if got != "The living room lights are on." {
		t.Errorf("reply = %q", got)
	}
}

func TestChat_NoKeyReturnsApology(t *testing.T) {
	c := NewClient("", "")
	if got := c.Chat(context.Background(), "hello"); got != chatUnconfiguredReply {
		t.Errorf("reply = %q, want unconfigured apology", got)
	}
}

func TestChat_ServerErrorReturnsApology(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClientWithURL("test-key", "", srv.URL)
	if got := c.Chat(context.Background(), "hello"); got != chatErrorReply {
		t.Errorf("reply = %q, want error apology", got)
	}
}

func TestChat_SendsPersona(t *testing.T) {
	var gotBody generateRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		resp := map[string]any{
			"candidates": []map[string]any{
				{"content": map[string]any{"parts": []map[string]any{{"text": "hi"}}}},
			},
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer srv.Close()

	c := NewClientWithURL("test-key", "", srv.URL)
	c.Chat(context.Background(), "hello")

	if gotBody.SystemInstruct == nil || len(gotBody.SystemInstruct.Parts) == 0 {
		t.Fatal("no system instruction sent")
	}
	if gotBody.SystemInstruct.Parts[0].Text != chatPersona {
		t.Errorf("persona = %q", gotBody.SystemInstruct.Parts[0].Text)
	}
}
