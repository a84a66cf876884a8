package checkers

import (
	"context"
	"fmt"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/RenTrieu/Ares/internal/logging"
	"github.com/RenTrieu/Ares/internal/types"
)

// GenAIClassifier backs the English checker's optional neural escalation
// (§4.2.4) with a Gemini classification call, following the same
// genai.NewClient construction the teacher uses for its embedding engine
// (internal/embedding/genai.go) but calling GenerateContent instead of
// EmbedContent.
type GenAIClassifier struct {
	client  *genai.Client
	model   string
	timeout time.Duration
}

// NewGenAIClassifier builds a neural classifier, or returns an error if
// apiKey is empty. Construction never contacts the network; the first
// Plausible call does.
func NewGenAIClassifier(apiKey, model string) (*GenAIClassifier, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("checkers: GenAI API key is required")
	}
	if model == "" {
		model = "gemini-2.0-flash"
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("checkers: failed to create GenAI client: %w", err)
	}
	return &GenAIClassifier{client: client, model: model, timeout: 5 * time.Second}, nil
}

// Plausible asks the model a single yes/no question about whether text
// reads as natural-language plaintext. It is only ever reached when the
// cheap statistical score was ambiguous (English.Classify) and the
// engine is not running with Configuration.Offline set.
func (g *GenAIClassifier) Plausible(text types.Text) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), g.timeout)
	defer cancel()

	prompt := "Is the following text coherent natural-language plaintext (not gibberish, not encoded data)? Answer only yes or no.\n\n" + string(text)
	contents := []*genai.Content{genai.NewContentFromText(prompt, genai.RoleUser)}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, nil)
	if err != nil {
		logging.Get(logging.CategoryCheckers).Warnw("neural classifier call failed", "err", err)
		return false, fmt.Errorf("checkers: GenAI classify: %w", err)
	}

	answer := strings.ToLower(strings.TrimSpace(resp.Text()))
	return strings.HasPrefix(answer, "yes"), nil
}
