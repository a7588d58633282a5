package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"EditorialGate/internal/config"
	"EditorialGate/internal/domain"
	"EditorialGate/internal/ports"
)

// Drafter writes the Hindi editorial from the validated link set via the
// OpenAI chat-completions API.
type Drafter struct {
	model string
	opts  []option.RequestOption
}

var _ ports.Drafter = (*Drafter)(nil)

// NewDrafter builds a drafter from configuration.
func NewDrafter(cfg config.OpenAIConfig) (*Drafter, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("openai api key missing")
	}

	model := cfg.Model
	if model == "" {
		model = "gpt-4o-mini"
	}

	opts := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	return &Drafter{model: model, opts: opts}, nil
}

// Draft requests a 400-600 word editorial grounded on the validated sources.
func (d *Drafter) Draft(ctx context.Context, clock domain.RunClock, links []domain.ValidatedLink) (string, error) {
	client := openai.NewClient(d.opts...)

	resp, err := client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(d.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(buildPrompt(clock, links)),
		},
		Temperature: openai.Float(0.7),
	})
	if err != nil {
		return "", fmt.Errorf("draft editorial: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("openai: empty choices")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

func buildPrompt(clock domain.RunClock, links []domain.ValidatedLink) string {
	var sources strings.Builder
	for _, link := range links {
		sources.WriteString("- ")
		sources.WriteString(link.URL)
		sources.WriteString("\n")
	}

	today := clock.Now.In(clock.Location).Format("2 January 2006")

	return fmt.Sprintf(`नीचे दिये गये स्रोतों के आधार पर
चार-शब्दी शीर्षक बनाओ, फिर एक खाली पंक्ति,
फिर 400-600 शब्दों का हिंदी संपादकीय लिखो।
पहली पंक्ति में पूर्ण तिथि %s हो।
किसी outlet का नाम मत लिखो; 'मीडिया रिपोर्टों' प्रयोग करो।
स्रोत:
%s`, today, sources.String())
}
