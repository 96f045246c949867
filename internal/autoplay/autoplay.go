// Package autoplay lets a Gemini model choose commands for the game, so a whole
// session can be simulated without a human at the keyboard.
package autoplay

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/google/generative-ai-go/genai"
	"github.com/tatianab/dungeon-escape/internal/models"
	"google.golang.org/api/option"
	"gopkg.in/yaml.v3"
)

//go:embed prompts/next_command.txt
var nextCommandPrompt string

var nextCommandTmpl = template.Must(template.New("next_command").Parse(nextCommandPrompt))

// Situation is what the player model gets to see before choosing.
type Situation struct {
	NPC      string
	Accepts  []string
	Commands []string
	Kinds    []string
	Status   []string
	History  []models.HistoryEntry
}

// Choice is the model's decision.
type Choice struct {
	Command string `yaml:"command"`
	Reason  string `yaml:"reason"`
}

type Player struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

func NewPlayer(ctx context.Context, apiKey string) (*Player, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}
	return &Player{
		client: client,
		model:  client.GenerativeModel("gemini-2.5-flash"),
	}, nil
}

func (p *Player) Close() {
	p.client.Close()
}

// NextCommand asks the model for the next command line.
func (p *Player) NextCommand(ctx context.Context, s Situation) (Choice, error) {
	prompt, err := BuildPrompt(s)
	if err != nil {
		return Choice{}, err
	}

	resp, err := p.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return Choice{}, err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return Choice{}, fmt.Errorf("no content returned from Gemini")
	}
	text, ok := resp.Candidates[0].Content.Parts[0].(genai.Text)
	if !ok {
		return Choice{}, fmt.Errorf("unexpected response type from Gemini")
	}
	return ParseChoice(string(text))
}

// BuildPrompt renders the prompt for s.
func BuildPrompt(s Situation) (string, error) {
	var history strings.Builder
	for _, e := range s.History {
		fmt.Fprintf(&history, "Action: %s\nOutcome: %s\nStatus: %s\n\n", e.PlayerAction, e.Outcome, e.Status)
	}

	data := struct {
		NPC      string
		Accepts  string
		Commands []string
		Kinds    string
		Status   []string
		History  string
	}{
		NPC:      s.NPC,
		Accepts:  strings.Join(s.Accepts, ", "),
		Commands: s.Commands,
		Kinds:    strings.Join(s.Kinds, ", "),
		Status:   s.Status,
		History:  history.String(),
	}

	var buf bytes.Buffer
	if err := nextCommandTmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// ParseChoice decodes the model's YAML reply, tolerating a surrounding code fence.
func ParseChoice(reply string) (Choice, error) {
	clean := strings.TrimSpace(reply)
	clean = strings.TrimPrefix(clean, "```yaml")
	clean = strings.TrimPrefix(clean, "```")
	clean = strings.TrimSuffix(clean, "```")

	var c Choice
	if err := yaml.Unmarshal([]byte(clean), &c); err != nil {
		return Choice{}, fmt.Errorf("failed to parse choice YAML: %w\nOutput was: %s", err, clean)
	}
	c.Command = strings.TrimSpace(c.Command)
	if c.Command == "" {
		return Choice{}, fmt.Errorf("model returned an empty command")
	}
	return c, nil
}
