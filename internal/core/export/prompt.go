package export

import (
	"fmt"
	"io"

	"github.com/MuhamadAgungGumelar/sales-agent-configurator/internal/core/agentconfig"
	"github.com/MuhamadAgungGumelar/sales-agent-configurator/internal/core/prompt"
)

// PromptExporter writes the compiled system prompt as plain text
type PromptExporter struct{}

func NewPromptExporter() *PromptExporter {
	return &PromptExporter{}
}

func (e *PromptExporter) Export(agent agentconfig.Agent, writer io.Writer) error {
	if _, err := io.WriteString(writer, prompt.Compile(agent)+"\n"); err != nil {
		return fmt.Errorf("failed to write prompt: %w", err)
	}
	return nil
}

func (e *PromptExporter) GetContentType() string {
	return "text/plain; charset=utf-8"
}

func (e *PromptExporter) GetFileExtension() string {
	return ".txt"
}
