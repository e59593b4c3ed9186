package export

import (
	"fmt"
	"io"

	"github.com/bytedance/sonic"

	"github.com/MuhamadAgungGumelar/sales-agent-configurator/internal/core/agentconfig"
)

// JSONExporter writes the agent contract as indented JSON
type JSONExporter struct {
	indent string
}

func NewJSONExporter() *JSONExporter {
	return &JSONExporter{indent: "  "}
}

func (e *JSONExporter) Export(agent agentconfig.Agent, writer io.Writer) error {
	data, err := sonic.ConfigStd.MarshalIndent(agent, "", e.indent)
	if err != nil {
		return fmt.Errorf("failed to encode agent: %w", err)
	}
	if _, err := writer.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write JSON: %w", err)
	}
	return nil
}

func (e *JSONExporter) GetContentType() string {
	return "application/json"
}

func (e *JSONExporter) GetFileExtension() string {
	return ".json"
}
