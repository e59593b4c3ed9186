package export

import (
	"fmt"
	"io"

	"github.com/bytedance/sonic"
	"gopkg.in/yaml.v3"

	"github.com/MuhamadAgungGumelar/sales-agent-configurator/internal/core/agentconfig"
)

// YAMLExporter writes the agent contract as YAML. Keys match the JSON
// contract because the agent goes through its JSON form first.
type YAMLExporter struct{}

func NewYAMLExporter() *YAMLExporter {
	return &YAMLExporter{}
}

func (e *YAMLExporter) Export(agent agentconfig.Agent, writer io.Writer) error {
	doc, err := toDocument(agent)
	if err != nil {
		return err
	}

	encoder := yaml.NewEncoder(writer)
	encoder.SetIndent(2)
	if err := encoder.Encode(doc); err != nil {
		return fmt.Errorf("failed to write YAML: %w", err)
	}
	return encoder.Close()
}

func (e *YAMLExporter) GetContentType() string {
	return "application/yaml"
}

func (e *YAMLExporter) GetFileExtension() string {
	return ".yaml"
}

// toDocument converts an agent to its generic JSON-shaped document
func toDocument(agent agentconfig.Agent) (map[string]any, error) {
	data, err := sonic.Marshal(agent)
	if err != nil {
		return nil, fmt.Errorf("failed to encode agent: %w", err)
	}
	var doc map[string]any
	if err := sonic.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to build document: %w", err)
	}
	return doc, nil
}
