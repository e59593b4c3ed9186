package export

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/bytedance/sonic"
	"gopkg.in/yaml.v3"

	"github.com/MuhamadAgungGumelar/sales-agent-configurator/internal/core/agentconfig"
)

// Service provides high-level export functionality
type Service struct {
	exporters map[ExportFormat]Exporter
}

// NewService creates a new export service with every format registered
func NewService() *Service {
	return &Service{
		exporters: map[ExportFormat]Exporter{
			FormatJSON:   NewJSONExporter(),
			FormatYAML:   NewYAMLExporter(),
			FormatExcel:  NewExcelExporter(),
			FormatPrompt: NewPromptExporter(),
		},
	}
}

// ParseFormat accepts a format name or a file extension such as ".yml"
func ParseFormat(s string) (ExportFormat, error) {
	switch strings.ToLower(strings.TrimPrefix(strings.TrimSpace(s), ".")) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "excel", "xlsx":
		return FormatExcel, nil
	case "prompt", "txt", "text":
		return FormatPrompt, nil
	default:
		return "", fmt.Errorf("unsupported export format: %s", s)
	}
}

func (s *Service) exporter(format ExportFormat) (Exporter, error) {
	exporter, ok := s.exporters[format]
	if !ok {
		return nil, fmt.Errorf("unsupported export format: %s", format)
	}
	return exporter, nil
}

// Export exports the agent to the specified format
func (s *Service) Export(agent agentconfig.Agent, format ExportFormat) ([]byte, string, error) {
	exporter, err := s.exporter(format)
	if err != nil {
		return nil, "", err
	}

	var buf bytes.Buffer
	if err := exporter.Export(agent, &buf); err != nil {
		return nil, "", fmt.Errorf("export failed: %w", err)
	}

	return buf.Bytes(), exporter.GetContentType(), nil
}

// ExportToWriter exports the agent to a writer
func (s *Service) ExportToWriter(agent agentconfig.Agent, format ExportFormat, writer io.Writer) error {
	exporter, err := s.exporter(format)
	if err != nil {
		return err
	}
	return exporter.Export(agent, writer)
}

// GetContentType returns the content type for the given format
func (s *Service) GetContentType(format ExportFormat) string {
	if exporter, err := s.exporter(format); err == nil {
		return exporter.GetContentType()
	}
	return "application/octet-stream"
}

// GetFileExtension returns the file extension for the given format
func (s *Service) GetFileExtension(format ExportFormat) string {
	if exporter, err := s.exporter(format); err == nil {
		return exporter.GetFileExtension()
	}
	return ".bin"
}

// Decode reads an agent previously exported as JSON or YAML
func Decode(data []byte, format ExportFormat) (agentconfig.Agent, error) {
	var agent agentconfig.Agent
	switch format {
	case FormatJSON:
		if err := sonic.Unmarshal(data, &agent); err != nil {
			return agent, fmt.Errorf("invalid agent JSON: %w", err)
		}

	case FormatYAML:
		var doc map[string]any
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return agent, fmt.Errorf("invalid agent YAML: %w", err)
		}
		raw, err := sonic.Marshal(doc)
		if err != nil {
			return agent, fmt.Errorf("failed to convert YAML document: %w", err)
		}
		if err := sonic.Unmarshal(raw, &agent); err != nil {
			return agent, fmt.Errorf("invalid agent YAML: %w", err)
		}

	default:
		return agent, fmt.Errorf("cannot decode format: %s", format)
	}
	return agent, nil
}
