package export

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/MuhamadAgungGumelar/sales-agent-configurator/internal/core/agentconfig"
)

func sampleAgent() agentconfig.Agent {
	agent := agentconfig.NewDefaultAgent("agent-42")
	agent.Name = "Vendedor Hunter"
	strategy := agentconfig.DefaultFollowUpStrategy()
	agent.FollowUpStrategy = &strategy
	agent.Products = []agentconfig.Product{
		{ID: "p1", Name: "Curso de Vendas", Price: 997, CheckoutLink: "https://pay.example.com/curso",
			FAQ: []agentconfig.FAQItem{{ID: "f1", Question: "Tem certificado?", Answer: "Sim."}}},
	}
	return agent
}

func TestExport_JSONRoundTrip(t *testing.T) {
	svc := NewService()
	agent := sampleAgent()

	data, contentType, err := svc.Export(agent, FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, "application/json", contentType)
	assert.Contains(t, string(data), `"conversationStages"`)
	assert.Contains(t, string(data), `"tag_lead"`)

	decoded, err := Decode(data, FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, agent, decoded)
}

func TestExport_YAMLRoundTrip(t *testing.T) {
	svc := NewService()
	agent := sampleAgent()

	data, _, err := svc.Export(agent, FormatYAML)
	require.NoError(t, err)
	text := string(data)
	assert.Contains(t, text, "greetingMessage:")
	assert.Contains(t, text, "webhookUrl:")

	decoded, err := Decode(data, FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, agent.Name, decoded.Name)
	assert.Equal(t, agent.Products[0].Price, decoded.Products[0].Price)
	require.Len(t, decoded.ConversationStages, len(agent.ConversationStages))
	assert.Equal(t, agent.ConversationStages[0].EntryActions, decoded.ConversationStages[0].EntryActions)
	assert.Equal(t, agent.BusinessHours, decoded.BusinessHours)
}

func TestExport_Prompt(t *testing.T) {
	data, contentType, err := NewService().Export(sampleAgent(), FormatPrompt)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(contentType, "text/plain"))
	assert.Contains(t, string(data), "## Catálogo de Produtos")
}

func TestExport_Excel(t *testing.T) {
	data, contentType, err := NewService().Export(sampleAgent(), FormatExcel)
	require.NoError(t, err)
	assert.Contains(t, contentType, "spreadsheetml")

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{SheetProducts, SheetStages, SheetFollowUps}, f.GetSheetList())

	name, err := f.GetCellValue(SheetProducts, "B4")
	require.NoError(t, err)
	assert.Equal(t, "Curso de Vendas", name)

	header, err := f.GetCellValue(SheetStages, "B3")
	require.NoError(t, err)
	assert.Equal(t, "Estágio", header)

	// title, blank, header, then one row per template
	first, err := f.GetCellValue(SheetFollowUps, "A4")
	require.NoError(t, err)
	assert.Equal(t, "initial_contact", first)
	last, err := f.GetCellValue(SheetFollowUps, fmt.Sprintf("A%d", 3+len(agentconfig.DefaultFollowUpTemplates())))
	require.NoError(t, err)
	assert.Equal(t, "waiting_decision", last)
}

func TestExport_UnsupportedFormat(t *testing.T) {
	_, _, err := NewService().Export(sampleAgent(), "pdf")
	assert.Error(t, err)

	_, err = Decode([]byte("x"), FormatExcel)
	assert.Error(t, err)
}

func TestParseFormat(t *testing.T) {
	tests := map[string]ExportFormat{
		"json":  FormatJSON,
		".yml":  FormatYAML,
		"YAML":  FormatYAML,
		"xlsx":  FormatExcel,
		"txt":   FormatPrompt,
		"excel": FormatExcel,
	}
	for in, want := range tests {
		got, err := ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseFormat("docx")
	assert.Error(t, err)
}

func TestColumnNumberToName(t *testing.T) {
	assert.Equal(t, "A", columnNumberToName(1))
	assert.Equal(t, "Z", columnNumberToName(26))
	assert.Equal(t, "AA", columnNumberToName(27))
}
