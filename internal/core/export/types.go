package export

import (
	"io"

	"github.com/MuhamadAgungGumelar/sales-agent-configurator/internal/core/agentconfig"
)

// ExportFormat represents the export file format
type ExportFormat string

const (
	FormatJSON   ExportFormat = "json"
	FormatYAML   ExportFormat = "yaml"
	FormatExcel  ExportFormat = "excel"
	FormatPrompt ExportFormat = "prompt"
)

// Formats lists every supported format
func Formats() []ExportFormat {
	return []ExportFormat{FormatJSON, FormatYAML, FormatExcel, FormatPrompt}
}

// Exporter is the interface for all export formats
type Exporter interface {
	Export(agent agentconfig.Agent, writer io.Writer) error
	GetContentType() string
	GetFileExtension() string
}

// ExportStyle defines styling options for spreadsheet exports
type ExportStyle struct {
	HeaderBold    bool
	HeaderBgColor string // Hex color
	AlternateRows bool
	RowBgColor1   string // Hex color for odd rows
	RowBgColor2   string // Hex color for even rows

	FontFamily string
	FontSize   float64

	FreezeHeader bool
	AutoFilter   bool
	ColumnWidths map[int]float64 // Column index -> width
}

// DefaultStyle returns default export styling
func DefaultStyle() ExportStyle {
	return ExportStyle{
		HeaderBold:    true,
		HeaderBgColor: "#4472C4",
		AlternateRows: true,
		RowBgColor1:   "#FFFFFF",
		RowBgColor2:   "#F2F2F2",
		FontFamily:    "Arial",
		FontSize:      10,
		FreezeHeader:  true,
		AutoFilter:    true,
		ColumnWidths:  make(map[int]float64),
	}
}

// TableData is one sheet of a workbook export
type TableData struct {
	Sheet   string
	Title   string
	Headers []string
	Rows    [][]interface{}
	Style   ExportStyle
}
