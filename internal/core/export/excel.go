package export

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/MuhamadAgungGumelar/sales-agent-configurator/internal/core/agentconfig"
	"github.com/MuhamadAgungGumelar/sales-agent-configurator/internal/core/followup"
)

// Sheet names of the workbook export
const (
	SheetProducts  = "Produtos"
	SheetStages    = "Estágios"
	SheetFollowUps = "Follow-ups"
)

// ExcelExporter writes the product catalog, stages and follow-up templates
// as one workbook using excelize
type ExcelExporter struct {
	style ExportStyle
}

// NewExcelExporter creates a new Excel exporter
func NewExcelExporter() *ExcelExporter {
	return &ExcelExporter{style: DefaultStyle()}
}

// Export exports the agent to Excel format
func (e *ExcelExporter) Export(agent agentconfig.Agent, writer io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	tables := []TableData{
		productTable(agent, e.style),
		stageTable(agent, e.style),
		followUpTable(agent, e.style),
	}

	for i, table := range tables {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", table.Sheet); err != nil {
				return fmt.Errorf("failed to rename sheet: %w", err)
			}
		} else if _, err := f.NewSheet(table.Sheet); err != nil {
			return fmt.Errorf("failed to create sheet %s: %w", table.Sheet, err)
		}
		if err := e.writeTable(f, table); err != nil {
			return fmt.Errorf("sheet %s: %w", table.Sheet, err)
		}
	}

	// Write to output
	if err := f.Write(writer); err != nil {
		return fmt.Errorf("failed to write Excel file: %w", err)
	}

	return nil
}

// GetContentType returns the MIME type for Excel files
func (e *ExcelExporter) GetContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

// GetFileExtension returns the file extension for Excel files
func (e *ExcelExporter) GetFileExtension() string {
	return ".xlsx"
}

func productTable(agent agentconfig.Agent, style ExportStyle) TableData {
	style.ColumnWidths = map[int]float64{1: 30, 3: 50, 4: 40}
	table := TableData{
		Sheet:   SheetProducts,
		Title:   fmt.Sprintf("Catálogo de Produtos - %s", agent.Name),
		Headers: []string{"ID", "Produto", "Preço (R$)", "Descrição", "Link de compra", "FAQs", "Base de conhecimento", "Materiais"},
		Style:   style,
	}
	for _, p := range agent.Products {
		docs, materials := p.SplitAttachments()
		table.Rows = append(table.Rows, []interface{}{
			p.ID,
			p.Name,
			p.Price,
			p.Description,
			p.CheckoutLink,
			len(p.FAQ),
			len(p.KnowledgeBase) + len(docs),
			len(p.LeadMaterials) + len(materials),
		})
	}
	return table
}

func stageTable(agent agentconfig.Agent, style ExportStyle) TableData {
	style.ColumnWidths = map[int]float64{1: 25, 6: 60}
	table := TableData{
		Sheet:   SheetStages,
		Title:   fmt.Sprintf("Estágios da Conversa - %s", agent.Name),
		Headers: []string{"Ordem", "Estágio", "Padrão", "Ativo", "Transições", "Ações de entrada", "Instruções", "Timeout (min)", "Ação de timeout"},
		Style:   style,
	}
	for _, s := range agent.ConversationStages {
		targets := make([]string, 0, len(s.Transitions))
		for _, t := range s.Transitions {
			targets = append(targets, fmt.Sprintf("%s (p%d)", t.TargetStageID, t.Priority))
		}
		actions := make([]string, 0, len(s.EntryActions))
		for _, a := range s.EntryActions {
			actions = append(actions, string(a.Type()))
		}
		table.Rows = append(table.Rows, []interface{}{
			s.Order,
			s.Name,
			yesNo(s.IsDefault),
			yesNo(s.IsActive),
			strings.Join(targets, ", "),
			strings.Join(actions, ", "),
			s.Instructions,
			s.Settings.TimeoutMinutes,
			string(s.Settings.TimeoutAction),
		})
	}
	return table
}

func followUpTable(agent agentconfig.Agent, style ExportStyle) TableData {
	style.ColumnWidths = map[int]float64{4: 70}
	table := TableData{
		Sheet:   SheetFollowUps,
		Title:   fmt.Sprintf("Templates de Follow-up - %s", agent.Name),
		Headers: []string{"Estágio do funil", "Tentativa", "Atraso (min)", "Ativo", "Mensagem"},
		Style:   style,
	}
	if agent.FollowUpStrategy == nil {
		return table
	}
	for _, t := range followup.Sorted(agent.FollowUpStrategy.Templates) {
		table.Rows = append(table.Rows, []interface{}{
			string(t.Stage),
			t.Attempt,
			t.DelayMinutes,
			yesNo(t.IsActive),
			t.Message,
		})
	}
	return table
}

func yesNo(b bool) string {
	if b {
		return "Sim"
	}
	return "Não"
}

// writeTable writes a titled, styled table into its sheet
func (e *ExcelExporter) writeTable(f *excelize.File, table TableData) error {
	sheet := table.Sheet
	style := table.Style

	// Write title if provided
	rowIndex := 1
	if table.Title != "" {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", rowIndex), table.Title)
		titleStyle, _ := f.NewStyle(&excelize.Style{
			Font: &excelize.Font{
				Bold:   true,
				Size:   14,
				Family: style.FontFamily,
			},
		})
		f.SetCellStyle(sheet, fmt.Sprintf("A%d", rowIndex), fmt.Sprintf("A%d", rowIndex), titleStyle)
		rowIndex += 2 // Add blank row
	}

	headerStyle, err := e.createHeaderStyle(f, style)
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	// Write headers
	headerRow := rowIndex
	for colIndex, header := range table.Headers {
		cell := columnNumberToName(colIndex+1) + strconv.Itoa(rowIndex)
		f.SetCellValue(sheet, cell, header)
		f.SetCellStyle(sheet, cell, cell, headerStyle)

		if width, ok := style.ColumnWidths[colIndex]; ok {
			colName := columnNumberToName(colIndex + 1)
			f.SetColWidth(sheet, colName, colName, width)
		}
	}
	rowIndex++

	oddRowStyle, _ := e.createRowStyle(f, style, style.RowBgColor1)
	evenRowStyle := oddRowStyle
	if style.AlternateRows {
		evenRowStyle, _ = e.createRowStyle(f, style, style.RowBgColor2)
	}

	// Write data rows
	for rowIdx, row := range table.Rows {
		for colIndex, value := range row {
			cell := columnNumberToName(colIndex+1) + strconv.Itoa(rowIndex)
			f.SetCellValue(sheet, cell, value)

			if rowIdx%2 == 0 {
				f.SetCellStyle(sheet, cell, cell, oddRowStyle)
			} else {
				f.SetCellStyle(sheet, cell, cell, evenRowStyle)
			}
		}
		rowIndex++
	}

	if style.FreezeHeader {
		f.SetPanes(sheet, &excelize.Panes{
			Freeze:      true,
			YSplit:      headerRow,
			TopLeftCell: fmt.Sprintf("A%d", headerRow+1),
			ActivePane:  "bottomLeft",
		})
	}

	if style.AutoFilter && len(table.Headers) > 0 && len(table.Rows) > 0 {
		lastCol := columnNumberToName(len(table.Headers))
		lastRow := headerRow + len(table.Rows)
		f.AutoFilter(sheet, fmt.Sprintf("A%d:%s%d", headerRow, lastCol, lastRow), nil)
	}

	return nil
}

// createHeaderStyle creates the header style
func (e *ExcelExporter) createHeaderStyle(f *excelize.File, style ExportStyle) (int, error) {
	return f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold:   style.HeaderBold,
			Size:   style.FontSize,
			Family: style.FontFamily,
			Color:  "FFFFFF",
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Pattern: 1,
			Color:   []string{stripHashFromColor(style.HeaderBgColor)},
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
}

// createRowStyle creates a row style with background color
func (e *ExcelExporter) createRowStyle(f *excelize.File, style ExportStyle, bgColor string) (int, error) {
	rowStyle := &excelize.Style{
		Font: &excelize.Font{
			Size:   style.FontSize,
			Family: style.FontFamily,
		},
	}

	// White rows get no fill
	if bgColor != "" && bgColor != "#FFFFFF" {
		rowStyle.Fill = excelize.Fill{
			Type:    "pattern",
			Pattern: 1,
			Color:   []string{stripHashFromColor(bgColor)},
		}
	}

	return f.NewStyle(rowStyle)
}

// columnNumberToName converts column number to Excel column name (1 -> A, 27 -> AA)
func columnNumberToName(col int) string {
	name := ""
	for col > 0 {
		col--
		name = string(rune('A'+(col%26))) + name
		col /= 26
	}
	return name
}

func stripHashFromColor(color string) string {
	return strings.TrimPrefix(color, "#")
}
