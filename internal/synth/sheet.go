package synth

import (
	"fmt"
	"math/rand"

	"github.com/xuri/excelize/v2"

	"go-docgen/internal/model"
)

const sheetName = "Sheet1"

var regions = []string{"North", "South", "East", "West", "Central"}

// Sheet synthesizes spreadsheet documents with excelize.
type Sheet struct {
	rng *rand.Rand
}

func NewSheet(rng *rand.Rand) *Sheet {
	return &Sheet{rng: rng}
}

func (s *Sheet) Synthesize(path string, tpl model.Template) error {
	f := excelize.NewFile()
	defer f.Close()

	var err error
	switch tpl {
	case model.TemplateDataAnalysis:
		err = s.writeDataAnalysis(f)
	case model.TemplateInvoice:
		err = s.writeInvoice(f)
	default:
		err = writeSkeleton(f, tpl)
	}
	if err == nil {
		err = f.SaveAs(path)
	}
	if err != nil {
		return &model.SynthesisError{Type: model.TypeSpreadsheet, Path: path, Err: err}
	}
	return nil
}

// regionRow is one row of the data-analysis sheet: four random quarterly
// values plus their computed total.
type regionRow struct {
	Region   string
	Quarters [4]int
	Total    int
}

func (s *Sheet) regionRows() []regionRow {
	rows := make([]regionRow, 0, len(regions))
	for _, region := range regions {
		row := regionRow{Region: region}
		for q := range row.Quarters {
			row.Quarters[q] = s.rng.Intn(901) + 100
			row.Total += row.Quarters[q]
		}
		rows = append(rows, row)
	}
	return rows
}

func (s *Sheet) writeDataAnalysis(f *excelize.File) error {
	headers := []string{"Region", "Q1", "Q2", "Q3", "Q4", "Total"}
	for col, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(sheetName, cell, h); err != nil {
			return err
		}
	}

	for i, row := range s.regionRows() {
		values := []interface{}{row.Region, row.Quarters[0], row.Quarters[1], row.Quarters[2], row.Quarters[3], row.Total}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, i+2)
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return err
			}
		}
	}

	series := make([]excelize.ChartSeries, 0, 4)
	for col := 'B'; col <= 'E'; col++ {
		series = append(series, excelize.ChartSeries{
			Name:       fmt.Sprintf("%s!$%c$1", sheetName, col),
			Categories: fmt.Sprintf("%s!$A$2:$A$6", sheetName),
			Values:     fmt.Sprintf("%s!$%c$2:$%c$6", sheetName, col, col),
		})
	}
	return f.AddChart(sheetName, "H2", &excelize.Chart{
		Type:   excelize.Col,
		Series: series,
		Title:  []excelize.RichTextRun{{Text: "Quarterly Performance by Region"}},
	})
}

// lineItem is one invoice row. Amount is the quantity×price product rounded
// to cents before any totaling happens.
type lineItem struct {
	Item        string
	Description string
	Quantity    int
	UnitPrice   float64
	Amount      float64
}

// invoiceItems generates between 3 and 8 random line items.
func (s *Sheet) invoiceItems() []lineItem {
	count := s.rng.Intn(6) + 3
	items := make([]lineItem, 0, count)
	for i := 0; i < count; i++ {
		name := fmt.Sprintf("Item %c-%d", 'A'+rune(s.rng.Intn(26)), s.rng.Intn(900)+100)
		qty := s.rng.Intn(10) + 1
		price := roundCents(s.rng.Float64()*490 + 10)
		items = append(items, lineItem{
			Item:        name,
			Description: "Description for " + name,
			Quantity:    qty,
			UnitPrice:   price,
			Amount:      roundCents(float64(qty) * price),
		})
	}
	return items
}

// invoiceTotal is the exact sum of the already-rounded line amounts.
func invoiceTotal(items []lineItem) float64 {
	total := 0.0
	for _, item := range items {
		total += item.Amount
	}
	return total
}

func (s *Sheet) writeInvoice(f *excelize.File) error {
	header := map[string]interface{}{
		"A1": "INVOICE",
		"A3": "Bill To:",
		"A4": fmt.Sprintf("Company %c", 'A'+rune(s.rng.Intn(26))),
		"A5": fmt.Sprintf("%d Main Street", s.rng.Intn(900)+100),
		"A6": fmt.Sprintf("City, State %d", s.rng.Intn(90000)+10000),
		"E3": "Invoice #:",
		"F3": fmt.Sprintf("INV-%d", s.rng.Intn(9000)+1000),
		"E4": "Date:",
		"F4": fmt.Sprintf("5/%d/2025", s.rng.Intn(31)+1),
		"E5": "Due Date:",
		"F5": fmt.Sprintf("6/%d/2025", s.rng.Intn(30)+1),
	}
	for cell, v := range header {
		if err := f.SetCellValue(sheetName, cell, v); err != nil {
			return err
		}
	}

	columns := []string{"Item", "Description", "Quantity", "Unit Price", "Amount"}
	for col, h := range columns {
		cell, _ := excelize.CoordinatesToCellName(col+1, 8)
		if err := f.SetCellValue(sheetName, cell, h); err != nil {
			return err
		}
	}

	items := s.invoiceItems()
	row := 9
	for _, item := range items {
		values := []interface{}{item.Item, item.Description, item.Quantity, item.UnitPrice, item.Amount}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return err
			}
		}
		row++
	}

	if err := f.SetCellValue(sheetName, fmt.Sprintf("D%d", row+1), "Total:"); err != nil {
		return err
	}
	return f.SetCellValue(sheetName, fmt.Sprintf("E%d", row+1), invoiceTotal(items))
}

// writeSkeleton is the fallback shape: a minimal single-sheet workbook
// whose first cell names the requested template.
func writeSkeleton(f *excelize.File, tpl model.Template) error {
	if err := f.SetCellValue(sheetName, "A1", capitalize(string(tpl))); err != nil {
		return err
	}
	return f.SetCellValue(sheetName, "A2", "Generated worksheet")
}
