package service

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"parts-tracking-backend/internal/cache"
	"parts-tracking-backend/internal/database/models"
	"parts-tracking-backend/internal/logger"

	"github.com/xuri/excelize/v2"
)

const exportSheetName = "Parts"

// ExportService renders the parts ledger as a spreadsheet
type ExportService struct {
	store *cache.Store
	now   func() time.Time
}

// Ensure ExportService implements ExportServiceInterface
var _ ExportServiceInterface = (*ExportService)(nil)

// NewExportService creates a new ExportService
func NewExportService(store *cache.Store) *ExportService {
	return &ExportService{store: store, now: time.Now}
}

type exportColumn struct {
	header string
	width  float64
	value  func(p *models.Part, assignee string) string
}

func formatTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02 15:04")
}

var exportColumns = []exportColumn{
	{"Call ID", 18, func(p *models.Part, _ string) string { return p.CallID }},
	{"Call Status", 14, func(p *models.Part, _ string) string { return p.CallStatus }},
	{"Customer Name", 24, func(p *models.Part, _ string) string { return p.CustomerName }},
	{"Machine Model No", 18, func(p *models.Part, _ string) string { return p.MachineModelNo }},
	{"Serial No", 16, func(p *models.Part, _ string) string { return p.SerialNo }},
	{"Attend Date", 14, func(p *models.Part, _ string) string { return p.AttendDate }},
	{"Claim Engineer", 18, func(p *models.Part, _ string) string { return p.ClaimEngineerName }},
	{"Claim Date", 14, func(p *models.Part, _ string) string { return p.ClaimDate }},
	{"Repair/Replacement/DOA", 22, func(p *models.Part, _ string) string { return p.RepairReplacementDOA }},
	{"Part Description", 30, func(p *models.Part, _ string) string { return p.PartDescription }},
	{"Part No", 16, func(p *models.Part, _ string) string { return p.PartNo }},
	{"Consumption Engineer", 20, func(p *models.Part, _ string) string { return p.ConsumptionEngineer }},
	{"Consumption Status", 18, func(p *models.Part, _ string) string { return p.ConsumptionStatus }},
	{"Consumption Date", 16, func(p *models.Part, _ string) string { return p.ConsumptionDate }},
	{"Faulty/GPR Part Sent", 20, func(p *models.Part, _ string) string { return p.FaultyGPRPartSent }},
	{"Sent Date", 14, func(p *models.Part, _ string) string { return p.SentDate }},
	{"Received By", 16, func(p *models.Part, _ string) string { return p.ReceivedBy }},
	{"Recd Date", 14, func(p *models.Part, _ string) string { return p.RecdDate }},
	{"Completed Status", 16, func(p *models.Part, _ string) string { return p.CompletedStatus }},
	{"Completed By", 16, func(p *models.Part, _ string) string { return p.CompletedBy }},
	{"Complete Date", 14, func(p *models.Part, _ string) string { return p.CompleteDate }},
	{"Completed Location", 20, func(p *models.Part, _ string) string { return p.CompletedLocation }},
	{"Remarks", 30, func(p *models.Part, _ string) string { return p.Remarks }},
	{"Status", 18, func(p *models.Part, _ string) string { return string(p.Status) }},
	{"Return Approval", 16, func(p *models.Part, _ string) string { return string(p.PendingReturnApproval) }},
	{"Return Condition", 16, func(p *models.Part, _ string) string {
		if p.ReturnCondition == nil {
			return ""
		}
		return string(*p.ReturnCondition)
	}},
	{"Return Status", 14, func(p *models.Part, _ string) string { return string(p.ReturnStatus) }},
	{"Assigned To", 18, func(_ *models.Part, assignee string) string { return assignee }},
	{"Assigned Date", 18, func(p *models.Part, _ string) string { return formatTime(p.AssignedDate) }},
	{"Returned Date", 18, func(p *models.Part, _ string) string { return formatTime(p.ReturnedDate) }},
}

// ExportParts writes every part, oldest first, into an .xlsx workbook. It
// returns the workbook and a suggested file name.
func (s *ExportService) ExportParts(ctx context.Context) (*bytes.Buffer, string, error) {
	parts := s.store.ListParts(cache.PartFilter{})

	f := excelize.NewFile()
	defer f.Close()

	idx, err := f.NewSheet(exportSheetName)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, "", fmt.Errorf("failed to remove default sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, "", fmt.Errorf("failed to create header style: %w", err)
	}

	for i, col := range exportColumns {
		name, _ := excelize.ColumnNumberToName(i + 1)
		if err := f.SetColWidth(exportSheetName, name, name, col.width); err != nil {
			return nil, "", err
		}
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(exportSheetName, cell, col.header); err != nil {
			return nil, "", err
		}
	}
	first, _ := excelize.CoordinatesToCellName(1, 1)
	last, _ := excelize.CoordinatesToCellName(len(exportColumns), 1)
	if err := f.SetCellStyle(exportSheetName, first, last, headerStyle); err != nil {
		return nil, "", err
	}
	if err := f.SetPanes(exportSheetName, &excelize.Panes{Freeze: true, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft"}); err != nil {
		return nil, "", err
	}

	for r := range parts {
		p := &parts[r]
		assignee := ""
		if p.AssignedTo != nil {
			if employee, ok := s.store.Employee(*p.AssignedTo); ok {
				assignee = employee.Username
			}
		}
		for c, col := range exportColumns {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+2)
			if err := f.SetCellValue(exportSheetName, cell, col.value(p, assignee)); err != nil {
				return nil, "", err
			}
		}
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		return nil, "", fmt.Errorf("failed to write workbook: %w", err)
	}

	filename := fmt.Sprintf("parts_%s.xlsx", s.now().Format("2006-01-02"))
	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"rows":     len(parts),
		"filename": filename,
	}).Info("Parts ledger exported")
	return buf, filename, nil
}
