package httpapi

import (
	"bytes"
	"fmt"
	"net/http"

	"devicetrack/internal/domain"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// DeviceExportHeader lists the exported columns, in sheet order.
var DeviceExportHeader = []string{
	"Name",
	"Serial Number",
	"Asset ID",
	"Status",
	"Assigned To",
	"Staff Member",
	"Ward",
	"Checkout Time",
	"Checkout Notes",
	"Date Added",
}

// ExportDevices streams the device inventory as an .xlsx attachment.
func (h *DeviceHandler) ExportDevices(w http.ResponseWriter, r *http.Request) {
	devices, err := h.devices.ListDevices(r.Context())
	if err != nil {
		h.logger.Error("ListDevices failed for export", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, fail(err.Error()))
		return
	}

	data, err := GenerateDeviceExport(devices)
	if err != nil {
		h.logger.Error("device export generation failed", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, fail(fmt.Sprintf("failed to generate export: %v", err)))
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", "attachment; filename=devices-export.xlsx")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// GenerateDeviceExport builds the inventory workbook. An empty device list
// produces a header-only sheet.
func GenerateDeviceExport(devices []*domain.Device) ([]byte, error) {
	f := excelize.NewFile()
	// Don't defer Close() here: WriteTo needs the file still open.

	sheetName := "Devices"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E6F3FF"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	for col, header := range DeviceExportHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to convert coordinates: %w", err)
		}
		if err := f.SetCellValue(sheetName, cell, header); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to set header cell %s: %w", cell, err)
		}
		if err := f.SetCellStyle(sheetName, cell, cell, headerStyle); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to set header style: %w", err)
		}
	}

	columnWidths := []float64{
		25, // Name
		20, // Serial Number
		15, // Asset ID
		12, // Status
		20, // Assigned To
		20, // Staff Member
		15, // Ward
		24, // Checkout Time
		30, // Checkout Notes
		24, // Date Added
	}
	for i := range DeviceExportHeader {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to convert column number: %w", err)
		}
		if i < len(columnWidths) && columnWidths[i] > 0 {
			if err := f.SetColWidth(sheetName, col, col, columnWidths[i]); err != nil {
				f.Close()
				return nil, fmt.Errorf("failed to set column width: %w", err)
			}
		}
	}

	for rowIdx, d := range devices {
		row := rowIdx + 2 // row 1 is the header
		values := []string{
			d.Name,
			d.SerialNumber,
			d.AssetID,
			d.Status,
			d.AssignedTo,
			d.StaffMember,
			d.Ward,
			d.CheckoutTime,
			d.CheckoutNotes,
			d.DateAdded,
		}
		for col, value := range values {
			if value == "" {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				f.Close()
				return nil, fmt.Errorf("failed to convert coordinates: %w", err)
			}
			if err := f.SetCellValue(sheetName, cell, value); err != nil {
				f.Close()
				return nil, fmt.Errorf("failed to set cell %s: %w", cell, err)
			}
		}
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("failed to close workbook: %w", err)
	}
	return buf.Bytes(), nil
}
