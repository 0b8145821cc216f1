// handlers/export.go - Spreadsheet export of the punch-list
package handlers

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/lucasmtn/obratrack/internal/models"
)

// ExportDemands streams the full punch-list as an xlsx workbook
func (h *Handler) ExportDemands(w http.ResponseWriter, r *http.Request) {
	demands, err := h.DB.ListDemands(models.DemandFilter{})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	names, err := h.serviceNames()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	f, err := buildDemandWorkbook(demands, names)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	defer f.Close()

	filename := fmt.Sprintf("demandas-%s.xlsx", time.Now().Format("2006-01-02"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	if err := f.Write(w); err != nil {
		log.Printf("[EXPORT] write workbook: %v", err)
	}
}

func buildDemandWorkbook(demands []models.Demand, service map[int64]string) (*excelize.File, error) {
	f := excelize.NewFile()
	const sheet = "Demandas"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"ID", "Bloco", "Apartamento", "Serviço", "Descrição", "Status", "Aberta em", "Resolvida em"}
	for i, header := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return nil, err
		}
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}
	if err := f.SetRowStyle(sheet, 1, 1, bold); err != nil {
		return nil, err
	}

	for i, d := range demands {
		row := i + 2
		resolved := ""
		if d.ResolvedAt != nil {
			resolved = d.ResolvedAt.Format("02/01/2006 15:04")
		}
		values := []any{
			d.ID, d.Block, d.Apartment, service[d.ServiceTypeID], d.Description,
			string(d.Status), d.CreatedAt.Format("02/01/2006 15:04"), resolved,
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	if err := f.SetColWidth(sheet, "E", "E", 40); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(sheet, "G", "H", 18); err != nil {
		return nil, err
	}

	return f, nil
}
