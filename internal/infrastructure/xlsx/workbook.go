// Package xlsx encapsule la lecture/écriture de classeurs Excel (excelize).
// Purement du formatage : aucune logique métier.
package xlsx

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// WriteTable écrit un classeur à une feuille : ligne d'en-têtes puis lignes de
// données. Les en-têtes sont les libellés d'affichage (vocabulaire partagé
// avec l'export CSV/JSON pour que l'aller-retour fonctionne).
func WriteTable(path, sheet string, headers []string, rows [][]string) error {
	f := excelize.NewFile()
	defer f.Close()

	if sheet == "" {
		sheet = "Feuil1"
	}
	idx, err := f.NewSheet(sheet)
	if err != nil {
		return fmt.Errorf("xlsx: créer la feuille: %w", err)
	}
	f.SetActiveSheet(idx)
	if sheet != "Sheet1" {
		_ = f.DeleteSheet("Sheet1")
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"DDDDDD"}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("xlsx: style en-tête: %w", err)
	}

	for c, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(c+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return fmt.Errorf("xlsx: écrire en-tête: %w", err)
		}
		_ = f.SetCellStyle(sheet, cell, cell, headerStyle)
	}
	for r, row := range rows {
		for c, v := range row {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return fmt.Errorf("xlsx: écrire cellule: %w", err)
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("xlsx: enregistrer %s: %w", path, err)
	}
	return nil
}

// ReadTable lit la première feuille d'un classeur : la première ligne est
// l'en-tête, le reste les données. Les lignes plus courtes que l'en-tête sont
// complétées par des cellules vides.
func ReadTable(path string) (headers []string, rows [][]string, err error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("xlsx: ouvrir %s: %w", path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil, fmt.Errorf("xlsx: classeur sans feuille")
	}
	all, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, nil, fmt.Errorf("xlsx: lire les lignes: %w", err)
	}
	if len(all) == 0 {
		return nil, nil, nil
	}

	headers = all[0]
	for _, row := range all[1:] {
		padded := make([]string, len(headers))
		copy(padded, row)
		rows = append(rows, padded)
	}
	return headers, rows, nil
}
