// Package export writes inventory and recipes as CSV or XLSX
package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/pageza/recipe-ai/internal/model"
)

// Format is an output file type
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// ContentType is the MIME type of files in format f
func (f Format) ContentType() string {
	if f == FormatXLSX {
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "text/csv"
}

// ErrMultipleTables is returned when more than one table is written as CSV
var ErrMultipleTables = errors.New("csv holds a single table")

// Table is one sheet of output
type Table struct {
	Name   string
	Header []string
	Rows   [][]string
}

// FormatFromPath picks the format from the file extension
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(filepath.Ext(path), ".")) {
	case "csv":
		return FormatCSV, nil
	case "xlsx":
		return FormatXLSX, nil
	}
	return "", fmt.Errorf("unsupported export format for %q (want .csv or .xlsx)", path)
}

// IngredientsTable lays out the inventory one ingredient per row
func IngredientsTable(items []model.Ingredient) Table {
	t := Table{
		Name:   "Ingredients",
		Header: []string{"id", "name", "quantity", "vegetable_or_fruit", "added"},
	}
	for _, item := range items {
		t.Rows = append(t.Rows, []string{
			item.ID,
			item.Name,
			strconv.Itoa(item.Quantity),
			strconv.FormatBool(item.IsVegetableOrFruit),
			item.ItemAdded.String(),
		})
	}
	return t
}

// RecipesTable lays out recipes one per row. List fields are joined with
// newlines so a cell keeps one entry per line.
func RecipesTable(recipes []model.Recipe) Table {
	t := Table{
		Name:   "Recipes",
		Header: []string{"id", "name", "description", "items", "instructions", "tags", "cooking_time", "favorite", "vegetarian"},
	}
	for _, r := range recipes {
		cookingTime := ""
		if r.CookingTime > 0 {
			cookingTime = strconv.Itoa(r.CookingTime)
		}
		t.Rows = append(t.Rows, []string{
			r.ID,
			r.Name,
			r.Description,
			strings.Join(r.Items, "\n"),
			strings.Join(r.Instructions, "\n"),
			strings.Join(r.Tags, ", "),
			cookingTime,
			strconv.FormatBool(r.IsFav),
			strconv.FormatBool(r.IsVeg),
		})
	}
	return t
}

// WriteCSV writes t with its header row
func WriteCSV(w io.Writer, t Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Header); err != nil {
		return err
	}
	if err := cw.WriteAll(t.Rows); err != nil {
		return err
	}
	return cw.Error()
}

// WriteXLSX writes each table to its own sheet with a bold header row
func WriteXLSX(w io.Writer, tables ...Table) error {
	f := excelize.NewFile()
	defer f.Close()

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}

	for i, t := range tables {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", t.Name); err != nil {
				return err
			}
		} else if _, err := f.NewSheet(t.Name); err != nil {
			return err
		}

		// StreamWriter for efficiency on large tables
		sw, err := f.NewStreamWriter(t.Name)
		if err != nil {
			return err
		}
		header := make([]interface{}, len(t.Header))
		for j, h := range t.Header {
			header[j] = excelize.Cell{StyleID: bold, Value: h}
		}
		if err := sw.SetRow("A1", header); err != nil {
			return err
		}
		for j, r := range t.Rows {
			row := make([]interface{}, len(r))
			for k, v := range r {
				row[k] = v
			}
			cell, _ := excelize.CoordinatesToCellName(1, j+2)
			if err := sw.SetRow(cell, row); err != nil {
				return err
			}
		}
		if err := sw.Flush(); err != nil {
			return err
		}
	}

	_, err = f.WriteTo(w)
	return err
}

// WriteFile writes tables to path in the format its extension names
func WriteFile(path string, tables ...Table) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	if format == FormatCSV && len(tables) != 1 {
		return ErrMultipleTables
	}

	out, err := os.Create(path)
	if err != nil {
		return err
	}
	if format == FormatCSV {
		err = WriteCSV(out, tables[0])
	} else {
		err = WriteXLSX(out, tables...)
	}
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	return err
}
