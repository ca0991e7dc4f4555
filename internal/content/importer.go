package content

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ImportOptions controls a spreadsheet import. Columns are 0-based; rows
// before StartRow (1-based) are skipped so header rows can be ignored.
type ImportOptions struct {
	SheetName     string
	StartRow      int
	TermColumn    int
	MeaningColumn int
	ExampleColumn int
	SectionColumn int
}

// DefaultImportOptions matches the academy's wordbook spreadsheet layout:
// term, meaning, example, section in the first four columns with one header
// row.
func DefaultImportOptions() ImportOptions {
	return ImportOptions{
		SheetName:     "Sheet1",
		StartRow:      2,
		TermColumn:    0,
		MeaningColumn: 1,
		ExampleColumn: 2,
		SectionColumn: 3,
	}
}

// ImportResult tracks counts for one import run.
type ImportResult struct {
	WordbookID int64
	Name       string
	Imported   int
	Skipped    int
	Errors     []string
}

// Importer loads wordbooks from Excel or CSV files into the content store.
type Importer struct {
	store Store
}

// NewImporter creates a new Importer.
func NewImporter(store Store) *Importer {
	return &Importer{store: store}
}

// Import reads the file at path and creates one wordbook named name with
// its rows as words. The file format is chosen by extension: .csv is parsed
// as CSV, .yml and .yaml as a YAML seed file, anything else as an Excel
// workbook. An empty name falls back to the file name, or for YAML files
// to the name inside the file.
func (imp *Importer) Import(ctx context.Context, path, name, level string, opts ImportOptions) (*ImportResult, error) {
	var (
		rows [][]string
		err  error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		return imp.importYAML(ctx, path, name, level)
	case ".csv":
		rows, err = readCSVRows(path)
	default:
		rows, err = readExcelRows(path, opts.SheetName)
	}
	if err != nil {
		return nil, err
	}
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	result := &ImportResult{}
	words := make([]Word, 0, len(rows))
	section := 1
	for i, row := range rows {
		if i < opts.StartRow-1 {
			continue
		}

		term := cell(row, opts.TermColumn)
		meaning := cell(row, opts.MeaningColumn)
		if term == "" || meaning == "" {
			result.Skipped++
			continue
		}

		if raw := cell(row, opts.SectionColumn); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed < 1 {
				result.Errors = append(result.Errors, fmt.Sprintf("row %d: invalid section %q", i+1, raw))
				result.Skipped++
				continue
			}
			section = parsed
		}

		words = append(words, Word{
			Position: len(words) + 1,
			Section:  section,
			Term:     term,
			Meaning:  meaning,
			Example:  cell(row, opts.ExampleColumn),
		})
	}

	if len(words) == 0 {
		return nil, fmt.Errorf("file %s contains no importable words", path)
	}

	wordbook := &Wordbook{Name: name, Level: level}
	if err := imp.store.ImportWordbook(ctx, wordbook, words); err != nil {
		return nil, fmt.Errorf("store.ImportWordbook > %w", err)
	}

	result.WordbookID = wordbook.ID
	result.Name = name
	result.Imported = len(words)
	return result, nil
}

func (imp *Importer) importYAML(ctx context.Context, path, name, level string) (*ImportResult, error) {
	source, err := ReadWordbookFile(path)
	if err != nil {
		return nil, err
	}
	if name == "" {
		name = source.Name
	}
	if level == "" {
		level = source.Level
	}

	words := source.Flatten()
	if len(words) == 0 {
		return nil, fmt.Errorf("file %s contains no importable words", path)
	}

	wordbook := &Wordbook{Name: name, Level: level}
	if err := imp.store.ImportWordbook(ctx, wordbook, words); err != nil {
		return nil, fmt.Errorf("store.ImportWordbook > %w", err)
	}
	return &ImportResult{WordbookID: wordbook.ID, Name: name, Imported: len(words)}, nil
}

func readExcelRows(path, sheetName string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("excelize.OpenFile(%s) > %w", path, err)
	}
	defer func() {
		_ = f.Close()
	}()

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("f.GetRows(%s) > %w", sheetName, err)
	}
	return rows, nil
}

func readCSVRows(path string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("os.Open(%s) > %w", path, err)
	}
	defer func() {
		_ = file.Close()
	}()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	var rows [][]string
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("csv.Reader.Read(%s) > %w", path, err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func cell(row []string, index int) string {
	if index < 0 || index >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[index])
}
