package handler

import (
	"VCS_Node_Automation/internal/automation-service/api/dto/request"
	"encoding/csv"
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/xuri/excelize/v2"
)

var (
	errUnsupportedFile       = errors.New("file must be a csv or xlsx file")
	errSheetNotFound         = errors.New("sheet not found")
	errEmptyFile             = errors.New("file is empty")
	errMissingRequiredColumn = errors.New("missing required column")
)

// rowError reports the first invalid data row of an import file. Row numbers are 1-based and
// count the header.
type rowError struct {
	Row int
	Err error
}

func (e *rowError) Error() string {
	return fmt.Sprintf("row %d: %v", e.Row, e.Err)
}

func (e *rowError) Unwrap() error {
	return e.Err
}

var (
	hostImportColumns = []string{"name", "location"}
	nodeImportColumns = []string{"chain", "host", "name", "port"}
)

type importTable struct {
	columns map[string]int
	rows    [][]string
}

func (t importTable) cell(row []string, column string) string {
	i, ok := t.columns[column]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func (t importTable) boolCell(row []string, column string) (bool, error) {
	v := t.cell(row, column)
	if v == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(strings.ToLower(v))
	if err != nil {
		return false, fmt.Errorf("%s must be a boolean", column)
	}
	return b, nil
}

func (t importTable) listCell(row []string, column string) []string {
	var out []string
	for _, v := range strings.Split(t.cell(row, column), ";") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func readImportFile(file *multipart.FileHeader, sheet string, requiredColumns []string) (importTable, error) {
	var rows [][]string
	var err error
	switch strings.ToLower(filepath.Ext(file.Filename)) {
	case ".csv":
		rows, err = readCSVRows(file)
	case ".xlsx":
		rows, err = readExcelRows(file, sheet)
	default:
		return importTable{}, errUnsupportedFile
	}
	if err != nil {
		return importTable{}, err
	}
	if len(rows) < 2 {
		return importTable{}, errEmptyFile
	}

	columns := make(map[string]int)
	for i, cell := range rows[0] {
		columns[strings.ToLower(strings.TrimSpace(cell))] = i
	}
	for _, column := range requiredColumns {
		if _, ok := columns[column]; !ok {
			return importTable{}, fmt.Errorf("%w: %s", errMissingRequiredColumn, column)
		}
	}
	return importTable{columns: columns, rows: rows[1:]}, nil
}

func readCSVRows(file *multipart.FileHeader) ([][]string, error) {
	content, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer content.Close()

	reader := csv.NewReader(content)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	return reader.ReadAll()
}

func readExcelRows(file *multipart.FileHeader, sheet string) ([][]string, error) {
	content, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer content.Close()

	xlsx, err := excelize.OpenReader(content)
	if err != nil {
		return nil, err
	}
	defer xlsx.Close()

	if sheet == "" {
		sheet = xlsx.GetSheetName(0)
	} else if index, _ := xlsx.GetSheetIndex(sheet); index == -1 {
		return nil, errSheetNotFound
	}
	return xlsx.GetRows(sheet)
}

func parseHostRows(t importTable, v *validator.Validate) ([]request.HostImportRow, error) {
	out := make([]request.HostImportRow, 0, len(t.rows))
	for i, row := range t.rows {
		loadBalancer, err := t.boolCell(row, "load_balancer")
		if err != nil {
			return nil, &rowError{Row: i + 2, Err: err}
		}
		r := request.HostImportRow{
			Name:         t.cell(row, "name"),
			Location:     t.cell(row, "location"),
			LoadBalancer: loadBalancer,
			IP:           t.cell(row, "ip"),
			FQDN:         t.cell(row, "fqdn"),
		}
		if err = v.Struct(r); err != nil {
			return nil, &rowError{Row: i + 2, Err: err}
		}
		out = append(out, r)
	}
	return out, nil
}

func parseNodeRows(t importTable, v *validator.Validate) ([]request.NodeImportRow, error) {
	out := make([]request.NodeImportRow, 0, len(t.rows))
	for i, row := range t.rows {
		r := request.NodeImportRow{
			Chain:         t.cell(row, "chain"),
			Host:          t.cell(row, "host"),
			Name:          t.cell(row, "name"),
			Backend:       t.cell(row, "backend"),
			Frontend:      t.cell(row, "frontend"),
			Server:        t.cell(row, "server"),
			LoadBalancers: t.listCell(row, "load_balancers"),
		}
		port, err := strconv.Atoi(t.cell(row, "port"))
		if err != nil {
			return nil, &rowError{Row: i + 2, Err: errors.New("port must be an integer")}
		}
		r.Port = port
		for column, dst := range map[string]*bool{"https": &r.HTTPS, "automation": &r.Automation, "haproxy": &r.HaProxy} {
			if *dst, err = t.boolCell(row, column); err != nil {
				return nil, &rowError{Row: i + 2, Err: err}
			}
		}
		if err = v.Struct(r); err != nil {
			return nil, &rowError{Row: i + 2, Err: err}
		}
		out = append(out, r)
	}
	return out, nil
}
