// Package exportsvc renders entity snapshots into downloadable xlsx
// workbooks.
package exportsvc

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"

	"github.com/classtrack/classtrack/core/attendance"
	"github.com/classtrack/classtrack/core/gradebook"
	"github.com/classtrack/classtrack/core/roster"
)

const XlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type Service struct{}

func NewService() *Service {
	return &Service{}
}

func setCell(f *excelize.File, sheet string, col, row int, value interface{}) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return errors.Wrap(err, "building cell name")
	}
	if err = f.SetCellValue(sheet, cell, value); err != nil {
		return errors.Wrap(err, "setting cell value")
	}
	return nil
}

// GradebookWorkbook renders one class's gradebook grid: one row per
// enrolled student, one column per assignment, plus the running
// average. Ungraded cells stay blank.
func (svc *Service) GradebookWorkbook(grid gradebook.Grid) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	sheet := "Gradebook"
	f.SetSheetName("Sheet1", sheet)

	headers := []interface{}{"Student"}
	for _, a := range grid.Assignments {
		headers = append(headers, fmt.Sprintf("%s (%g pts)", a.Title, a.Points))
	}
	headers = append(headers, "Average (%)")
	for col, h := range headers {
		if err := setCell(f, sheet, col+1, 1, h); err != nil {
			return nil, err
		}
	}

	for i, row := range grid.Rows {
		r := i + 2
		if err := setCell(f, sheet, 1, r, row.Student.FullName()); err != nil {
			return nil, err
		}
		for j, cell := range row.Cells {
			if cell.Grade == nil {
				continue
			}
			if err := setCell(f, sheet, j+2, r, cell.Grade.Score); err != nil {
				return nil, err
			}
		}
		if row.Average.Valid {
			if err := setCell(f, sheet, len(grid.Assignments)+2, r, row.Average.Float64); err != nil {
				return nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, errors.Wrap(err, "writing workbook")
	}
	return buf, nil
}

// AttendanceWorkbook renders the attendance log sorted by date then
// student. Unknown student ids fall back to the raw id.
func (svc *Service) AttendanceWorkbook(records []attendance.Record, students []roster.Student) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	sheet := "Attendance"
	f.SetSheetName("Sheet1", sheet)

	names := make(map[string]string, len(students))
	for _, s := range students {
		names[s.ID] = s.FullName()
	}

	sorted := make([]attendance.Record, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		if !sorted[i].Date.Equal(sorted[j].Date) {
			return sorted[i].Date.Before(sorted[j].Date)
		}
		return names[sorted[i].StudentID] < names[sorted[j].StudentID]
	})

	for col, h := range []interface{}{"Date", "Student", "Status"} {
		if err := setCell(f, sheet, col+1, 1, h); err != nil {
			return nil, err
		}
	}
	for i, rec := range sorted {
		r := i + 2
		name, ok := names[rec.StudentID]
		if !ok {
			name = rec.StudentID
		}
		if err := setCell(f, sheet, 1, r, rec.Date.Format("2006-01-02")); err != nil {
			return nil, err
		}
		if err := setCell(f, sheet, 2, r, name); err != nil {
			return nil, err
		}
		if err := setCell(f, sheet, 3, r, string(rec.Status)); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, errors.Wrap(err, "writing workbook")
	}
	return buf, nil
}
