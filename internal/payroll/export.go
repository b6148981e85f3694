package payroll

import (
	"io"

	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"
)

// ExportXLSX writes one payroll and its lines to an xlsx workbook at path.
func ExportXLSX(p CertifiedPayroll, lines []Line, path string) error {
	f, err := buildWorkbook(p, lines)
	if err != nil {
		return err
	}
	if err := f.Save(path); err != nil {
		return eris.Wrapf(err, "payroll: export: save %s", path)
	}
	return nil
}

// WriteXLSX streams the workbook, for HTTP download responses.
func WriteXLSX(p CertifiedPayroll, lines []Line, w io.Writer) error {
	f, err := buildWorkbook(p, lines)
	if err != nil {
		return err
	}
	return eris.Wrap(f.Write(w), "payroll: export: write")
}

func buildWorkbook(p CertifiedPayroll, lines []Line) (*xlsx.File, error) {
	f := xlsx.NewFile()
	sheet, err := f.AddSheet("Certified Payroll")
	if err != nil {
		return nil, eris.Wrap(err, "payroll: export: add sheet")
	}

	header := sheet.AddRow()
	for _, h := range []string{"Payroll #", "Project", "Contract", "Week Ending", "Status"} {
		header.AddCell().SetString(h)
	}
	meta := sheet.AddRow()
	meta.AddCell().SetString(p.PayrollNumber)
	meta.AddCell().SetString(p.ProjectName)
	meta.AddCell().SetString(p.ContractNumber)
	meta.AddCell().SetString(p.WeekEnding.Format("2006-01-02"))
	meta.AddCell().SetString(string(p.Status))

	sheet.AddRow() // spacer

	lineHeader := sheet.AddRow()
	for _, h := range []string{"Employee", "Classification", "ST Hours", "OT Hours", "ST Rate", "OT Rate", "Gross", "Fringe"} {
		lineHeader.AddCell().SetString(h)
	}

	for _, l := range lines {
		row := sheet.AddRow()
		row.AddCell().SetString(l.EmployeeName)
		row.AddCell().SetString(l.Classification)
		row.AddCell().SetFloatWithFormat(l.HoursST, "0.0")
		row.AddCell().SetFloatWithFormat(l.HoursOT, "0.0")
		row.AddCell().SetFloatWithFormat(l.RateST, "0.00")
		row.AddCell().SetFloatWithFormat(l.RateOT, "0.00")
		row.AddCell().SetFloatWithFormat(l.GrossPay, "0.00")
		row.AddCell().SetFloatWithFormat(l.FringeBenefits, "0.00")
	}

	return f, nil
}
