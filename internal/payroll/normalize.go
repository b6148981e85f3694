package payroll

// Default fallbacks for optional columns. The remote views return arbitrary
// nullable fields; every record leaving this package is fully defaulted.
const (
	unknownProject = "Unknown Project"
	unknownWorker  = "Unknown"
)

// Normalize fills deterministic defaults for every optional field.
func Normalize(p CertifiedPayroll) CertifiedPayroll {
	if p.ProjectName == "" {
		p.ProjectName = unknownProject
	}
	if p.Status == "" {
		p.Status = StatusDraft
	}
	if p.EmployeeCount < 0 {
		p.EmployeeCount = 0
	}
	if p.TotalHours < 0 {
		p.TotalHours = 0
	}
	if p.TotalGross < 0 {
		p.TotalGross = 0
	}
	return p
}

// NormalizeLine fills deterministic defaults for a payroll line.
func NormalizeLine(l Line) Line {
	if l.EmployeeName == "" {
		l.EmployeeName = unknownWorker
	}
	if l.Classification == "" {
		l.Classification = unknownWorker
	}
	return l
}
