package payroll

import "time"

// Demo dataset substituted when the live fetch fails. The dashboard renders
// it identically to live data.

func demoPayrolls() []CertifiedPayroll {
	week := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}
	return []CertifiedPayroll{
		{
			ID: "demo-cp-1", PayrollNumber: "CP-2026-031", ProjectID: "prj-hwy12",
			ProjectName: "Highway 12 Resurfacing", ContractNumber: "DOT-26-1148",
			WeekEnding: week(2026, time.August, 22), Status: StatusSubmitted,
			EmployeeCount: 14, TotalHours: 602, TotalGross: 31418.50,
			CreatedAt: week(2026, time.August, 24),
		},
		{
			ID: "demo-cp-2", PayrollNumber: "CP-2026-030", ProjectID: "prj-hwy12",
			ProjectName: "Highway 12 Resurfacing", ContractNumber: "DOT-26-1148",
			WeekEnding: week(2026, time.August, 15), Status: StatusAccepted,
			EmployeeCount: 13, TotalHours: 548, TotalGross: 28660.00,
			CreatedAt: week(2026, time.August, 17),
		},
		{
			ID: "demo-cp-3", PayrollNumber: "CP-2026-029", ProjectID: "prj-bridge7",
			ProjectName: "County Bridge 7 Deck Replacement", ContractNumber: "CTY-26-0092",
			WeekEnding: week(2026, time.August, 15), Status: StatusReviewed,
			EmployeeCount: 8, TotalHours: 344, TotalGross: 19821.75,
			CreatedAt: week(2026, time.August, 17),
		},
		{
			ID: "demo-cp-4", PayrollNumber: "CP-2026-028", ProjectID: "prj-bridge7",
			ProjectName: "County Bridge 7 Deck Replacement", ContractNumber: "CTY-26-0092",
			WeekEnding: week(2026, time.August, 8), Status: StatusDraft,
			EmployeeCount: 8, TotalHours: 320, TotalGross: 18210.00,
			CreatedAt: week(2026, time.August, 10),
		},
	}
}

func demoLines(payrollID string) []Line {
	return []Line{
		{
			ID: "demo-ln-1", PayrollID: payrollID, EmployeeName: "M. Reyes",
			Classification: "Operator Group 2", HoursST: 40, HoursOT: 6,
			RateST: 38.40, RateOT: 57.60, GrossPay: 1881.60, FringeBenefits: 412.00,
		},
		{
			ID: "demo-ln-2", PayrollID: payrollID, EmployeeName: "T. Nguyen",
			Classification: "Laborer Group 1", HoursST: 40, HoursOT: 0,
			RateST: 29.10, RateOT: 43.65, GrossPay: 1164.00, FringeBenefits: 298.50,
		},
		{
			ID: "demo-ln-3", PayrollID: payrollID, EmployeeName: "S. Carter",
			Classification: "Teamster", HoursST: 38, HoursOT: 2,
			RateST: 33.75, RateOT: 50.63, GrossPay: 1383.76, FringeBenefits: 344.20,
		},
	}
}
