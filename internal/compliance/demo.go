package compliance

import "time"

// Demo dataset substituted when the live fetch fails.

func demoCrew() []CrewMember {
	return []CrewMember{
		{ID: "demo-cm-1", Name: "R. Alvarez", Trade: "Truck Driver", Crew: "Paving A",
			Phone: "651-555-0142", Email: "ralvarez@example.com"},
		{ID: "demo-cm-2", Name: "J. Whitfield", Trade: "Operator", Crew: "Dirt Crew",
			Phone: "651-555-0177", Email: "jwhitfield@example.com", IsForeman: true},
		{ID: "demo-cm-3", Name: "D. Okafor", Trade: "Truck Driver", Crew: "Paving A",
			Phone: "612-555-0194", Email: "dokafor@example.com"},
		{ID: "demo-cm-4", Name: "S. Carter", Trade: "Laborer", Crew: "Dirt Crew",
			Phone: "612-555-0121", Email: "scarter@example.com"},
	}
}

func demoCertifications() []Certification {
	day := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}
	return []Certification{
		{ID: "demo-ct-1", EmployeeID: "demo-cm-1", EmployeeName: "R. Alvarez",
			Name: "DOT Medical Card", Authority: "FMCSA",
			IssuedDate: day(2025, time.September, 10), ExpiryDate: day(2027, time.September, 10)},
		{ID: "demo-ct-2", EmployeeID: "demo-cm-2", EmployeeName: "J. Whitfield",
			Name: "MSHA Part 46", Authority: "MSHA",
			IssuedDate: day(2025, time.October, 2), ExpiryDate: day(2026, time.September, 15)},
		{ID: "demo-ct-3", EmployeeID: "demo-cm-3", EmployeeName: "D. Okafor",
			Name: "DOT Medical Card", Authority: "FMCSA",
			IssuedDate: day(2024, time.July, 20), ExpiryDate: day(2026, time.July, 20)},
		{ID: "demo-ct-4", EmployeeID: "demo-cm-4", EmployeeName: "S. Carter",
			Name: "OSHA 30", Authority: "OSHA",
			IssuedDate: day(2024, time.February, 1), ExpiryDate: day(2029, time.February, 1)},
	}
}

func demoDQF() []DQFRecord {
	return []DQFRecord{
		{ID: "demo-dqf-1", DriverName: "R. Alvarez", CDLClass: "A", Status: DQFCompliant,
			MissingDocs: 0, NextDueDate: time.Date(2027, time.September, 10, 0, 0, 0, 0, time.UTC)},
		{ID: "demo-dqf-2", DriverName: "D. Okafor", CDLClass: "A", Status: DQFExpiringSoon,
			MissingDocs: 0, NextDueDate: time.Date(2026, time.September, 12, 0, 0, 0, 0, time.UTC)},
		{ID: "demo-dqf-3", DriverName: "M. Reyes", CDLClass: "B", Status: DQFIncomplete,
			MissingDocs: 2, NextDueDate: time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC)},
	}
}

func demoDQFDocuments(dqfID string) []DQFDocument {
	return []DQFDocument{
		{ID: "demo-dd-1", DQFID: dqfID, Type: "Medical Certificate", FileName: "med-cert.pdf",
			ExpiryDate: time.Date(2027, time.September, 10, 0, 0, 0, 0, time.UTC), Verified: true},
		{ID: "demo-dd-2", DQFID: dqfID, Type: "MVR", FileName: "mvr-2026.pdf",
			ExpiryDate: time.Date(2027, time.January, 5, 0, 0, 0, 0, time.UTC), Verified: true},
		{ID: "demo-dd-3", DQFID: dqfID, Type: "Road Test", FileName: "road-test.pdf",
			ExpiryDate: time.Time{}, Verified: false},
	}
}

func demoOperatorQualifications() []OperatorQualification {
	return []OperatorQualification{
		{ID: "demo-oq-1", OperatorName: "J. Whitfield", Equipment: "Excavator", Level: "Senior",
			QualifiedAt: time.Date(2022, time.April, 11, 0, 0, 0, 0, time.UTC),
			ExpiryDate:  time.Date(2027, time.April, 11, 0, 0, 0, 0, time.UTC)},
		{ID: "demo-oq-2", OperatorName: "S. Carter", Equipment: "Roller", Level: "Apprentice",
			QualifiedAt: time.Date(2026, time.May, 30, 0, 0, 0, 0, time.UTC),
			ExpiryDate:  time.Date(2027, time.May, 30, 0, 0, 0, 0, time.UTC)},
	}
}
