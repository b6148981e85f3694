package fleet

import "time"

// Demo dataset substituted when the live fetch fails.

func demoEquipment() []Equipment {
	return []Equipment{
		{
			ID: "demo-eq-1", UnitNumber: "T-101", Name: "Kenworth T880 Dump",
			Category: "Dump Truck", Status: EquipStatusActive, Operator: "R. Alvarez",
			HoursMeter: 4210, UtilizationPct: 82, Location: "Highway 12 Site",
			Latitude: 44.9442, Longitude: -93.0936,
		},
		{
			ID: "demo-eq-2", UnitNumber: "T-102", Name: "Kenworth T880 Dump",
			Category: "Dump Truck", Status: EquipStatusMaintenance, Operator: "D. Okafor",
			HoursMeter: 5877, UtilizationPct: 0, Location: "Main Yard",
			Latitude: 44.8831, Longitude: -93.2289,
		},
		{
			ID: "demo-eq-3", UnitNumber: "EX-7", Name: "CAT 336 Excavator",
			Category: "Excavator", Status: EquipStatusActive, Operator: "J. Whitfield",
			HoursMeter: 3109, UtilizationPct: 91, Location: "Bridge 7 Site",
			Latitude: 45.0105, Longitude: -93.1712,
		},
		{
			ID: "demo-eq-4", UnitNumber: "RL-3", Name: "HAMM H11i Roller",
			Category: "Compaction", Status: EquipStatusIdle, Operator: "",
			HoursMeter: 1502, UtilizationPct: 34, Location: "Main Yard",
			Latitude: 44.8831, Longitude: -93.2289,
		},
	}
}

func demoFuelCards() []FuelCard {
	return []FuelCard{
		{ID: "demo-fc-1", CardNumber: "7001", AssignedTo: "R. Alvarez", Status: "active", MonthlyLimit: 2500},
		{ID: "demo-fc-2", CardNumber: "7002", AssignedTo: "D. Okafor", Status: "active", MonthlyLimit: 2500},
		{ID: "demo-fc-3", CardNumber: "7003", AssignedTo: "Yard Pool", Status: "suspended", MonthlyLimit: 1000},
	}
}

func demoFuelTransactions() []FuelTransaction {
	day := func(d int) time.Time {
		return time.Date(2026, time.August, d, 0, 0, 0, 0, time.UTC)
	}
	return []FuelTransaction{
		{ID: "demo-ft-1", CardID: "demo-fc-1", UnitNumber: "T-101", Driver: "R. Alvarez",
			Date: day(27), Gallons: 68.4, PricePerGallon: 3.89, Total: 266.08, Vendor: "Cenex #214"},
		{ID: "demo-ft-2", CardID: "demo-fc-2", UnitNumber: "T-102", Driver: "D. Okafor",
			Date: day(26), Gallons: 71.2, PricePerGallon: 3.92, Total: 279.10, Vendor: "Holiday #88"},
		{ID: "demo-ft-3", CardID: "demo-fc-1", UnitNumber: "T-101", Driver: "R. Alvarez",
			Date: day(24), Gallons: 64.0, PricePerGallon: 3.85, Total: 246.40, Vendor: "Cenex #214"},
	}
}

func demoMaintenance() []Maintenance {
	day := func(d int) time.Time {
		return time.Date(2026, time.September, d, 0, 0, 0, 0, time.UTC)
	}
	return []Maintenance{
		{ID: "demo-mt-1", UnitNumber: "T-102", Type: "repair",
			Description: "Brake chamber replacement", Status: MaintStatusInProgress,
			DueDate: day(2), Cost: 1840},
		{ID: "demo-mt-2", UnitNumber: "EX-7", Type: "service",
			Description: "500-hour hydraulic service", Status: MaintStatusScheduled,
			DueDate: day(9), Cost: 620},
		{ID: "demo-mt-3", UnitNumber: "RL-3", Type: "inspection",
			Description: "Annual DOT inspection", Status: MaintStatusOverdue,
			DueDate: day(1), Cost: 150},
	}
}

func demoMaintenanceHistory(unitNumber string) []MaintenanceRecord {
	return []MaintenanceRecord{
		{ID: "demo-mr-1", UnitNumber: unitNumber,
			CompletedAt: time.Date(2026, time.June, 14, 0, 0, 0, 0, time.UTC),
			Description: "Oil and filter change", Vendor: "Shop", Cost: 310},
		{ID: "demo-mr-2", UnitNumber: unitNumber,
			CompletedAt: time.Date(2026, time.March, 3, 0, 0, 0, 0, time.UTC),
			Description: "Tire replacement x2", Vendor: "Pomp's Tire", Cost: 1244},
	}
}

func demoInspections() []Inspection {
	return []Inspection{
		{ID: "demo-in-1", UnitNumber: "T-101",
			Date:      time.Date(2026, time.August, 25, 0, 0, 0, 0, time.UTC),
			Inspector: "K. Barnes", Passed: true, DefectCount: 0},
		{ID: "demo-in-2", UnitNumber: "T-102",
			Date:      time.Date(2026, time.August, 25, 0, 0, 0, 0, time.UTC),
			Inspector: "K. Barnes", Passed: false, DefectCount: 2,
			Notes: "Brake chamber leak, marker light out"},
	}
}
