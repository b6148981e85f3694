package fleet

// The fleet views alias and null columns freely (equipment_status vs
// status, missing operators). Every record leaving this package is fully
// defaulted.

// NormalizeEquipment fills deterministic defaults for an equipment record.
func NormalizeEquipment(e Equipment) Equipment {
	if e.Name == "" {
		e.Name = e.UnitNumber
	}
	if e.Category == "" {
		e.Category = "Uncategorized"
	}
	if e.Status == "" {
		e.Status = EquipStatusIdle
	}
	if e.Operator == "" {
		e.Operator = "Unassigned"
	}
	if e.Location == "" {
		e.Location = "Unknown"
	}
	if e.UtilizationPct < 0 {
		e.UtilizationPct = 0
	}
	if e.UtilizationPct > 100 {
		e.UtilizationPct = 100
	}
	return e
}

// NormalizeFuelTransaction fills defaults and recomputes a missing total.
func NormalizeFuelTransaction(t FuelTransaction) FuelTransaction {
	if t.Driver == "" {
		t.Driver = "Unknown"
	}
	if t.Vendor == "" {
		t.Vendor = "Unknown"
	}
	if t.Total == 0 && t.Gallons > 0 {
		t.Total = t.Gallons * t.PricePerGallon
	}
	return t
}

// NormalizeMaintenance fills defaults for a maintenance work item.
func NormalizeMaintenance(m Maintenance) Maintenance {
	if m.Type == "" {
		m.Type = "service"
	}
	if m.Status == "" {
		m.Status = MaintStatusScheduled
	}
	return m
}
