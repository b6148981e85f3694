package compliance

import (
	"time"

	"github.com/caprock-civil/backoffice-cli/internal/query"
)

// expiringWindow is how far ahead a certification counts as expiring soon.
const expiringWindow = 30 * 24 * time.Hour

// Summary feeds the compliance KPI cards. Computed over the full unfiltered
// collections.
type Summary struct {
	Drivers        int            `json:"drivers"`
	DQFByStatus    map[string]int `json:"dqf_by_status"`
	CompliancePct  float64        `json:"compliance_pct"`
	Certifications int            `json:"certifications"`
	ExpiringSoon   int            `json:"expiring_soon"`
	Expired        int            `json:"expired"`
}

// Summarize reduces the compliance lists into the KPI summary as of now.
// Safe on empty input: zero counts and 0%, never NaN.
func Summarize(dqf []DQFRecord, certs []Certification, now time.Time) Summary {
	byStatus := query.CountBy(dqf, func(r DQFRecord) string { return r.Status })

	expiring, expired := 0, 0
	for _, c := range certs {
		switch {
		case c.ExpiryDate.Before(now):
			expired++
		case c.ExpiryDate.Before(now.Add(expiringWindow)):
			expiring++
		}
	}

	return Summary{
		Drivers:        len(dqf),
		DQFByStatus:    byStatus,
		CompliancePct:  query.Percent(byStatus[DQFCompliant], len(dqf)),
		Certifications: len(certs),
		ExpiringSoon:   expiring,
		Expired:        expired,
	}
}

// CrewTextFields returns the crew fields searched by the free-text query.
func CrewTextFields(m CrewMember) []string {
	return []string{m.Name, m.Trade, m.Crew, m.Email}
}

// CrewCategoryFields returns the crew categorical filter values.
func CrewCategoryFields(m CrewMember) map[string]string {
	return map[string]string{"trade": m.Trade, "crew": m.Crew}
}

// DQFTextFields returns the DQF fields searched by the free-text query.
func DQFTextFields(r DQFRecord) []string {
	return []string{r.DriverName, r.CDLClass}
}

// DQFCategoryFields returns the DQF categorical filter values.
func DQFCategoryFields(r DQFRecord) map[string]string {
	return map[string]string{"status": r.Status}
}
