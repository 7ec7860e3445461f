package models

// Severity classifies a validation finding. An "error" finding marks the
// overall result invalid but never blocks computation or submission.
type Severity string

const (
	SeverityOK      Severity = "ok"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// ValidationWarning is one advisory finding about a proposed route.
type ValidationWarning struct {
	Type           string   `json:"type"`
	Severity       Severity `json:"severity"`
	Message        string   `json:"message"`
	Recommendation string   `json:"recommendation,omitempty"`
}

// CheckResult is the outcome of a single validation dimension.
type CheckResult struct {
	IsValid  bool                `json:"isValid"`
	Warnings []ValidationWarning `json:"warnings"`
	Severity Severity            `json:"severity"`
}

// DuplicateResult reports routes that already cover the proposed corridor.
type DuplicateResult struct {
	IsDuplicate bool    `json:"isDuplicate"`
	Duplicates  []Route `json:"duplicates,omitempty"`
	Warning     string  `json:"warning,omitempty"`
}

// ValidationDetails keeps the per-dimension outcomes alongside the
// aggregated result.
type ValidationDetails struct {
	Duplicate DuplicateResult `json:"duplicate"`
	Pricing   CheckResult     `json:"pricing"`
	Time      CheckResult     `json:"time"`
	Distance  CheckResult     `json:"distance"`
}

// ValidationResult aggregates every advisory finding for a proposed route.
// CanProceed is always true: whether an error-severity finding gates
// submission is entirely the caller's decision.
type ValidationResult struct {
	IsValid    bool                `json:"isValid"`
	CanProceed bool                `json:"canProceed"`
	Warnings   []ValidationWarning `json:"warnings"`
	Severity   Severity            `json:"severity"`
	Details    ValidationDetails   `json:"details"`
}

// ValidationSummary is the presentation-ready partition of a result's
// warnings. It carries no business logic.
type ValidationSummary struct {
	HasErrors      bool                `json:"hasErrors"`
	HasWarnings    bool                `json:"hasWarnings"`
	ErrorCount     int                 `json:"errorCount"`
	WarningCount   int                 `json:"warningCount"`
	Errors         []ValidationWarning `json:"errors"`
	Warnings       []ValidationWarning `json:"warnings"`
	PrimaryMessage string              `json:"primaryMessage,omitempty"`
}

// TimeUnit is the unit of a delivery-time estimate.
type TimeUnit string

const (
	TimeUnitHours TimeUnit = "hours"
	TimeUnitDays  TimeUnit = "days"
)

// TimeRange is a structured delivery-time estimate, e.g. 2-3 hours.
type TimeRange struct {
	Min  float64  `json:"min"`
	Max  float64  `json:"max"`
	Unit TimeUnit `json:"unit"`
}

// Hours returns the midpoint of the range converted to hours.
func (t TimeRange) Hours() float64 {
	avg := (t.Min + t.Max) / 2
	if t.Unit == TimeUnitDays {
		return avg * 24
	}
	return avg
}

// MarketData is the external reference data a route is sanity-checked
// against. GPSDistanceKm is nil when no measured distance is available,
// in which case the distance check is skipped.
type MarketData struct {
	SuggestedPrice float64  `json:"suggestedPrice,omitempty"`
	GPSDistanceKm  *float64 `json:"gpsDistanceKm,omitempty"`
}
