/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. These types decouple
  the engine's decimal-valued domain model from the external API contract:
  requests arrive as plain JSON numbers and ISO dates, responses carry
  floats with unit-suffixed field names.

NAMING CONVENTION:
  - *Request: Request body types from clients
  - *DTO: Response types returned to clients
  - *Response: Complex response wrappers

UNITS:
  Field names carry the unit where it is not obvious:
  miles, miles/day (rate fields), usd (cost fields), whole days.

ERROR CONTRACT:
  ErrorResponse carries a stable machine-readable Code so clients match
  on kind (future_lease, not_started, invalid_parameter) instead of
  parsing the human-readable message.

SEE ALSO:
  - handlers.go: Uses these types
  - lease/types.go: The domain model these mirror
*/
package api

import (
	"github.com/lucasw9999/carleasetracker/lease"
)

// =============================================================================
// REQUEST TYPES
// =============================================================================

// ProjectionRequest carries one lease calculation's inputs.
type ProjectionRequest struct {
	StartDate       string  `json:"start_date"`       // "2006-01-02"
	DurationYears   int     `json:"duration_years"`   // whole years, >= 1
	AnnualAllowance float64 `json:"annual_allowance"` // miles per lease-year
	CurrentMiles    float64 `json:"current_miles"`    // cumulative odometer miles
	ExtraMilePrice  float64 `json:"extra_mile_price"` // usd per mile over
	AsOf            string  `json:"as_of,omitempty"`  // "2006-01-02", defaults to today
}

// toDomain parses the request into engine inputs. Date-format failures
// come back as InvalidParameterError so the handler maps them like any
// other domain violation.
func (r ProjectionRequest) toDomain() (lease.Terms, lease.Reading, error) {
	start, err := lease.ParseDate(r.StartDate)
	if err != nil {
		return lease.Terms{}, lease.Reading{}, &lease.InvalidParameterError{
			Field: "start_date", Reason: "must be an ISO date (2006-01-02)",
		}
	}

	asOf := lease.Today()
	if r.AsOf != "" {
		asOf, err = lease.ParseDate(r.AsOf)
		if err != nil {
			return lease.Terms{}, lease.Reading{}, &lease.InvalidParameterError{
				Field: "as_of", Reason: "must be an ISO date (2006-01-02)",
			}
		}
	}

	terms := lease.Terms{
		StartDate:       start,
		DurationYears:   r.DurationYears,
		AnnualAllowance: lease.NewAmount(r.AnnualAllowance, lease.UnitMiles),
		ExtraMilePrice:  lease.NewAmount(r.ExtraMilePrice, lease.UnitDollars),
	}
	reading := lease.Reading{
		Miles: lease.NewAmount(r.CurrentMiles, lease.UnitMiles),
		AsOf:  asOf,
	}
	return terms, reading, nil
}

// =============================================================================
// RESPONSE TYPES
// =============================================================================

// ProjectionDTO mirrors lease.Projection with JSON-friendly values.
type ProjectionDTO struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	AsOf      string `json:"as_of"`

	DaysElapsed   int     `json:"days_elapsed"`
	TotalDays     int     `json:"total_days"`
	RemainingDays int     `json:"remaining_days"`
	YearsElapsed  float64 `json:"years_elapsed"`

	CurrentMiles        float64 `json:"current_miles"`
	TotalAllowanceMiles float64 `json:"total_allowance_miles"`
	DailyAllowanceRate  float64 `json:"daily_allowance_rate"` // miles/day
	ExpectedMilesToDate float64 `json:"expected_miles_to_date"`
	DeltaMilesToDate    float64 `json:"delta_miles_to_date"`
	Status              string  `json:"status"` // "over" | "under"

	DailyActualRate     float64 `json:"daily_actual_rate"` // miles/day
	AnnualizedPaceMiles float64 `json:"annualized_pace_miles"`

	ProjectedEndMiles float64 `json:"projected_end_miles"`
	OverageMiles      float64 `json:"overage_miles"`
	OverageCostUSD    float64 `json:"overage_cost_usd"`
	SlackMiles        float64 `json:"slack_miles"`

	// Absent (not zero) when the lease ends on the as-of date.
	RecommendedDailyRate *float64 `json:"recommended_daily_rate,omitempty"` // miles/day
	RateAdjustment       *float64 `json:"rate_adjustment,omitempty"`        // miles/day, + = cut back
}

// PointDTO is one chart coordinate.
type PointDTO struct {
	Date  string  `json:"date"`
	Miles float64 `json:"miles"`
}

// SeriesDTO is one named chart series with its semantic role.
type SeriesDTO struct {
	Name      string     `json:"name"`
	Role      string     `json:"role"` // allowance | actual | projected | limit | marker
	OverLimit bool       `json:"over_limit,omitempty"`
	Points    []PointDTO `json:"points"`
}

// ProjectionResponse is the full calculation result: the metrics panel
// data plus the chart series.
type ProjectionResponse struct {
	Projection ProjectionDTO `json:"projection"`
	Series     []SeriesDTO   `json:"series"`
}

// OptionsDTO lists the input form's enumerated choices and defaults.
type OptionsDTO struct {
	DurationYears         []int     `json:"duration_years"`
	AnnualAllowances      []float64 `json:"annual_allowances"`
	DefaultExtraMilePrice float64   `json:"default_extra_mile_price"`
}

// ErrorResponse is returned for any failed request.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

// =============================================================================
// DOMAIN -> DTO CONVERSION
// =============================================================================

func toProjectionDTO(terms lease.Terms, reading lease.Reading, p *lease.Projection) ProjectionDTO {
	dto := ProjectionDTO{
		StartDate: terms.StartDate.String(),
		EndDate:   p.EndDate.String(),
		AsOf:      p.AsOf.String(),

		DaysElapsed:   p.DaysElapsed,
		TotalDays:     p.TotalDays,
		RemainingDays: p.RemainingDays,
		YearsElapsed:  p.YearsElapsed.InexactFloat64(),

		CurrentMiles:        reading.Miles.Value.InexactFloat64(),
		TotalAllowanceMiles: p.TotalAllowance.Value.InexactFloat64(),
		DailyAllowanceRate:  p.DailyAllowance.Value.InexactFloat64(),
		ExpectedMilesToDate: p.ExpectedToDate.Value.InexactFloat64(),
		DeltaMilesToDate:    p.DeltaToDate.Value.InexactFloat64(),
		Status:              string(p.Status),

		DailyActualRate:     p.DailyActual.Value.InexactFloat64(),
		AnnualizedPaceMiles: p.AnnualPace.Value.InexactFloat64(),

		ProjectedEndMiles: p.ProjectedEndMiles.Value.InexactFloat64(),
		OverageMiles:      p.OverageMiles.Value.InexactFloat64(),
		OverageCostUSD:    p.OverageCost.Value.InexactFloat64(),
		SlackMiles:        p.SlackMiles.Value.InexactFloat64(),
	}

	if p.RecommendedDailyRate != nil {
		rec := p.RecommendedDailyRate.Value.InexactFloat64()
		dto.RecommendedDailyRate = &rec
	}
	if p.RateAdjustment != nil {
		adj := p.RateAdjustment.Value.InexactFloat64()
		dto.RateAdjustment = &adj
	}
	return dto
}

func toSeriesDTOs(series []lease.Series) []SeriesDTO {
	dtos := make([]SeriesDTO, len(series))
	for i, s := range series {
		points := make([]PointDTO, len(s.Points))
		for j, pt := range s.Points {
			points[j] = PointDTO{Date: pt.Date.String(), Miles: pt.Miles.InexactFloat64()}
		}
		dtos[i] = SeriesDTO{
			Name:      s.Name,
			Role:      string(s.Role),
			OverLimit: s.OverLimit,
			Points:    points,
		}
	}
	return dtos
}
