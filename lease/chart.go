/*
chart.go - Renderer data contract

PURPOSE:
  Derives named (date, cumulative-miles) series from a Projection for an
  external chart renderer. The builder emits fixed points only: no
  resampling, smoothing, or interpolation. Drawing continuous lines
  between points is the renderer's job.

SERIES:
  allowance      one point per day, the contract's straight line
  actual         (start, 0) -> (as-of, reading)
  projected      (as-of, reading) -> (end, projected end miles)
  limit          the total allowance as a flat ceiling line
  markers        today/actual, today/expected, end/projected, each a
                 single point tagged with an over-limit flag so the
                 renderer can style without re-deriving meaning

SEE ALSO:
  - projection.go: Produces the Projection this consumes
*/
package lease

import "github.com/shopspring/decimal"

// =============================================================================
// SERIES TYPES
// =============================================================================

// SeriesRole tags a series with its semantic meaning so renderers style
// by role rather than by name.
type SeriesRole string

const (
	RoleAllowance SeriesRole = "allowance"
	RoleActual    SeriesRole = "actual"
	RoleProjected SeriesRole = "projected"
	RoleLimit     SeriesRole = "limit"
	RoleMarker    SeriesRole = "marker"
)

// Point is one chart coordinate: a calendar day and a cumulative mileage.
type Point struct {
	Date  Date
	Miles decimal.Decimal
}

// Series is an ordered, named sequence of points. OverLimit is meaningful
// for markers only: it tells the renderer to use the over-allowance style
// for that point.
type Series struct {
	Name      string
	Role      SeriesRole
	OverLimit bool
	Points    []Point
}

// Well-known series names.
const (
	SeriesAllowance     = "allowance"
	SeriesActual        = "actual"
	SeriesProjected     = "projected"
	SeriesLimit         = "limit"
	MarkerTodayActual   = "today_actual"
	MarkerTodayExpected = "today_expected"
	MarkerEndProjected  = "end_projected"
)

// =============================================================================
// BUILDER
// =============================================================================

// BuildSeries derives the renderer series from a computed Projection.
// The slice order is fixed and deterministic: lines first, then markers.
func BuildSeries(terms Terms, reading Reading, p *Projection) []Series {
	allowance := Series{
		Name:   SeriesAllowance,
		Role:   RoleAllowance,
		Points: make([]Point, 0, p.TotalDays+1),
	}
	for day := 0; day <= p.TotalDays; day++ {
		allowance.Points = append(allowance.Points, Point{
			Date:  terms.StartDate.AddDays(day),
			Miles: p.DailyAllowance.Value.Mul(decimal.NewFromInt(int64(day))),
		})
	}

	actual := Series{
		Name: SeriesActual,
		Role: RoleActual,
		Points: []Point{
			{Date: terms.StartDate, Miles: decimal.Zero},
			{Date: reading.AsOf, Miles: reading.Miles.Value},
		},
	}

	projected := Series{
		Name: SeriesProjected,
		Role: RoleProjected,
		Points: []Point{
			{Date: reading.AsOf, Miles: reading.Miles.Value},
			{Date: p.EndDate, Miles: p.ProjectedEndMiles.Value},
		},
	}

	limit := Series{
		Name: SeriesLimit,
		Role: RoleLimit,
		Points: []Point{
			{Date: terms.StartDate, Miles: p.TotalAllowance.Value},
			{Date: p.EndDate, Miles: p.TotalAllowance.Value},
		},
	}

	overAtEnd := p.OverageMiles.IsPositive()

	todayActual := marker(MarkerTodayActual, reading.AsOf, reading.Miles.Value, p.Status == PaceOver)
	// The expected point is the benchmark itself; it is never styled over.
	todayExpected := marker(MarkerTodayExpected, reading.AsOf, p.ExpectedToDate.Value, false)
	endProjected := marker(MarkerEndProjected, p.EndDate, p.ProjectedEndMiles.Value, overAtEnd)

	return []Series{allowance, actual, projected, limit, todayActual, todayExpected, endProjected}
}

func marker(name string, at Date, miles decimal.Decimal, over bool) Series {
	return Series{
		Name:      name,
		Role:      RoleMarker,
		OverLimit: over,
		Points:    []Point{{Date: at, Miles: miles}},
	}
}
