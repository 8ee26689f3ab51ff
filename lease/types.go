/*
Package lease provides the mileage projection engine for fixed-term,
mileage-limited vehicle leases.

PURPOSE:
  Given the lease contract (start date, duration, annual mileage allowance,
  price per extra mile) and a single odometer reading taken partway through
  the term, the engine answers: is the driver on pace to exceed the
  allowance, by how many miles, and at what cost — and what daily pace
  would bring the lease in exactly at the limit.

KEY CONCEPTS IN THIS FILE (types.go):
  - Amount: A quantity with a unit (miles, miles/day, dollars)
  - Terms: The immutable lease contract parameters
  - Reading: A single odometer observation with its as-of date
  - Projection: The computed result, never mutated after construction
  - PaceStatus: OVER/UNDER classification of the pace to date

DESIGN PRINCIPLES:
  1. Immutability: Terms, Reading, and Projection are values; a new input
     produces a wholly new Projection rather than patching the old one
  2. Precision: Uses decimal.Decimal to avoid floating-point errors in
     rates and currency
  3. Purity: Every derived quantity is a function of Terms + Reading; the
     engine holds no state and is safe to call concurrently

USAGE:
  terms := lease.Terms{
      StartDate:       lease.NewDate(2024, time.August, 4),
      DurationYears:   3,
      AnnualAllowance: lease.NewAmount(10000, lease.UnitMiles),
      ExtraMilePrice:  lease.NewAmount(0.25, lease.UnitDollars),
  }
  reading := lease.Reading{
      Miles: lease.NewAmount(1060, lease.UnitMiles),
      AsOf:  lease.NewDate(2024, time.August, 10),
  }
  p, err := lease.Project(terms, reading)

SEE ALSO:
  - projection.go: The computation itself
  - validate.go: Input validation and the error taxonomy
  - chart.go: Named (date, miles) series for rendering
*/
package lease

import (
	"github.com/shopspring/decimal"
)

// =============================================================================
// AMOUNT - Quantity with unit
// =============================================================================

type Amount struct {
	Value decimal.Decimal
	Unit  Unit
}

type Unit string

const (
	UnitMiles       Unit = "miles"
	UnitMilesPerDay Unit = "miles/day"
	UnitDollars     Unit = "usd"
)

func NewAmount(value float64, unit Unit) Amount {
	return Amount{Value: decimal.NewFromFloat(value), Unit: unit}
}

func NewAmountFromInt(value int, unit Unit) Amount {
	return Amount{Value: decimal.NewFromInt(int64(value)), Unit: unit}
}

func (a Amount) Add(b Amount) Amount          { return Amount{Value: a.Value.Add(b.Value), Unit: a.Unit} }
func (a Amount) Sub(b Amount) Amount          { return Amount{Value: a.Value.Sub(b.Value), Unit: a.Unit} }
func (a Amount) Mul(s decimal.Decimal) Amount { return Amount{Value: a.Value.Mul(s), Unit: a.Unit} }
func (a Amount) Neg() Amount                  { return Amount{Value: a.Value.Neg(), Unit: a.Unit} }
func (a Amount) IsNegative() bool             { return a.Value.IsNegative() }
func (a Amount) IsZero() bool                 { return a.Value.IsZero() }
func (a Amount) IsPositive() bool             { return a.Value.IsPositive() }
func (a Amount) GreaterThan(b Amount) bool    { return a.Value.GreaterThan(b.Value) }
func (a Amount) LessThan(b Amount) bool       { return a.Value.LessThan(b.Value) }

// =============================================================================
// TERMS - The lease contract
// =============================================================================

// Terms holds the contract parameters. Constructed once per calculation
// and never mutated; all lease-level quantities derive from these four
// fields plus the calendar.
type Terms struct {
	StartDate       Date
	DurationYears   int    // whole lease-years, >= 1
	AnnualAllowance Amount // miles permitted per lease-year
	ExtraMilePrice  Amount // dollars per mile over the total allowance
}

// EndDate is the start date advanced by the full duration in calendar
// years. See Date.AddYears for the Feb 29 policy.
func (t Terms) EndDate() Date {
	return t.StartDate.AddYears(t.DurationYears)
}

// TotalAllowance is the mileage budget for the whole term.
func (t Terms) TotalAllowance() Amount {
	return t.AnnualAllowance.Mul(decimal.NewFromInt(int64(t.DurationYears)))
}

// TotalDays is the term length in whole days. Always positive for a
// valid duration.
func (t Terms) TotalDays() int {
	return DaysBetween(t.StartDate, t.EndDate())
}

// =============================================================================
// READING - One odometer observation
// =============================================================================

// Reading is a cumulative odometer value and the date it was taken.
type Reading struct {
	Miles Amount // cumulative miles since lease start
	AsOf  Date   // the date the reading is considered current ("today")
}

// =============================================================================
// PACE STATUS
// =============================================================================

type PaceStatus string

const (
	PaceOver  PaceStatus = "over"
	PaceUnder PaceStatus = "under"
)

// =============================================================================
// PROJECTION - Computed result
// =============================================================================

// Projection is the full derived picture of the lease as of the reading
// date. All fields are computed in Project and never mutated afterwards.
type Projection struct {
	AsOf    Date
	EndDate Date

	DaysElapsed   int // whole days from start to as-of, always > 0
	TotalDays     int // whole days from start to end, always > 0
	RemainingDays int // TotalDays - DaysElapsed, may be zero

	TotalAllowance Amount // miles for the full term
	DailyAllowance Amount // miles/day the allowance permits
	ExpectedToDate Amount // miles the allowance pace would have used by as-of
	DeltaToDate    Amount // miles; reading minus expected, sign drives Status

	// Status is PaceOver when DeltaToDate is strictly positive. A delta of
	// exactly zero counts as PaceUnder: on pace is within the allowance.
	Status PaceStatus

	DailyActual  Amount          // miles/day observed so far
	AnnualPace   Amount          // observed pace annualized over 365.25 days
	YearsElapsed decimal.Decimal // DaysElapsed / 365.25, for display

	ProjectedEndMiles Amount // observed pace extrapolated to the full term
	OverageMiles      Amount // miles past the allowance at term end, >= 0
	OverageCost       Amount // dollars; OverageMiles * ExtraMilePrice
	SlackMiles        Amount // miles under the allowance at term end, >= 0

	// RecommendedDailyRate is the pace that finishes exactly at the
	// allowance when a projected overage exists; otherwise the extra
	// miles/day still available on top of the current pace. Nil when the
	// lease ends today: no days remain to adjust.
	RecommendedDailyRate *Amount

	// RateAdjustment is the signed change to the daily pace: positive
	// means cut back by this much to land at the limit, negative means
	// this much headroom per day remains. Nil whenever
	// RecommendedDailyRate is nil.
	RateAdjustment *Amount
}
