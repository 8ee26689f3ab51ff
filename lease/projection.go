/*
projection.go - The mileage projection computation

PURPOSE:
  Converts (Terms, Reading) into a Projection: pace to date, forward
  extrapolation, overage and its cost, and the recommended daily-rate
  adjustment. Pure, deterministic, no I/O.

KEY INSIGHT:
  Three distinct daily rates are in play and must never be conflated:

  DailyAllowance:  what the contract permits per day
                   (total allowance / total term days)
  DailyActual:     what the driver has used per day so far
                   (odometer reading / elapsed days)
  Recommended:     what the driver should drive per day from here on
                   (miles left under the allowance / days remaining)

  Substituting one for another produces a plausible-looking but wrong
  overage estimate, so each is a named, independently computed field.

COMPUTATION ORDER:
  Each derived field depends only on earlier fields and the inputs, so a
  single pass suffices:
    day counts -> allowance rate -> expected-to-date -> delta/status
    -> actual rate -> projected end -> overage/cost -> recommendation

EDGE CASES:
  - RemainingDays == 0 (lease ends today): the recommendation is
    undefined, not an error. RecommendedDailyRate and RateAdjustment are
    nil instead of dividing by zero.
  - Already past the allowance (reading > total allowance): the
    recommended rate goes negative and is reported as computed; the
    caller decides how to present an impossible target.

SEE ALSO:
  - validate.go: Runs first; a validation failure yields no Projection
  - chart.go: Derives renderer series from the Projection
*/
package lease

import "github.com/shopspring/decimal"

// daysPerYear is the civil-year average used to annualize the observed
// pace and to express elapsed days in years.
var daysPerYear = decimal.NewFromFloat(365.25)

// Project computes the full Projection for one odometer reading. It
// returns a validation error and no partial result when the inputs are
// outside their domain or the lease has not begun by reading.AsOf.
func Project(terms Terms, reading Reading) (*Projection, error) {
	if err := Validate(terms, reading); err != nil {
		return nil, err
	}

	totalDays := terms.TotalDays()
	daysElapsed := DaysBetween(terms.StartDate, reading.AsOf)
	remainingDays := totalDays - daysElapsed

	dTotal := decimal.NewFromInt(int64(totalDays))
	dElapsed := decimal.NewFromInt(int64(daysElapsed))

	totalAllowance := terms.TotalAllowance()
	dailyAllowance := totalAllowance.Value.Div(dTotal)
	expectedToDate := dailyAllowance.Mul(dElapsed)
	delta := reading.Miles.Value.Sub(expectedToDate)

	// Exactly on pace counts as under: the tie-break is that zero delta
	// is within the allowance.
	status := PaceUnder
	if delta.GreaterThan(decimal.Zero) {
		status = PaceOver
	}

	dailyActual := reading.Miles.Value.Div(dElapsed)
	projectedEnd := dailyActual.Mul(dTotal)
	overage := decimal.Max(decimal.Zero, projectedEnd.Sub(totalAllowance.Value))
	overageCost := overage.Mul(terms.ExtraMilePrice.Value)
	slack := decimal.Max(decimal.Zero, totalAllowance.Value.Sub(projectedEnd))

	p := &Projection{
		AsOf:    reading.AsOf,
		EndDate: terms.EndDate(),

		DaysElapsed:   daysElapsed,
		TotalDays:     totalDays,
		RemainingDays: remainingDays,

		TotalAllowance: totalAllowance,
		DailyAllowance: Amount{Value: dailyAllowance, Unit: UnitMilesPerDay},
		ExpectedToDate: Amount{Value: expectedToDate, Unit: UnitMiles},
		DeltaToDate:    Amount{Value: delta, Unit: UnitMiles},
		Status:         status,

		DailyActual:  Amount{Value: dailyActual, Unit: UnitMilesPerDay},
		AnnualPace:   Amount{Value: dailyActual.Mul(daysPerYear), Unit: UnitMiles},
		YearsElapsed: dElapsed.Div(daysPerYear),

		ProjectedEndMiles: Amount{Value: projectedEnd, Unit: UnitMiles},
		OverageMiles:      Amount{Value: overage, Unit: UnitMiles},
		OverageCost:       Amount{Value: overageCost, Unit: UnitDollars},
		SlackMiles:        Amount{Value: slack, Unit: UnitMiles},
	}

	if remainingDays > 0 {
		dRemaining := decimal.NewFromInt(int64(remainingDays))
		var recommended decimal.Decimal
		var adjustment decimal.Decimal
		if overage.GreaterThan(decimal.Zero) {
			// Ceiling pace: finish exactly at the limit from here.
			recommended = totalAllowance.Value.Sub(reading.Miles.Value).Div(dRemaining)
			adjustment = dailyActual.Sub(recommended)
		} else {
			// Slack pace: extra miles/day available on top of the
			// current pace while still landing under the limit.
			recommended = totalAllowance.Value.Sub(projectedEnd).Div(dRemaining)
			adjustment = recommended.Neg()
		}
		p.RecommendedDailyRate = &Amount{Value: recommended, Unit: UnitMilesPerDay}
		p.RateAdjustment = &Amount{Value: adjustment, Unit: UnitMilesPerDay}
	}

	return p, nil
}
