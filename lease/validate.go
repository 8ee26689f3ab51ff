package lease

// =============================================================================
// VALIDATION - Fail fast, no partial results
// =============================================================================

// Validate checks Terms and Reading before projection. Date checks run
// first: a start date strictly after the as-of date reports
// FutureLeaseError even though the not-started predicate also holds.
func Validate(terms Terms, reading Reading) error {
	if terms.StartDate.IsZero() {
		return &InvalidParameterError{Field: "start_date", Reason: "required"}
	}
	if reading.AsOf.IsZero() {
		return &InvalidParameterError{Field: "as_of", Reason: "required"}
	}
	if terms.StartDate.After(reading.AsOf) {
		return &FutureLeaseError{StartDate: terms.StartDate, AsOf: reading.AsOf}
	}
	if DaysBetween(terms.StartDate, reading.AsOf) <= 0 {
		return &NotStartedError{StartDate: terms.StartDate, AsOf: reading.AsOf}
	}
	if terms.DurationYears < 1 {
		return &InvalidParameterError{Field: "duration_years", Reason: "must be a positive whole number of years"}
	}
	if !terms.AnnualAllowance.IsPositive() {
		return &InvalidParameterError{Field: "annual_allowance", Reason: "must be positive"}
	}
	if reading.Miles.IsNegative() {
		return &InvalidParameterError{Field: "current_miles", Reason: "must be non-negative"}
	}
	if terms.ExtraMilePrice.IsNegative() {
		return &InvalidParameterError{Field: "extra_mile_price", Reason: "must be non-negative"}
	}
	return nil
}
