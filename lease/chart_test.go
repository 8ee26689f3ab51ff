package lease_test

import (
	"testing"
	"time"

	"github.com/lucasw9999/carleasetracker/lease"
	"github.com/shopspring/decimal"
)

func buildTestSeries(t *testing.T, terms lease.Terms, reading lease.Reading) map[string]lease.Series {
	t.Helper()
	p := mustProject(t, terms, reading)
	byName := make(map[string]lease.Series)
	for _, s := range lease.BuildSeries(terms, reading, p) {
		byName[s.Name] = s
	}
	return byName
}

func TestBuildSeries_AllowanceLine(t *testing.T) {
	terms := twoYearTerms() // 730 days, 20 miles/day exactly
	reading := lease.Reading{Miles: miles(100), AsOf: d(2025, time.January, 11)}

	s, ok := buildTestSeries(t, terms, reading)[lease.SeriesAllowance]
	if !ok {
		t.Fatal("allowance series missing")
	}
	if s.Role != lease.RoleAllowance {
		t.Errorf("Role = %s, want allowance", s.Role)
	}
	if len(s.Points) != 731 {
		t.Fatalf("allowance has %d points, want one per day (731)", len(s.Points))
	}

	first, last := s.Points[0], s.Points[len(s.Points)-1]
	if !first.Date.Equal(terms.StartDate) || !first.Miles.IsZero() {
		t.Errorf("first point = (%s, %s), want (start, 0)", first.Date, first.Miles)
	}
	if !last.Date.Equal(terms.EndDate()) {
		t.Errorf("last point date = %s, want end date %s", last.Date, terms.EndDate())
	}
	if !last.Miles.Equal(decimal.NewFromInt(14600)) {
		t.Errorf("last point miles = %s, want the total allowance 14600", last.Miles)
	}

	// Straight line: day 100 sits at 100 * daily rate.
	p100 := s.Points[100]
	if !p100.Miles.Equal(decimal.NewFromInt(2000)) {
		t.Errorf("day 100 = %s miles, want 2000", p100.Miles)
	}
}

func TestBuildSeries_ActualAndProjectedShareTheReadingPoint(t *testing.T) {
	terms := twoYearTerms()
	reading := lease.Reading{Miles: miles(100), AsOf: d(2025, time.January, 11)}
	byName := buildTestSeries(t, terms, reading)

	actual := byName[lease.SeriesActual]
	projected := byName[lease.SeriesProjected]

	if len(actual.Points) != 2 || len(projected.Points) != 2 {
		t.Fatalf("actual/projected have %d/%d points, want 2 each", len(actual.Points), len(projected.Points))
	}
	if !actual.Points[0].Date.Equal(terms.StartDate) || !actual.Points[0].Miles.IsZero() {
		t.Error("actual should start at (start, 0)")
	}

	joint := actual.Points[1]
	if !joint.Date.Equal(reading.AsOf) || !joint.Miles.Equal(reading.Miles.Value) {
		t.Errorf("actual ends at (%s, %s), want the reading", joint.Date, joint.Miles)
	}
	if !projected.Points[0].Date.Equal(joint.Date) || !projected.Points[0].Miles.Equal(joint.Miles) {
		t.Error("projected should begin exactly where actual ends")
	}
	if !projected.Points[1].Date.Equal(terms.EndDate()) {
		t.Errorf("projected ends at %s, want end date", projected.Points[1].Date)
	}
}

func TestBuildSeries_LimitIsFlat(t *testing.T) {
	terms := twoYearTerms()
	reading := lease.Reading{Miles: miles(100), AsOf: d(2025, time.January, 11)}

	s := buildTestSeries(t, terms, reading)[lease.SeriesLimit]
	if s.Role != lease.RoleLimit {
		t.Fatalf("Role = %s, want limit", s.Role)
	}
	if len(s.Points) != 2 {
		t.Fatalf("limit has %d points, want 2", len(s.Points))
	}
	if !s.Points[0].Miles.Equal(s.Points[1].Miles) {
		t.Error("limit line should be flat")
	}
	if !s.Points[0].Miles.Equal(decimal.NewFromInt(14600)) {
		t.Errorf("limit = %s, want total allowance 14600", s.Points[0].Miles)
	}
}

func TestBuildSeries_MarkerFlags_OverPace(t *testing.T) {
	terms := twoYearTerms()
	// 40/day against a 20/day allowance: over today, over at end.
	reading := lease.Reading{Miles: miles(400), AsOf: d(2025, time.January, 11)}
	byName := buildTestSeries(t, terms, reading)

	for name, wantOver := range map[string]bool{
		lease.MarkerTodayActual:   true,
		lease.MarkerTodayExpected: false,
		lease.MarkerEndProjected:  true,
	} {
		m, ok := byName[name]
		if !ok {
			t.Fatalf("marker %s missing", name)
		}
		if m.Role != lease.RoleMarker {
			t.Errorf("%s role = %s, want marker", name, m.Role)
		}
		if len(m.Points) != 1 {
			t.Errorf("%s has %d points, want 1", name, len(m.Points))
		}
		if m.OverLimit != wantOver {
			t.Errorf("%s OverLimit = %v, want %v", name, m.OverLimit, wantOver)
		}
	}
}

func TestBuildSeries_MarkerFlags_UnderPace(t *testing.T) {
	terms := twoYearTerms()
	reading := lease.Reading{Miles: miles(100), AsOf: d(2025, time.January, 11)}
	byName := buildTestSeries(t, terms, reading)

	if byName[lease.MarkerTodayActual].OverLimit {
		t.Error("today marker flagged over while under pace")
	}
	if byName[lease.MarkerEndProjected].OverLimit {
		t.Error("end marker flagged over while projected under the allowance")
	}
}

func TestBuildSeries_MarkerValues(t *testing.T) {
	terms := twoYearTerms()
	reading := lease.Reading{Miles: miles(400), AsOf: d(2025, time.January, 11)}
	p := mustProject(t, terms, reading)

	byName := make(map[string]lease.Series)
	for _, s := range lease.BuildSeries(terms, reading, p) {
		byName[s.Name] = s
	}

	today := byName[lease.MarkerTodayActual].Points[0]
	if !today.Miles.Equal(reading.Miles.Value) {
		t.Errorf("today marker = %s, want the reading", today.Miles)
	}
	expected := byName[lease.MarkerTodayExpected].Points[0]
	if !expected.Miles.Equal(p.ExpectedToDate.Value) {
		t.Errorf("expected marker = %s, want %s", expected.Miles, p.ExpectedToDate.Value)
	}
	end := byName[lease.MarkerEndProjected].Points[0]
	if !end.Miles.Equal(p.ProjectedEndMiles.Value) || !end.Date.Equal(p.EndDate) {
		t.Errorf("end marker = (%s, %s), want projected end", end.Date, end.Miles)
	}
}
