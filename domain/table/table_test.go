package table

import (
	"testing"
)

func TestCellEquality(t *testing.T) {
	if !NewTextCell("France").Equal(NewTextCell("France")) {
		t.Error("equal text cells should compare equal")
	}
	if NewTextCell("France").Equal(NewTextCell("france")) {
		t.Error("text cell comparison should be case-sensitive")
	}
	if !NewNumericCell(81.5).Equal(NewNumericCell(81.5)) {
		t.Error("equal numeric cells should compare equal")
	}
	if NewNumericCell(81.5).Equal(NewIntegerCell(81)) {
		t.Error("numeric and integer cells should not compare equal")
	}
	if !NewMissingCell().Equal(NewMissingCell()) {
		t.Error("missing cells should compare equal")
	}
	if NewTextCell("").Equal(NewTextCell("x")) {
		t.Error("empty text becomes missing and must not equal text")
	}
}

func TestEmptyTextBecomesMissing(t *testing.T) {
	cell := NewTextCell("")
	if !cell.IsMissing {
		t.Fatal("empty string should produce a missing cell")
	}
	if cell.Type != CellTypeMissing {
		t.Errorf("expected missing type, got %s", cell.Type)
	}
}

func TestDropNullRows(t *testing.T) {
	tbl := New([]string{"country", "life expectancy"})
	tbl.Rows = []Row{
		{"country": NewTextCell("France"), "life expectancy": NewNumericCell(81.5)},
		{"country": NewTextCell("Nowhere"), "life expectancy": NewMissingCell()},
		{"country": NewTextCell("Japan"), "life expectancy": NewNumericCell(84.2)},
	}

	out := tbl.DropNullRows("life expectancy")
	if out.NumRows() != 2 {
		t.Fatalf("expected 2 rows after dropping nulls, got %d", out.NumRows())
	}
	if out.Rows[0]["country"].AsString() != "France" || out.Rows[1]["country"].AsString() != "Japan" {
		t.Error("row order should be preserved after dropping nulls")
	}
}

func TestDistinctIntegers(t *testing.T) {
	tbl := New([]string{"year"})
	for _, y := range []int64{2010, 1995, 2010, 2001} {
		tbl.Rows = append(tbl.Rows, Row{"year": NewIntegerCell(y)})
	}
	tbl.Rows = append(tbl.Rows, Row{"year": NewMissingCell()})

	years := tbl.DistinctIntegers("year")
	want := []int{1995, 2001, 2010}
	if len(years) != len(want) {
		t.Fatalf("expected %d distinct years, got %d", len(want), len(years))
	}
	for i, y := range want {
		if years[i] != y {
			t.Errorf("years[%d] = %d, want %d", i, years[i], y)
		}
	}
}

func TestDropNonNumericRows(t *testing.T) {
	tbl := New([]string{"country", "gdp per capita"})
	tbl.Rows = []Row{
		{"country": NewTextCell("France"), "gdp per capita": NewNumericCell(35000)},
		{"country": NewTextCell("Japan"), "gdp per capita": NewTextCell("unknown")},
		{"country": NewTextCell("Kenya"), "gdp per capita": NewMissingCell()},
		{"country": NewTextCell("Brazil"), "gdp per capita": NewIntegerCell(9000)},
	}

	out := tbl.DropNonNumericRows("gdp per capita")
	if out.NumRows() != 2 {
		t.Fatalf("expected 2 rows, got %d", out.NumRows())
	}
	if out.Rows[0]["country"].AsString() != "France" || out.Rows[1]["country"].AsString() != "Brazil" {
		t.Error("text and missing cells should both disqualify a row, integers should not")
	}
}

func TestDropNonIntegerRows(t *testing.T) {
	tbl := New([]string{"year"})
	tbl.Rows = []Row{
		{"year": NewIntegerCell(2010)},
		{"year": NewNumericCell(2010.5)},
		{"year": NewTextCell("next year")},
		{"year": NewMissingCell()},
	}

	out := tbl.DropNonIntegerRows("year")
	if out.NumRows() != 1 {
		t.Fatalf("expected 1 row, got %d", out.NumRows())
	}
	if out.Rows[0]["year"].AsInt64() != 2010 {
		t.Error("only the integer year should survive")
	}
}

func TestFingerprintIdentity(t *testing.T) {
	tbl := New([]string{"a", "b"})
	r1 := Row{"a": NewTextCell("x"), "b": NewNumericCell(1)}
	r2 := Row{"a": NewTextCell("x"), "b": NewNumericCell(1)}
	r3 := Row{"a": NewTextCell("x"), "b": NewIntegerCell(1)}

	if tbl.Fingerprint(r1) != tbl.Fingerprint(r2) {
		t.Error("rows with equal cells should share a fingerprint")
	}
	if tbl.Fingerprint(r1) == tbl.Fingerprint(r3) {
		t.Error("cells of different types should not share a fingerprint")
	}
}

func TestAddColumn(t *testing.T) {
	tbl := New([]string{"country"})
	tbl.Rows = []Row{{"country": NewTextCell("France")}}

	tbl.AddColumn("continent", TypeCategorical)
	if !tbl.HasColumn("continent") {
		t.Fatal("continent column should exist after AddColumn")
	}
	if got := tbl.Cell(tbl.Rows[0], "continent"); !got.IsMissing {
		t.Error("rows without a value for a new column should read as missing")
	}

	// Re-adding must not duplicate the label
	tbl.AddColumn("continent", TypeCategorical)
	if len(tbl.Columns) != 2 {
		t.Errorf("expected 2 columns, got %d", len(tbl.Columns))
	}
}
