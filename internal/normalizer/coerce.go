package normalizer

import (
	"math"
	"strconv"
	"strings"

	"healthcharts/domain/table"
)

// tryParseNumeric attempts to parse a cell's text as a finite float
func tryParseNumeric(strVal string) (float64, bool) {
	cleanVal := strings.TrimSpace(strVal)
	if cleanVal == "" {
		return 0, false
	}

	val, err := strconv.ParseFloat(cleanVal, 64)
	if err != nil {
		return 0, false
	}
	if math.IsInf(val, 0) || math.IsNaN(val) {
		return 0, false
	}
	return val, true
}

// tryParseInteger attempts to parse a cell's text as an integer.
// Integral floats such as "2010.0" are accepted.
func tryParseInteger(strVal string) (int64, bool) {
	cleanVal := strings.TrimSpace(strVal)
	if cleanVal == "" {
		return 0, false
	}

	if val, err := strconv.ParseInt(cleanVal, 10, 64); err == nil {
		return val, true
	}

	if val, ok := tryParseNumeric(cleanVal); ok && val == math.Trunc(val) {
		return int64(val), true
	}
	return 0, false
}

// coerceNumericCell converts a text cell to numeric when possible, keeping the
// original text otherwise. Non-text cells pass through unchanged, which keeps
// repeated coercion a no-op.
func coerceNumericCell(cell table.Cell) table.Cell {
	if !cell.IsText() {
		return cell
	}
	if val, ok := tryParseNumeric(cell.AsString()); ok {
		return table.NewNumericCell(val)
	}
	return cell
}

// coerceIntegerCell converts a cell to integer, or missing when the value
// does not parse. Already-integer cells pass through unchanged.
func coerceIntegerCell(cell table.Cell) table.Cell {
	if cell.IsInteger() || cell.IsMissing {
		return cell
	}
	if cell.IsText() {
		if val, ok := tryParseInteger(cell.AsString()); ok {
			return table.NewIntegerCell(val)
		}
		return table.NewMissingCell()
	}
	if cell.IsNumeric() {
		f := cell.AsFloat64()
		if f == math.Trunc(f) {
			return table.NewIntegerCell(int64(f))
		}
	}
	return table.NewMissingCell()
}
