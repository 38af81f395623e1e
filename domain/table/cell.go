package table

import (
	"fmt"
	"strconv"
)

// CellType defines the storage type for a single cell
type CellType string

const (
	CellTypeText    CellType = "text"
	CellTypeNumeric CellType = "numeric"
	CellTypeInteger CellType = "integer"
	CellTypeMissing CellType = "missing"
)

// Cell represents a typed cell value with deterministic coercion.
// Exactly one of the value pointers is set for non-missing cells.
type Cell struct {
	Type       CellType `json:"type"`
	TextVal    *string  `json:"text_val,omitempty"`
	NumericVal *float64 `json:"numeric_val,omitempty"`
	IntVal     *int64   `json:"int_val,omitempty"`
	IsMissing  bool     `json:"is_missing"`
}

// NewTextCell creates a text cell; an empty string becomes a missing cell
func NewTextCell(s string) Cell {
	if s == "" {
		return Cell{Type: CellTypeMissing, IsMissing: true}
	}
	return Cell{Type: CellTypeText, TextVal: &s}
}

// NewNumericCell creates a numeric cell
func NewNumericCell(n float64) Cell {
	return Cell{Type: CellTypeNumeric, NumericVal: &n}
}

// NewIntegerCell creates an integer cell
func NewIntegerCell(n int64) Cell {
	return Cell{Type: CellTypeInteger, IntVal: &n}
}

// NewMissingCell creates a missing cell
func NewMissingCell() Cell {
	return Cell{Type: CellTypeMissing, IsMissing: true}
}

// IsText returns true if the cell holds a text value
func (c Cell) IsText() bool {
	return c.Type == CellTypeText && c.TextVal != nil
}

// IsNumeric returns true if the cell holds a numeric or integer value
func (c Cell) IsNumeric() bool {
	return (c.Type == CellTypeNumeric && c.NumericVal != nil) ||
		(c.Type == CellTypeInteger && c.IntVal != nil)
}

// IsInteger returns true if the cell holds an integer value
func (c Cell) IsInteger() bool {
	return c.Type == CellTypeInteger && c.IntVal != nil
}

// AsFloat64 returns the numeric value as float64, or 0 if not numeric
func (c Cell) AsFloat64() float64 {
	if c.NumericVal != nil {
		return *c.NumericVal
	}
	if c.IntVal != nil {
		return float64(*c.IntVal)
	}
	return 0.0
}

// AsInt64 returns the integer value, or 0 if not an integer
func (c Cell) AsInt64() int64 {
	if c.IntVal != nil {
		return *c.IntVal
	}
	return 0
}

// AsString returns the text value, or empty string if not text
func (c Cell) AsString() string {
	if c.TextVal != nil {
		return *c.TextVal
	}
	return ""
}

// String returns a stable string representation of the cell
func (c Cell) String() string {
	switch c.Type {
	case CellTypeText:
		if c.TextVal != nil {
			return *c.TextVal
		}
	case CellTypeNumeric:
		if c.NumericVal != nil {
			return strconv.FormatFloat(*c.NumericVal, 'g', -1, 64)
		}
	case CellTypeInteger:
		if c.IntVal != nil {
			return fmt.Sprintf("%d", *c.IntVal)
		}
	case CellTypeMissing:
		return "<missing>"
	}
	return "<invalid>"
}

// Equal reports whether two cells hold the same typed value
func (c Cell) Equal(other Cell) bool {
	if c.Type != other.Type {
		return false
	}
	switch c.Type {
	case CellTypeText:
		return c.AsString() == other.AsString()
	case CellTypeNumeric:
		return c.AsFloat64() == other.AsFloat64()
	case CellTypeInteger:
		return c.AsInt64() == other.AsInt64()
	case CellTypeMissing:
		return true
	}
	return false
}
