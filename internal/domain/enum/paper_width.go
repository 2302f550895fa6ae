package enum

import (
	"database/sql/driver"
	"fmt"
)

// PaperWidth is one of the two physical thermal paper widths in millimeters
type PaperWidth int

const (
	Paper58mm PaperWidth = 58
	Paper80mm PaperWidth = 80
)

// ParsePaperWidth validates a paper width value
func ParsePaperWidth(mm int) (PaperWidth, error) {
	switch PaperWidth(mm) {
	case Paper58mm, Paper80mm:
		return PaperWidth(mm), nil
	}
	return 0, fmt.Errorf("unsupported paper width %dmm", mm)
}

// Chars returns the printable character count per line for the width
func (w PaperWidth) Chars() int {
	if w == Paper80mm {
		return 48
	}
	return 32
}

func (w PaperWidth) Value() (driver.Value, error) {
	return int64(w), nil
}

func (w *PaperWidth) Scan(value interface{}) error {
	if value == nil {
		*w = Paper58mm
		return nil
	}
	switch v := value.(type) {
	case int64:
		*w = PaperWidth(v)
	case int:
		*w = PaperWidth(v)
	}
	return nil
}
