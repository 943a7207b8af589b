package helper

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 20
)

// Page describes one slice of a collection using 1-based page numbers.
type Page struct {
	Number     int
	Size       int
	Offset     int
	TotalPages int
}

// Paginate normalizes a 1-based page number and size (falling back to the
// defaults when absent or non-positive) and computes the slice offset and
// total page count for a collection of the given length.
func Paginate(page, size, total int) Page {
	if page < 1 {
		page = DefaultPage
	}
	if size < 1 {
		size = DefaultPageSize
	}
	totalPages := (total + size - 1) / size
	return Page{
		Number:     page,
		Size:       size,
		Offset:     (page - 1) * size,
		TotalPages: totalPages,
	}
}

// Slice applies the page bounds to a collection length, returning the
// [start, end) range to take. Pages past the end yield an empty range.
func (p Page) Slice(total int) (int, int) {
	start := p.Offset
	if start > total {
		start = total
	}
	end := start + p.Size
	if end > total {
		end = total
	}
	return start, end
}

// FormatPercent renders count/total as a percentage with one decimal place,
// returning "0.0" when total is zero.
func FormatPercent(count, total int) string {
	if total == 0 {
		return "0.0"
	}
	return fmt.Sprintf("%.1f", float64(count)/float64(total)*100)
}

// GenerateResetToken returns a cryptographically random hex token for the
// single-use password reset flow.
func GenerateResetToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
