package domain

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

type SeatCategory string

const (
	CategoryStandard   SeatCategory = "STANDARD"
	CategoryPremium    SeatCategory = "PREMIUM"
	CategoryAccessible SeatCategory = "ACCESSIBLE"
)

func (c SeatCategory) IsValid() bool {
	switch c {
	case CategoryStandard, CategoryPremium, CategoryAccessible:
		return true
	}
	return false
}

// SeatRef identifies a seat by row identifier and position within the row.
type SeatRef struct {
	Row      string
	Position int
}

func (r SeatRef) String() string {
	return fmt.Sprintf("%s%d", r.Row, r.Position)
}

type Seat struct {
	Row      string
	Position int
	// Physical is false for aisles and gaps that occupy a position without a seat.
	Physical bool
	Category SeatCategory
}

func (s Seat) Ref() SeatRef {
	return SeatRef{Row: s.Row, Position: s.Position}
}

type Row struct {
	Name  string
	Seats []Seat
}

// Adjacent reports whether the seats at index i and i+1 are neighbours.
func (r Row) Adjacent(i int) bool {
	if i < 0 || i+1 >= len(r.Seats) {
		return false
	}
	a, b := r.Seats[i], r.Seats[i+1]
	return a.Physical && b.Physical && b.Position-a.Position == 1
}

// Midpoint2 returns twice the midpoint of the row's physical seats, which
// keeps centering arithmetic in integers.
func (r Row) Midpoint2() int {
	first, last := -1, -1
	for i, seat := range r.Seats {
		if !seat.Physical {
			continue
		}
		if first < 0 {
			first = i
		}
		last = i
	}
	if first < 0 {
		return 0
	}
	return r.Seats[first].Position + r.Seats[last].Position
}

type AuditoriumLayout struct {
	ID   uuid.UUID
	Name string
	// ReferenceRow names the best row of the venue. Empty means the middle row.
	ReferenceRow string
	Rows         []Row
}

// ReferenceRowIndex returns the index of the row candidates are ranked against.
func (l AuditoriumLayout) ReferenceRowIndex() int {
	if l.ReferenceRow != "" {
		for i, row := range l.Rows {
			if strings.EqualFold(row.Name, l.ReferenceRow) {
				return i
			}
		}
	}
	if len(l.Rows) == 0 {
		return 0
	}
	return (len(l.Rows) - 1) / 2
}

func (l AuditoriumLayout) SeatCount() int {
	n := 0
	for _, row := range l.Rows {
		for _, seat := range row.Seats {
			if seat.Physical {
				n++
			}
		}
	}
	return n
}

// Validate checks that row identifiers are unique, ignoring case, and that
// positions within each row are strictly increasing.
func (l AuditoriumLayout) Validate() error {
	names := make(map[string]struct{}, len(l.Rows))
	for _, row := range l.Rows {
		if row.Name == "" {
			return fmt.Errorf("%w: row without identifier", ErrInvalidLayout)
		}
		key := strings.ToUpper(row.Name)
		if _, dup := names[key]; dup {
			return fmt.Errorf("%w: duplicate row %q", ErrInvalidLayout, row.Name)
		}
		names[key] = struct{}{}

		for i, seat := range row.Seats {
			if seat.Row != row.Name {
				return fmt.Errorf("%w: seat %s listed under row %q", ErrInvalidLayout, seat.Ref(), row.Name)
			}
			if i > 0 && seat.Position <= row.Seats[i-1].Position {
				return fmt.Errorf("%w: row %q positions not strictly increasing at %d", ErrInvalidLayout, row.Name, seat.Position)
			}
		}
	}
	return nil
}
