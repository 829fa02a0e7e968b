package domain

type SeatState int

const (
	SeatFree SeatState = iota
	SeatOccupied
	SeatExcluded
)

func (s SeatState) String() string {
	switch s {
	case SeatFree:
		return "FREE"
	case SeatOccupied:
		return "OCCUPIED"
	case SeatExcluded:
		return "EXCLUDED"
	}
	return "UNKNOWN"
}

// DefaultIsolationBuffer keeps one seat between a new party and any occupied seat.
const DefaultIsolationBuffer = 1

// Availability classifies every physical seat of a layout.
type Availability map[SeatRef]SeatState

// State returns the state of ref and whether ref is a physical seat of the layout.
func (a Availability) State(ref SeatRef) (SeatState, bool) {
	s, ok := a[ref]
	return s, ok
}

func (a Availability) IsFree(ref SeatRef) bool {
	s, ok := a[ref]
	return ok && s == SeatFree
}

func ComputeAvailability(layout AuditoriumLayout, occupied OccupiedSeats) Availability {
	return ComputeAvailabilityWithBuffer(layout, occupied, DefaultIsolationBuffer)
}

// ComputeAvailabilityWithBuffer excludes a free seat when an occupied seat is
// reachable within buffer adjacency steps in the same row. Gaps and
// non-physical positions stop the walk.
func ComputeAvailabilityWithBuffer(layout AuditoriumLayout, occupied OccupiedSeats, buffer int) Availability {
	view := make(Availability, layout.SeatCount())
	for _, row := range layout.Rows {
		classifyRow(row, occupied, buffer, view)
	}
	return view
}

func classifyRow(row Row, occupied OccupiedSeats, buffer int, view Availability) {
	n := len(row.Seats)

	// left[i] is the number of steps to the nearest occupied seat on the left
	// within the same contiguous segment, or -1.
	left := make([]int, n)
	steps := -1
	for i, seat := range row.Seats {
		if !seat.Physical {
			steps, left[i] = -1, -1
			continue
		}
		if i > 0 && !row.Adjacent(i-1) {
			steps = -1
		}
		if occupied.Contains(seat.Ref()) {
			steps, left[i] = 0, 0
			continue
		}
		if steps >= 0 {
			steps++
		}
		left[i] = steps
	}

	steps = -1
	for i := n - 1; i >= 0; i-- {
		seat := row.Seats[i]
		if !seat.Physical {
			steps = -1
			continue
		}
		if i < n-1 && !row.Adjacent(i) {
			steps = -1
		}
		if occupied.Contains(seat.Ref()) {
			view[seat.Ref()] = SeatOccupied
			steps = 0
			continue
		}
		if steps >= 0 {
			steps++
		}

		state := SeatFree
		if withinBuffer(left[i], buffer) || withinBuffer(steps, buffer) {
			state = SeatExcluded
		}
		view[seat.Ref()] = state
	}
}

func withinBuffer(steps, buffer int) bool {
	return steps > 0 && steps <= buffer
}
