package domain

import "time"

// Branch is the scouting age group an event belongs to
type Branch string

const (
	BranchLC  Branch = "LC" // cubs / brownies
	BranchEG  Branch = "EG" // scouts / guides
	BranchRS  Branch = "RS" // rovers / rangers
	BranchCC  Branch = "CC" // leaders community
	BranchAll Branch = "ALL"
)

// IsValid returns true if the branch is one of the known values
func (b Branch) IsValid() bool {
	switch b {
	case BranchLC, BranchEG, BranchRS, BranchCC, BranchAll:
		return true
	}
	return false
}

// RequiredUnit returns the unit a structure must host for this branch.
// BranchAll imposes no unit filter and returns false.
func (b Branch) RequiredUnit() (Unit, bool) {
	switch b {
	case BranchLC:
		return UnitLC, true
	case BranchEG:
		return UnitEG, true
	case BranchRS:
		return UnitRS, true
	case BranchCC:
		return UnitCC, true
	default:
		return "", false
	}
}

// Accommodation is the kind of lodging a branch segment needs
type Accommodation string

const (
	AccommodationIndoor Accommodation = "indoor"
	AccommodationTents  Accommodation = "tents"
)

// Event is a scheduled activity that needs a structure
type Event struct {
	ID        int64
	Title     string
	Branch    Branch
	StartDate time.Time
	EndDate   time.Time

	// Participants holds named head counts: the base units (lc, eg, rs, leaders)
	// plus optional derived sub-role keys
	Participants map[string]int

	BranchSegments []BranchSegment

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Range returns the event's date range
func (e *Event) Range() DateRange {
	return DateRange{Start: e.StartDate, End: e.EndDate}
}

// BranchSegment is a sub-period of an event scoped to one branch
type BranchSegment struct {
	ID            int64
	Branch        Branch
	StartDate     time.Time
	EndDate       time.Time
	YouthCount    int
	LeadersCount  int
	KitchenCount  int
	Accommodation Accommodation
}

// PeopleCount returns the number of people that need a bed or a pitch.
// Kitchen staff is not counted.
func (s *BranchSegment) PeopleCount() int {
	return s.YouthCount + s.LeadersCount
}

// Range returns the segment's date range
func (s *BranchSegment) Range() DateRange {
	return DateRange{Start: s.StartDate, End: s.EndDate}
}
