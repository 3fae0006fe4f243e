package domain

// SortField enumerates the campaign fields a list may be ordered by. The
// zero value is invalid so an unset field is never silently accepted.
type SortField int

const (
	sortFieldInvalid SortField = iota
	SortByName
	SortByStartDate
	SortByEndDate
	SortByBudget
	SortByChannel
)

var sortFieldNames = map[string]SortField{
	"name":      SortByName,
	"startDate": SortByStartDate,
	"endDate":   SortByEndDate,
	"budget":    SortByBudget,
	"channel":   SortByChannel,
}

// DefaultSortField is used when the caller does not ask for an ordering.
const DefaultSortField = SortByStartDate

// ParseSortField maps the public field name onto a SortField. Names are
// case-sensitive.
func ParseSortField(s string) (SortField, bool) {
	f, ok := sortFieldNames[s]
	return f, ok
}

// Valid reports whether f is one of the enumerated fields.
func (f SortField) Valid() bool {
	return f > sortFieldInvalid && f <= SortByChannel
}

func (f SortField) String() string {
	for name, v := range sortFieldNames {
		if v == f {
			return name
		}
	}
	return "invalid"
}

// SortOrder is the direction of a list ordering.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// ParseSortOrder accepts "asc" and "desc" only.
func ParseSortOrder(s string) (SortOrder, bool) {
	switch o := SortOrder(s); o {
	case SortAsc, SortDesc:
		return o, true
	default:
		return "", false
	}
}

// Valid reports whether o is asc or desc.
func (o SortOrder) Valid() bool {
	return o == SortAsc || o == SortDesc
}
