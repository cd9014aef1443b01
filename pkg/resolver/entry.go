package resolver

// Status describes how an Entry was resolved.
type Status int

const (
	// Unparsed means the label has no parseable scientific name.
	Unparsed Status = iota
	// NotFound means the canonical name is unknown to the registry.
	NotFound
	// Accepted means the name was found as an accepted name.
	Accepted
	// NotAccepted means the name was found only without restricting
	// the search to accepted names.
	NotAccepted
	// Overridden means the values come from the manual override table.
	Overridden
)

var statusNames = map[Status]string{
	Unparsed:    "unparsed",
	NotFound:    "not found",
	Accepted:    "accepted",
	NotAccepted: "not accepted",
	Overridden:  "overridden",
}

func (s Status) String() string {
	if res, ok := statusNames[s]; ok {
		return res
	}
	return "unknown"
}

// Entry is the resolution of a species label. Empty Canonical or ID mean
// the value is absent.
type Entry struct {
	Verbatim  string
	Canonical string
	ID        string
	Status    Status
}

// Resolved is true when the entry has an identifier.
func (e Entry) Resolved() bool {
	return e.ID != ""
}

// Stats counts entries by status.
type Stats struct {
	Total       int
	Unparsed    int
	NotFound    int
	Accepted    int
	NotAccepted int
	Overridden  int
}

// Unresolved is the number of entries without an identifier.
func (s Stats) Unresolved() int {
	return s.Unparsed + s.NotFound
}

// Summarize counts entries by status.
func Summarize(entries []Entry) Stats {
	res := Stats{Total: len(entries)}
	for _, v := range entries {
		switch v.Status {
		case Unparsed:
			res.Unparsed++
		case NotFound:
			res.NotFound++
		case Accepted:
			res.Accepted++
		case NotAccepted:
			res.NotAccepted++
		case Overridden:
			res.Overridden++
		}
	}
	return res
}
