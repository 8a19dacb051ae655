package domain

// Movie represents a single record returned by the movie catalog
type Movie struct {
	ID     string // catalog identifier (imdbID for OMDb)
	Title  string
	Year   string
	Type   string // movie, series, episode
	Poster string // poster URL, empty when the catalog has none
}

// FetchStatus represents the lifecycle of a catalog fetch
type FetchStatus int

const (
	FetchIdle FetchStatus = iota
	FetchLoading
	FetchSucceeded
	FetchFailed
)

func (s FetchStatus) String() string {
	switch s {
	case FetchIdle:
		return "idle"
	case FetchLoading:
		return "loading"
	case FetchSucceeded:
		return "succeeded"
	case FetchFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// HistoryEntry is a query that produced a successful fetch
type HistoryEntry struct {
	Query   string
	Results int
}
