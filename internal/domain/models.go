package domain

// Repository represents a GitHub repository as returned by the organization query
type Repository struct {
	ID               string
	Name             string
	URL              string
	ViewerHasStarred bool
	ForkCount        int
	StarCount        int // stargazers total count
}

// StarOp identifies which star mutation to run
type StarOp int

const (
	StarAdd StarOp = iota
	StarRemove
)

// String returns the GraphQL mutation name for the operation
func (op StarOp) String() string {
	switch op {
	case StarAdd:
		return "addStar"
	case StarRemove:
		return "removeStar"
	default:
		return "unknown"
	}
}

// Starred reports the viewerHasStarred value a successful mutation leads to
func (op StarOp) Starred() bool {
	return op == StarAdd
}

// LoadState represents the state of the repository query
type LoadState struct {
	Loading bool
	Loaded  bool // an organization payload has been received at least once
	Err     error
}
