package logic

import (
	"sort"
	"strings"

	"orgstars/internal/domain"
)

// SortMode represents different sort modes
type SortMode int

const (
	SortByQuery SortMode = iota // order returned by the API
	SortByName
	SortByStars
	SortByForks
)

// String returns the label shown in the status line
func (m SortMode) String() string {
	switch m {
	case SortByName:
		return "name"
	case SortByStars:
		return "stars"
	case SortByForks:
		return "forks"
	default:
		return "query"
	}
}

// Next cycles to the following sort mode
func (m SortMode) Next() SortMode {
	return (m + 1) % (SortByForks + 1)
}

// SortRepositories returns a sorted copy of repos. Ties keep query order.
func SortRepositories(repos []domain.Repository, mode SortMode) []domain.Repository {
	sorted := make([]domain.Repository, len(repos))
	copy(sorted, repos)

	switch mode {
	case SortByName:
		sort.SliceStable(sorted, func(i, j int) bool {
			return strings.ToLower(sorted[i].Name) < strings.ToLower(sorted[j].Name)
		})
	case SortByStars:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].StarCount > sorted[j].StarCount
		})
	case SortByForks:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].ForkCount > sorted[j].ForkCount
		})
	}
	return sorted
}
