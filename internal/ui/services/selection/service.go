package selection

import "sort"

// Service owns the set of selected repository ids. Ids are not checked
// against the current collection: an id selected in an earlier query result
// stays selected until it is toggled off, cleared or pruned.
type Service struct {
	state *State
}

// NewService creates a new selection service with an empty selection
func NewService() *Service {
	return &Service{
		state: &State{
			SelectedRepos: make(map[string]bool),
		},
	}
}

// Toggle removes id from the selection if present and adds it otherwise
func (s *Service) Toggle(id string) {
	if s.state.SelectedRepos[id] {
		delete(s.state.SelectedRepos, id)
		return
	}
	s.state.SelectedRepos[id] = true
}

// IsSelected checks if a repository is selected
func (s *Service) IsSelected(id string) bool {
	return s.state.SelectedRepos[id]
}

// Selected returns the selected ids in lexical order
func (s *Service) Selected() []string {
	selected := make([]string, 0, len(s.state.SelectedRepos))
	for id := range s.state.SelectedRepos {
		selected = append(selected, id)
	}
	sort.Strings(selected)
	return selected
}

// Count returns the number of selected ids
func (s *Service) Count() int {
	return len(s.state.SelectedRepos)
}

// SelectAll adds every given id to the selection
func (s *Service) SelectAll(ids []string) {
	for _, id := range ids {
		s.state.SelectedRepos[id] = true
	}
}

// Clear empties the selection
func (s *Service) Clear() {
	s.state.SelectedRepos = make(map[string]bool)
}

// Prune drops ids that are not in valid and returns them in lexical order
func (s *Service) Prune(valid map[string]bool) []string {
	var removed []string
	for id := range s.state.SelectedRepos {
		if !valid[id] {
			delete(s.state.SelectedRepos, id)
			removed = append(removed, id)
		}
	}
	sort.Strings(removed)
	return removed
}
