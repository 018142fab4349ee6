package selection

// State holds selection state
type State struct {
	SelectedRepos map[string]bool // repository id -> selected
}
