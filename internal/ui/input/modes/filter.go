package modes

import (
	"github.com/charmbracelet/bubbles/textinput"

	"orgstars/internal/ui/input/types"
)

// FilterMode edits the live filter query
type FilterMode struct {
	TextInputMode
}

func NewFilterMode(ti *textinput.Model) *FilterMode {
	return &FilterMode{
		TextInputMode: NewTextInputMode(types.ModeFilter, "filter", ti),
	}
}
