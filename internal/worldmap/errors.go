package worldmap

import (
	"fmt"

	"cardcrawl/internal/actionerr"
	"cardcrawl/internal/state"
)

func errNoExit(dir state.Direction) error {
	return actionerr.Validation(fmt.Sprintf("There is no exit to the %s.", dir))
}
