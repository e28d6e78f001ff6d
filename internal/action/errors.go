package action

import (
	"cardcrawl/internal/actionerr"
	"cardcrawl/internal/state"
)

// errGameOver is returned for any action once the session has reached a
// GameOver phase (§4.5 step 2).
var errGameOver = actionerr.Validation("This run has ended.")

// phaseErrorMessage gives each action kind its own human-readable
// rejection line, matching the concrete scenario wording in §8 where the
// spec names one explicitly ("You can only fight during combat.",
// "There is no exit to the South." — the latter from internal/worldmap).
var phaseErrorMessage = map[Kind]string{
	Attack:       "You can only fight during combat.",
	AttackTarget: "You can only fight during combat.",
	Defend:       "You can only fight during combat.",
	HealAlly:     "You can only fight during combat.",
	Flee:         "You can only fight during combat.",

	Buy:  "There's no merchant here.",
	Sell: "There's no merchant here.",

	StoryChoice: "There's nothing to decide here.",
	Rest:        "You can only rest in the city.",
	RoomChoice:  "There's nothing to choose here.",
	Move:        "You can't move right now.",
	Revive:      "You can only revive fallen allies in the city.",
	Explore:     "You can't explore during combat.",
}

// errPhaseNotAllowed reports that k is illegal in phase, using k's
// specific rejection line where one is defined.
func errPhaseNotAllowed(k Kind, phase state.Phase) error {
	if msg, ok := phaseErrorMessage[k]; ok {
		return actionerr.Validation(msg)
	}
	return actionerr.Validation("You can't do that right now.")
}
