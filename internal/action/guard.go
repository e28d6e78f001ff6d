package action

import "cardcrawl/internal/state"

// allowedPhases lists, for each action kind, every phase it may run in.
// Equip/UseItem/ToggleItems/ViewMap are handled separately ("anytime
// except GameOver") since listing all ~11 non-GameOver phases per entry
// would just restate IsGameOver (§4.5 step 3).
var allowedPhases = map[Kind][]state.Phase{
	Attack:       {state.PhaseCombat, state.PhaseWaitingForActions},
	AttackTarget: {state.PhaseCombat, state.PhaseWaitingForActions},
	Defend:       {state.PhaseCombat, state.PhaseWaitingForActions},
	HealAlly:     {state.PhaseCombat, state.PhaseWaitingForActions},
	Flee:         {state.PhaseCombat, state.PhaseWaitingForActions},

	Buy:  {state.PhaseMerchant, state.PhaseCity},
	Sell: {state.PhaseMerchant, state.PhaseCity},

	StoryChoice: {state.PhaseEvent},
	Rest:        {state.PhaseCity},
	RoomChoice:  {state.PhaseTrap, state.PhaseTreasure, state.PhaseHallway, state.PhaseRest},
	Move:        {state.PhaseExploring, state.PhaseCity},
	Revive:      {state.PhaseCity},
}

// waitingForActionsAllowed lists the subset of actions permitted while
// the party is still collecting submissions (§4.5 step 3 "Additional").
var waitingForActionsAllowed = map[Kind]bool{
	Attack:       true,
	AttackTarget: true,
	Defend:       true,
	UseItem:      true,
	ToggleItems:  true,
	HealAlly:     true,
}

// isAnytimeAction reports the "Equip, UseItem, ToggleItems, ViewMap"
// row: legal in any phase except a GameOver variant, subject to the
// WaitingForActions restriction above.
func isAnytimeAction(k Kind) bool {
	switch k {
	case Equip, UseItem, ToggleItems, ViewMap:
		return true
	default:
		return false
	}
}

// checkPhase enforces the per-action phase guard table.
func checkPhase(k Kind, phase state.Phase) error {
	if phase.IsGameOver() {
		return errGameOver
	}

	if phase == state.PhaseWaitingForActions {
		if waitingForActionsAllowed[k] {
			return nil
		}
		return errPhaseNotAllowed(k, phase)
	}

	if isAnytimeAction(k) {
		return nil
	}

	if k == Explore {
		if phase == state.PhaseCombat || phase == state.PhaseWaitingForActions {
			return errPhaseNotAllowed(k, phase)
		}
		return nil
	}

	allowed, ok := allowedPhases[k]
	if !ok {
		return errPhaseNotAllowed(k, phase)
	}
	for _, p := range allowed {
		if p == phase {
			return nil
		}
	}
	return errPhaseNotAllowed(k, phase)
}
