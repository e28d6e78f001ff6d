package catalogue

import "cardcrawl/internal/state"

var storyPrompts = []state.StoryEvent{
	{
		Prompt: "A cracked mural shows a warrior kneeling before a blade of light. Do you study it, or move on?",
		Choices: []state.StoryChoice{
			{Text: "Study the mural"},
			{Text: "Move on"},
		},
	},
	{
		Prompt: "An old offering bowl sits untouched on a pedestal, a single coin inside.",
		Choices: []state.StoryChoice{
			{Text: "Take the coin"},
			{Text: "Leave an offering of your own"},
		},
	},
	{
		Prompt: "A locked chest hums faintly. The lock looks rusted through.",
		Choices: []state.StoryChoice{
			{Text: "Force it open"},
			{Text: "Walk away"},
		},
	},
}

// GenerateStoryEvent rolls one of the fixed story prompts.
func GenerateStoryEvent(rng roomRNG) *state.StoryEvent {
	idx := rng.Intn(len(storyPrompts))
	ev := storyPrompts[idx]
	return &ev
}

// StoryOutcome is the resolved effect of picking a story choice.
type StoryOutcome struct {
	Message    string
	GoldDelta  int
	HealAmount int
	Accuracy   float64 // additive BaseAccuracy delta, 0 if none
}

// ResolveStoryChoice resolves a player's pick against the event's prompt,
// choice index, and class, rolling a mundane or favourable/unfavourable
// outcome (§4.1, §6 "resolve_story_choice(prompt, choice_index, class)").
// The prompt text itself doesn't branch the roll table today — it's
// carried through so a future prompt-specific table has a home — but
// class does: each archetype favours the flavour of boon it would
// actually use.
func ResolveStoryChoice(prompt string, choiceIndex int, class state.Class, rng roomRNG) StoryOutcome {
	_ = prompt
	good := rng.Chance(0.6)
	switch {
	case good && choiceIndex == 0:
		return classFavouredOutcome(class, rng)
	case good:
		return StoryOutcome{Message: "You find a few coins tucked in the stone.", GoldDelta: rng.IntRange(5, 15)}
	case choiceIndex == 0:
		return StoryOutcome{Message: "A jolt of energy leaves you shaken.", HealAmount: -rng.IntRange(3, 8)}
	default:
		return StoryOutcome{Message: "Nothing happens, though you feel a chill."}
	}
}

// classFavouredOutcome picks the boon flavour a Warrior/Rogue/Cleric
// would each make the most of, mirroring the class-passive theme already
// present in the combat resolver (§4.4).
func classFavouredOutcome(class state.Class, rng roomRNG) StoryOutcome {
	switch class {
	case state.ClassRogue:
		return StoryOutcome{Message: "A hidden catch springs open, spilling coin.", GoldDelta: rng.IntRange(10, 25)}
	case state.ClassCleric:
		return StoryOutcome{Message: "A calm warmth mends your wounds.", HealAmount: rng.IntRange(8, 18)}
	default:
		return StoryOutcome{Message: "The shrine's old magic settles over you.", Accuracy: 0.05}
	}
}
