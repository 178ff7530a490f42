package app

// personalityTraits are the four independent facets the title rules
// are evaluated over.
type personalityTraits struct {
	nightOwl       bool
	earlyBird      bool
	polyglot       bool
	weekendWarrior bool
	solo           bool
	languages      int
	soloScore      int
	bugSlayerScore int
}

// personalityRule pairs a predicate with the resulting profile title.
// Rules are evaluated top to bottom, first match wins.
type personalityRule struct {
	matches     func(t personalityTraits) bool
	title       string
	emoji       string
	description string
}

var personalityRules = []personalityRule{
	{
		matches:     func(t personalityTraits) bool { return t.nightOwl && t.polyglot },
		title:       "Nocturnal Polyglot",
		emoji:       "🦉",
		description: "A versatile night owl who masters multiple languages under the moonlight.",
	},
	{
		matches:     func(t personalityTraits) bool { return t.earlyBird && t.solo },
		title:       "Dawn Pioneer",
		emoji:       "🌅",
		description: "An independent creator who catches bugs before anyone else wakes up.",
	},
	{
		matches:     func(t personalityTraits) bool { return t.weekendWarrior && t.bugSlayerScore > 60 },
		title:       "Weekend Bug Hunter",
		emoji:       "🐛",
		description: "A dedicated problem solver who squashes bugs even on their days off.",
	},
	{
		matches:     func(t personalityTraits) bool { return t.polyglot && !t.solo },
		title:       "Open Source Champion",
		emoji:       "🏆",
		description: "A collaborative polyglot who contributes across the ecosystem.",
	},
	{
		matches:     func(t personalityTraits) bool { return t.solo && t.languages <= 2 },
		title:       "Deep Specialist",
		emoji:       "🎯",
		description: "A focused expert who has mastered their chosen technology stack.",
	},
	{
		matches:     func(t personalityTraits) bool { return t.nightOwl && t.weekendWarrior },
		title:       "Code Ninja",
		emoji:       "🥷",
		description: "Strikes when least expected, codes through nights and weekends.",
	},
}

// personality derives the developer profile from the computed activity
// patterns and scores.
func personality(repos []Repository, act activity, soloScore, bugSlayer int) Personality {
	// Unlike the language mix, the breadth trait counts forks too.
	languageSet := make(map[string]struct{})
	for _, r := range repos {
		if r.Language != "" {
			languageSet[r.Language] = struct{}{}
		}
	}

	weekend := act.byDay["Saturday"] + act.byDay["Sunday"]
	var weekdays int
	for _, day := range []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"} {
		weekdays += act.byDay[day]
	}

	traits := personalityTraits{
		nightOwl:       act.mostProductiveHour >= 20 || act.mostProductiveHour < 6,
		earlyBird:      act.mostProductiveHour >= 5 && act.mostProductiveHour < 10,
		polyglot:       len(languageSet) >= 5,
		weekendWarrior: float64(weekend) > float64(weekdays)*0.4,
		solo:           soloScore > 70,
		languages:      len(languageSet),
		soloScore:      soloScore,
		bugSlayerScore: bugSlayer,
	}

	p := Personality{
		Title:       "Code Crafter",
		Emoji:       "👨‍💻",
		Description: "A balanced developer with diverse skills.",
		Traits:      traitList(traits),
	}
	for _, rule := range personalityRules {
		if rule.matches(traits) {
			p.Title = rule.title
			p.Emoji = rule.emoji
			p.Description = rule.description
			break
		}
	}

	return p
}

// traitList surfaces all four facets as scored attributes, regardless
// of which title rule fires.
func traitList(t personalityTraits) []PersonalityTrait {
	traits := make([]PersonalityTrait, 0, 4)

	switch {
	case t.nightOwl:
		traits = append(traits, PersonalityTrait{Name: "Night Owl", Value: 85, Label: "🦉 Codes when the moon is out"})
	case t.earlyBird:
		traits = append(traits, PersonalityTrait{Name: "Early Bird", Value: 15, Label: "🐦 Catches the morning commits"})
	default:
		traits = append(traits, PersonalityTrait{Name: "Daytime Coder", Value: 50, Label: "☀️ Peak performance during sunlight"})
	}

	languageValue := t.languages * 15
	if languageValue > 100 {
		languageValue = 100
	}
	if t.polyglot {
		traits = append(traits, PersonalityTrait{Name: "Polyglot", Value: languageValue, Label: "🌍 Master of many languages"})
	} else {
		traits = append(traits, PersonalityTrait{Name: "Specialist", Value: languageValue, Label: "🎯 Deep expertise in few"})
	}

	if t.weekendWarrior {
		traits = append(traits, PersonalityTrait{Name: "Weekend Warrior", Value: 80, Label: "💪 Codes through weekends"})
	} else {
		traits = append(traits, PersonalityTrait{Name: "Weekday Wonder", Value: 30, Label: "📅 Balanced work schedule"})
	}

	if t.solo {
		traits = append(traits, PersonalityTrait{Name: "Solo Coder", Value: t.soloScore, Label: "🏴‍☠️ Independent creator"})
	} else {
		traits = append(traits, PersonalityTrait{Name: "Team Player", Value: t.soloScore, Label: "🤝 Collaborative spirit"})
	}

	return traits
}
