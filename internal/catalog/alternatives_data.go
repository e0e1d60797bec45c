package catalog

// defaultAlternatives holds only cosmetic lexical substitutions that are safe
// to apply mechanically. Longer phrases come before the phrases they contain.
func defaultAlternatives() []Alternative {
	return []Alternative{
		{Phrase: "master bedroom", Replacements: []string{"primary bedroom", "main bedroom", "owner's bedroom"}, Category: Sex},
		{Phrase: "master suite", Replacements: []string{"primary suite", "main suite"}, Category: Sex},
		{Phrase: "master bathroom", Replacements: []string{"primary bathroom", "main bathroom"}, Category: Sex},
		{Phrase: "master bath", Replacements: []string{"primary bath", "main bath"}, Category: Sex},
		{Phrase: "master closet", Replacements: []string{"primary closet", "main closet"}, Category: Sex},
		{Phrase: "man cave", Replacements: []string{"bonus room", "den", "recreation room"}, Category: Sex},
		{Phrase: "bachelor pad", Replacements: []string{"studio apartment", "cozy apartment"}, Category: Sex},
		{Phrase: "his and hers", Replacements: []string{"dual", "double"}, Category: Sex},
		{Phrase: "mother-in-law suite", Replacements: []string{"accessory dwelling unit", "guest suite"}, Category: FamilialStatus},
		{Phrase: "mother-in-law unit", Replacements: []string{"accessory dwelling unit", "guest unit"}, Category: FamilialStatus},
		{Phrase: "mother-in-law apartment", Replacements: []string{"accessory apartment", "guest apartment"}, Category: FamilialStatus},
		{Phrase: "handicapped accessible", Replacements: []string{"accessible", "wheelchair accessible"}, Category: Disability},
		{Phrase: "handicap accessible", Replacements: []string{"accessible", "wheelchair accessible"}, Category: Disability},
		{Phrase: "handicapped parking", Replacements: []string{"accessible parking"}, Category: Disability},
		{Phrase: "exclusive neighborhood", Replacements: []string{"desirable neighborhood", "established neighborhood"}, Category: Race},
		{Phrase: "empty nesters", Replacements: []string{"anyone seeking a low-maintenance home"}, Category: FamilialStatus},
		{Phrase: "young professionals", Replacements: []string{"anyone", "all renters"}, Category: Age},
	}
}
