package catalog

const disabilityCitation = "Fair Housing Act, 42 U.S.C. §3604(c), (f)"

func federalRule(id string, p Pattern, cat ClassID, sev Severity, suggestion string) Rule {
	return Rule{ID: id, Pattern: p, Category: cat, Severity: sev, Citation: FederalCitation, Suggestion: suggestion}
}

func stateRule(id string, p Pattern, cat ClassID, sev Severity, suggestion string, only ...string) Rule {
	return Rule{ID: id, Pattern: p, Category: cat, Severity: sev, Citation: StateLawCitation, Suggestion: suggestion, Jurisdictions: only}
}

// defaultRules is the built-in catalog. Order matters: it is the tie-break for
// ranking and decides which rule reports a phrase that several rules match.
func defaultRules() []Rule {
	rules := []Rule{
		// Familial status
		federalRule("familial-no-children",
			Regex(`\bno\s+(?:kids|children|minors|teenagers)\b(?:\s+(?:allowed|permitted|please))?`),
			FamilialStatus, SeverityHigh,
			"Remove restrictions on children. Describe the property, not who may live in it."),
		federalRule("familial-adults-only",
			Regex(`\badults?[\s-]+only\b`),
			FamilialStatus, SeverityHigh,
			"Remove 'adults only'. Only qualified housing for older persons may restrict occupancy by age."),
		federalRule("familial-not-suitable",
			Regex(`\bnot\s+(?:suitable|ideal|appropriate)\s+for\s+(?:children|kids|families)\b`),
			FamilialStatus, SeverityHigh,
			"Describe physical features (e.g. 'no fenced yard') instead of who the home suits."),
		federalRule("familial-no-pregnant",
			Regex(`\bno\s+pregnant\s+(?:women|tenants|applicants)\b`),
			FamilialStatus, SeverityHigh,
			"Remove any reference to pregnancy."),
		federalRule("familial-child-limit",
			Regex(`\b(?:no\s+more\s+than\s+(?:one|two|1|2)\s+child(?:ren)?|(?:one|two|1|2)\s+child(?:ren)?\s+max(?:imum)?)\b`),
			FamilialStatus, SeverityMedium,
			"State occupancy limits per bedroom as set by local code, not a number of children."),
		federalRule("familial-adult-living",
			Regex(`\badult\s+(?:community|living|building|complex)\b`),
			FamilialStatus, SeverityMedium,
			"Use only if the property qualifies as housing for older persons under HOPA (42 U.S.C. §3607(b))."),
		federalRule("familial-empty-nesters",
			Literal("empty nesters"),
			FamilialStatus, SeverityMedium,
			"Describe features such as 'low-maintenance' or 'single-level living' instead of the ideal occupant."),
		federalRule("familial-ideal-occupant",
			Regex(`\b(?:perfect|ideal|great)\s+for\s+(?:a\s+)?(?:couples?|singles?|single\s+persons?|single\s+professionals?)\b`),
			FamilialStatus, SeverityMedium,
			"Describe the space (e.g. 'cozy one-bedroom') rather than the household it suits."),
		federalRule("familial-mother-in-law",
			Regex(`\bmother[\s-]in[\s-]law\s+(?:suite|unit|apartment|quarters)\b`),
			FamilialStatus, SeverityLow,
			"Use 'accessory dwelling unit' or 'guest suite'."),

		// Race and color
		federalRule("race-only",
			Regex(`\b(?:whites?|caucasians?|blacks?|african[\s-]americans?|hispanics?|latinos?|asians?)\s+only\b`),
			Race, SeverityHigh,
			"Remove any racial preference or limitation."),
		federalRule("race-preference",
			Regex(`\b(?:white|caucasian|black|hispanic|latino|asian)\s+(?:tenants?|families|applicants?|buyers?|neighborhood)\b`),
			Race, SeverityHigh,
			"Remove racial descriptors of people or neighborhoods."),
		federalRule("race-ethnic-area",
			Regex(`\b(?:ethnic|racially\s+mixed|integrated|segregated)\s+(?:neighborhood|area|community|block)\b`),
			Race, SeverityMedium,
			"Describe amenities and location, not the racial or ethnic makeup of the area."),
		federalRule("race-exclusive-area",
			Regex(`\bexclusive\s+(?:neighborhood|area|community|enclave)\b`),
			Race, SeverityMedium,
			"Avoid 'exclusive', which can signal steering. Name specific amenities instead."),
		federalRule("color-skin",
			Regex(`\b(?:light|dark|fair)[\s-]skinned\b`),
			Color, SeverityHigh,
			"Remove any reference to skin color."),

		// National origin
		federalRule("origin-no-foreigners",
			Regex(`\bno\s+(?:foreigners|immigrants|refugees|mexicans|arabs)\b`),
			NationalOrigin, SeverityHigh,
			"Remove restrictions based on where applicants or their families come from."),
		federalRule("origin-must-speak-english",
			Regex(`\b(?:must|should)\s+speak\s+english\b`),
			NationalOrigin, SeverityHigh,
			"Do not require English proficiency. List the languages you can communicate in instead."),
		federalRule("origin-english-only",
			Regex(`\benglish[\s-]only\b`),
			NationalOrigin, SeverityHigh,
			"Remove language restrictions on applicants."),
		federalRule("origin-citizens-only",
			Regex(`\b(?:us|u\.s\.|american)\s+citizens?\s+only\b`),
			NationalOrigin, SeverityHigh,
			"Apply the same screening criteria to every applicant regardless of citizenship."),

		// Religion
		federalRule("religion-only",
			Regex(`\b(?:christians?|muslims?|jews|jewish|catholics?|protestants?|hindus?|mormons?)\s+(?:only|preferred)\b`),
			Religion, SeverityHigh,
			"Remove any religious preference or limitation."),
		federalRule("religion-exclusion",
			Regex(`\bno\s+(?:christians|muslims|jews|catholics|hindus|atheists)\b`),
			Religion, SeverityHigh,
			"Remove any religious exclusion."),
		federalRule("religion-descriptor",
			Regex(`\b(?:christian|catholic|jewish|muslim)\s+(?:home|household|family|community|neighborhood)\b`),
			Religion, SeverityMedium,
			"Remove religious descriptors of the home or community."),

		// Sex
		federalRule("sex-only",
			Regex(`\b(?:females?|males?|women|men|ladies|gentlemen)\s+only\b`),
			Sex, SeverityHigh,
			"Remove sex-based limitations on who may apply."),
		federalRule("sex-preferred",
			Regex(`\b(?:females?|males?|women|men)\s+preferred\b`),
			Sex, SeverityHigh,
			"Remove sex-based preferences."),
		federalRule("sex-master-room",
			Regex(`\bmaster\s+(?:bedroom|suite|bath(?:room)?|closet)\b`),
			Sex, SeverityLow,
			"Use 'primary bedroom', 'primary suite' or 'main bath'."),
		federalRule("sex-man-cave",
			Regex(`\bman[\s-]cave\b`),
			Sex, SeverityLow,
			"Use 'bonus room' or 'den'."),
		federalRule("sex-bachelor-pad",
			Regex(`\bbachelor(?:ette)?\s+pad\b`),
			Sex, SeverityLow,
			"Use 'studio' or 'cozy apartment'."),
		federalRule("sex-his-and-hers",
			Regex(`\bhis\s+(?:and|&)\s+hers\b`),
			Sex, SeverityLow,
			"Use 'dual' (e.g. 'dual closets', 'dual sinks')."),

		// Disability
		{
			ID: "disability-no-wheelchairs", Pattern: Regex(`\bno\s+wheelchairs?\b`),
			Category: Disability, Severity: SeverityHigh, Citation: disabilityCitation,
			Suggestion: "Remove restrictions on mobility devices. Describe accessibility features factually.",
		},
		{
			ID: "disability-able-bodied", Pattern: Regex(`\b(?:must\s+be\s+)?able[\s-]bodied\b`),
			Category: Disability, Severity: SeverityHigh, Citation: disabilityCitation,
			Suggestion: "Remove physical-ability requirements for tenants.",
		},
		{
			ID: "disability-exclusion", Pattern: Regex(`\bno\s+(?:handicapped|disabled|mentally\s+ill)\b`),
			Category: Disability, Severity: SeverityHigh, Citation: disabilityCitation,
			Suggestion: "Remove exclusions of people with disabilities.",
		},
		{
			ID: "disability-assistance-animals", Pattern: Regex(`\bno\s+(?:service|assistance|support|emotional\s+support)\s+animals?\b`),
			Category: Disability, Severity: SeverityHigh, Citation: disabilityCitation,
			Suggestion: "State the pet policy and note that assistance animals are accommodated as required by law.",
		},
		{
			ID: "disability-physical-requirement", Pattern: Regex(`\bmust\s+be\s+able\s+to\s+(?:climb\s+stairs|walk)\b`),
			Category: Disability, Severity: SeverityHigh, Citation: disabilityCitation,
			Suggestion: "Describe the property (e.g. 'third-floor walk-up') instead of requirements for the tenant.",
		},
		{
			ID: "disability-healthy-only", Pattern: Regex(`\b(?:healthy|physically\s+fit)\s+(?:tenants?|applicants?|individuals?)\s+only\b`),
			Category: Disability, Severity: SeverityHigh, Citation: disabilityCitation,
			Suggestion: "Remove health requirements for tenants.",
		},
		{
			ID: "disability-handicapped-term", Pattern: Regex(`\bhandicap(?:ped)?\s+(?:accessible|parking|access|unit)\b`),
			Category: Disability, Severity: SeverityLow, Citation: disabilityCitation,
			Suggestion: "Use 'accessible' rather than 'handicapped'.",
		},

		// Jurisdiction-only classes
		stateRule("income-no-vouchers",
			Regex(`\bno\s+(?:section[\s-]*8|hud|housing\s+choice\s+vouchers?|housing\s+vouchers?|vouchers?)\b`),
			SourceOfIncome, SeverityHigh,
			"Accept all lawful sources of income, including housing vouchers, and apply the same screening to each."),
		stateRule("income-vouchers-refused",
			Regex(`\b(?:section[\s-]*8|vouchers?)\s+(?:not\s+accepted|need\s+not\s+apply|not\s+allowed)\b`),
			SourceOfIncome, SeverityHigh,
			"Accept all lawful sources of income, including housing vouchers."),
		stateRule("income-no-assistance",
			Regex(`\bno\s+(?:welfare|public\s+assistance|government\s+assistance|ssi)\b`),
			SourceOfIncome, SeverityHigh,
			"Remove exclusions of public-assistance income."),
		stateRule("income-employment-only",
			Regex(`\b(?:must\s+be\s+employed|employment\s+income\s+only|must\s+have\s+(?:a\s+)?job)\b`),
			SourceOfIncome, SeverityMedium,
			"State an income requirement that any lawful source of income can meet."),
		stateRule("marital-only",
			Regex(`\b(?:married\s+couples?|singles?|single\s+persons?)\s+only\b`),
			MaritalStatus, SeverityHigh,
			"Remove marital-status limitations."),
		stateRule("marital-no-unmarried",
			Regex(`\bno\s+(?:unmarried|cohabiting)\s+couples\b`),
			MaritalStatus, SeverityHigh,
			"Remove marital-status exclusions."),
		stateRule("orientation-exclusion",
			Regex(`\bno\s+(?:gays?|lesbians?|homosexuals?|lgbtq?)\b`),
			SexualOrientation, SeverityHigh,
			"Remove exclusions based on sexual orientation."),
		stateRule("orientation-straight-only",
			Regex(`\bstraight\s+(?:couples?|tenants?)\s+only\b`),
			SexualOrientation, SeverityHigh,
			"Remove preferences based on sexual orientation."),
		stateRule("gender-identity-exclusion",
			Regex(`\bno\s+(?:transgender|transsexuals?)\b`),
			GenderIdentity, SeverityHigh,
			"Remove exclusions based on gender identity."),
		stateRule("military-exclusion",
			Regex(`\bno\s+(?:military|soldiers|servicemembers|veterans)\b`),
			MilitaryStatus, SeverityHigh,
			"Remove exclusions of service members and veterans."),
		stateRule("age-exclusion",
			Regex(`\bno\s+(?:seniors|elderly|retirees|senior\s+citizens)\b`),
			Age, SeverityHigh,
			"Remove age-based exclusions."),
		stateRule("age-limit",
			Regex(`\b(?:under|over)\s+\d{2}\s+only\b`),
			Age, SeverityHigh,
			"Remove age limits unless the property is qualified housing for older persons."),
		stateRule("age-young-occupants",
			Regex(`\byoung\s+(?:professionals?|couples?|people|tenants)\b`),
			Age, SeverityMedium,
			"Describe the home's features instead of the age of the ideal occupant."),
		stateRule("language-native-english",
			Regex(`\b(?:fluent|native)\s+english\s+(?:speakers?|required)\b`),
			PrimaryLanguage, SeverityMedium,
			"Do not screen applicants by primary language.",
			"CA"),
		stateRule("medical-exclusion",
			Regex(`\bno\s+(?:hiv|aids|cancer\s+patients)\b`),
			MedicalCondition, SeverityHigh,
			"Remove exclusions based on medical conditions.",
			"CA"),
		stateRule("ancestry-preference",
			Regex(`\b(?:european|african|asian|irish|italian|polish|german)\s+(?:descent|ancestry|heritage)\s+(?:only|preferred)\b`),
			Ancestry, SeverityHigh,
			"Remove ancestry preferences."),
		stateRule("immigration-exclusion",
			Regex(`\bno\s+(?:undocumented|illegals?|illegal\s+(?:aliens|immigrants))\b`),
			ImmigrationStatus, SeverityHigh,
			"Remove exclusions based on immigration status."),
		stateRule("citizenship-documents",
			Regex(`\b(?:green\s+card|proof\s+of\s+citizenship|social\s+security\s+card)\s+required\b`),
			CitizenshipStatus, SeverityMedium,
			"Accept any standard form of identification and apply it to all applicants."),
	}
	return rules
}
