package catalog

// ClassID identifies a protected class, e.g. "familial_status".
type ClassID string

// Federal baseline under the Fair Housing Act, 42 U.S.C. §3604.
const (
	Race           ClassID = "race"
	Color          ClassID = "color"
	Religion       ClassID = "religion"
	NationalOrigin ClassID = "national_origin"
	Sex            ClassID = "sex"
	FamilialStatus ClassID = "familial_status"
	Disability     ClassID = "disability"
)

// Jurisdiction-only classes.
const (
	SourceOfIncome     ClassID = "source_of_income"
	MaritalStatus      ClassID = "marital_status"
	SexualOrientation  ClassID = "sexual_orientation"
	GenderIdentity     ClassID = "gender_identity"
	MilitaryStatus     ClassID = "military_status"
	Age                ClassID = "age"
	PrimaryLanguage    ClassID = "primary_language"
	MedicalCondition   ClassID = "medical_condition"
	Ancestry           ClassID = "ancestry"
	GeneticInformation ClassID = "genetic_information"
	CitizenshipStatus  ClassID = "citizenship_status"
	ImmigrationStatus  ClassID = "immigration_status"
	Creed              ClassID = "creed"
)

// ProtectedClass is a legally defined category with its display name.
type ProtectedClass struct {
	ID      ClassID `json:"id" yaml:"id"`
	Name    string  `json:"name" yaml:"name"`
	Federal bool    `json:"federal" yaml:"federal"`
}

// federalBaseline is ordered the way reports list it.
var federalBaseline = []ClassID{Race, Color, Religion, NationalOrigin, Sex, FamilialStatus, Disability}

func defaultClasses() []ProtectedClass {
	return []ProtectedClass{
		{ID: Race, Name: "Race", Federal: true},
		{ID: Color, Name: "Color", Federal: true},
		{ID: Religion, Name: "Religion", Federal: true},
		{ID: NationalOrigin, Name: "National Origin", Federal: true},
		{ID: Sex, Name: "Sex", Federal: true},
		{ID: FamilialStatus, Name: "Familial Status", Federal: true},
		{ID: Disability, Name: "Disability", Federal: true},
		{ID: SourceOfIncome, Name: "Source of Income"},
		{ID: MaritalStatus, Name: "Marital Status"},
		{ID: SexualOrientation, Name: "Sexual Orientation"},
		{ID: GenderIdentity, Name: "Gender Identity"},
		{ID: MilitaryStatus, Name: "Military/Veteran Status"},
		{ID: Age, Name: "Age"},
		{ID: PrimaryLanguage, Name: "Primary Language"},
		{ID: MedicalCondition, Name: "Medical Condition"},
		{ID: Ancestry, Name: "Ancestry"},
		{ID: GeneticInformation, Name: "Genetic Information"},
		{ID: CitizenshipStatus, Name: "Citizenship Status"},
		{ID: ImmigrationStatus, Name: "Immigration Status"},
		{ID: Creed, Name: "Creed"},
	}
}
