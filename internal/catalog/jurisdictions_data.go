package catalog

// defaultProfiles lists the jurisdictions the registry ships with. Additional
// holds only classes beyond the federal baseline.
func defaultProfiles() []JurisdictionProfile {
	return []JurisdictionProfile{
		{Code: FederalCode, Name: "United States (federal only)"},
		{Code: "AL", Name: "Alabama", Statutes: []string{"Ala. Code §24-8-1 et seq. (Alabama Fair Housing Law)"}},
		{Code: "AK", Name: "Alaska", Additional: []ClassID{MaritalStatus}, Statutes: []string{"Alaska Stat. §18.80.240"}},
		{Code: "AZ", Name: "Arizona", Statutes: []string{"A.R.S. §41-1491 et seq. (Arizona Fair Housing Act)"}},
		{Code: "AR", Name: "Arkansas", Statutes: []string{"Ark. Code §16-123-301 et seq."}},
		{
			Code: "CA", Name: "California",
			Additional: []ClassID{
				SourceOfIncome, MaritalStatus, SexualOrientation, GenderIdentity, MilitaryStatus, Age,
				PrimaryLanguage, MedicalCondition, Ancestry, GeneticInformation, CitizenshipStatus, ImmigrationStatus,
			},
			Statutes: []string{"Cal. Gov. Code §12955 (FEHA)", "Cal. Civ. Code §51 (Unruh Civil Rights Act)"},
		},
		{
			Code: "CO", Name: "Colorado",
			Additional: []ClassID{SourceOfIncome, MaritalStatus, SexualOrientation, GenderIdentity, MilitaryStatus, Ancestry, Creed},
			Statutes:   []string{"C.R.S. §24-34-502"},
		},
		{
			Code: "CT", Name: "Connecticut",
			Additional: []ClassID{SourceOfIncome, MaritalStatus, SexualOrientation, GenderIdentity, MilitaryStatus, Age, Ancestry},
			Statutes:   []string{"Conn. Gen. Stat. §46a-64c"},
		},
		{
			Code: "DE", Name: "Delaware",
			Additional: []ClassID{SourceOfIncome, MaritalStatus, SexualOrientation, GenderIdentity, Age, Creed},
			Statutes:   []string{"6 Del. C. §4603"},
		},
		{
			Code: "DC", Name: "District of Columbia",
			Additional: []ClassID{SourceOfIncome, MaritalStatus, SexualOrientation, GenderIdentity, Age, GeneticInformation},
			Statutes:   []string{"D.C. Code §2-1402.21 (D.C. Human Rights Act)"},
		},
		{Code: "FL", Name: "Florida", Statutes: []string{"Fla. Stat. §760.23 (Florida Fair Housing Act)"}},
		{Code: "GA", Name: "Georgia", Statutes: []string{"O.C.G.A. §8-3-202"}},
		{
			Code: "HI", Name: "Hawaii",
			Additional: []ClassID{MaritalStatus, SexualOrientation, GenderIdentity, Age, Ancestry},
			Statutes:   []string{"Haw. Rev. Stat. §515-3"},
		},
		{Code: "ID", Name: "Idaho", Statutes: []string{"Idaho Code §67-5909"}},
		{
			Code: "IL", Name: "Illinois",
			Additional: []ClassID{SourceOfIncome, MaritalStatus, SexualOrientation, GenderIdentity, MilitaryStatus, Age, Ancestry, ImmigrationStatus},
			Statutes:   []string{"775 ILCS 5/3-102 (Illinois Human Rights Act)"},
		},
		{Code: "IN", Name: "Indiana", Additional: []ClassID{Ancestry}, Statutes: []string{"Ind. Code §22-9.5-5"}},
		{Code: "IA", Name: "Iowa", Additional: []ClassID{SexualOrientation, GenderIdentity, Creed}, Statutes: []string{"Iowa Code §216.8"}},
		{Code: "KS", Name: "Kansas", Additional: []ClassID{Ancestry}, Statutes: []string{"K.S.A. §44-1016"}},
		{Code: "KY", Name: "Kentucky", Statutes: []string{"KRS §344.360"}},
		{Code: "LA", Name: "Louisiana", Statutes: []string{"La. R.S. 51:2606"}},
		{
			Code: "ME", Name: "Maine",
			Additional: []ClassID{SourceOfIncome, SexualOrientation, GenderIdentity, Ancestry},
			Statutes:   []string{"5 M.R.S. §4582"},
		},
		{
			Code: "MD", Name: "Maryland",
			Additional: []ClassID{SourceOfIncome, MaritalStatus, SexualOrientation, GenderIdentity, MilitaryStatus},
			Statutes:   []string{"Md. Code, State Gov't §20-705"},
		},
		{
			Code: "MA", Name: "Massachusetts",
			Additional: []ClassID{SourceOfIncome, MaritalStatus, SexualOrientation, GenderIdentity, MilitaryStatus, Age, Ancestry, GeneticInformation},
			Statutes:   []string{"M.G.L. c. 151B §4"},
		},
		{
			Code: "MI", Name: "Michigan",
			Additional: []ClassID{MaritalStatus, SexualOrientation, GenderIdentity, Age},
			Statutes:   []string{"MCL §37.2502 (Elliott-Larsen Civil Rights Act)"},
		},
		{
			Code: "MN", Name: "Minnesota",
			Additional: []ClassID{SourceOfIncome, MaritalStatus, SexualOrientation, GenderIdentity, Creed},
			Statutes:   []string{"Minn. Stat. §363A.09"},
		},
		{Code: "MS", Name: "Mississippi", Statutes: []string{"Miss. Code §43-33-723"}},
		{Code: "MO", Name: "Missouri", Additional: []ClassID{Ancestry}, Statutes: []string{"Mo. Rev. Stat. §213.040"}},
		{Code: "MT", Name: "Montana", Additional: []ClassID{MaritalStatus, Age, Creed}, Statutes: []string{"Mont. Code §49-2-305"}},
		{Code: "NE", Name: "Nebraska", Statutes: []string{"Neb. Rev. Stat. §20-318"}},
		{
			Code: "NV", Name: "Nevada",
			Additional: []ClassID{SexualOrientation, GenderIdentity, Ancestry},
			Statutes:   []string{"NRS §118.100"},
		},
		{
			Code: "NH", Name: "New Hampshire",
			Additional: []ClassID{MaritalStatus, SexualOrientation, GenderIdentity, Age, Creed},
			Statutes:   []string{"RSA 354-A:10"},
		},
		{
			Code: "NJ", Name: "New Jersey",
			Additional: []ClassID{SourceOfIncome, MaritalStatus, SexualOrientation, GenderIdentity, MilitaryStatus, Age, Ancestry, Creed},
			Statutes:   []string{"N.J.S.A. 10:5-12 (Law Against Discrimination)"},
		},
		{
			Code: "NM", Name: "New Mexico",
			Additional: []ClassID{SourceOfIncome, MaritalStatus, SexualOrientation, GenderIdentity, Ancestry},
			Statutes:   []string{"N.M. Stat. §28-1-7"},
		},
		{
			Code: "NY", Name: "New York",
			Additional: []ClassID{
				SourceOfIncome, MaritalStatus, SexualOrientation, GenderIdentity, MilitaryStatus, Age,
				Creed, CitizenshipStatus, ImmigrationStatus,
			},
			Statutes: []string{"N.Y. Exec. Law §296(5)"},
		},
		{Code: "NC", Name: "North Carolina", Statutes: []string{"N.C. Gen. Stat. §41A-4"}},
		{
			Code: "ND", Name: "North Dakota",
			Additional: []ClassID{SourceOfIncome, MaritalStatus, Age},
			Statutes:   []string{"N.D. Cent. Code §14-02.5-02"},
		},
		{Code: "OH", Name: "Ohio", Additional: []ClassID{MilitaryStatus, Ancestry}, Statutes: []string{"Ohio Rev. Code §4112.02(H)"}},
		{Code: "OK", Name: "Oklahoma", Statutes: []string{"Okla. Stat. tit. 25, §1452"}},
		{
			Code: "OR", Name: "Oregon",
			Additional: []ClassID{SourceOfIncome, MaritalStatus, SexualOrientation, GenderIdentity},
			Statutes:   []string{"ORS §659A.421"},
		},
		{Code: "PA", Name: "Pennsylvania", Additional: []ClassID{Age, Ancestry}, Statutes: []string{"43 P.S. §955(h) (Pennsylvania Human Relations Act)"}},
		{
			Code: "RI", Name: "Rhode Island",
			Additional: []ClassID{SourceOfIncome, MaritalStatus, SexualOrientation, GenderIdentity, MilitaryStatus, Age},
			Statutes:   []string{"R.I. Gen. Laws §34-37-4"},
		},
		{Code: "SC", Name: "South Carolina", Statutes: []string{"S.C. Code §31-21-40"}},
		{Code: "SD", Name: "South Dakota", Additional: []ClassID{Ancestry, Creed}, Statutes: []string{"SDCL §20-13-20"}},
		{Code: "TN", Name: "Tennessee", Statutes: []string{"Tenn. Code §4-21-601"}},
		{Code: "TX", Name: "Texas", Statutes: []string{"Tex. Prop. Code §301.021"}},
		{
			Code: "UT", Name: "Utah",
			Additional: []ClassID{SourceOfIncome, SexualOrientation, GenderIdentity},
			Statutes:   []string{"Utah Code §57-21-5"},
		},
		{
			Code: "VT", Name: "Vermont",
			Additional: []ClassID{SourceOfIncome, MaritalStatus, SexualOrientation, GenderIdentity, Age},
			Statutes:   []string{"9 V.S.A. §4503"},
		},
		{
			Code: "VA", Name: "Virginia",
			Additional: []ClassID{SourceOfIncome, SexualOrientation, GenderIdentity, MilitaryStatus, Age},
			Statutes:   []string{"Va. Code §36-96.3"},
		},
		{
			Code: "WA", Name: "Washington",
			Additional: []ClassID{
				SourceOfIncome, MaritalStatus, SexualOrientation, GenderIdentity, MilitaryStatus,
				Creed, CitizenshipStatus, ImmigrationStatus,
			},
			Statutes: []string{"RCW §49.60.222"},
		},
		{Code: "WV", Name: "West Virginia", Additional: []ClassID{Ancestry}, Statutes: []string{"W. Va. Code §5-11A-5"}},
		{
			Code: "WI", Name: "Wisconsin",
			Additional: []ClassID{SourceOfIncome, MaritalStatus, SexualOrientation, Age, Ancestry},
			Statutes:   []string{"Wis. Stat. §106.50"},
		},
		{Code: "WY", Name: "Wyoming", Statutes: []string{"Wyo. Stat. §40-26-103"}},
	}
}
