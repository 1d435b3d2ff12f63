package fields

// Label names one extractable form field and the label strings that may
// mark it on the page. Synonyms are tried in listed order; order is the
// documented precedence when several synonyms could match.
type Label struct {
	// Name is the canonical field name used as the result key.
	Name string `mapstructure:"name"`

	// Synonyms are the label strings to search for, in precedence order.
	Synonyms []string `mapstructure:"synonyms"`
}

// DefaultMedicalLabels returns the ordered label table for a standard
// patient registration form.
func DefaultMedicalLabels() []Label {
	return []Label{
		{Name: "patient_name", Synonyms: []string{"First name", "Name"}},
		{Name: "surname", Synonyms: []string{"Surname"}},
		{Name: "date_of_birth", Synonyms: []string{"D.O.B", "DOB", "Date of Birth"}},
		{Name: "gender", Synonyms: []string{"Sex", "Gender"}},
		{Name: "address", Synonyms: []string{"Address"}},
		{Name: "suburb", Synonyms: []string{"Suburb"}},
		{Name: "state", Synonyms: []string{"State"}},
		{Name: "phone", Synonyms: []string{"Phone"}},
		{Name: "mobile", Synonyms: []string{"Mobile"}},
		{Name: "email", Synonyms: []string{"Email"}},
		{Name: "occupation", Synonyms: []string{"Occupation"}},
		{Name: "appointment_datetime", Synonyms: []string{"Appointment Date", "Date / Time"}},
		{Name: "procedure", Synonyms: []string{"Procedure"}},
		{Name: "hospital_name", Synonyms: []string{"Hospital", "Facility"}},
		{Name: "hospital_address", Synonyms: []string{"Address"}},
		{Name: "health_fund", Synonyms: []string{"Health Fund"}},
		{Name: "insurance_id", Synonyms: []string{"Membership No", "Policy No"}},
		{Name: "gp_name", Synonyms: []string{"GP", "General Practitioner"}},
		{Name: "referrer", Synonyms: []string{"Referrer"}},
		{Name: "comments", Synonyms: []string{"Comments"}},
		{Name: "diagnosis", Synonyms: []string{"Diagnosis"}},
	}
}
