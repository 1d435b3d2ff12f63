package fields

import (
	"testing"

	"github.com/tsawler/formscan/model"
)

// makeWord creates a recognized word on a given row at a given horizontal
// position, using a fixed word width.
func makeWord(text string, xMin, yMin int) model.Word {
	return model.Word{
		Text: text,
		Box:  model.NewBox(xMin, yMin, xMin+80, yMin+20),
	}
}

func TestAnchorer_ResolvesRowValue(t *testing.T) {
	words := []model.Word{
		makeWord("BP:", 100, 200),
		makeWord("120/80", 200, 205),
		makeWord("mmHg", 300, 198),
		makeWord("Pulse:", 100, 300),
		makeWord("72", 200, 302),
	}
	labels := []Label{
		{Name: "blood_pressure", Synonyms: []string{"BP"}},
		{Name: "pulse", Synonyms: []string{"Pulse"}},
	}

	results := NewAnchorer().Anchor(words, labels)

	if got := results["blood_pressure"]; !got.Present || got.Value != "120/80 mmHg" {
		t.Errorf("blood_pressure = %+v, want present \"120/80 mmHg\"", got)
	}
	if got := results["pulse"]; !got.Present || got.Value != "72" {
		t.Errorf("pulse = %+v, want present \"72\"", got)
	}
}

func TestAnchorer_MissingLabelResolvesToMiss(t *testing.T) {
	words := []model.Word{
		makeWord("BP:", 100, 200),
		makeWord("120/80", 200, 205),
	}
	labels := []Label{
		{Name: "diagnosis", Synonyms: []string{"Diagnosis"}},
	}

	results := NewAnchorer().Anchor(words, labels)

	if got := results["diagnosis"]; got.Present {
		t.Errorf("Expected miss for absent label, got %+v", got)
	}
}

func TestAnchorer_TieBreakByXMin(t *testing.T) {
	// Candidates listed right to left in the input; the joined value must
	// still read left to right.
	words := []model.Word{
		makeWord("mmHg", 300, 200),
		makeWord("120/80", 200, 200),
		makeWord("BP:", 100, 200),
	}
	labels := []Label{{Name: "blood_pressure", Synonyms: []string{"BP"}}}

	results := NewAnchorer().Anchor(words, labels)

	if got := results["blood_pressure"]; got.Value != "120/80 mmHg" {
		t.Errorf("Expected candidates ordered by x, got %q", got.Value)
	}
}

func TestAnchorer_RowToleranceExcludesOtherRows(t *testing.T) {
	words := []model.Word{
		makeWord("Phone:", 100, 200),
		makeWord("555-0141", 200, 210), // 10 units off, same row
		makeWord("ignored", 200, 260),  // 60 units off, different row
	}
	labels := []Label{{Name: "phone", Synonyms: []string{"Phone"}}}

	results := NewAnchorer().Anchor(words, labels)

	if got := results["phone"]; got.Value != "555-0141" {
		t.Errorf("Expected only same-row word, got %q", got.Value)
	}
}

func TestAnchorer_LeftOfLabelExcluded(t *testing.T) {
	words := []model.Word{
		makeWord("notes", 0, 200),
		makeWord("Email:", 100, 200),
		makeWord("a@b.c", 200, 200),
	}
	labels := []Label{{Name: "email", Synonyms: []string{"Email"}}}

	results := NewAnchorer().Anchor(words, labels)

	if got := results["email"]; got.Value != "a@b.c" {
		t.Errorf("Expected words left of the label excluded, got %q", got.Value)
	}
}

func TestAnchorer_CaseInsensitiveSubstringMatch(t *testing.T) {
	words := []model.Word{
		makeWord("DIAGNOSIS:", 100, 200),
		makeWord("Influenza", 250, 200),
	}
	labels := []Label{{Name: "diagnosis", Synonyms: []string{"Diagnosis"}}}

	results := NewAnchorer().Anchor(words, labels)

	if got := results["diagnosis"]; got.Value != "Influenza" {
		t.Errorf("Expected case-insensitive match, got %q", got.Value)
	}
}

func TestAnchorer_SynonymPrecedence(t *testing.T) {
	// Both synonyms appear; the first listed synonym wins even though the
	// second appears earlier in the word list.
	words := []model.Word{
		makeWord("Gender:", 100, 100),
		makeWord("F", 250, 100),
		makeWord("Sex:", 100, 300),
		makeWord("female", 250, 300),
	}
	labels := []Label{{Name: "gender", Synonyms: []string{"Sex", "Gender"}}}

	results := NewAnchorer().Anchor(words, labels)

	if got := results["gender"]; got.Value != "female" {
		t.Errorf("Expected first-listed synonym to take precedence, got %q", got.Value)
	}
}

func TestAnchorer_EmptyOccurrenceKeepsSearching(t *testing.T) {
	// The first "Address" has nothing to its right; the second occurrence
	// anchors the value.
	words := []model.Word{
		makeWord("Address", 800, 100),
		makeWord("Address:", 100, 300),
		makeWord("12", 250, 300),
		makeWord("Main", 330, 300),
		makeWord("St", 420, 300),
	}
	labels := []Label{{Name: "address", Synonyms: []string{"Address"}}}

	results := NewAnchorer().Anchor(words, labels)

	if got := results["address"]; got.Value != "12 Main St" {
		t.Errorf("Expected later occurrence to anchor, got %q", got.Value)
	}
}

func TestAnchorer_ValueWordCap(t *testing.T) {
	words := []model.Word{makeWord("Comments:", 0, 100)}
	for i := 0; i < 12; i++ {
		words = append(words, makeWord("w", 90+i*70, 100))
	}
	labels := []Label{{Name: "comments", Synonyms: []string{"Comments"}}}

	results := NewAnchorer().Anchor(words, labels)

	got := results["comments"].Value
	want := "w w w w w w w w"
	if got != want {
		t.Errorf("Expected value capped at 8 words, got %q", got)
	}
}

func TestAnchorer_NeverFabricates(t *testing.T) {
	words := []model.Word{
		makeWord("Referrer:", 100, 200),
	}
	labels := []Label{{Name: "referrer", Synonyms: []string{"Referrer"}}}

	results := NewAnchorer().Anchor(words, labels)

	if got := results["referrer"]; got.Present {
		t.Errorf("Expected miss when label has no adjacent value, got %+v", got)
	}
}
