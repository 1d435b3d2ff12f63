// Package fields maps known form-field labels to adjacent value text using
// recognized word bounding boxes.
//
// Anchoring is purely geometric and lexical: a label synonym is located by
// case-insensitive substring match, and the field value is assembled from
// words on the same text row to the label's right. The anchorer never
// consults a model or invents tokens; a field whose label cannot be located
// resolves to an explicit miss.
//
// Label tables are caller-supplied and ordered. [DefaultMedicalLabels]
// ships the registration-form table this package was built around, and
// [LoadLabels] reads a table from a YAML or JSON file.
package fields
