// Package capture extracts key labels and code triples from raw PRC
// capture text.
//
// Capture files are free-form: learner dumps, spreadsheet exports, and
// hand-edited notes all appear in the wild. Extraction therefore never
// fails; it runs two independent pattern scans (labels and byte triples)
// over the whole text and pairs the results positionally.
package capture
