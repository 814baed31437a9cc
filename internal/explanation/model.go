// Package explanation holds the structured explainer output and the schema
// validation of raw model responses.
package explanation

// Explanation is the validated output of one explain request. It is immutable
// after creation and discarded when a new request is made.
type Explanation struct {
	SummarySentences []string       `json:"summary_sentences" validate:"required,len=3,dive,required"`
	Bullets          []string       `json:"bullets" validate:"required,len=5,dive,required"`
	Vocab            []VocabEntry   `json:"vocab" validate:"required,len=3,dive"`
	EvidenceLines    []EvidenceLine `json:"evidence_lines,omitempty" validate:"omitempty,dive"`
}

// VocabEntry is a term from the paragraph with its definition
type VocabEntry struct {
	Term       string `json:"term" validate:"required"`
	Definition string `json:"definition" validate:"required"`
}

// EvidenceLine links a bullet back to the sentence it was drawn from
type EvidenceLine struct {
	BulletIndex int    `json:"bullet_index" validate:"min=0,max=4"`
	Evidence    string `json:"evidence" validate:"required"`
}
