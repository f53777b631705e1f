package domain

// LangHindi is the query value selecting the Hindi edition. Any other value,
// including absence, selects the default (non-Hindi) edition.
const LangHindi = "hi"

// devanagariLo and devanagariHi bound the Devanagari Unicode block.
const (
	devanagariLo = 0x0900
	devanagariHi = 0x097F
)

// ContainsDevanagari reports whether s contains at least one code point in
// the Devanagari block (U+0900 through U+097F inclusive).
func ContainsDevanagari(s string) bool {
	for _, r := range s {
		if r >= devanagariLo && r <= devanagariHi {
			return true
		}
	}
	return false
}

// IsHindi classifies a record from its candidate text fields. The rule is
// asymmetric on purpose: a record is Hindi if ANY candidate field contains
// Devanagari, and non-Hindi only if ALL of them are free of it. A record
// with a Hindi headline but an English title therefore lands in the Hindi
// edition and is excluded from the default edition.
func IsHindi(candidates ...string) bool {
	for _, c := range candidates {
		if ContainsDevanagari(c) {
			return true
		}
	}
	return false
}

// HindiCondition builds the store filter for the Hindi edition: at least one
// of the given fields contains Devanagari.
func HindiCondition(fields ...Field) Condition {
	or := make(Or, 0, len(fields))
	for _, f := range fields {
		or = append(or, HasDevanagari{Field: f})
	}
	return or
}

// NonHindiCondition builds the store filter for the default edition: every
// given field is free of Devanagari (absent fields count as free).
func NonHindiCondition(fields ...Field) Condition {
	and := make(And, 0, len(fields))
	for _, f := range fields {
		and = append(and, NoDevanagari{Field: f})
	}
	return and
}
