package generator

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Subject is a canonical subject key of the template bank.
type Subject string

const (
	SubjectMath    Subject = "matematik"
	SubjectHistory Subject = "tarih"
	SubjectEnglish Subject = "ingilizce"
	SubjectScience Subject = "fen"
)

var subjectAliases = map[string]Subject{
	"matematik":    SubjectMath,
	"math":         SubjectMath,
	"mathematics":  SubjectMath,
	"tarih":        SubjectHistory,
	"history":      SubjectHistory,
	"ingilizce":    SubjectEnglish,
	"english":      SubjectEnglish,
	"fen":          SubjectScience,
	"fenbilimleri": SubjectScience,
	"science":      SubjectScience,
	"biology":      SubjectScience,
	"physics":      SubjectScience,
	"chemistry":    SubjectScience,
}

// ResolveSubject normalizes a free-form subject (case, whitespace, aliases)
// to its canonical key. Input that matches no alias is returned normalized
// but otherwise unchanged.
func ResolveSubject(raw string) Subject {
	// A Caser is stateful, so each call builds its own.
	key := normalizeSubject(cases.Lower(language.Und).String(raw))
	if s, ok := subjectAliases[key]; ok {
		return s
	}
	// "TARİH" only lowers to "tarih" under Turkish casing rules.
	if s, ok := subjectAliases[normalizeSubject(cases.Lower(language.Turkish).String(raw))]; ok {
		return s
	}
	return Subject(key)
}

// AliasesFor lists every alias that resolves to s, sorted.
func AliasesFor(s Subject) []string {
	var out []string
	for alias, target := range subjectAliases {
		if target == s {
			out = append(out, alias)
		}
	}
	sort.Strings(out)
	return out
}

func normalizeSubject(s string) string {
	return strings.Join(strings.Fields(s), "")
}
