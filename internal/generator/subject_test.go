package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveSubject(t *testing.T) {
	tests := []struct {
		raw  string
		want Subject
	}{
		{"matematik", SubjectMath},
		{"Math", SubjectMath},
		{"  MATHEMATICS ", SubjectMath},
		{"history", SubjectHistory},
		{"TARİH", SubjectHistory},
		{"English", SubjectEnglish},
		{"Fen Bilimleri", SubjectScience},
		{"biology", SubjectScience},
		{"Physics", SubjectScience},
		{"chemistry", SubjectScience},
		{"geography", Subject("geography")},
		{"Art History", Subject("arthistory")},
		{"", Subject("")},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveSubject(tt.raw))
		})
	}
}

func TestAliasesFor(t *testing.T) {
	assert.Equal(t, []string{"biology", "chemistry", "fen", "fenbilimleri", "physics", "science"}, AliasesFor(SubjectScience))
	assert.Empty(t, AliasesFor(Subject("geography")))
}
