package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanerClean(t *testing.T) {
	cleaner := NewCleaner(nil)

	tests := []struct {
		name string
		desc string
		want string
	}{
		{
			name: "noise phrases and punctuation removed",
			desc: "CARD PURCHASE Starbucks #4512!!",
			want: "starbucks 4512",
		},
		{
			name: "pos prefix stripped",
			desc: "POS Starbucks",
			want: "starbucks",
		},
		{
			name: "lowercases",
			desc: "WHOLE FOODS MARKET",
			want: "whole foods market",
		},
		{
			name: "collapses whitespace",
			desc: "trader   joe s\t#552",
			want: "trader joe s 552",
		},
		{
			name: "noise removal is not word-boundary aware",
			desc: "debitwise services",
			want: "wise services",
		},
		{
			name: "empty input",
			desc: "",
			want: "",
		},
		{
			name: "only noise",
			desc: "DEBIT CARD PURCHASE",
			want: "",
		},
		{
			name: "unicode punctuation becomes space",
			desc: "café—corner",
			want: "caf corner",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cleaner.Clean(tt.desc))
		})
	}
}

func TestCleanerIdempotent(t *testing.T) {
	cleaner := NewCleaner(nil)

	samples := []string{
		"CARD PURCHASE Starbucks #4512!!",
		"POS WHOLE FOODS #123 SEATTLE WA",
		"Monthly Interest Payment",
		"AMZN Mktp US*1A2B3C",
		"check 1042",
		"",
	}

	for _, s := range samples {
		once := cleaner.Clean(s)
		assert.Equal(t, once, cleaner.Clean(once), "clean should be idempotent for %q", s)
	}
}

func TestCleanerCustomNoiseList(t *testing.T) {
	cleaner := NewCleaner([]string{"ach", "transfer"})

	assert.Equal(t, "payroll acme corp", cleaner.Clean("ACH TRANSFER Payroll ACME Corp"))
	// Default noise words are not applied when a custom list is given.
	assert.Equal(t, "pos coffee", cleaner.Clean("POS Coffee"))
}
