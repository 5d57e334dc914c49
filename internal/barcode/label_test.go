package barcode

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLabel_Valid(t *testing.T) {
	cases := []struct {
		in   string
		want Mutation
	}{
		{"A1T", Mutation{Ref: "A", Position: 1, Alt: "T"}},
		{"C22G", Mutation{Ref: "C", Position: 22, Alt: "G"}},
		{"G29903C", Mutation{Ref: "G", Position: 29903, Alt: "C"}},
		{"a5t", Mutation{Ref: "a", Position: 5, Alt: "t"}},
		{"AT10GC", Mutation{Ref: "AT", Position: 10, Alt: "GC"}},
		{"A007T", Mutation{Ref: "A", Position: 7, Alt: "T"}},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseLabel(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseLabel_Malformed(t *testing.T) {
	for _, in := range []string{
		"",
		"M1",       // no alt
		"1T",       // no ref
		"AT",       // no digits
		"A-1T",     // sign
		"A1.5T",    // decimal
		" A1T",     // leading space
		"A1T ",     // trailing space
		"A1T2",     // trailing digits
		"Δ1T",      // non-ASCII letter
		"A１T",      // full-width digit
		"A0T",      // positions are 1-based
		"A99999999999999999999T",
	} {
		t.Run(in, func(t *testing.T) {
			_, err := ParseLabel(in)
			require.Error(t, err)
			var lfe *LabelFormatError
			require.True(t, errors.As(err, &lfe), "want *LabelFormatError, got %T", err)
			assert.Equal(t, in, lfe.Label)
		})
	}
}

func TestMutationString(t *testing.T) {
	m, err := ParseLabel("G333C")
	require.NoError(t, err)
	assert.Equal(t, "G333C", m.String())
}
