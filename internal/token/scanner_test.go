package token

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect(t *testing.T, src string) []Entity {
	t.Helper()
	s := NewScanner(strings.NewReader(src))
	var out []Entity
	for {
		e, err := s.Next()
		require.NoError(t, err)
		out = append(out, e)
		if e.Kind == EOF || e.Kind == TokenizerError {
			return out
		}
	}
}

func TestScannerHeaderShape(t *testing.T) {
	es := collect(t, "%lilac-mesh; %dim 3 1; |;")
	kinds := make([]Kind, len(es))
	for i, e := range es {
		kinds[i] = e.Kind
	}
	assert.Equal(t, []Kind{
		BeginMeta, MetaToken, EndMeta,
		BeginMeta, MetaToken, MetaToken, MetaToken, EndMeta,
		EOF,
	}, kinds)
	assert.Equal(t, "lilac-mesh", es[1].Text)
	assert.Equal(t, "dim", es[4].Text)
	assert.Equal(t, "3", es[5].Text)
	assert.Equal(t, "1", es[6].Text)
}

func TestScannerBodyNumbersAndOperators(t *testing.T) {
	es := collect(t, "0 0 100 200 p 0 1 2 t |;")
	var kinds []Kind
	var texts []string
	for _, e := range es {
		if e.Kind == EOF {
			break
		}
		kinds = append(kinds, e.Kind)
		texts = append(texts, e.Text)
	}
	assert.Equal(t, []Kind{
		Numeric, Numeric, Numeric, Numeric, Operation,
		Numeric, Numeric, Numeric, Operation,
	}, kinds)
	assert.Equal(t, "200", texts[3])
	assert.Equal(t, "p", texts[4])
	assert.Equal(t, "t", texts[8])
}

func TestScannerLineTracking(t *testing.T) {
	s := NewScanner(strings.NewReader("%lilac-mesh;\n%dim 0 0;\n|;"))
	var last Entity
	for {
		e, err := s.Next()
		require.NoError(t, err)
		last = e
		if e.Kind == EOF {
			break
		}
	}
	assert.Equal(t, EOF, last.Kind)
	assert.Equal(t, 3, s.Line())
}

func TestScannerNestedMetaIsError(t *testing.T) {
	es := collect(t, "%lilac-mesh % dim 1 1; |;")
	last := es[len(es)-1]
	assert.Equal(t, TokenizerError, last.Kind)
	assert.Equal(t, ErrNestedMeta, last.Err)
}

func TestScannerUnterminatedEndMarker(t *testing.T) {
	es := collect(t, "%lilac-mesh; %dim 0 0; |x")
	last := es[len(es)-1]
	assert.Equal(t, TokenizerError, last.Kind)
	assert.Equal(t, ErrBadEndMarker, last.Err)
}

func TestScannerEOFInsideMetacommand(t *testing.T) {
	es := collect(t, "%lilac-mesh")
	last := es[len(es)-1]
	assert.Equal(t, TokenizerError, last.Kind)
	assert.Equal(t, ErrUnexpectedEOF, last.Err)
}

func TestScannerUnrecognizedChar(t *testing.T) {
	es := collect(t, "%lilac-mesh; %dim 0 0; $ |;")
	last := es[len(es)-1]
	assert.Equal(t, TokenizerError, last.Kind)
	assert.Equal(t, ErrUnexpectedChar, last.Err)
}

func TestScannerStaysDoneAfterEOF(t *testing.T) {
	s := NewScanner(strings.NewReader("|;"))
	first, err := s.Next()
	require.NoError(t, err)
	assert.Equal(t, EOF, first.Kind)
	second, err := s.Next()
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestErrStringUnknownCode(t *testing.T) {
	assert.Equal(t, "Unknown tokenizer error", ErrString(-999))
	assert.Contains(t, ErrString(ErrNestedMeta), "Nested")
}
