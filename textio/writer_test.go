// SPDX-License-Identifier: MIT
package textio_test

import (
	"bytes"
	"math"
	"math/rand"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/katalvlaran/mtrxmaths/matrix"
	"github.com/katalvlaran/mtrxmaths/textio"
)

func TestFormatMatrix(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewDenseFromRows([][]float64{{1, 0.5}, {-3, 1e-20}})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, textio.FormatMatrix(&buf, m))
	require.Equal(t, "1 0.5\n-3 9.9999999999999995e-21\n", buf.String(), "1e-20 has no exact 17-digit form")

	require.ErrorIs(t, textio.FormatMatrix(&buf, nil), matrix.ErrNilMatrix)
}

func TestFormatScalar(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		v    float64
		want string
	}{
		{24, "24\n"},
		{0.1, "0.10000000000000001\n"},
		{-0.5, "-0.5\n"},
		{0, "0\n"},
	} {
		var buf bytes.Buffer
		require.NoError(t, textio.FormatScalar(&buf, tc.v))
		require.Equal(t, tc.want, buf.String())
	}
}

func TestFormatInfo(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, textio.FormatInfo(&buf, "a.txt", 2, 3))
	require.Equal(t, "a.txt: 2x3\n", buf.String())
}

func TestWithLocale_DisplayOnly(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, textio.FormatScalar(&buf, 1.5, textio.WithLocale(language.German)))
	require.Contains(t, buf.String(), "1,5")
	require.NotContains(t, buf.String(), ".")

	buf.Reset()
	require.NoError(t, textio.FormatScalar(&buf, 1.5, textio.WithLocale(language.AmericanEnglish)))
	require.Contains(t, buf.String(), "1.5")
}

// TestRoundTrip formats random matrices at full precision and parses them back.
func TestRoundTrip(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 20; trial++ {
		rows, cols := 1+rng.Intn(6), 1+rng.Intn(6)
		src, err := matrix.NewDense(rows, cols)
		require.NoError(t, err)
		for i := 0; i < rows; i++ {
			for j := 0; j < cols; j++ {
				v := (rng.Float64()*2 - 1) * math.Pow(10, float64(rng.Intn(60)-30))
				require.NoError(t, src.Set(i, j, v))
			}
		}

		var buf bytes.Buffer
		require.NoError(t, textio.FormatMatrix(&buf, src))
		back, err := textio.Parse(strings.NewReader(buf.String()))
		require.NoError(t, err)

		if diff := cmp.Diff(rowsOf(t, src), rowsOf(t, back), cmpopts.EquateApprox(1e-15, 0)); diff != "" {
			t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
		}
	}
}
