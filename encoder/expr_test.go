package encoder

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExprAddIsImmutable(t *testing.T) {
	base := Symbol("sym")
	shifted := base.Add(2)

	require.Equal(t, int64(0), base.Addend)
	require.Equal(t, int64(2), shifted.Addend)
	require.Equal(t, "sym", shifted.Sym)
}

func TestExprString(t *testing.T) {
	tests := []struct {
		expr *Expr
		want string
	}{
		{Symbol("foo"), "foo"},
		{Symbol("foo").Add(2), "foo+2"},
		{Symbol("foo").Add(-4), "foo-4"},
		{Constant(42), "42"},
		{Constant(-8), "-8"},
	}
	for _, tc := range tests {
		require.Equal(t, tc.want, tc.expr.String())
	}
}
