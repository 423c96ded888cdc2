package status

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestText(t *testing.T) {
	for code, reason := range map[Code]string{
		MovedPermanently:    "Moved Permanently",
		NotFound:            "Not Found",
		Teapot:              "I'm a teapot",
		InternalServerError: "Internal Server Error",
		GatewayTimeout:      "Gateway Timeout",
	} {
		require.Equal(t, reason, Text(code))
	}

	t.Run("unknown codes", func(t *testing.T) {
		for _, code := range []Code{0, 200, 306, 599, 799} {
			require.Empty(t, Text(code))
		}
	})
}

func TestString(t *testing.T) {
	require.Equal(t, "404", NotFound.String())
	require.Equal(t, "511", NetworkAuthenticationRequired.String())
}

func BenchmarkText(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = Text(NotFound)
	}
}
