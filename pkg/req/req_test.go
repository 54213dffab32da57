package req

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Name string `json:"name"`
}

func TestDecode(t *testing.T) {
	got, err := Decode[payload](strings.NewReader(`{"name":"Ana"}`))
	require.NoError(t, err)
	assert.Equal(t, "Ana", got.Name)

	_, err = Decode[payload](strings.NewReader(`{"name":"Ana","extra":1}`))
	require.Error(t, err)

	_, err = Decode[payload](strings.NewReader(``))
	require.Error(t, err)
}
