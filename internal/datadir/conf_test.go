package datadir

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfRoundTrip(t *testing.T) {
	c := DefaultConf()

	out, err := c.Marshal()
	require.NoError(t, err)

	parsed, err := ParseConf(out)
	require.NoError(t, err)
	assert.Equal(t, c, parsed)
}

func TestParseConf(t *testing.T) {
	content := []byte(`Verbosity: 2
Interpolator: logcubic
Extrapolator: continuation
ForcePositive: 0
AlphaS_Type: analytic
Pythia6LambdaV5Compat: true
`)

	c, err := ParseConf(content)
	require.NoError(t, err)
	assert.Equal(t, 2, c.Verbosity)
	assert.Equal(t, "logcubic", c.Interpolator)
	assert.True(t, c.Pythia6LambdaV5Compat)
}

func TestParseConfMalformed(t *testing.T) {
	_, err := ParseConf([]byte("Verbosity: [unclosed"))
	assert.Error(t, err)
}
