package report

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeChart_Empty(t *testing.T) {
	png, ok := DecodeChart("")
	assert.False(t, ok)
	assert.Nil(t, png)
}

func TestDecodeChart_Invalid(t *testing.T) {
	png, ok := DecodeChart("%%%not-base64%%%")
	assert.False(t, ok)
	assert.Nil(t, png)
}

func TestDecodeChart_Valid(t *testing.T) {
	payload := []byte("\x89PNG\r\n\x1a\nfakebody")
	encoded := base64.StdEncoding.EncodeToString(payload)

	png, ok := DecodeChart(encoded)
	require.True(t, ok)
	assert.Equal(t, payload, png)
}
