package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLimits_All(t *testing.T) {
	out, err := execute(t, "limits")
	require.NoError(t, err)
	for _, name := range []string{"s8", "s16", "s32", "s64", "u8", "u16", "u32", "u64"} {
		assert.Contains(t, out, name)
	}
	assert.Contains(t, out, "-9223372036854775808")
	assert.Contains(t, out, "18446744073709551615")
}

func TestLimits_Selected(t *testing.T) {
	out, err := execute(t, "--format", "json", "limits", "u8", "s8")
	require.NoError(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	data := resp.Data.(map[string]any)
	types := data["types"].([]any)
	require.Len(t, types, 2)

	u8 := types[0].(map[string]any)
	assert.Equal(t, "u8", u8["type"])
	assert.Equal(t, float64(8), u8["width"])
	assert.Equal(t, false, u8["signed"])
	assert.Equal(t, "0", u8["min"])
	assert.Equal(t, "255", u8["max"])

	s8 := types[1].(map[string]any)
	assert.Equal(t, "s8", s8["type"])
	assert.Equal(t, true, s8["signed"])
	assert.Equal(t, "-128", s8["min"])
	assert.Equal(t, "127", s8["max"])
}

func TestLimits_BadType(t *testing.T) {
	_, err := execute(t, "limits", "u7")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), "u7")
}
