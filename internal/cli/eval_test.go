package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEval_Success(t *testing.T) {
	out, err := execute(t, "eval", "u8+u8", "u8:10", "u8:10")
	require.NoError(t, err)
	assert.Equal(t, "u8:20\n", out)
}

func TestEval_BareOperandsTakeNativeType(t *testing.T) {
	// Untagged operands carry the native signed tag and are safe-cast
	// into the chain's working type.
	out, err := execute(t, "eval", "s16<<u8+u64", "1", "4", "2")
	require.NoError(t, err)
	assert.Equal(t, "s16:18\n", out)
}

func TestEval_JSON(t *testing.T) {
	out, err := execute(t, "--format", "json", "eval", "u32*u32*u32", "u32:1000", "u32:1000", "u32:8")
	require.NoError(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)

	data, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "u32*u32*u32", data["program"])
	assert.Equal(t, "u32", data["type"])
	assert.Equal(t, "8000000", data["value"])
}

func TestEval_Refusal(t *testing.T) {
	out, err := execute(t, "eval", "u8+u8", "u8:255", "u8:1")
	require.Error(t, err)
	assert.Equal(t, ExitRefusal, GetExitCode(err))
	assert.Contains(t, out, "REFUSED")
}

func TestEval_MalformedProgram(t *testing.T) {
	out, err := execute(t, "eval", "u8^u8", "u8:1", "u8:1")
	require.Error(t, err)
	assert.Equal(t, ExitRefusal, GetExitCode(err))
	assert.Contains(t, out, "BAD_PROGRAM")
}

func TestEval_OperandCountError(t *testing.T) {
	_, err := execute(t, "eval", "u8+u8", "u8:1")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), "takes 2 operands")
}

func TestEval_BadOperandLiteral(t *testing.T) {
	_, err := execute(t, "eval", "u8+u8", "u8:300", "u8:1")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), "operand 1")
}
