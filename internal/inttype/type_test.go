package inttype

import (
	"math"
	"math/bits"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestType_Limits(t *testing.T) {
	tests := []struct {
		typ    Type
		name   string
		width  int
		signed bool
		min    int64
		max    uint64
	}{
		{S8, "s8", 8, true, math.MinInt8, math.MaxInt8},
		{S16, "s16", 16, true, math.MinInt16, math.MaxInt16},
		{S32, "s32", 32, true, math.MinInt32, math.MaxInt32},
		{S64, "s64", 64, true, math.MinInt64, math.MaxInt64},
		{U8, "u8", 8, false, 0, math.MaxUint8},
		{U16, "u16", 16, false, 0, math.MaxUint16},
		{U32, "u32", 32, false, 0, math.MaxUint32},
		{U64, "u64", 64, false, 0, math.MaxUint64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.typ.Valid())
			assert.Equal(t, tt.name, tt.typ.String())
			assert.Equal(t, tt.width, tt.typ.Width())
			assert.Equal(t, tt.signed, tt.typ.Signed())
			assert.Equal(t, tt.min, tt.typ.Min())
			assert.Equal(t, tt.max, tt.typ.Max())
		})
	}
}

func TestType_Invalid(t *testing.T) {
	bad := Type(200)
	assert.False(t, bad.Valid())
	assert.Equal(t, "Type(200)", bad.String())
}

func TestParseType(t *testing.T) {
	for _, typ := range Types {
		parsed, err := ParseType(typ.String())
		require.NoError(t, err)
		assert.Equal(t, typ, parsed)
	}

	for _, bad := range []string{"", "u", "s", "u7", "s128", "U8", "int", "u8 "} {
		_, err := ParseType(bad)
		assert.Error(t, err, "token %q should not parse", bad)
	}
}

func TestNative(t *testing.T) {
	if bits.UintSize == 64 {
		assert.Equal(t, S64, Native())
		assert.Equal(t, U64, NativeUnsigned())
	} else {
		assert.Equal(t, S32, Native())
		assert.Equal(t, U32, NativeUnsigned())
	}
	assert.True(t, Native().Signed())
	assert.False(t, NativeUnsigned().Signed())
}
