package checked

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/intguard/internal/inttype"
)

func TestOp_String(t *testing.T) {
	tokens := map[Op]string{
		OpAdd: "+",
		OpSub: "-",
		OpMul: "*",
		OpDiv: "/",
		OpMod: "%",
		OpShl: "<<",
		OpShr: ">>",
	}
	for op, want := range tokens {
		assert.True(t, op.Valid())
		assert.Equal(t, want, op.String())
	}
	assert.False(t, Op(99).Valid())
}

func TestApply_MixedTags(t *testing.T) {
	tests := []struct {
		name    string
		op      Op
		working inttype.Type
		a, b    inttype.Value
		want    inttype.Value
		ok      bool
	}{
		{
			name:    "u8 add in range",
			op:      OpAdd,
			working: inttype.U8,
			a:       inttype.Of(uint8(10)),
			b:       inttype.Of(uint8(10)),
			want:    inttype.Of(uint8(20)),
			ok:      true,
		},
		{
			name:    "u8 add overflow",
			op:      OpAdd,
			working: inttype.U8,
			a:       inttype.Of(uint8(255)),
			b:       inttype.Of(uint8(1)),
			ok:      false,
		},
		{
			name:    "widening operands into s64",
			op:      OpMul,
			working: inttype.S64,
			a:       inttype.Of(int8(-100)),
			b:       inttype.Of(uint32(1000000)),
			want:    inttype.Of(int64(-100000000)),
			ok:      true,
		},
		{
			name:    "negative operand cannot enter unsigned working type",
			op:      OpSub,
			working: inttype.U32,
			a:       inttype.Of(uint32(10)),
			b:       inttype.Of(int8(-1)),
			ok:      false,
		},
		{
			name:    "oversized operand cannot narrow",
			op:      OpAdd,
			working: inttype.U8,
			a:       inttype.Of(uint16(256)),
			b:       inttype.Of(uint8(1)),
			ok:      false,
		},
		{
			name:    "u64 beyond int64 range",
			op:      OpAdd,
			working: inttype.U64,
			a:       inttype.Of(uint64(math.MaxUint64 - 1)),
			b:       inttype.Of(uint8(1)),
			want:    inttype.Of(uint64(math.MaxUint64)),
			ok:      true,
		},
		{
			name:    "s16 shift",
			op:      OpShl,
			working: inttype.S16,
			a:       inttype.Of(int16(1)),
			b:       inttype.Of(uint8(4)),
			want:    inttype.Of(int16(16)),
			ok:      true,
		},
		{
			name:    "signed min div minus one",
			op:      OpDiv,
			working: inttype.S32,
			a:       inttype.Of(int32(math.MinInt32)),
			b:       inttype.Of(int32(-1)),
			ok:      false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Apply(tt.op, tt.working, tt.a, tt.b)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
				assert.Equal(t, tt.working, got.Type())
			} else {
				assert.Equal(t, inttype.Value{}, got)
			}
		})
	}
}

func TestApply_ResultCarriesWorkingTag(t *testing.T) {
	r, ok := Apply(OpAdd, inttype.S64, inttype.Of(uint8(1)), inttype.Of(uint8(2)))
	require.True(t, ok)
	assert.Equal(t, inttype.S64, r.Type())
	assert.Equal(t, "s64:3", r.String())
}

func TestApply_InvalidWorkingTypePanics(t *testing.T) {
	assert.Panics(t, func() {
		Apply(OpAdd, inttype.Type(42), inttype.Of(uint8(1)), inttype.Of(uint8(1)))
	})
}
