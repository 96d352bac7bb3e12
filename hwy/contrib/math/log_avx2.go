//go:build amd64 && goexperiment.simd

package math

import (
	stdmath "math"
	"simd/archsimd"
)

var (
	log32_c2 = archsimd.BroadcastFloat32x8(float32(logC2))
	log32_c3 = archsimd.BroadcastFloat32x8(float32(logC3))
	log32_c4 = archsimd.BroadcastFloat32x8(float32(logC4))
	log32_c5 = archsimd.BroadcastFloat32x8(float32(logC5))

	log32_ln2Hi = archsimd.BroadcastFloat32x8(expLn2Hi_f32)
	log32_ln2Lo = archsimd.BroadcastFloat32x8(expLn2Lo_f32)

	log32_one      = archsimd.BroadcastFloat32x8(1.0)
	log32_two      = archsimd.BroadcastFloat32x8(2.0)
	log32_zero     = archsimd.BroadcastFloat32x8(0.0)
	log32_sqrtHalf = archsimd.BroadcastFloat32x8(0.7071067811865476)

	log32_minNormal   = archsimd.BroadcastFloat32x8(0x1p-126)
	log32_denormScale = archsimd.BroadcastFloat32x8(0x1p23)
	log32_denormExp   = archsimd.BroadcastFloat32x8(23.0)

	log32_negInf = archsimd.BroadcastFloat32x8(float32(stdmath.Inf(-1)))
	log32_posInf = archsimd.BroadcastFloat32x8(float32(stdmath.Inf(1)))
	log32_nan    = archsimd.BroadcastFloat32x8(float32(stdmath.NaN()))

	log32_expMask  = archsimd.BroadcastInt32x8(0xFF)
	log32_mantMask = archsimd.BroadcastInt32x8(0x007FFFFF)
	log32_expBias  = archsimd.BroadcastInt32x8(127)
	log32_normBits = archsimd.BroadcastInt32x8(0x3F800000) // 1.0
)

// Log_AVX2_F32x8 computes ln(x) for a single Float32x8 vector.
func Log_AVX2_F32x8(x archsimd.Float32x8) archsimd.Float32x8 {
	// Denormals have no implicit leading 1; scale them into the normal range
	denormMask := x.Less(log32_minNormal)
	xBits := x.Mul(log32_denormScale).Merge(x, denormMask).AsInt32x8()

	exp := xBits.ShiftAllRight(23).And(log32_expMask).Sub(log32_expBias).ConvertToFloat32()
	exp = exp.Sub(log32_denormExp).Merge(exp, denormMask)
	m := xBits.And(log32_mantMask).Or(log32_normBits).AsFloat32x8()

	// Keep m in [sqrt(1/2), sqrt(2)): for m >= sqrt(2) use m/2 and e+1
	adjustMask := m.Mul(log32_sqrtHalf).Greater(log32_one)
	m = m.Mul(archsimd.BroadcastFloat32x8(0.5)).Merge(m, adjustMask)
	exp = exp.Add(log32_one).Merge(exp, adjustMask)

	y := m.Sub(log32_one).Div(m.Add(log32_one))
	y2 := y.Mul(y)

	p := log32_c5.MulAdd(y2, log32_c4)
	p = p.MulAdd(y2, log32_c3)
	p = p.MulAdd(y2, log32_c2)
	p = p.MulAdd(y2, log32_one)
	lnM := log32_two.Mul(y).Mul(p)

	result := exp.Mul(log32_ln2Hi)
	result = result.Add(exp.Mul(log32_ln2Lo))
	result = result.Add(lnM)

	result = log32_negInf.Merge(result, x.Equal(log32_zero))
	result = log32_nan.Merge(result, x.Less(log32_zero))
	result = log32_posInf.Merge(result, x.Equal(log32_posInf))
	// NaN lanes are the only ones not equal to themselves
	result = result.Merge(log32_nan, x.Equal(x))
	return result
}
