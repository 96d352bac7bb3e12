//go:build amd64 && goexperiment.simd

package math

import (
	stdmath "math"
	"simd/archsimd"
)

// AVX2 vectorized constants for exp32
var (
	exp32_ln2Hi  = archsimd.BroadcastFloat32x8(expLn2Hi_f32)
	exp32_ln2Lo  = archsimd.BroadcastFloat32x8(expLn2Lo_f32)
	exp32_invLn2 = archsimd.BroadcastFloat32x8(float32(expInvLn2))
	exp32_one    = archsimd.BroadcastFloat32x8(1.0)
	exp32_zero   = archsimd.BroadcastFloat32x8(0.0)
	exp32_inf    = archsimd.BroadcastFloat32x8(float32(stdmath.Inf(1)))

	exp32_overflow  = archsimd.BroadcastFloat32x8(expOverflow_f32)
	exp32_underflow = archsimd.BroadcastFloat32x8(expUnderflow_f32)

	exp32_c2 = archsimd.BroadcastFloat32x8(float32(expC2))
	exp32_c3 = archsimd.BroadcastFloat32x8(float32(expC3))
	exp32_c4 = archsimd.BroadcastFloat32x8(float32(expC4))
	exp32_c5 = archsimd.BroadcastFloat32x8(float32(expC5))
	exp32_c6 = archsimd.BroadcastFloat32x8(float32(expC6))

	exp32_two    = archsimd.BroadcastFloat32x8(2.0)
	exp32_maxExp = archsimd.BroadcastFloat32x8(127.0)

	exp32_bias = archsimd.BroadcastInt32x8(127)
)

// Exp_AVX2_F32x8 computes e^x for a single Float32x8 vector.
func Exp_AVX2_F32x8(x archsimd.Float32x8) archsimd.Float32x8 {
	overflowMask := x.Greater(exp32_overflow)
	underflowMask := x.Less(exp32_underflow)

	kFloat := x.Mul(exp32_invLn2).RoundToEven()
	r := x.Sub(kFloat.Mul(exp32_ln2Hi))
	r = r.Sub(kFloat.Mul(exp32_ln2Lo))

	p := exp32_c6.MulAdd(r, exp32_c5)
	p = p.MulAdd(r, exp32_c4)
	p = p.MulAdd(r, exp32_c3)
	p = p.MulAdd(r, exp32_c2)
	p = p.MulAdd(r, exp32_one)
	p = p.MulAdd(r, exp32_one)

	// 2^128 is not a float32, so the top k is scaled as 2^127 * 2
	topK := kFloat.Greater(exp32_maxExp)
	kFloat = kFloat.Sub(exp32_one).Merge(kFloat, topK)

	// 2^k is exponent field (k + 127) with an empty mantissa
	scale := kFloat.ConvertToInt32().Add(exp32_bias).ShiftAllLeft(23).AsFloat32x8()
	result := p.Mul(scale)
	result = result.Mul(exp32_two).Merge(result, topK)

	// a.Merge(b, mask) returns a where mask is set, b elsewhere
	result = exp32_inf.Merge(result, overflowMask)
	result = exp32_zero.Merge(result, underflowMask)
	return result
}
