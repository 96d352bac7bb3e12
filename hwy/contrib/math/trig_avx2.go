//go:build amd64 && goexperiment.simd

package math

import "simd/archsimd"

var (
	trig32_2overPi   = archsimd.BroadcastFloat32x8(float32(trig2OverPi))
	trig32_piOver2A  = archsimd.BroadcastFloat32x8(trigPiOver2A_32)
	trig32_piOver2B  = archsimd.BroadcastFloat32x8(trigPiOver2B_32)
	trig32_piOver2C  = archsimd.BroadcastFloat32x8(trigPiOver2C_32)

	trig32_s1 = archsimd.BroadcastFloat32x8(float32(trigS1))
	trig32_s2 = archsimd.BroadcastFloat32x8(float32(trigS2))
	trig32_s3 = archsimd.BroadcastFloat32x8(float32(trigS3))
	trig32_s4 = archsimd.BroadcastFloat32x8(float32(trigS4))

	trig32_c1 = archsimd.BroadcastFloat32x8(float32(trigC1))
	trig32_c2 = archsimd.BroadcastFloat32x8(float32(trigC2))
	trig32_c3 = archsimd.BroadcastFloat32x8(float32(trigC3))
	trig32_c4 = archsimd.BroadcastFloat32x8(float32(trigC4))

	trig32_one  = archsimd.BroadcastFloat32x8(1.0)
	trig32_zero = archsimd.BroadcastFloat32x8(0.0)

	trig32_intOne   = archsimd.BroadcastInt32x8(1)
	trig32_intTwo   = archsimd.BroadcastInt32x8(2)
	trig32_intThree = archsimd.BroadcastInt32x8(3)
)

// Sin_AVX2_F32x8 computes sin(x) for a single Float32x8 vector.
func Sin_AVX2_F32x8(x archsimd.Float32x8) archsimd.Float32x8 {
	k := x.Mul(trig32_2overPi).RoundToEven()
	kInt := k.ConvertToInt32()

	r := x.Sub(k.Mul(trig32_piOver2A))
	r = r.Sub(k.Mul(trig32_piOver2B))
	r = r.Sub(k.Mul(trig32_piOver2C))
	r2 := r.Mul(r)

	sinPoly := trig32_s4.MulAdd(r2, trig32_s3)
	sinPoly = sinPoly.MulAdd(r2, trig32_s2)
	sinPoly = sinPoly.MulAdd(r2, trig32_s1)
	sinPoly = sinPoly.MulAdd(r2, trig32_one)
	sinR := r.Mul(sinPoly)

	cosPoly := trig32_c4.MulAdd(r2, trig32_c3)
	cosPoly = cosPoly.MulAdd(r2, trig32_c2)
	cosPoly = cosPoly.MulAdd(r2, trig32_c1)
	cosR := cosPoly.MulAdd(r2, trig32_one)

	// Two's complement keeps k & 3 in [0, 3] for negative k.
	quadrant := kInt.And(trig32_intThree)
	useCosMask := quadrant.And(trig32_intOne).Equal(trig32_intOne)
	negateMask := quadrant.And(trig32_intTwo).Equal(trig32_intTwo)

	// Select on the integer view so the integer masks apply directly.
	resultBits := cosR.AsInt32x8().Merge(sinR.AsInt32x8(), useCosMask)
	result := resultBits.AsFloat32x8()
	negBits := trig32_zero.Sub(result).AsInt32x8()
	return negBits.Merge(resultBits, negateMask).AsFloat32x8()
}
