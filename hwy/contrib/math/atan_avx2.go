//go:build amd64 && goexperiment.simd

package math

import "simd/archsimd"

var (
	atan32_c1 = archsimd.BroadcastFloat32x8(float32(atanC1))
	atan32_c2 = archsimd.BroadcastFloat32x8(float32(atanC2))
	atan32_c3 = archsimd.BroadcastFloat32x8(float32(atanC3))
	atan32_c4 = archsimd.BroadcastFloat32x8(float32(atanC4))
	atan32_c5 = archsimd.BroadcastFloat32x8(float32(atanC5))

	atan32_one        = archsimd.BroadcastFloat32x8(1.0)
	atan32_piOver2    = archsimd.BroadcastFloat32x8(float32(atanPiOver2))
	atan32_piOver4    = archsimd.BroadcastFloat32x8(float32(atanPiOver4))
	atan32_tanPiOver8 = archsimd.BroadcastFloat32x8(float32(atanTanPiOver8))

	// 0x80000000 written as a negative value to fit int32
	atan32_signMask = archsimd.BroadcastInt32x8(-2147483648)
	atan32_absMask  = archsimd.BroadcastInt32x8(0x7FFFFFFF)
)

// Atan_AVX2_F32x8 computes atan(x) for a single Float32x8 vector.
// The argument is reduced to |z| <= tan(π/8) in two steps, the same way as
// BaseAtanVec.
func Atan_AVX2_F32x8(x archsimd.Float32x8) archsimd.Float32x8 {
	xBits := x.AsInt32x8()
	signBits := xBits.And(atan32_signMask)
	absX := xBits.And(atan32_absMask).AsFloat32x8()

	largeMask := absX.Greater(atan32_one)
	z := atan32_one.Div(absX).Merge(absX, largeMask)

	identityMask := z.Greater(atan32_tanPiOver8)
	z = z.Sub(atan32_one).Div(z.Add(atan32_one)).Merge(z, identityMask)

	z2 := z.Mul(z)
	poly := atan32_c5.MulAdd(z2, atan32_c4)
	poly = poly.MulAdd(z2, atan32_c3)
	poly = poly.MulAdd(z2, atan32_c2)
	poly = poly.MulAdd(z2, atan32_c1)
	poly = poly.MulAdd(z2, atan32_one)
	atanZ := z.Mul(poly)

	atanZ = atan32_piOver4.Add(atanZ).Merge(atanZ, identityMask)
	resultAbs := atan32_piOver2.Sub(atanZ).Merge(atanZ, largeMask)

	return resultAbs.AsInt32x8().Or(signBits).AsFloat32x8()
}
