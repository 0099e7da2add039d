package main

import "encoding/binary"

// MtxF is a 4x4 row-major floating-point matrix, the working representation
// for matrix math; the on-disk form is fixed-point (see DecodeMtx).
type MtxF struct {
	M [4][4]float32
}

// IdentityMtxF returns the 4x4 identity matrix.
func IdentityMtxF() MtxF {
	var m MtxF
	for i := 0; i < 4; i++ {
		m.M[i][i] = 1.0
	}
	return m
}

// DecodeMtx parses the 64-byte on-disk matrix format: two parallel 4x4
// big-endian int16 planes, integer part first then fractional part (NOT
// interleaved per element), matching the original mtx_to_mtxf.
func DecodeMtx(raw [64]byte) MtxF {
	var m MtxF
	var ints, fracs [16]int16
	for i := 0; i < 16; i++ {
		ints[i] = int16(binary.BigEndian.Uint16(raw[i*2:]))
		fracs[i] = int16(binary.BigEndian.Uint16(raw[32+i*2:]))
	}
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			idx := row*4 + col
			m.M[row][col] = qs1616ToF(ints[idx], fracs[idx])
		}
	}
	return m
}

// EncodeMtx is the inverse of DecodeMtx, matching the original mtxf_to_mtx.
func EncodeMtx(m MtxF) [64]byte {
	var raw [64]byte
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			idx := row*4 + col
			ih, fh := fToQS1616(m.M[row][col])
			binary.BigEndian.PutUint16(raw[idx*2:], uint16(ih))
			binary.BigEndian.PutUint16(raw[32+idx*2:], uint16(fh))
		}
	}
	return raw
}

// Mul returns a*b (row-major), matching the original mtxf_mtxf_mul.
func (a MtxF) Mul(b MtxF) MtxF {
	var out MtxF
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += a.M[i][k] * b.M[k][j]
			}
			out.M[i][j] = sum
		}
	}
	return out
}

// MulInPlace multiplies dst by b and stores the result back into *dst,
// matching the original mtxf_mtxf_mul_inplace. A scratch copy of dst avoids
// read-after-write aliasing within the multiply.
func (dst *MtxF) MulInPlace(b MtxF) {
	scratch := *dst
	*dst = scratch.Mul(b)
}

// MulVec3 transforms a homogeneous point (x,y,z,1) by m, matching the
// original mtxf_mulvec3.
func (m MtxF) MulVec3(x, y, z float32) (ox, oy, oz, ow float32) {
	ox = x*m.M[0][0] + y*m.M[1][0] + z*m.M[2][0] + m.M[3][0]
	oy = x*m.M[0][1] + y*m.M[1][1] + z*m.M[2][1] + m.M[3][1]
	oz = x*m.M[0][2] + y*m.M[1][2] + z*m.M[2][2] + m.M[3][2]
	ow = x*m.M[0][3] + y*m.M[1][3] + z*m.M[2][3] + m.M[3][3]
	return
}
