package main

import "testing"

func TestIdentityMtxFMulIsIdentity(t *testing.T) {
	id := IdentityMtxF()
	m := MtxF{M: [4][4]float32{
		{1, 2, 3, 4},
		{5, 6, 7, 8},
		{9, 10, 11, 12},
		{13, 14, 15, 16},
	}}
	got := id.Mul(m)
	if got != m {
		t.Fatalf("identity.Mul(m) = %v, want %v", got, m)
	}
}

func TestMtxFEncodeDecodeRoundTrip(t *testing.T) {
	m := IdentityMtxF()
	m.M[3][0] = 100.0
	m.M[3][1] = -50.5
	m.M[1][1] = 2.0

	raw := EncodeMtx(m)
	got := DecodeMtx(raw)

	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			if got.M[i][j] != m.M[i][j] {
				t.Fatalf("round trip mismatch at [%d][%d]: got %v, want %v", i, j, got.M[i][j], m.M[i][j])
			}
		}
	}
}

func TestMulInPlaceMatchesMul(t *testing.T) {
	a := IdentityMtxF()
	a.M[3][0] = 5
	b := IdentityMtxF()
	b.M[3][1] = 7

	want := a.Mul(b)
	a.MulInPlace(b)
	if a != want {
		t.Fatalf("MulInPlace result = %v, want %v", a, want)
	}
}

func TestMulVec3Identity(t *testing.T) {
	id := IdentityMtxF()
	x, y, z, w := id.MulVec3(1, 2, 3)
	if x != 1 || y != 2 || z != 3 || w != 1 {
		t.Fatalf("MulVec3 through identity = (%v,%v,%v,%v), want (1,2,3,1)", x, y, z, w)
	}
}

func TestMulVec3Translation(t *testing.T) {
	m := IdentityMtxF()
	m.M[3][0] = 10
	m.M[3][1] = 20
	m.M[3][2] = 30
	x, y, z, w := m.MulVec3(1, 1, 1)
	if x != 11 || y != 21 || z != 31 || w != 1 {
		t.Fatalf("MulVec3 through translation = (%v,%v,%v,%v), want (11,21,31,1)", x, y, z, w)
	}
}
