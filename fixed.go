package main

// 16.16 fixed-point codec, matching the original's f_to_qs1616/qs1616_to_f.

// qs1616ToF recombines an integer half (signed) and a fractional half (its
// 16 bits read as unsigned) of a 32-bit fixed-point value into a float32.
func qs1616ToF(intHalf, fracHalf int16) float32 {
	return float32(intHalf) + float32(uint16(fracHalf))/65536.0
}

// fToQS1616 splits a float32 into its integer and fractional 16-bit halves.
func fToQS1616(f float32) (intHalf, fracHalf int16) {
	v := int32(f * 65536.0)
	return int16(v >> 16), int16(v & 0xFFFF)
}

// q2f converts a raw packed 32-bit 16.16 fixed-point value to float32.
func q2f(raw int32) float32 {
	return float32(raw) / 65536.0
}

// f2q converts a float32 to a packed 32-bit 16.16 fixed-point value. Combined
// with q2f this forms the round-trip invariant f2q(q2f(x)) == x.
func f2q(f float32) int32 {
	return int32(f * 65536.0)
}
