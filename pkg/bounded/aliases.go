package bounded

// Width-specific aliases, so declarations read bounded.Int8[Level] instead of
// bounded.Number[int8, Level].

type (
	Int[R Range[int]]         = Number[int, R]
	Int8[R Range[int8]]       = Number[int8, R]
	Int16[R Range[int16]]     = Number[int16, R]
	Int32[R Range[int32]]     = Number[int32, R]
	Int64[R Range[int64]]     = Number[int64, R]
	Uint[R Range[uint]]       = Number[uint, R]
	Uint8[R Range[uint8]]     = Number[uint8, R]
	Uint16[R Range[uint16]]   = Number[uint16, R]
	Uint32[R Range[uint32]]   = Number[uint32, R]
	Uint64[R Range[uint64]]   = Number[uint64, R]
	Float32[R Range[float32]] = Number[float32, R]
	Float64[R Range[float64]] = Number[float64, R]
)
