package bounded_test

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dmitrymomot/valuekit/pkg/bounded"
	"github.com/dmitrymomot/valuekit/pkg/constraint"
)

type Score struct{}

func (Score) Min() int32 { return -10 }
func (Score) Max() int32 { return 10 }

func ExampleNew() {
	_, err := bounded.New[Score](int32(11))
	fmt.Println(err)
	fmt.Println(errors.Is(err, constraint.ErrTooHigh))

	s, err := bounded.New[Score](int32(-10))
	fmt.Println(s.Value(), err)
	// Output:
	// 11 is too high (range: -10..10)
	// true
	// -10 <nil>
}

func ExampleNumber_UnmarshalJSON() {
	var discount bounded.Percentage
	err := json.Unmarshal([]byte("150"), &discount)

	var rerr *constraint.RangeError[int]
	if errors.As(err, &rerr) {
		fmt.Println(rerr.Kind(), rerr.Min, rerr.Max, rerr.Value)
	}
	fmt.Println(errors.Is(err, constraint.ErrDecode))
	// Output:
	// TooHigh 0 100 150
	// true
}
