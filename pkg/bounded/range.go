package bounded

import "github.com/dmitrymomot/valuekit/pkg/constraint"

// Range is implemented by marker types that define an inclusive range.
// Implementations must be stateless and must return Min() <= Max().
type Range[T constraint.Number] interface {
	Min() T
	Max() T
}

// Percent is the integer range 0..100.
type Percent struct{}

func (Percent) Min() int { return 0 }
func (Percent) Max() int { return 100 }

// Port is the TCP/UDP port range 1..65535.
type Port struct{}

func (Port) Min() uint16 { return 1 }
func (Port) Max() uint16 { return 65535 }

// Unit is the closed float range 0..1.
type Unit struct{}

func (Unit) Min() float64 { return 0 }
func (Unit) Max() float64 { return 1 }

// Probability is a number in the Unit range.
type Probability = Number[float64, Unit]

// Percentage is a number in the Percent range.
type Percentage = Number[int, Percent]

// PortNumber is a number in the Port range.
type PortNumber = Number[uint16, Port]
