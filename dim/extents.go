// SPDX-License-Identifier: MIT

package dim

// Predefined extents. Larger or domain-named extents are declared by callers.
type (
	D1  struct{}
	D2  struct{}
	D3  struct{}
	D4  struct{}
	D5  struct{}
	D6  struct{}
	D7  struct{}
	D8  struct{}
	D9  struct{}
	D10 struct{}
	D11 struct{}
	D12 struct{}
	D13 struct{}
	D14 struct{}
	D15 struct{}
	D16 struct{}
)

// Compile-time assertions: every predefined extent is a Dim.
var (
	_ Dim = D1{}
	_ Dim = D2{}
	_ Dim = D3{}
	_ Dim = D4{}
	_ Dim = D5{}
	_ Dim = D6{}
	_ Dim = D7{}
	_ Dim = D8{}
	_ Dim = D9{}
	_ Dim = D10{}
	_ Dim = D11{}
	_ Dim = D12{}
	_ Dim = D13{}
	_ Dim = D14{}
	_ Dim = D15{}
	_ Dim = D16{}
)

func (D1) N() int  { return 1 }
func (D2) N() int  { return 2 }
func (D3) N() int  { return 3 }
func (D4) N() int  { return 4 }
func (D5) N() int  { return 5 }
func (D6) N() int  { return 6 }
func (D7) N() int  { return 7 }
func (D8) N() int  { return 8 }
func (D9) N() int  { return 9 }
func (D10) N() int { return 10 }
func (D11) N() int { return 11 }
func (D12) N() int { return 12 }
func (D13) N() int { return 13 }
func (D14) N() int { return 14 }
func (D15) N() int { return 15 }
func (D16) N() int { return 16 }
