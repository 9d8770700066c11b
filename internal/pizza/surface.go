package pizza

import "strconv"

// PiecesPerTopping is how many decorative pieces one checked topping scatters.
const PiecesPerTopping = 4

const (
	maxOffsetPct   = 80.0
	maxRotationDeg = 270.0
)

// Rand is the randomness the surface needs; *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	Float64() float64
}

// Placement is one decorative topping piece on the pizza.
type Placement struct {
	Topping  string  `json:"topping"`
	Top      float64 `json:"top"`
	Left     float64 `json:"left"`
	Rotation float64 `json:"rotation"`
}

func (p Placement) Class() string {
	return "topping-" + p.Topping
}

// TopPct, LeftPct and RotationDeg are the bare numbers the template writes
// into the piece's inline style.
func (p Placement) TopPct() string      { return strconv.FormatFloat(p.Top, 'f', 2, 64) }
func (p Placement) LeftPct() string     { return strconv.FormatFloat(p.Left, 'f', 2, 64) }
func (p Placement) RotationDeg() string { return strconv.FormatFloat(p.Rotation, 'f', 1, 64) }

// Surface is the visual pizza: every decorative piece currently on it.
type Surface struct {
	Placements []Placement `json:"placements"`
}

// Add scatters PiecesPerTopping new pieces of the topping. Re-adding a topping
// produces a fresh arrangement.
func (s *Surface) Add(topping string, rng Rand) {
	for i := 0; i < PiecesPerTopping; i++ {
		s.Placements = append(s.Placements, Placement{
			Topping:  topping,
			Top:      rng.Float64() * maxOffsetPct,
			Left:     rng.Float64() * maxOffsetPct,
			Rotation: rng.Float64() * maxRotationDeg,
		})
	}
}

// Remove deletes every piece tagged with the topping, however many there are.
func (s *Surface) Remove(topping string) {
	kept := s.Placements[:0]
	for _, p := range s.Placements {
		if p.Topping != topping {
			kept = append(kept, p)
		}
	}
	s.Placements = kept
}

func (s *Surface) Count(topping string) int {
	n := 0
	for _, p := range s.Placements {
		if p.Topping == topping {
			n++
		}
	}
	return n
}

func (s *Surface) Clear() {
	s.Placements = nil
}
