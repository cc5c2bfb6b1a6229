package domain

import "math"

// The UI works in 0–5 half-star steps; the database stores an integer 0–10.
// StoredRating and UIRating are exact inverses over the half-star domain.

// StoredRating converts a 0–5 half-star rating to the persisted 0–10 integer.
// Values off the half-star grid are rounded to the nearest step.
func StoredRating(ui float64) int {
	return int(math.Round(ui * 2))
}

// UIRating converts a persisted 0–10 integer back to the 0–5 half-star scale.
func UIRating(stored int) float64 {
	return float64(stored) / 2
}

// Sum returns the BLICE total, rounded to one decimal so that axis scores in
// 0.1 steps always produce an exact half-point-free total (e.g. 0.3+0.2+0.1+
// 0.4+0.5 = 1.5, not 1.4999…).
func (b Blice) Sum() float64 {
	total := b.Balance + b.Length + b.Intensity + b.Complexity + b.Enjoyment
	return math.Round(total*10) / 10
}

// EffectiveRating returns the score fed to StoredRating on the write path:
// the BLICE sum when any axis has been scored, otherwise the legacy star
// rating.
func (w *Wine) EffectiveRating() float64 {
	if !w.Blice.IsZero() {
		return w.Blice.Sum()
	}
	return w.Rating
}
