package tier

// ComputeScore derives a 0-100 health score from per-tier issue counts.
// Starts at 100, subtracts 20 per critical, 7 per warning, 2 per good,
// clamps at 0. Excellent entries cost nothing.
func ComputeScore(counts map[Tier]int) int {
	score := 100 - 20*counts[Critical] - 7*counts[Warning] - 2*counts[Good]
	if score < 0 {
		score = 0
	}
	return score
}
