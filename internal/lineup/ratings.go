package lineup

// Ratings are the per-line rating means seeded into match simulation.
type Ratings struct {
	Attack   float64 `json:"attack"`
	Defense  float64 `json:"defense"`
	Midfield float64 `json:"midfield"`
	Overall  float64 `json:"overall"`
}

// Aggregate computes line rating means from a completed assignment.
//
// Empty slots are excluded from a line's mean, never counted as zero. The
// goalkeeper folds into the defensive rating rather than forming a category
// of his own, and a line with no placed players is left out of the overall
// mean instead of dragging it down. Match balance depends on these rules.
func Aggregate(a Assignment) Ratings {
	attack, attackN := sumLine(a.Attack)
	midfield, midfieldN := sumLine(a.Midfield)
	defense, defenseN := sumLine(a.Defense)
	keeper, keeperN := sumLine(a.Goalkeeper)
	defense += keeper
	defenseN += keeperN

	r := Ratings{
		Attack:   mean(attack, attackN),
		Defense:  mean(defense, defenseN),
		Midfield: mean(midfield, midfieldN),
	}

	var total float64
	var lines int
	for _, m := range []float64{r.Attack, r.Defense, r.Midfield} {
		if m > 0 {
			total += m
			lines++
		}
	}
	r.Overall = mean(total, lines)
	return r
}

func sumLine(slots []Slot) (float64, int) {
	var sum float64
	var n int
	for _, s := range slots {
		if s.Player != nil {
			sum += float64(s.Player.Rating)
			n++
		}
	}
	return sum, n
}

func mean(sum float64, n int) float64 {
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}
