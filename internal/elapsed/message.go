package elapsed

// Tier indexes the motivational tiers in ascending order of days.
type Tier int

const (
	TierDayZero Tier = iota
	TierFirstDay
	TierFirstWeek
	TierOneWeek
	TierTwoWeeks
	TierOneMonth
	TierTwoMonths
	TierNinetyDays
	TierHalfYear
	TierOneYear
)

// Milestone is a tier together with the first day count that reaches it.
type Milestone struct {
	Tier    Tier
	MinDays int
	Message string
}

var milestones = []Milestone{
	{TierDayZero, 0, "DAY ZERO. THE WAR BEGINS."},
	{TierFirstDay, 1, "24 HOURS. YOU'RE ALREADY WINNING."},
	{TierFirstWeek, 2, "EVERY HOUR IS A VICTORY."},
	{TierOneWeek, 7, "ONE WEEK DOWN. YOU'RE REWIRING."},
	{TierTwoWeeks, 14, "TWO WEEKS. YOUR BRAIN IS HEALING."},
	{TierOneMonth, 30, "ONE MONTH. YOU'RE BECOMING SOMEONE NEW."},
	{TierTwoMonths, 60, "THE OLD YOU IS DYING. GOOD."},
	{TierNinetyDays, 90, "90 DAYS. YOU'VE BROKEN THE CYCLE."},
	{TierHalfYear, 180, "HALF A YEAR. YOU'RE UNSTOPPABLE."},
	{TierOneYear, 365, "ONE YEAR+. YOU ARE FREE."},
}

// Tiers returns a copy of the tier table, lowest first.
func Tiers() []Milestone {
	out := make([]Milestone, len(milestones))
	copy(out, milestones)
	return out
}

// TierFor picks the highest tier whose lower bound is <= totalDays.
// Negative counts land in the day zero tier.
func TierFor(totalDays int) Tier {
	t := TierDayZero
	for _, m := range milestones {
		if totalDays < m.MinDays {
			break
		}
		t = m.Tier
	}
	return t
}

// Message is the motivational line for a day count.
func Message(totalDays int) string {
	return milestones[TierFor(totalDays)].Message
}

// MilestoneAt reports whether totalDays is exactly the first day of a tier
// past day zero.
func MilestoneAt(totalDays int) (Milestone, bool) {
	for _, m := range milestones[1:] {
		if m.MinDays == totalDays {
			return m, true
		}
	}
	return Milestone{}, false
}
