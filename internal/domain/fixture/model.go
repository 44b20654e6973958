package fixture

const (
	StatusScheduled = "SCHEDULED"
	StatusFinished  = "FINISHED"
)

// Fixture is one scheduled match between two registered teams.
type Fixture struct {
	Seq       int
	HomeID    int
	AwayID    int
	HomeGoals *int
	AwayGoals *int
	Status    string
}

func New(seq, homeID, awayID int) Fixture {
	return Fixture{
		Seq:    seq,
		HomeID: homeID,
		AwayID: awayID,
		Status: StatusScheduled,
	}
}

func (f Fixture) IsFinished() bool {
	return f.Status == StatusFinished
}

func (f Fixture) Involves(teamID int) bool {
	return f.HomeID == teamID || f.AwayID == teamID
}

// Finish stores the final score.
func (f *Fixture) Finish(homeGoals, awayGoals int) {
	f.HomeGoals = &homeGoals
	f.AwayGoals = &awayGoals
	f.Status = StatusFinished
}

// Clone copies the fixture including the score pointers.
func (f Fixture) Clone() Fixture {
	out := f
	if f.HomeGoals != nil {
		v := *f.HomeGoals
		out.HomeGoals = &v
	}
	if f.AwayGoals != nil {
		v := *f.AwayGoals
		out.AwayGoals = &v
	}
	return out
}
