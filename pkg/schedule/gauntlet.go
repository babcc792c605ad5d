package schedule

// Gauntlet schedules the first competitor against every other competitor,
// one match per round, in input order. Unlike RoundRobin any number of
// competitors from two upwards is accepted.
func Gauntlet[ID comparable](ids []ID) ([]Round[ID], error) {
	if err := validate(FormatGauntlet, ids); err != nil {
		return nil, err
	}

	rounds := make([]Round[ID], 0, len(ids)-1)
	for i, opponent := range ids[1:] {
		rounds = append(rounds, Round[ID]{
			Number:  i + 1,
			Matches: []Match[ID]{{First: ids[0], Second: opponent}},
		})
	}

	return rounds, nil
}
