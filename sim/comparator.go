// comparator.go implements the policy comparator (spec §4.5), grounded
// exactly on original_source/backend/src/benchmark/AlgorithmComparison.hpp's
// calculerScore: a weighted combination of per-priority mean wait and
// an untreated-patient penalty, used to rank candidate scheduling
// policies against identical simulated demand.
//
// A fair comparison needs every policy to face the same patient
// stream, so each run builds a fresh Engine whose generator is seeded
// from the same Config.Seed, rather than reusing one engine's generator.

package sim

// PolicyScore reports one policy's outcome over a single simulated run.
type PolicyScore struct {
	Policy           Policy  `json:"policy"`
	Score            float64 `json:"score"`
	MeanWaitEmergency float64 `json:"mean_wait_emergency_minutes"`
	MeanWaitElective  float64 `json:"mean_wait_elective_minutes"`
	MeanWaitAmbulatory float64 `json:"mean_wait_ambulatory_minutes"`
	Treated          int     `json:"treated"`
	Total            int     `json:"total"`
}

// score implements AlgorithmComparison::calculerScore's exact weights:
// emergency wait counts 3x, elective 1.5x, ambulatory 1x, and every
// point of untreated fraction costs 1000.
func score(waitEmergency, waitElective, waitAmbulatory float64, treated, total int) float64 {
	untreatedFraction := 0.0
	if total > 0 {
		untreatedFraction = 1 - float64(treated)/float64(total)
	}
	return 3*waitEmergency + 1.5*waitElective + 1.0*waitAmbulatory + 1000*untreatedFraction
}

// ComparePolicies runs the given policies against identical demand
// (same Config, same Seed, each run in its own Engine) and
// returns one PolicyScore per policy, run to completion. Rejected
// arrivals count against "treated" (spec §9 open-question decision),
// matching the original's convention of counting only discharged
// patients as treated.
func ComparePolicies(id string, cfg Config, policies []Policy) ([]PolicyScore, error) {
	out := make([]PolicyScore, 0, len(policies))
	for _, p := range policies {
		runCfg := cfg
		runCfg.Policy = p
		// Each candidate policy must face the same demand stream to be
		// comparable; offsetting the seed per policy index would break
		// that, so every run reuses cfg.Seed and relies on Policy alone
		// varying scheduling behaviour, not arrival generation.
		eng, err := New(id, runCfg)
		if err != nil {
			return nil, err
		}
		eng.Start()
		eng.Run()

		stats := eng.SnapshotStats()
		waitEmergency := eng.stats.MeanWaitByPriority(Emergency)
		waitElective := eng.stats.MeanWaitByPriority(Elective)
		waitAmbulatory := eng.stats.MeanWaitByPriority(Ambulatory)

		out = append(out, PolicyScore{
			Policy:             p,
			Score:              score(waitEmergency, waitElective, waitAmbulatory, stats.TotalDischarged, stats.TotalArrivals),
			MeanWaitEmergency:  waitEmergency,
			MeanWaitElective:   waitElective,
			MeanWaitAmbulatory: waitAmbulatory,
			Treated:            stats.TotalDischarged,
			Total:              stats.TotalArrivals,
		})
	}
	return out, nil
}
