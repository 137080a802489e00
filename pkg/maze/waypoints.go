package maze

import "fmt"

// PlaceWaypoints selects k distinct sites such that every pair is at least
// minDistance apart in graph distance. The first site is chosen uniformly at
// random and becomes the designated start; each further site is drawn
// uniformly from the set of sites far enough from all chosen ones. When that
// set is empty the whole selection restarts; after retryBudget restarts it
// fails with ErrPlacementExhausted, telling the caller to regenerate the
// layout. The search is greedy: it finds a feasible placement within budget,
// not an optimal one.
func PlaceWaypoints(m *DistanceMatrix, k, minDistance int, rnd Rand, retryBudget int) ([]int, error) {
	n := m.NumSites()
	if k < 1 || k > n {
		return nil, fmt.Errorf("cannot place %d waypoints over %d sites: %w", k, n, ErrInvalidInput)
	}
	if minDistance < 1 {
		return nil, fmt.Errorf("min distance %d: %w", minDistance, ErrInvalidInput)
	}

	retries := 0
	for {
		chosen := make([]int, 0, k)
		chosen = append(chosen, rnd.Intn(n))

		stuck := false
		for len(chosen) < k {
			eligible := eligibleSites(m, chosen, minDistance)
			if len(eligible) == 0 {
				stuck = true
				break
			}
			chosen = append(chosen, eligible[rnd.Intn(len(eligible))])
		}
		if !stuck {
			return chosen, nil
		}

		retries++
		if retries > retryBudget {
			return nil, fmt.Errorf("no placement after %d retries: %w", retries-1, ErrPlacementExhausted)
		}
	}
}

// eligibleSites returns the sites whose distance to every chosen site is at
// least minDistance.
func eligibleSites(m *DistanceMatrix, chosen []int, minDistance int) []int {
	var eligible []int
	for site := 0; site < m.NumSites(); site++ {
		ok := true
		for _, c := range chosen {
			if m.At(site, c) < minDistance {
				ok = false
				break
			}
		}
		if ok {
			eligible = append(eligible, site)
		}
	}
	return eligible
}
