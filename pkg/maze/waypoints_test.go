package maze

import (
	"errors"
	"math/rand"
	"testing"
)

func pathDistances(t *testing.T, n int) *DistanceMatrix {
	t.Helper()
	g := pathGraph(n)
	passable := make([]int, n-1)
	for i := range passable {
		passable[i] = i
	}
	m, err := ComputeDistances(g, passable)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return m
}

func TestPlaceWaypointsPath(t *testing.T) {
	// Path of 4: only sites 0 and 3 are 3 apart.
	m := pathDistances(t, 4)
	rnd := rand.New(rand.NewSource(5))
	wps, err := PlaceWaypoints(m, 2, 3, rnd, 50)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(wps) != 2 {
		t.Fatalf("expected 2 waypoints, got %d", len(wps))
	}
	if m.At(wps[0], wps[1]) < 3 {
		t.Errorf("waypoints %v violate min distance 3 (distance %d)", wps, m.At(wps[0], wps[1]))
	}
}

func TestPlaceWaypointsPairwiseConstraint(t *testing.T) {
	m := pathDistances(t, 9)
	rnd := rand.New(rand.NewSource(7))
	wps, err := PlaceWaypoints(m, 3, 3, rnd, 200)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := range wps {
		for j := i + 1; j < len(wps); j++ {
			if m.At(wps[i], wps[j]) < 3 {
				t.Errorf("waypoints %d and %d too close: %d", wps[i], wps[j], m.At(wps[i], wps[j]))
			}
		}
	}
}

func TestPlaceWaypointsExhausted(t *testing.T) {
	// Path of 3: the maximum pairwise distance is 2, so min distance 3 can
	// never be met and placement must signal regeneration.
	m := pathDistances(t, 3)
	rnd := rand.New(rand.NewSource(1))
	_, err := PlaceWaypoints(m, 2, 3, rnd, 10)
	if !errors.Is(err, ErrPlacementExhausted) {
		t.Errorf("expected ErrPlacementExhausted, got %v", err)
	}
}

func TestPlaceWaypointsInvalidInput(t *testing.T) {
	m := pathDistances(t, 3)
	rnd := rand.New(rand.NewSource(1))
	if _, err := PlaceWaypoints(m, 5, 1, rnd, 10); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput for k > n, got %v", err)
	}
	if _, err := PlaceWaypoints(m, 2, 0, rnd, 10); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput for min distance 0, got %v", err)
	}
}
