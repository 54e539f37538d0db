package tally

import (
	"math"
	"testing"

	"github.com/iliyamo/online-voting/internal/repository"
)

func TestPercentage(t *testing.T) {
	tests := []struct {
		name  string
		votes int
		total int
		want  float64
	}{
		{"half", 5, 10, 50},
		{"three of ten", 3, 10, 30},
		{"two of ten", 2, 10, 20},
		{"rounds to one decimal", 1, 3, 33.3},
		{"rounds up", 2, 3, 66.7},
		{"zero votes", 0, 10, 0},
		{"zero total", 5, 0, 0},
		{"all votes", 7, 7, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Percentage(tt.votes, tt.total); got != tt.want {
				t.Errorf("Percentage(%d, %d) = %v, want %v", tt.votes, tt.total, got, tt.want)
			}
		})
	}
}

func TestBuildResults(t *testing.T) {
	rows := []repository.CandidateResult{
		{ID: 1, Name: "Alpha", Party: "Red", Votes: 5},
		{ID: 2, Name: "Beta", Party: "Blue", Votes: 3},
		{ID: 3, Name: "Gamma", Party: "Green", Votes: 2},
	}

	res := BuildResults(rows, 10)
	if res.TotalVotes != 10 {
		t.Fatalf("TotalVotes = %d, want 10", res.TotalVotes)
	}
	if len(res.Standings) != 3 {
		t.Fatalf("len(Standings) = %d, want 3", len(res.Standings))
	}

	wantPct := []float64{50, 30, 20}
	sumVotes := 0
	for i, s := range res.Standings {
		if s.Percentage != wantPct[i] {
			t.Errorf("standing %d percentage = %v, want %v", i, s.Percentage, wantPct[i])
		}
		sumVotes += s.Votes
	}
	// Per-candidate counts must add up to the ledger total.
	if sumVotes != res.TotalVotes {
		t.Errorf("sum of votes %d != totalVotes %d", sumVotes, res.TotalVotes)
	}
	// Input order (already count-desc with id tie-break) is preserved.
	if res.Standings[0].Name != "Alpha" || res.Standings[2].Name != "Gamma" {
		t.Errorf("ordering changed: %+v", res.Standings)
	}
}

func TestBuildResultsPercentagesSum(t *testing.T) {
	rows := []repository.CandidateResult{
		{ID: 1, Name: "A", Votes: 1},
		{ID: 2, Name: "B", Votes: 1},
		{ID: 3, Name: "C", Votes: 1},
	}
	res := BuildResults(rows, 3)

	sum := 0.0
	for _, s := range res.Standings {
		sum += s.Percentage
	}
	// 33.3 * 3 = 99.9: the sum must be 100 up to rounding error.
	if math.Abs(sum-100) > 0.5 {
		t.Errorf("percentages sum to %v, want ~100", sum)
	}
}

func TestBuildResultsNoVotes(t *testing.T) {
	rows := []repository.CandidateResult{
		{ID: 1, Name: "A", Votes: 0},
		{ID: 2, Name: "B", Votes: 0},
	}
	res := BuildResults(rows, 0)

	if res.TotalVotes != 0 {
		t.Fatalf("TotalVotes = %d, want 0", res.TotalVotes)
	}
	for _, s := range res.Standings {
		if s.Percentage != 0 {
			t.Errorf("%s percentage = %v, want 0 when no votes exist", s.Name, s.Percentage)
		}
		if s.Votes != 0 {
			t.Errorf("%s votes = %d, want 0", s.Name, s.Votes)
		}
	}
}

func TestBuildResultsEmpty(t *testing.T) {
	res := BuildResults(nil, 0)
	if len(res.Standings) != 0 {
		t.Errorf("Standings = %v, want empty", res.Standings)
	}
	if res.TotalVotes != 0 {
		t.Errorf("TotalVotes = %d, want 0", res.TotalVotes)
	}
}
