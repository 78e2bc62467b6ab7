package langstats

import (
	"math"
	"testing"
)

func TestMergeIsAdditive(t *testing.T) {
	acc := Accumulator{}
	acc.Merge(map[string]int64{"Go": 100})
	acc.Merge(map[string]int64{"Go": 50, "Python": 50})

	if acc["Go"] != 150 || acc["Python"] != 50 {
		t.Fatalf("accumulator = %v", acc)
	}
	if acc.Total() != 200 {
		t.Fatalf("total = %d, want 200", acc.Total())
	}
}

func TestPercentagesRoundHalfUp(t *testing.T) {
	acc := Accumulator{"Go": 150, "Python": 50}
	got := acc.Percentages()
	if got["Go"] != 75 || got["Python"] != 25 {
		t.Fatalf("percentages = %v, want Go:75 Python:25", got)
	}

	// 1/3 splits: 33 + 33 + 33 = 99, drift left uncorrected
	acc = Accumulator{"A": 1, "B": 1, "C": 1}
	got = acc.Percentages()
	for k, v := range got {
		if v != 33 {
			t.Fatalf("%s = %d, want 33", k, v)
		}
	}

	// .5 fractions round up: 1/8 = 12.5 -> 13
	acc = Accumulator{"A": 1, "B": 7}
	got = acc.Percentages()
	if got["A"] != 13 {
		t.Fatalf("A = %d, want 13 (half rounds up)", got["A"])
	}
}

func TestPercentagesEmpty(t *testing.T) {
	if got := (Accumulator{}).Percentages(); len(got) != 0 {
		t.Fatalf("empty accumulator -> %v, want empty map", got)
	}
	if got := (Accumulator{"Go": 0}).Percentages(); len(got) != 0 {
		t.Fatalf("zero-total accumulator -> %v, want empty map", got)
	}
}

// Sum of percentages stays within total +- number of keys
func TestPercentagesSumBound(t *testing.T) {
	cases := []Accumulator{
		{"Go": 1, "Rust": 1, "Zig": 1},
		{"Go": 999, "Python": 1},
		{"A": 7, "B": 13, "C": 29, "D": 51, "E": 100},
		{"Go": 123456789},
	}
	for _, acc := range cases {
		got := acc.Percentages()
		sum := 0
		for _, v := range got {
			sum += v
		}
		k := len(got)
		if sum < 100-k || sum > 100+k {
			t.Fatalf("sum(%v) = %d, outside [%d, %d]", acc, sum, 100-k, 100+k)
		}
	}
}

func TestRenormalize(t *testing.T) {
	in := []Share{{"Go", 40}, {"Python", 20}, {"Rust", 20}}
	got := Renormalize(in)

	var sum float64
	for _, s := range got {
		sum += s.Percent
	}
	if math.Abs(sum-100) > 1e-9 {
		t.Fatalf("sum = %v, want 100", sum)
	}
	if got[0].Percent != 50 || got[1].Percent != 25 {
		t.Fatalf("renormalized = %v", got)
	}

	// zero-sum input comes back unchanged
	zero := []Share{{"Go", 0}}
	if got := Renormalize(zero); got[0].Percent != 0 {
		t.Fatalf("zero-sum renormalize = %v", got)
	}
}
