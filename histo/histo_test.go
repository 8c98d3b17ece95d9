package histo

import (
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"gonum.org/v1/gonum/floats"
)

func TestHisto(Te *testing.T) {
	raw := []float64{1, 6, 3, 2, 4, 5, 7, 6, 3.5, 3, 5, 1, 1, 0, 0, 5, 8, 1, 2, 3, 44, 3, 7, 3, 1, 3, 5, 32, 1}
	D, err := NewData("test", []float64{0, 2, 4, 8}, raw)
	if err != nil {
		Te.Fatal(err)
	}
	fmt.Println(D)
	//8, 32 and 44 are out
	if diff := cmp.Diff([]float64{8, 9, 9}, D.histo); diff != "" {
		Te.Errorf("wrong counts (-want +got):\n%s", diff)
	}
	if D.total != 26 || raw[0] != 1 {
		Te.Errorf("wrong total %d, or the input was modified", D.total)
	}
	if !strings.Contains(D.bars(10), "##########") {
		Te.Errorf("the fullest bin should have a full bar:\n%s", D.bars(10))
	}
	if !strings.HasPrefix(D.String(), "test (26 points)\n") {
		Te.Errorf("wrong header:\n%s", D)
	}
	D.Normalize()
	if diff := cmp.Diff([]float64{8.0 / 26, 9.0 / 26, 9.0 / 26}, D.histo, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		Te.Errorf("wrong normalized histogram (-want +got):\n%s", diff)
	}
	//a second call must not scale again.
	D.Normalize()
	if s := floats.Sum(D.histo); math.Abs(s-1) > 1e-9 {
		Te.Errorf("normalized histogram adds up to %f", s)
	}
	E, _ := NewData("empty", []float64{0, 1}, nil)
	E.Normalize()
	if E.histo[0] != 0 || E.normalized {
		Te.Errorf("an empty histogram can't be normalized: %v", E.histo)
	}
	if _, err := NewData("bad", []float64{3, 1}, nil); err == nil {
		Te.Error("unsorted dividers should be rejected")
	}
}

func TestDividers(Te *testing.T) {
	d := Dividers(0, 10, 5)
	if len(d) != 6 || d[1] != 2 || d[5] <= 10 {
		Te.Errorf("wrong dividers %v", d)
	}
	D, _ := NewData("edges", d, []float64{0, 10})
	if D.total != 2 {
		Te.Errorf("both limits should be in the histogram, got %v", D.histo)
	}
	if d := Dividers(3, 3, 0); len(d) != 2 || d[1] <= d[0] {
		Te.Errorf("degenerate range should give one valid bin, got %v", d)
	}
}
