package isotopes

import (
	"math"
	"testing"
)

func TestDefaults(Te *testing.T) {
	T := Default()
	for _, s := range []string{"H", "C", "O", "Na", "Pb"} {
		iso, ok := T.DefaultIsotope(s)
		if !ok {
			Te.Errorf("no default isotope for %s", s)
			continue
		}
		if _, ok := T.Gamma(s, iso); !ok {
			Te.Errorf("default isotope %d%s has no gyromagnetic ratio", iso, s)
		}
	}
	if _, ok := T.DefaultIsotope("Xx"); ok {
		Te.Error("unknown species should have no default isotope")
	}
}

func TestZeroIsNotMissing(Te *testing.T) {
	T := Default()
	q, ok := T.Q("C", 13)
	if !ok || q != 0 {
		Te.Errorf("13C is spin 1/2, expected (0, true), got (%f, %t)", q, ok)
	}
	if _, ok := T.Q("C", 12); ok {
		Te.Error("12C is not in the table, Q should be unknown")
	}
	if _, ok := T.EFGToCq("C", 12); ok {
		Te.Error("EFGToCq should be unknown for 12C")
	}
	if f, ok := T.EFGToCq("C", 13); !ok || f != 0 {
		Te.Errorf("EFGToCq for 13C should be a genuine zero, got (%f, %t)", f, ok)
	}
}

func TestConversionFactors(Te *testing.T) {
	T := Default()
	//About 234.96 MHz per barn per atomic unit.
	f, ok := T.EFGToCq("O", 17)
	if !ok || math.Abs(f-(-6.0104)) > 1e-3 {
		Te.Errorf("wrong EFG to Cq factor for 17O: %f", f)
	}
	j, ok := T.KToJ("H", 1, "C", 13)
	if !ok || math.Abs(j-3.0212) > 1e-3 {
		Te.Errorf("wrong K to J factor for 1H-13C: %f", j)
	}
	j2, _ := T.KToJ("C", 13, "H", 1)
	if j != j2 {
		Te.Errorf("K to J factor should be symmetric: %f %f", j, j2)
	}
	if _, ok := T.KToJ("H", 1, "C", 12); ok {
		Te.Error("K to J should be unknown when one of the nuclei is")
	}
}

func TestAddClone(Te *testing.T) {
	T := Default().Clone()
	err := T.Add(Nucleus{"Xe", 129, 0.5, -7.452103e7, 0}, true)
	if err != nil {
		Te.Fatal(err)
	}
	if iso, ok := T.DefaultIsotope("Xe"); !ok || iso != 129 {
		Te.Errorf("expected 129 as default for Xe, got %d", iso)
	}
	if _, ok := Default().DefaultIsotope("Xe"); ok {
		Te.Error("Clone should not share storage with the built-in table")
	}
	if err := T.Add(Nucleus{Species: "Xe"}); err == nil {
		Te.Error("a nucleus without mass number should be rejected")
	}
	if isos := T.Isotopes("Cl"); len(isos) != 2 || isos[0] != 35 || isos[1] != 37 {
		Te.Errorf("wrong isotopes for Cl: %v", isos)
	}
}
