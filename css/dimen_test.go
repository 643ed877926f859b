package css_test

import (
	"testing"

	"github.com/npillmayer/consolemark/css"
	"github.com/npillmayer/tyse/core/dimen"
	"github.com/npillmayer/tyse/core/percent"
)

func TestDimenBasic(t *testing.T) {
	ten := css.JustDimen(dimen.PT * 10)
	var du dimen.DU
	switch m := ten.Match(); m {
	case m.Just(&du):
		t.Logf("du = %s", du)
	default:
		t.Errorf("expected Just(10pt) to be a fixed value, isn't: %#v", ten)
	}

	auto := css.Auto()
	switch m := auto.Match(); m {
	case m.IsKind(css.Auto()):
		t.Logf("dimen is auto")
	default:
		t.Errorf("expected dimen auto to match auto, isn't: %#v", auto)
	}

	pcnt := css.Percentage(percent.FromInt(80))
	var p percent.Percent
	switch m := pcnt.Match(); m {
	case m.Percentage(&p):
		t.Logf("percent = %s", p)
	default:
		t.Errorf("expected Percentage(80) to be a percentage value, isn't: %#v", pcnt)
	}
}

func TestParseDimenPixels(t *testing.T) {
	for in, px := range map[string]int{
		"64":    64,
		"64px":  64,
		" 32PX": 32,
		"12pt":  16,
		"0":     0,
	} {
		d, err := css.ParseDimen(in)
		if err != nil {
			t.Errorf("cannot parse %q: %v", in, err)
			continue
		}
		if n, ok := d.Pixels(); !ok || n != px {
			t.Errorf("expected %q to be %dpx, is %d (%v)", in, px, n, ok)
		}
	}
}

func TestParseDimenRejectsHugeValues(t *testing.T) {
	for _, in := range []string{"1e30", "1e30px", "100000", "Inf", "NaN", "70000pt"} {
		if d, err := css.ParseDimen(in); err == nil {
			t.Errorf("expected %q to be rejected, is %#v", in, d)
		}
	}
	d, err := css.ParseDimen("65536")
	if err != nil {
		t.Fatalf("expected maximum dimension to be accepted: %v", err)
	}
	if n, _ := d.Pixels(); n != css.MaxPixels {
		t.Errorf("expected %dpx, is %d", css.MaxPixels, n)
	}
}

func TestParseDimenKinds(t *testing.T) {
	auto, _ := css.ParseDimen("auto")
	if m := auto.Match(); m.IsKind(css.Auto()) == nil {
		t.Error("expected 'auto' to parse as Auto")
	}
	half, _ := css.ParseDimen("50%")
	if _, ok := half.Pixels(); ok {
		t.Error("did not expect a percentage to have a pixel value")
	}
	if _, err := css.ParseDimen("wide"); err == nil {
		t.Error("expected 'wide' to be rejected")
	}
	if !(css.DimenT{}).IsNone() {
		t.Error("expected zero dimension to be none")
	}
}

func TestDimenPattern(t *testing.T) {
	d := css.JustDimen(dimen.PT * 10)
	var du dimen.DU
	e := css.DimenPattern[dimen.DU](d)
	distance := e.OneOf(css.DimenPatterns[dimen.DU]{
		Just:    e.With(&du).Const(2 * du),
		Auto:    0,
		Default: -1,
	})
	if distance != 2*10*dimen.PT {
		t.Errorf("expected distance to be %v, isn't: %#v", 20*dimen.PT, distance)
	}
}
