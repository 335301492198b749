package engine

import (
	"errors"
	"testing"
)

func TestVariantByName(t *testing.T) {
	cases := map[string]string{
		"klondike":       "klondike",
		"Klondike-3":     "klondike",
		"klondike-1":     "klondike-1",
		" labellelucie ": "labellelucie",
		"la-belle-lucie": "labellelucie",
	}
	for in, want := range cases {
		v, err := VariantByName(in)
		if err != nil {
			t.Errorf("VariantByName(%q): %v", in, err)
			continue
		}
		if v.Name != want {
			t.Errorf("VariantByName(%q).Name = %q, want %q", in, v.Name, want)
		}
	}
	if _, err := VariantByName("spider"); !errors.Is(err, ErrInvalidVariant) {
		t.Errorf("unknown variant err = %v, want ErrInvalidVariant", err)
	}
}

func TestPresetsValidate(t *testing.T) {
	for _, v := range []Variant{Klondike(), KlondikeDrawOne(), LaBelleLucie()} {
		if err := v.Validate(); err != nil {
			t.Errorf("%s: %v", v.Name, err)
		}
	}
}

func TestValidateRejects(t *testing.T) {
	tooBig := Klondike()
	tooBig.PileLengths = repeat(8, 7)
	tooBig.InitialVisible = repeat(1, 7)

	mismatch := Klondike()
	mismatch.InitialVisible = repeat(1, 6)

	badDraw := Klondike()
	badDraw.Draw = &DrawRules{FlipAmount: 0, NumVisible: 1}

	overVisible := Klondike()
	overVisible.InitialVisible = repeat(2, 7)

	for name, v := range map[string]Variant{
		"too many cards":          tooBig,
		"visibility mismatch":     mismatch,
		"zero flip":               badDraw,
		"more visible than dealt": overVisible,
		"no piles":                {Name: "empty"},
	} {
		if err := v.Validate(); !errors.Is(err, ErrInvalidVariant) {
			t.Errorf("%s: err = %v, want ErrInvalidVariant", name, err)
		}
	}
}
