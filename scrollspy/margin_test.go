package scrollspy

import (
	"errors"
	"slices"
	"testing"
)

func TestParseRootMargin(t *testing.T) {
	px := func(v float64) Length { return Length{Value: v} }
	pct := func(v float64) Length { return Length{Value: v, Percent: true} }

	tests := []struct {
		in   string
		want Margin
	}{
		{"", Margin{}},
		{"0", Margin{}},
		{"0px 0px 0px 0px", Margin{}},
		{"10px", Margin{px(10), px(10), px(10), px(10)}},
		{"-10% 0px", Margin{pct(-10), px(0), pct(-10), px(0)}},
		{"1px 2px 3px", Margin{px(1), px(2), px(3), px(2)}},
		{"1px 2% 3px 4%", Margin{px(1), pct(2), px(3), pct(4)}},
		{"  5.5px   ", Margin{px(5.5), px(5.5), px(5.5), px(5.5)}},
	}
	for _, tt := range tests {
		got, err := ParseRootMargin(tt.in)
		if err != nil {
			t.Errorf("ParseRootMargin(%q) error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseRootMargin(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestParseRootMarginInvalid(t *testing.T) {
	for _, in := range []string{"10", "1em", "px", "1px 2px 3px 4px 5px", "abc%"} {
		if _, err := ParseRootMargin(in); !errors.Is(err, ErrInvalidRootMargin) {
			t.Errorf("ParseRootMargin(%q) error = %v, want ErrInvalidRootMargin", in, err)
		}
	}
}

func TestMarginResolve(t *testing.T) {
	m, err := ParseRootMargin("-25% 10% 50px 0")
	if err != nil {
		t.Fatal(err)
	}
	got := m.Resolve(1000, 800)
	want := Rect{Top: -200, Right: 100, Bottom: 50, Left: 0}
	if got != want {
		t.Fatalf("Resolve() = %+v, want %+v", got, want)
	}
}

func TestOptionsEqual(t *testing.T) {
	a := Options{RootMargin: "0px", Threshold: []float64{0, 1}}
	if !a.Equal(Options{RootMargin: "0px", Threshold: []float64{0, 1}}) {
		t.Errorf("equal options reported different")
	}
	if a.Equal(Options{RootMargin: "0px", Threshold: []float64{1}}) {
		t.Errorf("different thresholds reported equal")
	}
	if a.Equal(Options{RootMargin: "10px", Threshold: []float64{0, 1}}) {
		t.Errorf("different margins reported equal")
	}
}

func TestParseThresholds(t *testing.T) {
	tests := []struct {
		in   string
		want []float64
	}{
		{"1", []float64{1}},
		{"0,0.5,1", []float64{0, 0.5, 1}},
		{"0 0.25  0.75", []float64{0, 0.25, 0.75}},
		{" 0.1, 0.2 ,0.3 ", []float64{0.1, 0.2, 0.3}},
		{"-0.1,1.5,0.4", []float64{0.4}},
		{"half,0.5", []float64{0.5}},
		{"", nil},
		{" , ", nil},
	}
	for _, tt := range tests {
		if got := ParseThresholds(tt.in); !slices.Equal(got, tt.want) {
			t.Errorf("ParseThresholds(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
