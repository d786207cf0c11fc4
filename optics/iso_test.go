package optics_test

import (
	"math"
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/taily-khucnaykhongquantrong/monocle-optics/optics"
)

// parseInt mirrors a lenient integer parse: failures surface as NaN.
func parseInt(s string) float64 {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return math.NaN()
	}
	return float64(n)
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func TestDoubleIso(t *testing.T) {
	double := optics.MakeIso[float64, float64](func(n float64) float64 { return n * 2 })(func(n float64) float64 { return n / 2 })

	t.Run("double 2 to 4", func(t *testing.T) {
		if double.Get(2) != 4 {
			t.Errorf("expected 4, got %v", double.Get(2))
		}
	})

	t.Run("reverse 4 to 2", func(t *testing.T) {
		if double.ReverseGet(4) != 2 {
			t.Errorf("expected 2, got %v", double.ReverseGet(4))
		}
	})

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("ReverseGet(Get(n)) == n", prop.ForAll(
		func(n float64) bool { return double.ReverseGet(double.Get(n)) == n },
		gen.Float64Range(-1e12, 1e12),
	))
	properties.Property("Get(ReverseGet(n)) == n", prop.ForAll(
		func(n float64) bool { return double.Get(double.ReverseGet(n)) == n },
		gen.Float64Range(-1e12, 1e12),
	))

	properties.TestingRun(t)
}

func TestParseIntIso(t *testing.T) {
	makeInt := optics.NewIso(parseInt, formatNumber)
	nanAware := cmpopts.EquateNaNs()

	t.Run("alphabetic string is NaN", func(t *testing.T) {
		if !math.IsNaN(makeInt.Get("hello")) {
			t.Errorf("expected NaN, got %v", makeInt.Get("hello"))
		}
	})

	t.Run("round trip one way with 2", func(t *testing.T) {
		if got := makeInt.ReverseGet(makeInt.Get("2")); got != "2" {
			t.Errorf("expected 2, got %q", got)
		}
	})

	t.Run("round trip other way with 2", func(t *testing.T) {
		if got := makeInt.Get(makeInt.ReverseGet(2)); got != 2 {
			t.Errorf("expected 2, got %v", got)
		}
	})

	t.Run("round trip one way with NaN", func(t *testing.T) {
		if got := makeInt.ReverseGet(makeInt.Get("NaN")); got != "NaN" {
			t.Errorf("expected NaN, got %q", got)
		}
	})

	t.Run("round trip other way with NaN", func(t *testing.T) {
		got := makeInt.Get(makeInt.ReverseGet(math.NaN()))
		if !cmp.Equal(math.NaN(), got, nanAware) {
			t.Errorf("expected NaN, got %v", got)
		}
	})
}

func TestIsoHelpers(t *testing.T) {
	celsius := optics.NewIso(
		func(c float64) float64 { return c*9/5 + 32 },
		func(f float64) float64 { return (f - 32) * 5 / 9 },
	)

	t.Run("Reverse swaps directions", func(t *testing.T) {
		if celsius.Reverse().Get(212) != 100 {
			t.Errorf("expected 100, got %v", celsius.Reverse().Get(212))
		}
	})

	t.Run("ComposeIso chains", func(t *testing.T) {
		label := optics.ComposeIso(celsius, optics.NewIso(formatNumber, parseInt))
		if label.Get(100) != "212" {
			t.Errorf("expected 212, got %q", label.Get(100))
		}
		if label.ReverseGet("32") != 0 {
			t.Errorf("expected 0, got %v", label.ReverseGet("32"))
		}
	})

	t.Run("ToLens composes with path lenses", func(t *testing.T) {
		temp := optics.Compose(
			optics.MakeLens[map[string]any, float64](optics.Field("celsius")),
			celsius.ToLens(),
		)
		doc := map[string]any{"celsius": 100.0}
		if got := temp.Get(doc).Unwrap(); got != 212 {
			t.Errorf("expected 212, got %v", got)
		}
		if got := temp.Replace(doc, 32); got["celsius"] != 0.0 {
			t.Errorf("expected 0, got %v", got["celsius"])
		}
	})
}
