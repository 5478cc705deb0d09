package brewing

import (
	"context"
	"errors"
	"math"
	"myPotionMaker/domain"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pobyzaarif/goshortcute"
)

func newTestService(r float64) *BrewingService {
	return NewBrewingService(fixtureCatalog(), DefaultConfig()).WithRand(fixedRandFactory(r))
}

func request(rareMult float64, sel ...string) domain.BrewRequest {
	var req domain.BrewRequest
	copy(req.Selections[:], sel)
	req.RareMult = rareMult
	return req
}

func TestBrew_Scenarios(t *testing.T) {
	tests := []struct {
		name string
		req  domain.BrewRequest
		want *domain.PotionResult
	}{
		{
			name: "single ingredient by name",
			req:  request(1.0, "IngredientX", "Empty", "Empty", "Empty"),
			want: &domain.PotionResult{Effect: "Anti-Inflammatory", Strength: 1.0, StrengthLabel: LabelExtreme, RawValue: 4, Probability: 1.0},
		},
		{
			name: "alcohol doubles the raw value",
			req:  request(1.0, "IngredientX", "Alcohol", "Empty", "Empty"),
			want: &domain.PotionResult{Effect: "Anti-Inflammatory", Strength: 1.0, StrengthLabel: LabelExtreme, RawValue: 8, Probability: 1.0},
		},
		{
			name: "ids and names mix",
			req:  request(1.0, "x", "al", "Empty", "e"),
			want: &domain.PotionResult{Effect: "Anti-Inflammatory", Strength: 1.0, StrengthLabel: LabelExtreme, RawValue: 8, Probability: 1.0},
		},
		{
			name: "beeswax carrier oils topical ingredient",
			req:  request(1.0, "Beeswax", "Carrier Oils", "IngredientY", "Empty"),
			want: &domain.PotionResult{Effect: "Digestive", Strength: 1.0, StrengthLabel: LabelExtreme, RawValue: 4.5, Probability: 1.0},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := newTestService(0.5).Brew(context.Background(), tt.req)
			if err != nil {
				t.Fatalf("Brew: %v", err)
			}
			if out.Fizzled {
				t.Fatalf("unexpected fizzle: %+v", out)
			}
			if diff := cmp.Diff(tt.want, out.Potion); diff != "" {
				t.Errorf("Potion mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBrew_FizzlesOnEmptyBrew(t *testing.T) {
	out, err := newTestService(0.5).Brew(context.Background(), request(1.0, "Empty", "Empty", "Empty", "Empty"))
	if err != nil {
		t.Fatalf("Brew: %v", err)
	}
	if !out.Fizzled || out.Message != domain.FizzleMessage {
		t.Errorf("outcome = %+v, want fizzle", out)
	}
	if out.Brew.Multiplier != 1.0 {
		t.Errorf("Multiplier = %v, want 1.0", out.Brew.Multiplier)
	}
}

func TestBrew_UnresolvedSelectionsContributeNothing(t *testing.T) {
	out, err := newTestService(0.5).Brew(context.Background(), request(1.0, "Mandrake", "IngredientX", "", "Eye of Newt"))
	if err != nil {
		t.Fatalf("Brew: %v", err)
	}
	want := ids("", "x", "", "")
	if diff := cmp.Diff(want, out.Brew.IDs); diff != "" {
		t.Errorf("IDs mismatch (-want +got):\n%s", diff)
	}
	if out.Potion == nil || out.Potion.RawValue != 4 {
		t.Errorf("Potion = %+v, want raw value 4", out.Potion)
	}
}

func TestBrew_TopicalOnlyIgnoredWithoutBeeswax(t *testing.T) {
	out, err := newTestService(0.5).Brew(context.Background(), request(1.0, "IngredientY", "Carrier Oils", "Empty", "Empty"))
	if err != nil {
		t.Fatalf("Brew: %v", err)
	}
	if !out.Fizzled {
		t.Errorf("outcome = %+v, want fizzle", out)
	}
	if out.Brew.Topical || out.Brew.Multiplier != 1.0 {
		t.Errorf("brew = %+v, want non-topical with multiplier 1.0", out.Brew)
	}
}

func TestBrew_RecipeRoundTrip(t *testing.T) {
	svc := newTestService(0.5)
	req := request(2.5, "IngredientX", "Alcohol", "Lavender", "Empty")

	first, err := svc.Brew(context.Background(), req)
	if err != nil {
		t.Fatalf("Brew: %v", err)
	}
	if first.RecipeCode == "" {
		t.Fatal("missing recipe code")
	}

	again, err := svc.BrewRecipe(context.Background(), first.RecipeCode)
	if err != nil {
		t.Fatalf("BrewRecipe: %v", err)
	}
	if diff := cmp.Diff(first, again); diff != "" {
		t.Errorf("recipe brew differs (-first +again):\n%s", diff)
	}

	if _, err := svc.BrewRecipe(context.Background(), "not a recipe"); !errors.Is(err, ErrInvalidRecipeCode) {
		t.Errorf("err = %v, want ErrInvalidRecipeCode", err)
	}
}

func TestBrew_Errors(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := newTestService(0.5).Brew(ctx, request(1.0)); !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}

	noCatalog := NewBrewingService(nil, DefaultConfig())
	if _, err := noCatalog.Brew(context.Background(), request(1.0)); !errors.Is(err, ErrNoCatalog) {
		t.Errorf("err = %v, want ErrNoCatalog", err)
	}

	cfg := DefaultConfig()
	cfg.NegativeScores = RejectNegative
	strict := NewBrewingService(fixtureCatalog(), cfg).WithRand(fixedRandFactory(0.5))
	if _, err := strict.Brew(context.Background(), request(1.0, "Nettle", "Empty", "Empty", "Empty")); !errors.Is(err, ErrNegativeScore) {
		t.Errorf("err = %v, want ErrNegativeScore", err)
	}
}

func TestBrew_TraceID(t *testing.T) {
	ctx := WithTraceID(context.Background(), "abc")
	if got := TraceIDFromContext(ctx); got != "abc" {
		t.Errorf("TraceIDFromContext = %q, want abc", got)
	}
	if got := TraceIDFromContext(context.Background()); got != "" {
		t.Errorf("TraceIDFromContext(empty) = %q, want empty", got)
	}
}

func TestDecodeRecipe(t *testing.T) {
	req := request(1.5, "Beeswax", "Carrier Oils", "IngredientY", "Empty")
	got, err := DecodeRecipe(EncodeRecipe(req))
	if err != nil {
		t.Fatalf("DecodeRecipe: %v", err)
	}
	if diff := cmp.Diff(req, got); diff != "" {
		t.Errorf("request mismatch (-want +got):\n%s", diff)
	}

	piped := request(2, "a|b", "", "Lavender", "|")
	got, err = DecodeRecipe(EncodeRecipe(piped))
	if err != nil {
		t.Fatalf("DecodeRecipe with separator in selection: %v", err)
	}
	if diff := cmp.Diff(piped, got); diff != "" {
		t.Errorf("request mismatch (-want +got):\n%s", diff)
	}

	invalid := map[string]string{
		"empty":          "",
		"blank":          "   ",
		"not base64":     "!!!",
		"too few parts":  goshortcute.StringtoBase64Encode("eA==|ZQ==|1"),
		"raw selector":   goshortcute.StringtoBase64Encode("x|e|e|e|1"),
		"nan":            EncodeRecipe(request(math.NaN(), "x", "e", "e", "e")),
		"inf":            EncodeRecipe(request(math.Inf(1), "x", "e", "e", "e")),
		"bad multiplier": goshortcute.StringtoBase64Encode("eA==|ZQ==|ZQ==|ZQ==|lots"),
	}
	for name, code := range invalid {
		if _, err := DecodeRecipe(code); !errors.Is(err, ErrInvalidRecipeCode) {
			t.Errorf("%s: DecodeRecipe(%q) = %v, want ErrInvalidRecipeCode", name, code, err)
		}
	}
}
