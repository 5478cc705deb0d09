package catalog

import (
	"context"
	"errors"
	"myPotionMaker/domain"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func row(id, name string, topical string, scores ...string) domain.IngredientRow {
	r := domain.IngredientRow{ID: id, CommonName: name, AppliedTopically: topical}
	copy(r.Scores[:], scores)
	return r
}

func testRows() []domain.IngredientRow {
	return []domain.IngredientRow{
		row("1", "Empty", "0"),
		row("2", "Chamomile", "no", "2", "0", "3"),
		row("3", "Arnica", "Yes", "4", "1"),
		row("4", "Chamomile", "0", "9"),
		row("5", "Odd Root", "", "x", "", "1.0", "2.5", "-3"),
	}
}

func TestCatalog_Resolve(t *testing.T) {
	c := New(testRows())

	tests := []struct {
		name   string
		value  string
		wantID string
		wantOK bool
	}{
		{"known id", "3", "3", true},
		{"display name", "Arnica", "3", true},
		{"duplicate name resolves to first row", "Chamomile", "2", true},
		{"unknown", "Mandrake", "", false},
		{"name lookup is exact", "arnica", "", false},
		{"empty", "", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := c.Resolve(tt.value)
			if id != tt.wantID || ok != tt.wantOK {
				t.Errorf("Resolve(%q) = (%q, %v), want (%q, %v)", tt.value, id, ok, tt.wantID, tt.wantOK)
			}
		})
	}
}

func TestCatalog_GetAndFindByName(t *testing.T) {
	c := New(testRows())

	got, ok := c.Get("3")
	if !ok {
		t.Fatal("Get(3) not found")
	}
	want := domain.Ingredient{
		ID:               "3",
		DisplayName:      "Arnica",
		Scores:           [domain.EffectCount]int{4, 1},
		AppliedTopically: true,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Get(3) mismatch (-want +got):\n%s", diff)
	}

	if _, ok := c.Get("Arnica"); ok {
		t.Error("Get must not match display names")
	}

	byName, ok := c.FindByName("Chamomile")
	if !ok || byName.ID != "2" {
		t.Errorf("FindByName(Chamomile) = %+v, %v; want id 2", byName, ok)
	}
	if _, ok := c.FindByName("Mandrake"); ok {
		t.Error("FindByName(Mandrake) should not be found")
	}
	if c.IDByName("Mandrake") != "" {
		t.Error("IDByName(Mandrake) should be empty")
	}
}

func TestCatalog_MalformedScores(t *testing.T) {
	c := New(testRows())
	ing, ok := c.Get("5")
	if !ok {
		t.Fatal("Get(5) not found")
	}
	want := [domain.EffectCount]int{0, 0, 1, 2, -3}
	if diff := cmp.Diff(want, ing.Scores); diff != "" {
		t.Errorf("scores mismatch (-want +got):\n%s", diff)
	}
}

func TestCatalog_SkipsRowsWithoutIDAndDuplicateIDs(t *testing.T) {
	rows := append(testRows(),
		row("", "Ghost", "0", "5"),
		row("2", "Impostor", "0", "5"),
	)
	c := New(rows)
	if c.Len() != 5 {
		t.Errorf("Len = %d, want 5", c.Len())
	}
	if ing, _ := c.Get("2"); ing.DisplayName != "Chamomile" {
		t.Errorf("duplicate id replaced first row: %+v", ing)
	}
	if _, ok := c.FindByName("Ghost"); ok {
		t.Error("row without id should be skipped")
	}
}

func TestCatalog_Names(t *testing.T) {
	c := New(testRows())
	want := []string{"Empty", "Chamomile", "Arnica", "Chamomile", "Odd Root"}
	if diff := cmp.Diff(want, c.Names()); diff != "" {
		t.Errorf("Names mismatch (-want +got):\n%s", diff)
	}
}

func TestCatalog_Suggest(t *testing.T) {
	c := New(testRows())

	got := c.Suggest("Camomile", 2)
	if len(got) != 2 || got[0] != "Chamomile" {
		t.Errorf("Suggest(Camomile) = %v, want Chamomile first", got)
	}
	if got := c.Suggest("arnica", 1); len(got) != 1 || got[0] != "Arnica" {
		t.Errorf("Suggest(arnica) = %v, want [Arnica]", got)
	}
	if got := c.Suggest("x", 0); got != nil {
		t.Errorf("Suggest with n=0 = %v, want nil", got)
	}
}

func TestParseTopical(t *testing.T) {
	for _, v := range []string{"1", "true", "TRUE", "yes", "Y", "t", " yes "} {
		if !parseTopical(v) {
			t.Errorf("parseTopical(%q) = false, want true", v)
		}
	}
	for _, v := range []string{"0", "false", "no", "", "2", "nan", "topical"} {
		if parseTopical(v) {
			t.Errorf("parseTopical(%q) = true, want false", v)
		}
	}
}

func TestParseScore(t *testing.T) {
	tests := map[string]int{
		"4":    4,
		" -2 ": -2,
		"3.0":  3,
		"2.5":  2,
		"-2.7": -2,
		"Inf":  0,
		"":     0,
		"abc":  0,
		"NaN":  0,
	}
	for in, want := range tests {
		if got := parseScore(in); got != want {
			t.Errorf("parseScore(%q) = %d, want %d", in, got, want)
		}
	}
}

type stubRepo struct {
	rows []domain.IngredientRow
	err  error
}

func (s stubRepo) FindAll(ctx context.Context) ([]domain.IngredientRow, error) {
	return s.rows, s.err
}

func TestLoad(t *testing.T) {
	c, err := Load(context.Background(), stubRepo{rows: testRows()})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Len() != 5 {
		t.Errorf("Len = %d, want 5", c.Len())
	}

	boom := errors.New("boom")
	if _, err := Load(context.Background(), stubRepo{err: boom}); !errors.Is(err, boom) {
		t.Errorf("Load error = %v, want wrapped boom", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Load(ctx, stubRepo{rows: testRows()}); !errors.Is(err, context.Canceled) {
		t.Errorf("Load on cancelled ctx = %v, want context.Canceled", err)
	}

	if _, err := Load(context.Background(), nil); err == nil {
		t.Error("Load(nil repo) should fail")
	}
}
