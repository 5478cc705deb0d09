package file

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"myPotionMaker/domain"
	"os"
	"strings"
)

// header aliases, matched after trimming and lower-casing
var (
	idHeaders          = []string{"id"}
	nameHeaders        = []string{"common name", "display name", "name"}
	topicalHeaders     = []string{"applied topically?", "applied topically", "applied_topically"}
	rarityHeaders      = []string{"rarity", "rarity (1-10), description"}
	descriptionHeaders = []string{"description", "unnamed: 5"}
)

type IngredientCSVRepository struct {
	path string
}

func NewIngredientCSVRepository(path string) *IngredientCSVRepository {
	return &IngredientCSVRepository{path: path}
}

func (r *IngredientCSVRepository) FindAll(ctx context.Context) ([]domain.IngredientRow, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	f, err := os.Open(r.path)
	if err != nil {
		return nil, fmt.Errorf("open ingredient csv: %w", err)
	}
	defer f.Close()

	return ReadIngredientCSV(f)
}

type csvColumns struct {
	id, name, topical, rarity, description int
	scores                                 [domain.EffectCount]int
}

func findColumn(index map[string]int, aliases []string) int {
	for _, a := range aliases {
		if i, ok := index[a]; ok {
			return i
		}
	}
	return -1
}

func mapColumns(header []string) (csvColumns, error) {
	index := make(map[string]int, len(header))
	for i, h := range header {
		key := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
		if _, dup := index[key]; !dup {
			index[key] = i
		}
	}

	cols := csvColumns{
		id:          findColumn(index, idHeaders),
		name:        findColumn(index, nameHeaders),
		topical:     findColumn(index, topicalHeaders),
		rarity:      findColumn(index, rarityHeaders),
		description: findColumn(index, descriptionHeaders),
	}
	if cols.id < 0 {
		return cols, errors.New("ingredient csv has no id column")
	}
	if cols.name < 0 {
		return cols, errors.New("ingredient csv has no common name column")
	}

	for _, cat := range domain.EffectCategories() {
		cols.scores[cat] = findColumn(index, []string{strings.ToLower(cat.Column()), strings.ToLower(cat.String())})
	}

	return cols, nil
}

func cell(record []string, i int) string {
	if i < 0 || i >= len(record) {
		return ""
	}
	return record[i]
}

// ReadIngredientCSV parses the herbal ingredient sheet. Missing effect or
// topical columns leave those cells empty.
func ReadIngredientCSV(r io.Reader) ([]domain.IngredientRow, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("ingredient csv is empty")
		}
		return nil, fmt.Errorf("read ingredient csv header: %w", err)
	}

	cols, err := mapColumns(header)
	if err != nil {
		return nil, err
	}

	var rows []domain.IngredientRow
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read ingredient csv: %w", err)
		}

		row := domain.IngredientRow{
			ID:               strings.TrimSpace(cell(record, cols.id)),
			CommonName:       cell(record, cols.name),
			AppliedTopically: cell(record, cols.topical),
			Rarity:           cell(record, cols.rarity),
			Description:      cell(record, cols.description),
		}
		for i, col := range cols.scores {
			row.Scores[i] = cell(record, col)
		}
		rows = append(rows, row)
	}

	return rows, nil
}
