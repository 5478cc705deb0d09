package postgres

import (
	"context"
	"fmt"
	"myPotionMaker/domain"

	"gorm.io/gorm"
)

// CREATE TABLE public.ingredients (
//     id                   TEXT PRIMARY KEY,
//     common_name          TEXT NOT NULL,
//     anti_inflammatory    TEXT,
//     irritation           TEXT,
//     sleep_relaxation     TEXT,
//     digestive            TEXT,
//     antiseptic_immunity  TEXT,
//     cardiovascular       TEXT,
//     cough_throat         TEXT,
//     cognitive_nerve      TEXT,
//     depression           TEXT,
//     applied_topically    TEXT,
//     rarity               TEXT,
//     description          TEXT,
//     sort_order           INTEGER NOT NULL DEFAULT 0
// );

type ingredientRecord struct {
	ID                 string `gorm:"column:id;primaryKey"`
	CommonName         string `gorm:"column:common_name;not null"`
	AntiInflammatory   string `gorm:"column:anti_inflammatory"`
	Irritation         string `gorm:"column:irritation"`
	SleepRelaxation    string `gorm:"column:sleep_relaxation"`
	Digestive          string `gorm:"column:digestive"`
	AntisepticImmunity string `gorm:"column:antiseptic_immunity"`
	Cardiovascular     string `gorm:"column:cardiovascular"`
	CoughThroat        string `gorm:"column:cough_throat"`
	CognitiveNerve     string `gorm:"column:cognitive_nerve"`
	Depression         string `gorm:"column:depression"`
	AppliedTopically   string `gorm:"column:applied_topically"`
	Rarity             string `gorm:"column:rarity"`
	Description        string `gorm:"column:description"`
	SortOrder          int    `gorm:"column:sort_order"`
}

func (ingredientRecord) TableName() string {
	return "ingredients"
}

func (r ingredientRecord) toRow() domain.IngredientRow {
	return domain.IngredientRow{
		ID:         r.ID,
		CommonName: r.CommonName,
		Scores: [domain.EffectCount]string{
			r.AntiInflammatory,
			r.Irritation,
			r.SleepRelaxation,
			r.Digestive,
			r.AntisepticImmunity,
			r.Cardiovascular,
			r.CoughThroat,
			r.CognitiveNerve,
			r.Depression,
		},
		AppliedTopically: r.AppliedTopically,
		Rarity:           r.Rarity,
		Description:      r.Description,
	}
}

type IngredientRepository struct {
	DB *gorm.DB
}

func NewIngredientRepository(db *gorm.DB) *IngredientRepository {
	return &IngredientRepository{
		DB: db,
	}
}

// FindAll returns every ingredient row ordered by sort_order, then id, so
// "first row" for duplicate names is stable across loads.
func (r *IngredientRepository) FindAll(ctx context.Context) ([]domain.IngredientRow, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var records []ingredientRecord
	if err := r.DB.WithContext(ctx).Order("sort_order ASC").Order("id ASC").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to find ingredients: %w", err)
	}

	rows := make([]domain.IngredientRow, 0, len(records))
	for _, rec := range records {
		rows = append(rows, rec.toRow())
	}

	return rows, nil
}
