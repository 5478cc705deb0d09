package rest

import (
	"myPotionMaker/business/catalog"
	"myPotionMaker/domain"
	"net/http"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

const suggestionLimit = 3

type IngredientCatalog interface {
	All() []domain.Ingredient
	Names() []string
	Get(id string) (domain.Ingredient, bool)
	FindByName(name string) (domain.Ingredient, bool)
	Suggest(name string, n int) []string
}

type IngredientHandler struct {
	catalog   IngredientCatalog
	validator *validator.Validate
}

func NewIngredientHandler(catalog IngredientCatalog) *IngredientHandler {
	return &IngredientHandler{
		catalog:   catalog,
		validator: validator.New(),
	}
}

type LookupIngredientQuery struct {
	Name string `query:"name" validate:"required"`
}

// GET /api/v1/ingredients
func (h *IngredientHandler) GetAllIngredients(c echo.Context) error {
	return c.JSON(http.StatusOK, fres.Response.StatusOK(h.catalog.All()))
}

// GET /api/v1/ingredients/names
// Display names in catalog order, for selection lists.
func (h *IngredientHandler) GetIngredientNames(c echo.Context) error {
	return c.JSON(http.StatusOK, fres.Response.StatusOK(h.catalog.Names()))
}

// GET /api/v1/ingredients/:id
func (h *IngredientHandler) GetIngredientByID(c echo.Context) error {
	id := c.Param("id")

	ingredient, ok := h.catalog.Get(id)
	if !ok {
		return c.JSON(http.StatusNotFound, ResponseError{Message: catalog.ErrIngredientNotFound.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(ingredient))
}

// GET /api/v1/ingredients/lookup?name=Beeswax
func (h *IngredientHandler) LookupIngredient(c echo.Context) error {
	var q LookupIngredientQuery
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validator.Struct(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ingredient, ok := h.catalog.FindByName(q.Name)
	if !ok {
		return c.JSON(http.StatusNotFound, ResponseError{
			Message:     catalog.ErrIngredientNotFound.Error(),
			Suggestions: h.catalog.Suggest(q.Name, suggestionLimit),
		})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(ingredient))
}
