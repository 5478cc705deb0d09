package router

import (
	"myPotionMaker/internal/rest"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupIngredientRoutes(api *echo.Group, handler *rest.IngredientHandler) {
	ingredients := api.Group("/ingredients")

	ingredients.GET("", handler.GetAllIngredients)
	ingredients.GET("/names", handler.GetIngredientNames)
	ingredients.GET("/lookup", handler.LookupIngredient)
	ingredients.GET("/:id", handler.GetIngredientByID)
}

func SetupBrewRoutes(api *echo.Group, handler *rest.BrewHandler) {
	brews := api.Group("/brews")

	brews.POST("", handler.Brew)
	brews.POST("/recipe", handler.BrewRecipe)
}

func SetupMetricsRoute(e *echo.Echo) {
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
}
