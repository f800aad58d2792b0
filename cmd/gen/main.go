package main

import (
	"truefans/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.PassModel{},
		model.RestaurantModel{},
		model.RestaurantLocationModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
