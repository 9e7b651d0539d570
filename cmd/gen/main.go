package main

import (
	"pklradar/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.VendorModel{},
		model.VendorLocationModel{},
		model.BuyerLocationModel{},
		model.FavoriteModel{},
		model.BuyerNotificationModel{},
		model.VendorDailyStatsModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
