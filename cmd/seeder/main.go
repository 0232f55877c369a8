package main

import (
	"context"
	"flag"
	"time"

	"github.com/nthnyvllflrs/ascent-erp/internal/factory"
	"github.com/nthnyvllflrs/ascent-erp/internal/store"
	"github.com/nthnyvllflrs/ascent-erp/pkg/config"
	"github.com/nthnyvllflrs/ascent-erp/pkg/database"
	"github.com/nthnyvllflrs/ascent-erp/pkg/jwtutil"
	"github.com/nthnyvllflrs/ascent-erp/pkg/logger"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func main() {
	count := flag.Int("count", 10, "Number of records to create per entity")
	token := flag.Bool("token", false, "Print a bearer token signed with JWT_SIGNING_KEY for local testing")
	flag.Parse()

	appConfig, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}
	if err := logger.InitLogger(appConfig); err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	log := logger.GetLogger()
	defer log.Sync()

	if *token {
		signed, err := jwtutil.NewJWTUtil(appConfig.JWT.SigningKey).GenerateToken("seeder@ascent-erp.local", 1, 24*time.Hour)
		if err != nil {
			log.Fatal("Failed to sign token", zap.Error(err))
		}
		log.Info("Development token", zap.String("token", signed))
	}

	db, err := database.InitDB(appConfig, log)
	if err != nil {
		log.Fatal("Failed to initialize database", zap.Error(err))
	}
	defer database.Close(db)

	ctx := context.Background()
	if err := seed(ctx, db, *count); err != nil {
		log.Fatal("Seeding failed", zap.Error(err))
	}
	log.Info("Seeding completed", zap.Int("count", *count))
}

func seed(ctx context.Context, db *gorm.DB, n int) error {
	employees := store.NewEmployeeStore(db)
	additions := store.NewAdditionStore(db)
	holidays := store.NewHolidayStore(db)
	items := store.NewInventoryStore(db)

	for i := 0; i < n; i++ {
		if err := employees.Create(ctx, factory.Employee(), factory.Compensation()); err != nil {
			return err
		}
		if err := additions.Create(ctx, factory.Addition()); err != nil {
			return err
		}
		if err := holidays.Create(ctx, factory.Holiday()); err != nil {
			return err
		}
		if err := items.Create(ctx, factory.InventoryItem(), factory.InventoryStock()); err != nil {
			return err
		}
	}
	return nil
}
