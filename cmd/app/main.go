package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"

	"laundry/cmd"
	httpadapter "laundry/internal/adapters/in/http"
	"laundry/internal/adapters/out/postgres/bagrepo"
	"laundry/internal/adapters/out/postgres/machinerepo"
	"laundry/internal/adapters/out/postgres/orderrepo"
	"laundry/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)

	app, err := cmd.NewCompositionRoot(configs, gormDB)
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	jobManager := jobs.NewJobManager(app.CreateRecalculateEstimatesCommandHandler(), logger)
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:    goDotEnvVariable("HTTP_PORT"),
		DBHost:      goDotEnvVariable("DB_HOST"),
		DBPort:      goDotEnvVariable("DB_PORT"),
		DBUser:      goDotEnvVariable("DB_USER"),
		DBPassword:  goDotEnvVariable("DB_PASSWORD"),
		DBName:      goDotEnvVariable("DB_NAME"),
		DBSslMode:   goDotEnvVariable("DB_SSLMODE"),
		OpeningHour: goDotEnvIntVariable("OPENING_HOUR"),
		ClosingHour: goDotEnvIntVariable("CLOSING_HOUR"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func goDotEnvIntVariable(key string) int {
	value, err := strconv.Atoi(goDotEnvVariable(key))
	if err != nil {
		log.Fatalf("Environment variable %s must be an integer", key)
	}
	return value
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	db, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&bagrepo.BagDTO{},
		&machinerepo.MachineDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	return db
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpadapter.NewServer(
		app.CreateCreateOrderCommandHandler(),
		app.CreateBindTagCommandHandler(),
		app.CreateTransitionOrderCommandHandler(),
		app.CreateCancelOrderCommandHandler(),
		app.CreateCreateBagCommandHandler(),
		app.CreateAdmitOrderCommandHandler(),
		app.CreateRemoveOrderCommandHandler(),
		app.CreateFinalizeBagCommandHandler(),
		app.CreateDeleteBagCommandHandler(),
		app.CreateHandoverBagCommandHandler(),
		app.CreateReceiveBagCommandHandler(),
		app.CreateGetUncompletedOrdersQueryHandler(),
		app.CreateGetFillingBagsQueryHandler(),
		app.CreateGetBagManifestQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
