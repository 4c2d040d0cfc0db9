// @title        Storefront API
// @version      1.0
// @description  CRUD backend for products and users with images mirrored to object storage
// @host         localhost:8080
// @BasePath     /
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"storefront/internal/database"
	"storefront/internal/router"
	"storefront/internal/storage"
	"storefront/internal/worker"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	_ "storefront/docs" // swag-generated docs

	echoSwagger "github.com/swaggo/echo-swagger"
)

// CustomValidator wraps go-playground/validator for Echo
// swagger:ignore
type CustomValidator struct {
	validator *validator.Validate
}

// Validate calls the underlying validator
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

var (
	newPgxPool      = database.NewPgxPool
	runMigrationsFn = database.RunMigrations
	newStorage      = storage.NewMinioStorage
	newWorkerPool   = worker.NewPool
	startServer     = func(e *echo.Echo, addr string) error { return e.Start(addr) }
	exitFunc        = os.Exit
)

func run() error {
	if err := godotenv.Load(); err != nil {
		log.Print("no .env file found")
	}

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		return fmt.Errorf("DATABASE_URL is not set")
	}

	// Blob store credentials are all required; missing values fail startup
	// rather than every request.
	storageCfg := storage.Config{
		Bucket:    os.Getenv("BUCKET_NAME"),
		Region:    os.Getenv("BUCKET_REGION"),
		AccessKey: os.Getenv("ACCESS_KEY"),
		SecretKey: os.Getenv("SECRET_ACCESS_KEY"),
		Endpoint:  os.Getenv("S3_ENDPOINT"),
		UseSSL:    true,
	}
	if storageCfg.Bucket == "" || storageCfg.Region == "" || storageCfg.AccessKey == "" || storageCfg.SecretKey == "" {
		return fmt.Errorf("BUCKET_NAME, BUCKET_REGION, ACCESS_KEY and SECRET_ACCESS_KEY must all be set")
	}
	if storageCfg.Endpoint == "" {
		storageCfg.Endpoint = "s3.amazonaws.com"
	}
	if v := os.Getenv("S3_USE_SSL"); v != "" {
		ssl, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid S3_USE_SSL: %v", err)
		}
		storageCfg.UseSSL = ssl
	}

	port := strings.TrimPrefix(os.Getenv("HTTP_PORT"), ":")
	if port == "" {
		port = "8080"
	}

	workerCount := 1
	if v := os.Getenv("WORKER_COUNT"); v != "" {
		c, err := strconv.Atoi(v)
		if err != nil || c <= 0 {
			return fmt.Errorf("invalid WORKER_COUNT: %v", err)
		}
		workerCount = c
	}

	if err := runMigrationsFn(dbURL); err != nil {
		return fmt.Errorf("migrations failed: %v", err)
	}

	db, err := newPgxPool(context.Background(), dbURL)
	if err != nil {
		return fmt.Errorf("database connection failed: %v", err)
	}
	defer db.Close()

	st, err := newStorage(context.Background(), storageCfg)
	if err != nil {
		return fmt.Errorf("blob store initialisation failed: %v", err)
	}

	wp := newWorkerPool(workerCount)
	defer wp.Stop()

	e := echo.New()
	e.Validator = &CustomValidator{validator: validator.New()}
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	router.Setup(e, db, st, wp)

	e.GET("/swagger/*", echoSwagger.WrapHandler)
	return startServer(e, ":"+port)
}

func main() {
	if err := run(); err != nil {
		log.Print(err)
		exitFunc(1)
	}
}
