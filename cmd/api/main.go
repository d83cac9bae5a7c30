package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/AbubakarJ545/hospital-management-system/internal/config"
	"github.com/AbubakarJ545/hospital-management-system/internal/handlers"
	"github.com/AbubakarJ545/hospital-management-system/internal/middleware"
	"github.com/AbubakarJ545/hospital-management-system/internal/models"
	"github.com/AbubakarJ545/hospital-management-system/internal/services"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	if err := godotenv.Load(); err != nil {
		log.Info("no .env file found, relying on environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Error("failed to connect to MongoDB", "error", err)
		os.Exit(1)
	}
	db := client.Database(cfg.MongoDatabase)

	if err := ensureIndexes(ctx, db); err != nil {
		log.Error("failed to create indexes", "error", err)
		os.Exit(1)
	}
	log.Info("connected to MongoDB", "database", cfg.MongoDatabase)

	notificationSvc := services.NewNotificationService(log)
	bookingSvc := services.NewBookingService(services.NewMongoBookingStore(db), notificationSvc, log)
	staffSvc := services.NewStaffService(services.NewMongoStaffStore(db), log)
	h := handlers.NewHandler(db, cfg, bookingSvc, staffSvc, log)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(log))
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	admin := middleware.RequireRole(models.RoleAdmin)

	authRoutes := r.Group("/auth")
	{
		authRoutes.POST("/adminLogin", h.AdminLogin)
		authRoutes.POST("/doctorLogin", h.DoctorLogin)
		authRoutes.POST("/employeeLogin", h.EmployeeLogin)
		authRoutes.POST("/logout", h.Logout)
		authRoutes.GET("/me", h.Me)
	}

	departments := r.Group("/departments")
	{
		departments.GET("", h.ListDepartments)
		departments.GET("/:id", h.GetDepartmentDoctors)
		departments.POST("", admin, h.CreateDepartment)
	}

	doctors := r.Group("/doctors")
	{
		doctors.GET("", h.ListDoctors)
		doctors.POST("", admin, h.CreateDoctor)
		doctors.DELETE("/:id", admin, h.DeleteDoctor)
	}

	employees := r.Group("/employees")
	{
		employees.GET("", h.ListEmployees)
		employees.POST("", admin, h.CreateEmployee)
	}

	patients := r.Group("/patients")
	{
		patients.GET("", h.ListPatients)
		patients.POST("", h.CreatePatient)
		patients.PUT("/:id/check", middleware.RequirePermission(models.PermEditPatients), h.CheckPatient)
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	stopCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info("starting server", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			stop()
		}
	}()

	<-stopCtx.Done()
	log.Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown failed", "error", err)
	}
	if err := client.Disconnect(shutdownCtx); err != nil {
		log.Error("mongo disconnect failed", "error", err)
	}
}

// collectionIndexes declares the indexes the handlers rely on: unique
// staff emails, unique department names and the compound index behind the
// booking window query.
func collectionIndexes() map[string][]mongo.IndexModel {
	return map[string][]mongo.IndexModel{
		"employees": {{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		}},
		"doctors": {{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true).SetSparse(true),
		}},
		"departments": {{
			Keys:    bson.D{{Key: "name", Value: 1}},
			Options: options.Index().SetUnique(true),
		}},
		"patients": {{
			Keys: bson.D{
				{Key: "doctorId", Value: 1},
				{Key: "departmentId", Value: 1},
				{Key: "appointmentDate", Value: 1},
			},
		}},
	}
}

func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	for collection, indexes := range collectionIndexes() {
		if _, err := db.Collection(collection).Indexes().CreateMany(ctx, indexes); err != nil {
			return fmt.Errorf("indexes for %s: %w", collection, err)
		}
	}
	return nil
}
