package handlers

import (
	"log/slog"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/AbubakarJ545/hospital-management-system/internal/config"
	"github.com/AbubakarJ545/hospital-management-system/internal/services"
)

// Handler carries the injected dependencies every endpoint needs: the
// shared database handle, config, the domain services and a logger.
type Handler struct {
	DB       *mongo.Database
	Cfg      *config.Config
	Bookings *services.BookingService
	Staff    *services.StaffService
	Log      *slog.Logger
}

func NewHandler(db *mongo.Database, cfg *config.Config, bookings *services.BookingService, staff *services.StaffService, log *slog.Logger) *Handler {
	return &Handler{
		DB:       db,
		Cfg:      cfg,
		Bookings: bookings,
		Staff:    staff,
		Log:      log,
	}
}
