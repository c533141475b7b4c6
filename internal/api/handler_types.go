package api

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"github.com/spanteq/console/internal/db"
	"github.com/spanteq/console/internal/services"
	"gorm.io/gorm"
)

const contextUserKey = "current_user"

type Handler struct {
	db        *gorm.DB
	secretKey []byte
	tokenTTL  time.Duration
	logger    zerolog.Logger

	repositories   *db.Repositories
	authService    *services.AuthService
	sectionService *services.SectionService
	recordService  *services.RecordService
	salaryService  *services.SalaryService
	ptoService     *services.PTOService
	exportService  *services.ExportService
	slipNotifier   services.SlipNotifier
}

func NewHandler(database *gorm.DB, secretKey string, tokenTTL time.Duration, logger zerolog.Logger) *Handler {
	if tokenTTL <= 0 {
		tokenTTL = 7 * 24 * time.Hour
	}
	handler := &Handler{
		db:        database,
		secretKey: []byte(secretKey),
		tokenTTL:  tokenTTL,
		logger:    logger,
	}
	return handler.withDependencies(database)
}

type authClaims struct {
	UserID uint   `json:"uid"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}
