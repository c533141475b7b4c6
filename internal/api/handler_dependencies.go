package api

import (
	"github.com/spanteq/console/internal/db"
	"github.com/spanteq/console/internal/services"
	"gorm.io/gorm"
)

func (handler *Handler) withDependencies(database *gorm.DB) *Handler {
	handler.repositories = db.NewRepositories(database)
	handler.authService = services.NewAuthService(handler.repositories.Users)
	handler.sectionService = services.NewSectionService(handler.repositories.Sections)
	handler.recordService = services.NewRecordService(handler.repositories.Records, handler.sectionService)
	handler.salaryService = services.NewSalaryService(
		handler.repositories.Salaries,
		handler.repositories.Users,
		handler.repositories.PTO,
		services.WeekdayCalendar{},
	)
	handler.ptoService = services.NewPTOService(handler.repositories.PTO)
	handler.exportService = services.NewExportService()
	handler.slipNotifier = services.NewLogSlipNotifier(handler.logger)
	return handler
}
