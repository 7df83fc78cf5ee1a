package service

import (
	"github.com/pkazancev/gamideck/internal/adapter"
	"github.com/pkazancev/gamideck/internal/logger"
	"github.com/pkazancev/gamideck/internal/session"
)

// ClientServices groups every use-case service behind one value for the
// composition root.
type ClientServices struct {
	AuthService        AuthService
	ProfileService     ProfileService
	TaskService        TaskService
	CompetitionService CompetitionService
	CatalogService     CatalogService
	AdminService       AdminService
	ChatService        ChatService
}

// NewClientServices wires all services to the shared transport adapter and
// session store.
func NewClientServices(serverAdapter adapter.ServerAdapter, sessionStore *session.Store, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		AuthService:        NewAuthService(serverAdapter, sessionStore, logger),
		ProfileService:     NewProfileService(serverAdapter, sessionStore, logger),
		TaskService:        NewTaskService(serverAdapter, logger),
		CompetitionService: NewCompetitionService(serverAdapter, sessionStore, logger),
		CatalogService:     NewCatalogService(serverAdapter, logger),
		AdminService:       NewAdminService(serverAdapter, logger),
		ChatService:        NewChatService(serverAdapter, logger),
	}
}
