package announcement

import "gorm.io/gorm"

type AnnouncementContainer struct {
	Handler *Handler
	Service Service
	Repo    Repository
}

func NewAnnouncementContainer(db *gorm.DB) *AnnouncementContainer {
	repo := NewRepository(db)
	service := NewService(repo)
	handler := NewHandler(service)

	return &AnnouncementContainer{
		Handler: handler,
		Service: service,
		Repo:    repo,
	}
}
