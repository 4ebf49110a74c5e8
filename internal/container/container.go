package container

import (
	"context"
	"log"
	"os"

	"github.com/skillfolio/skillfolio-lambda/internal/analytics"
	"github.com/skillfolio/skillfolio-lambda/internal/announcement"
	"github.com/skillfolio/skillfolio-lambda/internal/auth"
	"github.com/skillfolio/skillfolio-lambda/internal/certificate"
	"github.com/skillfolio/skillfolio-lambda/internal/config"
	"github.com/skillfolio/skillfolio-lambda/internal/goal"
	"github.com/skillfolio/skillfolio-lambda/internal/project"
	"github.com/skillfolio/skillfolio-lambda/internal/user"
)

type Container struct {
	UserContainer         *user.UserContainer
	CertificateContainer  *certificate.Container
	ProjectContainer      *project.ProjectContainer
	GoalContainer         *goal.GoalContainer
	AnalyticsContainer    *analytics.AnalyticsContainer
	AnnouncementContainer *announcement.AnnouncementContainer
}

func New() *Container {
	config.Init()
	auth.Init()
	config.InitCrypto()

	dsn := os.Getenv("DATABASE_DSN")
	if err := config.Connect(context.Background(), dsn); err != nil {
		log.Fatalf("failed to connect to DB: %v", err)
	}

	if err := config.DB.AutoMigrate(
		&user.User{},
		&certificate.Certificate{},
		&project.Project{},
		&goal.Goal{},
		&goal.GoalStep{},
		&announcement.Announcement{},
		&announcement.Fact{},
	); err != nil {
		log.Fatalf("failed to migrate schema: %v", err)
	}

	userContainer := user.NewUserContainer(config.DB)
	certificateContainer := certificate.NewContainer(config.DB)
	projectContainer := project.NewProjectContainer(config.DB)
	goalContainer := goal.NewGoalContainer(config.DB, projectContainer.Service)
	announcementContainer := announcement.NewAnnouncementContainer(config.DB)

	analyticsContainer := analytics.NewAnalyticsContainer(
		certificateContainer.Repo,
		projectContainer.Repo,
		goalContainer.Service,
	)

	return &Container{
		UserContainer:         userContainer,
		CertificateContainer:  certificateContainer,
		ProjectContainer:      projectContainer,
		GoalContainer:         goalContainer,
		AnalyticsContainer:    analyticsContainer,
		AnnouncementContainer: announcementContainer,
	}
}
