package analytics

import "github.com/skillfolio/skillfolio-lambda/internal/goal"

type AnalyticsContainer struct {
	Handler *Handler
	Service Service
}

func NewAnalyticsContainer(certificates, projects OwnedCounter, goals goal.GoalService) *AnalyticsContainer {
	service := NewService(certificates, projects, goals)
	handler := NewHandler(service)

	return &AnalyticsContainer{
		Handler: handler,
		Service: service,
	}
}
