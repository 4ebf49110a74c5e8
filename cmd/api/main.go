package main

import (
	"context"
	"net/http"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	chiadapter "github.com/awslabs/aws-lambda-go-api-proxy/chi"

	"github.com/skillfolio/skillfolio-lambda/internal/config"
	"github.com/skillfolio/skillfolio-lambda/internal/container"
	"github.com/skillfolio/skillfolio-lambda/internal/router"
)

func main() {
	c := container.New()

	r := router.New(router.RouterConfig{
		UserHandler:         c.UserContainer.Handler,
		CertificateHandler:  c.CertificateContainer.Handler,
		ProjectHandler:      c.ProjectContainer.Handler,
		GoalHandler:         c.GoalContainer.Handler,
		AnalyticsHandler:    c.AnalyticsContainer.Handler,
		AnnouncementHandler: c.AnnouncementContainer.Handler,
	})

	log := config.Logger()

	if os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != "" {
		adapter := chiadapter.New(r)
		lambda.Start(func(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
			return adapter.ProxyWithContext(ctx, req)
		})
		return
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.WithField("port", port).Info("Starting HTTP server")
	if err := http.ListenAndServe(":"+port, r); err != nil {
		log.WithError(err).Fatal("Server stopped")
	}
}
