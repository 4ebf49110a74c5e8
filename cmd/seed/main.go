package main

import (
	"context"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/skillfolio/skillfolio-lambda/internal/announcement"
	"github.com/skillfolio/skillfolio-lambda/internal/config"
)

// Seeds the announcement/fact catalog from a JSON file, idempotently.
//
//	go run ./cmd/seed seed/announcements.json
func main() {
	config.Init()
	log := config.Logger()

	if len(os.Args) < 2 {
		log.Fatal("usage: seed <announcements.json>")
	}
	path := os.Args[1]

	f, err := os.Open(path)
	if err != nil {
		log.WithError(err).WithField("path", path).Fatal("Failed to open seed file")
	}
	defer f.Close()

	data, err := announcement.ParseSeed(f)
	if err != nil {
		log.WithError(err).Fatal("Failed to parse seed file")
	}

	dsn := os.Getenv("DATABASE_DSN")
	if err := config.Connect(context.Background(), dsn); err != nil {
		log.WithError(err).Fatal("Failed to connect to DB")
	}
	if err := config.DB.AutoMigrate(&announcement.Announcement{}, &announcement.Fact{}); err != nil {
		log.WithError(err).Fatal("Failed to migrate schema")
	}

	created, err := announcement.Seed(config.DB, data)
	if err != nil {
		log.WithError(err).Fatal("Seeding failed")
	}

	log.WithFields(logrus.Fields{
		"created":       created,
		"announcements": len(data.Announcements),
		"facts":         len(data.Facts),
	}).Info("Catalog seeded")
}
