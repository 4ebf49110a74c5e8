package certificate

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	util "github.com/skillfolio/skillfolio-lambda/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCertRepo struct {
	byID map[uuid.UUID]*Certificate
}

func newFakeCertRepo() *fakeCertRepo {
	return &fakeCertRepo{byID: map[uuid.UUID]*Certificate{}}
}

func (f *fakeCertRepo) Create(c *Certificate) error {
	f.byID[c.ID] = c
	return nil
}

func (f *fakeCertRepo) FindAllByUserID(userID uuid.UUID) ([]Certificate, error) {
	var out []Certificate
	for _, c := range f.byID {
		if c.UserID == userID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (f *fakeCertRepo) FindByID(id uuid.UUID) (*Certificate, error) {
	return f.byID[id], nil
}

func (f *fakeCertRepo) Update(c *Certificate) error {
	f.byID[c.ID] = c
	return nil
}

func (f *fakeCertRepo) Delete(id uuid.UUID) error {
	delete(f.byID, id)
	return nil
}

func (f *fakeCertRepo) CountByUserID(userID uuid.UUID) (int64, error) {
	var n int64
	for _, c := range f.byID {
		if c.UserID == userID {
			n++
		}
	}
	return n, nil
}

func (f *fakeCertRepo) CountLinkedProjects(uuid.UUID) (int64, error) {
	return 0, nil
}

func TestCreateCertificate(t *testing.T) {
	svc := NewService(newFakeCertRepo())
	ctx := context.Background()
	owner := uuid.New()

	yesterday := util.Today()
	yesterday.Time = yesterday.Time.AddDate(0, 0, -1)
	tomorrow := util.Today()
	tomorrow.Time = tomorrow.Time.AddDate(0, 0, 1)

	t.Run("Valid", func(t *testing.T) {
		resp, err := svc.Create(ctx, owner, CreateCertificateDTO{
			Title:      "Go Basics",
			Issuer:     "Coursera",
			DateEarned: yesterday,
		})
		require.NoError(t, err)
		assert.Equal(t, "Go Basics", resp.Title)
		assert.Equal(t, owner, resp.UserID)
	})

	t.Run("FutureDateRejected", func(t *testing.T) {
		_, err := svc.Create(ctx, owner, CreateCertificateDTO{
			Title:      "Time Travel",
			Issuer:     "Udemy",
			DateEarned: tomorrow,
		})
		assert.ErrorIs(t, err, ErrDateEarnedInFuture)
	})

	t.Run("TodayAccepted", func(t *testing.T) {
		_, err := svc.Create(ctx, owner, CreateCertificateDTO{
			Title:      "SQL Intro",
			Issuer:     "edX",
			DateEarned: util.Today(),
		})
		assert.NoError(t, err)
	})

	t.Run("MissingFields", func(t *testing.T) {
		_, err := svc.Create(ctx, owner, CreateCertificateDTO{Issuer: "edX", DateEarned: yesterday})
		assert.ErrorIs(t, err, ErrTitleRequired)

		_, err = svc.Create(ctx, owner, CreateCertificateDTO{Title: "X", DateEarned: yesterday})
		assert.ErrorIs(t, err, ErrIssuerRequired)

		_, err = svc.Create(ctx, owner, CreateCertificateDTO{Title: "X", Issuer: "edX"})
		assert.ErrorIs(t, err, ErrDateEarnedRequired)
	})
}

func TestCertificateOwnership(t *testing.T) {
	svc := NewService(newFakeCertRepo())
	ctx := context.Background()
	owner := uuid.New()
	stranger := uuid.New()

	earned := util.NewDateOnly(2025, time.March, 1)
	created, err := svc.Create(ctx, owner, CreateCertificateDTO{
		Title: "Django Basics", Issuer: "Coursera", DateEarned: earned,
	})
	require.NoError(t, err)

	_, err = svc.Get(ctx, created.ID, stranger)
	assert.ErrorIs(t, err, ErrUnauthorized)

	err = svc.Delete(ctx, created.ID, stranger)
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = svc.Get(ctx, uuid.New(), owner)
	assert.ErrorIs(t, err, ErrCertificateNotFound)
}
