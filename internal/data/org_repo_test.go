package data

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushq/campushq-api/internal/domain/model"
	"github.com/campushq/campushq-api/internal/testutil"
)

func createTestOrg(t *testing.T, repo *OrgRepo, subdomain string) *model.Organization {
	t.Helper()
	org, err := repo.Create(context.Background(), &model.Organization{
		Name:         "Test School " + subdomain,
		Subdomain:    subdomain,
		ContactEmail: "office@" + subdomain + ".example",
		HeroTitle:    "Welcome",
	})
	require.NoError(t, err)
	return org
}

func TestOrgRepo_CreateAndGet(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	repo := NewOrgRepo(db)
	ctx := context.Background()

	org := createTestOrg(t, repo, "northside")
	assert.NotEmpty(t, org.ID)
	assert.Equal(t, "northside", org.Subdomain)
	assert.False(t, org.CreatedAt.IsZero())

	byID, err := repo.GetByID(ctx, org.ID)
	require.NoError(t, err)
	assert.Equal(t, org.Name, byID.Name)

	bySub, err := repo.GetBySubdomain(ctx, "Northside")
	require.NoError(t, err)
	assert.Equal(t, org.ID, bySub.ID)
}

func TestOrgRepo_SubdomainConflict(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	repo := NewOrgRepo(db)
	ctx := context.Background()

	createTestOrg(t, repo, "eastgate")

	_, err := repo.Create(ctx, &model.Organization{Name: "Duplicate", Subdomain: "eastgate"})
	assert.ErrorIs(t, err, ErrSubdomainExists)
}

func TestOrgRepo_GetMissing(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	repo := NewOrgRepo(db)
	ctx := context.Background()

	_, err := repo.GetBySubdomain(ctx, "nowhere")
	assert.ErrorIs(t, err, ErrOrgNotFound)

	_, err = repo.CanonicalSubdomain(ctx, "00000000-0000-0000-0000-000000000000")
	assert.ErrorIs(t, err, ErrOrgNotFound)
}

func TestOrgRepo_CanonicalSubdomain(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	repo := NewOrgRepo(db)
	ctx := context.Background()

	org := createTestOrg(t, repo, "lakeside")

	sub, err := repo.CanonicalSubdomain(ctx, org.ID)
	require.NoError(t, err)
	assert.Equal(t, "lakeside", sub)
}

func TestOrgRepo_StatsAndContent(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	repo := NewOrgRepo(db)
	ctx := context.Background()

	org := createTestOrg(t, repo, "hillcrest")

	_, err := db.ExecContext(ctx,
		`INSERT INTO programs (org_id, name, description) VALUES ($1, 'Sciences', 'STEM track')`, org.ID)
	require.NoError(t, err)
	_, err = db.ExecContext(ctx,
		`INSERT INTO faculty (org_id, name, title) VALUES ($1, 'J. Moyo', 'Principal')`, org.ID)
	require.NoError(t, err)

	programs, err := repo.ListPrograms(ctx, org.ID)
	require.NoError(t, err)
	require.Len(t, programs, 1)
	assert.Equal(t, "Sciences", programs[0].Name)

	faculty, err := repo.ListFaculty(ctx, org.ID)
	require.NoError(t, err)
	require.Len(t, faculty, 1)
	assert.Equal(t, "Principal", faculty[0].Title)

	stats, err := repo.GetStats(ctx, org.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, stats.Students)
	assert.Equal(t, 1, stats.Teachers)
	assert.Equal(t, 1, stats.Programs)
}
