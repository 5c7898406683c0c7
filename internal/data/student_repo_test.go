package data

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushq/campushq-api/internal/domain/model"
	"github.com/campushq/campushq-api/internal/testutil"
)

func createTestStudent(t *testing.T, repo *StudentRepo, orgID, firstName, email string) *model.Student {
	t.Helper()
	student, err := repo.Create(context.Background(), &model.CreateStudentRequest{
		OrgID:       orgID,
		FirstName:   firstName,
		LastName:    "Tester",
		Email:       email,
		DateOfBirth: "2012-03-14",
	})
	require.NoError(t, err)
	return student
}

func TestStudentRepo_CreateAndGet(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	org := createTestOrg(t, NewOrgRepo(db), "students-a")
	repo := NewStudentRepo(db)
	ctx := context.Background()

	student := createTestStudent(t, repo, org.ID, "kofi", "kofi@example.com")
	assert.NotEmpty(t, student.ID)
	assert.Equal(t, org.ID, student.OrgID)
	assert.Equal(t, "kofi", student.FirstName)
	assert.Equal(t, 2012, student.DateOfBirth.Year())

	got, err := repo.GetByID(ctx, student.ID)
	require.NoError(t, err)
	assert.Equal(t, student.Email, got.Email)
}

func TestStudentRepo_EmailConflict(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	org := createTestOrg(t, NewOrgRepo(db), "students-b")
	repo := NewStudentRepo(db)
	ctx := context.Background()

	createTestStudent(t, repo, org.ID, "amara", "amara@example.com")

	_, err := repo.Create(ctx, &model.CreateStudentRequest{
		OrgID:       org.ID,
		FirstName:   "other",
		LastName:    "Tester",
		Email:       "Amara@Example.com", // emails are normalized to lowercase
		DateOfBirth: "2011-01-01",
	})
	assert.ErrorIs(t, err, ErrStudentEmailExists)
}

func TestStudentRepo_FindByOrgAndFirstName(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	org := createTestOrg(t, NewOrgRepo(db), "students-c")
	repo := NewStudentRepo(db)
	ctx := context.Background()

	student := createTestStudent(t, repo, org.ID, "Lena", "lena@example.com")

	// Case-insensitive first name match.
	found, err := repo.FindByOrgAndFirstName(ctx, org.ID, "lena")
	require.NoError(t, err)
	assert.Equal(t, student.ID, found.ID)

	_, err = repo.FindByOrgAndFirstName(ctx, org.ID, "nobody")
	assert.ErrorIs(t, err, ErrStudentNotFound)
}

func TestStudentRepo_ListAndDelete(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	org := createTestOrg(t, NewOrgRepo(db), "students-d")
	repo := NewStudentRepo(db)
	ctx := context.Background()

	first := createTestStudent(t, repo, org.ID, "kofi", "kofi-d@example.com")
	createTestStudent(t, repo, org.ID, "amara", "amara-d@example.com")

	students, err := repo.List(ctx, org.ID)
	require.NoError(t, err)
	assert.Len(t, students, 2)

	err = repo.Delete(ctx, first.ID)
	require.NoError(t, err)

	err = repo.Delete(ctx, first.ID)
	assert.ErrorIs(t, err, ErrStudentNotFound)

	students, err = repo.List(ctx, org.ID)
	require.NoError(t, err)
	assert.Len(t, students, 1)
}
