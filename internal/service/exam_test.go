package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/campushq/campushq-api/internal/domain/model"
	"github.com/campushq/campushq-api/internal/mocks"
)

func TestExamService_CreateExam_Validates(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := NewExamService(ExamServiceOptions{Exams: mocks.NewMockExamRepository(ctrl)})

	_, err := svc.CreateExam(context.Background(), &model.CreateExamRequest{
		OrgID: "org-1", Name: "Midterm", ExamDate: "not-a-date", MaxScore: 100,
	})

	assert.ErrorContains(t, err, "exam_date")
}

func TestExamService_RecordResult_DerivesGrade(t *testing.T) {
	ctrl := gomock.NewController(t)
	exams := mocks.NewMockExamRepository(ctrl)
	exams.EXPECT().GetExam(gomock.Any(), "exam-1").Return(&model.Exam{
		ID: "exam-1", OrgID: "org-1", MaxScore: 50,
	}, nil)
	exams.EXPECT().
		CreateResult(gomock.Any(), "exam-1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, req *model.CreateResultRequest) (*model.ExamResult, error) {
			assert.Equal(t, "B", req.Grade)
			return &model.ExamResult{ID: "res-1", ExamID: "exam-1", StudentID: req.StudentID, Score: req.Score, Grade: req.Grade}, nil
		})

	svc := NewExamService(ExamServiceOptions{Exams: exams})

	result, err := svc.RecordResult(context.Background(), "exam-1", &model.CreateResultRequest{
		StudentID: "stu-1", Score: 42,
	})

	require.NoError(t, err)
	assert.Equal(t, "B", result.Grade)
}

func TestExamService_RecordResult_KeepsExplicitGrade(t *testing.T) {
	ctrl := gomock.NewController(t)
	exams := mocks.NewMockExamRepository(ctrl)
	exams.EXPECT().GetExam(gomock.Any(), "exam-1").Return(&model.Exam{ID: "exam-1", MaxScore: 100}, nil)
	exams.EXPECT().
		CreateResult(gomock.Any(), "exam-1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, req *model.CreateResultRequest) (*model.ExamResult, error) {
			return &model.ExamResult{Grade: req.Grade}, nil
		})

	svc := NewExamService(ExamServiceOptions{Exams: exams})

	result, err := svc.RecordResult(context.Background(), "exam-1", &model.CreateResultRequest{
		StudentID: "stu-1", Score: 55, Grade: "Pass",
	})

	require.NoError(t, err)
	assert.Equal(t, "Pass", result.Grade)
}

func TestExamService_RecordResult_ScoreAboveMax(t *testing.T) {
	ctrl := gomock.NewController(t)
	exams := mocks.NewMockExamRepository(ctrl)
	exams.EXPECT().GetExam(gomock.Any(), "exam-1").Return(&model.Exam{ID: "exam-1", MaxScore: 50}, nil)

	svc := NewExamService(ExamServiceOptions{Exams: exams})

	_, err := svc.RecordResult(context.Background(), "exam-1", &model.CreateResultRequest{
		StudentID: "stu-1", Score: 51,
	})

	assert.ErrorContains(t, err, "max score")
}

func TestGradeFor(t *testing.T) {
	tests := []struct {
		score, max int
		want       string
	}{
		{95, 100, "A"},
		{45, 50, "A"},
		{80, 100, "B"},
		{70, 100, "C"},
		{60, 100, "D"},
		{59, 100, "F"},
		{0, 100, "F"},
		{10, 0, ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, gradeFor(tt.score, tt.max), "score %d/%d", tt.score, tt.max)
	}
}
