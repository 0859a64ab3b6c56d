package reportsvc

import (
	"context"
	"errors"
	"testing"
	"time"

	"air_command/internal/api/reports/dto"
	"air_command/internal/api/reports/models"
	"air_command/internal/common"
	"air_command/internal/global"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	global.InitValidator()
	m.Run()
}

// fakeStore là store giả ghi lại các lần gọi để kiểm tra orchestrator
type fakeStore struct {
	insertErr error
	findErr   error
	updateErr error
	listErr   error

	reports map[string]*models.PollutionReport

	insertCalls int
	findCalls   int
	updateCalls int
	listCalls   int
}

func newFakeStore() *fakeStore {
	return &fakeStore{reports: make(map[string]*models.PollutionReport)}
}

func (f *fakeStore) Insert(ctx context.Context, report *models.PollutionReport) error {
	f.insertCalls++
	if f.insertErr != nil {
		return f.insertErr
	}
	clone := *report
	f.reports[report.ReportID] = &clone
	return nil
}

func (f *fakeStore) FindByReportID(ctx context.Context, reportID string) (*models.PollutionReport, error) {
	f.findCalls++
	if f.findErr != nil {
		return nil, f.findErr
	}
	report, ok := f.reports[reportID]
	if !ok {
		return nil, common.ErrNotFound
	}
	clone := *report
	return &clone, nil
}

func (f *fakeStore) UpdateStatus(ctx context.Context, reportID string, status string, updatedAt time.Time) error {
	f.updateCalls++
	if f.updateErr != nil {
		return f.updateErr
	}
	report, ok := f.reports[reportID]
	if !ok {
		return common.ErrNotFound
	}
	report.Status = status
	report.UpdatedAt = updatedAt
	return nil
}

func (f *fakeStore) List(ctx context.Context, offset, limit int64) ([]models.PollutionReport, error) {
	f.listCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []models.PollutionReport
	for _, r := range f.reports {
		out = append(out, *r)
	}
	return out, nil
}

// fakeNotifier ghi lại các email được enqueue
type fakeNotifier struct {
	confirmations []string
	statusUpdates []string
}

func (f *fakeNotifier) EnqueueReportConfirmation(email, name, reportID string) {
	f.confirmations = append(f.confirmations, reportID)
}

func (f *fakeNotifier) EnqueueStatusUpdate(email, name, reportID, status string) {
	f.statusUpdates = append(f.statusUpdates, reportID+":"+status)
}

func validInput() *dto.CreateReportInput {
	return &dto.CreateReportInput{
		Name:     "Ravi Kumar",
		Mobile:   "9810012345",
		Email:    "ravi@example.com",
		Location: "Anand Vihar, Delhi",
		Severity: 4,
	}
}

func TestCreateReport_PrimarySuccess(t *testing.T) {
	primary := newFakeStore()
	fallback := newFakeStore()
	notifier := &fakeNotifier{}
	svc := NewReportService(primary, fallback, notifier)

	report, err := svc.CreateReport(context.Background(), validInput())
	require.NoError(t, err)

	assert.NotEmpty(t, report.ReportID)
	assert.Equal(t, models.StatusPending, report.Status)
	assert.False(t, report.CreatedAt.IsZero())
	assert.Equal(t, 1, primary.insertCalls)
	assert.Equal(t, 0, fallback.insertCalls, "fallback không được gọi khi primary thành công")
	assert.Equal(t, []string{report.ReportID}, notifier.confirmations)
}

func TestCreateReport_ValidationFailureSkipsStores(t *testing.T) {
	primary := newFakeStore()
	fallback := newFakeStore()
	notifier := &fakeNotifier{}
	svc := NewReportService(primary, fallback, notifier)

	cases := []struct {
		name  string
		input *dto.CreateReportInput
	}{
		{"missing name", &dto.CreateReportInput{Mobile: "9810012345", Email: "a@b.com", Location: "Delhi", Severity: 3}},
		{"bad email", &dto.CreateReportInput{Name: "A", Mobile: "98100", Email: "not-an-email", Location: "Delhi", Severity: 3}},
		{"severity too low", &dto.CreateReportInput{Name: "A", Mobile: "98100", Email: "a@b.com", Location: "Delhi", Severity: 0}},
		{"severity too high", &dto.CreateReportInput{Name: "A", Mobile: "98100", Email: "a@b.com", Location: "Delhi", Severity: 6}},
		{"xss in name", &dto.CreateReportInput{Name: "<script>alert(1)</script>", Mobile: "98100", Email: "a@b.com", Location: "Delhi", Severity: 3}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateReport(context.Background(), tc.input)
			require.Error(t, err)

			var customErr *common.Error
			require.True(t, errors.As(err, &customErr))
			assert.Equal(t, common.StatusBadRequest, customErr.StatusCode)
		})
	}

	assert.Equal(t, 0, primary.insertCalls, "validate lỗi thì không chạm store")
	assert.Equal(t, 0, fallback.insertCalls)
	assert.Empty(t, notifier.confirmations)
}

func TestCreateReport_PrimaryFailureUsesFallback(t *testing.T) {
	primary := newFakeStore()
	primary.insertErr = errors.New("connection refused")
	fallback := newFakeStore()
	notifier := &fakeNotifier{}
	svc := NewReportService(primary, fallback, notifier)

	report, err := svc.CreateReport(context.Background(), validInput())
	require.NoError(t, err)

	assert.Equal(t, 1, primary.insertCalls)
	assert.Equal(t, 1, fallback.insertCalls)
	assert.Contains(t, fallback.reports, report.ReportID)
	assert.Equal(t, []string{report.ReportID}, notifier.confirmations)
}

func TestCreateReport_DoubleFailure(t *testing.T) {
	primary := newFakeStore()
	primary.insertErr = errors.New("mongo down")
	fallback := newFakeStore()
	fallback.insertErr = errors.New("mysql down")
	notifier := &fakeNotifier{}
	svc := NewReportService(primary, fallback, notifier)

	_, err := svc.CreateReport(context.Background(), validInput())
	require.Error(t, err)

	var customErr *common.Error
	require.True(t, errors.As(err, &customErr))
	assert.Equal(t, common.StatusInternalServerError, customErr.StatusCode)
	// Thông báo lỗi không được lộ backend nào hỏng
	assert.NotContains(t, customErr.Message, "mongo")
	assert.NotContains(t, customErr.Message, "mysql")
	assert.Empty(t, notifier.confirmations, "không gửi email khi báo cáo không được lưu")
}

func TestCreateReport_AssignsUniqueIDs(t *testing.T) {
	primary := newFakeStore()
	fallback := newFakeStore()
	svc := NewReportService(primary, fallback, &fakeNotifier{})

	first, err := svc.CreateReport(context.Background(), validInput())
	require.NoError(t, err)
	second, err := svc.CreateReport(context.Background(), validInput())
	require.NoError(t, err)

	assert.NotEqual(t, first.ReportID, second.ReportID)
}

func seedReport(store *fakeStore, reportID string) {
	store.reports[reportID] = &models.PollutionReport{
		ReportID:  reportID,
		Name:      "Ravi Kumar",
		Email:     "ravi@example.com",
		Status:    models.StatusPending,
		CreatedAt: time.Now().UTC(),
	}
}

func TestUpdateStatus_PrimaryResident(t *testing.T) {
	primary := newFakeStore()
	fallback := newFakeStore()
	notifier := &fakeNotifier{}
	svc := NewReportService(primary, fallback, notifier)
	seedReport(primary, "rep-1")

	err := svc.UpdateStatus(context.Background(), "rep-1", &dto.UpdateStatusInput{Status: models.StatusViewed})
	require.NoError(t, err)

	assert.Equal(t, models.StatusViewed, primary.reports["rep-1"].Status)
	assert.Equal(t, 0, fallback.findCalls, "báo cáo ở primary thì không tra fallback")
	assert.Equal(t, []string{"rep-1:viewed"}, notifier.statusUpdates)
}

func TestUpdateStatus_FallbackResident(t *testing.T) {
	primary := newFakeStore()
	fallback := newFakeStore()
	notifier := &fakeNotifier{}
	svc := NewReportService(primary, fallback, notifier)
	seedReport(fallback, "rep-2")

	err := svc.UpdateStatus(context.Background(), "rep-2", &dto.UpdateStatusInput{Status: models.StatusProcessing})
	require.NoError(t, err)

	assert.Equal(t, 1, primary.findCalls, "primary luôn được tra trước")
	assert.Equal(t, models.StatusProcessing, fallback.reports["rep-2"].Status)
	assert.Equal(t, []string{"rep-2:processing"}, notifier.statusUpdates)
}

func TestUpdateStatus_PrimaryStoreDownFallsBack(t *testing.T) {
	primary := newFakeStore()
	primary.findErr = errors.New("mongo down")
	fallback := newFakeStore()
	notifier := &fakeNotifier{}
	svc := NewReportService(primary, fallback, notifier)
	seedReport(fallback, "rep-3")

	err := svc.UpdateStatus(context.Background(), "rep-3", &dto.UpdateStatusInput{Status: models.StatusCompleted})
	require.NoError(t, err)

	assert.Equal(t, models.StatusCompleted, fallback.reports["rep-3"].Status)
}

func TestUpdateStatus_PrimaryUpdateFailureNotMaskedAsNotFound(t *testing.T) {
	primary := newFakeStore()
	primary.updateErr = errors.New("mongo timeout")
	fallback := newFakeStore()
	notifier := &fakeNotifier{}
	svc := NewReportService(primary, fallback, notifier)
	// Báo cáo tồn tại ở primary, find thành công nhưng update lỗi hạ tầng
	seedReport(primary, "rep-7")

	err := svc.UpdateStatus(context.Background(), "rep-7", &dto.UpdateStatusInput{Status: models.StatusViewed})
	require.Error(t, err)

	assert.NotErrorIs(t, err, common.ErrNotFound, "lỗi store không được trả về như báo cáo không tồn tại")
	assert.EqualError(t, err, "mongo timeout")
	assert.Empty(t, notifier.statusUpdates)
}

func TestUpdateStatus_NotFoundAnywhere(t *testing.T) {
	primary := newFakeStore()
	fallback := newFakeStore()
	notifier := &fakeNotifier{}
	svc := NewReportService(primary, fallback, notifier)

	err := svc.UpdateStatus(context.Background(), "missing", &dto.UpdateStatusInput{Status: models.StatusViewed})
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrNotFound)
	assert.Empty(t, notifier.statusUpdates)
}

func TestUpdateStatus_UnrecognizedStatusAccepted(t *testing.T) {
	primary := newFakeStore()
	fallback := newFakeStore()
	notifier := &fakeNotifier{}
	svc := NewReportService(primary, fallback, notifier)
	seedReport(primary, "rep-4")

	err := svc.UpdateStatus(context.Background(), "rep-4", &dto.UpdateStatusInput{Status: "escalated"})
	require.NoError(t, err)

	assert.Equal(t, "escalated", primary.reports["rep-4"].Status)
	assert.Equal(t, []string{"rep-4:escalated"}, notifier.statusUpdates)
}

func TestUpdateStatus_EmptyStatusRejected(t *testing.T) {
	primary := newFakeStore()
	fallback := newFakeStore()
	svc := NewReportService(primary, fallback, &fakeNotifier{})
	seedReport(primary, "rep-5")

	err := svc.UpdateStatus(context.Background(), "rep-5", &dto.UpdateStatusInput{Status: ""})
	require.Error(t, err)
	assert.Equal(t, 0, primary.findCalls)
}

func TestListReports_FallsBackOnPrimaryError(t *testing.T) {
	primary := newFakeStore()
	primary.listErr = errors.New("mongo down")
	fallback := newFakeStore()
	seedReport(fallback, "rep-6")
	svc := NewReportService(primary, fallback, &fakeNotifier{})

	reports, err := svc.ListReports(context.Background(), 1, 10)
	require.NoError(t, err)
	assert.Len(t, reports, 1)
}
