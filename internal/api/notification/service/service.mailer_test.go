package notifsvc

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderConfirmationBody(t *testing.T) {
	html := RenderConfirmationBody("Ravi Kumar", "rep-123")

	assert.Contains(t, html, "Dear Ravi Kumar,")
	assert.Contains(t, html, "rep-123")
	assert.Contains(t, html, "Thank You for Your Report")
	assert.Contains(t, html, "Delhi Air Command Team")
}

func TestRenderStatusUpdateBody_KnownStatuses(t *testing.T) {
	cases := map[string]string{
		"viewed":     "Your report has been reviewed by our team.",
		"processing": "We are actively working on addressing the issue you reported.",
		"completed":  "The issue has been resolved. Thank you for helping us keep Delhi clean!",
	}

	for status, message := range cases {
		html := RenderStatusUpdateBody("Ravi", "rep-123", status)
		assert.Contains(t, html, message)
		assert.Contains(t, html, status)
	}
}

func TestRenderStatusUpdateBody_UnknownStatusUsesGenericMessage(t *testing.T) {
	html := RenderStatusUpdateBody("Ravi", "rep-123", "escalated")

	assert.Contains(t, html, "Your report status has been updated.")
	assert.Contains(t, html, "escalated")
}

func TestTitleCase(t *testing.T) {
	assert.Equal(t, "Viewed", titleCase("viewed"))
	assert.Equal(t, "In Progress", titleCase("in progress"))
	assert.Equal(t, "", titleCase(""))
}

// recordingMailer ghi lại các email đã gửi để kiểm tra dispatcher
type recordingMailer struct {
	mu            sync.Mutex
	confirmations []string
	updates       []string
	err           error
}

func (m *recordingMailer) SendReportConfirmation(email, name, reportID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.confirmations = append(m.confirmations, reportID)
	return nil
}

func (m *recordingMailer) SendStatusUpdate(email, name, reportID, status string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.updates = append(m.updates, reportID+":"+status)
	return nil
}

func TestDispatcher_DeliversJobs(t *testing.T) {
	mailer := &recordingMailer{}
	d := NewDispatcher(mailer, 10)

	d.EnqueueReportConfirmation("a@b.com", "Ravi", "rep-1")
	d.EnqueueStatusUpdate("a@b.com", "Ravi", "rep-1", "viewed")
	d.Close()

	assert.Equal(t, []string{"rep-1"}, mailer.confirmations)
	assert.Equal(t, []string{"rep-1:viewed"}, mailer.updates)
}

func TestDispatcher_MailerErrorDoesNotPanic(t *testing.T) {
	mailer := &recordingMailer{err: errors.New("smtp down")}
	d := NewDispatcher(mailer, 10)

	d.EnqueueReportConfirmation("a@b.com", "Ravi", "rep-1")
	d.Close()

	assert.Empty(t, mailer.confirmations)
}

func TestDispatcher_EnqueueAfterCloseIsNoop(t *testing.T) {
	mailer := &recordingMailer{}
	d := NewDispatcher(mailer, 10)
	d.Close()

	d.EnqueueReportConfirmation("a@b.com", "Ravi", "rep-1")

	assert.Empty(t, mailer.confirmations)
}
