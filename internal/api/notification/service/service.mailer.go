// Package notifsvc gửi email thông báo cho người dân gửi báo cáo ô nhiễm.
package notifsvc

import (
	"fmt"
	"strings"

	"air_command/config"

	"gopkg.in/gomail.v2"
)

// Mailer gửi email xác nhận và cập nhật trạng thái báo cáo
type Mailer interface {
	SendReportConfirmation(email, name, reportID string) error
	SendStatusUpdate(email, name, reportID, status string) error
}

// SMTPMailer gửi email qua SMTP bằng gomail
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

// NewSMTPMailer tạo mailer từ cấu hình server
func NewSMTPMailer(cfg *config.Configuration) *SMTPMailer {
	return &SMTPMailer{
		dialer: gomail.NewDialer(cfg.EmailHost, cfg.EmailPort, cfg.EmailUser, cfg.EmailPassword),
		from:   cfg.EmailFrom,
	}
}

// statusMessages ánh xạ trạng thái sang nội dung email.
// Trạng thái không có trong bảng dùng thông điệp chung.
var statusMessages = map[string]string{
	"viewed":     "Your report has been reviewed by our team.",
	"processing": "We are actively working on addressing the issue you reported.",
	"completed":  "The issue has been resolved. Thank you for helping us keep Delhi clean!",
}

const genericStatusMessage = "Your report status has been updated."

// SendReportConfirmation gửi email xác nhận đã nhận báo cáo
func (m *SMTPMailer) SendReportConfirmation(email, name, reportID string) error {
	subject := "Pollution Report Submitted - Delhi Air Command"
	html := RenderConfirmationBody(name, reportID)
	return m.send(email, subject, html)
}

// SendStatusUpdate gửi email thông báo trạng thái mới của báo cáo
func (m *SMTPMailer) SendStatusUpdate(email, name, reportID, status string) error {
	subject := fmt.Sprintf("Report Status Update: %s - Delhi Air Command", titleCase(status))
	html := RenderStatusUpdateBody(name, reportID, status)
	return m.send(email, subject, html)
}

func (m *SMTPMailer) send(to, subject, html string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", html)

	return m.dialer.DialAndSend(msg)
}

// RenderConfirmationBody render nội dung HTML của email xác nhận
func RenderConfirmationBody(name, reportID string) string {
	return fmt.Sprintf(`
    <html>
        <body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
            <div style="max-width: 600px; margin: 0 auto; padding: 20px;">
                <h2 style="color: #0F766E;">Thank You for Your Report</h2>
                <p>Dear %s,</p>
                <p>Your pollution report has been successfully submitted and logged in our system.</p>
                <div style="background: #F8FAFC; padding: 15px; border-radius: 8px; margin: 20px 0;">
                    <p style="margin: 0;"><strong>Report ID:</strong> %s</p>
                </div>
                <p>Our team will review your report and take appropriate action. You will receive updates via email as the status changes.</p>
                <p style="color: #64748B; font-size: 14px; margin-top: 30px;">
                    Best regards,<br>
                    Delhi Air Command Team
                </p>
            </div>
        </body>
    </html>
    `, name, reportID)
}

// RenderStatusUpdateBody render nội dung HTML của email cập nhật trạng thái
func RenderStatusUpdateBody(name, reportID, status string) string {
	message, ok := statusMessages[status]
	if !ok {
		message = genericStatusMessage
	}

	return fmt.Sprintf(`
    <html>
        <body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
            <div style="max-width: 600px; margin: 0 auto; padding: 20px;">
                <h2 style="color: #0F766E;">Report Status Update</h2>
                <p>Dear %s,</p>
                <p>%s</p>
                <div style="background: #F8FAFC; padding: 15px; border-radius: 8px; margin: 20px 0;">
                    <p style="margin: 0;"><strong>Report ID:</strong> %s</p>
                    <p style="margin: 10px 0 0 0;"><strong>New Status:</strong> <span style="color: #0F766E; text-transform: uppercase;">%s</span></p>
                </div>
                <p style="color: #64748B; font-size: 14px; margin-top: 30px;">
                    Best regards,<br>
                    Delhi Air Command Team
                </p>
            </div>
        </body>
    </html>
    `, name, message, reportID, status)
}

// titleCase viết hoa chữ cái đầu mỗi từ trong status
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}
