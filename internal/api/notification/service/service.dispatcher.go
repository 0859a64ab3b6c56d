package notifsvc

import (
	"sync"

	"air_command/internal/logger"
)

// jobKind phân loại email cần gửi
type jobKind int

const (
	jobConfirmation jobKind = iota
	jobStatusUpdate
)

type mailJob struct {
	kind     jobKind
	email    string
	name     string
	reportID string
	status   string
}

// Dispatcher gửi email bất đồng bộ qua một goroutine riêng.
// Enqueue không bao giờ block request handling; queue đầy thì bỏ job và ghi log.
// Mọi lỗi gửi email chỉ được ghi log, không bao giờ trả về caller.
type Dispatcher struct {
	mailer Mailer
	jobs   chan mailJob
	wg     sync.WaitGroup
	mu     sync.Mutex
	closed bool
}

// NewDispatcher tạo dispatcher và khởi động worker goroutine
func NewDispatcher(mailer Mailer, bufferSize int) *Dispatcher {
	if bufferSize <= 0 {
		bufferSize = 100
	}

	d := &Dispatcher{
		mailer: mailer,
		jobs:   make(chan mailJob, bufferSize),
	}

	d.wg.Add(1)
	go d.processJobs()

	return d
}

// EnqueueReportConfirmation xếp email xác nhận báo cáo vào queue
func (d *Dispatcher) EnqueueReportConfirmation(email, name, reportID string) {
	d.enqueue(mailJob{kind: jobConfirmation, email: email, name: name, reportID: reportID})
}

// EnqueueStatusUpdate xếp email cập nhật trạng thái vào queue
func (d *Dispatcher) EnqueueStatusUpdate(email, name, reportID, status string) {
	d.enqueue(mailJob{kind: jobStatusUpdate, email: email, name: name, reportID: reportID, status: status})
}

func (d *Dispatcher) enqueue(job mailJob) {
	d.mu.Lock()
	closed := d.closed
	d.mu.Unlock()
	if closed {
		return
	}

	select {
	case d.jobs <- job:
	default:
		logger.GetNotificationLogger().WithField("report_id", job.reportID).
			Warn("Notification queue full, dropping email job")
	}
}

// processJobs gửi email tuần tự trong worker goroutine
func (d *Dispatcher) processJobs() {
	defer d.wg.Done()

	log := logger.GetNotificationLogger()
	for job := range d.jobs {
		var err error
		switch job.kind {
		case jobConfirmation:
			err = d.mailer.SendReportConfirmation(job.email, job.name, job.reportID)
		case jobStatusUpdate:
			err = d.mailer.SendStatusUpdate(job.email, job.name, job.reportID, job.status)
		}

		if err != nil {
			log.WithError(err).WithField("report_id", job.reportID).
				Error("Failed to send notification email")
			continue
		}
		log.WithField("report_id", job.reportID).Info("Notification email sent")
	}
}

// Close đóng queue và đợi các email còn lại được gửi xong
func (d *Dispatcher) Close() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.closed = true
	d.mu.Unlock()

	close(d.jobs)
	d.wg.Wait()
}

// defaultDispatcher là dispatcher dùng chung cho toàn ứng dụng
var (
	defaultDispatcher *Dispatcher
	defaultMu         sync.Mutex
)

// Init khởi tạo dispatcher mặc định với mailer được cung cấp
func Init(mailer Mailer) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultDispatcher = NewDispatcher(mailer, 100)
}

// Default trả về dispatcher mặc định
func Default() *Dispatcher {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	return defaultDispatcher
}

// Shutdown đóng dispatcher mặc định
func Shutdown() {
	defaultMu.Lock()
	d := defaultDispatcher
	defaultMu.Unlock()
	if d != nil {
		d.Close()
	}
}
