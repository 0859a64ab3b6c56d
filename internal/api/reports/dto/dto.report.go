// Package dto định nghĩa các cấu trúc input cho domain reports.
package dto

// CreateReportInput là dữ liệu người dân gửi lên khi tạo báo cáo ô nhiễm
type CreateReportInput struct {
	Name        string   `json:"name" validate:"required,no_xss"`
	Mobile      string   `json:"mobile" validate:"required"`
	Email       string   `json:"email" validate:"required,email"`
	Location    string   `json:"location" validate:"required,no_xss"`
	Latitude    *float64 `json:"latitude,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty"`
	Severity    int      `json:"severity" validate:"gte=1,lte=5"`
	Description *string  `json:"description,omitempty" validate:"omitempty,no_xss"`
	ImageURL    *string  `json:"image_url,omitempty"`
}

// UpdateStatusInput là dữ liệu cập nhật trạng thái báo cáo.
// Status là chuỗi tự do, không ràng buộc enum.
type UpdateStatusInput struct {
	Status string `json:"status" validate:"required"`
}
