// Package models định nghĩa model cho domain reports.
package models

import "time"

// PollutionReport là báo cáo ô nhiễm do người dân gửi lên.
// Tên field được giữ thống nhất giữa MongoDB và MySQL (report id là khóa join).
type PollutionReport struct {
	ReportID    string    `json:"id" bson:"id" index:"unique"`
	Name        string    `json:"name" bson:"name"`
	Mobile      string    `json:"mobile" bson:"mobile"`
	Email       string    `json:"email" bson:"email"`
	Location    string    `json:"location" bson:"location"`
	Latitude    *float64  `json:"latitude,omitempty" bson:"latitude,omitempty"`
	Longitude   *float64  `json:"longitude,omitempty" bson:"longitude,omitempty"`
	Severity    int       `json:"severity" bson:"severity"`
	Description *string   `json:"description,omitempty" bson:"description,omitempty"`
	ImageURL    *string   `json:"image_url,omitempty" bson:"image_url,omitempty"`
	Status      string    `json:"status" bson:"status" index:"single"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at" index:"single,order:-1"`
	UpdatedAt   time.Time `json:"updated_at" bson:"updated_at"`
}

// Các trạng thái được template email nhận diện. Status không bị ràng buộc enum,
// giá trị khác vẫn được chấp nhận và dùng template chung.
const (
	StatusPending    = "pending"
	StatusViewed     = "viewed"
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
)
