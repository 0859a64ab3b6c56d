package reportsvc

import (
	"context"
	"time"

	basesvc "air_command/internal/api/base/service"
	"air_command/internal/api/reports/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoReportStore là primary store, lưu báo cáo vào collection pollution_reports.
type MongoReportStore struct {
	base basesvc.BaseServiceMongo[models.PollutionReport]
}

// NewMongoReportStore tạo store trên collection được cung cấp
func NewMongoReportStore(collection *mongo.Collection) *MongoReportStore {
	return &MongoReportStore{
		base: basesvc.NewBaseServiceMongo[models.PollutionReport](collection),
	}
}

// Insert ghi một báo cáo mới
func (s *MongoReportStore) Insert(ctx context.Context, report *models.PollutionReport) error {
	_, err := s.base.InsertOne(ctx, *report)
	return err
}

// FindByReportID tìm báo cáo theo report id (không phải _id của Mongo)
func (s *MongoReportStore) FindByReportID(ctx context.Context, reportID string) (*models.PollutionReport, error) {
	report, err := s.base.FindOne(ctx, bson.M{"id": reportID}, nil)
	if err != nil {
		return nil, err
	}
	return &report, nil
}

// UpdateStatus cập nhật trạng thái báo cáo theo report id
func (s *MongoReportStore) UpdateStatus(ctx context.Context, reportID string, status string, updatedAt time.Time) error {
	update := bson.M{"$set": bson.M{"status": status, "updated_at": updatedAt}}
	_, err := s.base.UpdateOne(ctx, bson.M{"id": reportID}, update, nil)
	return err
}

// List trả về báo cáo mới nhất trước, phân trang bằng offset/limit
func (s *MongoReportStore) List(ctx context.Context, offset, limit int64) ([]models.PollutionReport, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(offset).
		SetLimit(limit)
	return s.base.Find(ctx, bson.M{}, opts)
}
