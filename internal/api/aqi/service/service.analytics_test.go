package aqisvc

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingDriver ghi lại các câu INSERT để kiểm tra cột và tham số khớp nhau
type recordedExec struct {
	query string
	args  []driver.NamedValue
}

type recordingDriver struct{}

var recordedExecs []recordedExec

func (recordingDriver) Open(string) (driver.Conn, error) {
	return recordingConn{}, nil
}

type recordingConn struct{}

func (recordingConn) Prepare(string) (driver.Stmt, error) {
	return nil, errors.New("prepare not supported")
}

func (recordingConn) Close() error {
	return nil
}

func (recordingConn) Begin() (driver.Tx, error) {
	return nil, errors.New("begin not supported")
}

func (recordingConn) ExecContext(_ context.Context, query string, args []driver.NamedValue) (driver.Result, error) {
	recordedExecs = append(recordedExecs, recordedExec{query: query, args: args})
	return driver.RowsAffected(1), nil
}

func init() {
	sql.Register("analytics_recorder", recordingDriver{})
}

func newRecordingDB(t *testing.T) *sql.DB {
	recordedExecs = nil
	db, err := sql.Open("analytics_recorder", "")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestLogForecast_BindsEveryInsertedColumn(t *testing.T) {
	db := newRecordingDB(t)
	analytics := NewAnalyticsLogger(db)

	analytics.LogForecast(context.Background(), 156, testForecast())

	require.Len(t, recordedExecs, 1)
	exec := recordedExecs[0]
	assert.Contains(t, exec.query, "aqi_prediction_logs")
	// created_at phải nằm trong danh sách cột, bảng khai báo NOT NULL
	assert.Contains(t, exec.query, "created_at")
	assert.Equal(t, strings.Count(exec.query, "?"), len(exec.args))
	assert.Equal(t, 156.0, exec.args[0].Value)
}

func TestLogAttribution_BindsEveryInsertedColumn(t *testing.T) {
	db := newRecordingDB(t)
	analytics := NewAnalyticsLogger(db)

	analytics.LogAttribution(context.Background(), testSources())

	require.Len(t, recordedExecs, 1)
	exec := recordedExecs[0]
	assert.Contains(t, exec.query, "source_attribution_logs")
	assert.Contains(t, exec.query, "created_at")
	assert.Equal(t, strings.Count(exec.query, "?"), len(exec.args))
}

func TestAnalyticsLogger_NilDBIsNoOp(t *testing.T) {
	var analytics *AnalyticsLogger

	analytics.LogForecast(context.Background(), 156, testForecast())
	analytics.LogAttribution(context.Background(), testSources())

	NewAnalyticsLogger(nil).LogForecast(context.Background(), 156, testForecast())
}
