package logging

import (
	"context"
	"fmt"

	"go.hakobune.dev/gcloud"
	logpb "google.golang.org/genproto/googleapis/logging/v2"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// MetricsAPI wraps the metric operations of MetricsServiceV2. A metric is a
// named count over log entries matching a filter.
type MetricsAPI struct {
	stub MetricsStub
}

func NewMetricsAPI(stub MetricsStub) *MetricsAPI {
	return &MetricsAPI{stub: stub}
}

func metricPath(project, metricName string) string {
	return fmt.Sprintf("projects/%s/metrics/%s", project, metricName)
}

// ListMetrics returns one page of metric mappings for the project, plus the
// token for the next page (empty when exhausted).
func (a *MetricsAPI) ListMetrics(ctx context.Context, project string, pageSize int, pageToken string) ([]map[string]interface{}, string, error) {
	resp, err := a.stub.ListLogMetrics(ctx, &logpb.ListLogMetricsRequest{
		Parent:    "projects/" + project,
		PageSize:  int32(pageSize),
		PageToken: pageToken,
	})
	if err != nil {
		return nil, "", err
	}

	metrics := make([]map[string]interface{}, 0, len(resp.GetMetrics()))
	for _, metricPb := range resp.GetMetrics() {
		metrics = append(metrics, metricProtoToMapping(metricPb))
	}

	return metrics, resp.GetNextPageToken(), nil
}

// MetricCreate creates a metric. A FAILED_PRECONDITION status (the metric
// already exists) is reported as *gcloud.ConflictError carrying the metric
// path.
func (a *MetricsAPI) MetricCreate(ctx context.Context, project, metricName, filter, description string) error {
	_, err := a.stub.CreateLogMetric(ctx, &logpb.CreateLogMetricRequest{
		Parent: "projects/" + project,
		Metric: &logpb.LogMetric{
			Name:        metricName,
			Filter:      filter,
			Description: description,
		},
	})
	if status.Code(err) == codes.FailedPrecondition {
		return &gcloud.ConflictError{Path: metricPath(project, metricName)}
	}
	return err
}

// MetricGet retrieves a metric as a {name, filter, description} mapping.
func (a *MetricsAPI) MetricGet(ctx context.Context, project, metricName string) (map[string]interface{}, error) {
	path := metricPath(project, metricName)
	metricPb, err := a.stub.GetLogMetric(ctx, &logpb.GetLogMetricRequest{MetricName: path})
	if status.Code(err) == codes.NotFound {
		return nil, &gcloud.NotFoundError{Path: path}
	}
	if err != nil {
		return nil, err
	}
	return metricProtoToMapping(metricPb), nil
}

// MetricUpdate replaces the metric's filter and description and returns the
// stored metric as a mapping.
func (a *MetricsAPI) MetricUpdate(ctx context.Context, project, metricName, filter, description string) (map[string]interface{}, error) {
	path := metricPath(project, metricName)
	metricPb, err := a.stub.UpdateLogMetric(ctx, &logpb.UpdateLogMetricRequest{
		MetricName: path,
		Metric: &logpb.LogMetric{
			Name:        path,
			Filter:      filter,
			Description: description,
		},
	})
	if status.Code(err) == codes.NotFound {
		return nil, &gcloud.NotFoundError{Path: path}
	}
	if err != nil {
		return nil, err
	}
	return metricProtoToMapping(metricPb), nil
}

// MetricDelete deletes a metric.
func (a *MetricsAPI) MetricDelete(ctx context.Context, project, metricName string) error {
	path := metricPath(project, metricName)
	_, err := a.stub.DeleteLogMetric(ctx, &logpb.DeleteLogMetricRequest{MetricName: path})
	if status.Code(err) == codes.NotFound {
		return &gcloud.NotFoundError{Path: path}
	}
	return err
}
