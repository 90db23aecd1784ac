package logging

import (
	"context"

	"go.hakobune.dev/gcloud"
	"go.hakobune.dev/gcloud/internal"
	"google.golang.org/api/option"
	gtransport "google.golang.org/api/transport/grpc"
	logpb "google.golang.org/genproto/googleapis/logging/v2"
	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
)

const (
	apiEndpoint  = "logging.googleapis.com:443"
	defaultScope = "https://www.googleapis.com/auth/logging.admin"
)

// EntriesStub is the part of logpb.LoggingServiceV2Client used by
// EntriesAPI.
type EntriesStub interface {
	ListLogEntries(ctx context.Context, req *logpb.ListLogEntriesRequest, opts ...grpc.CallOption) (*logpb.ListLogEntriesResponse, error)
	WriteLogEntries(ctx context.Context, req *logpb.WriteLogEntriesRequest, opts ...grpc.CallOption) (*logpb.WriteLogEntriesResponse, error)
	DeleteLog(ctx context.Context, req *logpb.DeleteLogRequest, opts ...grpc.CallOption) (*emptypb.Empty, error)
}

// SinksStub is the part of logpb.ConfigServiceV2Client used by SinksAPI.
type SinksStub interface {
	ListSinks(ctx context.Context, req *logpb.ListSinksRequest, opts ...grpc.CallOption) (*logpb.ListSinksResponse, error)
	GetSink(ctx context.Context, req *logpb.GetSinkRequest, opts ...grpc.CallOption) (*logpb.LogSink, error)
	CreateSink(ctx context.Context, req *logpb.CreateSinkRequest, opts ...grpc.CallOption) (*logpb.LogSink, error)
	UpdateSink(ctx context.Context, req *logpb.UpdateSinkRequest, opts ...grpc.CallOption) (*logpb.LogSink, error)
	DeleteSink(ctx context.Context, req *logpb.DeleteSinkRequest, opts ...grpc.CallOption) (*emptypb.Empty, error)
}

// MetricsStub is the part of logpb.MetricsServiceV2Client used by
// MetricsAPI.
type MetricsStub interface {
	ListLogMetrics(ctx context.Context, req *logpb.ListLogMetricsRequest, opts ...grpc.CallOption) (*logpb.ListLogMetricsResponse, error)
	GetLogMetric(ctx context.Context, req *logpb.GetLogMetricRequest, opts ...grpc.CallOption) (*logpb.LogMetric, error)
	CreateLogMetric(ctx context.Context, req *logpb.CreateLogMetricRequest, opts ...grpc.CallOption) (*logpb.LogMetric, error)
	UpdateLogMetric(ctx context.Context, req *logpb.UpdateLogMetricRequest, opts ...grpc.CallOption) (*logpb.LogMetric, error)
	DeleteLogMetric(ctx context.Context, req *logpb.DeleteLogMetricRequest, opts ...grpc.CallOption) (*emptypb.Empty, error)
}

var (
	_ EntriesStub = logpb.LoggingServiceV2Client(nil)
	_ SinksStub   = logpb.ConfigServiceV2Client(nil)
	_ MetricsStub = logpb.MetricsServiceV2Client(nil)
)

// Client bundles the three API wrappers over one gRPC connection.
type Client struct {
	Entries *EntriesAPI
	Sinks   *SinksAPI
	Metrics *MetricsAPI

	conn    *grpc.ClientConn
	ownConn bool
}

// NewClient dials the Cloud Logging endpoint and returns a Client. When a
// connection is supplied via gcloud.WithGRPCConn it is used as-is and the
// caller keeps ownership of it.
func NewClient(ctx context.Context, opts ...gcloud.ClientOption) (*Client, error) {
	settings := &internal.ClientSettings{}
	for _, opt := range opts {
		opt.Apply(settings)
	}

	conn := settings.GRPCConn
	ownConn := false
	if conn == nil {
		scopes := settings.Scopes
		if len(scopes) == 0 {
			scopes = []string{defaultScope}
		}
		origOpts := []option.ClientOption{
			option.WithEndpoint(apiEndpoint),
			option.WithScopes(scopes...),
		}
		if settings.TokenSource != nil {
			origOpts = append(origOpts, option.WithTokenSource(settings.TokenSource))
		}
		if settings.CredentialsFile != "" {
			origOpts = append(origOpts, option.WithCredentialsFile(settings.CredentialsFile))
		}

		var err error
		conn, err = gtransport.Dial(ctx, origOpts...)
		if err != nil {
			return nil, err
		}
		ownConn = true
	}

	return &Client{
		Entries: NewEntriesAPI(logpb.NewLoggingServiceV2Client(conn)),
		Sinks:   NewSinksAPI(logpb.NewConfigServiceV2Client(conn)),
		Metrics: NewMetricsAPI(logpb.NewMetricsServiceV2Client(conn)),
		conn:    conn,
		ownConn: ownConn,
	}, nil
}

// Close releases the connection if the client owns it.
func (c *Client) Close() error {
	if !c.ownConn {
		return nil
	}
	return c.conn.Close()
}
