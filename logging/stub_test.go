package logging

import (
	"context"

	logpb "google.golang.org/genproto/googleapis/logging/v2"
	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
)

// fakeEntriesStub records requests and plays back scripted responses,
// one per call in order.
type fakeEntriesStub struct {
	listReqs  []*logpb.ListLogEntriesRequest
	listResps []*logpb.ListLogEntriesResponse
	listErr   error

	writeReqs []*logpb.WriteLogEntriesRequest
	writeErr  error

	deleteReqs []*logpb.DeleteLogRequest
	deleteErr  error
}

func (s *fakeEntriesStub) ListLogEntries(ctx context.Context, req *logpb.ListLogEntriesRequest, opts ...grpc.CallOption) (*logpb.ListLogEntriesResponse, error) {
	s.listReqs = append(s.listReqs, req)
	if s.listErr != nil {
		return nil, s.listErr
	}
	resp := s.listResps[0]
	s.listResps = s.listResps[1:]
	return resp, nil
}

func (s *fakeEntriesStub) WriteLogEntries(ctx context.Context, req *logpb.WriteLogEntriesRequest, opts ...grpc.CallOption) (*logpb.WriteLogEntriesResponse, error) {
	s.writeReqs = append(s.writeReqs, req)
	if s.writeErr != nil {
		return nil, s.writeErr
	}
	return &logpb.WriteLogEntriesResponse{}, nil
}

func (s *fakeEntriesStub) DeleteLog(ctx context.Context, req *logpb.DeleteLogRequest, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	s.deleteReqs = append(s.deleteReqs, req)
	if s.deleteErr != nil {
		return nil, s.deleteErr
	}
	return &emptypb.Empty{}, nil
}

type fakeSinksStub struct {
	listReqs  []*logpb.ListSinksRequest
	listResps []*logpb.ListSinksResponse

	createReqs []*logpb.CreateSinkRequest
	createErr  error

	getReqs []*logpb.GetSinkRequest
	getResp *logpb.LogSink
	getErr  error

	updateReqs []*logpb.UpdateSinkRequest
	updateResp *logpb.LogSink
	updateErr  error

	deleteReqs []*logpb.DeleteSinkRequest
	deleteErr  error
}

func (s *fakeSinksStub) ListSinks(ctx context.Context, req *logpb.ListSinksRequest, opts ...grpc.CallOption) (*logpb.ListSinksResponse, error) {
	s.listReqs = append(s.listReqs, req)
	resp := s.listResps[0]
	s.listResps = s.listResps[1:]
	return resp, nil
}

func (s *fakeSinksStub) GetSink(ctx context.Context, req *logpb.GetSinkRequest, opts ...grpc.CallOption) (*logpb.LogSink, error) {
	s.getReqs = append(s.getReqs, req)
	return s.getResp, s.getErr
}

func (s *fakeSinksStub) CreateSink(ctx context.Context, req *logpb.CreateSinkRequest, opts ...grpc.CallOption) (*logpb.LogSink, error) {
	s.createReqs = append(s.createReqs, req)
	if s.createErr != nil {
		return nil, s.createErr
	}
	return req.GetSink(), nil
}

func (s *fakeSinksStub) UpdateSink(ctx context.Context, req *logpb.UpdateSinkRequest, opts ...grpc.CallOption) (*logpb.LogSink, error) {
	s.updateReqs = append(s.updateReqs, req)
	return s.updateResp, s.updateErr
}

func (s *fakeSinksStub) DeleteSink(ctx context.Context, req *logpb.DeleteSinkRequest, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	s.deleteReqs = append(s.deleteReqs, req)
	if s.deleteErr != nil {
		return nil, s.deleteErr
	}
	return &emptypb.Empty{}, nil
}

type fakeMetricsStub struct {
	listReqs  []*logpb.ListLogMetricsRequest
	listResps []*logpb.ListLogMetricsResponse

	createReqs []*logpb.CreateLogMetricRequest
	createErr  error

	getReqs []*logpb.GetLogMetricRequest
	getResp *logpb.LogMetric
	getErr  error

	updateReqs []*logpb.UpdateLogMetricRequest
	updateResp *logpb.LogMetric
	updateErr  error

	deleteReqs []*logpb.DeleteLogMetricRequest
	deleteErr  error
}

func (s *fakeMetricsStub) ListLogMetrics(ctx context.Context, req *logpb.ListLogMetricsRequest, opts ...grpc.CallOption) (*logpb.ListLogMetricsResponse, error) {
	s.listReqs = append(s.listReqs, req)
	resp := s.listResps[0]
	s.listResps = s.listResps[1:]
	return resp, nil
}

func (s *fakeMetricsStub) GetLogMetric(ctx context.Context, req *logpb.GetLogMetricRequest, opts ...grpc.CallOption) (*logpb.LogMetric, error) {
	s.getReqs = append(s.getReqs, req)
	return s.getResp, s.getErr
}

func (s *fakeMetricsStub) CreateLogMetric(ctx context.Context, req *logpb.CreateLogMetricRequest, opts ...grpc.CallOption) (*logpb.LogMetric, error) {
	s.createReqs = append(s.createReqs, req)
	if s.createErr != nil {
		return nil, s.createErr
	}
	return req.GetMetric(), nil
}

func (s *fakeMetricsStub) UpdateLogMetric(ctx context.Context, req *logpb.UpdateLogMetricRequest, opts ...grpc.CallOption) (*logpb.LogMetric, error) {
	s.updateReqs = append(s.updateReqs, req)
	return s.updateResp, s.updateErr
}

func (s *fakeMetricsStub) DeleteLogMetric(ctx context.Context, req *logpb.DeleteLogMetricRequest, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	s.deleteReqs = append(s.deleteReqs, req)
	if s.deleteErr != nil {
		return nil, s.deleteErr
	}
	return &emptypb.Empty{}, nil
}
