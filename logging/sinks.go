package logging

import (
	"context"
	"fmt"

	"go.hakobune.dev/gcloud"
	logpb "google.golang.org/genproto/googleapis/logging/v2"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// SinksAPI wraps the sink operations of ConfigServiceV2. A sink is a named
// export rule: a filter plus a destination URI.
type SinksAPI struct {
	stub SinksStub
}

func NewSinksAPI(stub SinksStub) *SinksAPI {
	return &SinksAPI{stub: stub}
}

func sinkPath(project, sinkName string) string {
	return fmt.Sprintf("projects/%s/sinks/%s", project, sinkName)
}

// ListSinks returns one page of sink mappings for the project, plus the
// token for the next page (empty when exhausted).
func (a *SinksAPI) ListSinks(ctx context.Context, project string, pageSize int, pageToken string) ([]map[string]interface{}, string, error) {
	resp, err := a.stub.ListSinks(ctx, &logpb.ListSinksRequest{
		Parent:    "projects/" + project,
		PageSize:  int32(pageSize),
		PageToken: pageToken,
	})
	if err != nil {
		return nil, "", err
	}

	sinks := make([]map[string]interface{}, 0, len(resp.GetSinks()))
	for _, sinkPb := range resp.GetSinks() {
		sinks = append(sinks, sinkProtoToMapping(sinkPb))
	}

	return sinks, resp.GetNextPageToken(), nil
}

// SinkCreate creates a sink. A FAILED_PRECONDITION status (the sink already
// exists) is reported as *gcloud.ConflictError carrying the sink path.
func (a *SinksAPI) SinkCreate(ctx context.Context, project, sinkName, filter, destination string) error {
	_, err := a.stub.CreateSink(ctx, &logpb.CreateSinkRequest{
		Parent: "projects/" + project,
		Sink: &logpb.LogSink{
			Name:        sinkName,
			Filter:      filter,
			Destination: destination,
		},
	})
	if status.Code(err) == codes.FailedPrecondition {
		return &gcloud.ConflictError{Path: sinkPath(project, sinkName)}
	}
	return err
}

// SinkGet retrieves a sink as a {name, filter, destination} mapping.
func (a *SinksAPI) SinkGet(ctx context.Context, project, sinkName string) (map[string]interface{}, error) {
	path := sinkPath(project, sinkName)
	sinkPb, err := a.stub.GetSink(ctx, &logpb.GetSinkRequest{SinkName: path})
	if status.Code(err) == codes.NotFound {
		return nil, &gcloud.NotFoundError{Path: path}
	}
	if err != nil {
		return nil, err
	}
	return sinkProtoToMapping(sinkPb), nil
}

// SinkUpdate replaces the sink's filter and destination and returns the
// stored sink as a mapping.
func (a *SinksAPI) SinkUpdate(ctx context.Context, project, sinkName, filter, destination string) (map[string]interface{}, error) {
	path := sinkPath(project, sinkName)
	sinkPb, err := a.stub.UpdateSink(ctx, &logpb.UpdateSinkRequest{
		SinkName: path,
		Sink: &logpb.LogSink{
			Name:        path,
			Filter:      filter,
			Destination: destination,
		},
	})
	if status.Code(err) == codes.NotFound {
		return nil, &gcloud.NotFoundError{Path: path}
	}
	if err != nil {
		return nil, err
	}
	return sinkProtoToMapping(sinkPb), nil
}

// SinkDelete deletes a sink.
func (a *SinksAPI) SinkDelete(ctx context.Context, project, sinkName string) error {
	path := sinkPath(project, sinkName)
	_, err := a.stub.DeleteSink(ctx, &logpb.DeleteSinkRequest{SinkName: path})
	if status.Code(err) == codes.NotFound {
		return &gcloud.NotFoundError{Path: path}
	}
	return err
}
