package logging

import (
	"context"
	"fmt"

	"go.hakobune.dev/gcloud"
	logpb "google.golang.org/genproto/googleapis/logging/v2"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// EntriesAPI wraps the log-entry operations of LoggingServiceV2.
type EntriesAPI struct {
	stub EntriesStub
}

func NewEntriesAPI(stub EntriesStub) *EntriesAPI {
	return &EntriesAPI{stub: stub}
}

// ListEntries returns one page of log entry mappings for the given project
// ids, plus the token for the next page. An empty pageToken requests the
// first page; an empty returned token means no more pages.
func (a *EntriesAPI) ListEntries(ctx context.Context, projects []string, filter, orderBy string, pageSize int, pageToken string) ([]map[string]interface{}, string, error) {
	resourceNames := make([]string, 0, len(projects))
	for _, project := range projects {
		resourceNames = append(resourceNames, "projects/"+project)
	}

	resp, err := a.stub.ListLogEntries(ctx, &logpb.ListLogEntriesRequest{
		ResourceNames: resourceNames,
		Filter:        filter,
		OrderBy:       orderBy,
		PageSize:      int32(pageSize),
		PageToken:     pageToken,
	})
	if err != nil {
		return nil, "", err
	}

	entries := make([]map[string]interface{}, 0, len(resp.GetEntries()))
	for _, entryPb := range resp.GetEntries() {
		entry, err := entryProtoToMapping(entryPb)
		if err != nil {
			return nil, "", err
		}
		entries = append(entries, entry)
	}

	return entries, resp.GetNextPageToken(), nil
}

// WriteEntries writes the given entry mappings. loggerName, resource and
// labels are defaults applied by the backend to entries that don't carry
// their own. The write is all-or-nothing; partial success is never
// requested.
func (a *EntriesAPI) WriteEntries(ctx context.Context, entries []map[string]interface{}, loggerName string, resource map[string]interface{}, labels map[string]string) error {
	entryPbs := make([]*logpb.LogEntry, 0, len(entries))
	for _, entry := range entries {
		entryPb, err := entryMappingToProto(entry)
		if err != nil {
			return err
		}
		entryPbs = append(entryPbs, entryPb)
	}

	req := &logpb.WriteLogEntriesRequest{
		Entries: entryPbs,
		LogName: loggerName,
		Labels:  labels,
	}
	if resource != nil {
		req.Resource = monResourceMappingToProto(resource)
	}

	_, err := a.stub.WriteLogEntries(ctx, req)
	return err
}

// LoggerDelete deletes all entries of the named logger. A NOT_FOUND status
// is reported as *gcloud.NotFoundError carrying the logger path.
func (a *EntriesAPI) LoggerDelete(ctx context.Context, project, loggerName string) error {
	path := fmt.Sprintf("projects/%s/logs/%s", project, loggerName)
	_, err := a.stub.DeleteLog(ctx, &logpb.DeleteLogRequest{LogName: path})
	if status.Code(err) == codes.NotFound {
		return &gcloud.NotFoundError{Path: path}
	}
	return err
}
