package logging

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	mrpb "google.golang.org/genproto/googleapis/api/monitoredres"
	ltype "google.golang.org/genproto/googleapis/logging/type"
	logpb "google.golang.org/genproto/googleapis/logging/v2"
	"google.golang.org/protobuf/types/known/anypb"
	"google.golang.org/protobuf/types/known/structpb"
)

func TestEntryRoundTrip_AllFields(t *testing.T) {
	ts := time.Date(2016, 12, 31, 0, 1, 2, 345678000, time.UTC)
	mapping := map[string]interface{}{
		"logName":   "projects/proj/logs/syslog",
		"resource":  map[string]interface{}{"type": "global"},
		"severity":  "WARNING",
		"insertId":  "insert-1",
		"timestamp": ts,
		"labels":    map[string]string{"env": "prod"},
		"jsonPayload": map[string]interface{}{
			"message": "hello",
			"count":   float64(2),
			"nested":  map[string]interface{}{"ok": true},
			"tags":    []interface{}{"a", "b"},
		},
		"httpRequest": map[string]interface{}{
			"requestMethod": "GET",
			"requestUrl":    "https://example.com/",
			"status":        200,
			"referer":       "https://referer.example.com/",
			"userAgent":     "curl/7.64",
			"cacheHit":      true,
			"requestSize":   int64(123),
			"responseSize":  int64(456),
			"remoteIp":      "1.2.3.4",
		},
		"operation": map[string]interface{}{
			"producer": "github.com/example/worker",
			"id":       "op-1",
			"first":    true,
			"last":     false,
		},
	}

	entryPb, err := entryMappingToProto(mapping)
	require.NoError(t, err)

	decoded, err := entryProtoToMapping(entryPb)
	require.NoError(t, err)

	assert.Equal(t, "projects/proj/logs/syslog", decoded["logName"])
	assert.Equal(t, map[string]interface{}{"type": "global"}, decoded["resource"])
	assert.Equal(t, "WARNING", decoded["severity"])
	assert.Equal(t, "insert-1", decoded["insertId"])
	assert.Equal(t, "2016-12-31T00:01:02.345678Z", decoded["timestamp"])
	assert.Equal(t, map[string]string{"env": "prod"}, decoded["labels"])
	assert.Equal(t, mapping["jsonPayload"], decoded["jsonPayload"])
	assert.Equal(t, mapping["httpRequest"], decoded["httpRequest"])
	assert.Equal(t, mapping["operation"], decoded["operation"])
}

func TestEntryRoundTrip_TextPayloadAndNumericSeverity(t *testing.T) {
	mapping := map[string]interface{}{
		"textPayload": "plain text",
		"severity":    400,
	}

	entryPb, err := entryMappingToProto(mapping)
	require.NoError(t, err)
	assert.Equal(t, ltype.LogSeverity_WARNING, entryPb.GetSeverity())

	decoded, err := entryProtoToMapping(entryPb)
	require.NoError(t, err)
	assert.Equal(t, "plain text", decoded["textPayload"])
	assert.Equal(t, "WARNING", decoded["severity"])
}

func TestEntryMappingToProto_OnlyPresentKeys(t *testing.T) {
	entryPb, err := entryMappingToProto(map[string]interface{}{})
	require.NoError(t, err)

	assert.Empty(t, entryPb.GetLogName())
	assert.Nil(t, entryPb.GetResource())
	assert.Nil(t, entryPb.GetTimestamp())
	assert.Nil(t, entryPb.GetPayload())
	assert.Nil(t, entryPb.GetHttpRequest())
	assert.Nil(t, entryPb.GetOperation())
}

func TestEntryProtoToMapping_OmitsUnsetFields(t *testing.T) {
	decoded, err := entryProtoToMapping(&logpb.LogEntry{})
	require.NoError(t, err)
	assert.Empty(t, decoded)
}

func TestEntryProtoToMapping_ProtoPayloadPassesThrough(t *testing.T) {
	payload := &anypb.Any{
		TypeUrl: "type.googleapis.com/google.protobuf.Empty",
	}
	decoded, err := entryProtoToMapping(&logpb.LogEntry{
		Payload: &logpb.LogEntry_ProtoPayload{ProtoPayload: payload},
	})
	require.NoError(t, err)
	assert.Same(t, payload, decoded["protoPayload"])
}

func TestEntryMappingToProto_UnknownSeverityName(t *testing.T) {
	_, err := entryMappingToProto(map[string]interface{}{"severity": "LOUD"})
	assert.Error(t, err)
}

func TestEntryMappingToProto_MistypedHTTPRequestNumbers(t *testing.T) {
	_, err := entryMappingToProto(map[string]interface{}{
		"httpRequest": map[string]interface{}{"status": "200"},
	})
	assert.Error(t, err)

	_, err = entryMappingToProto(map[string]interface{}{
		"httpRequest": map[string]interface{}{"requestSize": "1k"},
	})
	assert.Error(t, err)

	_, err = entryMappingToProto(map[string]interface{}{
		"httpRequest": map[string]interface{}{"responseSize": true},
	})
	assert.Error(t, err)
}

func TestEntryMappingToProto_BadTimestamp(t *testing.T) {
	_, err := entryMappingToProto(map[string]interface{}{"timestamp": "2016-12-31"})
	assert.Error(t, err)
}

func TestValueProtoToValue(t *testing.T) {
	structPb, err := structpb.NewStruct(map[string]interface{}{
		"str":  "s",
		"num":  3.5,
		"bool": true,
		"list": []interface{}{"x", 1.0},
		"obj":  map[string]interface{}{"k": "v"},
	})
	require.NoError(t, err)

	decoded, err := structProtoToMapping(structPb)
	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{
		"str":  "s",
		"num":  3.5,
		"bool": true,
		"list": []interface{}{"x", 1.0},
		"obj":  map[string]interface{}{"k": "v"},
	}, decoded)
}

func TestValueProtoToValue_AbsentKind(t *testing.T) {
	v, err := valueProtoToValue(&structpb.Value{})
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestValueProtoToValue_UnknownKind(t *testing.T) {
	// the decoder recognizes string, bool, number, list and struct only;
	// a null value has none of those kinds
	_, err := valueProtoToValue(structpb.NewNullValue())
	assert.Error(t, err)

	_, err = structProtoToMapping(&structpb.Struct{
		Fields: map[string]*structpb.Value{"bad": structpb.NewNullValue()},
	})
	assert.Error(t, err)
}

func TestMonResourceMappings(t *testing.T) {
	mapping := monResourceProtoToMapping(&mrpb.MonitoredResource{Type: "global"})
	assert.Equal(t, map[string]interface{}{"type": "global"}, mapping)

	mapping = monResourceProtoToMapping(&mrpb.MonitoredResource{
		Type:   "gce_instance",
		Labels: map[string]string{"zone": "us-central1-a"},
	})
	assert.Equal(t, map[string]interface{}{
		"type":   "gce_instance",
		"labels": map[string]string{"zone": "us-central1-a"},
	}, mapping)

	resourcePb := monResourceMappingToProto(mapping)
	assert.Equal(t, "gce_instance", resourcePb.GetType())
	assert.Equal(t, map[string]string{"zone": "us-central1-a"}, resourcePb.GetLabels())
}

func TestSinkProtoToMapping(t *testing.T) {
	mapping := sinkProtoToMapping(&logpb.LogSink{
		Name:        "errors",
		Filter:      "severity>=ERROR",
		Destination: "storage.googleapis.com/error-bucket",
	})
	assert.Equal(t, map[string]interface{}{
		"name":        "errors",
		"filter":      "severity>=ERROR",
		"destination": "storage.googleapis.com/error-bucket",
	}, mapping)
}

func TestMetricProtoToMapping(t *testing.T) {
	mapping := metricProtoToMapping(&logpb.LogMetric{
		Name:        "error-count",
		Filter:      "severity>=ERROR",
		Description: "count of errors",
	})
	assert.Equal(t, map[string]interface{}{
		"name":        "error-count",
		"filter":      "severity>=ERROR",
		"description": "count of errors",
	}, mapping)
}
