package logging

import (
	"encoding/json"
	"fmt"
	"time"

	mrpb "google.golang.org/genproto/googleapis/api/monitoredres"
	ltype "google.golang.org/genproto/googleapis/logging/type"
	logpb "google.golang.org/genproto/googleapis/logging/v2"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/anypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// timestamps appear in mappings as RFC 3339 UTC with microsecond precision,
// matching the REST JSON schema.
const rfc3339Micros = "2006-01-02T15:04:05.000000Z"

func monResourceProtoToMapping(resourcePb *mrpb.MonitoredResource) map[string]interface{} {
	mapping := map[string]interface{}{
		"type": resourcePb.GetType(),
	}
	if len(resourcePb.GetLabels()) > 0 {
		mapping["labels"] = resourcePb.GetLabels()
	}
	return mapping
}

func monResourceMappingToProto(mapping map[string]interface{}) *mrpb.MonitoredResource {
	resourcePb := &mrpb.MonitoredResource{}
	if v, ok := mapping["type"].(string); ok {
		resourcePb.Type = v
	}
	if v, ok := mapping["labels"].(map[string]string); ok {
		resourcePb.Labels = v
	}
	return resourcePb
}

// valueProtoToValue decodes one structpb.Value. The recognized kinds are
// string, bool, number, list and struct; an unset kind decodes to nil. Any
// other kind is a decode error, guarding against schema drift.
func valueProtoToValue(valuePb *structpb.Value) (interface{}, error) {
	switch kind := valuePb.GetKind().(type) {
	case nil:
		return nil, nil

	case *structpb.Value_StringValue:
		return kind.StringValue, nil

	case *structpb.Value_BoolValue:
		return kind.BoolValue, nil

	case *structpb.Value_NumberValue:
		return kind.NumberValue, nil

	case *structpb.Value_ListValue:
		values := kind.ListValue.GetValues()
		result := make([]interface{}, 0, len(values))
		for _, elem := range values {
			v, err := valueProtoToValue(elem)
			if err != nil {
				return nil, err
			}
			result = append(result, v)
		}
		return result, nil

	case *structpb.Value_StructValue:
		return structProtoToMapping(kind.StructValue)

	default:
		return nil, fmt.Errorf("logging: value protobuf has unknown kind %T", kind)
	}
}

func structProtoToMapping(structPb *structpb.Struct) (map[string]interface{}, error) {
	fields := structPb.GetFields()
	mapping := make(map[string]interface{}, len(fields))
	for key, valuePb := range fields {
		v, err := valueProtoToValue(valuePb)
		if err != nil {
			return nil, err
		}
		mapping[key] = v
	}
	return mapping, nil
}

// entryProtoToMapping translates a LogEntry message into its JSON mapping.
// A key is emitted only when the source field is populated.
func entryProtoToMapping(entryPb *logpb.LogEntry) (map[string]interface{}, error) {
	mapping := map[string]interface{}{}

	if v := entryPb.GetLogName(); v != "" {
		mapping["logName"] = v
	}
	if resourcePb := entryPb.GetResource(); resourcePb != nil {
		mapping["resource"] = monResourceProtoToMapping(resourcePb)
	}
	if v := entryPb.GetSeverity(); v != ltype.LogSeverity_DEFAULT {
		mapping["severity"] = v.String()
	}
	if v := entryPb.GetInsertId(); v != "" {
		mapping["insertId"] = v
	}
	if ts := entryPb.GetTimestamp(); ts != nil {
		mapping["timestamp"] = ts.AsTime().UTC().Format(rfc3339Micros)
	}
	if labels := entryPb.GetLabels(); len(labels) > 0 {
		mapping["labels"] = labels
	}

	switch payload := entryPb.GetPayload().(type) {
	case nil:
		// entry carries no payload

	case *logpb.LogEntry_TextPayload:
		mapping["textPayload"] = payload.TextPayload

	case *logpb.LogEntry_JsonPayload:
		jsonPayload, err := structProtoToMapping(payload.JsonPayload)
		if err != nil {
			return nil, err
		}
		mapping["jsonPayload"] = jsonPayload

	case *logpb.LogEntry_ProtoPayload:
		// opaque; decoded by the caller against its own schema
		mapping["protoPayload"] = payload.ProtoPayload

	default:
		return nil, fmt.Errorf("logging: entry payload has unknown kind %T", payload)
	}

	if requestPb := entryPb.GetHttpRequest(); requestPb != nil {
		mapping["httpRequest"] = map[string]interface{}{
			"requestMethod": requestPb.GetRequestMethod(),
			"requestUrl":    requestPb.GetRequestUrl(),
			"status":        int(requestPb.GetStatus()),
			"referer":       requestPb.GetReferer(),
			"userAgent":     requestPb.GetUserAgent(),
			"cacheHit":      requestPb.GetCacheHit(),
			"requestSize":   requestPb.GetRequestSize(),
			"responseSize":  requestPb.GetResponseSize(),
			"remoteIp":      requestPb.GetRemoteIp(),
		}
	}

	if operationPb := entryPb.GetOperation(); operationPb != nil {
		mapping["operation"] = map[string]interface{}{
			"producer": operationPb.GetProducer(),
			"id":       operationPb.GetId(),
			"first":    operationPb.GetFirst(),
			"last":     operationPb.GetLast(),
		}
	}

	return mapping, nil
}

// normalizeSeverity accepts a symbolic severity name or a numeric code and
// returns the code. Unknown names are errors.
func normalizeSeverity(v interface{}) (ltype.LogSeverity, error) {
	switch severity := v.(type) {
	case string:
		code, ok := ltype.LogSeverity_value[severity]
		if !ok {
			return 0, fmt.Errorf("logging: unknown severity name %q", severity)
		}
		return ltype.LogSeverity(code), nil

	case ltype.LogSeverity:
		return severity, nil

	case int:
		return ltype.LogSeverity(severity), nil
	case int32:
		return ltype.LogSeverity(severity), nil
	case int64:
		return ltype.LogSeverity(severity), nil
	case float64:
		return ltype.LogSeverity(severity), nil

	default:
		return 0, fmt.Errorf("logging: severity must be a name or code, got %T", v)
	}
}

func toInt64(key string, v interface{}) (int64, error) {
	switch n := v.(type) {
	case int:
		return int64(n), nil
	case int32:
		return int64(n), nil
	case int64:
		return n, nil
	case float64:
		return int64(n), nil
	}
	return 0, fmt.Errorf("logging: %s must be a numeric value, got %T", key, v)
}

func httpRequestMappingToProto(info map[string]interface{}) (*ltype.HttpRequest, error) {
	requestPb := &ltype.HttpRequest{}
	if v, ok := info["requestMethod"].(string); ok {
		requestPb.RequestMethod = v
	}
	if v, ok := info["requestUrl"].(string); ok {
		requestPb.RequestUrl = v
	}
	if v, ok := info["status"]; ok {
		n, err := toInt64("httpRequest status", v)
		if err != nil {
			return nil, err
		}
		requestPb.Status = int32(n)
	}
	if v, ok := info["referer"].(string); ok {
		requestPb.Referer = v
	}
	if v, ok := info["userAgent"].(string); ok {
		requestPb.UserAgent = v
	}
	if v, ok := info["cacheHit"].(bool); ok {
		requestPb.CacheHit = v
	}
	if v, ok := info["requestSize"]; ok {
		n, err := toInt64("httpRequest requestSize", v)
		if err != nil {
			return nil, err
		}
		requestPb.RequestSize = n
	}
	if v, ok := info["responseSize"]; ok {
		n, err := toInt64("httpRequest responseSize", v)
		if err != nil {
			return nil, err
		}
		requestPb.ResponseSize = n
	}
	if v, ok := info["remoteIp"].(string); ok {
		requestPb.RemoteIp = v
	}
	return requestPb, nil
}

func operationMappingToProto(info map[string]interface{}) *logpb.LogEntryOperation {
	operationPb := &logpb.LogEntryOperation{}
	if v, ok := info["producer"].(string); ok {
		operationPb.Producer = v
	}
	if v, ok := info["id"].(string); ok {
		operationPb.Id = v
	}
	if v, ok := info["first"].(bool); ok {
		operationPb.First = v
	}
	if v, ok := info["last"].(bool); ok {
		operationPb.Last = v
	}
	return operationPb
}

// entryMappingToProto translates a JSON mapping into a LogEntry message.
// Only keys present in the mapping are written into the message.
func entryMappingToProto(mapping map[string]interface{}) (*logpb.LogEntry, error) {
	entryPb := &logpb.LogEntry{}

	if v, ok := mapping["logName"].(string); ok {
		entryPb.LogName = v
	}
	if v, ok := mapping["insertId"].(string); ok {
		entryPb.InsertId = v
	}
	if v, ok := mapping["resource"].(map[string]interface{}); ok {
		entryPb.Resource = monResourceMappingToProto(v)
	}

	if v, ok := mapping["severity"]; ok {
		severity, err := normalizeSeverity(v)
		if err != nil {
			return nil, err
		}
		entryPb.Severity = severity
	}

	if v, ok := mapping["timestamp"]; ok {
		t, ok := v.(time.Time)
		if !ok {
			return nil, fmt.Errorf("logging: timestamp must be a time.Time, got %T", v)
		}
		entryPb.Timestamp = timestamppb.New(t)
	}

	if v, ok := mapping["labels"].(map[string]string); ok {
		labels := make(map[string]string, len(v))
		for key, value := range v {
			labels[key] = value
		}
		entryPb.Labels = labels
	}

	if v, ok := mapping["textPayload"].(string); ok {
		entryPb.Payload = &logpb.LogEntry_TextPayload{TextPayload: v}
	}

	if v, ok := mapping["jsonPayload"].(map[string]interface{}); ok {
		structPb, err := structpb.NewStruct(v)
		if err != nil {
			return nil, err
		}
		entryPb.Payload = &logpb.LogEntry_JsonPayload{JsonPayload: structPb}
	}

	if v, ok := mapping["protoPayload"]; ok {
		// round-trip through JSON; the embedded type URL selects the
		// message schema
		buf, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		payloadPb := &anypb.Any{}
		if err := protojson.Unmarshal(buf, payloadPb); err != nil {
			return nil, err
		}
		entryPb.Payload = &logpb.LogEntry_ProtoPayload{ProtoPayload: payloadPb}
	}

	if v, ok := mapping["httpRequest"].(map[string]interface{}); ok {
		requestPb, err := httpRequestMappingToProto(v)
		if err != nil {
			return nil, err
		}
		entryPb.HttpRequest = requestPb
	}

	if v, ok := mapping["operation"].(map[string]interface{}); ok {
		entryPb.Operation = operationMappingToProto(v)
	}

	return entryPb, nil
}

func sinkProtoToMapping(sinkPb *logpb.LogSink) map[string]interface{} {
	return map[string]interface{}{
		"name":        sinkPb.GetName(),
		"filter":      sinkPb.GetFilter(),
		"destination": sinkPb.GetDestination(),
	}
}

func metricProtoToMapping(metricPb *logpb.LogMetric) map[string]interface{} {
	return map[string]interface{}{
		"name":        metricPb.GetName(),
		"filter":      metricPb.GetFilter(),
		"description": metricPb.GetDescription(),
	}
}
