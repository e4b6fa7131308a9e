package gatekit

import "context"

type contextKey uint8

const segmentDataKey contextKey = iota

type segmentData map[Segment]map[string]any

func withSegmentData(ctx context.Context, data segmentData) context.Context {
	return context.WithValue(ctx, segmentDataKey, data)
}

// SegmentData returns the validated data view for a segment, as stored by
// the validation middleware on the success path. The view carries applied
// defaults and type coercions, so handlers should prefer it over re-reading
// the raw request. It returns nil when the segment was not validated.
func SegmentData(ctx context.Context, seg Segment) map[string]any {
	data, ok := ctx.Value(segmentDataKey).(segmentData)
	if !ok {
		return nil
	}
	return data[seg]
}

// SegmentValue returns one field from a validated segment view.
func SegmentValue(ctx context.Context, seg Segment, key string) (any, bool) {
	view := SegmentData(ctx, seg)
	if view == nil {
		return nil, false
	}
	v, ok := view[key]
	return v, ok
}
