package form

import "github.com/formlet/formlet/model"

// Entry is one submitted (key, value) pair. Entries arrive in submission
// order; the aggregator depends on that order to keep multi-valued sequences
// deterministic.
type Entry struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Aggregate reduces submitted entries into response data. A key seen once
// stays a scalar; a repeated key is promoted to an ordered sequence (see
// model.Value.Append for the promotion rule). Aggregation is total: it has
// no failure mode over string entries.
func Aggregate(entries []Entry) model.ResponseData {
	data := make(model.ResponseData, len(entries))
	for _, entry := range entries {
		if existing, ok := data[entry.Key]; ok {
			data[entry.Key] = existing.Append(entry.Value)
		} else {
			data[entry.Key] = model.Scalar(entry.Value)
		}
	}
	return data
}
