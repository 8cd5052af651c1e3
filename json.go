package queue

import (
	"encoding/json"

	"github.com/tychoish/fun/ers"
	"github.com/tychoish/fun/irt"
)

// ErrUninitializedQueue is returned when unmarshaling into a nil
// queue.
const ErrUninitializedQueue ers.Error = ers.Error("uninitialized queue")

// MarshalJSON produces a JSON array of the queue's values from head
// to tail. By supporting json.Marshaler and json.Unmarshaler, queues
// can behave as arrays in larger json objects, and can be the
// output/input of json.Marshal and json.Unmarshal.
func (q *Queue) MarshalJSON() ([]byte, error) {
	return json.Marshal(irt.Collect(q.Iterator(), 0, q.Len()))
}

// UnmarshalJSON reads a JSON array of strings and appends its values
// to the back of the queue. Existing values are not removed.
func (q *Queue) UnmarshalJSON(in []byte) error {
	if q == nil {
		return ErrUninitializedQueue
	}

	var values []string
	if err := json.Unmarshal(in, &values); err != nil {
		return err
	}

	q.Append(values...)
	return nil
}
