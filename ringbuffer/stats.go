package ringbuffer

// Stats is a point-in-time view of a buffer's geometry and cursors. Count
// and Free are derived from the same cursor snapshot, so
// Count+Free == Capacity-1 always holds for a single Stats value.
type Stats struct {
	Capacity    int `json:"capacity"`
	ElementSize int `json:"element_size"`
	Read        int `json:"read"`
	Write       int `json:"write"`
	Count       int `json:"count"`
	Free        int `json:"free"`
}
