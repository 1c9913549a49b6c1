package docreq

import docs "google.golang.org/api/docs/v1"

// Chunk splits reqs into contiguous batches of at most size requests,
// preserving order. The last batch may be shorter; empty input yields no
// batches. Batches for one document must be applied in order because each
// batch's indexes assume the previous batches already landed.
//
// The limit is a transport concern, so it is a parameter: the markdown
// uploader uses 100 per batch, the incremental builder 35.
func Chunk(reqs []*docs.Request, size int) [][]*docs.Request {
	if size <= 0 || len(reqs) == 0 {
		return nil
	}
	batches := make([][]*docs.Request, 0, (len(reqs)+size-1)/size)
	for start := 0; start < len(reqs); start += size {
		end := min(start+size, len(reqs))
		batches = append(batches, reqs[start:end])
	}
	return batches
}
