package docreq

import docs "google.golang.org/api/docs/v1"

// FilterValid drops style requests whose range is empty or inverted. The
// emitter produces these at block boundaries (e.g. a code fence with no
// content) and the API rejects them; everything else passes through in
// order. Inserts, images, and bullets keep their original ranges untouched.
func FilterValid(reqs []*docs.Request) []*docs.Request {
	out := make([]*docs.Request, 0, len(reqs))
	for _, r := range reqs {
		if degenerateRange(r) {
			continue
		}
		out = append(out, r)
	}
	return out
}

func degenerateRange(r *docs.Request) bool {
	var rng *docs.Range
	switch {
	case r.UpdateTextStyle != nil:
		rng = r.UpdateTextStyle.Range
	case r.UpdateParagraphStyle != nil:
		rng = r.UpdateParagraphStyle.Range
	default:
		return false
	}
	return rng == nil || rng.StartIndex >= rng.EndIndex
}
