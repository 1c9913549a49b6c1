package docreq

import (
	"fmt"
	"testing"

	docs "google.golang.org/api/docs/v1"
)

func makeReqs(n int) []*docs.Request {
	reqs := make([]*docs.Request, n)
	for i := range reqs {
		reqs[i] = insertReq(int64(i+1), fmt.Sprintf("%d", i))
	}
	return reqs
}

func TestChunkPartition(t *testing.T) {
	cases := []struct {
		n, size   int
		wantSizes []int
	}{
		{0, 10, nil},
		{1, 10, []int{1}},
		{10, 10, []int{10}},
		{11, 10, []int{10, 1}},
		{250, 100, []int{100, 100, 50}},
		{35, 35, []int{35}},
	}
	for _, tc := range cases {
		reqs := makeReqs(tc.n)
		batches := Chunk(reqs, tc.size)
		if len(batches) != len(tc.wantSizes) {
			t.Fatalf("Chunk(%d, %d): %d batches, want %d", tc.n, tc.size, len(batches), len(tc.wantSizes))
		}

		// Lossless: concatenating the batches reproduces the input exactly.
		var flat []*docs.Request
		for i, b := range batches {
			if len(b) != tc.wantSizes[i] {
				t.Fatalf("Chunk(%d, %d): batch %d has %d requests, want %d", tc.n, tc.size, i, len(b), tc.wantSizes[i])
			}
			flat = append(flat, b...)
		}
		for i := range flat {
			if flat[i] != reqs[i] {
				t.Fatalf("Chunk(%d, %d): request %d reordered", tc.n, tc.size, i)
			}
		}
	}
}

func TestChunkBadSize(t *testing.T) {
	if got := Chunk(makeReqs(5), 0); got != nil {
		t.Fatalf("Chunk(…, 0)=%v, want nil", got)
	}
}
