package parcount

// Span is a half-open index range [Lo, Hi) assigned to one worker.
type Span struct {
	Lo, Hi int
}

// Len returns the number of indices covered by the span.
func (s Span) Len() int { return s.Hi - s.Lo }

// Plan splits [0, n) into k contiguous, non-overlapping spans whose union
// is exactly [0, n):
//
//	Lo_i = floor(n·i/k)
//	Hi_i = floor(n·(i+1)/k)
//
// Boundary arithmetic is done in int64 so n·i cannot overflow on 32-bit
// platforms. Spans may be empty when k > n; every index still belongs to
// exactly one span.
func Plan(n, k int) []Span {
	if k < 1 {
		k = 1
	}
	spans := make([]Span, k)
	for i := 0; i < k; i++ {
		spans[i] = Span{
			Lo: int(int64(n) * int64(i) / int64(k)),
			Hi: int(int64(n) * int64(i+1) / int64(k)),
		}
	}
	return spans
}
