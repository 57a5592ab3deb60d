package streams

// NaiveTriangleJoin computes the full triangle join A-B-C — for each edge
// a->b in abEdges and b->c in bcEdges, keep c only if a->c is also present in
// acEdges — using ordinary hash-map lookups and nested loops, with no stream
// fusion whatsoever. It is a correctness oracle: TestTriangleQueryAgainstNaive
// checks that the fused pipeline (TriangleJoin1 + TriangleJoin2) agrees with
// this. The package has no unfused (materialize-the-first-join) pipeline.
//
// The hash-map lookup shape is adapted from the original join family's
// InnerJoin, which builds a map[K][]V before scanning the other side; here
// the "other side" is the acEdges relation, turned into a set for O(1)
// membership tests.
func NaiveTriangleJoin[A, B, C comparable](
	abEdges map[A][]B,
	bcEdges map[B][]C,
	acEdges map[A][]C,
) map[A]map[B][]C {
	acSet := make(map[A]map[C]struct{}, len(acEdges))
	for a, cs := range acEdges {
		set := make(map[C]struct{}, len(cs))
		for _, c := range cs {
			set[c] = struct{}{}
		}
		acSet[a] = set
	}

	result := make(map[A]map[B][]C, len(abEdges))
	for a, bs := range abEdges {
		bResult := make(map[B][]C, len(bs))
		for _, b := range bs {
			var cResult []C
			for _, c := range bcEdges[b] {
				if _, ok := acSet[a][c]; ok {
					cResult = append(cResult, c)
				}
			}
			bResult[b] = cResult
		}
		result[a] = bResult
	}
	return result
}
