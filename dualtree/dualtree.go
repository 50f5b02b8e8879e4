package dualtree

import (
	"github.com/siddharthsheth/greedytree/heaporder"
	"github.com/siddharthsheth/greedytree/metric"
)

// AllRange returns, for every node in gA's traversal (in the order it was
// inserted into the viability graph, starting with the root), the indices
// into gB's viability graph of every node still within queryRadius once the
// search settles: output[i] lists the B-side indices viable for A-side node
// i. A-side node 0 is always gA's root; output therefore has len(gA)
// entries by construction, since every A entry is visited exactly once.
func AllRange(gA, gB []heaporder.Entry, queryRadius float64, m metric.Metric) ([][]int, error) {
	if m == nil {
		return nil, ErrNilMetric
	}
	if len(gA) == 0 || len(gB) == 0 {
		return nil, nil
	}

	var (
		aCenters, bCenters = make([]heaporder.Entry, 0, len(gA)), make([]heaporder.Entry, 0, len(gB))
		aRadii, bRadii     = make([]float64, 0, len(gA)), make([]float64, 0, len(gB))
		aNbrs, bNbrs       = make([][]nbrPair, 0, len(gA)), make([][]nbrPair, 0, len(gB))
		finished           = make([]bool, 0, len(gA))
	)

	insertA := func(e heaporder.Entry, nbrs []nbrPair, fin bool) {
		aCenters = append(aCenters, e)
		aRadii = append(aRadii, e.Radius)
		aNbrs = append(aNbrs, nbrs)
		finished = append(finished, fin)
	}
	insertB := func(e heaporder.Entry, nbrs []nbrPair) {
		bCenters = append(bCenters, e)
		bRadii = append(bRadii, e.Radius)
		bNbrs = append(bNbrs, nbrs)
	}

	centerDist := m.Dist(gA[0].Center, gB[0].Center)
	insertA(gA[0], []nbrPair{{idx: 0, dist: centerDist}}, false)
	insertB(gB[0], []nbrPair{{idx: 0, dist: centerDist}})

	aIt, bIt := 1, 1
	aR, bR := gA[0].Radius, gB[0].Radius

	prune := func(i int) {
		kept := aNbrs[i][:0]
		for _, nb := range aNbrs[i] {
			if nb.dist <= queryRadius+aRadii[i]+bRadii[nb.idx] {
				kept = append(kept, nb)
			}
		}
		aNbrs[i] = kept
	}
	pruneB := func(i int) {
		kept := bNbrs[i][:0]
		for _, nb := range bNbrs[i] {
			if nb.dist <= queryRadius+aRadii[nb.idx]+bRadii[i] {
				kept = append(kept, nb)
			}
		}
		bNbrs[i] = kept
	}
	finish := func(i int) {
		for _, nb := range aNbrs[i] {
			if nb.dist > queryRadius-aRadii[i]-bRadii[nb.idx] {
				return
			}
		}
		finished[i] = true
	}

	var affected []int
	for aIt < len(gA) || bIt < len(gB) {
		splitA := aR >= bR

		var entry heaporder.Entry
		var newIndex int
		if splitA {
			entry = gA[aIt]
		} else {
			entry = gB[bIt]
		}
		parI := entry.ParentIndex

		if !splitA {
			pruneB(parI)
		}

		var ownNbrs []nbrPair
		if splitA {
			ownNbrs = aNbrs[parI]
		} else {
			ownNbrs = bNbrs[parI]
		}
		parentNbrs := append([]nbrPair(nil), ownNbrs...)

		parentFin := false
		if splitA {
			parentFin = finished[parI]
		}

		affected = affected[:0]
		if splitA {
			newIndex = len(aCenters)
			if !finished[parI] {
				affected = append(affected, parI, newIndex)
			}
		} else {
			newIndex = len(bCenters)
			for _, nb := range parentNbrs {
				if !finished[nb.idx] {
					affected = append(affected, nb.idx)
				}
			}
		}

		newNbrs := make([]nbrPair, 0, len(parentNbrs))
		for _, nb := range parentNbrs {
			var ctrDist float64
			if splitA {
				ctrDist = m.Dist(entry.Center, bCenters[nb.idx].Center)
				bNbrs[nb.idx] = append(bNbrs[nb.idx], nbrPair{idx: newIndex, dist: ctrDist})
			} else {
				ctrDist = m.Dist(aCenters[nb.idx].Center, entry.Center)
				aNbrs[nb.idx] = append(aNbrs[nb.idx], nbrPair{idx: newIndex, dist: ctrDist})
			}
			newNbrs = append(newNbrs, nbrPair{idx: nb.idx, dist: ctrDist})
		}

		if splitA {
			insertA(entry, newNbrs, parentFin)
			aRadii[parI] = entry.LeftRadius
		} else {
			insertB(entry, newNbrs)
			bRadii[parI] = entry.LeftRadius
		}

		for _, i := range affected {
			prune(i)
			finish(i)
		}

		if splitA {
			aIt++
			if aIt < len(gA) {
				aR = aRadii[gA[aIt].ParentIndex]
			} else {
				aR = -1
			}
		} else {
			bIt++
			if bIt < len(gB) {
				bR = bRadii[gB[bIt].ParentIndex]
			} else {
				bR = -1
			}
		}
	}

	output := make([][]int, len(aNbrs))
	for i, nbrs := range aNbrs {
		idxs := make([]int, len(nbrs))
		for k, nb := range nbrs {
			idxs[k] = nb.idx
		}
		output[i] = idxs
	}

	return output, nil
}
