package alert

import (
	"sort"

	"github.com/DevFrancisLab/saferoute/internal/domain"
)

type cluster struct {
	members []domain.AlertCandidate
	rank    int // distance rank of the first (closest) member
}

// Deduplicate collapses same-type hazards reported close together into one
// event each. Candidates must already be sorted by distance (FindNearby
// output). Within each hazard type, candidates are assigned greedily in
// distance order: a candidate joins the first cluster that has ANY member
// within dedupDistanceMeters, otherwise it starts a new one. Chained
// proximity therefore merges A-B-C even when A and C are farther apart than
// the threshold on their own; that single-link behavior is intentional and
// matches the expected reduction rates.
//
// Each cluster reduces to its highest-severity member, ties broken by the
// most recent created_at. Output keeps the representatives ordered by their
// cluster's original distance rank.
func Deduplicate(candidates []domain.AlertCandidate, dedupDistanceMeters float64) []domain.AlertCandidate {
	if len(candidates) == 0 {
		return nil
	}

	byType := make(map[domain.HazardType][]int)
	for i, c := range candidates {
		byType[c.Type] = append(byType[c.Type], i)
	}

	var clusters []*cluster
	for _, idxs := range byType {
		var typeClusters []*cluster
		for _, i := range idxs {
			cand := candidates[i]
			assigned := false
			for _, cl := range typeClusters {
				if withinAnyMember(cl, cand, dedupDistanceMeters) {
					cl.members = append(cl.members, cand)
					assigned = true
					break
				}
			}
			if !assigned {
				typeClusters = append(typeClusters, &cluster{
					members: []domain.AlertCandidate{cand},
					rank:    i,
				})
			}
		}
		clusters = append(clusters, typeClusters...)
	}

	sort.Slice(clusters, func(i, j int) bool {
		return clusters[i].rank < clusters[j].rank
	})

	out := make([]domain.AlertCandidate, 0, len(clusters))
	for _, cl := range clusters {
		out = append(out, representative(cl.members))
	}
	return out
}

func withinAnyMember(cl *cluster, cand domain.AlertCandidate, maxMeters float64) bool {
	for _, m := range cl.members {
		if Distance(m.Lat, m.Lng, cand.Lat, cand.Lng) <= maxMeters {
			return true
		}
	}
	return false
}

func representative(members []domain.AlertCandidate) domain.AlertCandidate {
	best := members[0]
	for _, m := range members[1:] {
		if m.Severity > best.Severity ||
			(m.Severity == best.Severity && m.CreatedAt.After(best.CreatedAt)) {
			best = m
		}
	}
	return best
}
