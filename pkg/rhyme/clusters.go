package rhyme

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// FindClusters groups words into rhyme classes: two words land in the same
// cluster exactly when their normalized rhyme tails are equal. Empty,
// blacklisted, and unresolvable words are excluded; surviving clusters keep
// first-appearance order and members keep original casing in input order.
// Only classes with at least two members are returned.
func (d *Detector) FindClusters(words []string) []Cluster {
	byKey := make(map[string]int)
	var classes []Cluster

	for _, word := range words {
		clean := strings.ToLower(strings.TrimSpace(word))
		if clean == "" || d.Blacklisted(clean) {
			continue
		}

		res := d.Resolve(clean)
		if res.Outcome != Resolved {
			continue
		}

		key := d.classKey(res.Phonemes)
		idx, ok := byKey[key]
		if !ok {
			idx = len(classes)
			byKey[key] = idx
			classes = append(classes, Cluster{Key: key})
		}
		classes[idx].Words = append(classes[idx].Words, word)
	}

	clusters := make([]Cluster, 0, len(classes))
	for _, c := range classes {
		if len(c.Words) >= 2 {
			clusters = append(clusters, c)
		}
	}
	return clusters
}

// FindClusterRecords is the extended output: tail clusters followed by
// multisyllable pattern groups, each with per-occurrence word spans for
// highlighting. Tail records are named cluster_0, cluster_1, ... in cluster
// order; pattern records are named multi_<id> and flagged. Every word index
// appears at most once per record.
func (d *Detector) FindClusterRecords(words []string) []ClusterRecord {
	var records []ClusterRecord

	for n, cluster := range d.FindClusters(words) {
		members := make(map[string]bool, len(cluster.Words))
		for _, w := range cluster.Words {
			members[strings.ToLower(strings.TrimSpace(w))] = true
		}

		rec := ClusterRecord{ClusterID: fmt.Sprintf("cluster_%d", n)}
		for idx, w := range words {
			if members[strings.ToLower(strings.TrimSpace(w))] {
				rec.Words = append(rec.Words, wholeWordSpan(w, idx))
			}
		}
		records = append(records, rec)
	}

	for _, pattern := range d.FindPatterns(words) {
		rec := ClusterRecord{
			ClusterID:     "multi_" + pattern.ID,
			Multisyllable: true,
		}
		seen := make(map[int]bool)
		for _, occ := range pattern.Occurrences {
			for _, pos := range occ.Positions {
				if seen[pos.WordIndex] {
					continue
				}
				seen[pos.WordIndex] = true
				rec.Words = append(rec.Words, wholeWordSpan(words[pos.WordIndex], pos.WordIndex))
			}
		}
		if len(rec.Words) > 1 {
			records = append(records, rec)
		}
	}

	return records
}

// wholeWordSpan covers a full word in code points.
func wholeWordSpan(word string, idx int) WordSpan {
	return WordSpan{
		Word:  word,
		Index: idx,
		Start: 0,
		End:   utf8.RuneCountInString(word),
	}
}
