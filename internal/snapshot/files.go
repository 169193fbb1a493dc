// Copyright 2026 Google LLC
// SPDX-License-Identifier: Apache-2.0

package snapshot

// Files are the benchmark outputs captured by a snapshot, in copy order.
// Consumers of the snapshot directories rely on exactly this set.
var Files = []string{
	"ctor_dtor_perf.json",
	"copy_perf.json",
	"insert_erase_perf.json",
	"for_find_perf.json",
	"compare_boyer_moore_perf.json",
	"grapheme_prop_lookup_perf.json",
	"normalize_perf.json",
	"collation_element_lookup_perf_000.json",
	"collation_element_lookup_perf_001.json",
	"collation_element_lookup_perf_002.json",
	"collation_element_lookup_perf_003.json",
	"collation_element_lookup_perf_004.json",
	"collation_element_lookup_perf_005.json",
	"collation_element_lookup_perf_006.json",
	"collation_perf_000.json",
	"collation_perf_001.json",
	"collation_perf_002.json",
	"collation_perf_003.json",
	"collation_perf_004.json",
	"collation_perf_005.json",
	"collation_perf_006.json",
}
