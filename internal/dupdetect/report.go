package dupdetect

import "sort"

// Report maps a paragraph key to the sorted identifiers of the files that
// contain it.
type Report map[string][]string

// Len returns the number of duplicated keys.
func (r Report) Len() int {
	return len(r)
}

// Keys returns the report keys in ascending order. The report itself carries
// no order; this exists for deterministic rendering.
func (r Report) Keys() []string {
	keys := make([]string, 0, len(r))
	for key := range r {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// occurrences records the set of file identifiers seen for each key.
type occurrences map[string]map[string]struct{}

func (o occurrences) add(key, fileID string) {
	files, ok := o[key]
	if !ok {
		files = make(map[string]struct{}, 2)
		o[key] = files
	}
	files[fileID] = struct{}{}
}

// filter keeps keys whose file set size reaches threshold and converts each
// set into a sorted slice.
func (o occurrences) filter(threshold int) Report {
	report := make(Report)
	for key, files := range o {
		if len(files) < threshold {
			continue
		}
		list := make([]string, 0, len(files))
		for file := range files {
			list = append(list, file)
		}
		sort.Strings(list)
		report[key] = list
	}
	return report
}
