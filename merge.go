// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package yaml

// mergeKey is the YAML merge-key convention: a mapping entry whose key is
// "<<" pulls the entries of another mapping (or list of mappings) into the
// current one.
const mergeKey = "<<"

// ResolveMerges expands "<<" merge keys in place throughout a decoded
// value. Keys already present in the target mapping win over merged-in
// keys, and earlier sources in a merge list win over later ones.
//
// The merge sources must be mappings or lists of mappings; anything else
// fails with one of the structural merge error kinds.
func ResolveMerges(v any) error {
	switch value := v.(type) {
	case map[string]any:
		if src, ok := value[mergeKey]; ok {
			delete(value, mergeKey)
			if err := mergeInto(value, src); err != nil {
				return err
			}
		}
		for _, item := range value {
			if err := ResolveMerges(item); err != nil {
				return err
			}
		}
	case []any:
		for _, item := range value {
			if err := ResolveMerges(item); err != nil {
				return err
			}
		}
	case *TaggedValue:
		return ResolveMerges(value.Value)
	}
	return nil
}

func mergeInto(dst map[string]any, src any) error {
	switch source := src.(type) {
	case map[string]any:
		mergeEntries(dst, source)
	case []any:
		for _, element := range source {
			switch sub := element.(type) {
			case map[string]any:
				mergeEntries(dst, sub)
			case []any:
				return errKind(KindSequenceInMergeElement)
			case *TaggedValue:
				return errKind(KindTaggedInMerge)
			default:
				return errKind(KindScalarInMergeElement)
			}
		}
	case *TaggedValue:
		return errKind(KindTaggedInMerge)
	default:
		return errKind(KindScalarInMerge)
	}
	return nil
}

// mergeEntries inserts absent keys only: existing entries always win.
func mergeEntries(dst, src map[string]any) {
	for key, value := range src {
		if _, exists := dst[key]; !exists {
			dst[key] = value
		}
	}
}
