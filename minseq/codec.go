// SPDX-License-Identifier: MIT
//
// File: codec.go
// Role: JSON and YAML interop. A sequence encodes as a plain list; decoding
// validates the list against the receiver's minimum before replacing its
// contents, so a config or payload field typed Seq/One doubles as a
// "at least N entries" schema rule.
// Policy:
//   - A zero Seq decodes with minimum 0; a pre-built Seq keeps its minimum.
//   - One always decodes with minimum 1, including a zero One.
//   - A decoder that never reaches the receiver (missing key, YAML null) leaves
//     a One field zero; One.Validate reports it.
//   - On any error the receiver is left unchanged.

package minseq

import (
	"encoding/json"

	"braces.dev/errtrace"
	"gopkg.in/yaml.v3"
)

// MarshalJSON encodes the elements as a JSON array. An empty sequence
// encodes as [] rather than null.
func (s Seq[T]) MarshalJSON() ([]byte, error) {
	return errtrace.Wrap2(json.Marshal(s.nonNil()))
}

// UnmarshalJSON decodes a JSON array, refusing it with a TooShortError when it
// holds fewer than Min() elements.
func (s *Seq[T]) UnmarshalJSON(data []byte) error {
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return errtrace.Wrap(err)
	}

	return errtrace.Wrap(s.replace(items, s.min))
}

// MarshalYAML encodes the elements as a YAML sequence.
func (s Seq[T]) MarshalYAML() (any, error) {
	return s.nonNil(), nil
}

// UnmarshalYAML decodes a YAML sequence node with the same validation as
// UnmarshalJSON.
func (s *Seq[T]) UnmarshalYAML(node *yaml.Node) error {
	var items []T
	if err := node.Decode(&items); err != nil {
		return errtrace.Wrap(err)
	}

	return errtrace.Wrap(s.replace(items, s.min))
}

// replace swaps in decoded items after validating them against min.
func (s *Seq[T]) replace(items []T, min int) error {
	if err := validate(len(items), min); err != nil {
		return errtrace.Wrap(err)
	}
	s.items, s.min = items, min

	return nil
}

func (s Seq[T]) nonNil() []T {
	if s.items == nil {
		return []T{}
	}

	return s.items
}
